package Trees

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// height of the subtree rooting at n in edges; -1 for an absent subtree.
func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// Height is the number of edges on the longest path from the root to a leaf.
// Both an empty tree and a single node have height 0. Recursive.
// Time: O(n)
func (u *BST[T]) Height() int {
	return max(height(u.root), 0)
}

// nodeCounts adds the nodes of the subtree rooting at n to c, bucketed by the number of children.
func nodeCounts[T constraints.Ordered](n *Node[T], c *[3]uint) {
	if n != nil {
		c[n.children()]++
		nodeCounts(n.l, c)
		nodeCounts(n.r, c)
	}
}

// NodeCounts partitions the nodes by their number of children. The three counts sum to Size.
// Recursive.
// Time: O(n)
func (u *BST[T]) NodeCounts() (leaves, oneChild, twoChildren uint) {
	var c [3]uint
	nodeCounts(u.root, &c)
	return c[0], c[1], c[2]
}

// LeafCount is the number of nodes without children.
func (u *BST[T]) LeafCount() uint {
	l, _, _ := u.NodeCounts()
	return l
}

// OneChildCount is the number of nodes with exactly one child.
func (u *BST[T]) OneChildCount() uint {
	_, o, _ := u.NodeCounts()
	return o
}

// TwoChildCount is the number of nodes with both children.
func (u *BST[T]) TwoChildCount() uint {
	_, _, t := u.NodeCounts()
	return t
}

// balanced returns the height of n and whether every node in it is balanced.
// It stops descending as soon as an unbalanced node is found.
func balanced[T constraints.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := balanced(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(n.r)
	if !ok {
		return 0, false
	}
	return 1 + max(lh, rh), lh-rh <= 1 && rh-lh <= 1
}

// IsBalanced reports whether the heights of the left and right subtrees differ by at most 1
// at every node. It is purely diagnostic, nothing keeps the tree balanced. Recursive.
// Time: O(n)
func (u *BST[T]) IsBalanced() bool {
	_, ok := balanced(u.root)
	return ok
}

func valid[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.l != nil && !(n.l.v < n.v) {
		return false
	}
	if n.r != nil && !(n.v < n.r.v) {
		return false
	}
	return valid(n.l) && valid(n.r)
}

// IsValid checks that left.v<v<right.v holds for every node and its immediate children.
// A tree built by Insert and Delete is always valid; this is meant for trees adopted
// through FromRoot. Recursive.
// Time: O(n)
func (u *BST[T]) IsValid() bool {
	return valid(u.root)
}

func identical[T constraints.Ordered](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.v == b.v && identical(a.l, b.l) && identical(a.r, b.r)
}

// IsIdentical reports whether u and other have the same size, shape, and the same value at
// every position. A nil other is never identical. Recursive.
// Time: O(n)
func (u *BST[T]) IsIdentical(other *BST[T]) bool {
	return other != nil && u.count == other.count && identical(u.root, other.root)
}

// Mirror returns a new tree whose nodes are a copy of u with left and right swapped at every
// level. u is unchanged. The result is generally not a valid BST. Recursive.
// Time: O(n)
func (u *BST[T]) Mirror() *BST[T] {
	return &BST[T]{clone(u.root, true), u.count}
}

// Clone returns a deep copy of u with the same shape.
// Time: O(n)
func (u *BST[T]) Clone() *BST[T] {
	return &BST[T]{clone(u.root, false), u.count}
}

// Parent returns the value held by the parent of the node holding key. The second return
// value is false if key is the root or isn't found.
// Time: O(D); Space: O(1)
func (u *BST[T]) Parent(key T) (T, bool) {
	var p *Node[T]
	cur := u.root
	for cur != nil && cur.v != key {
		p = cur
		if key < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if cur == nil || p == nil {
		return *new(T), false
	}
	return p.v, true
}

// parentR returns the parent of the node holding key in the subtree rooting at cur,
// given p is the parent of cur.
func parentR[T constraints.Ordered](cur, p *Node[T], key T) *Node[T] {
	if cur == nil {
		return nil
	} else if key < cur.v {
		return parentR(cur.l, cur, key)
	} else if key > cur.v {
		return parentR(cur.r, cur, key)
	}
	return p
}

// ParentR is the recursive version of Parent.
// Time: O(D)
func (u *BST[T]) ParentR(key T) (T, bool) {
	if p := parentR(u.root, nil, key); p != nil {
		return p.v, true
	}
	return *new(T), false
}

func countApply[T constraints.Ordered](n *Node[T], f func(T) bool) uint {
	if n == nil {
		return 0
	}
	c := countApply(n.l, f) + countApply(n.r, f)
	if f(n.v) {
		c++
	}
	return c
}

// CountApply counts the values for which f returns true. f is called once per value.
// Recursive.
// Time: O(n)
func (u *BST[T]) CountApply(f func(T) bool) uint {
	return countApply(u.root, f)
}

func depthSum[T constraints.Ordered](n *Node[T], d uint) uint {
	if n == nil {
		return 0
	}
	return d + depthSum(n.l, d+1) + depthSum(n.r, d+1)
}

// AverageDepth is the mean number of edges from the root to each node; 0 for an empty tree.
// Time: O(n)
func (u *BST[T]) AverageDepth() float64 {
	if u.count == 0 {
		return 0
	}
	return float64(depthSum(u.root, 0)) / float64(u.count)
}

func printNode[T constraints.Ordered](w io.Writer, prefix string, n *Node[T], upper bool) {
	if n == nil {
		return
	}
	branch, next := "└── ", prefix+"    "
	if upper {
		branch, next = "├── ", prefix+"│   "
	}
	fmt.Fprintf(w, "%s%s%v\n", prefix, branch, n.v)
	printNode(w, next, n.r, true)
	printNode(w, next, n.l, false)
}

// Print draws the tree sideways to w, one node per line, right subtree above left subtree.
func (u *BST[T]) Print(w io.Writer) {
	printNode(w, "", u.root, false)
}
