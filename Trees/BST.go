package Trees

import (
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values. Its shape is
// whatever the sequence of Insert and Delete produces; there are no rotations.
// count is tracked on every structural change, heights are always recomputed.
// The zero value is an empty tree ready to use.
// BST isn't safe for concurrent use; any mutation must be serialized with every other
// access, including iteration.
type BST[T constraints.Ordered] struct {
	root  *Node[T]
	count uint
}

// New returns an empty BST.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{}
}

// Build a BST from the given slice recursively by always taking the middle element as the
// subtree root, so the result is balanced. The slice must be sorted in ascending order
// without duplicates. If safe==true, this is checked first and Build panics with
// InvalidSliceError if it doesn't hold. Otherwise it's up to the caller, and a wrong slice
// results in an invalid tree.
// Time: O(n).
func Build[T constraints.Ordered](sli []T, safe bool) *BST[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError{sli[i-1], sli[i], i})
			}
		}
	}
	var build func([]T) *Node[T]
	build = func(s []T) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BST[T]{build(sli), uint(len(sli))}
}

// FromRoot adopts the node graph rooting at root as a tree. The graph must be a tree
// (no shared nodes, no cycles); the ordering isn't checked, use IsValid for that.
// The caller mustn't modify the nodes afterward.
// Time: O(n)
func FromRoot[T constraints.Ordered](root *Node[T]) *BST[T] {
	return &BST[T]{root, countNodes(root)}
}

// Root of the tree, nil if empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// IsEmpty reports whether the tree holds no values.
// Time: O(1)
func (u *BST[T]) IsEmpty() bool {
	return u.root == nil
}

// Size of the tree.
// Time: O(1)
func (u *BST[T]) Size() uint {
	return u.count
}

// Count the nodes reachable from the root. It always equals Size for trees built through
// Insert and Delete. Recursive.
// Time: O(n)
func (u *BST[T]) Count() uint {
	return countNodes(u.root)
}

func countNodes[T constraints.Ordered](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.l) + countNodes(n.r)
}

// insert v into the subtree rooting at cur. Returns the new subtree root and whether
// a node was added; the caller reassigns the root.
func (u *BST[T]) insert(cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		u.count++
		return &Node[T]{v: v}, true
	}
	inserted := false
	if v < cur.v {
		cur.l, inserted = u.insert(cur.l, v)
	} else if v > cur.v {
		cur.r, inserted = u.insert(cur.r, v)
	}
	return cur, inserted
}

// Insert v into the tree. Returns false if v is already present, in which case
// the tree is unchanged. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, v)
	return inserted
}

// remove v from the subtree rooting at cur. Returns the new subtree root and whether
// a node was removed. A node with two children takes the value of its in-order successor,
// which is then removed from the right subtree, so exactly one node is unlinked per call.
func (u *BST[T]) remove(cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = u.remove(cur.l, v)
	} else if v > cur.v {
		cur.r, deleted = u.remove(cur.r, v)
	} else if cur.l == nil {
		u.count--
		return cur.r, true
	} else if cur.r == nil {
		u.count--
		return cur.l, true
	} else {
		cur.v = FindMin(cur.r).v
		cur.r, deleted = u.remove(cur.r, cur.v)
	}
	return cur, deleted
}

// Delete v from the tree. Returns false if v isn't found, in which case the tree is
// unchanged. Recursive.
// Time: O(D)
func (u *BST[T]) Delete(v T) bool {
	var deleted bool
	u.root, deleted = u.remove(u.root, v)
	return deleted
}

// RemoveRoot removes the root and returns its value. Panics with *EmptyTreeError if the
// tree is empty.
// Time: O(D)
func (u *BST[T]) RemoveRoot() T {
	if u.root == nil {
		panic(&EmptyTreeError{"RemoveRoot"})
	}
	v := u.root.v
	u.root, _ = u.remove(u.root, v)
	return v
}

// Find the node holding v. Returns nil if v isn't found.
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) *Node[T] {
	cur := u.root
	for cur != nil && cur.v != v {
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return cur
}

func findR[T constraints.Ordered](cur *Node[T], v T) *Node[T] {
	if cur == nil || cur.v == v {
		return cur
	} else if v < cur.v {
		return findR(cur.l, v)
	}
	return findR(cur.r, v)
}

// FindR is the recursive version of Find.
// Time: O(D)
func (u *BST[T]) FindR(v T) *Node[T] {
	return findR(u.root, v)
}

// Contains reports whether v is in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Contains(v T) bool {
	return u.Find(v) != nil
}

// Retrieve the value equal to key. The second return value is false if key isn't found.
// Time: O(D); Space: O(1)
func (u *BST[T]) Retrieve(key T) (T, bool) {
	if n := u.Find(key); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Min value of the tree. Panics with *EmptyTreeError if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BST[T]) Min() T {
	if u.root == nil {
		panic(&EmptyTreeError{"Min"})
	}
	return FindMin(u.root).v
}

// Max value of the tree. Panics with *EmptyTreeError if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BST[T]) Max() T {
	if u.root == nil {
		panic(&EmptyTreeError{"Max"})
	}
	cur := u.root
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v
}

func minR[T constraints.Ordered](cur *Node[T]) T {
	if cur.l == nil {
		return cur.v
	}
	return minR(cur.l)
}

func maxR[T constraints.Ordered](cur *Node[T]) T {
	if cur.r == nil {
		return cur.v
	}
	return maxR(cur.r)
}

// MinR is the recursive version of Min.
func (u *BST[T]) MinR() T {
	if u.root == nil {
		panic(&EmptyTreeError{"MinR"})
	}
	return minR(u.root)
}

// MaxR is the recursive version of Max.
func (u *BST[T]) MaxR() T {
	if u.root == nil {
		panic(&EmptyTreeError{"MaxR"})
	}
	return maxR(u.root)
}
