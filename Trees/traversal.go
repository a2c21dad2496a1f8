package Trees

import (
	"github.com/g-m-twostay/bst/Queues"
	"github.com/g-m-twostay/bst/Stacks"
	"golang.org/x/exp/constraints"
)

func inorder[T constraints.Ordered](n *Node[T], a []T) []T {
	if n != nil {
		a = inorder(n.l, a)
		a = append(a, n.v)
		a = inorder(n.r, a)
	}
	return a
}

func preorder[T constraints.Ordered](n *Node[T], a []T) []T {
	if n != nil {
		a = append(a, n.v)
		a = preorder(n.l, a)
		a = preorder(n.r, a)
	}
	return a
}

func postorder[T constraints.Ordered](n *Node[T], a []T) []T {
	if n != nil {
		a = postorder(n.l, a)
		a = postorder(n.r, a)
		a = append(a, n.v)
	}
	return a
}

// Inorder returns the values in ascending order. Recursive.
// Time: O(n)
func (u *BST[T]) Inorder() []T {
	return inorder(u.root, make([]T, 0, u.count))
}

// Preorder returns the values with every node before its left then right subtree. Recursive.
// Time: O(n)
func (u *BST[T]) Preorder() []T {
	return preorder(u.root, make([]T, 0, u.count))
}

// Postorder returns the values with every node after its left then right subtree. Recursive.
// Time: O(n)
func (u *BST[T]) Postorder() []T {
	return postorder(u.root, make([]T, 0, u.count))
}

// PreorderI is the iterative version of Preorder. A node is recorded and pushed on the way
// down the left spine; when the spine ends, the last pushed node is popped and its right
// subtree is walked the same way.
// Time: O(n); Space: O(D)
func (u *BST[T]) PreorderI() []T {
	a := make([]T, 0, u.count)
	st := Stacks.New[*Node[T]](max(u.count, 1))
	for cur := u.root; cur != nil || !st.Empty(); {
		if cur != nil {
			a = append(a, cur.v)
			if e := st.Push(cur); e != nil {
				panic(e) //count is out of sync with the nodes
			}
			cur = cur.l
		} else {
			cur, _ = st.Pop()
			cur = cur.r
		}
	}
	return a
}

// Levelorder returns the values grouped by depth, shallowest first, left before right
// within a depth. Absent children are queued too and skipped when they come out.
// Time: O(n); Space: O(w) where w is the maximum width of the tree.
func (u *BST[T]) Levelorder() []T {
	a := make([]T, 0, u.count)
	q := Queues.MakeArrayQueue[*Node[T]](u.count>>1 + 1)
	q.Push(u.root)
	for !q.Empty() {
		if n, _ := q.Pop(); n != nil {
			a = append(a, n.v)
			q.Push(n.l)
			q.Push(n.r)
		}
	}
	return a
}
