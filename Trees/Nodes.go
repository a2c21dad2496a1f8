package Trees

import "golang.org/x/exp/constraints"

// Node of a BST. A node exclusively owns its two children; nil means absent.
// The zero value is a node holding the zero value of T with no children.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a node holding v with the given children. It doesn't check
// any ordering, so it can be used to assemble arbitrary binary trees for FromRoot.
func NewNode[T constraints.Ordered](v T, l, r *Node[T]) *Node[T] {
	return &Node[T]{v, l, r}
}

// Value held by u.
func (u *Node[T]) Value() T {
	return u.v
}

// Left child of u, nil if absent.
func (u *Node[T]) Left() *Node[T] {
	return u.l
}

// Right child of u, nil if absent.
func (u *Node[T]) Right() *Node[T] {
	return u.r
}

// children returns the number of present children, 0, 1, or 2.
func (u *Node[T]) children() byte {
	var c byte
	if u.l != nil {
		c++
	}
	if u.r != nil {
		c++
	}
	return c
}

// FindMin returns the leftmost node of the subtree rooting at n, nil if n is nil.
// Time: O(D); Space: O(1)
func FindMin[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n != nil {
		for n.l != nil {
			n = n.l
		}
	}
	return n
}

// clone copies the subtree rooting at n. If mirrored, left and right are swapped at
// every level. Recursive.
func clone[T constraints.Ordered](n *Node[T], mirrored bool) *Node[T] {
	if n == nil {
		return nil
	}
	if mirrored {
		return &Node[T]{n.v, clone(n.r, true), clone(n.l, true)}
	}
	return &Node[T]{n.v, clone(n.l, false), clone(n.r, false)}
}
