package Trees

import "github.com/g-m-twostay/bst/Queues"

// LevelOrder returns a closure f acting like an iterator over the values in level order,
// the same order as Levelorder. Calling f is like calling "Next()" of iterators:
// val, valid=f(). val is meaningful only if valid is true. Once valid is false, f is
// exhausted and stays so. Each call to LevelOrder starts a new, independent iteration, and
// nothing beyond what f has been asked for is visited.
// The tree must not be modified during the iteration of f.
// Time: f(): O(1) at each call. Space: O(w).
func (u *BST[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*Node[T]](1)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		n, e := q.Pop()
		if e != nil {
			return
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
		return n.v, true
	}
}

// Range calls f on each value in level order until f returns false.
func (u *BST[T]) Range(f func(T) bool) {
	for next := u.LevelOrder(); ; {
		v, ok := next()
		if !ok || !f(v) {
			return
		}
	}
}
