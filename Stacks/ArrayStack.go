package Stacks

// ArrayStack is a fixed capacity stack backed by a slice. top is the number of
// elements held; content[top-1] is the top of the stack.
type ArrayStack[T any] struct {
	top     uint
	content []T
}

// New returns an empty ArrayStack able to hold capacity elements. capacity must be positive.
func New[T any](capacity uint) *ArrayStack[T] {
	if capacity == 0 {
		panic("Stacks: capacity must be > 0")
	}
	return &ArrayStack[T]{0, make([]T, capacity)}
}

func (u *ArrayStack[T]) Empty() bool {
	return u.top == 0
}

func (u *ArrayStack[T]) Full() bool {
	return u.top == uint(len(u.content))
}

func (u *ArrayStack[T]) Size() uint {
	return u.top
}

func (u *ArrayStack[T]) Capacity() uint {
	return uint(len(u.content))
}

// Push item on top. Returns *FullStackError if the stack is at capacity.
// Time: O(1)
func (u *ArrayStack[T]) Push(item T) error {
	if u.Full() {
		return &FullStackError{uint(len(u.content))}
	}
	u.content[u.top] = item
	u.top++
	return nil
}

// Pop the top item. Returns *EmptyStackError if there's nothing to pop.
// Time: O(1)
func (u *ArrayStack[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyStackError{"Pop"}
	}
	u.top--
	t := u.content[u.top]
	u.content[u.top] = *new(T)
	return t, nil
}

// Peek at the top item without removing it.
func (u *ArrayStack[T]) Peek() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyStackError{"Peek"}
	}
	return u.content[u.top-1], nil
}

// Clear drops all elements while keeping the capacity.
func (u *ArrayStack[T]) Clear() {
	clear(u.content[:u.top])
	u.top = 0
}

// Values returns the elements from top to bottom.
func (u *ArrayStack[T]) Values() []T {
	r := make([]T, 0, u.top)
	for i := u.top; i > 0; i-- {
		r = append(r, u.content[i-1])
	}
	return r
}

// Combine replaces the content of u with the items of s1 and s2 popped alternately,
// starting from s1. Combine stops as soon as either source is empty, so the remaining
// items of the longer source stay there. s1 and s2 must have the same capacity, otherwise
// Combine panics with CapacityMismatchError. The capacity of u becomes twice that of s1.
func (u *ArrayStack[T]) Combine(s1, s2 *ArrayStack[T]) {
	if s1.Capacity() != s2.Capacity() {
		panic(CapacityMismatchError{s1.Capacity(), s2.Capacity()})
	}
	u.content, u.top = make([]T, s1.Capacity()<<1), 0
	for !s1.Empty() && !s2.Empty() {
		a, _ := s1.Pop()
		b, _ := s2.Pop()
		u.content[u.top], u.content[u.top+1] = a, b
		u.top += 2
	}
}

// SplitAlt moves the items of u into two new stacks of the same capacity, alternating
// between them starting from the top of u. u is empty afterward.
func (u *ArrayStack[T]) SplitAlt() (*ArrayStack[T], *ArrayStack[T]) {
	a, b := New[T](u.Capacity()), New[T](u.Capacity())
	for !u.Empty() {
		v, _ := u.Pop()
		a.Push(v)
		if !u.Empty() {
			v, _ = u.Pop()
			b.Push(v)
		}
	}
	return a, b
}
