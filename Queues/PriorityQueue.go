package Queues

import "golang.org/x/exp/constraints"

// PriorityQueue is a fixed capacity priority queue backed by an unsorted array.
// Smaller values have higher priority. first is the index of the highest priority
// value and is only meaningful when sz>0.
type PriorityQueue[T constraints.Ordered] struct {
	sz, first uint
	content   []T
}

// NewPriorityQueue returns an empty PriorityQueue holding at most capacity values.
// capacity must be positive.
func NewPriorityQueue[T constraints.Ordered](capacity uint) *PriorityQueue[T] {
	if capacity == 0 {
		panic("Queues: capacity must be > 0")
	}
	return &PriorityQueue[T]{0, 0, make([]T, capacity)}
}

func (u *PriorityQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *PriorityQueue[T]) Size() uint {
	return u.sz
}

func (u *PriorityQueue[T]) Capacity() uint {
	return uint(len(u.content))
}

// setFirst rescans the buffer for the smallest value.
// Time: O(n)
func (u *PriorityQueue[T]) setFirst() {
	u.first = 0
	for i := uint(1); i < u.sz; i++ {
		if u.content[i] < u.content[u.first] {
			u.first = i
		}
	}
}

// Insert v at the end of the buffer. Returns *FullQueueError when at capacity.
// Time: O(1)
func (u *PriorityQueue[T]) Insert(v T) error {
	if u.sz == uint(len(u.content)) {
		return &FullQueueError{}
	}
	u.content[u.sz] = v
	if u.sz == 0 || v < u.content[u.first] {
		u.first = u.sz
	}
	u.sz++
	return nil
}

// Remove and return the highest priority value. The last value in the buffer
// takes over the freed slot.
// Time: O(n)
func (u *PriorityQueue[T]) Remove() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	v := u.content[u.first]
	u.sz--
	u.content[u.first] = u.content[u.sz]
	u.content[u.sz] = *new(T)
	u.setFirst()
	return v, nil
}

// Peek at the highest priority value.
func (u *PriorityQueue[T]) Peek() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.first], nil
}

// Values returns the values in buffer order, which isn't priority order.
func (u *PriorityQueue[T]) Values() []T {
	return append([]T(nil), u.content[:u.sz]...)
}

func (u *PriorityQueue[T]) reset() {
	clear(u.content[:u.sz])
	u.sz, u.first = 0, 0
}

// SplitAlt distributes the values of u alternately into two new queues of the same
// capacity, preserving buffer order. u is empty afterward.
func (u *PriorityQueue[T]) SplitAlt() (*PriorityQueue[T], *PriorityQueue[T]) {
	a, b := NewPriorityQueue[T](u.Capacity()), NewPriorityQueue[T](u.Capacity())
	for i, v := range u.content[:u.sz] {
		if i&1 == 0 {
			a.Insert(v)
		} else {
			b.Insert(v)
		}
	}
	u.reset()
	return a, b
}

// SplitKey moves the values less than key into the first returned queue and the rest
// into the second, preserving buffer order. u is empty afterward.
func (u *PriorityQueue[T]) SplitKey(key T) (*PriorityQueue[T], *PriorityQueue[T]) {
	a, b := NewPriorityQueue[T](u.Capacity()), NewPriorityQueue[T](u.Capacity())
	for _, v := range u.content[:u.sz] {
		if v < key {
			a.Insert(v)
		} else {
			b.Insert(v)
		}
	}
	u.reset()
	return a, b
}
