package Stacks

import "strconv"

// Stack is the LIFO contract used by iterative tree traversals.
type Stack[T any] interface {
	Push(item T) error
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
}

type EmptyStackError struct {
	op string
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot " + e.op + "."
}

type FullStackError struct {
	capacity uint
}

func (e *FullStackError) Error() string {
	return "Stack is Full: capacity " + strconv.FormatUint(uint64(e.capacity), 10) + " reached."
}

// CapacityMismatchError is the panic value of ArrayStack.Combine when the sources differ in capacity.
type CapacityMismatchError struct {
	A, B uint
}

func (e CapacityMismatchError) Error() string {
	return "Stack capacities must be the same: " + strconv.FormatUint(uint64(e.A), 10) + " != " + strconv.FormatUint(uint64(e.B), 10)
}
