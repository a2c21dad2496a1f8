package Queues

// Queue is the FIFO contract. Tree traversals use it as scratch space for node handles.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type FullQueueError struct {
}

func (e *FullQueueError) Error() string {
	return "Queue is Full: cannot Insert."
}
