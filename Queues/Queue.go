package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Fails with *EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	// Peek at the oldest item without removing it. The zero value of T is
	// returned when the queue is empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable circular array.
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
