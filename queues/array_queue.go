// Package queues provides a generic ring-buffer queue whose draining
// traversal carries the exact-size promise of lockstep/iters.
package queues

import (
	"math/bits"

	"lockstep/iters"
)

// ArrayQueue is a FIFO queue backed by a circular array whose capacity is
// kept at a power of two, so positions reduce with a mask instead of a
// modulo. Enqueue and dequeue are amortized O(1).
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1
}

// NewArrayQueue creates a queue with capacity for at least initialCapacity
// elements.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := 1 << uint(bits.Len(uint(initialCapacity-1)))
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow replaces the buffer with one large enough for size+extra elements,
// unwrapping the ring into the front of the new buffer.
func (aq *ArrayQueue[T]) grow(extra int) {
	capacity := 1 << uint(bits.Len(uint(aq.size+extra-1)))
	buf := make([]T, capacity)

	if aq.head+aq.size <= len(aq.buf) {
		copy(buf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		n := copy(buf, aq.buf[aq.head:])
		tail := (aq.head + aq.size) & aq.mask
		copy(buf[n:], aq.buf[:tail])
	}

	aq.buf = buf
	aq.head = 0
	aq.mask = capacity - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	if aq.size+n > len(aq.buf) {
		aq.grow(n)
	}
	tail := (aq.head + aq.size) & aq.mask
	if tail+n <= len(aq.buf) {
		copy(aq.buf[tail:], values)
	} else {
		// wrapped around
		split := len(aq.buf) - tail
		copy(aq.buf[tail:], values[:split])
		copy(aq.buf, values[split:])
	}
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

// Drain returns an exact-size traversal that dequeues one element per step
// until the queue is empty. The iterator takes ownership of the queue: after
// calling Drain, the queue must only be used through the iterator.
func (aq *ArrayQueue[T]) Drain() *DrainIter[T] {
	return &DrainIter[T]{q: aq}
}

// DrainIter consumes an ArrayQueue front to back. Its size hint is the
// queue's current size, which is exact as long as the owning contract of
// Drain is respected.
type DrainIter[T any] struct {
	q *ArrayQueue[T]
}

func (d *DrainIter[T]) Next() (T, bool) {
	return d.q.Dequeue()
}

func (d *DrainIter[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return d.q.size, d.q.size, true
}

// ExactSize marks the exact-size promise; see iters.ExactSizeIterator.
func (d *DrainIter[T]) ExactSize() {}

var _ iters.ExactSizeIterator[int] = (*DrainIter[int])(nil)
