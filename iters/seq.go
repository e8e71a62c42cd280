package iters

import "iter"

// ToSeq adapts an Iterator to the standard library's push-based iter.Seq, so
// it can be consumed with range-over-func. It takes ownership of it.
func ToSeq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SeqIter adapts a push-based iter.Seq to the pull protocol via iter.Pull.
// Its size hint is (0, unknown) until exhaustion and (0, 0) after: an
// arbitrary iter.Seq discloses nothing about its length. SeqIter therefore
// never carries the exact-size promise.
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq returns a pull iterator over seq. The underlying coroutine is
// released when the iterator is exhausted; a SeqIter abandoned mid-stream
// holds it until garbage collection.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

func (s *SeqIter[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
	}
	return v, ok
}

func (s *SeqIter[T]) SizeHint() (lower, upper int, upperKnown bool) {
	if s.done {
		return 0, 0, true
	}
	return 0, 0, false
}

var _ Iterator[int] = (*SeqIter[int])(nil)
