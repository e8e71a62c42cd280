package iters

// SliceIter traverses the elements of a slice front to back, yielding them by
// value. It does not copy the slice; mutating the backing array during the
// traversal is the caller's responsibility to avoid. Double-ended, exact-size.
type SliceIter[T any] struct {
	rest []T
}

// Slice returns an iterator over the elements of s.
func Slice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{rest: s}
}

func (s *SliceIter[T]) Next() (T, bool) {
	if len(s.rest) == 0 {
		var zero T
		return zero, false
	}
	v := s.rest[0]
	s.rest = s.rest[1:]
	return v, true
}

func (s *SliceIter[T]) NextBack() (T, bool) {
	if len(s.rest) == 0 {
		var zero T
		return zero, false
	}
	v := s.rest[len(s.rest)-1]
	s.rest = s.rest[:len(s.rest)-1]
	return v, true
}

func (s *SliceIter[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return len(s.rest), len(s.rest), true
}

// ExactSize marks the exact-size promise; see ExactSizeIterator.
func (s *SliceIter[T]) ExactSize() {}

// SlicePtrIter traverses a slice front to back yielding a pointer to each
// element, so callers can rewrite elements in place. The pointers stay valid
// for the life of the backing array. Double-ended, exact-size.
type SlicePtrIter[T any] struct {
	rest []T
}

// SlicePtrs returns an iterator over pointers to the elements of s.
func SlicePtrs[T any](s []T) *SlicePtrIter[T] {
	return &SlicePtrIter[T]{rest: s}
}

func (s *SlicePtrIter[T]) Next() (*T, bool) {
	if len(s.rest) == 0 {
		return nil, false
	}
	p := &s.rest[0]
	s.rest = s.rest[1:]
	return p, true
}

func (s *SlicePtrIter[T]) NextBack() (*T, bool) {
	if len(s.rest) == 0 {
		return nil, false
	}
	p := &s.rest[len(s.rest)-1]
	s.rest = s.rest[:len(s.rest)-1]
	return p, true
}

func (s *SlicePtrIter[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return len(s.rest), len(s.rest), true
}

// ExactSize marks the exact-size promise; see ExactSizeIterator.
func (s *SlicePtrIter[T]) ExactSize() {}

var (
	_ ExactSizeDoubleEnded[int]  = (*SliceIter[int])(nil)
	_ ExactSizeDoubleEnded[*int] = (*SlicePtrIter[int])(nil)
)
