package iters

// Limited yields at most the first n elements of an exact-size iterator.
// Limiting preserves the exact-size promise: the remaining count is the
// smaller of the budget left and the inner iterator's exact count.
type Limited[T any] struct {
	inner ExactSizeIterator[T]
	left  int
}

// Limit returns an iterator over the first n elements of it.
// It takes ownership of it; the input must not be used afterwards.
// A non-positive n yields an immediately exhausted iterator.
func Limit[T any](it ExactSizeIterator[T], n int) *Limited[T] {
	if n < 0 {
		n = 0
	}
	return &Limited[T]{inner: it, left: n}
}

func (l *Limited[T]) Next() (T, bool) {
	if l.left == 0 {
		var zero T
		return zero, false
	}
	v, ok := l.inner.Next()
	if !ok {
		l.left = 0
		var zero T
		return zero, false
	}
	l.left--
	return v, true
}

func (l *Limited[T]) SizeHint() (lower, upper int, upperKnown bool) {
	n, _, _ := l.inner.SizeHint()
	n = min(n, l.left)
	return n, n, true
}

// ExactSize marks the exact-size promise; see ExactSizeIterator.
func (l *Limited[T]) ExactSize() {}

var _ ExactSizeIterator[int] = (*Limited[int])(nil)
