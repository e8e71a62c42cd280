package iters

// Reversed traverses a double-ended, exact-size iterator back to front.
// Reversal preserves the exact-size promise structurally: the remaining
// elements are the same set, consumed from the other end.
type Reversed[T any] struct {
	inner ExactSizeDoubleEnded[T]
}

// Reverse returns an iterator yielding the elements of it in reverse order.
// It takes ownership of it; the input must not be used afterwards.
func Reverse[T any](it ExactSizeDoubleEnded[T]) *Reversed[T] {
	return &Reversed[T]{inner: it}
}

func (r *Reversed[T]) Next() (T, bool) {
	return r.inner.NextBack()
}

func (r *Reversed[T]) NextBack() (T, bool) {
	return r.inner.Next()
}

func (r *Reversed[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return r.inner.SizeHint()
}

// ExactSize marks the exact-size promise; see ExactSizeIterator.
func (r *Reversed[T]) ExactSize() {}

var _ ExactSizeDoubleEnded[int] = (*Reversed[int])(nil)
