package iters

// Collect drains the iterator into a slice. The slice is pre-sized from the
// hint's lower bound, so collecting an exact-size iterator allocates once.
func Collect[T any](it Iterator[T]) []T {
	lower, _, _ := it.SizeHint()
	out := make([]T, 0, max(lower, 0))
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Count drains the iterator and returns the number of elements it produced.
func Count[T any](it Iterator[T]) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// First returns the first element of the iterator, consuming it.
func First[T any](it Iterator[T]) (T, bool) {
	return it.Next()
}
