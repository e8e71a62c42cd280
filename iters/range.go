package iters

import "math"

// Integer covers the fixed-width integer types a RangeIter can run over.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64
}

// RangeIter traverses the half-open interval [start, end) in steps of one.
// It is double-ended and carries the exact-size promise: the remaining count
// is always end - cursor, known precisely.
type RangeIter[T Integer] struct {
	cur T // next value yielded from the front
	end T // one past the last value yielded from the back
}

// Range returns an iterator over start, start+1, ..., end-1.
// An empty range (start >= end) is valid and immediately exhausted.
//
// Range panics if the interval holds more than math.MaxInt elements (possible
// for the 64-bit element types): such a count cannot be reported through
// SizeHint, and a wrong count would break the exact-size promise this type
// grants.
func Range[T Integer](start, end T) *RangeIter[T] {
	if start > end {
		start = end
	}
	if span(start, end) > math.MaxInt {
		panic("iters: range spans more elements than an int can count")
	}
	return &RangeIter[T]{cur: start, end: end}
}

// span computes end - start as an unsigned 64-bit value, with start <= end.
// The conversions sign-extend, so the two's-complement difference is the true
// element count for signed and unsigned element types alike, even where the
// subtraction would overflow in T (int8(127) - int8(-128), say).
func span[T Integer](start, end T) uint64 {
	return uint64(end) - uint64(start)
}

func (r *RangeIter[T]) Next() (T, bool) {
	if r.cur == r.end {
		var zero T
		return zero, false
	}
	v := r.cur
	r.cur++
	return v, true
}

func (r *RangeIter[T]) NextBack() (T, bool) {
	if r.cur == r.end {
		var zero T
		return zero, false
	}
	r.end--
	return r.end, true
}

func (r *RangeIter[T]) SizeHint() (lower, upper int, upperKnown bool) {
	n := int(span(r.cur, r.end))
	return n, n, true
}

// ExactSize marks the exact-size promise; see ExactSizeIterator.
func (r *RangeIter[T]) ExactSize() {}

var _ ExactSizeDoubleEnded[int] = (*RangeIter[int])(nil)
