package zip

import "lockstep/iters"

// Each arity below is the same template expanded by hand; a change to one
// applies to all of them.

// Zip1 is the degenerate arity: it adapts a single component, yielding its
// elements unchanged (Go has no one-field tuple worth returning).
type Zip1[T1 any] struct {
	c1 iters.Iterator[T1]
}

// NewZip1 wraps the component as-is, taking ownership of it.
func NewZip1[T1 any](c1 iters.Iterator[T1]) *Zip1[T1] {
	return &Zip1[T1]{c1: c1}
}

func (z *Zip1[T1]) Next() (T1, bool) {
	return z.c1.Next()
}

func (z *Zip1[T1]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.c1.SizeHint()
}

// Zip2 runs two iterators in lockstep, yielding pairs until either component
// is exhausted.
//
// Components are pulled left to right on every step. On the terminating step
// the components before the first exhausted one are still pulled, and those
// values are discarded; see the package comment.
type Zip2[T1, T2 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
}

// NewZip2 wraps the components as-is, taking ownership of them.
// It cannot fail.
func NewZip2[T1, T2 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2]) *Zip2[T1, T2] {
	return &Zip2[T1, T2]{c1: c1, c2: c2}
}

func (z *Zip2[T1, T2]) Next() (Tuple2[T1, T2], bool) {
	var zero Tuple2[T1, T2]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	return Tuple2[T1, T2]{v1, v2}, true
}

func (z *Zip2[T1, T2]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2))
	return h.lower, h.upper, h.upperKnown
}

// Zip3 runs three iterators in lockstep; see Zip2.
type Zip3[T1, T2, T3 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
}

// NewZip3 wraps the components as-is, taking ownership of them.
func NewZip3[T1, T2, T3 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3]) *Zip3[T1, T2, T3] {
	return &Zip3[T1, T2, T3]{c1: c1, c2: c2, c3: c3}
}

func (z *Zip3[T1, T2, T3]) Next() (Tuple3[T1, T2, T3], bool) {
	var zero Tuple3[T1, T2, T3]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	return Tuple3[T1, T2, T3]{v1, v2, v3}, true
}

func (z *Zip3[T1, T2, T3]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3))
	return h.lower, h.upper, h.upperKnown
}

// Zip4 runs four iterators in lockstep; see Zip2.
type Zip4[T1, T2, T3, T4 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
	c4 iters.Iterator[T4]
}

// NewZip4 wraps the components as-is, taking ownership of them.
func NewZip4[T1, T2, T3, T4 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3], c4 iters.Iterator[T4]) *Zip4[T1, T2, T3, T4] {
	return &Zip4[T1, T2, T3, T4]{c1: c1, c2: c2, c3: c3, c4: c4}
}

func (z *Zip4[T1, T2, T3, T4]) Next() (Tuple4[T1, T2, T3, T4], bool) {
	var zero Tuple4[T1, T2, T3, T4]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	v4, ok := z.c4.Next()
	if !ok {
		return zero, false
	}
	return Tuple4[T1, T2, T3, T4]{v1, v2, v3, v4}, true
}

func (z *Zip4[T1, T2, T3, T4]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3)).min(hintOf(z.c4))
	return h.lower, h.upper, h.upperKnown
}

// Zip5 runs five iterators in lockstep; see Zip2.
type Zip5[T1, T2, T3, T4, T5 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
	c4 iters.Iterator[T4]
	c5 iters.Iterator[T5]
}

// NewZip5 wraps the components as-is, taking ownership of them.
func NewZip5[T1, T2, T3, T4, T5 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3], c4 iters.Iterator[T4], c5 iters.Iterator[T5]) *Zip5[T1, T2, T3, T4, T5] {
	return &Zip5[T1, T2, T3, T4, T5]{c1: c1, c2: c2, c3: c3, c4: c4, c5: c5}
}

func (z *Zip5[T1, T2, T3, T4, T5]) Next() (Tuple5[T1, T2, T3, T4, T5], bool) {
	var zero Tuple5[T1, T2, T3, T4, T5]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	v4, ok := z.c4.Next()
	if !ok {
		return zero, false
	}
	v5, ok := z.c5.Next()
	if !ok {
		return zero, false
	}
	return Tuple5[T1, T2, T3, T4, T5]{v1, v2, v3, v4, v5}, true
}

func (z *Zip5[T1, T2, T3, T4, T5]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3)).min(hintOf(z.c4)).min(hintOf(z.c5))
	return h.lower, h.upper, h.upperKnown
}

// Zip6 runs six iterators in lockstep; see Zip2.
type Zip6[T1, T2, T3, T4, T5, T6 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
	c4 iters.Iterator[T4]
	c5 iters.Iterator[T5]
	c6 iters.Iterator[T6]
}

// NewZip6 wraps the components as-is, taking ownership of them.
func NewZip6[T1, T2, T3, T4, T5, T6 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3], c4 iters.Iterator[T4], c5 iters.Iterator[T5], c6 iters.Iterator[T6]) *Zip6[T1, T2, T3, T4, T5, T6] {
	return &Zip6[T1, T2, T3, T4, T5, T6]{c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6}
}

func (z *Zip6[T1, T2, T3, T4, T5, T6]) Next() (Tuple6[T1, T2, T3, T4, T5, T6], bool) {
	var zero Tuple6[T1, T2, T3, T4, T5, T6]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	v4, ok := z.c4.Next()
	if !ok {
		return zero, false
	}
	v5, ok := z.c5.Next()
	if !ok {
		return zero, false
	}
	v6, ok := z.c6.Next()
	if !ok {
		return zero, false
	}
	return Tuple6[T1, T2, T3, T4, T5, T6]{v1, v2, v3, v4, v5, v6}, true
}

func (z *Zip6[T1, T2, T3, T4, T5, T6]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3)).min(hintOf(z.c4)).min(hintOf(z.c5)).min(hintOf(z.c6))
	return h.lower, h.upper, h.upperKnown
}

// Zip7 runs seven iterators in lockstep; see Zip2.
type Zip7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
	c4 iters.Iterator[T4]
	c5 iters.Iterator[T5]
	c6 iters.Iterator[T6]
	c7 iters.Iterator[T7]
}

// NewZip7 wraps the components as-is, taking ownership of them.
func NewZip7[T1, T2, T3, T4, T5, T6, T7 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3], c4 iters.Iterator[T4], c5 iters.Iterator[T5], c6 iters.Iterator[T6], c7 iters.Iterator[T7]) *Zip7[T1, T2, T3, T4, T5, T6, T7] {
	return &Zip7[T1, T2, T3, T4, T5, T6, T7]{c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6, c7: c7}
}

func (z *Zip7[T1, T2, T3, T4, T5, T6, T7]) Next() (Tuple7[T1, T2, T3, T4, T5, T6, T7], bool) {
	var zero Tuple7[T1, T2, T3, T4, T5, T6, T7]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	v4, ok := z.c4.Next()
	if !ok {
		return zero, false
	}
	v5, ok := z.c5.Next()
	if !ok {
		return zero, false
	}
	v6, ok := z.c6.Next()
	if !ok {
		return zero, false
	}
	v7, ok := z.c7.Next()
	if !ok {
		return zero, false
	}
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{v1, v2, v3, v4, v5, v6, v7}, true
}

func (z *Zip7[T1, T2, T3, T4, T5, T6, T7]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3)).min(hintOf(z.c4)).min(hintOf(z.c5)).min(hintOf(z.c6)).min(hintOf(z.c7))
	return h.lower, h.upper, h.upperKnown
}

// Zip8 runs eight iterators in lockstep; see Zip2.
type Zip8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
	c4 iters.Iterator[T4]
	c5 iters.Iterator[T5]
	c6 iters.Iterator[T6]
	c7 iters.Iterator[T7]
	c8 iters.Iterator[T8]
}

// NewZip8 wraps the components as-is, taking ownership of them.
func NewZip8[T1, T2, T3, T4, T5, T6, T7, T8 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3], c4 iters.Iterator[T4], c5 iters.Iterator[T5], c6 iters.Iterator[T6], c7 iters.Iterator[T7], c8 iters.Iterator[T8]) *Zip8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return &Zip8[T1, T2, T3, T4, T5, T6, T7, T8]{c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6, c7: c7, c8: c8}
}

func (z *Zip8[T1, T2, T3, T4, T5, T6, T7, T8]) Next() (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], bool) {
	var zero Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	v4, ok := z.c4.Next()
	if !ok {
		return zero, false
	}
	v5, ok := z.c5.Next()
	if !ok {
		return zero, false
	}
	v6, ok := z.c6.Next()
	if !ok {
		return zero, false
	}
	v7, ok := z.c7.Next()
	if !ok {
		return zero, false
	}
	v8, ok := z.c8.Next()
	if !ok {
		return zero, false
	}
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{v1, v2, v3, v4, v5, v6, v7, v8}, true
}

func (z *Zip8[T1, T2, T3, T4, T5, T6, T7, T8]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3)).min(hintOf(z.c4)).min(hintOf(z.c5)).min(hintOf(z.c6)).min(hintOf(z.c7)).min(hintOf(z.c8))
	return h.lower, h.upper, h.upperKnown
}

// Zip9 runs nine iterators in lockstep; see Zip2. Nine is the highest arity
// provided.
type Zip9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	c1 iters.Iterator[T1]
	c2 iters.Iterator[T2]
	c3 iters.Iterator[T3]
	c4 iters.Iterator[T4]
	c5 iters.Iterator[T5]
	c6 iters.Iterator[T6]
	c7 iters.Iterator[T7]
	c8 iters.Iterator[T8]
	c9 iters.Iterator[T9]
}

// NewZip9 wraps the components as-is, taking ownership of them.
func NewZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](c1 iters.Iterator[T1], c2 iters.Iterator[T2], c3 iters.Iterator[T3], c4 iters.Iterator[T4], c5 iters.Iterator[T5], c6 iters.Iterator[T6], c7 iters.Iterator[T7], c8 iters.Iterator[T8], c9 iters.Iterator[T9]) *Zip9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return &Zip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6, c7: c7, c8: c8, c9: c9}
}

func (z *Zip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Next() (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], bool) {
	var zero Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
	v1, ok := z.c1.Next()
	if !ok {
		return zero, false
	}
	v2, ok := z.c2.Next()
	if !ok {
		return zero, false
	}
	v3, ok := z.c3.Next()
	if !ok {
		return zero, false
	}
	v4, ok := z.c4.Next()
	if !ok {
		return zero, false
	}
	v5, ok := z.c5.Next()
	if !ok {
		return zero, false
	}
	v6, ok := z.c6.Next()
	if !ok {
		return zero, false
	}
	v7, ok := z.c7.Next()
	if !ok {
		return zero, false
	}
	v8, ok := z.c8.Next()
	if !ok {
		return zero, false
	}
	v9, ok := z.c9.Next()
	if !ok {
		return zero, false
	}
	return Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{v1, v2, v3, v4, v5, v6, v7, v8, v9}, true
}

func (z *Zip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) SizeHint() (lower, upper int, upperKnown bool) {
	h := hintOf(z.c1).min(hintOf(z.c2)).min(hintOf(z.c3)).min(hintOf(z.c4)).min(hintOf(z.c5)).min(hintOf(z.c6)).min(hintOf(z.c7)).min(hintOf(z.c8)).min(hintOf(z.c9))
	return h.lower, h.upper, h.upperKnown
}

var (
	_ iters.Iterator[int]                    = (*Zip1[int])(nil)
	_ iters.Iterator[Tuple2[int, string]]    = (*Zip2[int, string])(nil)
	_ iters.Iterator[Tuple3[int, int, int]]  = (*Zip3[int, int, int])(nil)
	_ iters.Iterator[Tuple9[int, int, int, int, int, int, int, int, int]] = (*Zip9[int, int, int, int, int, int, int, int, int])(nil)
)
