package zip

import "lockstep/iters"

// Same hand-expanded template as zip.go, over exact-size components.

// TrustedZip1 is the degenerate arity of the trusted combinator: a single
// exact-size component whose termination is driven by the cached count.
type TrustedZip1[T1 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
}

// NewTrustedZip1 wraps the component, taking ownership, and caches its
// remaining count. It panics if the component's hint is not exact, which only
// happens on a mis-granted exact-size promise.
func NewTrustedZip1[T1 any](c1 iters.ExactSizeIterator[T1]) *TrustedZip1[T1] {
	return &TrustedZip1[T1]{remaining: exactLen(c1), c1: c1}
}

func (z *TrustedZip1[T1]) Next() (T1, bool) {
	if z.remaining == 0 {
		var zero T1
		return zero, false
	}
	v1, _ := z.c1.Next()
	z.remaining--
	return v1, true
}

func (z *TrustedZip1[T1]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip1[T1]) ExactSize() {}

// TrustedZip2 runs two exact-size iterators in lockstep. The combined
// remaining count is computed once at construction; every step consults only
// that counter and pulls from both components without checking their
// exhaustion flags. The package comment spells out the contract this relies
// on and the consequences of breaking it.
type TrustedZip2[T1, T2 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
}

// NewTrustedZip2 wraps the components, taking ownership of them, and caches
// the combined remaining count (the minimum of the components' counts).
// It panics if a component's hint is not exact, which only happens on a
// mis-granted exact-size promise.
func NewTrustedZip2[T1, T2 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2]) *TrustedZip2[T1, T2] {
	n := min(exactLen(c1), exactLen(c2))
	return &TrustedZip2[T1, T2]{remaining: n, c1: c1, c2: c2}
}

func (z *TrustedZip2[T1, T2]) Next() (Tuple2[T1, T2], bool) {
	if z.remaining == 0 {
		var zero Tuple2[T1, T2]
		return zero, false
	}
	// The exhaustion flags are deliberately ignored: remaining > 0
	// guarantees every component still holds an element, per the
	// exact-size contract.
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	z.remaining--
	return Tuple2[T1, T2]{v1, v2}, true
}

func (z *TrustedZip2[T1, T2]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip2[T1, T2]) ExactSize() {}

// TrustedZip3 runs three exact-size iterators in lockstep; see TrustedZip2.
type TrustedZip3[T1, T2, T3 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
}

// NewTrustedZip3 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip3[T1, T2, T3 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3]) *TrustedZip3[T1, T2, T3] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3))
	return &TrustedZip3[T1, T2, T3]{remaining: n, c1: c1, c2: c2, c3: c3}
}

func (z *TrustedZip3[T1, T2, T3]) Next() (Tuple3[T1, T2, T3], bool) {
	if z.remaining == 0 {
		var zero Tuple3[T1, T2, T3]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	z.remaining--
	return Tuple3[T1, T2, T3]{v1, v2, v3}, true
}

func (z *TrustedZip3[T1, T2, T3]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip3[T1, T2, T3]) ExactSize() {}

// TrustedZip4 runs four exact-size iterators in lockstep; see TrustedZip2.
type TrustedZip4[T1, T2, T3, T4 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
	c4        iters.ExactSizeIterator[T4]
}

// NewTrustedZip4 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip4[T1, T2, T3, T4 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3], c4 iters.ExactSizeIterator[T4]) *TrustedZip4[T1, T2, T3, T4] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3), exactLen(c4))
	return &TrustedZip4[T1, T2, T3, T4]{remaining: n, c1: c1, c2: c2, c3: c3, c4: c4}
}

func (z *TrustedZip4[T1, T2, T3, T4]) Next() (Tuple4[T1, T2, T3, T4], bool) {
	if z.remaining == 0 {
		var zero Tuple4[T1, T2, T3, T4]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	v4, _ := z.c4.Next()
	z.remaining--
	return Tuple4[T1, T2, T3, T4]{v1, v2, v3, v4}, true
}

func (z *TrustedZip4[T1, T2, T3, T4]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip4[T1, T2, T3, T4]) ExactSize() {}

// TrustedZip5 runs five exact-size iterators in lockstep; see TrustedZip2.
type TrustedZip5[T1, T2, T3, T4, T5 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
	c4        iters.ExactSizeIterator[T4]
	c5        iters.ExactSizeIterator[T5]
}

// NewTrustedZip5 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip5[T1, T2, T3, T4, T5 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3], c4 iters.ExactSizeIterator[T4], c5 iters.ExactSizeIterator[T5]) *TrustedZip5[T1, T2, T3, T4, T5] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3), exactLen(c4), exactLen(c5))
	return &TrustedZip5[T1, T2, T3, T4, T5]{remaining: n, c1: c1, c2: c2, c3: c3, c4: c4, c5: c5}
}

func (z *TrustedZip5[T1, T2, T3, T4, T5]) Next() (Tuple5[T1, T2, T3, T4, T5], bool) {
	if z.remaining == 0 {
		var zero Tuple5[T1, T2, T3, T4, T5]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	v4, _ := z.c4.Next()
	v5, _ := z.c5.Next()
	z.remaining--
	return Tuple5[T1, T2, T3, T4, T5]{v1, v2, v3, v4, v5}, true
}

func (z *TrustedZip5[T1, T2, T3, T4, T5]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip5[T1, T2, T3, T4, T5]) ExactSize() {}

// TrustedZip6 runs six exact-size iterators in lockstep; see TrustedZip2.
type TrustedZip6[T1, T2, T3, T4, T5, T6 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
	c4        iters.ExactSizeIterator[T4]
	c5        iters.ExactSizeIterator[T5]
	c6        iters.ExactSizeIterator[T6]
}

// NewTrustedZip6 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip6[T1, T2, T3, T4, T5, T6 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3], c4 iters.ExactSizeIterator[T4], c5 iters.ExactSizeIterator[T5], c6 iters.ExactSizeIterator[T6]) *TrustedZip6[T1, T2, T3, T4, T5, T6] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3), exactLen(c4), exactLen(c5), exactLen(c6))
	return &TrustedZip6[T1, T2, T3, T4, T5, T6]{remaining: n, c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6}
}

func (z *TrustedZip6[T1, T2, T3, T4, T5, T6]) Next() (Tuple6[T1, T2, T3, T4, T5, T6], bool) {
	if z.remaining == 0 {
		var zero Tuple6[T1, T2, T3, T4, T5, T6]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	v4, _ := z.c4.Next()
	v5, _ := z.c5.Next()
	v6, _ := z.c6.Next()
	z.remaining--
	return Tuple6[T1, T2, T3, T4, T5, T6]{v1, v2, v3, v4, v5, v6}, true
}

func (z *TrustedZip6[T1, T2, T3, T4, T5, T6]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip6[T1, T2, T3, T4, T5, T6]) ExactSize() {}

// TrustedZip7 runs seven exact-size iterators in lockstep; see TrustedZip2.
type TrustedZip7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
	c4        iters.ExactSizeIterator[T4]
	c5        iters.ExactSizeIterator[T5]
	c6        iters.ExactSizeIterator[T6]
	c7        iters.ExactSizeIterator[T7]
}

// NewTrustedZip7 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip7[T1, T2, T3, T4, T5, T6, T7 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3], c4 iters.ExactSizeIterator[T4], c5 iters.ExactSizeIterator[T5], c6 iters.ExactSizeIterator[T6], c7 iters.ExactSizeIterator[T7]) *TrustedZip7[T1, T2, T3, T4, T5, T6, T7] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3), exactLen(c4), exactLen(c5), exactLen(c6), exactLen(c7))
	return &TrustedZip7[T1, T2, T3, T4, T5, T6, T7]{remaining: n, c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6, c7: c7}
}

func (z *TrustedZip7[T1, T2, T3, T4, T5, T6, T7]) Next() (Tuple7[T1, T2, T3, T4, T5, T6, T7], bool) {
	if z.remaining == 0 {
		var zero Tuple7[T1, T2, T3, T4, T5, T6, T7]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	v4, _ := z.c4.Next()
	v5, _ := z.c5.Next()
	v6, _ := z.c6.Next()
	v7, _ := z.c7.Next()
	z.remaining--
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{v1, v2, v3, v4, v5, v6, v7}, true
}

func (z *TrustedZip7[T1, T2, T3, T4, T5, T6, T7]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip7[T1, T2, T3, T4, T5, T6, T7]) ExactSize() {}

// TrustedZip8 runs eight exact-size iterators in lockstep; see TrustedZip2.
type TrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
	c4        iters.ExactSizeIterator[T4]
	c5        iters.ExactSizeIterator[T5]
	c6        iters.ExactSizeIterator[T6]
	c7        iters.ExactSizeIterator[T7]
	c8        iters.ExactSizeIterator[T8]
}

// NewTrustedZip8 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3], c4 iters.ExactSizeIterator[T4], c5 iters.ExactSizeIterator[T5], c6 iters.ExactSizeIterator[T6], c7 iters.ExactSizeIterator[T7], c8 iters.ExactSizeIterator[T8]) *TrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3), exactLen(c4), exactLen(c5), exactLen(c6), exactLen(c7), exactLen(c8))
	return &TrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8]{remaining: n, c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6, c7: c7, c8: c8}
}

func (z *TrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8]) Next() (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], bool) {
	if z.remaining == 0 {
		var zero Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	v4, _ := z.c4.Next()
	v5, _ := z.c5.Next()
	v6, _ := z.c6.Next()
	v7, _ := z.c7.Next()
	v8, _ := z.c8.Next()
	z.remaining--
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{v1, v2, v3, v4, v5, v6, v7, v8}, true
}

func (z *TrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip8[T1, T2, T3, T4, T5, T6, T7, T8]) ExactSize() {}

// TrustedZip9 runs nine exact-size iterators in lockstep; see TrustedZip2.
// Nine is the highest arity provided.
type TrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	remaining int
	c1        iters.ExactSizeIterator[T1]
	c2        iters.ExactSizeIterator[T2]
	c3        iters.ExactSizeIterator[T3]
	c4        iters.ExactSizeIterator[T4]
	c5        iters.ExactSizeIterator[T5]
	c6        iters.ExactSizeIterator[T6]
	c7        iters.ExactSizeIterator[T7]
	c8        iters.ExactSizeIterator[T8]
	c9        iters.ExactSizeIterator[T9]
}

// NewTrustedZip9 wraps the components, taking ownership, and caches the
// combined remaining count; see NewTrustedZip2.
func NewTrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](c1 iters.ExactSizeIterator[T1], c2 iters.ExactSizeIterator[T2], c3 iters.ExactSizeIterator[T3], c4 iters.ExactSizeIterator[T4], c5 iters.ExactSizeIterator[T5], c6 iters.ExactSizeIterator[T6], c7 iters.ExactSizeIterator[T7], c8 iters.ExactSizeIterator[T8], c9 iters.ExactSizeIterator[T9]) *TrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	n := min(exactLen(c1), exactLen(c2), exactLen(c3), exactLen(c4), exactLen(c5), exactLen(c6), exactLen(c7), exactLen(c8), exactLen(c9))
	return &TrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{remaining: n, c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6, c7: c7, c8: c8, c9: c9}
}

func (z *TrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Next() (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], bool) {
	if z.remaining == 0 {
		var zero Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
		return zero, false
	}
	v1, _ := z.c1.Next()
	v2, _ := z.c2.Next()
	v3, _ := z.c3.Next()
	v4, _ := z.c4.Next()
	v5, _ := z.c5.Next()
	v6, _ := z.c6.Next()
	v7, _ := z.c7.Next()
	v8, _ := z.c8.Next()
	v9, _ := z.c9.Next()
	z.remaining--
	return Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{v1, v2, v3, v4, v5, v6, v7, v8, v9}, true
}

func (z *TrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) SizeHint() (lower, upper int, upperKnown bool) {
	return z.remaining, z.remaining, true
}

// ExactSize marks the exact-size promise, which holds by construction.
func (z *TrustedZip9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) ExactSize() {}

var (
	_ iters.ExactSizeIterator[int]                   = (*TrustedZip1[int])(nil)
	_ iters.ExactSizeIterator[Tuple2[int, string]]   = (*TrustedZip2[int, string])(nil)
	_ iters.ExactSizeIterator[Tuple3[int, int, int]] = (*TrustedZip3[int, int, int])(nil)
	_ iters.ExactSizeIterator[Tuple9[int, int, int, int, int, int, int, int, int]] = (*TrustedZip9[int, int, int, int, int, int, int, int, int])(nil)
)
