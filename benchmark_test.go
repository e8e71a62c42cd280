package lockstep_test

import (
	"testing"

	"lockstep/iters"
	"lockstep/zip"
)

// BenchmarkZipVariants compares the general combinator, which checks every
// component for exhaustion on each step, against the trusted combinator,
// which drives termination from the cached remaining count, and against a
// hand-written index loop as the floor.
func BenchmarkZipVariants(b *testing.B) {
	size := 1_000_000
	left := make([]int, size)
	right := make([]int, size)
	for i := range size {
		left[i] = i
		right[i] = i * 2
	}

	b.Run("GeneralZip", func(b *testing.B) {
		for b.Loop() {
			z := zip.NewZip2(iters.Slice(left), iters.Slice(right))
			sum := 0
			for {
				tup, ok := z.Next()
				if !ok {
					break
				}
				sum += tup.V1 ^ tup.V2
			}
			_ = sum
		}
	})

	b.Run("TrustedZip", func(b *testing.B) {
		for b.Loop() {
			z := zip.NewTrustedZip2(iters.Slice(left), iters.Slice(right))
			sum := 0
			for {
				tup, ok := z.Next()
				if !ok {
					break
				}
				sum += tup.V1 ^ tup.V2
			}
			_ = sum
		}
	})

	b.Run("IndexLoop", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for i := range min(len(left), len(right)) {
				sum += left[i] ^ right[i]
			}
			_ = sum
		}
	})
}
