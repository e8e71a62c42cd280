package zip_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/iters"
	"lockstep/zip"
)

// countingIter records how many times Next was pulled, so tests can observe
// how far a component was advanced after the zip terminates.
type countingIter[T any] struct {
	inner iters.Iterator[T]
	calls int
}

func (c *countingIter[T]) Next() (T, bool) {
	c.calls++
	return c.inner.Next()
}

func (c *countingIter[T]) SizeHint() (lower, upper int, upperKnown bool) {
	return c.inner.SizeHint()
}

func TestZipStopsAtShortest(t *testing.T) {
	// lengths 3, 5, 4 yield exactly min = 3 tuples
	z := zip.NewZip3(
		iters.Slice([]int{1, 2, 3}),
		iters.Slice([]string{"a", "b", "c", "d", "e"}),
		iters.Range(0, 4),
	)

	var got []zip.Tuple3[int, string, int]
	for {
		tup, ok := z.Next()
		if !ok {
			break
		}
		got = append(got, tup)
	}

	require.Equal(t, []zip.Tuple3[int, string, int]{
		{1, "a", 0},
		{2, "b", 1},
		{3, "c", 2},
	}, got)

	// exhaustion is stable
	_, ok := z.Next()
	assert.False(t, ok)
}

func TestZipSizeHint(t *testing.T) {
	t.Run("MinOfBounds", func(t *testing.T) {
		z := zip.NewZip2(iters.Range(0, 7), iters.Slice(make([]byte, 4)))
		lower, upper, known := z.SizeHint()
		assert.Equal(t, 4, lower)
		assert.Equal(t, 4, upper)
		assert.True(t, known)
	})

	t.Run("UpperAbsentIfAnyComponentLacksOne", func(t *testing.T) {
		unbounded := iters.FromSeq(slices.Values([]int{1, 2, 3}))
		z := zip.NewZip2(iters.Range(0, 7), unbounded)
		lower, _, known := z.SizeHint()
		assert.Equal(t, 0, lower)
		assert.False(t, known)
	})

	t.Run("Idempotent", func(t *testing.T) {
		z := zip.NewZip2(iters.Range(0, 5), iters.Range(0, 3))
		l1, u1, k1 := z.SizeHint()
		l2, u2, k2 := z.SizeHint()
		assert.Equal(t, l1, l2)
		assert.Equal(t, u1, u2)
		assert.Equal(t, k1, k2)
	})

	t.Run("ShrinksWhileStepping", func(t *testing.T) {
		z := zip.NewZip2(iters.Range(0, 5), iters.Range(0, 3))
		_, ok := z.Next()
		require.True(t, ok)
		lower, upper, known := z.SizeHint()
		assert.Equal(t, 2, lower)
		assert.Equal(t, 2, upper)
		assert.True(t, known)
	})
}

func TestZipPartialConsumption(t *testing.T) {
	// On the terminating step, components are still pulled left to right up
	// to the first exhausted one; components after it stay untouched.
	c1 := &countingIter[int]{inner: iters.Range(0, 5)}
	c2 := &countingIter[int]{inner: iters.Range(0, 2)}
	c3 := &countingIter[int]{inner: iters.Range(0, 5)}

	z := zip.NewZip3[int, int, int](c1, c2, c3)
	n := 0
	for {
		if _, ok := z.Next(); !ok {
			break
		}
		n++
	}

	require.Equal(t, 2, n)
	// two producing steps plus the terminating step
	assert.Equal(t, 3, c1.calls, "component before the exhausted one is pulled on the final step")
	assert.Equal(t, 3, c2.calls, "the exhausted component reports its own exhaustion")
	assert.Equal(t, 2, c3.calls, "components after the exhausted one are not pulled")
}

func TestZipOfZips(t *testing.T) {
	inner := zip.NewZip2(iters.Range(0, 3), iters.Slice([]string{"a", "b", "c"}))
	outer := zip.NewZip2[zip.Tuple2[int, string], int](inner, iters.Range(10, 13))

	tup, ok := outer.Next()
	require.True(t, ok)
	assert.Equal(t, zip.Tuple2[int, string]{0, "a"}, tup.V1)
	assert.Equal(t, 10, tup.V2)
}

func TestZip1(t *testing.T) {
	z := zip.NewZip1(iters.Slice([]int{4, 5}))
	require.Equal(t, []int{4, 5}, iters.Collect(z))

	lower, upper, known := z.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)
	assert.True(t, known)
}

func TestZip9(t *testing.T) {
	z := zip.NewZip9(
		iters.Range(0, 3), iters.Range(1, 4), iters.Range(2, 5),
		iters.Range(3, 6), iters.Range(4, 7), iters.Range(5, 8),
		iters.Range(6, 9), iters.Range(7, 10), iters.Range(8, 10),
	)

	lower, upper, known := z.SizeHint()
	require.True(t, known)
	require.Equal(t, 2, lower)
	require.Equal(t, 2, upper)

	tup, ok := z.Next()
	require.True(t, ok)
	assert.Equal(t, zip.Tuple9[int, int, int, int, int, int, int, int, int]{0, 1, 2, 3, 4, 5, 6, 7, 8}, tup)

	_, ok = z.Next()
	require.True(t, ok)
	_, ok = z.Next()
	assert.False(t, ok)
}
