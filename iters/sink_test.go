package iters_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/iters"
)

func TestCollect(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		got := iters.Collect(iters.Range(0, 5))
		require.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})

	t.Run("PreallocatesFromExactHint", func(t *testing.T) {
		got := iters.Collect(iters.Range(0, 100))
		assert.Equal(t, 100, cap(got))
	})

	t.Run("Empty", func(t *testing.T) {
		got := iters.Collect(iters.Slice([]int{}))
		assert.Empty(t, got)
	})

	t.Run("UnknownSize", func(t *testing.T) {
		got := iters.Collect(iters.FromSeq(slices.Values([]int{7, 8})))
		assert.Equal(t, []int{7, 8}, got)
	})
}

func TestCount(t *testing.T) {
	assert.Equal(t, 4, iters.Count(iters.Range(10, 14)))
	assert.Equal(t, 0, iters.Count(iters.Slice[string](nil)))
}

func TestFirst(t *testing.T) {
	v, ok := iters.First(iters.Slice([]int{9, 1}))
	require.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = iters.First(iters.Slice[int](nil))
	assert.False(t, ok)
}
