package lists_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/iters"
	"lockstep/lists"
)

func TestArrayListBasicOps(t *testing.T) {
	al := lists.NewArrayList[int](2)
	assert.True(t, al.IsEmpty())

	al.Add(1, 2, 3)
	assert.Equal(t, 3, al.Size())

	require.NoError(t, al.Insert(1, 9))
	v, err := al.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	require.NoError(t, al.Set(0, 7))
	removed, err := al.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, 9, removed)
	assert.Equal(t, "[7 2 3]", al.String())

	al.Clear()
	assert.True(t, al.IsEmpty())
}

func TestArrayListBoundsErrors(t *testing.T) {
	al := lists.NewArrayList[int](0)
	al.Add(1)

	_, err := al.Get(1)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, al.Set(-1, 0), lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, al.Insert(2, 0), lists.ErrIndexOutOfBounds)
	_, err = al.Remove(5)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
}

func TestArrayListClone(t *testing.T) {
	al := lists.NewArrayList[int](0)
	al.Add(1, 2)

	cp := al.Clone()
	require.NoError(t, cp.Set(0, 99))

	v, err := al.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "clone must not share storage")
}

func TestArrayListIter(t *testing.T) {
	al := lists.NewArrayList[string](0)
	al.Add("a", "b", "c")

	t.Run("Iter", func(t *testing.T) {
		it := al.Iter()
		lower, upper, known := it.SizeHint()
		require.True(t, known)
		require.Equal(t, 3, lower)
		require.Equal(t, 3, upper)
		require.Equal(t, []string{"a", "b", "c"}, iters.Collect(it))

		// the list itself is untouched
		assert.Equal(t, 3, al.Size())
	})

	t.Run("IterBackward", func(t *testing.T) {
		it := iters.Reverse(al.Iter())
		require.Equal(t, []string{"c", "b", "a"}, iters.Collect(it))
	})

	t.Run("IntoIter", func(t *testing.T) {
		it := al.IntoIter()
		assert.True(t, al.IsEmpty(), "IntoIter detaches the storage")
		require.Equal(t, []string{"a", "b", "c"}, iters.Collect(it))
	})
}

func TestArrayListSeqViews(t *testing.T) {
	al := lists.NewArrayList[int](0)
	al.Add(10, 20)

	var values []int
	for v := range al.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []int{10, 20}, values)

	var backward []int
	for _, v := range al.Backward() {
		backward = append(backward, v)
	}
	assert.Equal(t, []int{20, 10}, backward)
}
