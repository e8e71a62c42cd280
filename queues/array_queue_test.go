package queues_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/iters"
	"lockstep/queues"
)

func TestArrayQueueFIFO(t *testing.T) {
	q := queues.NewArrayQueue[int](2)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3) // forces growth past the initial capacity

	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	for want := 1; want <= 3; want++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestArrayQueueWrapAround(t *testing.T) {
	q := queues.NewArrayQueue[int](4)
	q.EnqueueAll(1, 2, 3)

	// advance head so the next batch wraps
	q.Dequeue()
	q.Dequeue()
	q.EnqueueAll(4, 5, 6)

	var got []int
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, got)
}

func TestArrayQueueClear(t *testing.T) {
	q := queues.NewArrayQueue[string](0)
	q.EnqueueAll("a", "b")
	q.Clear()
	assert.True(t, q.IsEmpty())
	_, ok := q.Peek()
	assert.False(t, ok)
}

func TestDrain(t *testing.T) {
	q := queues.NewArrayQueue[int](8)
	q.EnqueueAll(5, 6, 7)

	d := q.Drain()
	lower, upper, known := d.SizeHint()
	require.True(t, known)
	require.Equal(t, 3, lower)
	require.Equal(t, 3, upper)

	require.Equal(t, []int{5, 6, 7}, iters.Collect(d))

	lower, upper, known = d.SizeHint()
	assert.True(t, known)
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)
}
