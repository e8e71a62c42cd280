// Package lists provides a generic array-backed list with pull-iterator
// traversals that carry the exact-size promise of lockstep/iters.
package lists

import (
	"fmt"
	"iter"
	"slices"

	"lockstep/iters"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// ArrayList is a growable list backed by a slice.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// Add appends one or more elements to the end of the list.
func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

// Insert inserts an element at the specified index.
// Returns an error if index < 0 or index > Size().
func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Clone returns a shallow copy of the list.
// Note: if T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(al.data)}
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

// Values returns a push-style view of the elements (range-over-func).
func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// Backward returns a push-style view of index/element pairs in reverse order.
func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}

// Iter returns an exact-size, double-ended traversal of the current contents.
// The list must not be modified while the iterator is in use.
func (al *ArrayList[T]) Iter() *iters.SliceIter[T] {
	return iters.Slice(al.data)
}

// IntoIter detaches the backing storage and returns an exact-size, consuming
// traversal of it. The list is empty afterwards; the iterator owns the
// elements.
func (al *ArrayList[T]) IntoIter() *iters.SliceIter[T] {
	data := al.data
	al.data = nil
	return iters.Slice(data)
}
