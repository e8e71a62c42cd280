package iters

// Iterator is the pull-based traversal contract every sequence in this module
// implements. An iterator has a mutable internal cursor; it is not safe for
// concurrent use.
type Iterator[T any] interface {
	// Next advances the cursor and returns the next element.
	// It returns the zero value and false once the sequence is exhausted.
	Next() (T, bool)

	// SizeHint reports bounds on the number of remaining elements:
	// at least lower, and at most upper when upperKnown is true.
	// It must be O(1), must never traverse the sequence, and must report
	// lower == 0 once the sequence is exhausted. Calling it repeatedly
	// without stepping returns the same values.
	SizeHint() (lower, upper int, upperKnown bool)
}

// DoubleEnded is an Iterator that can also be consumed from the back.
// Next and NextBack share the same remaining elements: the two cursors
// move toward each other and the sequence is exhausted when they meet.
type DoubleEnded[T any] interface {
	Iterator[T]

	// NextBack returns the last remaining element, or the zero value and
	// false if the sequence is exhausted.
	NextBack() (T, bool)
}

// ExactSizeIterator is an Iterator whose SizeHint is guaranteed to be an
// exact count: lower == upper == the true number of remaining elements, at
// every point of the traversal, for every instance of the implementing type.
//
// ExactSize is a marker with no behavior. Implementing it is a type-level
// promise that this package cannot verify and that consumers (notably the
// trusted combinators in lockstep/zip) rely on without runtime checks.
// Granting it to a type whose hint can ever be inexact is a contract
// violation with undefined consequences for those consumers. Only implement
// it after convincing yourself the promise holds for all instances.
type ExactSizeIterator[T any] interface {
	Iterator[T]

	// ExactSize does nothing. It exists so that claiming the exact-size
	// promise is an explicit, searchable line of code.
	ExactSize()
}

// ExactSizeDoubleEnded is a DoubleEnded iterator carrying the exact-size
// promise. It is the required input of Reverse.
type ExactSizeDoubleEnded[T any] interface {
	DoubleEnded[T]
	ExactSize()
}
