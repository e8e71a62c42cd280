/*
Package iters provides a pull-based iterator protocol with size estimation,
sources over common Go data (integer ranges, slices), and combinators that
preserve an opt-in exact-size capability.

# Protocol

An [Iterator] yields one element per call to Next until exhaustion, and can
always be asked for a cheap [Iterator.SizeHint]: a lower bound and an optional
upper bound on the number of elements still to come. The hint is advisory; it
is what lets consumers such as [Collect] pre-size their output.

# Exact-size capability

[ExactSizeIterator] is a stronger, manually granted promise: the size hint is
always an exact count, not just a bound. The promise is a marker method with no
behavior and no runtime enforcement. Code such as lockstep/zip's trusted
combinators relies on it unconditionally, so granting it to a type that cannot
honor it is undefined behavior, not a reportable error. The types in this
package that carry the marker ([RangeIter], [SliceIter], [SlicePtrIter],
[Reversed], [Limited]) have been vetted by hand; any new implementation takes
on the same proof obligation.

# Bridging iter.Seq

[ToSeq] and [FromSeq] convert between this protocol and the standard library's
push-based iter.Seq. A sequence arriving through [FromSeq] has no usable upper
bound and never carries the exact-size capability.
*/
package iters
