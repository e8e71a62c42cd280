/*
Package zip combines several independently-typed iterators into one iterator
of tuples, advancing all components in lockstep and stopping at the first
exhausted component.

Two families are provided, one per arity from 1 to 9 (Go has no variadic type
parameters, so each arity is a mechanical expansion of the same template; nine
is treated as a practical upper bound rather than extended indefinitely):

  - NewZip1 .. NewZip9 build the general combinator. It works over any
    iters.Iterator components and checks each component for exhaustion on
    every step. This is the safe default.
  - NewTrustedZip1 .. NewTrustedZip9 build the optimized combinator. It only
    accepts components carrying the iters.ExactSizeIterator promise, caches
    the combined remaining count once at construction, and on each step
    decides termination from that counter alone, pulling from every component
    without looking at its exhaustion flag. If a component was wrongly granted
    the promise and runs dry early, the combinator silently emits zero values:
    that is the documented, undefined-behavior cost of eliding the per-element
    checks. Callers who cannot vouch for every component must use the general
    combinator instead.

Both families produce iterators themselves, so zips compose; a trusted zip
additionally carries the exact-size promise. Construction takes ownership of
the components: they must not be advanced or shared once wrapped.

On the step that ends a general zip, components before the first exhausted one
have already been pulled and their values are discarded, leaving them advanced
one element further than the components after it. This left-to-right
partial-consumption asymmetry is deliberate and stable; callers may rely on
the exact consumption counts.
*/
package zip
