package zip

import "lockstep/iters"

// hint is a (lower, optional upper) remaining-count estimate, used to fold
// the components' estimates into the combined one.
type hint struct {
	lower      int
	upper      int
	upperKnown bool
}

func hintOf[T any](it iters.Iterator[T]) hint {
	l, u, ok := it.SizeHint()
	return hint{lower: l, upper: u, upperKnown: ok}
}

// min combines two estimates for a lockstep traversal: lower bounds combine
// by minimum, and the upper bound remains known only when both sides know
// theirs.
func (h hint) min(o hint) hint {
	out := hint{lower: min(h.lower, o.lower)}
	if h.upperKnown && o.upperKnown {
		out.upper = min(h.upper, o.upper)
		out.upperKnown = true
	}
	return out
}

// exactLen reads the remaining count of an exact-size component, verifying
// the promise the component's type made. The check runs once per component
// per construction; it exists to surface a mis-granted iters.ExactSizeIterator
// implementation at the earliest possible point, because the trusted step path
// never checks again.
func exactLen[T any](it iters.ExactSizeIterator[T]) int {
	lower, upper, ok := it.SizeHint()
	if !ok || lower != upper {
		panic("zip: component granted the exact-size promise reports an inexact size hint")
	}
	return lower
}
