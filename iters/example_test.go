package iters_test

import (
	"fmt"

	"lockstep/iters"
)

func ExampleRange() {
	for v := range iters.ToSeq(iters.Range(1, 5)) {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
}

func ExampleReverse() {
	it := iters.Reverse(iters.Slice([]string{"a", "b", "c"}))
	fmt.Println(iters.Collect(it))

	// Output:
	// [c b a]
}

func ExampleLimit() {
	it := iters.Limit(iters.Range(0, 10), 4)

	lower, upper, _ := it.SizeHint()
	fmt.Println(lower, upper)
	fmt.Println(iters.Collect(it))

	// Output:
	// 4 4
	// [0 1 2 3]
}
