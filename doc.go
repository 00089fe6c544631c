// Package vecsum provides a fixed-length int64 vector and eight ways to sum it.
//
// The vector owns a single contiguous buffer and exposes two access paths:
// the checked GetElement/SetElement pair, and Start, which returns an
// unchecked View for callers that do their own bounds reasoning. The combine
// functions sit at different points between the two:
//
//	Combine1   Len every iteration, GetElement per element
//	Combine2   Len hoisted, GetElement per element
//	Combine3   Len and Start hoisted, View.At per element, dest written each step
//	Combine4   as Combine3 with a local accumulator
//	Combine5   2x1 unrolling
//	Combine6   2x2 unrolling (two accumulators)
//	Combine7   2x1a unrolling (pair summed before accumulating)
//	Combine4b  as Combine4 with a redundant range check per element
//
// All of them return the same result for every vector; only their cost differs.
//
// # Quick Start
//
//	v, err := vecsum.New(5)
//	if err != nil { ... }
//	defer v.Close()
//
//	for i, x := range []int64{3, -1, 4, 1, 5} {
//	    v.SetElement(int64(i), x)
//	}
//
//	var sum int64
//	vecsum.Combine7(v, &sum) // 12
//
// # Memory
//
// New charges the header and then the element buffer against an optional
// resource.Controller; if the buffer cannot be sized or allocated the header
// is refunded before New returns. WithOffHeap moves the buffer into an
// anonymous mapping that Close unmaps.
//
// # Concurrency
//
// A Vector has no internal synchronization. Callers must serialize access.
package vecsum
