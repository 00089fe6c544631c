// Package testutil provides testing utilities for vecsum.
//
// This package is intended for use in tests and benchmarks only.
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Values(1000, testutil.NearOverflow)
//	want := testutil.Sum(xs) // wrapping reference sum
package testutil
