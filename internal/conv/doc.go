// Package conv provides checked integer conversions.
//
// Element counts are int64 in the public API while Go slices are indexed by
// int; these helpers make the narrowing explicit so that a count which cannot
// be addressed is reported instead of silently truncated.
package conv
