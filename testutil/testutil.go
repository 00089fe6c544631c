package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64 returns a pseudo-random int64 over the full range, negatives included.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(r.rand.Uint64())
}

// Int64Range returns a pseudo-random int64 in [minVal, maxVal].
func (r *RNG) Int64Range(minVal, maxVal int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := uint64(maxVal - minVal)
	if span == math.MaxUint64 {
		return int64(r.rand.Uint64())
	}
	return minVal + int64(r.rand.Uint64()%(span+1))
}

// Pattern selects the element distribution produced by Values.
type Pattern int

const (
	// Uniform draws small signed values that never overflow when summed.
	Uniform Pattern = iota
	// FullRange draws from all of int64; sums wrap.
	FullRange
	// AllZero fills with 0.
	AllZero
	// AllNegative fills with values in [-1000, -1].
	AllNegative
	// NearOverflow alternates values close to MaxInt64 and MinInt64.
	NearOverflow
)

// Patterns lists every Pattern.
var Patterns = []Pattern{Uniform, FullRange, AllZero, AllNegative, NearOverflow}

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case Uniform:
		return "uniform"
	case FullRange:
		return "full-range"
	case AllZero:
		return "all-zero"
	case AllNegative:
		return "all-negative"
	case NearOverflow:
		return "near-overflow"
	default:
		return "unknown"
	}
}

// Values returns n int64 values following the pattern.
func (r *RNG) Values(n int, p Pattern) []int64 {
	out := make([]int64, n)
	for i := range out {
		switch p {
		case Uniform:
			out[i] = r.Int64Range(-1_000_000, 1_000_000)
		case FullRange:
			out[i] = r.Int64()
		case AllZero:
		case AllNegative:
			out[i] = r.Int64Range(-1000, -1)
		case NearOverflow:
			if i%2 == 0 {
				out[i] = math.MaxInt64 - r.Int64Range(0, 16)
			} else {
				out[i] = math.MinInt64 + r.Int64Range(0, 16)
			}
		}
	}
	return out
}

// Sum is the reference sum of xs with wrapping overflow.
func Sum(xs []int64) int64 {
	var s int64
	for _, x := range xs {
		s += x
	}
	return s
}
