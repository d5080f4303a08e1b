package primes

import (
	"math"
	"math/bits"
)

// smallNthBound covers the first five primes, where the asymptotic estimate
// below is not yet an upper bound.
const smallNthBound = 11

// squareAtMost reports whether x*x <= bound without overflowing.
func squareAtMost(x, bound uint64) bool {
	hi, lo := bits.Mul64(x, x)
	return hi == 0 && lo <= bound
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	// float64 rounding can land one off near the top of the range.
	for r > 0 && !squareAtMost(r, n) {
		r--
	}
	for squareAtMost(r+1, n) {
		r++
	}
	return r
}

// nthUpperBound over-estimates the n-th prime with n(ln n + ln ln n), which
// holds for every n >= 6.
func nthUpperBound(n uint64) uint64 {
	if n <= 5 {
		return smallNthBound
	}
	f := float64(n)
	log := math.Log(f)
	estimate := math.Ceil(f * (log + math.Log(log)))
	if estimate >= float64(math.MaxUint64) {
		return math.MaxUint64
	}
	return uint64(estimate)
}
