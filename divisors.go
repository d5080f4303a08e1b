package primes

import (
	"iter"
	"slices"
)

// Factor is a prime dividing a number together with its multiplicity.
type Factor struct {
	Prime    uint64
	Exponent uint64
}

// Factorization lazily yields the prime factors of a number in ascending
// order. The product of Prime^Exponent over all factors equals the number.
type Factorization struct {
	remaining  uint64
	candidates *Primes
}

func newFactorization(n uint64, config Config) *Factorization {
	return &Factorization{
		remaining:  n,
		candidates: newBelow(isqrt(n), config),
	}
}

// Next returns the next factor. The boolean is false once the number has been
// fully divided out.
func (f *Factorization) Next() (Factor, bool) {
	for f.remaining > 1 {
		p, ok := f.candidates.Next()
		// Every prime below p has been divided out already, so a remainder
		// without candidates up to its square root is itself prime.
		if !ok || !squareAtMost(p, f.remaining) {
			factor := Factor{Prime: f.remaining, Exponent: 1}
			f.remaining = 1
			return factor, true
		}

		var exponent uint64
		for f.remaining%p == 0 {
			f.remaining /= p
			exponent++
		}
		if exponent > 0 {
			return Factor{Prime: p, Exponent: exponent}, true
		}
	}
	return Factor{}, false
}

// All returns an iterator over the remaining factors.
func (f *Factorization) All() iter.Seq[Factor] {
	return func(yield func(Factor) bool) {
		for {
			factor, ok := f.Next()
			if !ok || !yield(factor) {
				return
			}
		}
	}
}

// Collect drains the factorization into a slice. An empty factorization
// yields an empty, non-nil slice.
func (f *Factorization) Collect() []Factor {
	return slices.AppendSeq(make([]Factor, 0), f.All())
}
