package primes

// First returns a sequence of the first n primes.
func First(n uint64, opts ...Option) *Primes {
	return newFirst(n, applyOptions(opts...))
}

// Below returns a sequence of the primes less than or equal to limit.
func Below(limit uint64, opts ...Option) *Primes {
	return newBelow(limit, applyOptions(opts...))
}

// Nth returns the n-th prime, counting from Nth(1) == 2. The boolean is false
// for n == 0.
func Nth(n uint64, opts ...Option) (uint64, bool) {
	var last uint64
	found := false
	for p := range First(n, opts...).All() {
		last, found = p, true
	}
	return last, found
}

// Divisors returns the prime factors of n with their exponents, in ascending
// order of prime. The sequence is empty for n <= 1.
//
// For example Divisors(504) yields {2 3}, {3 2} and {7 1}.
func Divisors(n uint64, opts ...Option) *Factorization {
	return newFactorization(n, applyOptions(opts...))
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	factor, ok := Divisors(n).Next()
	return ok && factor.Prime == n
}

// Count returns the number of primes less than or equal to limit.
func Count(limit uint64, opts ...Option) uint64 {
	var count uint64
	for range Below(limit, opts...).All() {
		count++
	}
	return count
}
