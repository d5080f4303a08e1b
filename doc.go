// Package primes generates prime numbers and prime factorizations lazily, using a
// segmented Sieve of Eratosthenes so that memory stays bounded by the square root
// of the largest value requested.
//
// # Overview
//
// Every sequence is produced by a small state object that is advanced one value at
// a time with Next, or ranged over through All. Nothing is shared between
// sequences: each one owns its sieve window and the primes it keeps for marking,
// so independent sequences can be used from different goroutines without locking.
//
// # Features
//
//   - First and Below: primes bounded by count or by value.
//   - Nth: the n-th prime, with Nth(1) == 2.
//   - Divisors and Factors: prime factorization in ascending order.
//   - IsPrime and Count: primality and the prime-counting function.
//
// # Limits
//
// Inputs are uint64 values. Squares are computed with a 128-bit product and the
// sieve window stops before it would pass 2^64-1, so no computation overflows; a
// sequence simply ends when it reaches the top of the range.
package primes
