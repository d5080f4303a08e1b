package primes

// Factors computes the prime factors of the given integer n.
// It returns a slice of prime factors in ascending order, each prime repeated
// as many times as it divides n.
func Factors(n uint64, opts ...Option) []uint64 {
	factors := make([]uint64, 0)
	for factor := range Divisors(n, opts...).All() {
		for i := uint64(0); i < factor.Exponent; i++ {
			factors = append(factors, factor.Prime)
		}
	}
	return factors
}
