package primes_test

import (
	"fmt"

	"primes"
)

func ExampleFirst() {
	fmt.Println(primes.First(10).Collect())
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

func ExampleBelow() {
	for p := range primes.Below(30).All() {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output: 2 3 5 7 11 13 17 19 23 29
}

func ExampleNth() {
	p, ok := primes.Nth(100)
	fmt.Println(p, ok)
	// Output: 541 true
}

func ExampleDivisors() {
	for factor := range primes.Divisors(504).All() {
		fmt.Printf("%d^%d\n", factor.Prime, factor.Exponent)
	}
	// Output:
	// 2^3
	// 3^2
	// 7^1
}

func ExampleIsPrime() {
	fmt.Println(primes.IsPrime(53), primes.IsPrime(504))
	// Output: true false
}

func ExampleFactors() {
	fmt.Println(primes.Factors(504))
	// Output: [2 2 2 3 3 7]
}

func ExamplePrimes_Next() {
	ps := primes.First(3)
	for {
		p, ok := ps.Next()
		if !ok {
			break
		}
		fmt.Println(p)
	}
	// Output:
	// 2
	// 3
	// 5
}
