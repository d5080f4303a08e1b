package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/VividCortex/ewma"

	"primes"
)

// Check is a single comparison of the library against reference values.
type Check struct {
	Name string
	run  func() (passed bool, detail string)
}

// Result is the outcome of a check. Elapsed is a moving average over rounds.
type Result struct {
	Name    string
	Passed  bool
	Detail  string
	Elapsed time.Duration
}

func buildChecks(config Config) []Check {
	opts := []primes.Option{primes.WithWindowWidth(config.WindowWidth)}

	var checks []Check
	if len(config.First) > 0 {
		checks = append(checks, firstCheck(config.First, opts), belowCheck(config.First, opts))
	}
	for _, c := range config.Nth {
		checks = append(checks, nthCheck(c, opts))
	}
	for _, c := range config.Divisors {
		checks = append(checks, divisorsCheck(c, opts))
	}
	for _, c := range config.IsPrime {
		checks = append(checks, isPrimeCheck(c))
	}
	return checks
}

func firstCheck(reference []uint64, opts []primes.Option) Check {
	return Check{
		Name: "First",
		run: func() (bool, string) {
			for i := 0; i <= len(reference); i++ {
				got := primes.First(uint64(i), opts...).Collect()
				if !slices.Equal(got, reference[:i]) {
					return false, fmt.Sprintf("First %d failed\nExpected: %v\nGot: %v", i, reference[:i], got)
				}
			}
			return true, ""
		},
	}
}

func belowCheck(reference []uint64, opts []primes.Option) Check {
	return Check{
		Name: "Below",
		run: func() (bool, string) {
			j := 0
			for limit := uint64(0); limit <= reference[len(reference)-1]; limit++ {
				if j < len(reference) && reference[j] == limit {
					j++
				}
				got := primes.Below(limit, opts...).Collect()
				if !slices.Equal(got, reference[:j]) {
					return false, fmt.Sprintf("Below %d failed\nExpected: %v\nGot: %v", limit, reference[:j], got)
				}
			}
			return true, ""
		},
	}
}

func nthCheck(c NthCase, opts []primes.Option) Check {
	return Check{
		Name: fmt.Sprintf("%dth", c.N),
		run: func() (bool, string) {
			got, ok := primes.Nth(c.N, opts...)
			if !ok {
				return false, fmt.Sprintf("Expected: %d\nGot: none", c.Want)
			}
			if got != c.Want {
				return false, fmt.Sprintf("Expected: %d\nGot: %d", c.Want, got)
			}
			return true, ""
		},
	}
}

func divisorsCheck(c DivisorsCase, opts []primes.Option) Check {
	want := make([]primes.Factor, 0, len(c.Want))
	for _, pair := range c.Want {
		want = append(want, primes.Factor{Prime: pair[0], Exponent: pair[1]})
	}
	return Check{
		Name: fmt.Sprintf("Divisors %d", c.N),
		run: func() (bool, string) {
			got := primes.Divisors(c.N, opts...).Collect()
			if !slices.Equal(got, want) {
				return false, fmt.Sprintf("Expected: %v\nGot: %v", want, got)
			}
			return true, ""
		},
	}
}

func isPrimeCheck(c IsPrimeCase) Check {
	return Check{
		Name: fmt.Sprintf("IsPrime %d", c.N),
		run: func() (bool, string) {
			if got := primes.IsPrime(c.N); got != c.Want {
				return false, fmt.Sprintf("Expected: %t\nGot: %t", c.Want, got)
			}
			return true, ""
		},
	}
}

// measure runs the check rounds times, stopping at the first failure.
func measure(check Check, rounds int) Result {
	average := ewma.NewMovingAverage()
	result := Result{Name: check.Name, Passed: true}
	for r := 0; r < rounds; r++ {
		start := time.Now()
		passed, detail := check.run()
		average.Add(float64(time.Since(start)))
		if !passed {
			result.Passed = false
			result.Detail = detail
			break
		}
	}
	result.Elapsed = time.Duration(average.Value())
	return result
}
