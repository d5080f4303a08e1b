package primes

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"primes/sieve"
)

// Primes is a lazily evaluated, strictly ascending sequence of primes. It is
// bounded either by a number of values (First) or by a largest value (Below).
//
// The sieve window is only allocated once the sequence goes past 3 and is no
// wider than the bound requires. The primes kept for marking later windows
// are limited to those whose square does not exceed the bound, so memory
// grows with the square root of the bound.
type Primes struct {
	seg      *sieve.Segment
	width    int
	retained []uint64

	last      uint64 // last value produced, 0 before the first one
	remaining uint64 // values still allowed; math.MaxUint64 when bounded by value
	limit     uint64 // largest value the sequence may produce
	done      bool
}

// newFirst builds a count-bounded sequence. The value bound is an estimate of
// the n-th prime that is never below it, so it only guards termination.
func newFirst(n uint64, config Config) *Primes {
	return &Primes{
		width:     config.WindowWidth,
		remaining: n,
		limit:     nthUpperBound(n),
	}
}

// newBelow builds a value-bounded sequence.
func newBelow(limit uint64, config Config) *Primes {
	return &Primes{
		width:     config.WindowWidth,
		remaining: math.MaxUint64,
		limit:     limit,
	}
}

// Next returns the next prime of the sequence. The boolean is false once the
// sequence has ended, and stays false for every later call.
func (ps *Primes) Next() (uint64, bool) {
	if ps.done || ps.remaining == 0 || ps.last >= ps.limit {
		ps.done = true
		return 0, false
	}

	var next uint64
	switch {
	case ps.last < 2:
		next = 2
	case ps.last < 3:
		next = 3
	default:
		var ok bool
		if next, ok = ps.sieved(); !ok {
			ps.done = true
			return 0, false
		}
	}

	if next > ps.limit {
		ps.done = true
		return 0, false
	}
	if next > 3 {
		ps.retain(next)
	}
	ps.last = next
	ps.remaining--
	return next, true
}

// sieved pulls the next unmarked value from the window, sliding it forward
// and re-marking it as many times as needed.
func (ps *Primes) sieved() (uint64, bool) {
	if ps.seg == nil {
		ps.seg = mustSegment(windowWidth(ps.width, ps.limit))
		// The first slot holds 3, which was produced without the sieve.
		ps.seg.NextUnmarked()
		ps.retain(3)
	}

	for {
		if next, ok := ps.seg.NextUnmarked(); ok {
			return next, true
		}
		// ps.limit > ps.last >= 3 here, so limit-1 cannot wrap.
		if ps.seg.End() >= ps.limit-1 {
			return 0, false
		}
		if !ps.seg.Advance() {
			return 0, false
		}
		for _, p := range ps.retained {
			if !squareAtMost(p, ps.seg.End()) {
				break
			}
			ps.seg.MarkMultiples(p)
		}
	}
}

// retain records a newly found prime. Primes whose square fits under the
// bound are kept for marking later windows. Within the first window the
// prime is applied right away, since its square may still lie ahead of the
// scan position.
func (ps *Primes) retain(p uint64) {
	if squareAtMost(p, ps.limit) {
		ps.retained = append(ps.retained, p)
	}
	if squareAtMost(p, ps.seg.End()) {
		ps.seg.MarkMultiples(p)
	}
}

// All returns an iterator over the remaining values of the sequence.
func (ps *Primes) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			p, ok := ps.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect drains the sequence into a slice. An empty sequence yields an
// empty, non-nil slice.
func (ps *Primes) Collect() []uint64 {
	return slices.AppendSeq(make([]uint64, 0), ps.All())
}

// windowWidth shrinks the configured width so that a window never covers odd
// values past limit. Only called once limit > 3.
func windowWidth(width int, limit uint64) int {
	if slots := (limit-3)/2 + 1; slots < uint64(width) {
		return int(slots)
	}
	return width
}

func mustSegment(width int) *sieve.Segment {
	seg, err := sieve.New(3, width)
	if err != nil {
		// Widths are validated by WithWindowWidth.
		panic(fmt.Sprintf("primes: %v", err))
	}
	return seg
}
