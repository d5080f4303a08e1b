/*
Package sieve provides a segmented Sieve of Eratosthenes over odd integers.

A Segment holds a fixed-size window of consecutive odd values and one mark per
value. Callers apply primes to the window with MarkMultiples, pull survivors with
NextUnmarked and slide to the following window with Advance. The mark buffer is
allocated once and reset in place, so memory stays constant no matter how far
the window travels.
*/
package sieve

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"primes/bitset"
)

// DefaultWidth is the number of odd values held by a window.
const DefaultWidth = 64_000

var (
	// ErrEvenStart is returned when a window would start on an even value or below 3.
	ErrEvenStart = errors.New("window start must be an odd value >= 3")
	// ErrWidth is returned for non-positive window widths.
	ErrWidth = errors.New("window width must be positive")
	// ErrOverflow is returned when the window end does not fit in 64 bits.
	ErrOverflow = errors.New("window end overflows uint64")
)

// Segment is a sliding window of odd integers [Start, End] with a
// prime-candidate mark for each of them. Slot i stands for Start+2*i.
type Segment struct {
	marks  *bitset.BitSet
	start  uint64
	end    uint64
	width  int
	cursor int
}

// New creates a window of width odd values beginning at start, with every
// slot marked as a candidate.
func New(start uint64, width int) (*Segment, error) {
	if start < 3 || start%2 == 0 {
		return nil, fmt.Errorf("start %d: %w", start, ErrEvenStart)
	}
	if width <= 0 {
		return nil, fmt.Errorf("width %d: %w", width, ErrWidth)
	}
	span := 2 * (uint64(width) - 1)
	if start > math.MaxUint64-span {
		return nil, fmt.Errorf("start %d, width %d: %w", start, width, ErrOverflow)
	}

	marks := bitset.NewBitSet(width)
	marks.Fill()
	return &Segment{
		marks: marks,
		start: start,
		end:   start + span,
		width: width,
	}, nil
}

// Start returns the first odd value of the window.
func (s *Segment) Start() uint64 {
	return s.start
}

// End returns the last odd value of the window.
func (s *Segment) End() uint64 {
	return s.end
}

// Width returns the number of slots in the window.
func (s *Segment) Width() int {
	return s.width
}

// MarkMultiples marks every odd multiple of the odd prime p inside the window,
// starting no lower than p*p, as composite.
func (s *Segment) MarkMultiples(p uint64) {
	if p < 3 || p%2 == 0 {
		return
	}
	hi, square := bits.Mul64(p, p)
	if hi != 0 || square > s.end {
		return
	}

	first := square
	if square < s.start {
		// Smallest multiple of p at or after start, bumped to the next odd
		// multiple when the quotient is even.
		q := s.start / p
		if q*p < s.start {
			q++
		}
		if q%2 == 0 {
			q++
		}
		var carry uint64
		carry, first = bits.Mul64(q, p)
		if carry != 0 || first > s.end {
			return
		}
	}

	// Odd multiples are 2p apart, which is p slots. A stride past the window
	// marks exactly one slot, so it is capped at the width.
	slot := (first - s.start) / 2
	step := p
	if step > uint64(s.width) {
		step = uint64(s.width)
	}
	_ = s.marks.ClearEvery(int(slot), int(step))
}

// Advance discards all marks and moves the window forward by its width. The
// new window is only correct once the caller re-applies every prime whose
// square does not exceed the new End. It returns false, leaving the window
// untouched, when the next window would run past the uint64 range.
func (s *Segment) Advance() bool {
	shift := 2 * uint64(s.width)
	if s.end > math.MaxUint64-shift {
		return false
	}
	s.marks.Fill()
	s.start += shift
	s.end += shift
	s.cursor = 0
	return true
}

// NextUnmarked returns the next value of the window still marked as a
// candidate and moves past it. The boolean is false once the window is used up.
func (s *Segment) NextUnmarked() (uint64, bool) {
	slot, ok := s.marks.NextSet(s.cursor)
	if !ok {
		s.cursor = s.width
		return 0, false
	}
	s.cursor = slot + 1
	return s.start + 2*uint64(slot), true
}
