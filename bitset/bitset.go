/*
Package bitset provides a fixed-size bitset backed by a slice of uint64 words.

The bitset is sized once and then reused in place: Fill resets every bit without
reallocating, which lets a caller treat it as an arena for per-segment state.
*/
package bitset

import (
	"fmt"
	"math/bits"
)

const wordSize = 64

// BitSet represents a bitset of a fixed number of bits.
type BitSet struct {
	bits []uint64
	size int
}

// NewBitSet creates a BitSet with the given size (in bits). All bits start cleared.
func NewBitSet(size int) *BitSet {
	if size < 0 {
		size = 0
	}
	return &BitSet{
		bits: make([]uint64, (size+wordSize-1)/wordSize),
		size: size,
	}
}

// Len returns the number of bits in the set.
func (bs *BitSet) Len() int {
	return bs.size
}

// Set sets the bit at the specified position to 1.
func (bs *BitSet) Set(pos int) error {
	if pos < 0 || pos >= bs.size {
		return fmt.Errorf("invalid position: %d", pos)
	}
	bs.bits[pos/wordSize] |= 1 << (pos % wordSize)
	return nil
}

// Clear resets the bit at the specified position to 0.
func (bs *BitSet) Clear(pos int) error {
	if pos < 0 || pos >= bs.size {
		return fmt.Errorf("invalid position: %d", pos)
	}
	bs.bits[pos/wordSize] &^= 1 << (pos % wordSize)
	return nil
}

// Test returns true if the bit at the specified position is set to 1.
func (bs *BitSet) Test(pos int) (bool, error) {
	if pos < 0 || pos >= bs.size {
		return false, fmt.Errorf("invalid position: %d", pos)
	}
	return bs.bits[pos/wordSize]&(1<<(pos%wordSize)) != 0, nil
}

// Fill sets every bit to 1. Bits past Len in the last word stay 0 so that
// NextSet and Count never see them.
func (bs *BitSet) Fill() {
	for i := range bs.bits {
		bs.bits[i] = ^uint64(0)
	}
	if tail := bs.size % wordSize; tail != 0 {
		bs.bits[len(bs.bits)-1] = (1 << tail) - 1
	}
}

// ClearEvery clears the bits at from, from+step, from+2*step, ... up to Len.
func (bs *BitSet) ClearEvery(from, step int) error {
	if step <= 0 {
		return fmt.Errorf("invalid step: %d", step)
	}
	if from < 0 {
		return fmt.Errorf("invalid position: %d", from)
	}
	words := bs.bits
	for pos := from; pos < bs.size; pos += step {
		words[pos/wordSize] &^= 1 << (pos % wordSize)
	}
	return nil
}

// NextSet returns the position of the first bit set to 1 at or after from.
// The boolean is false when there is no such bit.
func (bs *BitSet) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= bs.size {
		return 0, false
	}
	index := from / wordSize
	word := bs.bits[index] >> (from % wordSize)
	if word != 0 {
		return from + bits.TrailingZeros64(word), true
	}
	for index++; index < len(bs.bits); index++ {
		if bs.bits[index] != 0 {
			return index*wordSize + bits.TrailingZeros64(bs.bits[index]), true
		}
	}
	return 0, false
}

// Count returns the number of bits set to 1.
func (bs *BitSet) Count() int {
	count := 0
	for _, word := range bs.bits {
		count += bits.OnesCount64(word)
	}
	return count
}
