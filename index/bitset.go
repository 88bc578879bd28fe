package index

import "math/bits"

// BitSet is a fixed-length boolean result vector. Unlike a compressed
// bitmap it carries its length explicitly, so false bits are addressable:
// consumers index it either by query-argument position or by corpus
// ordinal, depending on the operation that produced it.
type BitSet struct {
	words []uint64
	n     int
}

// NewBitSet creates an all-false BitSet of length n.
func NewBitSet(n int) *BitSet {
	return &BitSet{words: make([]uint64, (n+63)/64), n: n}
}

// Len returns the number of bits.
func (b *BitSet) Len() int { return b.n }

// Set sets bit i.
func (b *BitSet) Set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Any reports whether at least one bit is set.
func (b *BitSet) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (b *BitSet) None() bool { return !b.Any() }

// SetAll sets every bit.
func (b *BitSet) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.maskTail()
}

// Flip inverts every bit in place.
func (b *BitSet) Flip() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.maskTail()
}

// maskTail clears the unused bits of the last word.
func (b *BitSet) maskTail() {
	if rem := uint(b.n % 64); rem != 0 {
		b.words[len(b.words)-1] &= 1<<rem - 1
	}
}
