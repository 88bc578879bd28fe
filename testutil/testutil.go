// Package testutil provides deterministic corpus generators for tests.
package testutil

import (
	"math/rand"
	"strconv"
	"sync"
)

// RNG is a seeded, thread-safe random number generator.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// String returns a pseudo-random letter string with length in [minLen, maxLen].
func (r *RNG) String(minLen, maxLen int) string {
	n := minLen
	if maxLen > minLen {
		n += r.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

// Strings returns n pseudo-random letter strings.
func (r *RNG) Strings(n, minLen, maxLen int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = r.String(minLen, maxLen)
	}
	return out
}

// DigitStrings returns n single-digit decimal strings cycling "0".."9".
func DigitStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i % 10)
	}
	return out
}

// RandomDigitStrings returns n pseudo-random single-digit decimal strings.
func (r *RNG) RandomDigitStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(r.Intn(10))
	}
	return out
}
