// Package bitvec provides an immutable bit vector with O(1) rank and
// O(log n) select, used as the backbone of the succinct trie encoding.
package bitvec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

const wordsPerBlock = 8 // 512-bit rank blocks

// ErrMalformed is returned when serialized bit vector bytes fail validation.
var ErrMalformed = errors.New("bitvec: malformed data")

// Builder accumulates bits. Call Build to freeze them into a Vector.
type Builder struct {
	words []uint64
	n     int
}

// Append appends a single bit.
func (b *Builder) Append(bit bool) {
	if b.n%64 == 0 {
		b.words = append(b.words, 0)
	}
	if bit {
		b.words[b.n/64] |= 1 << uint(b.n%64)
	}
	b.n++
}

// Build freezes the accumulated bits into an immutable Vector.
func (b *Builder) Build() *Vector {
	v := &Vector{words: b.words, n: b.n}
	v.buildRanks()
	return v
}

// Vector is an immutable bit vector supporting rank and select queries.
// The zero value is an empty vector.
type Vector struct {
	words []uint64
	n     int
	// ranks[i] is the number of set bits in words[:i*wordsPerBlock].
	ranks []uint32
}

func (v *Vector) buildRanks() {
	numBlocks := (len(v.words) + wordsPerBlock - 1) / wordsPerBlock
	v.ranks = make([]uint32, numBlocks+1)
	var total uint32
	for i, w := range v.words {
		if i%wordsPerBlock == 0 {
			v.ranks[i/wordsPerBlock] = total
		}
		total += uint32(bits.OnesCount64(w))
	}
	v.ranks[numBlocks] = total
}

// Len returns the number of bits.
func (v *Vector) Len() int { return v.n }

// Get reports whether bit i is set.
func (v *Vector) Get(i int) bool {
	return v.words[i/64]&(1<<uint(i%64)) != 0
}

// Rank1 returns the number of set bits in [0, i).
func (v *Vector) Rank1(i int) int {
	if i <= 0 {
		return 0
	}
	if i > v.n {
		i = v.n
	}
	word := i / 64
	r := int(v.ranks[word/wordsPerBlock])
	for w := (word / wordsPerBlock) * wordsPerBlock; w < word; w++ {
		r += bits.OnesCount64(v.words[w])
	}
	if rem := uint(i % 64); rem != 0 {
		r += bits.OnesCount64(v.words[word] & (1<<rem - 1))
	}
	return r
}

// Rank0 returns the number of clear bits in [0, i).
func (v *Vector) Rank0(i int) int {
	if i <= 0 {
		return 0
	}
	if i > v.n {
		i = v.n
	}
	return i - v.Rank1(i)
}

// Select0 returns the position of the k-th (0-based) clear bit, or -1 if
// fewer than k+1 bits are clear.
func (v *Vector) Select0(k int) int {
	if k < 0 || k >= v.n-v.Rank1(v.n) {
		return -1
	}
	// Binary search the largest position p with Rank0(p) <= k, by block.
	lo, hi := 0, len(v.ranks)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		zerosBefore := mid*wordsPerBlock*64 - int(v.ranks[mid])
		if zerosBefore <= k {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	zeros := lo*wordsPerBlock*64 - int(v.ranks[lo])
	for w := lo * wordsPerBlock; w < len(v.words); w++ {
		inv := ^v.words[w]
		c := bits.OnesCount64(inv)
		if zeros+c <= k {
			zeros += c
			continue
		}
		return w*64 + selectInWord(inv, k-zeros)
	}
	return -1
}

// Select1 returns the position of the k-th (0-based) set bit, or -1 if
// fewer than k+1 bits are set.
func (v *Vector) Select1(k int) int {
	if k < 0 || k >= v.Rank1(v.n) {
		return -1
	}
	lo, hi := 0, len(v.ranks)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if int(v.ranks[mid]) <= k {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	ones := int(v.ranks[lo])
	for w := lo * wordsPerBlock; w < len(v.words); w++ {
		c := bits.OnesCount64(v.words[w])
		if ones+c <= k {
			ones += c
			continue
		}
		return w*64 + selectInWord(v.words[w], k-ones)
	}
	return -1
}

// selectInWord returns the position of the k-th (0-based) set bit in w.
// The caller guarantees w has more than k set bits.
func selectInWord(w uint64, k int) int {
	for ; k > 0; k-- {
		w &= w - 1
	}
	return bits.TrailingZeros64(w)
}

// WriteTo writes the vector in little-endian binary form.
func (v *Vector) WriteTo(w io.Writer) (int64, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v.n))
	if _, err := w.Write(buf[:]); err != nil {
		return 0, err
	}
	written := int64(8)
	for _, word := range v.words {
		binary.LittleEndian.PutUint64(buf[:], word)
		if _, err := w.Write(buf[:]); err != nil {
			return written, err
		}
		written += 8
	}
	return written, nil
}

// Read reconstructs a Vector previously written with WriteTo.
func Read(r io.Reader) (*Vector, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	n := binary.LittleEndian.Uint64(buf[:])
	const maxBits = 1 << 40
	if n > maxBits {
		return nil, fmt.Errorf("%w: length %d exceeds limit", ErrMalformed, n)
	}
	numWords := (int(n) + 63) / 64
	// The declared length is untrusted until the words actually arrive, so
	// sizing is capped and growth is paid for by bytes already read.
	words := make([]uint64, 0, min(numWords, 1<<16))
	for i := 0; i < numWords; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		words = append(words, binary.LittleEndian.Uint64(buf[:]))
	}
	v := &Vector{words: words, n: int(n)}
	v.buildRanks()
	return v, nil
}
