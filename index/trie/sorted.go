package trie

import (
	"sort"
	"unsafe"
)

// sortedKeys is the lexicographically ordered view over the distinct corpus
// strings. Keys live in one byte arena addressed by offsets, so the whole
// table is three flat arrays and rank r carries the trie id of the r-th
// smallest key.
type sortedKeys struct {
	arena   []byte
	offsets []uint32 // len(offsets) == numKeys+1
	ids     []uint32 // ids[r] is the trie id at rank r
}

func newSortedKeys(capacity int) *sortedKeys {
	return &sortedKeys{
		offsets: make([]uint32, 1, capacity+1),
		ids:     make([]uint32, 0, capacity),
	}
}

// append adds the next key in lexicographic order. The caller feeds keys
// from the trie's ordered enumeration, so no sorting happens here.
func (s *sortedKeys) append(key []byte, id uint32) {
	s.arena = append(s.arena, key...)
	s.offsets = append(s.offsets, uint32(len(s.arena)))
	s.ids = append(s.ids, id)
}

// numKeys returns the number of distinct keys D.
func (s *sortedKeys) numKeys() int { return len(s.ids) }

// key returns the key at rank r. The string aliases the arena, which is
// immutable once the table is built.
func (s *sortedKeys) key(r int) string {
	start, end := s.offsets[r], s.offsets[r+1]
	if start == end {
		return ""
	}
	return unsafe.String(&s.arena[start], int(end-start))
}

// id returns the trie id at rank r.
func (s *sortedKeys) id(r int) uint32 { return s.ids[r] }

// lowerBound returns the smallest rank r with key(r) >= value.
func (s *sortedKeys) lowerBound(value string) int {
	return sort.Search(len(s.ids), func(r int) bool { return s.key(r) >= value })
}

// upperBound returns the smallest rank r with key(r) > value.
func (s *sortedKeys) upperBound(value string) int {
	return sort.Search(len(s.ids), func(r int) bool { return s.key(r) > value })
}
