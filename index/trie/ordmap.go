package trie

import "github.com/RoaringBitmap/roaring/v2"

// ordinalMap is the bidirectional association between build ordinals and
// trie ids. Duplicates fold many ordinals onto one id; every ordinal maps
// to exactly one id and every id owns at least one ordinal.
type ordinalMap struct {
	// ordToID[i] is the trie id of the string at ordinal i.
	ordToID []uint32
	// idToOrds[id] is the set of ordinals holding the string with that id.
	idToOrds []*roaring.Bitmap
}

func newOrdinalMap(numKeys int) *ordinalMap {
	m := &ordinalMap{idToOrds: make([]*roaring.Bitmap, numKeys)}
	for i := range m.idToOrds {
		m.idToOrds[i] = roaring.New()
	}
	return m
}

// add records that ordinal ord holds the string with trie id.
func (m *ordinalMap) add(ord uint32, id uint32) {
	m.ordToID = append(m.ordToID, id)
	m.idToOrds[id].Add(ord)
}

// idFor returns the trie id of an ordinal.
func (m *ordinalMap) idFor(ord uint32) uint32 { return m.ordToID[ord] }

// ordinals returns the ordinal set of a trie id. The bitmap is shared,
// immutable state; callers must not mutate it.
func (m *ordinalMap) ordinals(id uint32) *roaring.Bitmap { return m.idToOrds[id] }

// numOrdinals returns the corpus size N.
func (m *ordinalMap) numOrdinals() int { return len(m.ordToID) }

// fill sets one result bit per ordinal in the set of trie id.
func (m *ordinalMap) fill(id uint32, set func(ord uint32)) {
	it := m.idToOrds[id].Iterator()
	for it.HasNext() {
		set(it.Next())
	}
}
