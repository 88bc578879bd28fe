// Package trie implements the trie-backed scalar string index.
//
// The index is built once over an ordered string corpus and is immutable
// afterwards. Exact and prefix predicates run on a LOUDS-encoded succinct
// trie, ordered range predicates on a sorted table of the distinct keys,
// and both resolve matches to build-time ordinals through roaring ordinal
// sets, one per distinct key.
package trie

import (
	"github.com/hupe1980/triego/index"
	"github.com/hupe1980/triego/internal/succinct"
)

// Compile-time check that Index satisfies the scalar index contract.
var _ index.ScalarIndex = (*Index)(nil)

func init() {
	index.Register(index.KindTrie, func() index.ScalarIndex { return New() })
}

// Index is a trie-backed string index.
//
// The zero value is unbuilt; Build, BuildWithRawData or Load must succeed
// before any query. All state is written exactly once during build or load
// and only read afterwards, so concurrent readers need no locking. The
// caller publishes the built instance to readers.
type Index struct {
	trie *succinct.Trie
	keys *sortedKeys
	ords *ordinalMap
}

// New creates an unbuilt trie index.
func New() *Index { return &Index{} }

func (idx *Index) built() bool { return idx.trie != nil }

// Build constructs the index over values. The position of a value in the
// slice is its ordinal. Duplicates are permitted; an empty corpus builds a
// valid index that answers every query all-false.
func (idx *Index) Build(values []string) error {
	t := succinct.Build(values)

	ords := newOrdinalMap(t.NumKeys())
	for i, v := range values {
		id, ok := t.Lookup(v)
		if !ok {
			// Unreachable: every value was just inserted.
			panic("trie: built key not found")
		}
		ords.add(uint32(i), id)
	}

	keys := newSortedKeys(t.NumKeys())
	t.Keys(func(key []byte, id uint32) bool {
		keys.append(key, id)
		return true
	})

	idx.trie = t
	idx.keys = keys
	idx.ords = ords
	return nil
}

// BuildWithRawData decodes a columnar string batch and builds over the
// decoded values; ordinal numbering follows decode order.
func (idx *Index) BuildWithRawData(data []byte) error {
	values, err := index.DecodeStrings(data)
	if err != nil {
		return err
	}
	return idx.Build(values)
}

// Count returns the corpus size N.
func (idx *Index) Count() (int, error) {
	if !idx.built() {
		return 0, index.ErrNotBuilt
	}
	return idx.ords.numOrdinals(), nil
}

// In returns one bit per query value: bit i is set iff values[i] has an
// exact match among the corpus's distinct strings.
func (idx *Index) In(values []string) (*index.BitSet, error) {
	if !idx.built() {
		return nil, index.ErrNotBuilt
	}
	result := index.NewBitSet(len(values))
	for i, v := range values {
		if _, ok := idx.trie.Lookup(v); ok {
			result.Set(i)
		}
	}
	return result, nil
}

// NotIn is the bitwise complement of In.
func (idx *Index) NotIn(values []string) (*index.BitSet, error) {
	result, err := idx.In(values)
	if err != nil {
		return nil, err
	}
	result.Flip()
	return result, nil
}

// Range returns one bit per ordinal: bit j is set iff the corpus string at
// ordinal j satisfies "s op value". op must be one of OpGreaterThan,
// OpGreaterEqual, OpLessThan, OpLessEqual.
func (idx *Index) Range(value string, op index.Operator) (*index.BitSet, error) {
	if !idx.built() {
		return nil, index.ErrNotBuilt
	}
	var lo, hi int // half-open rank interval [lo, hi)
	switch op {
	case index.OpGreaterThan:
		lo, hi = idx.keys.upperBound(value), idx.keys.numKeys()
	case index.OpGreaterEqual:
		lo, hi = idx.keys.lowerBound(value), idx.keys.numKeys()
	case index.OpLessThan:
		lo, hi = 0, idx.keys.lowerBound(value)
	case index.OpLessEqual:
		lo, hi = 0, idx.keys.upperBound(value)
	default:
		return nil, &index.ErrUnsupportedOperator{Operator: op}
	}
	return idx.fillRanks(lo, hi), nil
}

// RangeBetween returns one bit per ordinal: bit j is set iff the corpus
// string at ordinal j lies between lower and upper, with each bound
// independently inclusive or exclusive. An empty interval (including
// lower > upper) yields an all-false vector, never an error.
func (idx *Index) RangeBetween(lower string, lowerInclusive bool, upper string, upperInclusive bool) (*index.BitSet, error) {
	if !idx.built() {
		return nil, index.ErrNotBuilt
	}
	lo := idx.keys.upperBound(lower)
	if lowerInclusive {
		lo = idx.keys.lowerBound(lower)
	}
	hi := idx.keys.lowerBound(upper)
	if upperInclusive {
		hi = idx.keys.upperBound(upper)
	}
	return idx.fillRanks(lo, hi), nil
}

// PrefixMatch returns one bit per ordinal: bit j is set iff the corpus
// string at ordinal j begins with prefix. An empty prefix matches every
// ordinal.
func (idx *Index) PrefixMatch(prefix string) (*index.BitSet, error) {
	if !idx.built() {
		return nil, index.ErrNotBuilt
	}
	result := index.NewBitSet(idx.ords.numOrdinals())
	idx.trie.WalkPrefix(prefix, func(id uint32) bool {
		idx.ords.fill(id, func(ord uint32) { result.Set(int(ord)) })
		return true
	})
	return result, nil
}

// Query dispatches to the operation selected by q.
func (idx *Index) Query(q index.Query) (*index.BitSet, error) {
	if !idx.built() {
		return nil, index.ErrNotBuilt
	}
	switch q.Op() {
	case index.OpIn:
		return idx.In(q.Values())
	case index.OpNotIn:
		return idx.NotIn(q.Values())
	case index.OpGreaterThan, index.OpGreaterEqual, index.OpLessThan, index.OpLessEqual:
		return idx.Range(q.Value(), q.Op())
	case index.OpRange:
		lower, lowerInclusive, upper, upperInclusive := q.Bounds()
		return idx.RangeBetween(lower, lowerInclusive, upper, upperInclusive)
	case index.OpPrefixMatch:
		return idx.PrefixMatch(q.Value())
	default:
		return nil, &index.ErrUnsupportedOperator{Operator: q.Op()}
	}
}

// fillRanks unions the ordinal sets of every distinct key whose rank lies
// in the half-open interval [lo, hi) into a corpus-sized result vector.
func (idx *Index) fillRanks(lo, hi int) *index.BitSet {
	result := index.NewBitSet(idx.ords.numOrdinals())
	for r := lo; r < hi; r++ {
		idx.ords.fill(idx.keys.id(r), func(ord uint32) { result.Set(int(ord)) })
	}
	return result
}
