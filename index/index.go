// Package index defines the contracts for scalar string indexes.
package index

import "github.com/hupe1980/triego/persistence"

// Required blob names in a serialized index BinarySet. The names are stable
// across format versions; blob contents are opaque outside the index.
const (
	BlobTrieData    = "trie_data"
	BlobOrdinalMap  = "ordinal_map"
	BlobSortedIndex = "sorted_index"
)

// RequiredBlobs lists the blob names a serialized string index must carry.
func RequiredBlobs() []string {
	return []string{BlobTrieData, BlobOrdinalMap, BlobSortedIndex}
}

// BinarySet is a mapping from blob name to serialized bytes.
type BinarySet map[string][]byte

// Append stores a named blob, replacing any previous bytes under that name.
func (bs BinarySet) Append(name string, data []byte) {
	bs[name] = data
}

// Get returns the named blob.
func (bs BinarySet) Get(name string) ([]byte, bool) {
	data, ok := bs[name]
	return data, ok
}

// SerializeOptions carries resource options for Serialize. They affect how
// blob bytes are stored, never their decoded content.
type SerializeOptions struct {
	// Compression selects the per-blob compression scheme.
	Compression persistence.Compression
}

// DefaultSerializeOptions contains the default serialization options.
var DefaultSerializeOptions = SerializeOptions{
	Compression: persistence.CompressionNone,
}

// ScalarIndex is a string index built once over an ordered corpus and
// immutable afterwards. Result bit vectors are addressed either by
// query-argument position (In, NotIn) or by corpus ordinal (Range,
// RangeBetween, PrefixMatch); see each operation.
//
// After a successful Build, BuildWithRawData or Load, any number of
// concurrent readers may query the index without locking. Build and Load
// must complete before the instance is shared.
type ScalarIndex interface {
	// Build constructs the index over values. The position of each value is
	// its ordinal. Duplicates are permitted. An empty corpus is valid.
	Build(values []string) error

	// BuildWithRawData decodes a columnar string batch (see DecodeStrings)
	// and builds over the decoded values in decode order.
	BuildWithRawData(data []byte) error

	// Count returns the corpus size N.
	Count() (int, error)

	// In returns one bit per query value: bit i is set iff values[i] is
	// present in the corpus.
	In(values []string) (*BitSet, error)

	// NotIn is the bitwise complement of In.
	NotIn(values []string) (*BitSet, error)

	// Range returns one bit per ordinal: bit j is set iff the corpus string
	// at ordinal j satisfies "s op value". op must be one of OpGreaterThan,
	// OpGreaterEqual, OpLessThan, OpLessEqual.
	Range(value string, op Operator) (*BitSet, error)

	// RangeBetween returns one bit per ordinal: bit j is set iff the corpus
	// string at ordinal j lies between lower and upper, with each bound
	// independently inclusive or exclusive.
	RangeBetween(lower string, lowerInclusive bool, upper string, upperInclusive bool) (*BitSet, error)

	// PrefixMatch returns one bit per ordinal: bit j is set iff the corpus
	// string at ordinal j begins with prefix. An empty prefix matches all.
	PrefixMatch(prefix string) (*BitSet, error)

	// Query dispatches to the operation selected by q.
	Query(q Query) (*BitSet, error)

	// Serialize encodes the index into its named blobs.
	Serialize(opts SerializeOptions) (BinarySet, error)

	// Load reconstructs the index from blobs produced by Serialize. After a
	// successful Load the index answers every query identically to the
	// instance that produced the blobs.
	Load(bs BinarySet) error
}
