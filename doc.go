// Package triego provides an embeddable scalar string index for Go.
//
// A triego index is built once over an ordered corpus of strings and then
// answers predicates over it: exact membership, one- and two-sided
// lexicographic range, and prefix match. Every query returns a fixed-size
// boolean vector addressed either by query-argument position (In, NotIn)
// or by build-time ordinal (Range, PrefixMatch), so callers can mask the
// original column buffer directly.
//
// # Quick Start
//
//	idx := triego.NewTrieIndex()
//	_ = idx.Build([]string{"apple", "banana", "apple", "cherry"})
//
//	hits, _ := idx.PrefixMatch("ap") // ordinals 0 and 2
//	rng, _ := idx.Range("banana", index.OpGreaterEqual)
//
// # Persistence
//
// A built index serializes into a small set of named blobs and reloads
// into an instance with bit-identical query behavior:
//
//	blobs, _ := idx.Serialize(index.DefaultSerializeOptions)
//	fresh := triego.NewTrieIndex()
//	_ = fresh.Load(blobs)
//
// The index performs no I/O of its own; the blobstore package moves blob
// sets to and from durable storage, and Save/Load compose the two:
//
//	store, _ := blobstore.NewLocalStore("/var/lib/myapp")
//	_ = triego.Save(ctx, store, "indexes/title", idx)
//	loaded, _ := triego.Load(ctx, store, "indexes/title", index.KindTrie)
package triego
