package trie

import (
	"fmt"

	"github.com/hupe1980/triego/index"
	"github.com/hupe1980/triego/internal/conv"
	"github.com/hupe1980/triego/internal/succinct"
	"github.com/hupe1980/triego/persistence"
)

// Serialize encodes the index into its named blobs. The options select
// per-blob compression; they never change the decoded content, so any
// serialized form reloads into an identically behaving index.
func (idx *Index) Serialize(opts index.SerializeOptions) (index.BinarySet, error) {
	if !idx.built() {
		return nil, index.ErrNotBuilt
	}

	bs := index.BinarySet{}

	trieWriter := persistence.NewWriter()
	if _, err := idx.trie.WriteTo(trieWriter); err != nil {
		return nil, fmt.Errorf("serialize trie: %w", err)
	}
	blob, err := persistence.EncodeBlob(trieWriter.Bytes(), opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", index.BlobTrieData, err)
	}
	bs.Append(index.BlobTrieData, blob)

	ordWriter := persistence.NewWriter()
	numOrdinals, err := conv.IntToUint64(idx.ords.numOrdinals())
	if err != nil {
		return nil, err
	}
	ordWriter.WriteUint64(numOrdinals)
	ordWriter.WriteUint32Slice(idx.ords.ordToID)
	blob, err = persistence.EncodeBlob(ordWriter.Bytes(), opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", index.BlobOrdinalMap, err)
	}
	bs.Append(index.BlobOrdinalMap, blob)

	sortedWriter := persistence.NewWriter()
	numKeys, err := conv.IntToUint64(idx.keys.numKeys())
	if err != nil {
		return nil, err
	}
	sortedWriter.WriteUint64(numKeys)
	sortedWriter.WriteUint32Slice(idx.keys.ids)
	blob, err = persistence.EncodeBlob(sortedWriter.Bytes(), opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", index.BlobSortedIndex, err)
	}
	bs.Append(index.BlobSortedIndex, blob)

	return bs, nil
}

// Load reconstructs the index from blobs produced by Serialize. Structural
// validation failures return ErrCorruptState and leave the index unbuilt.
func (idx *Index) Load(bs index.BinarySet) error {
	t, err := loadTrie(bs)
	if err != nil {
		return err
	}
	ords, err := loadOrdinalMap(bs, t.NumKeys())
	if err != nil {
		return err
	}
	keys, err := loadSortedKeys(bs, t)
	if err != nil {
		return err
	}

	idx.trie = t
	idx.keys = keys
	idx.ords = ords
	return nil
}

func loadTrie(bs index.BinarySet) (*succinct.Trie, error) {
	payload, err := blobPayload(bs, index.BlobTrieData)
	if err != nil {
		return nil, err
	}
	reader := persistence.NewReader(payload)
	t, err := succinct.Read(reader)
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobTrieData, "trie decode failed", err)
	}
	if reader.Remaining() != 0 {
		return nil, index.NewErrCorruptState(index.BlobTrieData,
			fmt.Sprintf("%d trailing bytes", reader.Remaining()), nil)
	}
	return t, nil
}

func loadOrdinalMap(bs index.BinarySet, numKeys int) (*ordinalMap, error) {
	payload, err := blobPayload(bs, index.BlobOrdinalMap)
	if err != nil {
		return nil, err
	}
	reader := persistence.NewReader(payload)
	numOrdinalsU64, err := reader.ReadUint64()
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobOrdinalMap, "missing ordinal count", err)
	}
	numOrdinals, err := conv.Uint64ToInt(numOrdinalsU64)
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobOrdinalMap, "ordinal count out of range", err)
	}
	ids, err := reader.ReadUint32Slice(numOrdinals)
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobOrdinalMap,
			fmt.Sprintf("ordinal table shorter than declared count %d", numOrdinals), err)
	}
	if reader.Remaining() != 0 {
		return nil, index.NewErrCorruptState(index.BlobOrdinalMap,
			fmt.Sprintf("%d trailing bytes", reader.Remaining()), nil)
	}

	ords := newOrdinalMap(numKeys)
	seen := 0
	for ord, id := range ids {
		if int(id) >= numKeys {
			return nil, index.NewErrCorruptState(index.BlobOrdinalMap,
				fmt.Sprintf("ordinal %d maps to id %d, trie holds %d keys", ord, id, numKeys), nil)
		}
		if ords.idToOrds[id].IsEmpty() {
			seen++
		}
		ords.add(uint32(ord), id)
	}
	if seen != numKeys {
		return nil, index.NewErrCorruptState(index.BlobOrdinalMap,
			fmt.Sprintf("%d of %d trie keys have no ordinal", numKeys-seen, numKeys), nil)
	}
	return ords, nil
}

func loadSortedKeys(bs index.BinarySet, t *succinct.Trie) (*sortedKeys, error) {
	payload, err := blobPayload(bs, index.BlobSortedIndex)
	if err != nil {
		return nil, err
	}
	reader := persistence.NewReader(payload)
	numKeysU64, err := reader.ReadUint64()
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobSortedIndex, "missing key count", err)
	}
	numKeys, err := conv.Uint64ToInt(numKeysU64)
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobSortedIndex, "key count out of range", err)
	}
	if numKeys != t.NumKeys() {
		return nil, index.NewErrCorruptState(index.BlobSortedIndex,
			fmt.Sprintf("declares %d keys, trie holds %d", numKeys, t.NumKeys()), nil)
	}
	ids, err := reader.ReadUint32Slice(numKeys)
	if err != nil {
		return nil, index.NewErrCorruptState(index.BlobSortedIndex,
			fmt.Sprintf("rank table shorter than declared count %d", numKeys), err)
	}
	if reader.Remaining() != 0 {
		return nil, index.NewErrCorruptState(index.BlobSortedIndex,
			fmt.Sprintf("%d trailing bytes", reader.Remaining()), nil)
	}

	// The trie enumerates keys in lexicographic order; the stored rank
	// table must agree with it entry for entry.
	keys := newSortedKeys(numKeys)
	mismatch := -1
	t.Keys(func(key []byte, id uint32) bool {
		if ids[keys.numKeys()] != id {
			mismatch = keys.numKeys()
			return false
		}
		keys.append(key, id)
		return true
	})
	if mismatch >= 0 {
		return nil, index.NewErrCorruptState(index.BlobSortedIndex,
			fmt.Sprintf("rank %d disagrees with trie enumeration", mismatch), nil)
	}
	return keys, nil
}

func blobPayload(bs index.BinarySet, name string) ([]byte, error) {
	blob, ok := bs.Get(name)
	if !ok {
		return nil, index.NewErrCorruptState(name, "blob missing", nil)
	}
	payload, err := persistence.DecodeBlob(blob)
	if err != nil {
		return nil, index.NewErrCorruptState(name, "frame validation failed", err)
	}
	return payload, nil
}
