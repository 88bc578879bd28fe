package triego

import (
	"context"
	"fmt"

	"github.com/hupe1980/triego/blobstore"
	"github.com/hupe1980/triego/index"
	"github.com/hupe1980/triego/index/trie"
)

// NewTrieIndex creates an unbuilt trie-backed string index.
func NewTrieIndex() *trie.Index {
	return trie.New()
}

// New creates an unbuilt index of the given registered kind.
func New(kind index.Kind) (index.ScalarIndex, error) {
	return index.New(kind)
}

// Save serializes idx and writes its blobs under prefix in store.
func Save(ctx context.Context, store blobstore.Store, prefix string, idx index.ScalarIndex, optFns ...Option) error {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(opts)
	}
	logger := opts.logger.WithPrefix(prefix)

	bs, err := idx.Serialize(opts.serialize)
	if err != nil {
		return fmt.Errorf("serialize index: %w", err)
	}
	if err := blobstore.SaveBinarySet(ctx, store, prefix, bs); err != nil {
		return fmt.Errorf("save blobs: %w", err)
	}

	logger.Info("index saved",
		"compression", opts.serialize.Compression.String(),
		"blobs", len(bs))
	return nil
}

// Load reads the blobs under prefix from store and reconstructs an index
// of the given registered kind.
func Load(ctx context.Context, store blobstore.Store, prefix string, kind index.Kind, optFns ...Option) (index.ScalarIndex, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(opts)
	}
	logger := opts.logger.WithKind(string(kind)).WithPrefix(prefix)

	idx, err := index.New(kind)
	if err != nil {
		return nil, err
	}
	bs, err := blobstore.LoadBinarySet(ctx, store, prefix)
	if err != nil {
		return nil, fmt.Errorf("load blobs: %w", err)
	}
	if err := idx.Load(bs); err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	n, err := idx.Count()
	if err != nil {
		return nil, err
	}
	logger.WithCount(n).Info("index loaded")
	return idx, nil
}
