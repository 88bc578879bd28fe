package blobstore

import (
	"context"
	"errors"
	"path"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/triego/index"
)

func isNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// SaveBinarySet writes every blob of a serialized index under prefix,
// one store object per blob. Blobs are written concurrently.
func SaveBinarySet(ctx context.Context, store Store, prefix string, bs index.BinarySet) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, data := range bs {
		name, data := name, data
		g.Go(func() error {
			return store.Put(ctx, path.Join(prefix, name), data)
		})
	}
	return g.Wait()
}

// LoadBinarySet reads the required index blobs from under prefix. Blobs
// are read concurrently. A missing blob is reported by the subsequent
// Load call as corrupt state, so absent objects are returned as absent
// names, not errors.
func LoadBinarySet(ctx context.Context, store Store, prefix string) (index.BinarySet, error) {
	bs := index.BinarySet{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range index.RequiredBlobs() {
		name := name
		g.Go(func() error {
			blob, err := store.Open(ctx, path.Join(prefix, name))
			if err != nil {
				if isNotFound(err) {
					return nil
				}
				return err
			}
			defer blob.Close()
			data, err := ReadAll(blob)
			if err != nil {
				return err
			}
			mu.Lock()
			bs.Append(name, data)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bs, nil
}
