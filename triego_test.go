package triego_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/triego"
	"github.com/hupe1980/triego/blobstore"
	"github.com/hupe1980/triego/index"
	"github.com/hupe1980/triego/persistence"
)

func TestNew(t *testing.T) {
	t.Run("registered kind", func(t *testing.T) {
		idx, err := triego.New(index.KindTrie)
		require.NoError(t, err)
		require.NotNil(t, idx)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := triego.New(index.Kind("marble"))
		var ue *index.ErrUnknownKind
		require.ErrorAs(t, err, &ue)
	})
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	values := []string{"pear", "apple", "pear", "quince", "apple", "fig"}

	idx := triego.NewTrieIndex()
	require.NoError(t, idx.Build(values))

	store := blobstore.NewMemoryStore()
	require.NoError(t, triego.Save(ctx, store, "indexes/fruit", idx,
		triego.WithCompression(persistence.CompressionZstd),
		triego.WithLogger(triego.NewTextLogger(slog.LevelError))))

	loaded, err := triego.Load(ctx, store, "indexes/fruit", index.KindTrie)
	require.NoError(t, err)

	n, err := loaded.Count()
	require.NoError(t, err)
	require.Equal(t, len(values), n)

	hits, err := loaded.In([]string{"pear", "mango"})
	require.NoError(t, err)
	require.True(t, hits.Test(0))
	require.False(t, hits.Test(1))
}

func TestLoadMissingBlobs(t *testing.T) {
	ctx := context.Background()

	_, err := triego.Load(ctx, blobstore.NewMemoryStore(), "indexes/empty", index.KindTrie)
	var cs *index.ErrCorruptState
	require.ErrorAs(t, err, &cs)
}

func TestSaveUnbuilt(t *testing.T) {
	ctx := context.Background()

	err := triego.Save(ctx, blobstore.NewMemoryStore(), "indexes/none", triego.NewTrieIndex())
	require.True(t, errors.Is(err, index.ErrNotBuilt))
}
