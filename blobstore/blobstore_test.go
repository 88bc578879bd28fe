package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	payload := []byte("some blob bytes")
	require.NoError(t, store.Put(ctx, "blob-a", payload))

	blob, err := store.Open(ctx, "blob-a")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(payload)), blob.Size())

	data, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	// Partial read.
	part := make([]byte, 4)
	n, err := blob.ReadAt(part, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("blob"), part)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	testStore(t, store)
}

func TestPutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "b", []byte("one")))
	require.NoError(t, store.Put(ctx, "b", []byte("two")))

	blob, err := store.Open(ctx, "b")
	require.NoError(t, err)
	defer blob.Close()

	data, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}
