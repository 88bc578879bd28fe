package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/triego/index"
	"github.com/hupe1980/triego/persistence"
	"github.com/hupe1980/triego/testutil"
)

func serializeLoad(t *testing.T, idx *Index, opts index.SerializeOptions) *Index {
	t.Helper()
	bs, err := idx.Serialize(opts)
	require.NoError(t, err)

	fresh := New()
	require.NoError(t, fresh.Load(bs))
	return fresh
}

func assertSameBits(t *testing.T, want, got *index.BitSet) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for i := 0; i < want.Len(); i++ {
		assert.Equal(t, want.Test(i), got.Test(i), "bit %d", i)
	}
}

func TestSerializeProducesRequiredBlobs(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Build([]string{"a", "b"}))

	bs, err := idx.Serialize(index.DefaultSerializeOptions)
	require.NoError(t, err)

	for _, name := range index.RequiredBlobs() {
		_, ok := bs.Get(name)
		assert.True(t, ok, "blob %s", name)
	}
	assert.Len(t, bs, len(index.RequiredBlobs()))
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(20)

	corpora := map[string][]string{
		"empty":      nil,
		"single":     {"only"},
		"duplicates": {"a", "b", "a", "a", "c", "b"},
		"digits":     rng.RandomDigitStrings(nb),
		"random":     rng.Strings(nb, 0, 16),
	}

	compressions := []persistence.Compression{
		persistence.CompressionNone,
		persistence.CompressionZstd,
		persistence.CompressionLZ4,
	}

	for name, values := range corpora {
		for _, c := range compressions {
			t.Run(name+"/"+c.String(), func(t *testing.T) {
				idx := New()
				require.NoError(t, idx.Build(values))
				loaded := serializeLoad(t, idx, index.SerializeOptions{Compression: c})

				wantN, err := idx.Count()
				require.NoError(t, err)
				gotN, err := loaded.Count()
				require.NoError(t, err)
				require.Equal(t, wantN, gotN)

				queries := append(rng.Strings(10, 0, 16), values...)
				wantIn, err := idx.In(queries)
				require.NoError(t, err)
				gotIn, err := loaded.In(queries)
				require.NoError(t, err)
				assertSameBits(t, wantIn, gotIn)

				wantNotIn, err := idx.NotIn(queries)
				require.NoError(t, err)
				gotNotIn, err := loaded.NotIn(queries)
				require.NoError(t, err)
				assertSameBits(t, wantNotIn, gotNotIn)

				for _, threshold := range append(rng.Strings(5, 1, 4), "0", "9") {
					for _, op := range []index.Operator{index.OpGreaterThan, index.OpGreaterEqual, index.OpLessThan, index.OpLessEqual} {
						want, err := idx.Range(threshold, op)
						require.NoError(t, err)
						got, err := loaded.Range(threshold, op)
						require.NoError(t, err)
						assertSameBits(t, want, got)
					}
				}

				for _, prefix := range append(values, "", "nope") {
					want, err := idx.PrefixMatch(prefix)
					require.NoError(t, err)
					got, err := loaded.PrefixMatch(prefix)
					require.NoError(t, err)
					assertSameBits(t, want, got)
				}
			})
		}
	}
}

func TestRoundTripDigitScenario(t *testing.T) {
	rng := testutil.NewRNG(21)
	values := rng.RandomDigitStrings(nb)

	idx := New()
	require.NoError(t, idx.Build(values))
	loaded := serializeLoad(t, idx, index.DefaultSerializeOptions)

	result, err := loaded.In(values)
	require.NoError(t, err)
	assert.Equal(t, nb, result.Len())
	assert.True(t, result.Any())

	// Out-of-corpus value through the loaded copy: one query string, one
	// all-false result bit.
	result, err = loaded.In([]string{"100"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Len())
	assert.True(t, result.None())

	result, err = loaded.NotIn(values)
	require.NoError(t, err)
	assert.True(t, result.None())

	for _, tt := range []struct {
		value string
		op    index.Operator
	}{
		{"0", index.OpGreaterEqual},
		{"90", index.OpLessThan},
		{"9", index.OpLessEqual},
	} {
		result, err := loaded.Range(tt.value, tt.op)
		require.NoError(t, err)
		assert.Equal(t, nb, result.Count(), "%s %q", tt.op, tt.value)
	}

	result, err = loaded.RangeBetween("0", true, "9", true)
	require.NoError(t, err)
	assert.Equal(t, nb, result.Count())

	result, err = loaded.RangeBetween("0", true, "90", false)
	require.NoError(t, err)
	assert.Equal(t, nb, result.Count())

	for ord, v := range values {
		result, err := loaded.PrefixMatch(v)
		require.NoError(t, err)
		require.Equal(t, nb, result.Len())
		assert.True(t, result.Test(ord), "ordinal %d", ord)
	}
}

func TestRoundTripFromRawData(t *testing.T) {
	rng := testutil.NewRNG(22)
	values := rng.RandomDigitStrings(nb)

	idx := New()
	require.NoError(t, idx.BuildWithRawData(index.EncodeStrings(values)))
	loaded := serializeLoad(t, idx, index.DefaultSerializeOptions)

	result, err := loaded.In([]string{"100"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Len())
	assert.True(t, result.None())

	result, err = loaded.Range("0", index.OpGreaterEqual)
	require.NoError(t, err)
	assert.Equal(t, nb, result.Count())
}

func TestLoadMissingBlob(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Build([]string{"a", "b"}))

	for _, missing := range index.RequiredBlobs() {
		t.Run(missing, func(t *testing.T) {
			bs, err := idx.Serialize(index.DefaultSerializeOptions)
			require.NoError(t, err)
			delete(bs, missing)

			fresh := New()
			err = fresh.Load(bs)
			var corrupt *index.ErrCorruptState
			require.ErrorAs(t, err, &corrupt)
			assert.Equal(t, missing, corrupt.Blob)

			// The failed load leaves the instance unbuilt.
			_, err = fresh.Count()
			assert.ErrorIs(t, err, index.ErrNotBuilt)
		})
	}
}

func TestLoadTamperedBlob(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Build([]string{"a", "b", "c", "a"}))

	for _, name := range index.RequiredBlobs() {
		t.Run(name, func(t *testing.T) {
			bs, err := idx.Serialize(index.DefaultSerializeOptions)
			require.NoError(t, err)

			blob := bs[name]
			blob[len(blob)-1] ^= 0xff

			fresh := New()
			err = fresh.Load(bs)
			var corrupt *index.ErrCorruptState
			require.ErrorAs(t, err, &corrupt)
			assert.Equal(t, name, corrupt.Blob)
		})
	}
}

func TestLoadOrdinalCountMismatch(t *testing.T) {
	a := New()
	require.NoError(t, a.Build([]string{"a", "b", "c"}))
	b := New()
	require.NoError(t, b.Build([]string{"a", "b"}))

	bsA, err := a.Serialize(index.DefaultSerializeOptions)
	require.NoError(t, err)
	bsB, err := b.Serialize(index.DefaultSerializeOptions)
	require.NoError(t, err)

	// Ordinal table from a different corpus: some trie key ends up with
	// an out-of-range id or no ordinals at all.
	bsA[index.BlobOrdinalMap] = bsB[index.BlobOrdinalMap]

	fresh := New()
	err = fresh.Load(bsA)
	var corrupt *index.ErrCorruptState
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, index.BlobOrdinalMap, corrupt.Blob)
}

func TestLoadSortedIndexMismatch(t *testing.T) {
	a := New()
	require.NoError(t, a.Build([]string{"a", "b", "c"}))
	b := New()
	require.NoError(t, b.Build([]string{"x", "y"}))

	bsA, err := a.Serialize(index.DefaultSerializeOptions)
	require.NoError(t, err)
	bsB, err := b.Serialize(index.DefaultSerializeOptions)
	require.NoError(t, err)

	bsA[index.BlobSortedIndex] = bsB[index.BlobSortedIndex]

	fresh := New()
	err = fresh.Load(bsA)
	var corrupt *index.ErrCorruptState
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, index.BlobSortedIndex, corrupt.Blob)
}
