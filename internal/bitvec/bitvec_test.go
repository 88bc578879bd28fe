package bitvec

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildVector(bits []bool) *Vector {
	var b Builder
	for _, bit := range bits {
		b.Append(bit)
	}
	return b.Build()
}

func TestRankAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bits := make([]bool, 5000)
	for i := range bits {
		bits[i] = rng.Intn(3) == 0
	}
	v := buildVector(bits)

	require.Equal(t, len(bits), v.Len())

	ones := 0
	for i := 0; i <= len(bits); i++ {
		assert.Equal(t, ones, v.Rank1(i), "Rank1(%d)", i)
		assert.Equal(t, i-ones, v.Rank0(i), "Rank0(%d)", i)
		if i < len(bits) {
			assert.Equal(t, bits[i], v.Get(i), "Get(%d)", i)
			if bits[i] {
				ones++
			}
		}
	}
}

func TestSelectAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bits := make([]bool, 4096)
	for i := range bits {
		bits[i] = rng.Intn(2) == 0
	}
	v := buildVector(bits)

	k0, k1 := 0, 0
	for i, bit := range bits {
		if bit {
			assert.Equal(t, i, v.Select1(k1), "Select1(%d)", k1)
			k1++
		} else {
			assert.Equal(t, i, v.Select0(k0), "Select0(%d)", k0)
			k0++
		}
	}
	assert.Equal(t, -1, v.Select0(k0))
	assert.Equal(t, -1, v.Select1(k1))
	assert.Equal(t, -1, v.Select0(-1))
}

func TestEmptyVector(t *testing.T) {
	var b Builder
	v := b.Build()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Rank1(0))
	assert.Equal(t, -1, v.Select0(0))
	assert.Equal(t, -1, v.Select1(0))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bits []bool
	}{
		{"empty", nil},
		{"single set", []bool{true}},
		{"single clear", []bool{false}},
		{"word boundary", make([]bool, 64)},
		{"mixed", []bool{true, false, true, true, false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := buildVector(tt.bits)

			var buf bytes.Buffer
			n, err := v.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, int64(buf.Len()), n)

			got, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, v.Len(), got.Len())
			for i := range tt.bits {
				assert.Equal(t, v.Get(i), got.Get(i))
			}
			assert.Equal(t, v.Rank1(v.Len()), got.Rank1(got.Len()))
		})
	}
}

func TestReadTruncated(t *testing.T) {
	v := buildVector([]bool{true, false, true})
	var buf bytes.Buffer
	_, err := v.WriteTo(&buf)
	require.NoError(t, err)

	data := buf.Bytes()
	_, err = Read(bytes.NewReader(data[:len(data)-1]))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Read(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadDeclaredLengthBeyondInput(t *testing.T) {
	// A length prefix claiming far more bits than the input holds must fail
	// on the missing words, not allocate for the declared size.
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 1<<40)
	_, err := Read(bytes.NewReader(buf[:]))
	assert.ErrorIs(t, err, ErrMalformed)

	binary.LittleEndian.PutUint64(buf[:], 1<<40+1)
	_, err = Read(bytes.NewReader(buf[:]))
	assert.ErrorIs(t, err, ErrMalformed)
}
