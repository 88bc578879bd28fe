package index

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeStrings(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{"empty batch", []string{}},
		{"single", []string{"hello"}},
		{"empty strings", []string{"", "", ""}},
		{"order preserved", []string{"z", "a", "m", "a"}},
		{"utf8", []string{"héllo", "wörld", "日本語"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeStrings(tt.values)
			got, err := DecodeStrings(data)
			require.NoError(t, err)
			assert.Equal(t, tt.values, got)
		})
	}
}

func TestDecodeStringsMalformed(t *testing.T) {
	valid := EncodeStrings([]string{"ab", "cde"})

	tests := []struct {
		name string
		data []byte
	}{
		{"nil buffer", nil},
		{"short count", []byte{1, 0}},
		{"max count, no entries", []byte{0xff, 0xff, 0xff, 0xff}},
		{"count beyond buffer", func() []byte {
			data := append([]byte(nil), valid...)
			binary.LittleEndian.PutUint32(data, 100)
			return data
		}()},
		{"length beyond buffer", func() []byte {
			data := append([]byte(nil), valid...)
			binary.LittleEndian.PutUint32(data[4:], 1000)
			return data
		}()},
		{"trailing bytes", append(append([]byte(nil), valid...), 0xaa)},
		{"truncated entry", valid[:len(valid)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStrings(tt.data)
			assert.ErrorIs(t, err, ErrInvalidRawData)
		})
	}
}
