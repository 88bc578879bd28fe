package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSet(t *testing.T) {
	b := NewBitSet(130)
	assert.Equal(t, 130, b.Len())
	assert.True(t, b.None())
	assert.False(t, b.Any())
	assert.Zero(t, b.Count())

	b.Set(0)
	b.Set(64)
	b.Set(129)
	assert.True(t, b.Test(0))
	assert.True(t, b.Test(64))
	assert.True(t, b.Test(129))
	assert.False(t, b.Test(1))
	assert.Equal(t, 3, b.Count())
	assert.True(t, b.Any())
}

func TestBitSetFlip(t *testing.T) {
	b := NewBitSet(70)
	b.Set(3)
	b.Flip()

	assert.False(t, b.Test(3))
	assert.Equal(t, 69, b.Count())

	b.Flip()
	assert.True(t, b.Test(3))
	assert.Equal(t, 1, b.Count())
}

func TestBitSetSetAll(t *testing.T) {
	b := NewBitSet(65)
	b.SetAll()
	assert.Equal(t, 65, b.Count())
	for i := 0; i < 65; i++ {
		assert.True(t, b.Test(i))
	}
}

func TestBitSetZeroLength(t *testing.T) {
	b := NewBitSet(0)
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.None())
	b.Flip()
	assert.Zero(t, b.Count())
	b.SetAll()
	assert.Zero(t, b.Count())
}
