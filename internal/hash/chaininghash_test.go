//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestSpread(t *testing.T) {
	t.Run("zero stays zero", func(t *testing.T) {
		assert.Equal(t, uint32(0), Spread(0))
	})

	t.Run("folds high bits into low bits", func(t *testing.T) {
		// Prepare
		h := uint32(0x00100000) // only bit 20 set

		// Execute
		s := Spread(h)

		// Check
		// h ^= h>>20 ^ h>>12 -> 0x00100101, then ^ h>>7 ^ h>>4
		expected := uint32(0x00100101)
		expected = expected ^ (expected >> 7) ^ (expected >> 4)
		assert.Equal(t, expected, s, "correct dispersed value")
		assert.NotZero(t, s&0xf, "low bits are affected by high bits")
	})

	t.Run("hash codes differing in upper bits land in different buckets", func(t *testing.T) {
		// Prepare
		a := uint32(1 << 16)
		b := uint32(2 << 16)

		// Check
		assert.Equal(t, IndexFor(a, 16), IndexFor(b, 16), "raw hashes collide")
		assert.NotEqual(t, IndexFor(Spread(a), 16), IndexFor(Spread(b), 16), "dispersed hashes do not")
	})
}

func TestIndexFor(t *testing.T) {
	t.Run("masks with length minus one", func(t *testing.T) {
		assert.Equal(t, 5, IndexFor(0x25, 16))
		assert.Equal(t, 0x25, IndexFor(0x25, 64))
		assert.Equal(t, 0, IndexFor(0xffffffff, 1))
	})
}

func TestTableSizeFor(t *testing.T) {
	t.Run("returns correct table size", func(t *testing.T) {
		assert.Equal(t, 16, TableSizeFor(10), "correct tableSize value")
		assert.Equal(t, 32, TableSizeFor(16+7), "correct tableSize value")
		assert.Equal(t, 1, TableSizeFor(0), "zero capacity gives one bucket")
	})

	t.Run("caps at max capacity", func(t *testing.T) {
		assert.Equal(t, MaximumCapacity, TableSizeFor(MaximumCapacity+1))
	})
}

func TestThreshold(t *testing.T) {
	t.Run("floors table size times load factor", func(t *testing.T) {
		assert.Equal(t, 12, Threshold(16, 0.75))
		assert.Equal(t, 24, Threshold(32, 0.75))
		assert.Equal(t, 0, Threshold(1, 0.75))
	})

	t.Run("saturates", func(t *testing.T) {
		assert.Equal(t, math.MaxInt, Threshold(MaximumCapacity, math.Inf(1)))
	})
}
