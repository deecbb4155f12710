package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparateChainingBucketSelector_GetTableSize(t *testing.T) {
	t.Run("returns correct table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingBucketSelector(16)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, 16, tableSize, "correct tableSize value")
	})

	t.Run("never goes below one bin", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingBucketSelector(0)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, 1, tableSize, "correct tableSize value")
	})
}

func TestSeparateChainingBucketSelector_BucketNumber(t *testing.T) {
	t.Run("creates valid bucket numbers", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingBucketSelector(16)
		expected := map[uint32]int{0: 0, 1: 4, 2: 9, 5: 8, 1000: 7, 1 << 31: 15}

		// Execute and Check
		for raw, bucketNo := range expected {
			assert.Equalf(t, bucketNo, h.BucketNumber(raw), "correct bucket number for %d", raw)
		}
	})
}

func TestSeparateChainingBucketSelector_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingBucketSelector(16)

		// Execute
		h.SetTableSize(32)

		// Check
		assert.Equal(t, 32, h.GetTableSize(), "correct tableSize value")
		for i := uint32(0); i < 1000; i++ {
			assert.Less(t, h.BucketNumber(i), 32, "bucket within table")
		}
	})
}

func TestRehash(t *testing.T) {
	t.Run("is deterministic and spreads small integers", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, uint32(0), Rehash(0), "zero stays zero")
		assert.Equal(t, uint32(4294966788), Rehash(1), "finalized value of 1")
		assert.Equal(t, uint32(4294962567), Rehash(1000), "finalized value of 1000")
		assert.Equal(t, Rehash(12345), Rehash(12345), "same input gives same output")
	})
}
