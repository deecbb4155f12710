package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userID int64

type point struct {
	x, y int
}

func (P point) Hash() uint32 {
	return uint32(P.x*31 + P.y)
}

func TestString(t *testing.T) {
	t.Run("accumulates base 31 polynomial", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, uint32(0), String(""), "empty string")
		assert.Equal(t, uint32(97), String("a"), "single character")
		assert.Equal(t, uint32(99162322), String("hello"), "word")
	})
}

func TestInteger(t *testing.T) {
	t.Run("is identity below 32 bits and folds wider values", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, uint32(42), Integer(42), "small value")
		assert.Equal(t, uint32(1<<32-1), Integer(uint64(1<<32-1)), "largest 32 bit value")
		assert.Equal(t, uint32(1), Integer(uint64(1)<<32), "upper half folded")
	})

	t.Run("negative values hash like their 32 bit counterparts", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, uint32(1<<32-1), Integer(-1), "int -1")
		assert.Equal(t, uint32(1<<32-5), Integer(int64(-5)), "int64 -5")
		assert.Equal(t, uint32(1<<32-5), Integer(int32(-5)), "int32 -5")
		assert.Equal(t, uint32(1<<31), Integer(int64(-1<<31)), "smallest int32")
		assert.Equal(t, uint32(1<<31-1), Integer(int64(1<<31-1)), "largest int32")
	})

	t.Run("values beyond 32 bits are folded", func(t *testing.T) {
		// Prepare
		v := int64(-1) << 32

		// Execute and Check
		assert.Equal(t, uint32(0xffffffff), Integer(v), "upper half folded into zero lower half")
		assert.Equal(t, uint32(1), Integer(int64(1)<<32), "positive wide value folded")
	})
}

func TestFor(t *testing.T) {
	t.Run("resolves built-in rules", func(t *testing.T) {
		// Prepare
		hInt, err := For[int]()
		require.NoError(t, err, "int hasher")
		hInt32, err := For[int32]()
		require.NoError(t, err, "int32 hasher")
		hByte, err := For[byte]()
		require.NoError(t, err, "byte hasher")
		hString, err := For[string]()
		require.NoError(t, err, "string hasher")
		hNamed, err := For[userID]()
		require.NoError(t, err, "named integer hasher")
		hFloat, err := For[float64]()
		require.NoError(t, err, "float hasher")
		hBool, err := For[bool]()
		require.NoError(t, err, "bool hasher")

		// Execute and Check
		assert.Equal(t, uint32(5), hInt(5), "int identity")
		assert.Equal(t, hInt32(-5), hInt(-5), "negative int hashes like negative int32")
		assert.NotEqual(t, hInt(0), hInt(-1), "-1 and 0 differ")
		assert.NotEqual(t, hInt(4), hInt(-5), "-5 and 4 differ")
		assert.Equal(t, uint32(1<<32-1), hInt32(-1), "negative int32 reinterpreted")
		assert.Equal(t, uint32('z'), hByte('z'), "character identity")
		assert.Equal(t, String("hello"), hString("hello"), "string polynomial")
		assert.Equal(t, uint32(77), hNamed(77), "named integer identity")
		assert.Equal(t, hFloat(1.5), hFloat(1.5), "float deterministic")
		assert.NotEqual(t, hFloat(1.5), hFloat(2.5), "float spreads")
		assert.Equal(t, uint32(1), hBool(true), "true")
		assert.Equal(t, uint32(0), hBool(false), "false")
	})

	t.Run("uses Hashable implementation", func(t *testing.T) {
		// Prepare
		h, err := For[point]()
		require.NoError(t, err, "point hasher")

		// Execute
		v := h(point{x: 1, y: 2})

		// Check
		assert.Equal(t, uint32(33), v, "Hash method is used")
	})

	t.Run("fails for unsupported key types", func(t *testing.T) {
		// Execute
		_, err := For[[2]int]()

		// Check
		assert.Error(t, err, "array key has no built-in rule")
	})
}

func TestXXHash(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, XXHash("prefix-000001"), XXHash("prefix-000001"), "same input gives same output")
		assert.NotEqual(t, XXHash("prefix-000001"), XXHash("prefix-000002"), "different inputs differ")
	})
}
