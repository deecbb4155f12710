//go:build stress

package test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gostonefire/kvengine"
	"github.com/gostonefire/kvengine/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaps(t *testing.T) map[string]*kvengine.Map[int, int] {
	hm, err := kvengine.NewMap[int, int](kvengine.Conf[int]{Backend: crt.HashTable, InitialBins: 1})
	require.NoError(t, err, "new hash map")
	return map[string]*kvengine.Map[int, int]{
		"hash": hm,
		"tree": kvengine.NewTreeMap[int, int](),
	}
}

// checkAgainst - Every key in oracle must be present with its value and a full traversal must yield exactly size
// entries
func checkAgainst(t *testing.T, name string, m *kvengine.Map[int, int], oracle map[int]int) {
	require.Equalf(t, len(oracle), m.Size(), "%s size", name)
	for k, v := range oracle {
		got, err := m.At(k)
		require.NoErrorf(t, err, "%s at %d", name, k)
		require.Equalf(t, v, got, "%s value of %d", name, k)
	}
	n := 0
	for it := m.Begin(); !it.Done(); require.NoError(t, it.Next(), "next") {
		entry, err := it.Elem()
		require.NoError(t, err, "elem")
		require.Equalf(t, oracle[entry.Key], entry.Value, "%s traversed value of %d", name, entry.Key)
		n++
	}
	require.Equalf(t, len(oracle), n, "%s traversal length", name)
}

func TestStress(t *testing.T) {
	for name, m := range newMaps(t) {
		t.Run(name+" random operations agree with a Go map", func(t *testing.T) {
			// Prepare
			rnd := rand.New(rand.NewSource(20240611))
			oracle := make(map[int]int)

			// Execute
			for i := 0; i < 200000; i++ {
				k := rnd.Intn(5000)
				switch rnd.Intn(4) {
				case 0:
					err := m.Erase(k)
					if _, ok := oracle[k]; ok {
						require.NoError(t, err, "erase present key")
						delete(oracle, k)
					} else {
						require.True(t, errors.Is(err, crt.NoSuchElement{}), "erase absent key")
					}
				case 1:
					_, ok := oracle[k]
					require.Equal(t, ok, m.Contains(k), "contains")
				default:
					m.Insert(k, i)
					oracle[k] = i
				}
				if i%50000 == 0 {
					checkAgainst(t, name, m, oracle)
				}
			}

			// Check
			checkAgainst(t, name, m, oracle)
			for k := range oracle {
				require.NoError(t, m.Erase(k), "drain")
			}
			assert.Equal(t, 0, m.Size(), "drained")
			assert.True(t, m.Begin().Equal(m.End()), "empty traversal")
		})
	}
}
