package hashtable

import (
	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/internal/chain"
	"github.com/gostonefire/kvengine/model"
)

// Iterator - Cursor over a HashTable. It identifies a bin and a node within that bin's chain, a nil node in the
// last bin is the logical end. Order is unspecified across bins and insertion order within a bin.
type Iterator[K comparable, V any] struct {
	table *HashTable[K, V]
	binNo int
	node  *chain.Node[model.Entry[K, V]]
}

// newIterator - Returns a pointer to a new Iterator, moved forward past any empty bins
func newIterator[K comparable, V any](table *HashTable[K, V], binNo int, node *chain.Node[model.Entry[K, V]]) *Iterator[K, V] {
	iter := &Iterator[K, V]{table: table, binNo: binNo, node: node}
	iter.advance()
	return iter
}

// Elem - Returns the entry the cursor is positioned at.
// It returns an error of type crt.InvalidAccess if the cursor is at the end.
func (I *Iterator[K, V]) Elem() (entry model.Entry[K, V], err error) {
	if I.node == nil {
		err = crt.NewInvalidAccess("elem")
		return
	}

	entry = I.node.Value
	return
}

// Next - Moves to the next entry in the chain, or to the first entry of the next non-empty bin.
// It returns an error of type crt.InvalidAccess if the cursor is already at the end.
func (I *Iterator[K, V]) Next() (err error) {
	if I.node == nil {
		err = crt.NewInvalidAccess("next")
		return
	}

	I.node = I.node.Next()
	I.advance()

	return
}

// Done - Returns true at the logical end
func (I *Iterator[K, V]) Done() bool {
	return I.node == nil
}

// Equal - Returns true if other is a cursor over the same hash table at the same entry, or both are at its end
func (I *Iterator[K, V]) Equal(other model.Cursor[K, V]) bool {
	o, ok := other.(*Iterator[K, V])
	return ok && I.table == o.table && I.node == o.node
}

// advance - Skips forward over empty bins until a node is found or the last bin is reached
func (I *Iterator[K, V]) advance() {
	lastBin := len(I.table.bins) - 1
	for I.node == nil && I.binNo < lastBin {
		I.binNo++
		I.node = I.table.bins[I.binNo].Front()
	}
}
