package treemap

import (
	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/internal/stack"
	"github.com/gostonefire/kvengine/model"
)

// Iterator - In-order cursor over a TreeMap. Since nodes have no parent link, the nodes still to be visited above
// the current one are kept on an explicit ascendant stack.
type Iterator[K comparable, V any] struct {
	tree       *TreeMap[K, V]
	current    *node[K, V]
	ascendants stack.Stack[*node[K, V]]
}

// Elem - Returns the entry the cursor is positioned at.
// It returns an error of type crt.InvalidAccess if the cursor is at the end.
func (I *Iterator[K, V]) Elem() (entry model.Entry[K, V], err error) {
	if I.current == nil {
		err = crt.NewInvalidAccess("elem")
		return
	}

	entry = I.current.entry
	return
}

// Next - Moves to the next node in order: the first in-order node of the right subtree if there is one,
// otherwise the nearest ascendant.
// It returns an error of type crt.InvalidAccess if the cursor is already at the end.
func (I *Iterator[K, V]) Next() (err error) {
	switch {
	case I.current == nil:
		err = crt.NewInvalidAccess("next")
	case I.current.right != nil:
		I.current = I.firstInOrder(I.current.right)
	case I.ascendants.Len() > 0:
		I.current, err = I.ascendants.Pop()
	default:
		I.current = nil
	}

	return
}

// Done - Returns true at the logical end
func (I *Iterator[K, V]) Done() bool {
	return I.current == nil
}

// Equal - Returns true if other is a cursor over the same tree at the same node, or both are at its end
func (I *Iterator[K, V]) Equal(other model.Cursor[K, V]) bool {
	o, ok := other.(*Iterator[K, V])
	return ok && I.tree == o.tree && I.current == o.current
}

// firstInOrder - Walks down the left children of n, pushing each node passed, and returns the last one
func (I *Iterator[K, V]) firstInOrder(n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		I.ascendants.Push(n)
		n = n.left
	}
	return n
}
