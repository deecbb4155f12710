package treemap

import (
	"fmt"

	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/model"
	"golang.org/x/exp/constraints"
)

// node - One entry of the tree. Nodes own their children and carry no link to their parent.
type node[K comparable, V any] struct {
	entry model.Entry[K, V]
	left  *node[K, V]
	right *node[K, V]
}

// TreeMap - A map implemented as an unbalanced binary search tree. Lookups, insertions and removals follow a single
// path from the root, so they are O(height), which degrades to O(n) when keys arrive in sorted order since the tree
// never rebalances.
//
// Placement rule, shared by insert, lookup and removal: when the key of a node compares less than the key searched
// for, the search continues in the left subtree, otherwise in the right subtree. An in-order traversal therefore
// yields entries in descending key order.
//
// A TreeMap is not safe for concurrent use.
type TreeMap[K comparable, V any] struct {
	root       *node[K, V]
	entryCount int
	less       func(a, b K) bool
}

// NewTreeMap - Returns a new empty tree map for keys with a natural order
func NewTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{less: func(a, b K) bool { return a < b }}
}

// NewTreeMapFunc - Returns a new empty tree map ordering keys with less.
//   - less must be a strict total order consistent with == on K
//
// It returns:
//   - treeMap is a pointer to the new TreeMap
//   - err is a standard error if less is nil
func NewTreeMapFunc[K comparable, V any](less func(a, b K) bool) (treeMap *TreeMap[K, V], err error) {
	if less == nil {
		err = fmt.Errorf("a less function is required to order keys")
		return
	}

	treeMap = &TreeMap[K, V]{less: less}
	return
}

// Size - Returns the number of entries stored
func (T *TreeMap[K, V]) Size() int {
	return T.entryCount
}

// Begin - Returns a cursor at the first entry in order, or at the end if the tree is empty
func (T *TreeMap[K, V]) Begin() model.Cursor[K, V] {
	iter := &Iterator[K, V]{tree: T}
	iter.current = iter.firstInOrder(T.root)
	return iter
}

// End - Returns a cursor at the logical end of the tree
func (T *TreeMap[K, V]) End() model.Cursor[K, V] {
	return &Iterator[K, V]{tree: T}
}

// Find - Returns a cursor positioned at the first in-order node of the subtree rooted at the node holding key,
// or End if there is no such node. The ascendants passed on the way down are kept so that iteration can go on
// from there.
func (T *TreeMap[K, V]) Find(key K) model.Cursor[K, V] {
	iter := &Iterator[K, V]{tree: T}
	n := T.root
	for n != nil && n.entry.Key != key {
		if T.less(n.entry.Key, key) {
			iter.ascendants.Push(n)
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return T.End()
	}

	iter.current = iter.firstInOrder(n)
	return iter
}

// At - Returns the value stored under key.
// It returns an error of type crt.NoSuchElement if key is not present.
func (T *TreeMap[K, V]) At(key K) (value V, err error) {
	n, _, _ := T.nodeFor(key)
	if n == nil {
		err = crt.NewNoSuchElement("at")
		return
	}

	value = n.entry.Value
	return
}

// Insert - Updates the value of the node holding key, or attaches a new node at the empty slot where the
// search for key ended.
func (T *TreeMap[K, V]) Insert(key K, value V) {
	if T.root == nil {
		T.root = &node[K, V]{entry: model.Entry[K, V]{Key: key, Value: value}}
		T.entryCount++
		return
	}

	n, parent, left := T.nodeFor(key)
	if n != nil {
		n.entry.Value = value
		return
	}

	n = &node[K, V]{entry: model.Entry[K, V]{Key: key, Value: value}}
	if left {
		parent.left = n
	} else {
		parent.right = n
	}
	T.entryCount++
}

// Erase - Removes the node holding key, splicing its replacement into the slot it occupied.
// It returns an error of type crt.NoSuchElement if key is not present, the tree is then left unchanged.
func (T *TreeMap[K, V]) Erase(key K) (err error) {
	n, parent, left := T.nodeFor(key)
	if n == nil {
		err = crt.NewNoSuchElement("erase")
		return
	}

	switch {
	case parent == nil:
		T.root = eraseNode(n)
	case left:
		parent.left = eraseNode(n)
	default:
		parent.right = eraseNode(n)
	}
	T.entryCount--

	return
}

// Clone - Returns a deep copy of the tree with the same shape, sharing no nodes with the original
func (T *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{
		root:       cloneNode(T.root),
		entryCount: T.entryCount,
		less:       T.less,
	}
}

// Clear - Removes all entries
func (T *TreeMap[K, V]) Clear() {
	T.root = nil
	T.entryCount = 0
}

// nodeFor - Searches the tree for the node holding key.
// It returns:
//   - n is the node holding key, nil if not found
//   - parent is the parent of n, or the node below which key should be attached if not found, nil at the root
//   - left is true if n is (or should be) the left child of parent
func (T *TreeMap[K, V]) nodeFor(key K) (n, parent *node[K, V], left bool) {
	n = T.root
	for n != nil {
		if n.entry.Key == key {
			return
		}
		parent = n
		if T.less(n.entry.Key, key) {
			left = true
			n = n.left
		} else {
			left = false
			n = n.right
		}
	}

	return
}

// eraseNode - Detaches n and returns the subtree that must take its place, ordered and with only n missing.
// With two children the in-order successor (leftmost node of the right subtree) is promoted.
func eraseNode[K comparable, V any](n *node[K, V]) (replacement *node[K, V]) {
	switch {
	case n.left == nil:
		replacement = n.right
	case n.right == nil:
		replacement = n.left
	default:
		var parentOfSmallest *node[K, V]
		smallest := n.right
		for smallest.left != nil {
			parentOfSmallest = smallest
			smallest = smallest.left
		}

		if parentOfSmallest != nil {
			// detach smallest, its right subtree takes its slot
			parentOfSmallest.left = smallest.right
			smallest.left = n.left
			smallest.right = n.right
		} else {
			// smallest is n.right itself
			smallest.left = n.left
		}
		replacement = smallest
	}

	n.left = nil
	n.right = nil

	return
}

// cloneNode - Recursively copies the subtree rooted at n
func cloneNode[K comparable, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	return &node[K, V]{
		entry: n.entry,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}
