package kvengine

import (
	"io"

	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/internal/utils"
	"github.com/gostonefire/kvengine/model"
	"golang.org/x/exp/constraints"
)

// Map - Stores key/value pairs indexed by key. Inserting under an already present key overwrites its value.
// All operations are forwarded to the backend chosen at construction time.
type Map[K comparable, V any] struct {
	container Container[K, V]
	backend   int
}

// NewMap - Returns a new empty map using the backend described by conf.
//
// It returns:
//   - m is a pointer to the new Map
//   - err is a standard error if the backend could not be created from conf
func NewMap[K comparable, V any](conf Conf[K]) (m *Map[K, V], err error) {
	container, err := newContainer[K, V](conf)
	if err != nil {
		return
	}

	m = &Map[K, V]{container: container, backend: conf.Backend}
	return
}

// NewHashMap - Returns a new empty hash table backed map with default settings. Iteration order is unspecified.
// It returns an error if K has no built-in hash rule and does not implement hashfunc.Hashable.
func NewHashMap[K comparable, V any]() (*Map[K, V], error) {
	return NewMap[K, V](Conf[K]{Backend: crt.HashTable})
}

// NewTreeMap - Returns a new empty binary tree backed map ordered by the natural order of K.
// Iteration yields entries in descending key order.
func NewTreeMap[K constraints.Ordered, V any]() *Map[K, V] {
	m, _ := NewMap[K, V](Conf[K]{Backend: crt.BinaryTree, Less: less[K]})
	return m
}

// Backend - Returns the backend identifier, crt.HashTable or crt.BinaryTree
func (M *Map[K, V]) Backend() int {
	return M.backend
}

// Begin - Returns a cursor at the first entry
func (M *Map[K, V]) Begin() model.Cursor[K, V] {
	return M.container.Begin()
}

// End - Returns a cursor at the logical end
func (M *Map[K, V]) End() model.Cursor[K, V] {
	return M.container.End()
}

// Find - Returns a cursor for key, or End if key is not present
func (M *Map[K, V]) Find(key K) model.Cursor[K, V] {
	return M.container.Find(key)
}

// At - Returns the value stored under key, or an error of type crt.NoSuchElement
func (M *Map[K, V]) At(key K) (V, error) {
	return M.container.At(key)
}

// Contains - Returns true if key is present
func (M *Map[K, V]) Contains(key K) bool {
	return !M.container.Find(key).Equal(M.container.End())
}

// Insert - Adds key with value, or overwrites the value if key is already present
func (M *Map[K, V]) Insert(key K, value V) {
	M.container.Insert(key, value)
}

// Erase - Removes key, or returns an error of type crt.NoSuchElement if it is not present
func (M *Map[K, V]) Erase(key K) error {
	return M.container.Erase(key)
}

// Size - Returns the number of entries
func (M *Map[K, V]) Size() int {
	return M.container.Size()
}

// Range - Calls fn for every entry in iteration order until fn returns false
func (M *Map[K, V]) Range(fn func(key K, value V) bool) {
	for it := M.container.Begin(); !it.Done(); _ = it.Next() {
		entry, _ := it.Elem()
		if !fn(entry.Key, entry.Value) {
			return
		}
	}
}

// Keys - Returns all keys in iteration order
func (M *Map[K, V]) Keys() []K {
	keys := make([]K, 0, M.container.Size())
	M.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Clone - Returns a deep copy of the map, using the same backend.
// It returns an error if the backend cannot be copied.
func (M *Map[K, V]) Clone() (clone *Map[K, V], err error) {
	container, err := cloneContainer(M.container)
	if err != nil {
		return
	}

	clone = &Map[K, V]{container: container, backend: M.backend}
	return
}

// PrintEntries - Writes all entries in iteration order separated by ", "
func (M *Map[K, V]) PrintEntries(w io.Writer) error {
	return utils.PrintRange(w, M.container.Begin(), M.container.End(), ", ")
}

// Print - Writes the backend specific dump, bins for the hash table and the tree shape for the binary tree
func (M *Map[K, V]) Print(w io.Writer) error {
	return M.container.Print(w)
}

// Diagnose - Writes backend specific diagnostics, the chain length histogram for the hash table and path length
// statistics for the binary tree
func (M *Map[K, V]) Diagnose(w io.Writer) error {
	return M.container.Diagnose(w)
}
