package kvengine

import (
	"io"

	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/internal/utils"
	"github.com/gostonefire/kvengine/model"
	"golang.org/x/exp/constraints"
)

// Set - Membership only container. Inserting an already present key is a no-op. It is an associative container
// whose values are the zero size placeholder struct{}, value returning operations are not offered.
type Set[K comparable] struct {
	container Container[K, struct{}]
	backend   int
}

// NewSet - Returns a new empty set using the backend described by conf
func NewSet[K comparable](conf Conf[K]) (s *Set[K], err error) {
	container, err := newContainer[K, struct{}](conf)
	if err != nil {
		return
	}

	s = &Set[K]{container: container, backend: conf.Backend}
	return
}

// NewHashSet - Returns a new empty hash table backed set with default settings
func NewHashSet[K comparable]() (*Set[K], error) {
	return NewSet[K](Conf[K]{Backend: crt.HashTable})
}

// NewTreeSet - Returns a new empty binary tree backed set ordered by the natural order of K
func NewTreeSet[K constraints.Ordered]() *Set[K] {
	s, _ := NewSet[K](Conf[K]{Backend: crt.BinaryTree, Less: less[K]})
	return s
}

// Backend - Returns the backend identifier, crt.HashTable or crt.BinaryTree
func (S *Set[K]) Backend() int {
	return S.backend
}

// Begin - Returns a cursor at the first element
func (S *Set[K]) Begin() model.Cursor[K, struct{}] {
	return S.container.Begin()
}

// End - Returns a cursor at the logical end
func (S *Set[K]) End() model.Cursor[K, struct{}] {
	return S.container.End()
}

// Contains - Returns true if key is a member
func (S *Set[K]) Contains(key K) bool {
	return !S.container.Find(key).Equal(S.container.End())
}

// Insert - Adds key to the set
func (S *Set[K]) Insert(key K) {
	S.container.Insert(key, struct{}{})
}

// Erase - Removes key, or returns an error of type crt.NoSuchElement if it is not a member
func (S *Set[K]) Erase(key K) error {
	return S.container.Erase(key)
}

// Size - Returns the number of members
func (S *Set[K]) Size() int {
	return S.container.Size()
}

// Keys - Returns all members in iteration order
func (S *Set[K]) Keys() []K {
	keys := make([]K, 0, S.container.Size())
	for it := S.container.Begin(); !it.Done(); _ = it.Next() {
		entry, _ := it.Elem()
		keys = append(keys, entry.Key)
	}
	return keys
}

// Clone - Returns a deep copy of the set, using the same backend.
// It returns an error if the backend cannot be copied.
func (S *Set[K]) Clone() (clone *Set[K], err error) {
	container, err := cloneContainer(S.container)
	if err != nil {
		return
	}

	clone = &Set[K]{container: container, backend: S.backend}
	return
}

// PrintEntries - Writes all members in iteration order separated by ", "
func (S *Set[K]) PrintEntries(w io.Writer) error {
	return utils.PrintRange(w, S.container.Begin(), S.container.End(), ", ")
}

// Print - Writes the backend specific dump
func (S *Set[K]) Print(w io.Writer) error {
	return S.container.Print(w)
}

// Diagnose - Writes backend specific diagnostics
func (S *Set[K]) Diagnose(w io.Writer) error {
	return S.container.Diagnose(w)
}
