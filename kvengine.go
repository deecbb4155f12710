package kvengine

import (
	"fmt"
	"io"

	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/hashfunc"
	"github.com/gostonefire/kvengine/internal/storage/hashtable"
	"github.com/gostonefire/kvengine/internal/storage/treemap"
	"github.com/gostonefire/kvengine/model"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Container - Interface for any associative container backend. Both the hash table and the binary tree implement it
// identically, so code written against it is backend agnostic, the only visible differences being iteration order
// and worst case complexity.
type Container[K comparable, V any] interface {
	Begin() model.Cursor[K, V]
	End() model.Cursor[K, V]
	Find(key K) model.Cursor[K, V]
	At(key K) (value V, err error)
	Insert(key K, value V)
	Erase(key K) (err error)
	Size() int
	Print(w io.Writer) (err error)
	Diagnose(w io.Writer) (err error)
}

// Conf - Is a struct to be passed in the call to NewMap or NewSet and contains configuration for the backend.
//   - Backend is either crt.HashTable or crt.BinaryTree
//   - InitialBins is the initial number of bins for the hash table backend, zero for default
//   - HashFunc is an optional custom hash function for the hash table backend
//   - Less orders keys for the binary tree backend and is required for it
//   - Logger is an optional logger for backend events
type Conf[K comparable] struct {
	Backend     int
	InitialBins int
	HashFunc    hashfunc.Hasher[K]
	Less        func(a, b K) bool
	Logger      *zap.Logger
}

// newContainer - Creates the backend selected in conf
func newContainer[K comparable, V any](conf Conf[K]) (container Container[K, V], err error) {
	switch conf.Backend {
	case crt.HashTable:
		var ht *hashtable.HashTable[K, V]
		ht, err = hashtable.NewHashTable[K, V](hashtable.Conf[K]{
			InitialBins: conf.InitialBins,
			HashFunc:    conf.HashFunc,
			Logger:      conf.Logger,
		})
		if err != nil {
			err = fmt.Errorf("error while creating hash table backend: %w", err)
			return
		}
		container = ht
	case crt.BinaryTree:
		var tm *treemap.TreeMap[K, V]
		tm, err = treemap.NewTreeMapFunc[K, V](conf.Less)
		if err != nil {
			err = fmt.Errorf("error while creating binary tree backend: %w", err)
			return
		}
		container = tm
	default:
		err = fmt.Errorf("unknown backend %d, use crt.HashTable or crt.BinaryTree", conf.Backend)
	}

	return
}

// cloneContainer - Deep copies container, which must be one of the backends created by newContainer.
// It returns an error for any other container type.
func cloneContainer[K comparable, V any](container Container[K, V]) (clone Container[K, V], err error) {
	switch b := container.(type) {
	case *hashtable.HashTable[K, V]:
		clone = b.Clone()
	case *treemap.TreeMap[K, V]:
		clone = b.Clone()
	default:
		err = fmt.Errorf("cannot clone container of type %T", container)
	}

	return
}

// less - Natural order for ordered keys
func less[K constraints.Ordered](a, b K) bool {
	return a < b
}
