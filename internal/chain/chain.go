package chain

import (
	"github.com/gostonefire/kvengine/crt"
)

// Node - Represents one element in a chain. Nodes are owned by exactly one chain at a time.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
}

// Next - Returns the node following this one, or nil if this is the last node
func (N *Node[T]) Next() *Node[T] {
	return N.next
}

// Chain - A doubly linked list keeping its elements in insertion order. It is the per bin storage of the hash
// table and the temporary storage used while the hash table grows.
type Chain[T any] struct {
	front *Node[T]
	back  *Node[T]
	size  int
}

// Len - Returns the number of elements in the chain
func (C *Chain[T]) Len() int {
	return C.size
}

// Front - Returns the first node of the chain, or nil if the chain is empty
func (C *Chain[T]) Front() *Node[T] {
	return C.front
}

// Back - Returns the value of the last element.
// It returns an error of type crt.EmptyCollection if the chain is empty.
func (C *Chain[T]) Back() (value T, err error) {
	if C.back == nil {
		err = crt.NewEmptyCollection("back")
		return
	}

	value = C.back.Value
	return
}

// At - Returns the value at position index.
// It returns an error of type crt.InvalidIndex if index is outside [0, Len()).
func (C *Chain[T]) At(index int) (value T, err error) {
	if index < 0 || index >= C.size {
		err = crt.NewInvalidIndex("at")
		return
	}

	n := C.front
	for i := 0; i < index; i++ {
		n = n.next
	}
	value = n.Value

	return
}

// PushBack - Appends value at the end of the chain and returns the node holding it
func (C *Chain[T]) PushBack(value T) *Node[T] {
	n := &Node[T]{Value: value}
	C.linkBack(n)
	return n
}

// Find - Returns the first node, in insertion order, whose value satisfies match, or nil if there is none
func (C *Chain[T]) Find(match func(value T) bool) *Node[T] {
	for n := C.front; n != nil; n = n.next {
		if match(n.Value) {
			return n
		}
	}
	return nil
}

// Remove - Unlinks n from the chain. The node must belong to this chain.
func (C *Chain[T]) Remove(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		C.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		C.back = n.prev
	}
	n.prev = nil
	n.next = nil
	C.size--
}

// Concat - Moves all nodes of other to the end of this chain, leaving other empty. No element is copied.
func (C *Chain[T]) Concat(other *Chain[T]) {
	if other == C || other.size == 0 {
		return
	}

	if C.back == nil {
		C.front = other.front
	} else {
		C.back.next = other.front
		other.front.prev = C.back
	}
	C.back = other.back
	C.size += other.size

	other.front = nil
	other.back = nil
	other.size = 0
}

// MoveBackTo - Moves the last node of this chain to the end of other without copying its value.
// It returns an error of type crt.EmptyCollection if this chain is empty.
func (C *Chain[T]) MoveBackTo(other *Chain[T]) (err error) {
	n := C.back
	if n == nil {
		err = crt.NewEmptyCollection("move back")
		return
	}

	C.Remove(n)
	other.linkBack(n)

	return
}

// Clone - Returns a new chain holding copies of all values in the same order
func (C *Chain[T]) Clone() *Chain[T] {
	c := &Chain[T]{}
	for n := C.front; n != nil; n = n.next {
		c.PushBack(n.Value)
	}
	return c
}

// Iterator - Returns an Iterator positioned at the first element
func (C *Chain[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{node: C.front}
}

// linkBack - Appends an unlinked node at the end of the chain
func (C *Chain[T]) linkBack(n *Node[T]) {
	n.prev = C.back
	n.next = nil
	if C.back == nil {
		C.front = n
	} else {
		C.back.next = n
	}
	C.back = n
	C.size++
}
