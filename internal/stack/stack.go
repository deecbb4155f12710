package stack

import (
	"github.com/gostonefire/kvengine/crt"
)

// Stack - LIFO of values. The tree cursor keeps its ascendant nodes here since tree nodes carry no parent link.
type Stack[T any] struct {
	items []T
}

// Len - Returns the number of values on the stack
func (S *Stack[T]) Len() int {
	return len(S.items)
}

// Push - Puts value on top of the stack
func (S *Stack[T]) Push(value T) {
	S.items = append(S.items, value)
}

// Top - Returns the value on top of the stack without removing it.
// It returns an error of type crt.EmptyCollection if the stack is empty.
func (S *Stack[T]) Top() (value T, err error) {
	if len(S.items) == 0 {
		err = crt.NewEmptyCollection("top")
		return
	}

	value = S.items[len(S.items)-1]
	return
}

// Pop - Removes and returns the value on top of the stack.
// It returns an error of type crt.EmptyCollection if the stack is empty.
func (S *Stack[T]) Pop() (value T, err error) {
	value, err = S.Top()
	if err != nil {
		return
	}

	var zero T
	S.items[len(S.items)-1] = zero
	S.items = S.items[:len(S.items)-1]

	return
}
