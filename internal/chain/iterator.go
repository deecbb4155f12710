package chain

import (
	"github.com/gostonefire/kvengine/crt"
)

// Iterator - Is used to iterate over chain values one by one.
type Iterator[T any] struct {
	node *Node[T]
}

// HasNext - Returns true if there are more values to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.node != nil
}

// Next - Returns value.
// It returns:
//   - value is the next value in the chain.
//   - err is of type crt.NoSuchElement if there are no more values when calling this function.
func (I *Iterator[T]) Next() (value T, err error) {
	if I.node == nil {
		err = crt.NewNoSuchElement("next")
		return
	}

	value = I.node.Value
	I.node = I.node.next

	return
}
