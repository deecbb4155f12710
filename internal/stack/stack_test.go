package stack

import (
	"testing"

	"github.com/gostonefire/kvengine/crt"
	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	t.Run("pops in reverse push order", func(t *testing.T) {
		// Prepare
		s := &Stack[int]{}
		s.Push(1)
		s.Push(2)

		// Execute
		top, err := s.Top()
		first, _ := s.Pop()
		second, _ := s.Pop()

		// Check
		assert.NoError(t, err, "top of non empty stack")
		assert.Equal(t, 2, top, "top is last pushed")
		assert.Equal(t, 2, first, "first pop")
		assert.Equal(t, 1, second, "second pop")
		assert.Equal(t, 0, s.Len(), "stack is empty")
	})

	t.Run("fails on empty stack", func(t *testing.T) {
		// Prepare
		s := &Stack[string]{}

		// Execute
		_, errTop := s.Top()
		_, errPop := s.Pop()

		// Check
		assert.ErrorIs(t, errTop, crt.EmptyCollection{}, "top error")
		assert.ErrorIs(t, errPop, crt.EmptyCollection{}, "pop error")
	})
}
