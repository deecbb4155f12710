package crt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Is(t *testing.T) {
	t.Run("matches kind regardless of message", func(t *testing.T) {
		// Prepare
		err := fmt.Errorf("wrapped: %w", NewNoSuchElement("erase"))

		// Check
		assert.True(t, errors.Is(err, NoSuchElement{}), "no such element")
		assert.False(t, errors.Is(err, InvalidAccess{}), "not invalid access")
		assert.Equal(t, "wrapped: no such element: erase", err.Error(), "message")
	})

	t.Run("every kind matches itself only", func(t *testing.T) {
		// Prepare
		kinds := []error{NoSuchElement{}, EmptyCollection{}, InvalidIndex{}, InvalidAccess{}}
		created := []error{NewNoSuchElement("a"), NewEmptyCollection("b"), NewInvalidIndex("c"), NewInvalidAccess("d")}

		// Check
		for i, err := range created {
			for j, kind := range kinds {
				assert.Equalf(t, i == j, errors.Is(err, kind), "%v against %T", err, kind)
			}
		}
	})

	t.Run("messages without operation", func(t *testing.T) {
		assert.Equal(t, "no such element", NoSuchElement{}.Error(), "bare message")
		assert.NotEmpty(t, EmptyCollection{}.Error(), "empty collection message")
	})
}

func TestBackendName(t *testing.T) {
	assert.Equal(t, "hash", BackendName(HashTable), "hash")
	assert.Equal(t, "tree", BackendName(BinaryTree), "tree")
	assert.Equal(t, "unknown", BackendName(0), "unknown")
}
