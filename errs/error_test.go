//go:build unit

package errs

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrors_Error(t *testing.T) {
	t.Run("default messages", func(t *testing.T) {
		assert.Equal(t, "illegal argument", IllegalArgument{}.Error())
		assert.Equal(t, "nil argument", NullArgument{}.Error())
		assert.Equal(t, "illegal state", IllegalState{}.Error())
		assert.Equal(t, "concurrent modification", ConcurrentModification{}.Error())
		assert.Equal(t, "no such element", NoSuchElement{}.Error())
	})

	t.Run("formatted messages", func(t *testing.T) {
		// Execute
		err := NewIllegalArgument("illegal initial capacity: %d", -1)

		// Check
		assert.Equal(t, "illegal initial capacity: -1", err.Error())
	})
}

func TestErrors_Is(t *testing.T) {
	t.Run("matches type regardless of message", func(t *testing.T) {
		// Prepare
		err := fmt.Errorf("wrapped: %w", NewIllegalState("remove called twice"))

		// Check
		assert.True(t, errors.Is(err, IllegalState{}), "wrapped illegal state matches")
		assert.False(t, errors.Is(err, IllegalArgument{}), "does not match other types")
	})

	t.Run("null argument is not an illegal argument", func(t *testing.T) {
		// Prepare
		err := NewNullArgument("element can not be nil")

		// Check
		assert.True(t, errors.Is(err, NullArgument{}))
		assert.False(t, errors.Is(err, IllegalArgument{}))
	})
}
