package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	t.Run("Resolves wrapped sentinels", func(t *testing.T) {
		// Given: a sentinel wrapped with context
		err := fmt.Errorf("failed to place mark: %w", ErrColumnFull)

		// When: resolving the user message
		msg := Message(err)

		// Then: the sentinel's message is returned
		assert.Equal(t, "Column is full! Try another.", msg)
	})

	t.Run("Falls back to the error text", func(t *testing.T) {
		// Given: an error without a user message
		err := errors.New("boom")

		// Then: its own text is returned
		assert.Equal(t, "boom", Message(err))
	})
}

func TestIsRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(ErrGameNotActive))
	assert.True(t, IsRecoverable(fmt.Errorf("%w: %q", ErrUnknownMode, "solo")))
	assert.False(t, IsRecoverable(errors.New("connection refused")))
	assert.False(t, IsRecoverable(nil))
}
