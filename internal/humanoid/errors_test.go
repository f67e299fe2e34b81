// File: internal/humanoid/errors_test.go
package humanoid

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapInjection(t *testing.T) {
	assert.NoError(t, wrapInjection("moveTo", nil))

	// Cancellation passes through untouched so callers can distinguish a
	// normal early exit from a real injection failure.
	assert.Equal(t, context.Canceled, wrapInjection("moveTo", context.Canceled))
	assert.Equal(t, context.DeadlineExceeded, wrapInjection("moveTo", context.DeadlineExceeded))

	wrapped := fmt.Errorf("dispatch: %w", context.Canceled)
	assert.Equal(t, wrapped, wrapInjection("moveTo", wrapped))

	err := wrapInjection("click", assert.AnError)
	var injErr *InputInjectionError
	require.ErrorAs(t, err, &injErr)
	assert.Equal(t, "click", injErr.Op)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, context.Canceled))
}

func TestErrorStrings(t *testing.T) {
	cfgErr := &ConfigurationError{Field: "speed", Reason: "min must be below max"}
	assert.Contains(t, cfgErr.Error(), "speed")
	assert.Contains(t, cfgErr.Error(), "min must be below max")

	injErr := &InputInjectionError{Op: "keyPress", Err: assert.AnError}
	assert.Contains(t, injErr.Error(), "keyPress")
	assert.Equal(t, assert.AnError, injErr.Unwrap())
}
