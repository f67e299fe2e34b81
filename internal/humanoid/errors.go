// File: internal/humanoid/errors.go
package humanoid

import (
	"context"
	"errors"
	"fmt"
)

// ConfigurationError reports a malformed profile or option value. It is
// returned at construction time only; a Simulator that was built
// successfully never surfaces one mid-action.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("humanoid: invalid configuration for %s: %s", e.Field, e.Reason)
}

// InputInjectionError wraps a failure reported by the Executor while an
// action was in flight. The action aborts without completing its remaining
// steps; retrying is the caller's decision.
type InputInjectionError struct {
	Op  string
	Err error
}

func (e *InputInjectionError) Error() string {
	return fmt.Sprintf("humanoid: input injection failed during %s: %v", e.Op, e.Err)
}

func (e *InputInjectionError) Unwrap() error { return e.Err }

// wrapInjection classifies an executor failure. Context cancellation is a
// normal early termination and is passed through untouched so callers can
// tell it apart from a real injection failure with errors.Is.
func wrapInjection(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &InputInjectionError{Op: op, Err: err}
}
