// File: internal/humanoid/keys.go
package humanoid

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	pressIntervalMin = 100 * time.Millisecond
	pressIntervalMax = 500 * time.Millisecond
	modifierGapMin   = 50 * time.Millisecond
	modifierGapMax   = 150 * time.Millisecond
)

// PressKey presses a named key the given number of times. A zero interval
// draws a fresh uniform gap for each repetition.
func (s *Simulator) PressKey(ctx context.Context, key string, presses int, interval time.Duration) error {
	if key == "" {
		return &ConfigurationError{Field: "key", Reason: "must not be empty"}
	}
	if presses <= 0 {
		return &ConfigurationError{Field: "presses", Reason: "must be strictly positive"}
	}

	for i := 0; i < presses; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.executor.KeyPress(ctx, key); err != nil {
			return wrapInjection("keyPress", err)
		}
		if i < presses-1 {
			gap := interval
			if gap <= 0 {
				gap = s.sample.uniform(pressIntervalMin, pressIntervalMax)
			}
			if err := s.executor.Sleep(ctx, gap); err != nil {
				return wrapInjection("sleep", err)
			}
		}
	}

	s.completeAction()
	s.logger.Debug("Key pressed", zap.String("key", key), zap.Int("presses", presses))
	return nil
}

// Hotkey holds the modifier keys in order with small gaps, presses the
// final key, then releases the modifiers in reverse order. Held modifiers
// are released even when a later primitive fails.
func (s *Simulator) Hotkey(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return &ConfigurationError{Field: "keys", Reason: "must name at least one key"}
	}

	modifiers := keys[:len(keys)-1]
	final := keys[len(keys)-1]

	held := 0
	releaseHeld := func() {
		// Release with a background context so a cancelled hotkey does
		// not leave modifiers stuck down.
		for i := held - 1; i >= 0; i-- {
			if err := s.executor.KeyUp(context.Background(), modifiers[i]); err != nil {
				s.logger.Warn("Failed to release modifier", zap.String("key", modifiers[i]), zap.Error(err))
			}
		}
	}

	for _, mod := range modifiers {
		if err := s.executor.KeyDown(ctx, mod); err != nil {
			releaseHeld()
			return wrapInjection("keyDown", err)
		}
		held++
		if err := s.executor.Sleep(ctx, s.sample.uniform(modifierGapMin, modifierGapMax)); err != nil {
			releaseHeld()
			return wrapInjection("sleep", err)
		}
	}

	if err := s.executor.KeyPress(ctx, final); err != nil {
		releaseHeld()
		return wrapInjection("keyPress", err)
	}
	if err := s.executor.Sleep(ctx, s.sample.uniform(modifierGapMin, modifierGapMax)); err != nil {
		releaseHeld()
		return wrapInjection("sleep", err)
	}

	for i := len(modifiers) - 1; i >= 0; i-- {
		if err := s.executor.KeyUp(ctx, modifiers[i]); err != nil {
			held = i
			releaseHeld()
			return wrapInjection("keyUp", err)
		}
		held = i
		if i > 0 {
			if err := s.executor.Sleep(ctx, s.sample.uniform(modifierGapMin, modifierGapMax)); err != nil {
				releaseHeld()
				return wrapInjection("sleep", err)
			}
		}
	}

	s.completeAction()
	s.logger.Debug("Hotkey issued", zap.Strings("keys", keys))
	return nil
}
