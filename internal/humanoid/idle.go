// File: internal/humanoid/idle.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"go.uber.org/zap"
)

// Idle micro-action constants. The pointer roams a margin inside the
// screen during look-around so it never pins to an edge.
const (
	microMoveBound   = 20
	lookAroundMargin = 100
	lookPauseMin     = 300 * time.Millisecond
	lookPauseMax     = 1000 * time.Millisecond
	tabPauseMin      = 500 * time.Millisecond
	tabPauseMax      = 1500 * time.Millisecond
	interIdleMin     = 500 * time.Millisecond
	interIdleMax     = 2000 * time.Millisecond
)

// idleAction is one of the four transient micro-behaviors the idle machine
// selects from. None retains state between invocations beyond the shared
// history buffer.
type idleAction int

const (
	idleMicroMove idleAction = iota
	idleLookAround
	idleScrollRandom
	idleSwitchTabs
	idleActionCount
)

// Idle runs micro-actions until a budget drawn uniformly from [min, max]
// is exhausted, avoiding a suspiciously static input stream during
// simulated inactivity. Cancellation is checked before every micro-action;
// a cancelled idle terminates early with ctx.Err(), which is a normal
// early exit, not an injection failure.
func (s *Simulator) Idle(ctx context.Context, min, max time.Duration) error {
	if min <= 0 || max < min {
		return &ConfigurationError{Field: "idle_duration", Reason: "require 0 < min <= max"}
	}

	target := min
	if max > min {
		target = s.sample.uniform(min, max)
	}
	s.logger.Debug("Idle behavior started", zap.Duration("target", target))

	start := time.Now()
	for time.Since(start) < target {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch idleAction(s.rng.Intn(int(idleActionCount))) {
		case idleMicroMove:
			err = s.idleMicroMove(ctx)
		case idleLookAround:
			err = s.idleLookAround(ctx)
		case idleScrollRandom:
			err = s.idleScrollRandom(ctx)
		case idleSwitchTabs:
			err = s.idleSwitchTabs(ctx)
		}
		if err != nil {
			return err
		}

		if err := s.executor.Sleep(ctx, s.sample.uniform(interIdleMin, interIdleMax)); err != nil {
			return wrapInjection("sleep", err)
		}
	}

	s.completeAction()
	s.logger.Debug("Idle behavior finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// idleMicroMove nudges the pointer by a small random offset.
func (s *Simulator) idleMicroMove(ctx context.Context) error {
	x, y, err := s.executor.CurrentPosition(ctx)
	if err != nil {
		return wrapInjection("currentPosition", err)
	}
	return s.MoveTo(ctx,
		x+s.sample.intBetween(-microMoveBound, microMoveBound),
		y+s.sample.intBetween(-microMoveBound, microMoveBound))
}

// idleLookAround glances at a random on-screen point, then lingers.
func (s *Simulator) idleLookAround(ctx context.Context) error {
	maxX, maxY := s.screen.Width-lookAroundMargin, s.screen.Height-lookAroundMargin
	x := s.sample.intBetween(lookAroundMargin, maxX)
	y := s.sample.intBetween(lookAroundMargin, maxY)
	if err := s.MoveTo(ctx, x, y); err != nil {
		return err
	}
	return wrapInjection("sleep", s.executor.Sleep(ctx, s.sample.uniform(lookPauseMin, lookPauseMax)))
}

// idleScrollRandom scrolls a few ticks in a random direction.
func (s *Simulator) idleScrollRandom(ctx context.Context) error {
	direction := schemas.ScrollDown
	if s.sample.chance(0.5) {
		direction = schemas.ScrollUp
	}
	return s.Scroll(ctx, direction, s.sample.intBetween(1, 3), ScrollOptions{})
}

// idleSwitchTabs flips to the next tab and pauses as if skimming it.
func (s *Simulator) idleSwitchTabs(ctx context.Context) error {
	if err := s.Hotkey(ctx, "ctrl", "tab"); err != nil {
		return err
	}
	return wrapInjection("sleep", s.executor.Sleep(ctx, s.sample.uniform(tabPauseMin, tabPauseMax)))
}
