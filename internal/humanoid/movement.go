// File: internal/humanoid/movement.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"go.uber.org/zap"
)

// MoveOption adjusts a single MoveTo call without touching the profile.
type MoveOption func(*moveConfig)

type moveConfig struct {
	speed       time.Duration
	curveFactor *float64
}

// WithSpeed fixes the total traversal duration instead of drawing it from
// the motion profile's speed window.
func WithSpeed(d time.Duration) MoveOption {
	return func(c *moveConfig) { c.speed = d }
}

// WithCurveFactor overrides the profile's curve factor for this movement.
func WithCurveFactor(f float64) MoveOption {
	return func(c *moveConfig) { c.curveFactor = &f }
}

// MoveTo moves the pointer to (x, y) along a synthesized human-like path.
// If the pointer is already within tolerance of the target, nothing is
// emitted. On success one history entry is recorded for the final
// position of the logical move, never one per path point.
func (s *Simulator) MoveTo(ctx context.Context, x, y int, opts ...MoveOption) error {
	var cfg moveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	curX, curY, err := s.executor.CurrentPosition(ctx)
	if err != nil {
		return wrapInjection("currentPosition", err)
	}

	if abs(curX-x) < moveTolerance && abs(curY-y) < moveTolerance {
		s.logger.Debug("Pointer already at target, skipping move",
			zap.Int("x", x), zap.Int("y", y))
		return nil
	}

	if err := s.reactionPause(ctx); err != nil {
		return err
	}

	motion := s.motion
	if cfg.curveFactor != nil {
		motion.CurveFactor = *cfg.curveFactor
	}

	start := schemas.Point{X: curX, Y: curY}
	target := schemas.Point{X: x, Y: y}
	path := synthesizePath(s.rng, start, target, motion)

	total := cfg.speed
	if total <= 0 {
		total = s.sample.uniform(motion.SpeedMin, motion.SpeedMax)
	}

	if err := s.traverse(ctx, path, total); err != nil {
		return err
	}

	s.recordPosition(target)
	s.completeAction()
	s.logger.Debug("Pointer moved",
		zap.Int("x", x), zap.Int("y", y),
		zap.Int("path_points", len(path)),
		zap.Duration("duration", total))
	return nil
}

// traverse walks the pointer along path, spreading total across the
// segments. Each actual sleep is further randomized by ±20% so consecutive
// segment times are not uniform. Cancellation is checked between steps;
// a failed primitive aborts the remaining steps immediately.
func (s *Simulator) traverse(ctx context.Context, path []schemas.Point, total time.Duration) error {
	interval := total / time.Duration(len(path))
	for i, p := range path {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.executor.MoveTo(ctx, p.X, p.Y); err != nil {
			return wrapInjection("moveTo", err)
		}
		if i < len(path)-1 {
			sleep := s.sample.scale(interval, 0.8, 1.2)
			if err := s.executor.Sleep(ctx, sleep); err != nil {
				return wrapInjection("sleep", err)
			}
		}
	}
	return nil
}
