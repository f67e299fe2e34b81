// File: internal/humanoid/drag.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"go.uber.org/zap"
)

const (
	grabPauseMin = 100 * time.Millisecond
	grabPauseMax = 300 * time.Millisecond
	dragSpeedMin = 500 * time.Millisecond
	dragSpeedMax = 1500 * time.Millisecond
)

// Drag moves to the start point, presses the left button, traverses a
// curved path to the end point while held, and releases. A zero duration
// draws one uniformly from the default drag window. If the traversal fails
// or is cancelled mid-flight, the button is still released so the session
// is not left in a stuck drag.
func (s *Simulator) Drag(ctx context.Context, startX, startY, endX, endY int, duration time.Duration) error {
	if err := s.MoveTo(ctx, startX, startY); err != nil {
		return err
	}

	if err := s.executor.Sleep(ctx, s.sample.uniform(grabPauseMin, grabPauseMax)); err != nil {
		return wrapInjection("sleep", err)
	}

	if err := s.executor.MouseDown(ctx, schemas.ButtonLeft); err != nil {
		return wrapInjection("mouseDown", err)
	}

	if duration <= 0 {
		duration = s.sample.uniform(dragSpeedMin, dragSpeedMax)
	}

	// Drags are always curved: a straight held movement is a stronger
	// automation signal than a straight free movement.
	start := schemas.Point{X: startX, Y: startY}
	end := schemas.Point{X: endX, Y: endY}
	path := jitterPath(s.rng, bezierPath(s.rng, start, end), s.motion.JitterFactor)

	if err := s.traverse(ctx, path, duration); err != nil {
		// Release with a background context: the drag context may already
		// be cancelled, and a stuck held button is worse than the failure.
		if relErr := s.executor.MouseUp(context.Background(), schemas.ButtonLeft); relErr != nil {
			s.logger.Warn("Failed to release mouse after aborted drag", zap.Error(relErr))
		}
		return err
	}

	if err := s.executor.Sleep(ctx, s.sample.uniform(grabPauseMin, grabPauseMax)); err != nil {
		if relErr := s.executor.MouseUp(context.Background(), schemas.ButtonLeft); relErr != nil {
			s.logger.Warn("Failed to release mouse after aborted drag", zap.Error(relErr))
		}
		return wrapInjection("sleep", err)
	}

	if err := s.executor.MouseUp(ctx, schemas.ButtonLeft); err != nil {
		return wrapInjection("mouseUp", err)
	}

	s.recordPosition(end)
	s.completeAction()
	s.logger.Debug("Drag completed",
		zap.Int("start_x", startX), zap.Int("start_y", startY),
		zap.Int("end_x", endX), zap.Int("end_y", endY),
		zap.Duration("duration", duration))
	return nil
}
