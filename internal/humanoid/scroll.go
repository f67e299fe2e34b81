// File: internal/humanoid/scroll.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"go.uber.org/zap"
)

const (
	interTickMin = 200 * time.Millisecond
	interTickMax = 800 * time.Millisecond
	// Each tick carries a random magnitude of 1-3 wheel units so repeated
	// scrolls do not share a fixed step size.
	tickMagnitudeMin = 1
	tickMagnitudeMax = 3
)

// ScrollOptions configures a single Scroll call.
type ScrollOptions struct {
	// At moves the pointer there before scrolling. Nil scrolls in place.
	At *schemas.Point
}

// Scroll issues clicks wheel ticks in the requested direction, each with a
// random magnitude and an inter-tick delay.
func (s *Simulator) Scroll(ctx context.Context, direction schemas.ScrollDirection, clicks int, opts ScrollOptions) error {
	if !direction.Valid() {
		return &ConfigurationError{Field: "direction", Reason: "unknown scroll direction " + string(direction)}
	}
	if clicks <= 0 {
		return &ConfigurationError{Field: "clicks", Reason: "must be strictly positive"}
	}

	if opts.At != nil {
		if err := s.MoveTo(ctx, opts.At.X, opts.At.Y); err != nil {
			return err
		}
	}

	for i := 0; i < clicks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		delta := s.sample.intBetween(tickMagnitudeMin, tickMagnitudeMax)
		if direction == schemas.ScrollDown {
			delta = -delta
		}
		if err := s.executor.Scroll(ctx, delta); err != nil {
			return wrapInjection("scroll", err)
		}
		if i < clicks-1 {
			if err := s.executor.Sleep(ctx, s.sample.uniform(interTickMin, interTickMax)); err != nil {
				return wrapInjection("sleep", err)
			}
		}
	}

	s.completeAction()
	s.logger.Debug("Scroll issued",
		zap.String("direction", string(direction)),
		zap.Int("clicks", clicks))
	return nil
}
