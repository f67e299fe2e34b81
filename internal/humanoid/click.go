// File: internal/humanoid/click.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"go.uber.org/zap"
)

// Click timing windows. The pre-click pause models perception-to-action
// latency at the end of a movement; the post-click pause models the short
// cognitive beat before the next decision.
const (
	preClickMin  = 50 * time.Millisecond
	preClickMax  = 200 * time.Millisecond
	postClickMin = 100 * time.Millisecond
	postClickMax = 300 * time.Millisecond
	doubleGapMin = 100 * time.Millisecond
	doubleGapMax = 300 * time.Millisecond
	// clickOffsetBound bounds the random landing offset (px, per axis)
	// applied when the caller supplies a target but no explicit offset,
	// modeling imprecise clicking.
	clickOffsetBound = 3
)

// ClickOptions configures a single Click call.
type ClickOptions struct {
	// At is the target coordinate. Nil clicks at the current position.
	At *schemas.Point
	// Button defaults to ButtonLeft when unset.
	Button schemas.MouseButton
	// Double issues two primitive clicks with a short gap.
	Double bool
	// Offset displaces the landing point from At. Nil draws a random
	// offset within ±clickOffsetBound on each axis.
	Offset *schemas.Point
}

// Click optionally moves to the target, waits a reaction beat, and issues
// one or two primitive clicks followed by a think pause.
func (s *Simulator) Click(ctx context.Context, opts ClickOptions) error {
	button := opts.Button
	if button == "" {
		button = schemas.ButtonLeft
	}
	if !button.Valid() {
		return &ConfigurationError{Field: "button", Reason: "unknown mouse button " + string(button)}
	}

	if opts.At != nil {
		offset := opts.Offset
		if offset == nil {
			offset = &schemas.Point{
				X: s.sample.intBetween(-clickOffsetBound, clickOffsetBound),
				Y: s.sample.intBetween(-clickOffsetBound, clickOffsetBound),
			}
		}
		if err := s.MoveTo(ctx, opts.At.X+offset.X, opts.At.Y+offset.Y); err != nil {
			return err
		}
	}

	if err := s.pause(ctx, preClickMin, preClickMax); err != nil {
		return err
	}

	if err := s.executor.Click(ctx, button); err != nil {
		return wrapInjection("click", err)
	}
	if opts.Double {
		gap := s.sample.uniform(doubleGapMin, doubleGapMax)
		if err := s.executor.Sleep(ctx, gap); err != nil {
			return wrapInjection("sleep", err)
		}
		if err := s.executor.Click(ctx, button); err != nil {
			return wrapInjection("click", err)
		}
	}

	if err := s.thinkPause(ctx, postClickMin, postClickMax); err != nil {
		return err
	}

	s.completeAction()
	s.logger.Debug("Click issued",
		zap.String("button", string(button)),
		zap.Bool("double", opts.Double))
	return nil
}
