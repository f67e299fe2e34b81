// File: internal/dryrun/executor.go
// Package dryrun provides an Executor that performs no injection at all:
// every primitive is logged and every sleep really elapses. It exists so
// behavior profiles can be auditioned (and their timing observed) without
// a browser attached.
package dryrun

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"github.com/xkilldash9x/ghosthand/internal/humanoid"
)

// Executor logs primitives instead of dispatching them. Pointer position
// is tracked so the engine sees consistent geometry.
type Executor struct {
	logger *zap.Logger
	x, y   int
}

var _ humanoid.Executor = (*Executor)(nil)

// New builds a dry-run executor logging at debug level.
func New(logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{logger: logger}
}

func (e *Executor) MoveTo(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.x, e.y = x, y
	e.logger.Debug("dryrun: moveTo", zap.Int("x", x), zap.Int("y", y))
	return nil
}

func (e *Executor) MouseDown(ctx context.Context, button schemas.MouseButton) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: mouseDown", zap.String("button", string(button)))
	return nil
}

func (e *Executor) MouseUp(ctx context.Context, button schemas.MouseButton) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: mouseUp", zap.String("button", string(button)))
	return nil
}

func (e *Executor) Click(ctx context.Context, button schemas.MouseButton) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: click", zap.String("button", string(button)), zap.Int("x", e.x), zap.Int("y", e.y))
	return nil
}

func (e *Executor) Scroll(ctx context.Context, delta int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: scroll", zap.Int("delta", delta))
	return nil
}

func (e *Executor) KeyPress(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: keyPress", zap.String("key", key))
	return nil
}

func (e *Executor) KeyDown(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: keyDown", zap.String("key", key))
	return nil
}

func (e *Executor) KeyUp(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.logger.Debug("dryrun: keyUp", zap.String("key", key))
	return nil
}

func (e *Executor) CurrentPosition(_ context.Context) (int, int, error) {
	return e.x, e.y, nil
}

func (e *Executor) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
