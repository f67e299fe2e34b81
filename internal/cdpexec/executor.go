// File: internal/cdpexec/executor.go
// Package cdpexec implements the engine's Executor capability over the
// Chrome DevTools Protocol via chromedp. It is the production adapter that
// carries synthesized input events into a live browser tab.
package cdpexec

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"github.com/xkilldash9x/ghosthand/internal/humanoid"
)

// opTimeout bounds a single CDP dispatch so an unresponsive tab surfaces as
// an error instead of hanging the engine inside a primitive call.
const opTimeout = 10 * time.Second

// wheelTickPixels is the pixel delta one scroll tick translates to.
const wheelTickPixels = 100.0

// Executor dispatches input events into a chromedp tab context. CDP has no
// cursor-position query, so the pointer position and held-button bitmask
// are tracked locally; they are authoritative as long as all input flows
// through this executor, which the engine guarantees.
//
// Like the engine that drives it, an Executor is not safe for concurrent use.
type Executor struct {
	tabCtx  context.Context
	logger  *zap.Logger
	run     func(ctx context.Context, actions ...chromedp.Action) error
	x, y    int
	buttons int64
}

var _ humanoid.Executor = (*Executor)(nil)

// New wraps an existing chromedp tab context. The caller owns the tab's
// lifecycle; the executor only dispatches into it.
func New(tabCtx context.Context, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Executor{tabCtx: tabCtx, logger: logger}
	e.run = e.runActions
	return e
}

// runActions executes CDP actions on the tab context, bounded by opTimeout
// and cancelled early if the caller's context dies first.
func (e *Executor) runActions(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opCtx, cancel := context.WithTimeout(e.tabCtx, opTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(opCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// MoveTo dispatches a mouseMoved event to (x, y), carrying the held-button
// bitmask so in-flight drags stay held.
func (e *Executor) MoveTo(ctx context.Context, x, y int) error {
	p := input.DispatchMouseEvent(input.MouseMoved, float64(x), float64(y)).
		WithButtons(e.buttons)
	if err := e.run(ctx, p); err != nil {
		return fmt.Errorf("cdpexec: mouse move to (%d,%d): %w", x, y, err)
	}
	e.x, e.y = x, y
	return nil
}

// MouseDown presses and holds button at the current position.
func (e *Executor) MouseDown(ctx context.Context, button schemas.MouseButton) error {
	mask, err := buttonBit(button)
	if err != nil {
		return err
	}
	p := input.DispatchMouseEvent(input.MousePressed, float64(e.x), float64(e.y)).
		WithButton(input.MouseButton(button)).
		WithButtons(e.buttons | mask).
		WithClickCount(1)
	if err := e.run(ctx, p); err != nil {
		return fmt.Errorf("cdpexec: mouse down (%s): %w", button, err)
	}
	e.buttons |= mask
	return nil
}

// MouseUp releases button at the current position.
func (e *Executor) MouseUp(ctx context.Context, button schemas.MouseButton) error {
	mask, err := buttonBit(button)
	if err != nil {
		return err
	}
	p := input.DispatchMouseEvent(input.MouseReleased, float64(e.x), float64(e.y)).
		WithButton(input.MouseButton(button)).
		WithButtons(e.buttons &^ mask).
		WithClickCount(1)
	if err := e.run(ctx, p); err != nil {
		return fmt.Errorf("cdpexec: mouse up (%s): %w", button, err)
	}
	e.buttons &^= mask
	return nil
}

// Click issues a full press-release of button at the current position.
func (e *Executor) Click(ctx context.Context, button schemas.MouseButton) error {
	if err := e.MouseDown(ctx, button); err != nil {
		return err
	}
	return e.MouseUp(ctx, button)
}

// Scroll dispatches one wheel event at the current position. Positive
// delta scrolls up; CDP's deltaY axis points down, hence the negation.
func (e *Executor) Scroll(ctx context.Context, delta int) error {
	p := input.DispatchMouseEvent(input.MouseWheel, float64(e.x), float64(e.y)).
		WithButtons(e.buttons).
		WithDeltaX(0).
		WithDeltaY(-float64(delta) * wheelTickPixels)
	if err := e.run(ctx, p); err != nil {
		return fmt.Errorf("cdpexec: scroll (%d ticks): %w", delta, err)
	}
	return nil
}

// KeyPress sends a full down-up of a character or named key. Characters go
// through chromedp's key encoder; named keys are translated first.
func (e *Executor) KeyPress(ctx context.Context, key string) error {
	if seq, ok := controlSequences[key]; ok {
		key = seq
	}
	if err := e.run(ctx, chromedp.KeyEvent(key)); err != nil {
		return fmt.Errorf("cdpexec: key press %q: %w", key, err)
	}
	return nil
}

// KeyDown presses and holds a key, typically a hotkey modifier.
func (e *Executor) KeyDown(ctx context.Context, key string) error {
	p := input.DispatchKeyEvent(input.KeyDown).WithKey(cdpKeyName(key))
	if err := e.run(ctx, p); err != nil {
		return fmt.Errorf("cdpexec: key down %q: %w", key, err)
	}
	return nil
}

// KeyUp releases a held key.
func (e *Executor) KeyUp(ctx context.Context, key string) error {
	p := input.DispatchKeyEvent(input.KeyUp).WithKey(cdpKeyName(key))
	if err := e.run(ctx, p); err != nil {
		return fmt.Errorf("cdpexec: key up %q: %w", key, err)
	}
	return nil
}

// CurrentPosition reports the locally tracked pointer position.
func (e *Executor) CurrentPosition(_ context.Context) (int, int, error) {
	return e.x, e.y, nil
}

// Sleep waits for d or until the context is cancelled.
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

// buttonBit maps a button to its CDP bitfield bit (left 1, right 2, middle 4).
func buttonBit(button schemas.MouseButton) (int64, error) {
	switch button {
	case schemas.ButtonLeft:
		return 1, nil
	case schemas.ButtonRight:
		return 2, nil
	case schemas.ButtonMiddle:
		return 4, nil
	}
	return 0, fmt.Errorf("cdpexec: unknown mouse button %q", button)
}

// controlSequences translates the engine's named keys into the control
// characters chromedp's key encoder understands.
var controlSequences = map[string]string{
	"backspace": "\b",
	"enter":     "\r",
	"return":    "\r",
	"tab":       "\t",
	"esc":       "\x1b",
	"escape":    "\x1b",
	"space":     " ",
	"delete":    "\u007f",
}

// cdpKeyNames translates named keys into CDP DOM key names for structured
// down/up events.
var cdpKeyNames = map[string]string{
	"ctrl":      "Control",
	"control":   "Control",
	"alt":       "Alt",
	"shift":     "Shift",
	"meta":      "Meta",
	"cmd":       "Meta",
	"win":       "Meta",
	"tab":       "Tab",
	"enter":     "Enter",
	"return":    "Enter",
	"esc":       "Escape",
	"escape":    "Escape",
	"backspace": "Backspace",
	"delete":    "Delete",
	"space":     " ",
}

func cdpKeyName(key string) string {
	if name, ok := cdpKeyNames[key]; ok {
		return name
	}
	return key
}
