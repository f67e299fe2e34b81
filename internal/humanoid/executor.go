// File: internal/humanoid/executor.go
package humanoid

import (
	"context"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
)

// Executor is the only component permitted to emit OS- or protocol-level
// pointer and keyboard events and to query the current pointer position.
// The engine stays independent of the underlying transport (CDP, OS input,
// a recording fake in tests) by talking exclusively through this interface.
//
// Implementations must fail with a distinguishable error when the platform
// denies or cannot perform injection (permission revoked, display gone,
// target unresponsive). The engine never retries a failed primitive.
type Executor interface {
	// MoveTo places the pointer at the absolute coordinate (x, y).
	MoveTo(ctx context.Context, x, y int) error
	// MouseDown presses and holds the given button at the current position.
	MouseDown(ctx context.Context, button schemas.MouseButton) error
	// MouseUp releases the given button at the current position.
	MouseUp(ctx context.Context, button schemas.MouseButton) error
	// Click issues a full press-release of the given button.
	Click(ctx context.Context, button schemas.MouseButton) error
	// Scroll emits one wheel event; positive delta scrolls up, negative down.
	Scroll(ctx context.Context, delta int) error
	// KeyPress issues a full down-up of a character or named key.
	KeyPress(ctx context.Context, key string) error
	// KeyDown presses and holds a key (used for hotkey modifiers).
	KeyDown(ctx context.Context, key string) error
	// KeyUp releases a held key.
	KeyUp(ctx context.Context, key string) error
	// CurrentPosition reports the pointer's current absolute coordinate.
	CurrentPosition(ctx context.Context) (x, y int, err error)
	// Sleep pauses for d, honoring context cancellation. Routing sleeps
	// through the executor lets tests observe pacing without waiting.
	Sleep(ctx context.Context, d time.Duration) error
}
