// File: internal/cdpexec/executor_test.go
package cdpexec

import (
	"context"
	"testing"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/ghosthand/api/schemas"
)

// newCapturingExecutor replaces the CDP dispatch with a recorder so tests
// exercise event construction and local state tracking without a browser.
func newCapturingExecutor() (*Executor, *[]chromedp.Action) {
	e := New(context.Background(), nil)
	var captured []chromedp.Action
	e.run = func(ctx context.Context, actions ...chromedp.Action) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		captured = append(captured, actions...)
		return nil
	}
	return e, &captured
}

func lastMouseEvent(t *testing.T, captured []chromedp.Action) *input.DispatchMouseEventParams {
	t.Helper()
	require.NotEmpty(t, captured)
	p, ok := captured[len(captured)-1].(*input.DispatchMouseEventParams)
	require.True(t, ok, "expected a mouse event, got %T", captured[len(captured)-1])
	return p
}

func TestMoveToTracksPosition(t *testing.T) {
	e, captured := newCapturingExecutor()
	ctx := context.Background()

	require.NoError(t, e.MoveTo(ctx, 320, 240))

	x, y, err := e.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 320, x)
	assert.Equal(t, 240, y)

	p := lastMouseEvent(t, *captured)
	assert.Equal(t, input.MouseMoved, p.Type)
	assert.Equal(t, 320.0, p.X)
	assert.Equal(t, 240.0, p.Y)
}

func TestMouseDownUpTracksButtonBitmask(t *testing.T) {
	e, captured := newCapturingExecutor()
	ctx := context.Background()

	require.NoError(t, e.MouseDown(ctx, schemas.ButtonLeft))
	down := lastMouseEvent(t, *captured)
	assert.Equal(t, input.MousePressed, down.Type)
	assert.Equal(t, input.Left, down.Button)
	assert.Equal(t, int64(1), down.Buttons)

	// A move while held carries the bitmask, keeping the drag alive.
	require.NoError(t, e.MoveTo(ctx, 50, 50))
	move := lastMouseEvent(t, *captured)
	assert.Equal(t, int64(1), move.Buttons)

	require.NoError(t, e.MouseUp(ctx, schemas.ButtonLeft))
	up := lastMouseEvent(t, *captured)
	assert.Equal(t, input.MouseReleased, up.Type)
	assert.Equal(t, int64(0), up.Buttons)

	// After release the bitmask is clear again.
	require.NoError(t, e.MoveTo(ctx, 60, 60))
	assert.Equal(t, int64(0), lastMouseEvent(t, *captured).Buttons)
}

func TestClickDispatchesPressAndRelease(t *testing.T) {
	e, captured := newCapturingExecutor()

	require.NoError(t, e.Click(context.Background(), schemas.ButtonRight))

	require.Len(t, *captured, 2)
	press := (*captured)[0].(*input.DispatchMouseEventParams)
	release := (*captured)[1].(*input.DispatchMouseEventParams)
	assert.Equal(t, input.MousePressed, press.Type)
	assert.Equal(t, input.Right, press.Button)
	assert.Equal(t, input.MouseReleased, release.Type)
	assert.Equal(t, input.Right, release.Button)
}

func TestScrollNegatesDeltaAxis(t *testing.T) {
	e, captured := newCapturingExecutor()
	ctx := context.Background()

	// Positive ticks scroll up: CDP's deltaY axis points down.
	require.NoError(t, e.Scroll(ctx, 2))
	up := lastMouseEvent(t, *captured)
	assert.Equal(t, input.MouseWheel, up.Type)
	assert.Equal(t, -200.0, up.DeltaY)

	require.NoError(t, e.Scroll(ctx, -3))
	down := lastMouseEvent(t, *captured)
	assert.Equal(t, 300.0, down.DeltaY)
}

func TestScrollDispatchesAtCurrentPosition(t *testing.T) {
	e, captured := newCapturingExecutor()
	ctx := context.Background()

	require.NoError(t, e.MoveTo(ctx, 400, 500))
	require.NoError(t, e.Scroll(ctx, 1))

	p := lastMouseEvent(t, *captured)
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 500.0, p.Y)
}

func TestKeyDownUpUseDOMKeyNames(t *testing.T) {
	e, captured := newCapturingExecutor()
	ctx := context.Background()

	require.NoError(t, e.KeyDown(ctx, "ctrl"))
	down := (*captured)[0].(*input.DispatchKeyEventParams)
	assert.Equal(t, input.KeyDown, down.Type)
	assert.Equal(t, "Control", down.Key)

	require.NoError(t, e.KeyUp(ctx, "ctrl"))
	up := (*captured)[1].(*input.DispatchKeyEventParams)
	assert.Equal(t, input.KeyUp, up.Type)
	assert.Equal(t, "Control", up.Key)
}

func TestKeyPressDispatches(t *testing.T) {
	e, captured := newCapturingExecutor()

	require.NoError(t, e.KeyPress(context.Background(), "a"))
	assert.Len(t, *captured, 1)

	require.NoError(t, e.KeyPress(context.Background(), "backspace"))
	assert.Len(t, *captured, 2)
}

func TestButtonBit(t *testing.T) {
	tests := []struct {
		button schemas.MouseButton
		want   int64
	}{
		{schemas.ButtonLeft, 1},
		{schemas.ButtonRight, 2},
		{schemas.ButtonMiddle, 4},
	}
	for _, tt := range tests {
		got, err := buttonBit(tt.button)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := buttonBit(schemas.ButtonNone)
	assert.Error(t, err)
	_, err = buttonBit(schemas.MouseButton("wheel"))
	assert.Error(t, err)
}

func TestMouseDownRejectsUnknownButton(t *testing.T) {
	e, captured := newCapturingExecutor()

	err := e.MouseDown(context.Background(), schemas.ButtonNone)
	assert.Error(t, err)
	assert.Empty(t, *captured, "nothing may be dispatched for an invalid button")
}

func TestCDPKeyNamePassesUnknownThrough(t *testing.T) {
	assert.Equal(t, "Shift", cdpKeyName("shift"))
	assert.Equal(t, "F5", cdpKeyName("F5"))
}

func TestSleepHonorsCancellation(t *testing.T) {
	e := New(context.Background(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.Sleep(ctx, time.Second), context.Canceled)

	start := time.Now()
	require.NoError(t, e.Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	assert.NoError(t, e.Sleep(context.Background(), 0))
}

func TestRunHonorsCancelledCaller(t *testing.T) {
	e, _ := newCapturingExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.MoveTo(ctx, 10, 10), context.Canceled)
}
