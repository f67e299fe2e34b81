// File: internal/humanoid/mocks_test.go
package humanoid

import (
	"context"
	"sync"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
)

// mockExecutor implements Executor for tests, recording every primitive in
// order. Sleeps are recorded but do not elapse unless MockSleep overrides
// the behavior, so tests observe pacing without waiting through it.
type mockExecutor struct {
	mu sync.Mutex

	pos        schemas.Point
	ops        []string // ordered primitive trace: "moveTo", "click", ...
	moves      []schemas.Point
	clicks     []schemas.MouseButton
	mouseDowns []schemas.MouseButton
	mouseUps   []schemas.MouseButton
	scrolls    []int
	keyPresses []string
	keyDowns   []string
	keyUps     []string
	sleeps     []time.Duration

	// failOp forces failErr from the named primitive.
	failOp  string
	failErr error
	posErr  error

	// onMove runs after the nth recorded move; used to trigger
	// cancellation mid-traversal.
	onMove func(moveCount int)

	// MockSleep overrides the default record-only sleep.
	MockSleep func(ctx context.Context, d time.Duration) error
}

func newMockExecutor() *mockExecutor {
	return &mockExecutor{}
}

func (m *mockExecutor) record(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.ops = append(m.ops, op)
	fail := m.failOp == op
	err := m.failErr
	m.mu.Unlock()
	if fail {
		return err
	}
	return nil
}

func (m *mockExecutor) MoveTo(ctx context.Context, x, y int) error {
	if err := m.record(ctx, "moveTo"); err != nil {
		return err
	}
	m.mu.Lock()
	m.pos = schemas.Point{X: x, Y: y}
	m.moves = append(m.moves, m.pos)
	n := len(m.moves)
	hook := m.onMove
	m.mu.Unlock()
	if hook != nil {
		hook(n)
	}
	return nil
}

func (m *mockExecutor) MouseDown(ctx context.Context, b schemas.MouseButton) error {
	if err := m.record(ctx, "mouseDown"); err != nil {
		return err
	}
	m.mu.Lock()
	m.mouseDowns = append(m.mouseDowns, b)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) MouseUp(ctx context.Context, b schemas.MouseButton) error {
	if err := m.record(ctx, "mouseUp"); err != nil {
		return err
	}
	m.mu.Lock()
	m.mouseUps = append(m.mouseUps, b)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) Click(ctx context.Context, b schemas.MouseButton) error {
	if err := m.record(ctx, "click"); err != nil {
		return err
	}
	m.mu.Lock()
	m.clicks = append(m.clicks, b)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) Scroll(ctx context.Context, delta int) error {
	if err := m.record(ctx, "scroll"); err != nil {
		return err
	}
	m.mu.Lock()
	m.scrolls = append(m.scrolls, delta)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) KeyPress(ctx context.Context, key string) error {
	if err := m.record(ctx, "keyPress"); err != nil {
		return err
	}
	m.mu.Lock()
	m.keyPresses = append(m.keyPresses, key)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) KeyDown(ctx context.Context, key string) error {
	if err := m.record(ctx, "keyDown"); err != nil {
		return err
	}
	m.mu.Lock()
	m.keyDowns = append(m.keyDowns, key)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) KeyUp(ctx context.Context, key string) error {
	if err := m.record(ctx, "keyUp"); err != nil {
		return err
	}
	m.mu.Lock()
	m.keyUps = append(m.keyUps, key)
	m.mu.Unlock()
	return nil
}

func (m *mockExecutor) CurrentPosition(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.posErr != nil {
		return 0, 0, m.posErr
	}
	return m.pos.X, m.pos.Y, nil
}

func (m *mockExecutor) Sleep(ctx context.Context, d time.Duration) error {
	if m.MockSleep != nil {
		return m.MockSleep(ctx, d)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.mu.Unlock()
	return nil
}

// lastMove returns the final recorded pointer move.
func (m *mockExecutor) lastMove() schemas.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.moves[len(m.moves)-1]
}

// opCount counts recorded primitives by name.
func (m *mockExecutor) opCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, o := range m.ops {
		if o == op {
			n++
		}
	}
	return n
}

// opTrace returns a copy of the ordered primitive trace.
func (m *mockExecutor) opTrace() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	trace := make([]string, len(m.ops))
	copy(trace, m.ops)
	return trace
}
