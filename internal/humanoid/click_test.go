// File: internal/humanoid/click_test.go
package humanoid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/ghosthand/api/schemas"
)

func TestClickAtTargetLandsNearby(t *testing.T) {
	exec := newMockExecutor()
	sim := NewTestSimulator(exec, 1)

	err := sim.Click(context.Background(), ClickOptions{At: &schemas.Point{X: 300, Y: 200}})
	require.NoError(t, err)

	assert.Equal(t, []schemas.MouseButton{schemas.ButtonLeft}, exec.clicks)

	// Landing stays within the random imprecision bound of the target.
	last := exec.lastMove()
	assert.LessOrEqual(t, abs(last.X-300), clickOffsetBound)
	assert.LessOrEqual(t, abs(last.Y-200), clickOffsetBound)
}

func TestClickWithExplicitOffset(t *testing.T) {
	exec := newMockExecutor()
	sim := NewTestSimulator(exec, 2)

	err := sim.Click(context.Background(), ClickOptions{
		At:     &schemas.Point{X: 300, Y: 200},
		Offset: &schemas.Point{X: 0, Y: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, schemas.Point{X: 300, Y: 200}, exec.lastMove())
}

func TestClickInPlace(t *testing.T) {
	exec := newMockExecutor()
	sim := NewTestSimulator(exec, 3)

	err := sim.Click(context.Background(), ClickOptions{Button: schemas.ButtonRight})
	require.NoError(t, err)

	assert.Empty(t, exec.moves, "no target means no movement")
	assert.Equal(t, []schemas.MouseButton{schemas.ButtonRight}, exec.clicks)
}

func TestClickDouble(t *testing.T) {
	exec := newMockExecutor()
	sim := NewTestSimulator(exec, 4)

	err := sim.Click(context.Background(), ClickOptions{Double: true})
	require.NoError(t, err)

	assert.Equal(t, 2, exec.opCount("click"))
}

func TestClickRejectsUnknownButton(t *testing.T) {
	exec := newMockExecutor()
	sim := NewTestSimulator(exec, 5)

	err := sim.Click(context.Background(), ClickOptions{Button: schemas.MouseButton("wheel")})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, exec.clicks)
}

func TestClickRejectsNoneButton(t *testing.T) {
	exec := newMockExecutor()
	sim := NewTestSimulator(exec, 6)

	err := sim.Click(context.Background(), ClickOptions{Button: schemas.ButtonNone})

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestClickExecutorFailure(t *testing.T) {
	exec := newMockExecutor()
	exec.failOp = "click"
	exec.failErr = assert.AnError
	sim := NewTestSimulator(exec, 7)

	err := sim.Click(context.Background(), ClickOptions{})

	var injErr *InputInjectionError
	require.ErrorAs(t, err, &injErr)
	assert.Equal(t, "click", injErr.Op)
	assert.Equal(t, 0, sim.BehaviorPattern().TotalActions)
}
