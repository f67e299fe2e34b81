// File: internal/humanoid/simulator.go
// Package humanoid synthesizes pointer and keyboard input that statistically
// resembles human operation: curved or eased motion paths with tremor
// jitter, bell-shaped (never uniform) delay distributions, keystroke errors
// with probabilistic correction, and idle micro-actions. It deliberately
// blocks the calling goroutine for realistic elapsed time; that is its
// function, not an inefficiency.
package humanoid

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/xkilldash9x/ghosthand/api/schemas"
	"go.uber.org/zap"
)

// Options carries the immutable construction-time inputs of a Simulator.
// Profiles come from the caller's configuration layer; the engine never
// re-reads ambient state after construction (hot reload means building a
// new instance).
type Options struct {
	// Delays bounds every sampled pause. Zero value selects the default.
	Delays DelayProfile
	// Motion governs path shape and traversal time. Zero value selects
	// the default.
	Motion MotionProfile
	// Screen is the area idle look-around movements stay inside. Zero
	// value selects 1920x1080.
	Screen schemas.Geometry
	// Rng is the random source for every draw the engine makes. Inject a
	// seeded source for reproducible paths and delays; nil seeds one from
	// the wall clock.
	Rng *rand.Rand
}

// Simulator is the behavior orchestrator: it composes the path
// synthesizer, timing model, error-injection model, and idle machine into
// the public actions, issuing primitives through the Executor and sleeping
// between them.
//
// A Simulator is not safe for concurrent use. Its only mutable state (the
// random source and the action history) is owned by the single calling
// goroutine; callers needing concurrent automation use separate instances.
type Simulator struct {
	id       string
	logger   *zap.Logger
	executor Executor
	delays   DelayProfile
	motion   MotionProfile
	screen   schemas.Geometry
	rng      *rand.Rand
	sample   sampler

	history      actionHistory
	actionCount  int
	lastActionAt time.Time
}

// New validates the profiles and builds a Simulator. Invalid ranges fail
// fast here with a ConfigurationError and never surface mid-action.
func New(opts Options, logger *zap.Logger, executor Executor) (*Simulator, error) {
	if executor == nil {
		return nil, &ConfigurationError{Field: "executor", Reason: "must not be nil"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Delays == (DelayProfile{}) {
		opts.Delays = DefaultDelayProfile()
	}
	if opts.Motion == (MotionProfile{}) {
		opts.Motion = DefaultMotionProfile()
	}
	if opts.Screen == (schemas.Geometry{}) {
		opts.Screen = schemas.Geometry{Width: 1920, Height: 1080}
	}
	if err := opts.Delays.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Motion.Validate(); err != nil {
		return nil, err
	}
	if opts.Screen.Width <= 0 || opts.Screen.Height <= 0 {
		return nil, &ConfigurationError{Field: "screen", Reason: "dimensions must be strictly positive"}
	}

	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	id := uuid.NewString()
	s := &Simulator{
		id:       id,
		logger:   logger.With(zap.String("engine_id", id)),
		executor: executor,
		delays:   opts.Delays,
		motion:   opts.Motion,
		screen:   opts.Screen,
		rng:      rng,
		sample:   sampler{rng: rng},
	}
	s.logger.Debug("Simulator initialized",
		zap.Int("screen_width", opts.Screen.Width),
		zap.Int("screen_height", opts.Screen.Height))
	return s, nil
}

// ID returns the unique identifier of this engine instance, present on all
// of its log entries.
func (s *Simulator) ID() string { return s.id }

// NewTestSimulator builds a Simulator with default profiles and a
// deterministic random source for tests.
func NewTestSimulator(executor Executor, seed int64) *Simulator {
	s, err := New(Options{Rng: rand.New(rand.NewSource(seed))}, zap.NewNop(), executor)
	if err != nil {
		panic(err)
	}
	return s
}

// BehaviorPattern computes the current diagnostic snapshot from the action
// history. Fewer than two history entries yield the zero pattern.
func (s *Simulator) BehaviorPattern() BehaviorPattern {
	return s.history.pattern(s.actionCount, s.lastActionAt)
}

// completeAction bumps the counters every finished public action shares.
func (s *Simulator) completeAction() {
	s.actionCount++
	s.lastActionAt = time.Now()
}

// recordPosition appends one history entry for the final position of a
// logical pointer action (never one per path point).
func (s *Simulator) recordPosition(pos schemas.Point) {
	s.history.add(pos, time.Now())
}

// reactionPause sleeps for a perception-to-action latency.
func (s *Simulator) reactionPause(ctx context.Context) error {
	return s.pause(ctx, s.delays.ReactionMin, s.delays.ReactionMax)
}

// thinkPause sleeps for a cognitive pause before or after a decision.
func (s *Simulator) thinkPause(ctx context.Context, min, max time.Duration) error {
	return s.pause(ctx, min, max)
}

// pause draws a clamped-normal delay from [min, max] and sleeps through
// the executor so tests can observe pacing.
func (s *Simulator) pause(ctx context.Context, min, max time.Duration) error {
	return wrapInjection("sleep", s.executor.Sleep(ctx, s.sample.between(min, max)))
}
