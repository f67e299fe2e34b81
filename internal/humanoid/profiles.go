// File: internal/humanoid/profiles.go
package humanoid

import (
	"fmt"
	"time"
)

// DelayProfile bounds the delay distributions the engine samples from.
// All pairs are half-open windows with min strictly below max. The profile
// is validated once at Simulator construction and never mutated afterwards.
type DelayProfile struct {
	// MinDelay and MaxDelay bound generic short pauses (inter-key delays
	// fall back to this window when no explicit window is given).
	MinDelay time.Duration
	MaxDelay time.Duration
	// ThinkMin and ThinkMax bound cognitive pauses before decisions.
	ThinkMin time.Duration
	ThinkMax time.Duration
	// ReactionMin and ReactionMax bound perception-to-action latency
	// before small motions.
	ReactionMin time.Duration
	ReactionMax time.Duration
}

// DefaultDelayProfile mirrors the timing of an unhurried desktop user.
func DefaultDelayProfile() DelayProfile {
	return DelayProfile{
		MinDelay:    100 * time.Millisecond,
		MaxDelay:    500 * time.Millisecond,
		ThinkMin:    200 * time.Millisecond,
		ThinkMax:    1000 * time.Millisecond,
		ReactionMin: 100 * time.Millisecond,
		ReactionMax: 300 * time.Millisecond,
	}
}

// Validate rejects non-positive durations and inverted windows.
func (p DelayProfile) Validate() error {
	windows := []struct {
		name     string
		min, max time.Duration
	}{
		{"delay", p.MinDelay, p.MaxDelay},
		{"think_time", p.ThinkMin, p.ThinkMax},
		{"reaction_time", p.ReactionMin, p.ReactionMax},
	}
	for _, w := range windows {
		if w.min <= 0 || w.max <= 0 {
			return &ConfigurationError{Field: w.name, Reason: "durations must be strictly positive"}
		}
		if w.min >= w.max {
			return &ConfigurationError{
				Field:  w.name,
				Reason: fmt.Sprintf("min (%s) must be below max (%s)", w.min, w.max),
			}
		}
	}
	return nil
}

// MotionProfile governs pointer path shape and traversal time.
type MotionProfile struct {
	// SpeedMin and SpeedMax bound the total traversal duration of one
	// movement; the actual duration is drawn uniformly in between.
	SpeedMin time.Duration
	SpeedMax time.Duration
	// CurveFactor in [0,1] is carried for interface compatibility with
	// the configuration layer; path curvature itself is randomized per
	// movement (see synthesizePath).
	CurveFactor float64
	// JitterFactor in [0,1] scales the hand-tremor perturbation applied
	// to curved paths: each point is jittered by up to JitterFactor*10
	// pixels in each axis.
	JitterFactor float64
}

// DefaultMotionProfile mirrors the pointer dynamics of an average user.
func DefaultMotionProfile() MotionProfile {
	return MotionProfile{
		SpeedMin:     300 * time.Millisecond,
		SpeedMax:     800 * time.Millisecond,
		CurveFactor:  0.3,
		JitterFactor: 0.05,
	}
}

// Validate rejects inverted speed windows and out-of-range factors.
func (p MotionProfile) Validate() error {
	if p.SpeedMin <= 0 || p.SpeedMax <= 0 {
		return &ConfigurationError{Field: "speed", Reason: "durations must be strictly positive"}
	}
	if p.SpeedMin >= p.SpeedMax {
		return &ConfigurationError{
			Field:  "speed",
			Reason: fmt.Sprintf("min (%s) must be below max (%s)", p.SpeedMin, p.SpeedMax),
		}
	}
	if p.CurveFactor < 0 || p.CurveFactor > 1 {
		return &ConfigurationError{Field: "curve_factor", Reason: "must be within [0,1]"}
	}
	if p.JitterFactor < 0 || p.JitterFactor > 1 {
		return &ConfigurationError{Field: "jitter_factor", Reason: "must be within [0,1]"}
	}
	return nil
}
