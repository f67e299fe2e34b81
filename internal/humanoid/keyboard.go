// File: internal/humanoid/keyboard.go
package humanoid

import (
	"context"
	"math/rand"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// KeyBackspace is the named key emitted to erase an injected wrong
// character. Executors translate it to their platform's backspace.
const KeyBackspace = "backspace"

// Typing hesitation: with a small probability a mid-sentence pause is
// inserted on top of the regular inter-key delay, modeling thinking.
const (
	hesitationProbability = 0.05
	hesitationMin         = 200 * time.Millisecond
	hesitationMax         = 800 * time.Millisecond
)

// Default inter-key window, used when TypeOptions leaves both bounds zero.
const (
	defaultKeyDelayMin = 50 * time.Millisecond
	defaultKeyDelayMax = 300 * time.Millisecond
)

// keyboardRows is the physical QWERTY row layout. An injected wrong key is
// always a same-row neighbor (±1 position), matching the most common slip.
// Read-only for the process lifetime.
var keyboardRows = []string{
	"`1234567890-=",
	"qwertyuiop[]\\",
	"asdfghjkl;'",
	"zxcvbnm,./",
}

// adjacentKey returns a random row-neighbor of r, or false when r does not
// appear on the layout (or sits at a row edge with its only neighbor out
// of range). A miss is recoverable: error injection is simply skipped for
// that character.
func adjacentKey(rng *rand.Rand, r rune) (rune, bool) {
	lower := unicode.ToLower(r)
	for _, row := range keyboardRows {
		runes := []rune(row)
		for i, k := range runes {
			if k != lower {
				continue
			}
			offset := 1
			if rng.Intn(2) == 0 {
				offset = -1
			}
			n := i + offset
			if n < 0 || n >= len(runes) {
				return 0, false
			}
			return runes[n], true
		}
	}
	return 0, false
}

// keyEmission is one planned keystroke: a key to press, flagged when it is
// the corrective backspace.
type keyEmission struct {
	Key       string
	Backspace bool
}

// planKeystroke decides the emission sequence for a single intended
// character. With probability errorProb a same-row neighbor is emitted
// first; then, independently, with probability correctionProb it is erased
// and the intended character follows. Otherwise the wrong character
// stands - real typists sometimes miss their own mistakes. Characters
// without an adjacency entry are emitted directly.
func planKeystroke(rng *rand.Rand, char rune, errorProb, correctionProb float64) []keyEmission {
	if rng.Float64() < errorProb {
		if wrong, ok := adjacentKey(rng, char); ok {
			emissions := []keyEmission{{Key: string(wrong)}}
			if rng.Float64() < correctionProb {
				emissions = append(emissions,
					keyEmission{Key: KeyBackspace, Backspace: true},
					keyEmission{Key: string(char)},
				)
			}
			return emissions
		}
	}
	return []keyEmission{{Key: string(char)}}
}

// TypeOptions configures a single TypeText call.
type TypeOptions struct {
	// MinDelay and MaxDelay bound the inter-key delay. Both zero selects
	// the default window.
	MinDelay time.Duration
	MaxDelay time.Duration
	// ErrorProb is the per-character probability of emitting an adjacent
	// wrong key first.
	ErrorProb float64
	// CorrectionProb is the probability that an injected wrong key is
	// erased and retyped.
	CorrectionProb float64
}

// TypeText types text character by character through the error-injection
// model. Input order is preserved exactly, modulo injected wrong keys and
// their backspaces. Every emitted key is followed by a bell-shaped
// inter-key delay, occasionally stretched by a hesitation pause.
func (s *Simulator) TypeText(ctx context.Context, text string, opts TypeOptions) error {
	min, max := opts.MinDelay, opts.MaxDelay
	if min == 0 && max == 0 {
		min, max = defaultKeyDelayMin, defaultKeyDelayMax
	}
	if min <= 0 || max <= min {
		return &ConfigurationError{Field: "key_delay", Reason: "min must be strictly positive and below max"}
	}
	if opts.ErrorProb < 0 || opts.ErrorProb > 1 {
		return &ConfigurationError{Field: "error_probability", Reason: "must be within [0,1]"}
	}
	if opts.CorrectionProb < 0 || opts.CorrectionProb > 1 {
		return &ConfigurationError{Field: "correction_probability", Reason: "must be within [0,1]"}
	}

	runes := []rune(text)
	for i, char := range runes {
		if err := ctx.Err(); err != nil {
			return err
		}

		emissions := planKeystroke(s.rng, char, opts.ErrorProb, opts.CorrectionProb)
		for j, em := range emissions {
			if err := s.executor.KeyPress(ctx, em.Key); err != nil {
				return wrapInjection("keyPress", err)
			}
			// No trailing delay after the very last emission of the text.
			last := i == len(runes)-1 && j == len(emissions)-1
			if last {
				break
			}
			if err := s.executor.Sleep(ctx, s.sample.between(min, max)); err != nil {
				return wrapInjection("sleep", err)
			}
			if s.sample.chance(hesitationProbability) {
				if err := s.executor.Sleep(ctx, s.sample.uniform(hesitationMin, hesitationMax)); err != nil {
					return wrapInjection("sleep", err)
				}
			}
		}
	}

	s.completeAction()
	s.logger.Debug("Text typed", zap.Int("characters", len(runes)))
	return nil
}
