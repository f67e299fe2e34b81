// File: internal/humanoid/history.go
package humanoid

import (
	"math"
	"time"

	"github.com/xkilldash9x/ghosthand/api/schemas"
)

// historyCapacity bounds the action history buffer. Insertion beyond the
// capacity evicts the oldest entry (FIFO).
const historyCapacity = 100

// historyEntry records where a pointer action ended and when.
type historyEntry struct {
	Pos schemas.Point
	At  time.Time
}

// actionHistory is a fixed-capacity FIFO buffer of pointer positions,
// owned exclusively by its Simulator.
type actionHistory struct {
	entries []historyEntry
}

func (h *actionHistory) add(pos schemas.Point, at time.Time) {
	if len(h.entries) >= historyCapacity {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, historyEntry{Pos: pos, At: at})
}

func (h *actionHistory) len() int { return len(h.entries) }

// BehaviorPattern is a read-only snapshot of recent engine activity,
// computed on demand for diagnostic and analytics consumers.
type BehaviorPattern struct {
	// TotalActions counts every public action completed since construction.
	TotalActions int
	// HistoryLength is the number of entries currently buffered.
	HistoryLength int
	// AverageSpeed is the mean of (Euclidean distance / elapsed time),
	// in pixels per second, over consecutive history pairs.
	AverageSpeed float64
	// LastActionTime is when the most recent action finished.
	LastActionTime time.Time
}

// pattern derives the current snapshot. With fewer than two entries there
// is no speed to measure and the zero pattern is returned.
func (h *actionHistory) pattern(totalActions int, lastAction time.Time) BehaviorPattern {
	if len(h.entries) < 2 {
		return BehaviorPattern{}
	}

	var sum float64
	var samples int
	for i := 1; i < len(h.entries); i++ {
		prev, cur := h.entries[i-1], h.entries[i]
		elapsed := cur.At.Sub(prev.At).Seconds()
		if elapsed <= 0 {
			continue
		}
		dist := math.Hypot(float64(cur.Pos.X-prev.Pos.X), float64(cur.Pos.Y-prev.Pos.Y))
		sum += dist / elapsed
		samples++
	}

	var avg float64
	if samples > 0 {
		avg = sum / float64(samples)
	}
	return BehaviorPattern{
		TotalActions:   totalActions,
		HistoryLength:  len(h.entries),
		AverageSpeed:   avg,
		LastActionTime: lastAction,
	}
}
