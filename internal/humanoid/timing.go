// File: internal/humanoid/timing.go
package humanoid

import (
	"math/rand"
	"time"
)

// sampler draws delays and small integers from the Simulator's seeded
// random source. All bell-shaped draws use a clamped normal distribution:
// uniform delay timing is a well-known bot signal, so bounded windows are
// sampled with mean (min+max)/2 and stddev (max-min)/6, which keeps about
// 99.7% of unclamped draws inside the window before clamping.
type sampler struct {
	rng *rand.Rand
}

// between returns a clamped-normal draw from [min, max]. Windows are
// validated at construction, so min < max holds for every caller.
func (s sampler) between(min, max time.Duration) time.Duration {
	mean := float64(min+max) / 2
	stdDev := float64(max-min) / 6
	d := time.Duration(s.rng.NormFloat64()*stdDev + mean)
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

// uniform returns a uniform draw from [min, max]. Used only where flat
// randomness is the modeled behavior (traversal speed, idle budget).
func (s sampler) uniform(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.rng.Int63n(int64(max-min)))
}

// scale multiplies d by a uniform factor in [lo, hi]. Pacing applies
// ±20% so consecutive path segment times are never constant.
func (s sampler) scale(d time.Duration, lo, hi float64) time.Duration {
	f := lo + s.rng.Float64()*(hi-lo)
	return time.Duration(float64(d) * f)
}

// chance reports true with probability p.
func (s sampler) chance(p float64) bool {
	return s.rng.Float64() < p
}

// intBetween returns a uniform integer in [min, max] inclusive.
func (s sampler) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
