// File: internal/humanoid/path.go
package humanoid

import (
	"math"
	"math/rand"

	"github.com/xkilldash9x/ghosthand/api/schemas"
)

const (
	// curveProbability is the share of movements that take a Bezier curve
	// instead of an eased straight line. The split itself varies behavior
	// across invocations so the path shape is not a stable fingerprint.
	curveProbability = 0.7
	// curvePointCount is the number of samples taken along a Bezier curve.
	curvePointCount = 50
	// controlOffsetBound bounds the random perturbation (px, per axis)
	// applied to each Bezier control point.
	controlOffsetBound = 50
	// moveTolerance is the pixel distance under which no movement is
	// synthesized at all.
	moveTolerance = 2
)

// synthesizePath builds an ordered pointer path from start to end. The
// result is never empty: targets within moveTolerance in both axes yield a
// single-point path at start, curved paths carry exactly curvePointCount
// jittered points, and eased-linear paths carry max(5, distance/10)
// points ending exactly at end.
func synthesizePath(rng *rand.Rand, start, end schemas.Point, motion MotionProfile) []schemas.Point {
	if abs(end.X-start.X) < moveTolerance && abs(end.Y-start.Y) < moveTolerance {
		return []schemas.Point{start}
	}
	if rng.Float64() < curveProbability {
		path := bezierPath(rng, start, end)
		return jitterPath(rng, path, motion.JitterFactor)
	}
	return easedLinearPath(start, end)
}

// bezierPath samples a Bezier curve between start and end whose 2-4
// control points sit along the straight line, each displaced by a bounded
// random offset. Evaluation uses de Casteljau's repeated linear
// interpolation, which is numerically stable for arbitrary degree.
func bezierPath(rng *rand.Rand, start, end schemas.Point) []schemas.Point {
	controlCount := 2 + rng.Intn(3)

	points := make([][2]float64, 0, controlCount+2)
	points = append(points, [2]float64{float64(start.X), float64(start.Y)})
	for i := 1; i <= controlCount; i++ {
		t := float64(i) / float64(controlCount+1)
		offX := float64(rng.Intn(2*controlOffsetBound+1) - controlOffsetBound)
		offY := float64(rng.Intn(2*controlOffsetBound+1) - controlOffsetBound)
		points = append(points, [2]float64{
			float64(start.X) + float64(end.X-start.X)*t + offX,
			float64(start.Y) + float64(end.Y-start.Y)*t + offY,
		})
	}
	points = append(points, [2]float64{float64(end.X), float64(end.Y)})

	path := make([]schemas.Point, curvePointCount)
	scratch := make([][2]float64, len(points))
	for i := 0; i < curvePointCount; i++ {
		t := float64(i) / float64(curvePointCount-1)
		copy(scratch, points)
		for n := len(scratch); n > 1; n-- {
			for j := 0; j < n-1; j++ {
				scratch[j][0] = (1-t)*scratch[j][0] + t*scratch[j+1][0]
				scratch[j][1] = (1-t)*scratch[j][1] + t*scratch[j+1][1]
			}
		}
		path[i] = schemas.Point{X: int(math.Round(scratch[0][0])), Y: int(math.Round(scratch[0][1]))}
	}
	return path
}

// jitterPath perturbs every point by an independent bounded offset,
// modeling hand tremor. It is applied after curve evaluation, not before:
// the tremor rides on top of the intended trajectory.
func jitterPath(rng *rand.Rand, path []schemas.Point, jitterFactor float64) []schemas.Point {
	bound := int(jitterFactor * 10)
	if bound <= 0 {
		return path
	}
	jittered := make([]schemas.Point, len(path))
	for i, p := range path {
		jittered[i] = schemas.Point{
			X: p.X + rng.Intn(2*bound+1) - bound,
			Y: p.Y + rng.Intn(2*bound+1) - bound,
		}
	}
	return jittered
}

// easedLinearPath builds a straight path whose parameter follows the
// smoothstep ease t*t*(3-2t): slow at both ends, fastest through the
// middle, avoiding the constant-velocity signature of scripted movement.
// No jitter is applied; the final point equals end exactly.
func easedLinearPath(start, end schemas.Point) []schemas.Point {
	dist := math.Hypot(float64(end.X-start.X), float64(end.Y-start.Y))
	count := int(dist / 10)
	if count < 5 {
		count = 5
	}

	path := make([]schemas.Point, count)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count-1)
		eased := t * t * (3 - 2*t)
		path[i] = schemas.Point{
			X: start.X + int(math.Round(float64(end.X-start.X)*eased)),
			Y: start.Y + int(math.Round(float64(end.Y-start.Y)*eased)),
		}
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
