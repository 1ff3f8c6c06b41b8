// Package dubins_test validates the Dubins solver: the canonical
// straight-shot and U-turn configurations, the round-trip between the
// closed forms and the propagation formula, collision rejection, and the
// sampling-grid contract of the discretizer.
package dubins_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/geom"
)

// ------------------------------------------------------------------------
// 1. Canonical configurations
// ------------------------------------------------------------------------

// Straight shot: colinear poses give a degenerate curve of length 10
// whose middle segment does all the work.
func TestShortestPath_StraightShot(t *testing.T) {
	start := geom.Pose2D{X: 0, Y: 0, Theta: 0}
	end := geom.Pose2D{X: 10, Y: 0, Theta: 0}

	curve, err := dubins.ShortestPath(start, end, 1, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, curve.L, 1e-4)
	assert.InDelta(t, end.X, curve.Arc3.End.X, 1e-4)
	assert.InDelta(t, end.Y, curve.Arc3.End.Y, 1e-4)
}

// U-turn in place: coincident positions force one of the three-arc
// families (here RLR/LRL at 7π/3), and the curve must close back onto
// the start position with the flipped heading.
func TestShortestPath_UTurn(t *testing.T) {
	start := geom.Pose2D{X: 0, Y: 0, Theta: 0}
	end := geom.Pose2D{X: 0, Y: 0, Theta: math.Pi}

	curve, err := dubins.ShortestPath(start, end, 1, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 7*math.Pi/3, curve.L, 1e-4)
	assert.NotZero(t, curve.Arc2.K, "middle arc must turn in a three-arc family")
	assert.InDelta(t, 0.0, curve.Arc3.End.X, 1e-4)
	assert.InDelta(t, 0.0, curve.Arc3.End.Y, 1e-4)
	assert.InDelta(t, math.Pi, curve.Arc3.End.Theta, 1e-4)
}

// ------------------------------------------------------------------------
// 2. Properties over random configurations (fixed seed)
// ------------------------------------------------------------------------

// Propagating each arc must reproduce the recorded end poses within the
// numerical tolerance, and the arcs must chain head to tail.
func TestShortestPath_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		start := geom.Pose2D{X: rng.Float64() * 4, Y: rng.Float64() * 4, Theta: rng.Float64() * 2 * math.Pi}
		end := geom.Pose2D{X: rng.Float64() * 4, Y: rng.Float64() * 4, Theta: rng.Float64() * 2 * math.Pi}
		kmax := 0.5 + rng.Float64()*4

		curve, err := dubins.ShortestPath(start, end, kmax, nil, nil)
		if err != nil {
			continue // no feasible family for this configuration
		}

		for _, arc := range []dubins.Arc{curve.Arc1, curve.Arc2, curve.Arc3} {
			prop := dubins.PoseOnArc(arc.S, arc.Start, arc.K)
			assert.InDelta(t, arc.End.X, prop.X, 1e-4)
			assert.InDelta(t, arc.End.Y, prop.Y, 1e-4)
			assert.InDelta(t, 0.0, geom.NormAngle(arc.End.Theta-prop.Theta), 1e-5)
		}
		assert.Equal(t, curve.Arc1.End, curve.Arc2.Start)
		assert.Equal(t, curve.Arc2.End, curve.Arc3.Start)
		assert.InDelta(t, curve.Arc1.S+curve.Arc2.S+curve.Arc3.S, curve.L, 1e-9)

		// The curve must actually land on the requested end pose.
		assert.InDelta(t, end.X, curve.Arc3.End.X, 1e-3)
		assert.InDelta(t, end.Y, curve.Arc3.End.Y, 1e-3)
		assert.InDelta(t, 0.0, geom.NormAngle(end.Theta-curve.Arc3.End.Theta), 1e-3)
	}
}

// Without obstacles a re-solve of the same configuration must return the
// same length (determinism), and no curve is shorter than the
// straight-line distance.
func TestShortestPath_LengthBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 200; i++ {
		start := geom.Pose2D{X: rng.Float64() * 4, Y: rng.Float64() * 4, Theta: rng.Float64() * 2 * math.Pi}
		end := geom.Pose2D{X: rng.Float64() * 4, Y: rng.Float64() * 4, Theta: rng.Float64() * 2 * math.Pi}
		kmax := 0.5 + rng.Float64()*4

		curve, err := dubins.ShortestPath(start, end, kmax, nil, nil)
		if err != nil {
			continue
		}
		again, err := dubins.ShortestPath(start, end, kmax, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, curve.L, again.L)

		straight := math.Hypot(end.X-start.X, end.Y-start.Y)
		assert.GreaterOrEqual(t, curve.L+1e-9, straight)
	}
}

// ------------------------------------------------------------------------
// 3. Collision filtering
// ------------------------------------------------------------------------

func TestShortestPath_CollisionRejection(t *testing.T) {
	start := geom.Pose2D{X: 0, Y: 0, Theta: 0}
	end := geom.Pose2D{X: 10, Y: 0, Theta: 0}
	// A wall straddling the straight line between the poses.
	wall := geom.Polygon{{X: 5, Y: -1}, {X: 5, Y: 1}, {X: 5.5, Y: 1}, {X: 5.5, Y: -1}}

	curve, err := dubins.ShortestPath(start, end, 1, []geom.Polygon{wall}, nil)
	if err == nil {
		// Whatever survived must not cross the wall.
		assert.False(t, curve.IntersectsPolygon(wall))
		assert.Greater(t, curve.L, 10.0, "detour must be longer than the straight shot")
	}
}

func TestShortestPath_BorderContainment(t *testing.T) {
	border := geom.Polygon{{X: -1, Y: -3}, {X: 11, Y: -3}, {X: 11, Y: 3}, {X: -1, Y: 3}}
	start := geom.Pose2D{X: 0, Y: 0, Theta: 0}
	end := geom.Pose2D{X: 10, Y: 0, Theta: 0}

	curve, err := dubins.ShortestPath(start, end, 1, nil, border)
	require.NoError(t, err)
	assert.False(t, curve.IntersectsPolygon(border))

	// Shrinking the border below the turning radius of a U-turn kills
	// every candidate.
	tight := geom.Polygon{{X: -0.1, Y: -0.1}, {X: 0.4, Y: -0.1}, {X: 0.4, Y: 0.1}, {X: -0.1, Y: 0.1}}
	_, err = dubins.ShortestPath(start, geom.Pose2D{X: 0.3, Y: 0, Theta: math.Pi}, 1, nil, tight)
	assert.ErrorIs(t, err, dubins.ErrNoPath)
}

// ------------------------------------------------------------------------
// 4. Discretization
// ------------------------------------------------------------------------

// Samples must advance by exactly the step in cumulative arc length,
// regardless of the arc boundaries underneath.
func TestDiscretizeCurve_UniformGrid(t *testing.T) {
	start := geom.Pose2D{X: 0, Y: 0, Theta: 0}
	end := geom.Pose2D{X: 3, Y: 1, Theta: math.Pi / 2}
	curve, err := dubins.ShortestPath(start, end, 2, nil, nil)
	require.NoError(t, err)

	const step = 0.05
	path, offset := dubins.DiscretizeCurve(curve, step, 0, nil)
	require.NotEmpty(t, path)

	for i := 1; i < len(path); i++ {
		assert.InDelta(t, step, path[i].S-path[i-1].S, 1e-6,
			"sample %d breaks the grid", i)
	}
	assert.GreaterOrEqual(t, offset, 0.0)
	assert.Less(t, offset, step+1e-9)

	// The first sample lies within one step of the start pose.
	first := path[0]
	assert.InDelta(t, start.X, first.X, step+1e-6)
	assert.InDelta(t, start.Y, first.Y, step+1e-6)
}

// The offset carry makes two consecutive curves share one sampling grid.
func TestDiscretizeCurve_OffsetCarry(t *testing.T) {
	p0 := geom.Pose2D{X: 0, Y: 0, Theta: 0}
	p1 := geom.Pose2D{X: 1.3, Y: 0, Theta: 0}
	p2 := geom.Pose2D{X: 2.9, Y: 0, Theta: 0}

	c1, err := dubins.ShortestPath(p0, p1, 1, nil, nil)
	require.NoError(t, err)
	c2, err := dubins.ShortestPath(p1, p2, 1, nil, nil)
	require.NoError(t, err)

	const step = 0.25
	path, offset := dubins.DiscretizeCurve(c1, step, 0, nil)
	path, _ = dubins.DiscretizeCurve(c2, step, offset, path)

	for i := 1; i < len(path); i++ {
		assert.InDelta(t, step, path[i].S-path[i-1].S, 1e-6,
			"grid breaks at the curve boundary (sample %d)", i)
	}
}

func TestDiscretizeArc_SkipsZeroLength(t *testing.T) {
	var path []dubins.PathSample
	path, offset := dubins.DiscretizeArc(dubins.Arc{}, 0.1, 0.03, path)
	assert.Empty(t, path)
	assert.Equal(t, 0.03, offset, "zero-length arcs leave the carry untouched")
}

// ------------------------------------------------------------------------
// 5. Family bookkeeping
// ------------------------------------------------------------------------

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "LSL", dubins.LSL.String())
	assert.Equal(t, "LRL", dubins.LRL.String())
	assert.Equal(t, "???", dubins.Family(99).String())
}
