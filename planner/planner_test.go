// Package planner_test exercises the full pipeline end to end on a unit
// arena, plus the path post-processing helpers in isolation.
package planner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/geom"
	"github.com/katalvlaran/dubnav/navmap"
	"github.com/katalvlaran/dubnav/planner"
	"github.com/katalvlaran/dubnav/roadmap"
	"github.com/katalvlaran/dubnav/visibility"
)

func border() geom.Polygon {
	return geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func centerObstacle() geom.Polygon {
	return geom.Polygon{{X: 0.45, Y: 0.45}, {X: 0.45, Y: 0.55}, {X: 0.55, Y: 0.55}, {X: 0.55, Y: 0.45}}
}

// bottomGate sits on the lower border wall.
func bottomGate() geom.Polygon {
	return geom.Polygon{{X: 0.45, Y: 0}, {X: 0.45, Y: 0.04}, {X: 0.55, Y: 0.04}, {X: 0.55, Y: 0}}
}

// ------------------------------------------------------------------------
// 1. End-to-end
// ------------------------------------------------------------------------

func TestPlan_UnitArena(t *testing.T) {
	starts := [2]geom.Pose2D{
		{X: 0.8, Y: 0.8, Theta: math.Pi},       // evader
		{X: 0.15, Y: 0.85, Theta: -math.Pi / 2}, // pursuer
	}

	paths, err := planner.Plan(border(), []geom.Polygon{centerObstacle()},
		[]geom.Polygon{bottomGate()}, starts,
		planner.WithSeed(3))
	require.NoError(t, err)
	require.NotEmpty(t, paths[0], "evader path")

	for r := 0; r < 2; r++ {
		for i, p := range paths[r] {
			// Samples stay within the arena (gate poses touch the wall).
			assert.GreaterOrEqual(t, p.X, -0.05, "robot %d sample %d", r, i)
			assert.LessOrEqual(t, p.X, 1.05)
			assert.GreaterOrEqual(t, p.Y, -0.05)
			assert.LessOrEqual(t, p.Y, 1.05)
			if i > 0 {
				assert.Greater(t, p.S, paths[r][i-1].S, "cumulative length must increase")
			}
		}
	}
}

func TestPlan_DeterministicUnderSeed(t *testing.T) {
	starts := [2]geom.Pose2D{
		{X: 0.8, Y: 0.8, Theta: math.Pi},
		{X: 0.15, Y: 0.85, Theta: -math.Pi / 2},
	}
	run := func() planner.Paths {
		paths, err := planner.Plan(border(), []geom.Polygon{centerObstacle()},
			[]geom.Polygon{bottomGate()}, starts, planner.WithSeed(11))
		require.NoError(t, err)
		return paths
	}
	assert.Equal(t, run(), run())
}

func TestPlan_FailsWithoutGates(t *testing.T) {
	starts := [2]geom.Pose2D{{X: 0.8, Y: 0.8}, {X: 0.2, Y: 0.2}}
	_, err := planner.Plan(border(), nil, nil, starts)
	assert.ErrorIs(t, err, planner.ErrNoGates)
}

// A start pose buried inside an obstacle cannot be attached: the planner
// must fail instead of returning partial paths.
func TestPlan_UnreachableStart(t *testing.T) {
	trap := geom.Polygon{{X: 0.7, Y: 0.7}, {X: 0.7, Y: 0.9}, {X: 0.9, Y: 0.9}, {X: 0.9, Y: 0.7}}
	starts := [2]geom.Pose2D{
		{X: 0.8, Y: 0.8, Theta: 0}, // inside the trap
		{X: 0.2, Y: 0.2, Theta: 0},
	}
	_, err := planner.Plan(border(), []geom.Polygon{trap}, []geom.Polygon{bottomGate()}, starts)
	require.Error(t, err)
	assert.ErrorIs(t, err, roadmap.ErrStartUnreachable)
}

func TestPlan_BadRobotSize(t *testing.T) {
	starts := [2]geom.Pose2D{{X: 0.8, Y: 0.8}, {X: 0.2, Y: 0.2}}
	assert.Panics(t, func() {
		_, _ = planner.Plan(border(), nil, []geom.Polygon{bottomGate()}, starts,
			planner.WithRobotSize(-1))
	})
}

// A tighter integration pass below the game layer: two obstacles in the
// unit arena, a single source/goal query through the visibility graph,
// the roadmap and a forward navigation map.
func TestPlanTo_TwoObstacleArena(t *testing.T) {
	obstacles := []geom.Polygon{
		{{X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.6}, {X: 0.6, Y: 0.6}, {X: 0.6, Y: 0.5}},
		{{X: 0.20, Y: 0.15}, {X: 0.10, Y: 0.25}, {X: 0.20, Y: 0.35}, {X: 0.30, Y: 0.25}},
	}
	const offset = 0.05
	const kmax = 50.0

	infObstacles := geom.Inflate(obstacles, offset, true)
	infBorder := geom.Inflate([]geom.Polygon{border()}, -offset, false)[0]

	vertices := visibility.MakeVertices(obstacles, border(), offset*1.3, offset)
	rm := roadmap.New()
	visibility.Build(rm, vertices, infObstacles, infBorder)
	require.Positive(t, rm.NodeCount())

	connections, err := rm.Build(8, kmax, infObstacles, infBorder)
	require.NoError(t, err)
	require.Positive(t, connections)

	source, err := rm.AddStartPose(geom.Point{X: 0.5, Y: 0.9}, 0, 10, kmax, infObstacles, infBorder)
	require.NoError(t, err)
	goal, err := rm.AddGoalPose(geom.Point{X: 0.1, Y: 0.15}, 0, 10, kmax, infObstacles, infBorder)
	require.NoError(t, err)

	nm := navmap.New(rm)
	nm.Compute(source)
	plan, err := nm.PlanTo(goal)
	require.NoError(t, err)
	require.NotEmpty(t, plan)

	total := 0.0
	for _, edge := range plan {
		total += edge.Length()
	}
	straight := math.Hypot(0.5-0.1, 0.9-0.15)
	assert.GreaterOrEqual(t, total, straight, "path length below the euclidean bound")
}

// ------------------------------------------------------------------------
// 2. Discretization of mixed lists
// ------------------------------------------------------------------------

// A wait edge in the middle of a list emits the stationary pose until the
// dwell is consumed, and the grid picks up afterwards.
func TestDiscretizePath_WaitEdge(t *testing.T) {
	rm := roadmap.New()
	a := rm.AddNode(geom.Point{X: 0, Y: 0})
	b := rm.AddNode(geom.Point{X: 1, Y: 0})
	c := rm.AddNode(geom.Point{X: 2, Y: 0})
	rm.Connect(a, b)
	rm.Connect(b, c)
	_, err := rm.Build(4, 10, nil, nil)
	require.NoError(t, err)

	// Find the θ=0 → θ=0 connections a→b and b→c.
	findConn := func(from roadmap.PoseID, toNode roadmap.NodeID) roadmap.Connection {
		pose := rm.Pose(from)
		for i := 0; i < pose.ConnCount(); i++ {
			if conn := pose.Conn(i); conn.To.Node == toNode && conn.To.Pose == 0 {
				return *conn
			}
		}
		t.Fatalf("no connection from %v to node %d", from, toNode)
		return roadmap.Connection{}
	}
	ab := findConn(roadmap.PoseID{Node: a, Pose: 0}, b)
	bc := findConn(roadmap.PoseID{Node: b, Pose: 0}, c)

	list := []roadmap.Connection{
		ab,
		roadmap.WaitConnection(ab.To, 0.5),
		bc,
	}

	// 0.15 avoids the node spacing being an exact step multiple, which
	// would make the carry remainder degenerate.
	const step = 0.15
	samples := planner.DiscretizePath(rm, list, step)
	require.NotEmpty(t, samples)

	// Monotone cumulative length throughout, and a stationary run at the
	// wait node.
	stationary := 0
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].S, samples[i-1].S)
		if samples[i].X == samples[i-1].X && samples[i].Y == samples[i-1].Y {
			stationary++
		}
	}
	assert.GreaterOrEqual(t, stationary, 2, "the 0.5 dwell spans several steps")
}

// A trailing wait edge is dropped entirely.
func TestDiscretizePath_TrailingWait(t *testing.T) {
	rm := roadmap.New()
	a := rm.AddNode(geom.Point{X: 0, Y: 0})
	b := rm.AddNode(geom.Point{X: 1, Y: 0})
	rm.Connect(a, b)
	_, err := rm.Build(4, 10, nil, nil)
	require.NoError(t, err)

	pose := roadmap.PoseID{Node: a, Pose: 0}
	var ab roadmap.Connection
	for i := 0; i < rm.Pose(pose).ConnCount(); i++ {
		if conn := rm.Pose(pose).Conn(i); conn.To.Pose == 0 {
			ab = *conn
		}
	}

	withWait := planner.DiscretizePath(rm,
		[]roadmap.Connection{ab, roadmap.WaitConnection(ab.To, 3)}, 0.1)
	without := planner.DiscretizePath(rm, []roadmap.Connection{ab}, 0.1)
	assert.Equal(t, without, withWait)
}

// ------------------------------------------------------------------------
// 3. Truncation
// ------------------------------------------------------------------------

func TestTruncatePaths_CutsAtFirstContact(t *testing.T) {
	mk := func(xs ...float64) []dubins.PathSample {
		out := make([]dubins.PathSample, len(xs))
		for i, x := range xs {
			out[i] = dubins.PathSample{S: float64(i), X: x}
		}
		return out
	}

	// Robots approach head-on along the x-axis.
	a := mk(0, 1, 2, 3, 4)
	b := mk(6, 5, 4, 3, 2)

	ta, tb := planner.TruncatePaths(a, b, 0.5)
	// First contact at index 3 (both at x=3).
	assert.Len(t, ta, 3)
	assert.Len(t, tb, 3)

	// Retained prefixes stay separated.
	for i := range ta {
		assert.GreaterOrEqual(t, math.Abs(ta[i].X-tb[i].X), 0.5)
	}
}

func TestTruncatePaths_PadsShorterPath(t *testing.T) {
	a := []dubins.PathSample{{X: 0}, {X: 1}}
	b := []dubins.PathSample{{X: 5}, {X: 4}, {X: 3}, {X: 2}, {X: 1.2}}

	ta, tb := planner.TruncatePaths(a, b, 0.5)
	// The evader stops at x=1; the pursuer closes in and meets the final
	// sample at index 4 (|1.2−1| < 0.5).
	assert.Len(t, ta, 2, "already ended before contact")
	assert.Len(t, tb, 4)
}

func TestTruncatePaths_NoContact(t *testing.T) {
	a := []dubins.PathSample{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := []dubins.PathSample{{X: 0, Y: 5}, {X: 1, Y: 5}}
	ta, tb := planner.TruncatePaths(a, b, 0.5)
	assert.Len(t, ta, 2)
	assert.Len(t, tb, 2)
}
