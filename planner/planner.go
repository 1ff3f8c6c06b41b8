package planner

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/game"
	"github.com/katalvlaran/dubnav/geom"
	"github.com/katalvlaran/dubnav/navmap"
	"github.com/katalvlaran/dubnav/roadmap"
	"github.com/katalvlaran/dubnav/visibility"
)

// Paths is the planner output: one discretized pose sequence per robot,
// index 0 for the evader and 1 for the pursuer, truncated at the
// collision point when interception occurs.
type Paths [2][]dubins.PathSample

// Plan computes the full pursuer–evader run for the given arena.
//
// border is a convex polygon ordered counter-clockwise starting at the
// south-west corner; obstacles are convex clockwise polygons; gates are
// convex polygons lying on the border. starts[0] is the evader's initial
// pose, starts[1] the pursuer's.
//
// On any planning failure the returned error is non-nil and the paths
// must be ignored.
func Plan(border geom.Polygon, obstacles, gates []geom.Polygon, starts [2]geom.Pose2D, opts ...Option) (Paths, error) {
	var out Paths

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.resolve(); err != nil {
		return out, err
	}
	if len(gates) == 0 {
		return out, ErrNoGates
	}
	log := cfg.Logger

	// 1) Inflate obstacles and border by the collision offset.
	started := time.Now()
	infObstacles := geom.Inflate(obstacles, cfg.CollisionOffset, true)
	shrunk := geom.Inflate([]geom.Polygon{border}, -cfg.CollisionOffset, false)
	if len(shrunk) == 0 {
		return out, ErrBadBorder
	}
	infBorder := shrunk[len(shrunk)-1]

	// 2) Visibility vertices and base graph.
	vertices := visibility.MakeVertices(obstacles, border, cfg.VisibilityOffset, cfg.VisibilityThreshold)
	rm := roadmap.New()
	visibility.Build(rm, vertices, infObstacles, infBorder)
	if rm.NodeCount() == 0 {
		return out, ErrEmptyRoadmap
	}
	log.Info("visibility graph ready",
		zap.Int("vertices", len(vertices)),
		zap.Int("nodes", rm.NodeCount()))

	// 3) Materialize the oriented layer.
	connections, err := rm.Build(cfg.PosesPerNode, cfg.Kmax, infObstacles, infBorder)
	if err != nil {
		return out, err
	}
	log.Info("roadmap built",
		zap.Int("connections", connections),
		zap.Duration("elapsed", time.Since(started)))

	// 4) Attach start poses and one goal pose per gate.
	sourceE, err := rm.AddStartPose(starts[0].Point(), starts[0].Theta, cfg.KAttach, cfg.Kmax, infObstacles, infBorder)
	if err != nil {
		return out, fmt.Errorf("evader: %w", err)
	}
	sourceP, err := rm.AddStartPose(starts[1].Point(), starts[1].Theta, cfg.KAttach, cfg.Kmax, infObstacles, infBorder)
	if err != nil {
		return out, fmt.Errorf("pursuer: %w", err)
	}

	goals := make([]roadmap.PoseID, 0, len(gates))
	for i, gate := range gates {
		pose := geom.GatePose(gate, border)
		// The gate pose sits on the raw border on purpose: only the
		// obstacles constrain the final approach.
		goal, goalErr := rm.AddGoalPose(pose.Point(), pose.Theta, cfg.KAttach, cfg.Kmax, infObstacles, border)
		if goalErr != nil {
			return out, fmt.Errorf("gate %d: %w", i, goalErr)
		}
		goals = append(goals, goal)
	}

	// 5) One reverse navigation map per gate for the evader.
	evaderMaps := make([]*navmap.NavMap, 0, len(goals))
	for i, goal := range goals {
		nm := navmap.New(rm)
		nm.ComputeReverse(goal)
		if v, _ := nm.Value(sourceE); math.IsInf(v, -1) {
			return out, fmt.Errorf("gate %d: %w", i, ErrUnreachableGate)
		}
		evaderMaps = append(evaderMaps, nm)
	}
	log.Info("navigation maps ready", zap.Int("gates", len(goals)))

	// 6) Run the game.
	rng := cfg.RNG
	if rng == nil {
		rng = game.NewRNG(cfg.Seed)
	}
	result, err := game.Run(evaderMaps, navmap.New(rm), sourceE, sourceP, rng)
	if err != nil {
		return out, err
	}
	log.Info("game finished",
		zap.Int("evader_edges", len(result.Evader)),
		zap.Int("pursuer_edges", len(result.Pursuer)),
		zap.Bool("caught", result.Outcome == game.OutcomeCaught))

	// 7) Discretize on a shared grid and truncate at the collision point.
	pathE := DiscretizePath(rm, result.Evader, cfg.Step)
	pathP := DiscretizePath(rm, result.Pursuer, cfg.Step)
	out[0], out[1] = TruncatePaths(pathE, pathP, cfg.RobotSize)

	log.Info("paths ready",
		zap.Int("evader_samples", len(out[0])),
		zap.Int("pursuer_samples", len(out[1])),
		zap.Duration("total", time.Since(started)))

	return out, nil
}
