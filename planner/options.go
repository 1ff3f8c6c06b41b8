package planner

import (
	"errors"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Sentinel errors for planner configuration and execution.
var (
	// ErrBadRobotSize indicates a non-positive robot size.
	ErrBadRobotSize = errors.New("planner: robot size must be positive")

	// ErrBadStep indicates a non-positive discretization step.
	ErrBadStep = errors.New("planner: discretization step must be positive")

	// ErrEmptyRoadmap indicates that no visibility vertices survived, so
	// there is nothing to plan over.
	ErrEmptyRoadmap = errors.New("planner: visibility graph is empty")

	// ErrNoGates indicates that no gates were supplied.
	ErrNoGates = errors.New("planner: at least one gate is required")

	// ErrUnreachableGate indicates a gate whose reverse navigation map
	// does not reach the evader's start pose.
	ErrUnreachableGate = errors.New("planner: gate unreachable from evader start")

	// ErrBadBorder indicates a border polygon that vanishes under the
	// collision inflation.
	ErrBadBorder = errors.New("planner: border collapses under inflation")
)

// Options configures the full planning pipeline.
//
// RobotSize          – wheelbase / collision diameter of the robots.
// CollisionOffset    – obstacle/border inflation; 0 derives RobotSize/2.
// VisibilityOffset   – outer inflation for visibility vertices;
//
//	0 derives CollisionOffset·1.3.
//
// VisibilityThreshold – minimum vertex spacing before merging;
//
//	0 derives RobotSize/2.
//
// PosesPerNode       – orientations per roadmap node.
// Kmax               – maximum curvature; 0 derives 1/RobotSize.
// KAttach            – k-nearest count for start/goal attachment.
// Step               – arc-length between samples; 0 derives π/(32·Kmax).
// Seed               – RNG seed for the game (0 = fixed default stream).
// RNG                – explicit RNG; overrides Seed when non-nil.
// Logger             – optional progress logger; nil stays silent.
type Options struct {
	RobotSize           float64
	CollisionOffset     float64
	VisibilityOffset    float64
	VisibilityThreshold float64
	PosesPerNode        int
	Kmax                float64
	KAttach             int
	Step                float64
	Seed                int64
	RNG                 *rand.Rand
	Logger              *zap.Logger
}

// Option represents a functional option for configuring the planner.
type Option func(*Options)

// DefaultOptions returns the configuration for a typical differential-
// drive robot of width ≈ 0.14 world units. Zero-valued derived fields are
// resolved against RobotSize when planning starts.
func DefaultOptions() Options {
	return Options{
		RobotSize:    0.14,
		PosesPerNode: 8,
		KAttach:      10,
	}
}

// resolve fills the derived fields and validates the result.
func (o *Options) resolve() error {
	if o.RobotSize <= 0 {
		return ErrBadRobotSize
	}
	if o.CollisionOffset == 0 {
		o.CollisionOffset = o.RobotSize * 0.5
	}
	if o.VisibilityOffset == 0 {
		o.VisibilityOffset = o.CollisionOffset * 1.3
	}
	if o.VisibilityThreshold == 0 {
		o.VisibilityThreshold = o.RobotSize * 0.5
	}
	if o.Kmax == 0 {
		o.Kmax = 1 / o.RobotSize
	}
	if o.Step == 0 {
		o.Step = math.Pi / 32 / o.Kmax
	}
	if o.Step <= 0 {
		return ErrBadStep
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return nil
}

// WithRobotSize sets the robot collision diameter. Must be positive;
// non-positive values panic (invalid configuration is a programming
// error, caught early).
func WithRobotSize(size float64) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadRobotSize.Error())
		}
		o.RobotSize = size
	}
}

// WithCollisionOffset overrides the obstacle/border inflation offset.
func WithCollisionOffset(offset float64) Option {
	return func(o *Options) { o.CollisionOffset = offset }
}

// WithVisibilityOffset overrides the inflation used for visibility
// vertices.
func WithVisibilityOffset(offset float64) Option {
	return func(o *Options) { o.VisibilityOffset = offset }
}

// WithVisibilityThreshold overrides the vertex merging distance.
func WithVisibilityThreshold(threshold float64) Option {
	return func(o *Options) { o.VisibilityThreshold = threshold }
}

// WithPosesPerNode sets the number of orientations per roadmap node.
func WithPosesPerNode(n int) Option {
	return func(o *Options) { o.PosesPerNode = n }
}

// WithKmax overrides the maximum curvature of the Dubins planner.
func WithKmax(kmax float64) Option {
	return func(o *Options) { o.Kmax = kmax }
}

// WithKAttach sets the k-nearest count used when attaching start and goal
// poses.
func WithKAttach(k int) Option {
	return func(o *Options) { o.KAttach = k }
}

// WithStep overrides the arc-length between discretized samples.
func WithStep(step float64) Option {
	return func(o *Options) {
		if step <= 0 {
			panic(ErrBadStep.Error())
		}
		o.Step = step
	}
}

// WithSeed seeds the game's goal-selection RNG; 0 selects the fixed
// default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRNG injects an explicit RNG for the game, overriding WithSeed.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.RNG = rng }
}

// WithLogger attaches a logger for per-phase progress reporting.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
