// Package planner is the one-call entry point of dubnav: it turns the raw
// arena description — border, obstacles, gates, two start poses — into a
// pair of discretized, collision-truncated robot trajectories.
//
// Pipeline (all stages delegated to the subpackages):
//
//  1. Inflate obstacles outward and the border inward by the collision
//     offset (Minkowski-style convex offset).
//  2. Select visibility vertices from the outlines inflated by the larger
//     visibility offset, and build the mutual-visibility base graph.
//  3. Build the roadmap: orientations per node plus all collision-free
//     Dubins connections.
//  4. Attach the evader and pursuer start poses, and one goal pose per
//     gate (centroid + outward normal).
//  5. Precompute one reverse navigation map per gate for the evader.
//  6. Run the pursuer–evader game.
//  7. Discretize both navigation lists on a shared arc-length grid and
//     truncate them at the first sample pair closer than the robot size.
//
// Every tunable constant of the pipeline is a functional option with a
// default chosen for a differential-drive robot of width ≈ 0.14 world
// units; the curvature bound, sampling step and inflation offsets derive
// from the robot size unless overridden explicitly.
//
// The planner performs no I/O. Progress reporting is available by
// injecting a *zap.Logger (WithLogger); by default the planner is silent.
// Randomness is injectable the same way (WithRNG / WithSeed) so runs are
// reproducible.
//
// Plan returns a non-nil error whenever any stage fails — start pose not
// attachable, a gate unreachable, empty roadmap — and the output paths
// must then be ignored.
package planner
