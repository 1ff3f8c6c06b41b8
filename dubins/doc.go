// Package dubins computes shortest curvature-bounded paths between
// oriented poses in the plane, following the classical Dubins result: the
// optimum is always a sequence of at most three arcs, each of constant
// signed curvature in {−kmax, 0, +kmax}, drawn from one of six families
// (LSL, RSR, LSR, RSL, RLR, LRL).
//
// The solver works in the standard form — start at (−1, 0), end at (1, 0),
// curvature scaled by the half-distance λ — evaluates the closed form of
// every family, scales each feasible candidate back to world space,
// discards candidates that collide with an obstacle or leave the arena
// border, and keeps the shortest survivor. A residual check on the
// boundary equations guards against numerical blow-ups near degenerate
// configurations.
//
// Overview of the API:
//
//   - ShortestPath: the collision-filtered solve; returns ErrNoPath when
//     no family yields a feasible, collision-free curve.
//   - PoseOnArc / Arc / Curve: pose propagation with the sinc-stabilized
//     closed form, exact for straight segments (k = 0).
//   - DiscretizeCurve / DiscretizeArc: uniform arc-length sampling with an
//     offset carry, so concatenated curves share one sampling grid.
//
// Complexity:
//
//   - ShortestPath: O(F·n) where F = 6 families and n = total polygon
//     edge count (collision filtering dominates).
//   - Discretization: O(samples).
//
// Errors (sentinel):
//
//   - ErrNoPath — no primitive is feasible, every feasible candidate
//     collides, or the residual check rejects the winner.
package dubins
