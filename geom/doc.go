// Package geom provides the 2D geometry kernel shared by every planning
// layer: points, segments, polygons, oriented poses, angle normalization,
// and the collision predicates used to validate Dubins arcs against the
// arena.
//
// Conventions:
//
//   - Angles are measured counter-clockwise from the positive x-axis and
//     stored normalized to [0, 2π). NormAngle produces (−π, π] when a
//     signed delta is needed.
//   - Obstacle polygons are wound clockwise, so their interior lies to the
//     right of every directed edge; the arena border is wound
//     counter-clockwise, so its interior lies to the left.
//   - Touching counts as a collision. Parallel segment pairs, including
//     overlapping collinear ones, report no intersection.
//
// All functions in this package are pure and never fail; an empty polygon
// degrades to "no collision" rather than panicking.
package geom
