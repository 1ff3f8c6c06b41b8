// Package roadmap implements the layered navigation graph at the heart of
// the planner.
//
// The base layer is a directed positional graph: nodes with unique 2D
// positions and neighbor lists, typically produced by the visibility
// builder. Build materializes the upper layer: every node receives N
// evenly spaced orientations, and for every base edge (u, v) every pose
// pair (pose of u, pose of v) is connected by the shortest collision-free
// Dubins curve, when one exists.
//
// Ownership and handles:
//
//	A RoadMap exclusively owns its nodes, orientations and connections;
//	everything outside the arena refers to them through stable integer
//	handles — NodeID for positions, PoseID (node, pose index) for
//	orientations, ConnID (pose, connection index) for edges. Handles stay
//	valid for the lifetime of the RoadMap because all storage is
//	append-only after Build; adding start and goal poses is the one
//	permitted post-build extension.
//
// Edges are a tagged variant: ConnDubins edges carry a Dubins curve,
// ConnWait edges are synthetic self-loops used by the game engine to
// represent stationary dwell. Length is uniform over both kinds.
//
// Errors (sentinel):
//
//   - ErrBadOrientationCount — Build called with a non-positive count.
//   - ErrStartUnreachable    — no Dubins connection from a new start pose
//     to any orientation of its k nearest nodes.
//   - ErrGoalUnreachable     — no Dubins connection from the k nearest
//     nodes' orientations to a new goal pose.
//
// Complexity of Build: O(|E|·N²·n) where E is the base edge set, N the
// orientations per node, n the total polygon edge count.
package roadmap
