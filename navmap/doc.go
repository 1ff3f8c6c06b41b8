// Package navmap precomputes shortest-path information over the oriented
// poses of a roadmap, so that individual plans are reconstructed in O(V)
// without re-running the search.
//
// Two modes exist:
//
//   - Forward (Compute): classic single-source Dijkstra from a source
//     pose over outgoing connections. dist[x] is the best cost source→x;
//     last[x] is the final edge of that best path, enabling backward
//     reconstruction (PlanTo, PlanToNode) and intercept planning.
//   - Reverse (ComputeReverse): Dijkstra over the reversed graph from a
//     goal pose, using each pose's incoming edge list. Distances are
//     stored negated — dist[x] = −cost(x→goal), initialized to −∞ — and
//     last[x] holds the FIRST edge of the best path x→goal, enabling
//     forward reconstruction (PlanFrom) without touching the reversed
//     graph at query time. The relaxation rule is
//     dist[adj] < dist[cur] − edge.Length().
//
// Determinism: the priority queue breaks distance ties on (node id, pose
// index), so identical inputs always produce identical plans.
//
// Tables are sized exactly node_count × pose_count and reallocated on
// Reset, which is called implicitly before every computation.
//
// Errors (sentinel):
//
//   - ErrNotComputed   — query before any computation.
//   - ErrWrongDirection — forward query on a reverse map or vice versa.
//   - ErrNoPath        — the query pose is unreachable.
//
// Complexity: O((V·N + C) log(V·N)) per computation, where V·N is the
// oriented pose count and C the connection count.
package navmap
