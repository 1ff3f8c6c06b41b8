// Package dubnav plans feasible, curvature-constrained trajectories for two
// differential-drive robots playing a pursuer–evader game inside a bounded
// 2D arena with polygonal obstacles and border gates.
//
// 🚀 What is dubnav?
//
//	A planning library built from four tightly coupled layers:
//
//	  • Dubins primitives: closed-form shortest curvature-bounded paths
//	    between oriented poses, with polygon collision filtering
//	  • Roadmap: a visibility graph over inflated obstacles, layered with
//	    discrete orientations per node and precomputed Dubins edges
//	  • NavMap: forward and reverse Dijkstra precomputation over oriented
//	    poses, with multi-goal and intercept queries
//	  • Game engine: a synchronous evader/pursuer turn loop producing two
//	    discretized, collision-truncated pose sequences
//
// Everything is organized under flat subpackages:
//
//	geom/       — points, segments, polygons, poses, collision predicates
//	dubins/     — the six-family Dubins solver and arc discretization
//	roadmap/    — the layered roadmap arena with stable integer handles
//	visibility/ — vertex selection and mutual-visibility edge generation
//	navmap/     — shortest-path precomputation and intercept planning
//	game/       — the pursuer–evader loop with injectable randomness
//	planner/    — the one-call entry point tying all of the above together
//
// Quick ASCII picture of the data flow:
//
//	polygons ──▶ visibility ──▶ roadmap ──▶ navmaps ──▶ game ──▶ paths
//
// Start with planner.Plan for the end-to-end pipeline, or use the
// subpackages directly for finer control.
package dubnav
