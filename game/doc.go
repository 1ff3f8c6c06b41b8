// Package game runs the adversarial pursuer–evader protocol over a built
// roadmap, producing one navigation list per robot.
//
// Protocol (synchronous, turn-based, arc-length counters s_e and s_p):
//
//  1. The evader moves until s_e > s_p. Each step it picks a uniformly
//     random gate and follows the first edge of its precomputed shortest
//     path to that gate. Reaching a gate sets s_e = +∞ (escape pending).
//  2. The pursuer looks at the evader's remaining best path to the
//     current gate, recomputes its forward navigation map in place and
//     plans an interception, then moves until s_p ≥ s_e. If its plan runs
//     dry before catching up it synthesizes a self-loop wait edge of
//     length s_e − s_p. If no interception is reachable at all, s_p is
//     set to +∞ and the evader completes its escape unopposed.
//  3. The game terminates as soon as the two latest edges end on the same
//     node, or the robots swapped nodes over their latest edges (catch),
//     when the evader's escape completes (escape), and the pursuer-stuck
//     case degenerates into an escape.
//
// Randomness is injectable: pass any *rand.Rand, or use NewRNG for the
// package's deterministic seeding policy (seed 0 selects a fixed default
// seed, so tests and replays are reproducible by construction).
//
// Errors (sentinel):
//
//   - ErrNoGates     — no evader navigation maps supplied.
//   - ErrBadMap      — an evader map is not reverse-computed.
//   - ErrEvaderStuck — the evader has no path to a chosen gate.
package game
