package dubins

import "math"

// DiscretizeArc appends samples of the arc to path, one every step units
// of arc length, starting at the incoming offset within the arc.
//
// The cumulative S of each sample continues the grid of the previous
// samples in path, and the returned offset carries the remainder of the
// arc past its last sample, so feeding consecutive arcs through this
// function yields uniformly spaced samples across the whole concatenation.
// Zero-length arcs are skipped and leave the offset untouched.
//
// Complexity: O(samples).
func DiscretizeArc(arc Arc, step, offset float64, path []PathSample) ([]PathSample, float64) {
	if arc.S <= 0 {
		return path, offset
	}

	// On an empty path the first sample (at arc position offset) gets
	// S = offset, so S counts arc length from the path origin.
	sEnd := offset - step
	if len(path) > 0 {
		sEnd = path[len(path)-1].S
	}

	n := int(math.Floor((arc.S-offset)/step)) + 1
	if n < 0 {
		n = 0
	}
	for i := 0; i < n; i++ {
		s := offset + step*float64(i)
		cur := PoseOnArc(s, arc.Start, arc.K)
		path = append(path, PathSample{
			S:     sEnd + step - offset + s,
			X:     cur.X,
			Y:     cur.Y,
			Theta: cur.Theta,
			K:     arc.K,
		})
	}

	return path, step*float64(n) + offset - arc.S
}

// DiscretizeCurve applies DiscretizeArc to the three arcs of the curve in
// order, threading the offset carry through them.
func DiscretizeCurve(curve Curve, step, offset float64, path []PathSample) ([]PathSample, float64) {
	path, offset = DiscretizeArc(curve.Arc1, step, offset, path)
	path, offset = DiscretizeArc(curve.Arc2, step, offset, path)
	path, offset = DiscretizeArc(curve.Arc3, step, offset, path)

	return path, offset
}
