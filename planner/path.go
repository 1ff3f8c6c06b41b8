package planner

import (
	"math"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/roadmap"
)

// DiscretizePath samples a navigation list every step units of arc
// length, carrying the sampling offset across edges so the whole list
// shares one uniform grid. Wait edges emit the stationary pose repeatedly
// until their duration is consumed (a trailing wait edge adds nothing).
//
// Complexity: O(samples).
func DiscretizePath(rm *roadmap.RoadMap, list []roadmap.Connection, step float64) []dubins.PathSample {
	var path []dubins.PathSample
	offset := 0.0
	for i, conn := range list {
		if conn.Kind == roadmap.ConnWait {
			if i == len(list)-1 {
				break
			}
			last := offset - step
			if len(path) > 0 {
				last = path[len(path)-1].S
			}
			node := rm.Node(conn.To.Node)
			sample := dubins.PathSample{
				S:     last + step,
				X:     node.X(),
				Y:     node.Y(),
				Theta: rm.Pose(conn.To).Theta(),
			}
			// Sample the dwell like an arc of the same length: same grid,
			// same offset carry.
			n := int(math.Floor((conn.Length()-offset)/step)) + 1
			for j := 0; j < n; j++ {
				path = append(path, sample)
				sample.S += step
			}
			offset = step*float64(n) + offset - conn.Length()
			continue
		}

		path, offset = dubins.DiscretizeCurve(conn.Path, step, offset, path)
	}

	return path
}

// TruncatePaths cuts both sampled paths at the first index where the two
// robots come closer than robotSize, padding the shorter path with its
// final sample for the comparison. Paths that never meet are returned
// unchanged.
//
// Complexity: O(max(len(a), len(b))).
func TruncatePaths(a, b []dubins.PathSample, robotSize float64) ([]dubins.PathSample, []dubins.PathSample) {
	if len(a) == 0 || len(b) == 0 {
		return a, b
	}

	maxCount := len(a)
	if len(b) > maxCount {
		maxCount = len(b)
	}
	for i := 0; i < maxCount; i++ {
		ia, ib := i, i
		if ia >= len(a) {
			ia = len(a) - 1
		}
		if ib >= len(b) {
			ib = len(b) - 1
		}
		if math.Hypot(a[ia].X-b[ib].X, a[ia].Y-b[ib].Y) < robotSize {
			// A path that already ended keeps its full extent.
			if i < len(a) {
				a = a[:i]
			}
			if i < len(b) {
				b = b[:i]
			}

			return a, b
		}
	}

	return a, b
}
