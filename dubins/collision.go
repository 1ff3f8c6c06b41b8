package dubins

import (
	"math"

	"github.com/katalvlaran/dubnav/geom"
)

// IntersectsPolygon reports whether the arc crosses any edge of poly.
// Straight arcs (K = 0) fall back to the segment test; curved arcs are
// mapped to their circle (radius 1/K, center left or right of the start
// pose) and tested edge by edge. Complexity: O(n).
func (a Arc) IntersectsPolygon(poly geom.Polygon) bool {
	if a.S <= 0 {
		return false
	}
	if a.K == 0 {
		seg := geom.Segment{P0: a.Start.Point(), P1: a.End.Point()}

		return geom.SegmentIntersectsPolygon(seg, poly)
	}

	rho := 1 / a.K
	center := geom.Point{
		X: a.Start.X - rho*math.Sin(a.Start.Theta),
		Y: a.Start.Y + rho*math.Cos(a.Start.Theta),
	}
	th0 := math.Atan2(a.Start.Y-center.Y, a.Start.X-center.X)
	th1 := math.Atan2(a.End.Y-center.Y, a.End.X-center.X)

	return geom.ArcIntersectsPolygon(rho, center, th0, th1, poly)
}

// IntersectsPolygon reports whether any of the three arcs crosses poly.
func (c Curve) IntersectsPolygon(poly geom.Polygon) bool {
	return c.Arc1.IntersectsPolygon(poly) ||
		c.Arc2.IntersectsPolygon(poly) ||
		c.Arc3.IntersectsPolygon(poly)
}
