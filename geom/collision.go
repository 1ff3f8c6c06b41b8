package geom

import "math"

// SegmentsIntersect reports whether two segments share a point.
// It solves the 2×2 parametric system; parallel (zero-determinant) pairs
// report false, endpoint touches report true.
// Complexity: O(1).
func SegmentsIntersect(s0, s1 Segment) bool {
	det := (s1.P1.X-s1.P0.X)*(s0.P0.Y-s0.P1.Y) - (s0.P0.X-s0.P1.X)*(s1.P1.Y-s1.P0.Y)
	if det == 0 {
		return false
	}
	t := (s1.P0.Y-s1.P1.Y)*(s0.P0.X-s1.P0.X) + (s1.P1.X-s1.P0.X)*(s0.P0.Y-s1.P0.Y)
	u := (s0.P0.Y-s0.P1.Y)*(s0.P0.X-s1.P0.X) + (s0.P1.X-s0.P0.X)*(s0.P0.Y-s1.P0.Y)
	if det < 0 {
		det, t, u = -det, -t, -u
	}

	return t >= 0 && u >= 0 && t <= det && u <= det
}

// isRightOfOrOn reports whether p lies on the segment's line or strictly
// to its right when looking from P0 towards P1.
func isRightOfOrOn(p Point, s Segment) bool {
	d := s.P1.Sub(s.P0)
	v := p.Sub(s.P0)

	return d.X*v.Y-d.Y*v.X <= 0
}

// ContainsConvex reports whether p lies inside or on the polygon.
// The polygon must be convex and wound clockwise, so the interior is to
// the right of every directed edge; behavior on non-convex input is
// undefined by contract. Complexity: O(n).
func (poly Polygon) ContainsConvex(p Point) bool {
	for _, e := range poly.Edges() {
		if !isRightOfOrOn(p, e) {
			return false
		}
	}

	return len(poly) > 0
}

// SegmentIntersectsPolygon reports whether any edge of poly crosses s.
// Complexity: O(n).
func SegmentIntersectsPolygon(s Segment, poly Polygon) bool {
	for _, e := range poly.Edges() {
		if SegmentsIntersect(s, e) {
			return true
		}
	}

	return false
}

// ArcIntersectsSegment reports whether a circular arc crosses a segment.
//
// The arc lies on the circle of radius |rho| centered at c; it starts at
// angular position th0 and ends at th1, turning left (counter-clockwise)
// for rho > 0 and right for rho < 0. The segment is intersected with the
// circle by solving the quadratic of its parametric form; a root counts
// only when it lies within [0,1] on the segment and within the oriented
// sweep on the circle. Complexity: O(1).
func ArcIntersectsSegment(rho float64, c Point, th0, th1 float64, s Segment) bool {
	p0 := s.P0.Sub(c)
	d := s.P1.Sub(s.P0)

	a := d.Dot(d)
	b := 2 * p0.Dot(d)
	q := p0.Dot(p0) - rho*rho

	if a == 0 {
		// Degenerate zero-length segment: on the circle or not.
		if math.Abs(p0.Norm()-math.Abs(rho)) > 1e-9 {
			return false
		}

		return AngleInRange(math.Atan2(p0.Y, p0.X), th0, th1, rho < 0)
	}

	disc := b*b - 4*a*q
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t < 0 || t > 1 {
			continue
		}
		hit := p0.Add(d.Mul(t))
		if AngleInRange(math.Atan2(hit.Y, hit.X), th0, th1, rho < 0) {
			return true
		}
	}

	return false
}

// ArcIntersectsPolygon reports whether the circular arc described as in
// ArcIntersectsSegment crosses any edge of poly. Complexity: O(n).
func ArcIntersectsPolygon(rho float64, c Point, th0, th1 float64, poly Polygon) bool {
	for _, e := range poly.Edges() {
		if ArcIntersectsSegment(rho, c, th0, th1, e) {
			return true
		}
	}

	return false
}
