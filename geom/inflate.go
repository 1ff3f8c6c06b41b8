package geom

// Inflate offsets every polygon by the given amount: positive offsets grow
// the ring away from its interior, negative offsets shrink it. The input
// rings must be convex; each output vertex is the miter intersection of
// the two adjacent offset edge lines, so the result is again convex with
// the same vertex count.
//
// The clockwise flag selects the winding of the returned rings, matching
// the storage convention (obstacles clockwise, border counter-clockwise).
//
// Complexity: O(Σn) over all rings.
func Inflate(polygons []Polygon, offset float64, clockwise bool) []Polygon {
	out := make([]Polygon, 0, len(polygons))
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		out = append(out, inflateConvex(poly, offset, clockwise))
	}

	return out
}

// inflateConvex offsets one convex ring and fixes its winding.
func inflateConvex(poly Polygon, offset float64, clockwise bool) Polygon {
	n := len(poly)

	// Outward normal of each edge. For counter-clockwise winding the
	// interior is to the left, so outward is the right-hand normal; for
	// clockwise winding it is the opposite.
	ccw := poly.SignedArea() > 0

	type line struct {
		p Point // a point on the offset edge line
		d Point // edge direction
	}
	lines := make([]line, n)
	for i := 0; i < n; i++ {
		d := poly[(i+1)%n].Sub(poly[i])
		nrm := Point{X: d.Y, Y: -d.X} // right-hand normal
		if !ccw {
			nrm = nrm.Mul(-1)
		}
		nrm = nrm.Normalize()
		lines[i] = line{p: poly[i].Add(nrm.Mul(offset)), d: d}
	}

	// Each new vertex is the intersection of the previous and current
	// offset edge lines.
	inflated := make(Polygon, n)
	for i := 0; i < n; i++ {
		prev := lines[(i+n-1)%n]
		cur := lines[i]
		det := prev.d.X*(-cur.d.Y) - (-cur.d.X)*prev.d.Y
		if det == 0 {
			// Collinear adjacent edges: the offset point itself is exact.
			inflated[i] = cur.p
			continue
		}
		rx := cur.p.X - prev.p.X
		ry := cur.p.Y - prev.p.Y
		t := (rx*(-cur.d.Y) - (-cur.d.X)*ry) / det
		inflated[i] = prev.p.Add(prev.d.Mul(t))
	}

	if (inflated.SignedArea() > 0) == clockwise {
		reversePolygon(inflated)
	}

	return inflated
}

func reversePolygon(poly Polygon) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}
