package geom

import "math"

// GatePose returns the pose a robot should reach to drive out through the
// given gate: the gate centroid, oriented along the outward normal of the
// border wall the gate sits on.
//
// The border is expected counter-clockwise starting at the south-west
// corner (SW, SE, NE, NW). The centroid is classified against the two
// arena diagonals, which split the rectangle into four triangles; each
// triangle maps to one of the axis-aligned outward directions:
//
//	bottom → 3π/2, right → 0, top → π/2, left → π
func GatePose(gate, border Polygon) Pose2D {
	c := gate.Centroid()
	pose := Pose2D{X: c.X, Y: c.Y}
	if len(border) < 4 {
		return pose
	}

	sw, se, ne, nw := border[0], border[1], border[2], border[3]

	// Sign of the cross product against each diagonal tells the side.
	d1 := ne.Sub(sw)
	v1 := c.Sub(sw)
	cross1 := d1.X*v1.Y - d1.Y*v1.X

	d2 := nw.Sub(se)
	v2 := c.Sub(se)
	cross2 := d2.X*v2.Y - d2.Y*v2.X

	switch {
	case cross1 <= 0 && cross2 > 0: // below SW–NE and below SE–NW: bottom wall
		pose.Theta = 3 * math.Pi / 2
	case cross1 <= 0 && cross2 <= 0: // right wall
		pose.Theta = 0
	case cross1 > 0 && cross2 <= 0: // top wall
		pose.Theta = math.Pi / 2
	default: // left wall
		pose.Theta = math.Pi
	}

	return pose
}
