package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position on the 2D plane, in world units.
// It aliases r2.Point so the full vector arithmetic (Add, Sub, Mul, Dot,
// Cross, Norm) is available without conversion.
type Point = r2.Point

// Segment is the straight stretch between two points.
type Segment struct {
	P0 Point
	P1 Point
}

// Pose2D is an oriented position: (x, y) in world units, Theta measured
// counter-clockwise from the positive x-axis in radians.
type Pose2D struct {
	X     float64
	Y     float64
	Theta float64
}

// Point returns the positional part of the pose.
func (p Pose2D) Point() Point { return Point{X: p.X, Y: p.Y} }

// Polygon is an ordered ring of vertices. Winding is semantic: obstacles
// are stored clockwise, the arena border counter-clockwise.
type Polygon []Point

// Box is an axis-aligned bounding box.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Overlaps reports whether the two boxes share at least one point.
func (b Box) Overlaps(o Box) bool {
	return b.XMin <= o.XMax && o.XMin <= b.XMax && b.YMin <= o.YMax && o.YMin <= b.YMax
}

// Edges returns the directed edge list of the polygon, closing the ring
// from the last vertex back to the first.
// Complexity: O(n) time and memory.
func (poly Polygon) Edges() []Segment {
	out := make([]Segment, 0, len(poly))
	for i := range poly {
		out = append(out, Segment{P0: poly[i], P1: poly[(i+1)%len(poly)]})
	}

	return out
}

// BoundingBox returns the axis-aligned bounding box of the polygon.
// Complexity: O(n).
func (poly Polygon) BoundingBox() Box {
	b := Box{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for _, p := range poly {
		b.XMin = math.Min(b.XMin, p.X)
		b.XMax = math.Max(b.XMax, p.X)
		b.YMin = math.Min(b.YMin, p.Y)
		b.YMax = math.Max(b.YMax, p.Y)
	}

	return b
}

// Centroid returns the arithmetic mean of the polygon vertices.
// For the convex gates this package deals with, that is a point safely
// inside the ring. Complexity: O(n).
func (poly Polygon) Centroid() Point {
	var c Point
	if len(poly) == 0 {
		return c
	}
	for _, p := range poly {
		c = c.Add(p)
	}

	return c.Mul(1.0 / float64(len(poly)))
}

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise winding, negative for clockwise. Complexity: O(n).
func (poly Polygon) SignedArea() float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}

	return a * 0.5
}
