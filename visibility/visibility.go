package visibility

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"

	"github.com/katalvlaran/dubnav/geom"
	"github.com/katalvlaran/dubnav/roadmap"
)

// MakeVertices selects the candidate vertices of the visibility graph
// from the raw arena polygons.
//
// Obstacles are inflated outward and the border inward by offset, the
// inflated obstacle union is subtracted from the shrunk border, and the
// vertices of the resulting boundary rings are collected. Within each
// ring, consecutive vertices closer than threshold merge into a running
// weighted centroid (weights accumulate over successive merges).
//
// Complexity: dominated by the polygon difference; the merge pass is
// O(V).
func MakeVertices(obstacles []geom.Polygon, border geom.Polygon, offset, threshold float64) []geom.Point {
	clip := geom.Inflate(obstacles, offset, true)
	shrunk := geom.Inflate([]geom.Polygon{border}, -offset, false)
	if len(shrunk) == 0 {
		return nil
	}

	diff := toPolyclip([]geom.Polygon{shrunk[len(shrunk)-1]})
	if len(clip) > 0 {
		diff = diff.Construct(polyclip.DIFFERENCE, toPolyclip(clip))
	}

	var vertices []geom.Point
	for _, ring := range diff {
		oldX, oldY := math.Inf(1), math.Inf(1)
		weight := 1.0
		for _, v := range ring {
			x, y := v.X, v.Y
			if math.Hypot(x-oldX, y-oldY) < threshold {
				// Too close to the previous vertex: replace it with the
				// weighted centroid of the merged run.
				vertices = vertices[:len(vertices)-1]
				oldX = (weight*oldX + x) / (weight + 1)
				oldY = (weight*oldY + y) / (weight + 1)
				weight++
				vertices = append(vertices, geom.Point{X: oldX, Y: oldY})
			} else {
				vertices = append(vertices, geom.Point{X: x, Y: y})
				oldX, oldY = x, y
				weight = 1
			}
		}
	}

	return vertices
}

// Build generates the mutual-visibility edges over the given vertices and
// adds them to the roadmap's base graph as bidirectional edges. The
// obstacle and border polygons passed here are the collision-inflated
// ones, not the raw arena input.
//
// Complexity: O(V²·n) where n is the total polygon edge count.
func Build(rm *roadmap.RoadMap, vertices []geom.Point, obstacles []geom.Polygon, border geom.Polygon) {
	for i := 0; i+1 < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			p0, p1 := vertices[i], vertices[j]
			seg := geom.Segment{P0: p0, P1: p1}
			if geom.SegmentIntersectsPolygon(seg, border) {
				continue
			}
			visible := true
			for _, obst := range obstacles {
				if obst.ContainsConvex(p0) || obst.ContainsConvex(p1) || geom.SegmentIntersectsPolygon(seg, obst) {
					visible = false
					break
				}
			}
			if !visible {
				continue
			}

			n0 := rm.AddNode(p0)
			n1 := rm.AddNode(p1)
			rm.Connect(n0, n1)
			rm.Connect(n1, n0)
		}
	}
}

// toPolyclip converts geometry rings into the clipping library's
// representation.
func toPolyclip(polys []geom.Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(polys))
	for _, p := range polys {
		ring := make(polyclip.Contour, 0, len(p))
		for _, v := range p {
			ring = append(ring, polyclip.Point{X: v.X, Y: v.Y})
		}
		out = append(out, ring)
	}

	return out
}
