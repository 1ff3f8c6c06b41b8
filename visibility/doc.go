// Package visibility builds the base layer of the roadmap: a visibility
// graph over vertices sampled from the inflated obstacle outlines.
//
// MakeVertices inflates the obstacles outward and the border inward by
// the visibility offset, subtracts the obstacle union from the shrunk
// border (the boolean difference is delegated to the polyclip clipping
// library), and emits the vertex rings of the result. Consecutive
// vertices closer than a threshold are merged into a running weighted
// centroid. The offset is chosen slightly larger than the collision
// inflation so Dubins curves have slack to pass near obstacles without
// colliding.
//
// Build then runs the O(V²) pairwise test: two vertices see each other
// when the segment between them stays inside the border, crosses no
// obstacle, and neither endpoint lies inside an obstacle. Every visible
// pair becomes a bidirectional edge of the roadmap's base graph.
package visibility
