package dubins

import (
	"errors"

	"github.com/katalvlaran/dubnav/geom"
)

// ErrNoPath is returned by ShortestPath when no curvature-bounded,
// collision-free curve connects the two poses.
var ErrNoPath = errors.New("dubins: no feasible collision-free path")

// Arc is one constant-curvature piece of a Dubins curve. K = 0 encodes a
// straight segment, K > 0 a left turn, K < 0 a right turn. The invariant
// End == PoseOnArc(S, Start, K) holds for every arc built by this package.
type Arc struct {
	Start geom.Pose2D
	End   geom.Pose2D
	K     float64 // signed curvature
	S     float64 // arc length, ≥ 0
}

// Curve is a full Dubins path: three consecutive arcs with total length L.
// Arc2.Start == Arc1.End and Arc3.Start == Arc2.End by construction.
type Curve struct {
	L    float64
	Arc1 Arc
	Arc2 Arc
	Arc3 Arc
}

// Family identifies one of the six Dubins primitive families.
type Family int

// The six families, in the fixed evaluation order of the solver.
const (
	LSL Family = iota
	RSR
	LSR
	RSL
	RLR
	LRL

	numFamilies
)

// ksigns maps each family to the curvature signs of its three arcs.
// Keeping the table next to the solver is deliberate: the closed forms
// below are only meaningful together with these signs.
var ksigns = [numFamilies][3]float64{
	LSL: {+1, 0, +1},
	RSR: {-1, 0, -1},
	LSR: {+1, 0, -1},
	RSL: {-1, 0, +1},
	RLR: {-1, +1, -1},
	LRL: {+1, -1, +1},
}

var familyNames = [numFamilies]string{"LSL", "RSR", "LSR", "RSL", "RLR", "LRL"}

// String returns the conventional three-letter name of the family.
func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return "???"
	}

	return familyNames[f]
}

// PathSample is one discretized point of a path: S is the cumulative
// arc-length from the path origin, K the signed curvature of the arc the
// sample lies on.
type PathSample struct {
	S     float64
	X     float64
	Y     float64
	Theta float64
	K     float64
}
