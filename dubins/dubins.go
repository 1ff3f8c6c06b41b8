package dubins

import (
	"math"

	"github.com/katalvlaran/dubnav/geom"
)

// checkThreshold bounds the residual of the boundary equations; a winning
// candidate above it is treated as infeasible.
const checkThreshold = 1e-4

// sinc computes sin(t)/t, switching to a Taylor expansion near zero so
// straight segments (t → 0) stay exact.
func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	if math.Abs(t) < 0.002 {
		tSqr := t * t

		return 1 - tSqr/120*(20-tSqr)
	}

	return math.Sin(t) / t
}

// scaleToStandard maps a world-space Dubins problem into the standard
// form: angles relative to the start→end line, curvature scaled by the
// half-distance λ. Coincident positions yield λ = 0; the closed forms
// below stay well-defined there because every arc length is recovered in
// world units directly.
func scaleToStandard(start, end geom.Pose2D, kmax float64) (scTh0, scThf, scKmax, lambda float64) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	lambda = math.Hypot(dx, dy) * 0.5
	phi := math.Atan2(dy, dx)
	scTh0 = geom.Mod2Pi(start.Theta - phi)
	scThf = geom.Mod2Pi(end.Theta - phi)
	scKmax = kmax * lambda

	return scTh0, scThf, scKmax, lambda
}

// evaluate computes the closed form of one primitive family. The trig
// discriminants live in standard space (scTh0, scThf, scKmax); the three
// arc lengths are returned in world units, exploiting that every scaled
// length is an angle (or square root) divided by the scaled curvature, so
// dividing by the world kmax instead yields the world length without a
// second scaling pass. An infeasible family yields all zeros; the
// feasibility flag stays a plain bool to keep this loop hot.
func evaluate(f Family, scTh0, scThf, scKmax, kmax float64) (s1, s2, s3 float64, ok bool) {
	invK := 1.0 / kmax
	sin0 := math.Sin(scTh0)
	sinF := math.Sin(scThf)
	cos0 := math.Cos(scTh0)
	cosF := math.Cos(scThf)
	cosDiff := math.Cos(scTh0 - scThf)

	switch f {
	case LSL:
		c := cosF - cos0
		s := 2*scKmax + sin0 - sinF
		t1 := math.Atan2(c, s)
		disc := 2 + 4*scKmax*scKmax - 2*cosDiff + 4*scKmax*(sin0-sinF)
		if disc < 0 {
			return 0, 0, 0, false
		}
		s1 = invK * geom.Mod2Pi(t1-scTh0)
		s2 = invK * math.Sqrt(disc)
		s3 = invK * geom.Mod2Pi(scThf-t1)

	case RSR:
		c := cos0 - cosF
		s := 2*scKmax - sin0 + sinF
		t1 := math.Atan2(c, s)
		disc := 2 + 4*scKmax*scKmax - 2*cosDiff - 4*scKmax*(sin0-sinF)
		if disc < 0 {
			return 0, 0, 0, false
		}
		s1 = invK * geom.Mod2Pi(scTh0-t1)
		s2 = invK * math.Sqrt(disc)
		s3 = invK * geom.Mod2Pi(t1-scThf)

	case LSR:
		c := cos0 + cosF
		s := 2*scKmax + sin0 + sinF
		t1 := math.Atan2(-c, s)
		disc := 4*scKmax*scKmax - 2 + 2*cosDiff + 4*scKmax*(sin0+sinF)
		if disc < 0 {
			return 0, 0, 0, false
		}
		s2 = invK * math.Sqrt(disc)
		t2 := -math.Atan2(-2, s2*kmax)
		s1 = invK * geom.Mod2Pi(t1+t2-scTh0)
		s3 = invK * geom.Mod2Pi(t1+t2-scThf)

	case RSL:
		c := cos0 + cosF
		s := 2*scKmax - sin0 - sinF
		t1 := math.Atan2(c, s)
		disc := 4*scKmax*scKmax - 2 + 2*cosDiff - 4*scKmax*(sin0+sinF)
		if disc < 0 {
			return 0, 0, 0, false
		}
		s2 = invK * math.Sqrt(disc)
		t2 := math.Atan2(2, s2*kmax)
		s1 = invK * geom.Mod2Pi(scTh0-t1+t2)
		s3 = invK * geom.Mod2Pi(scThf-t1+t2)

	case RLR:
		c := cos0 - cosF
		s := 2*scKmax - sin0 + sinF
		t1 := math.Atan2(c, s)
		t2 := 0.125 * (6 - 4*scKmax*scKmax + 2*cosDiff + 4*scKmax*(sin0-sinF))
		if math.Abs(t2) > 1 {
			return 0, 0, 0, false
		}
		s2 = invK * geom.Mod2Pi(2*math.Pi-math.Acos(t2))
		s1 = invK * geom.Mod2Pi(scTh0-t1+0.5*s2*kmax)
		s3 = invK * geom.Mod2Pi(scTh0-scThf+kmax*(s2-s1))

	case LRL:
		c := cosF - cos0
		s := 2*scKmax + sin0 - sinF
		t1 := math.Atan2(c, s)
		t2 := 0.125 * (6 - 4*scKmax*scKmax + 2*cosDiff - 4*scKmax*(sin0-sinF))
		if math.Abs(t2) > 1 {
			return 0, 0, 0, false
		}
		s2 = invK * geom.Mod2Pi(2*math.Pi-math.Acos(t2))
		s1 = invK * geom.Mod2Pi(t1-scTh0+0.5*s2*kmax)
		s3 = invK * geom.Mod2Pi(scThf-scTh0+kmax*(s2-s1))

	default:
		return 0, 0, 0, false
	}

	return s1, s2, s3, true
}

// check validates a standard-space solution against the boundary
// equations of the Dubins problem. A valid solution moves the pose from
// (−1, 0, th0) to (1, 0, thf) exactly, so the three residuals must vanish
// and at least one arc must have positive length.
func check(s1, k0, s2, k1, s3, k2, th0, thf float64) bool {
	eq1 := s1*sinc(0.5*k0*s1)*math.Cos(th0+0.5*k0*s1) +
		s2*sinc(0.5*k1*s2)*math.Cos(th0+k0*s1+0.5*k1*s2) +
		s3*sinc(0.5*k2*s3)*math.Cos(th0+k0*s1+k1*s2+0.5*k2*s3) - 2
	eq2 := s1*sinc(0.5*k0*s1)*math.Sin(th0+0.5*k0*s1) +
		s2*sinc(0.5*k1*s2)*math.Sin(th0+k0*s1+0.5*k1*s2) +
		s3*sinc(0.5*k2*s3)*math.Sin(th0+k0*s1+k1*s2+0.5*k2*s3)
	eq3 := geom.NormAngle(k0*s1 + k1*s2 + k2*s3 + th0 - thf)

	err := math.Sqrt(eq1*eq1 + eq2*eq2 + eq3*eq3)

	return (s1 > 0 || s2 > 0 || s3 > 0) && err < checkThreshold
}

// checkWorld is the degenerate-configuration fallback (coincident
// positions, λ = 0, where the standard form has no scale): the
// materialized curve must land on the requested end pose.
func checkWorld(curve Curve, end geom.Pose2D) bool {
	dx := curve.Arc3.End.X - end.X
	dy := curve.Arc3.End.Y - end.Y
	dth := geom.NormAngle(curve.Arc3.End.Theta - end.Theta)

	return curve.L > 0 && math.Sqrt(dx*dx+dy*dy+dth*dth) < checkThreshold
}

// PoseOnArc propagates a pose along an arc of signed curvature k for a
// length s, using the sinc-stabilized closed form.
func PoseOnArc(s float64, p0 geom.Pose2D, k float64) geom.Pose2D {
	ks2 := 0.5 * k * s
	sincKs2 := sinc(ks2)

	return geom.Pose2D{
		X:     p0.X + s*sincKs2*math.Cos(p0.Theta+ks2),
		Y:     p0.Y + s*sincKs2*math.Sin(p0.Theta+ks2),
		Theta: geom.Mod2Pi(p0.Theta + k*s),
	}
}

// newArc builds an arc from its start pose, curvature and length,
// materializing the end pose.
func newArc(start geom.Pose2D, k, s float64) Arc {
	return Arc{Start: start, End: PoseOnArc(s, start, k), K: k, S: s}
}

// newCurve chains three arcs from a start pose.
func newCurve(start geom.Pose2D, s1, s2, s3, k0, k1, k2 float64) Curve {
	a1 := newArc(start, k0, s1)
	a2 := newArc(a1.End, k1, s2)
	a3 := newArc(a2.End, k2, s3)

	return Curve{L: a1.S + a2.S + a3.S, Arc1: a1, Arc2: a2, Arc3: a3}
}

// ShortestPath returns the shortest curvature-bounded curve from start to
// end whose turning radius never drops below 1/kmax, that crosses no
// obstacle polygon and stays inside border. An empty border disables the
// border check; obstacles may be empty.
//
// All six primitive families are evaluated; every feasible candidate is
// materialized and collision-filtered, and the shortest survivor wins.
// The winner is finally validated against the boundary equations; a
// residual above 1e-4 degrades to ErrNoPath.
//
// Complexity: O(n) in the total polygon edge count.
func ShortestPath(start, end geom.Pose2D, kmax float64, obstacles []geom.Polygon, border geom.Polygon) (Curve, error) {
	scTh0, scThf, scKmax, lambda := scaleToStandard(start, end, kmax)

	best := Curve{}
	bestFamily := Family(-1)
	bestL := math.Inf(1)
	var bestS1, bestS2, bestS3 float64

	for f := Family(0); f < numFamilies; f++ {
		s1, s2, s3, ok := evaluate(f, scTh0, scThf, scKmax, kmax)
		if !ok {
			continue
		}
		lCur := s1 + s2 + s3
		if lCur >= bestL {
			continue
		}

		cur := newCurve(start, s1, s2, s3,
			ksigns[f][0]*kmax, ksigns[f][1]*kmax, ksigns[f][2]*kmax)

		colliding := false
		for i := range obstacles {
			if cur.IntersectsPolygon(obstacles[i]) {
				colliding = true
				break
			}
		}
		if !colliding && len(border) > 0 && cur.IntersectsPolygon(border) {
			colliding = true
		}
		if colliding {
			continue
		}

		bestL = lCur
		best = cur
		bestFamily = f
		bestS1, bestS2, bestS3 = s1, s2, s3
	}

	if bestFamily < 0 {
		return Curve{}, ErrNoPath
	}

	if lambda > 0 {
		// Map the winner back to standard space for the residual check.
		if !check(bestS1/lambda, ksigns[bestFamily][0]*scKmax,
			bestS2/lambda, ksigns[bestFamily][1]*scKmax,
			bestS3/lambda, ksigns[bestFamily][2]*scKmax,
			scTh0, scThf) {
			return Curve{}, ErrNoPath
		}
	} else if !checkWorld(best, end) {
		return Curve{}, ErrNoPath
	}

	return best, nil
}
