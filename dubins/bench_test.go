package dubins_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dubnav/dubins"
	"github.com/katalvlaran/dubnav/geom"
)

// BenchmarkShortestPath_Free measures the pure six-family solve without
// any collision filtering.
func BenchmarkShortestPath_Free(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	starts := make([]geom.Pose2D, 64)
	ends := make([]geom.Pose2D, 64)
	for i := range starts {
		starts[i] = geom.Pose2D{X: rng.Float64() * 4, Y: rng.Float64() * 4, Theta: rng.Float64() * 2 * math.Pi}
		ends[i] = geom.Pose2D{X: rng.Float64() * 4, Y: rng.Float64() * 4, Theta: rng.Float64() * 2 * math.Pi}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i & 63
		_, _ = dubins.ShortestPath(starts[j], ends[j], 2, nil, nil)
	}
}

// BenchmarkShortestPath_Filtered includes one obstacle and a border, the
// shape of a roadmap-build inner iteration.
func BenchmarkShortestPath_Filtered(b *testing.B) {
	obst := []geom.Polygon{{{X: 1.8, Y: 1.8}, {X: 1.8, Y: 2.2}, {X: 2.2, Y: 2.2}, {X: 2.2, Y: 1.8}}}
	border := geom.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	start := geom.Pose2D{X: 0.5, Y: 0.5, Theta: 0}
	end := geom.Pose2D{X: 3.5, Y: 3.5, Theta: math.Pi / 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dubins.ShortestPath(start, end, 2, obst, border)
	}
}

// BenchmarkDiscretizeCurve measures the sampling hot path.
func BenchmarkDiscretizeCurve(b *testing.B) {
	curve, err := dubins.ShortestPath(
		geom.Pose2D{X: 0, Y: 0, Theta: 0},
		geom.Pose2D{X: 3, Y: 1, Theta: math.Pi / 2},
		2, nil, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		path, _ := dubins.DiscretizeCurve(curve, 0.01, 0, nil)
		_ = path
	}
}
