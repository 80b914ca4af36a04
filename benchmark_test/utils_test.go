package benchmark_test

import (
	"testing"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/testutil"
)

const (
	sizeSmall  = 10_000
	sizeMedium = 100_000
	sizeLarge  = 1_000_000
)

// Use deterministic RNG for reproducible benchmarks
var rng = testutil.NewRNG(42)

// dataset describes how benchmark points are distributed.
type dataset struct {
	name string
	gen  func(n int) []geom.Point[float64]
}

var datasets = []dataset{
	{"uniform", func(n int) []geom.Point[float64] { return rng.UniformPoints(n, 0, 1000) }},
	{"clustered", func(n int) []geom.Point[float64] { return rng.ClusteredPoints(n, 16, 10) }},
}

func makeEntries(pts []geom.Point[float64]) []kdgo.Entry[float64, int] {
	entries := make([]kdgo.Entry[float64, int], len(pts))
	for i, p := range pts {
		entries[i] = kdgo.Entry[float64, int]{Point: p, Value: i}
	}
	return entries
}

// recallAtK reports the fraction of exact neighbours found, matched by
// distance so ties do not count as misses.
func recallAtK(got []kdgo.Neighbor[float64, int], truth []testutil.SearchResult[float64]) float64 {
	if len(truth) == 0 {
		return 1
	}
	worst := truth[len(truth)-1].Distance
	hits := 0
	for _, n := range got {
		if n.Distance <= worst {
			hits++
		}
	}
	return float64(min(hits, len(truth))) / float64(len(truth))
}

func loadIndex(b *testing.B, pts []geom.Point[float64]) *kdgo.Index[float64, int] {
	b.Helper()
	idx := kdgo.Build(makeEntries(pts))
	if idx.Len() != len(pts) {
		b.Fatalf("index holds %d points, want %d", idx.Len(), len(pts))
	}
	return idx
}
