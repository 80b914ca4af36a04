package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/kdgo/geom"
)

// SearchResult is one entry of a brute-force search.
type SearchResult[T geom.Coordinate] struct {
	Index    int // position of Point in the searched slice
	Point    geom.Point[T]
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates num points with coordinates in [minVal, maxVal).
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) []geom.Point[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	pts := make([]geom.Point[float64], num)
	for i := range pts {
		pts[i] = geom.Pt(
			minVal+r.rand.Float64()*span,
			minVal+r.rand.Float64()*span,
		)
	}
	return pts
}

// GridPoints generates num integer points with coordinates in [0, span).
// Small spans produce many repeated coordinates and repeated points.
func (r *RNG) GridPoints(num, span int) []geom.Point[int] {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]geom.Point[int], num)
	for i := range pts {
		pts[i] = geom.Pt(r.rand.Intn(span), r.rand.Intn(span))
	}
	return pts
}

// ClusteredPoints generates num points around the given number of cluster
// centres in [0, 1000), with normally distributed offsets of the given
// spread.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) []geom.Point[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	centres := make([]geom.Point[float64], clusters)
	for i := range centres {
		centres[i] = geom.Pt(r.rand.Float64()*1000, r.rand.Float64()*1000)
	}

	pts := make([]geom.Point[float64], num)
	for i := range pts {
		c := centres[r.rand.Intn(clusters)]
		pts[i] = geom.Pt(
			c.X+r.rand.NormFloat64()*spread,
			c.Y+r.rand.NormFloat64()*spread,
		)
	}
	return pts
}

// BruteForceKNN performs exact search for ground truth. Results are sorted
// by ascending distance, ties by index.
func BruteForceKNN[T geom.Coordinate](points []geom.Point[T], query geom.Point[T], k int) []SearchResult[T] {
	results := make([]SearchResult[T], len(points))
	for i, p := range points {
		results[i] = SearchResult[T]{Index: i, Point: p, Distance: p.SquaredDist(query)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if k < 0 {
		k = 0
	}
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// Distances returns the distance column of results.
func Distances[T geom.Coordinate](results []SearchResult[T]) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Distance
	}
	return out
}
