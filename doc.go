// Package kdgo provides an in-memory two-dimensional nearest-neighbour index
// for Go.
//
// kdgo stores points tagged with arbitrary values in a 2-d tree and answers
// "which stored points are closest to this one" without scanning every
// point:
//
//   - Balanced bulk construction by median selection
//   - Incremental insertion with value replacement for existing points
//   - Exact k-nearest-neighbour search with an explicit stack (no recursion)
//   - Filtered search through a fluent builder
//   - Concurrent batch search bounded by an errgroup limit
//   - Structured logging (log/slog) and pluggable metrics
//
// # Quick Start
//
// Build an index from a batch of points:
//
//	idx := kdgo.Build([]kdgo.Entry[int, string]{
//	    {Point: geom.Pt(3, 0), Value: "foo"},
//	    {Point: geom.Pt(4, 6), Value: "bar"},
//	    {Point: geom.Pt(4, 5), Value: "baz"},
//	})
//
// Grow it one point at a time:
//
//	old, replaced := idx.Insert(geom.Pt(100, 100), "quux")
//
// Query it:
//
//	nn, ok := idx.Nearest(geom.Pt(2, 5))         // (4,5) "baz"
//	top, err := idx.KNearest(geom.Pt(2, 5), 2)   // ascending squared distance
//
//	results, err := idx.Search(geom.Pt(2, 5)).
//	    KNN(2).
//	    Filter(func(p geom.Point[int], v string) bool { return v != "bar" }).
//	    Execute()
//
// # Distances
//
// Distances are squared Euclidean distances computed in float64, so integer
// coordinates of any width never overflow. They are exact for coordinates up
// to magnitude 2^25 (differences up to 2^26) and rounded beyond that.
// int64 and uint64 coordinates above 2^53 already lose precision when
// converted to float64. Results at equal distance come back in an
// unspecified order.
//
// # Concurrency
//
// An Index does no locking. Searches never modify the tree and may run
// concurrently with each other (SearchBatch does exactly that); Insert
// requires exclusive access. Guard an Index shared between writers and
// readers with a sync.RWMutex.
package kdgo
