package kdgo

import (
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/kdtree"
)

// Entry is a point together with the value stored for it.
type Entry[T geom.Coordinate, V any] = kdtree.Entry[T, V]

// Neighbor is a search result. Distance is the squared Euclidean distance
// to the query point.
type Neighbor[T geom.Coordinate, V any] = kdtree.Neighbor[T, V]

// Index is a two-dimensional nearest-neighbour index mapping points to
// values of type V.
//
// Index performs no locking. Insert must not run concurrently with any
// other method; searches may run concurrently with each other.
type Index[T geom.Coordinate, V any] struct {
	tree        *kdtree.Tree[T, V]
	metrics     MetricsCollector
	logger      *Logger
	concurrency int
}

// New returns an empty Index.
func New[T geom.Coordinate, V any](optFns ...Option) *Index[T, V] {
	return newIndex(kdtree.New[T, V](), applyOptions(optFns))
}

// Build returns an Index holding entries, balanced by median splits.
// Repeated points keep the value of their last entry.
func Build[T geom.Coordinate, V any](entries []Entry[T, V], optFns ...Option) *Index[T, V] {
	opts := applyOptions(optFns)

	start := time.Now()
	tree := kdtree.Build(entries)
	opts.metricsCollector.RecordBuild(tree.Len(), time.Since(start))
	opts.logger.WithCount(len(entries)).LogBuild(tree.Len(), tree.Depth())

	return newIndex(tree, opts)
}

func newIndex[T geom.Coordinate, V any](tree *kdtree.Tree[T, V], opts options) *Index[T, V] {
	return &Index[T, V]{
		tree:        tree,
		metrics:     opts.metricsCollector,
		logger:      opts.logger,
		concurrency: opts.batchConcurrency,
	}
}

// Insert stores v under p. If p was already present, its previous value is
// returned together with true.
func (idx *Index[T, V]) Insert(p geom.Point[T], v V) (V, bool) {
	start := time.Now()
	old, replaced := idx.tree.Insert(p, v)
	idx.metrics.RecordInsert(replaced, time.Since(start))
	idx.logger.LogInsert(replaced, idx.tree.Len())
	return old, replaced
}

// Len returns the number of distinct points stored.
func (idx *Index[T, V]) Len() int { return idx.tree.Len() }

// IsEmpty reports whether the index holds no points.
func (idx *Index[T, V]) IsEmpty() bool { return idx.tree.IsEmpty() }

// All returns an iterator over every stored point and its value.
func (idx *Index[T, V]) All() iter.Seq2[geom.Point[T], V] { return idx.tree.All() }

// Tree returns the underlying tree.
func (idx *Index[T, V]) Tree() *kdtree.Tree[T, V] { return idx.tree }

// Nearest returns the stored point closest to q, or false if the index is
// empty.
func (idx *Index[T, V]) Nearest(q geom.Point[T]) (Neighbor[T, V], bool) {
	res, _ := idx.search(q, 1, nil)
	if len(res) == 0 {
		return Neighbor[T, V]{}, false
	}
	return res[0], true
}

// KNearest returns up to k stored points closest to q in ascending
// distance order. k == 0 or an empty index yields an empty result;
// a negative k yields ErrInvalidK.
func (idx *Index[T, V]) KNearest(q geom.Point[T], k int) ([]Neighbor[T, V], error) {
	return idx.search(q, k, nil)
}

func (idx *Index[T, V]) search(q geom.Point[T], k int, keep func(geom.Point[T], V) bool) ([]Neighbor[T, V], error) {
	start := time.Now()
	if k < 0 {
		err := fmt.Errorf("kdgo: %w: got %d", ErrInvalidK, k)
		idx.metrics.RecordSearch(k, 0, time.Since(start), err)
		idx.logger.LogSearch(k, 0, err)
		return nil, err
	}

	res := idx.tree.KNearestFunc(q, k, keep)
	idx.metrics.RecordSearch(k, len(res), time.Since(start), nil)
	idx.logger.LogSearch(k, len(res), nil)
	return res, nil
}
