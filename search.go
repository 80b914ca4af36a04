package kdgo

import (
	"context"
	"fmt"

	"github.com/hupe1980/kdgo/geom"
	"golang.org/x/sync/errgroup"
)

// Search creates a new fluent search builder for the given query point.
//
// Example:
//
//	results, err := idx.Search(geom.Pt(2, 5)).
//	    KNN(3).
//	    Filter(func(p geom.Point[int], v string) bool { return v != "skip" }).
//	    Execute()
func (idx *Index[T, V]) Search(query geom.Point[T]) *SearchBuilder[T, V] {
	return &SearchBuilder[T, V]{
		idx:   idx,
		query: query,
		k:     10, // Default k
	}
}

// SearchBuilder is a fluent builder for constructing search queries.
type SearchBuilder[T geom.Coordinate, V any] struct {
	idx    *Index[T, V]
	query  geom.Point[T]
	k      int
	filter func(geom.Point[T], V) bool
}

// KNN sets the number of nearest neighbors to return.
func (sb *SearchBuilder[T, V]) KNN(k int) *SearchBuilder[T, V] {
	sb.k = k
	return sb
}

// Filter restricts results to entries for which fn returns true.
// Filtered entries never count towards k.
func (sb *SearchBuilder[T, V]) Filter(fn func(p geom.Point[T], v V) bool) *SearchBuilder[T, V] {
	sb.filter = fn
	return sb
}

// Execute runs the search and returns the results in ascending distance
// order.
func (sb *SearchBuilder[T, V]) Execute() ([]Neighbor[T, V], error) {
	return sb.idx.search(sb.query, sb.k, sb.filter)
}

// SearchBatch runs KNearest for every query on up to the configured batch
// concurrency of goroutines. The i-th result belongs to queries[i].
//
// Cancelling ctx stops queries that have not started yet; a running query
// always completes. SearchBatch must not overlap with Insert.
func (idx *Index[T, V]) SearchBatch(ctx context.Context, queries []geom.Point[T], k int) ([][]Neighbor[T, V], error) {
	if k < 0 {
		err := fmt.Errorf("kdgo: %w: got %d", ErrInvalidK, k)
		idx.logger.WithK(k).LogBatchSearch(len(queries), err)
		return nil, err
	}

	results := make([][]Neighbor[T, V], len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(idx.concurrency)

	started := 0
	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := idx.search(q, k, nil)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	if err == nil && started < len(queries) {
		err = ctx.Err()
	}
	idx.logger.WithK(k).LogBatchSearch(len(queries), err)
	if err != nil {
		return nil, fmt.Errorf("kdgo: batch search: %w", err)
	}
	return results, nil
}
