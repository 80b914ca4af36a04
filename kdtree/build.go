package kdtree

import (
	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/internal/selection"
)

// Build returns a tree holding entries, split at the median on every level.
//
// Entries may repeat a point; the value of the last such entry wins, just
// as if the entries had been inserted one by one. entries is not modified.
//
// Medians are selected by the coordinate on the level's axis and, among
// equal coordinates, by the coordinate on the other axis. The secondary key
// keeps selection deterministic when many points share a coordinate.
func Build[T geom.Coordinate, V any](entries []Entry[T, V]) *Tree[T, V] {
	t := New[T, V]()

	items := dedupe(entries)
	if len(items) == 0 {
		return t
	}

	type span struct {
		items []Entry[T, V]
		axis  geom.Axis
	}

	// FIFO so every node is inserted after all of its ancestors.
	work := []span{{items: items, axis: geom.AxisX}}
	for len(work) > 0 {
		s := work[0]
		work[0] = span{}
		work = work[1:]

		mid := len(s.items) / 2
		axis := s.axis
		selection.SelectFunc(s.items, mid, func(a, b Entry[T, V]) int {
			return a.Point.Compare(b.Point, axis)
		})

		e := s.items[mid]
		t.Insert(e.Point, e.Value)

		next := axis.Next()
		if before := s.items[:mid]; len(before) > 0 {
			work = append(work, span{items: before, axis: next})
		}
		if after := s.items[mid+1:]; len(after) > 0 {
			work = append(work, span{items: after, axis: next})
		}
	}

	return t
}

// dedupe returns a copy of entries holding each point once, at the position
// of its first occurrence, with the value of its last occurrence.
func dedupe[T geom.Coordinate, V any](entries []Entry[T, V]) []Entry[T, V] {
	out := make([]Entry[T, V], 0, len(entries))
	seen := make(map[geom.Point[T]]int, len(entries))

	for _, e := range entries {
		if i, ok := seen[e.Point]; ok {
			out[i].Value = e.Value
			continue
		}
		seen[e.Point] = len(out)
		out = append(out, e)
	}
	return out
}
