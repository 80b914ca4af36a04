// Package kdtree implements a two-dimensional k-d tree mapping points to
// arbitrary values.
//
// Each node stores one point, which splits the plane on the node's axis:
// points whose coordinate on that axis is less than or equal to the node's
// go left, strictly greater ones go right. Axes alternate X, Y, X, ... from
// the root down.
//
// # Construction
//
// Build creates a balanced tree from a batch of entries by repeatedly
// selecting the median on the current axis. Insert adds single points and
// may unbalance the tree over time:
//
//	t := kdtree.Build([]kdtree.Entry[int, string]{
//	    {Point: geom.Pt(3, 0), Value: "foo"},
//	    {Point: geom.Pt(4, 5), Value: "baz"},
//	})
//	t.Insert(geom.Pt(100, 100), "quux")
//
// # Queries
//
//	nn, ok := t.Nearest(geom.Pt(2, 5))
//	top3 := t.KNearest(geom.Pt(2, 5), 3) // ascending distance
//
// Queries walk the tree with an explicit stack, so skewed trees cannot
// exhaust the goroutine stack.
//
// A Tree is not safe for concurrent use with writers. Any number of
// queries may run concurrently while no Insert is in progress.
package kdtree
