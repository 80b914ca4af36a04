package kdtree

import (
	"math"

	"github.com/hupe1980/kdgo/geom"
	"github.com/hupe1980/kdgo/internal/queue"
)

// Nearest returns the stored point closest to q. It returns false if the
// tree is empty.
func (t *Tree[T, V]) Nearest(q geom.Point[T]) (Neighbor[T, V], bool) {
	res := t.KNearest(q, 1)
	if len(res) == 0 {
		return Neighbor[T, V]{}, false
	}
	return res[0], true
}

// KNearest returns up to k stored points closest to q, ordered by
// ascending distance. It returns nil if k <= 0 or the tree is empty, and
// every stored point if the tree holds fewer than k.
//
// Points at equal distance are returned in an unspecified order.
func (t *Tree[T, V]) KNearest(q geom.Point[T], k int) []Neighbor[T, V] {
	return t.KNearestFunc(q, k, nil)
}

// KNearestFunc is KNearest restricted to the entries for which keep
// returns true. A nil keep accepts every entry.
//
// Rejected entries still split the plane and are traversed, but never
// become results.
func (t *Tree[T, V]) KNearestFunc(q geom.Point[T], k int, keep func(geom.Point[T], V) bool) []Neighbor[T, V] {
	if t.root == nil || k <= 0 {
		return nil
	}

	// Never retain more than the tree can hold; k may be huge.
	best := queue.NewBounded[*node[T, V]](min(k, t.length))

	// worst is the distance of the farthest retained candidate once the
	// queue is full. Until then every subtree may hold a result.
	worst := math.Inf(1)

	stack := make([]*node[T, V], 0, 64)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]

		if keep == nil || keep(n.point, n.value) {
			best.Push(n, n.point.SquaredDist(q))
			if best.Full() {
				top, _ := best.Top()
				worst = top.Distance
			}
		}

		near, far := n.right, n.left
		if n.goesLeft(q) {
			near, far = n.left, n.right
		}

		// The far side can only hold a closer point if the splitting line
		// lies within the current worst distance.
		if far != nil && q.AxisGap(n.point, n.axis) <= worst {
			stack = append(stack, far)
		}
		// Pushed last so it is explored first and tightens worst early.
		if near != nil {
			stack = append(stack, near)
		}
	}

	items := best.Drain()
	res := make([]Neighbor[T, V], len(items))
	for i, it := range items {
		res[i] = Neighbor[T, V]{
			Point:    it.Value.point,
			Value:    it.Value.value,
			Distance: it.Distance,
		}
	}
	return res
}
