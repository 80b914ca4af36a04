package kdtree

import (
	"iter"

	"github.com/hupe1980/kdgo/geom"
)

// Entry is a point together with the value stored for it.
type Entry[T geom.Coordinate, V any] struct {
	Point geom.Point[T]
	Value V
}

// Neighbor is a query result. Distance is the squared Euclidean distance
// between Point and the query point.
type Neighbor[T geom.Coordinate, V any] struct {
	Point    geom.Point[T]
	Value    V
	Distance float64
}

// Tree is a 2-d tree. The zero value is an empty tree ready to use.
type Tree[T geom.Coordinate, V any] struct {
	root   *node[T, V]
	length int
}

type node[T geom.Coordinate, V any] struct {
	axis  geom.Axis
	point geom.Point[T] // splitting median of this subtree
	value V

	left  *node[T, V]
	right *node[T, V]
}

func newNode[T geom.Coordinate, V any](p geom.Point[T], v V, axis geom.Axis) *node[T, V] {
	return &node[T, V]{
		axis:  axis,
		point: p,
		value: v,
	}
}

// New returns an empty tree.
func New[T geom.Coordinate, V any]() *Tree[T, V] {
	return &Tree[T, V]{}
}

// Len returns the number of points stored in the tree.
func (t *Tree[T, V]) Len() int { return t.length }

// IsEmpty reports whether the tree holds no points.
func (t *Tree[T, V]) IsEmpty() bool { return t.length == 0 }

// Depth returns the number of nodes on the longest root-to-leaf path.
// An empty tree has depth 0.
func (t *Tree[T, V]) Depth() int {
	if t.root == nil {
		return 0
	}

	type frame struct {
		n     *node[T, V]
		depth int
	}

	deepest := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		deepest = max(deepest, f.depth)
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return deepest
}

// All returns an iterator over every stored point and its value, in
// pre-order (node, left subtree, right subtree).
func (t *Tree[T, V]) All() iter.Seq2[geom.Point[T], V] {
	return func(yield func(geom.Point[T], V) bool) {
		if t.root == nil {
			return
		}
		stack := []*node[T, V]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.point, n.value) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// goesLeft reports whether p belongs to the left subtree of n. Equal
// coordinates go left; the same rule drives insertion and query pruning.
func (n *node[T, V]) goesLeft(p geom.Point[T]) bool {
	return p.Coord(n.axis) <= n.point.Coord(n.axis)
}
