package kdtree

import "github.com/hupe1980/kdgo/geom"

// Insert stores v under p.
//
// If p is already present its value is replaced and the previous value is
// returned with true; the length is unchanged. Otherwise a new leaf is
// attached and Insert returns the zero value and false.
//
// Insert never rebalances. Prefer Build when the whole point set is known
// up front.
func (t *Tree[T, V]) Insert(p geom.Point[T], v V) (V, bool) {
	var zero V

	if t.root == nil {
		t.root = newNode(p, v, geom.AxisX)
		t.length = 1
		return zero, false
	}

	n := t.root
	for {
		if n.point.Equal(p) {
			old := n.value
			n.value = v
			return old, true
		}

		child := &n.right
		if n.goesLeft(p) {
			child = &n.left
		}

		if *child == nil {
			*child = newNode(p, v, n.axis.Next())
			t.length++
			return zero, false
		}
		n = *child
	}
}
