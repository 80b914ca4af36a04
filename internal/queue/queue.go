// Package queue provides the fixed-capacity max-heap used to retain the k
// closest candidates of a nearest-neighbour search.
package queue

// Item pairs a candidate with its squared distance to the active query.
// Items are ordered by Distance only.
type Item[T any] struct {
	Value    T       // Value is the candidate, opaque to the queue.
	Distance float64 // Distance is the priority of the item in the queue.
}

// Bounded is a max-heap holding at most k items. Pushing beyond the
// capacity evicts the item with the largest distance, so the heap always
// retains the k smallest-distance items pushed so far.
//
// Ties at equal distance are evicted in no particular order.
type Bounded[T any] struct {
	k     int
	items []Item[T] // value-based storage, len <= k between calls
}

// NewBounded returns an empty Bounded queue with capacity k.
// k must be positive.
func NewBounded[T any](k int) *Bounded[T] {
	return &Bounded[T]{
		k:     k,
		items: make([]Item[T], 0, k+1),
	}
}

// Len returns the number of retained items.
func (pq *Bounded[T]) Len() int { return len(pq.items) }

// Full reports whether the queue holds k items.
func (pq *Bounded[T]) Full() bool { return len(pq.items) >= pq.k }

// Push adds a candidate. If the queue then holds more than k items the
// current maximum is removed again.
func (pq *Bounded[T]) Push(value T, distance float64) {
	pq.items = append(pq.items, Item[T]{Value: value, Distance: distance})
	pq.siftUp(len(pq.items) - 1)

	if len(pq.items) > pq.k {
		pq.Pop()
	}
}

// Top returns the item with the largest distance.
func (pq *Bounded[T]) Top() (Item[T], bool) {
	if len(pq.items) == 0 {
		return Item[T]{}, false
	}
	return pq.items[0], true
}

// Pop removes and returns the item with the largest distance.
func (pq *Bounded[T]) Pop() (Item[T], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[T]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[T]{} // drop the reference for GC
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Drain empties the queue and returns its items sorted by ascending
// distance.
func (pq *Bounded[T]) Drain() []Item[T] {
	out := make([]Item[T], len(pq.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = pq.Pop()
	}
	return out
}

func (pq *Bounded[T]) less(i, j int) bool {
	return pq.items[i].Distance > pq.items[j].Distance
}

func (pq *Bounded[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *Bounded[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
