package queue

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounded(t *testing.T) {
	t.Run("TopIsMax", func(t *testing.T) {
		pq := NewBounded[string](3)

		pq.Push("a", 10.0)
		pq.Push("b", 5.0)
		pq.Push("c", 20.0)

		assert.Equal(t, 3, pq.Len())
		assert.True(t, pq.Full())

		top, ok := pq.Top()
		require.True(t, ok)
		assert.Equal(t, "c", top.Value)
		assert.Equal(t, 20.0, top.Distance)
	})

	t.Run("EvictsLargest", func(t *testing.T) {
		pq := NewBounded[int](3)
		pq.Push(1, 10.0)
		pq.Push(2, 20.0)
		pq.Push(3, 30.0)

		// Smaller than the top: 30 is evicted.
		pq.Push(4, 5.0)
		assert.Equal(t, 3, pq.Len())
		top, _ := pq.Top()
		assert.Equal(t, 20.0, top.Distance)

		// Larger than the top: the new item itself is evicted.
		pq.Push(5, 40.0)
		assert.Equal(t, 3, pq.Len())
		top, _ = pq.Top()
		assert.Equal(t, 20.0, top.Distance)
	})

	t.Run("PopOrder", func(t *testing.T) {
		pq := NewBounded[int](4)
		for i, d := range []float64{3, 1, 4, 1} {
			pq.Push(i, d)
		}

		var got []float64
		for pq.Len() > 0 {
			item, ok := pq.Pop()
			require.True(t, ok)
			got = append(got, item.Distance)
		}
		assert.Equal(t, []float64{4, 3, 1, 1}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		pq := NewBounded[int](1)
		assert.False(t, pq.Full())

		_, ok := pq.Top()
		assert.False(t, ok)
		_, ok = pq.Pop()
		assert.False(t, ok)
		assert.Empty(t, pq.Drain())
	})
}

func TestBoundedDrain(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))

	for _, k := range []int{1, 2, 7, 50} {
		pq := NewBounded[int](k)
		dists := make([]float64, 200)
		for i := range dists {
			dists[i] = float64(rng.Intn(100))
			pq.Push(i, dists[i])
			require.LessOrEqual(t, pq.Len(), k)
		}

		slices.Sort(dists)
		items := pq.Drain()
		require.Len(t, items, k)

		for i, item := range items {
			assert.Equal(t, dists[i], item.Distance, "k=%d position %d", k, i)
		}
		assert.Equal(t, 0, pq.Len())
	}
}
