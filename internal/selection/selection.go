// Package selection implements order-statistic selection (quickselect).
//
// Selecting the element of rank k partitions a slice in place around it in
// expected linear time, which is all a median split needs; a full sort
// would cost O(n log n).
package selection

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrRankOutOfRange is the panic value (wrapped) raised when a rank does not
// address an element of the slice. Callers are expected to pass valid ranks;
// the condition is a programming error, not a data condition.
var ErrRankOutOfRange = errors.New("selection: rank out of range")

// SelectFunc reorders s so that s[k] holds the element a full sort by
// compare would place at index k. Every element before k compares <= s[k]
// and every element after k compares >= s[k].
//
// SelectFunc panics with an error wrapping ErrRankOutOfRange if s is empty
// or k is not in [0, len(s)).
func SelectFunc[S ~[]E, E any](s S, k int, compare func(a, b E) int) {
	n := len(s)
	if n == 0 || k < 0 || k >= n {
		panic(fmt.Errorf("%w: rank %d, length %d", ErrRankOutOfRange, k, n))
	}

	// Active range is [lo, hi). Each round discards the partitions that
	// cannot contain k; the equal partition is never empty, so the range
	// shrinks even when every key is identical.
	lo, hi := 0, n
	for hi-lo > 1 {
		pivot := s[medianOfThree(s, lo, lo+(hi-lo)/2, hi-1, compare)]
		lt, gt := partition(s, lo, hi, pivot, compare)

		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			return
		}
	}
}

// SelectByKey is SelectFunc ordered by the key extracted from each element.
func SelectByKey[S ~[]E, E any, K cmp.Ordered](s S, k int, key func(E) K) {
	SelectFunc(s, k, func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	})
}

// partition rearranges s[lo:hi] into three runs: s[lo:lt] < pivot,
// s[lt:gt] == pivot and s[gt:hi] > pivot.
func partition[S ~[]E, E any](s S, lo, hi int, pivot E, compare func(a, b E) int) (lt, gt int) {
	lt, gt = lo, hi
	i := lo
	for i < gt {
		switch c := compare(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThree returns whichever of a, b, c indexes the median element.
func medianOfThree[S ~[]E, E any](s S, a, b, c int, compare func(a, b E) int) int {
	if compare(s[a], s[b]) > 0 {
		a, b = b, a
	}
	if compare(s[b], s[c]) > 0 {
		b = c
		if compare(s[a], s[b]) > 0 {
			b = a
		}
	}
	return b
}
