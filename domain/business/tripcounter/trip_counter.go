package tripcounter

import (
	"cmp"
	"slices"
)

// Entry a counted value and the amount of times it was seen
type Entry[K comparable] struct {
	Key   K
	Count int
}

// TripCounter counts how many trips share the same value of some field.
// + counts: amount of trips per value
// + compare: natural order of the values, used to break ties
// + total: amount of values counted
type TripCounter[K comparable] struct {
	counts  map[K]int
	compare func(a K, b K) int
	total   int
}

// NewTripCounter returns a counter for values with a natural order
func NewTripCounter[K cmp.Ordered]() *TripCounter[K] {
	return NewTripCounterFunc[K](cmp.Compare[K])
}

// NewTripCounterFunc returns a counter that breaks ties with compare
func NewTripCounterFunc[K comparable](compare func(a K, b K) int) *TripCounter[K] {
	return &TripCounter[K]{
		counts:  make(map[K]int),
		compare: compare,
	}
}

func (tc *TripCounter[K]) UpdateCounter(key K) {
	tc.counts[key] += 1
	tc.total += 1
}

func (tc *TripCounter[K]) GetCounter(key K) int {
	return tc.counts[key]
}

// GetTotal returns the amount of values counted
func (tc *TripCounter[K]) GetTotal() int {
	return tc.total
}

// Len returns the amount of distinct values counted
func (tc *TripCounter[K]) Len() int {
	return len(tc.counts)
}

func (tc *TripCounter[K]) IsEmpty() bool {
	return tc.total == 0
}

// Mode returns the most frequent value and its count. Among values with the
// same count the smallest one in natural order wins. ok is false if nothing was counted.
func (tc *TripCounter[K]) Mode() (key K, count int, ok bool) {
	for candidate, candidateCount := range tc.counts {
		if !ok || candidateCount > count || (candidateCount == count && tc.compare(candidate, key) < 0) {
			key = candidate
			count = candidateCount
			ok = true
		}
	}
	return key, count, ok
}

// ValueCounts returns every value with its count, most frequent first and
// values with the same count in natural order
func (tc *TripCounter[K]) ValueCounts() []Entry[K] {
	entries := make([]Entry[K], 0, len(tc.counts))
	for key, count := range tc.counts {
		entries = append(entries, Entry[K]{Key: key, Count: count})
	}

	slices.SortFunc(entries, func(a Entry[K], b Entry[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return tc.compare(a.Key, b.Key)
	})
	return entries
}

// Keys returns the distinct values in natural order
func (tc *TripCounter[K]) Keys() []K {
	keys := make([]K, 0, len(tc.counts))
	for key := range tc.counts {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, tc.compare)
	return keys
}

// Range returns the smallest and the biggest value counted
func (tc *TripCounter[K]) Range() (lowest K, highest K, ok bool) {
	keys := tc.Keys()
	if len(keys) == 0 {
		return lowest, highest, false
	}
	return keys[0], keys[len(keys)-1], true
}
