package dataflow

import (
	"cmp"
	"iter"
	"slices"
)

// Group is one partition produced by GroupBy.
type Group[K cmp.Ordered, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions the sequence by key. Items keep their input order inside a
// group; groups are returned sorted ascending by key.
func GroupBy[T any, K cmp.Ordered](input iter.Seq[T], key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	var groups []Group[K, T]
	for item := range input {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	slices.SortFunc(groups, func(a, b Group[K, T]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return groups
}

// IndexBy builds a key -> item lookup. When keys repeat the first item wins.
func IndexBy[T any, K comparable](input iter.Seq[T], key func(T) K) map[K]T {
	out := make(map[K]T)
	for item := range input {
		k := key(item)
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = item
	}
	return out
}

// MaxBy returns the item with the largest score. Ties keep the earliest item.
// ok is false for an empty sequence.
func MaxBy[T any, S cmp.Ordered](input iter.Seq[T], score func(T) S) (best T, ok bool) {
	var bestScore S
	for item := range input {
		s := score(item)
		if !ok || s > bestScore {
			best, bestScore, ok = item, s, true
		}
	}
	return best, ok
}

// Stats accumulates count, min, max and sum of a numeric sequence.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Sum   float64
}

// Empty reports whether no value was accumulated.
func (s Stats) Empty() bool {
	return s.Count == 0
}

// Avg is Sum/Count, or 0 for empty stats.
func (s Stats) Avg() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Add folds one value into the stats.
func (s *Stats) Add(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Sum += v
	s.Count++
}

// Summarize drains the sequence into Stats.
func Summarize(input iter.Seq[float64]) Stats {
	var s Stats
	for v := range input {
		s.Add(v)
	}
	return s
}
