// Package dataflow provides synchronous, composable collection stages over iter.Seq.
//
// Stages are lazy: nothing runs until a sink (Collect, Count, ForEach, MaxBy,
// GroupBy, IndexBy, Summarize) ranges over the sequence.
package dataflow

import (
	"iter"
	"slices"
)

// From creates a sequence over a slice, in slice order.
func From[T any](items []T) iter.Seq[T] {
	return slices.Values(items)
}

// Map transforms every item of the sequence.
func Map[T, R any](input iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for item := range input {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Filter keeps items where fn returns true.
func Filter[T any](input iter.Seq[T], fn func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range input {
			if !fn(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Distinct drops repeated items, keeping the first occurrence order.
func Distinct[T comparable](input iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for item := range input {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}
}

// Collect drains the sequence into a slice. An empty sequence yields an empty, non-nil slice.
func Collect[T any](input iter.Seq[T]) []T {
	out := make([]T, 0)
	for item := range input {
		out = append(out, item)
	}
	return out
}

// Count drains the sequence and returns the number of items.
func Count[T any](input iter.Seq[T]) int {
	n := 0
	for range input {
		n++
	}
	return n
}

// ForEach executes an action for every item in the sequence.
// It stops at the first error and returns it.
func ForEach[T any](input iter.Seq[T], fn func(T) error) error {
	for item := range input {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}
