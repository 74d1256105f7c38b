package quicksort

import (
	"golang.org/x/exp/constraints"
)

// Sort returns a new slice with the elements of s in non-decreasing order.
//
// Algorithm:
//  1. len(s) ≤ 1 → return s unchanged (base case).
//  2. pivot = s[0].
//  3. Partition s[1:] into left (≤ pivot) and right (> pivot), preserving
//     encounter order inside each partition.
//  4. Return Sort(left) + [pivot] + Sort(right).
//
// Not stable. s is never modified.
func Sort[T constraints.Ordered](s []T) []T {
	if len(s) <= 1 {
		return s
	}

	pivot := s[0]
	left := make([]T, 0, len(s)-1)
	right := make([]T, 0, len(s)-1)
	for _, e := range s[1:] {
		if e <= pivot {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}

	return concat(Sort(left), pivot, Sort(right))
}

// SortFunc is Sort with an explicit comparison. cmp(a, b) must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b (the same contract as slices.SortFunc).
func SortFunc[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) <= 1 {
		return s
	}

	pivot := s[0]
	left := make([]T, 0, len(s)-1)
	right := make([]T, 0, len(s)-1)
	for _, e := range s[1:] {
		if cmp(e, pivot) <= 0 {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}

	return concat(SortFunc(left, cmp), pivot, SortFunc(right, cmp))
}

// concat builds left + [pivot] + right in a single allocation.
func concat[T any](left []T, pivot T, right []T) []T {
	out := make([]T, 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, pivot)

	return append(out, right...)
}
