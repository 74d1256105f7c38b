package quicksort

import "golang.org/x/exp/constraints"

// SortInPlace sorts s in place with the Lomuto partition scheme, using the
// last element of each range as pivot. Not stable.
func SortInPlace[T constraints.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}

	p := lomuto(s)
	SortInPlace(s[:p])
	SortInPlace(s[p+1:])
}

// lomuto partitions s around its last element and returns the pivot's
// final index: s[:i] ≤ pivot < s[i+1:].
func lomuto[T constraints.Ordered](s []T) int {
	last := len(s) - 1
	pivot := s[last]
	i := 0
	for j := 0; j < last; j++ {
		if s[j] <= pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]

	return i
}
