// Package quicksort implements a recursive, pivot-partitioning sort over
// ordered slices, plus an in-place Lomuto variant for comparison.
//
// What:
//
//   - Sort: picks the first element as pivot, splits the rest into
//     "≤ pivot" and "> pivot" (new slices, encounter order), sorts both
//     recursively and concatenates left + [pivot] + right.
//   - SortFunc: the same algorithm with a caller-supplied three-way
//     comparison, for element types outside constraints.Ordered.
//   - SortInPlace: Lomuto partition on the caller's slice, no per-call
//     allocation.
//
// Why:
//
//	Sort favours clarity over memory: every call allocates its partitions.
//	For production code prefer slices.Sort, which is better tested and
//	faster; the benchmarks in bench_test.go compare the three.
//
// Guarantees:
//
//   - The result is a permutation of the input in non-decreasing order.
//   - None of the variants is stable: equal elements may swap places
//     (with Sort, [1a, 1b] yields [1b, 1a] because 1b goes left of pivot 1a).
//   - Sort and SortFunc never modify their input.
//
// Complexity:
//
//   - Sort / SortFunc: Time O(n log n) average, O(n²) worst (sorted input),
//     Memory O(n log n) average in partition copies, recursion depth O(n) worst.
//   - SortInPlace:     Time O(n log n) average, O(n²) worst, Memory O(depth).
//
// Behaviour for incomparable values (e.g. NaN) is whatever the comparison
// yields; no ordering is promised for them.
package quicksort
