// Package dustsort provides an in-place, stable sort with O(n log n)
// worst-case time and O(1) auxiliary memory. It never allocates, never
// spawns goroutines, and never reorders equal elements.
package dustsort

import (
	"cmp"

	"github.com/bzyjin/dustsort/internal/core"
)

// Sort sorts v in ascending order.
func Sort[T cmp.Ordered](v []T) {
	core.Sort(v, func(a, b T) bool { return a < b })
}

// SortFunc sorts v in place using less to compare elements. less must be a
// strict weak order and must never be called with the same index for both
// of its arguments.
func SortFunc[T any](v []T, less func(a, b T) bool) {
	core.Sort(v, less)
}

// SortKeyFunc sorts v in place by comparing the ordered keys that key
// extracts from each element. key may be called more than once per element
// per comparison; it is not cached.
func SortKeyFunc[T any, K cmp.Ordered](v []T, key func(T) K) {
	core.Sort(v, func(a, b T) bool { return key(a) < key(b) })
}
