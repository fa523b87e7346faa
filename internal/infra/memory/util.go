package memory

import (
	"cmp"
	"maps"
	"slices"
)

func sortedValues[T any](m map[uint]T) []T {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func sortBy[T any, K cmp.Ordered](items []T, key func(T) K) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}
