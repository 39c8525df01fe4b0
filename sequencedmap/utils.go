package sequencedmap

import (
	"cmp"
	"maps"
	"slices"
)

// FromSorted creates a new map from a built-in map, ordering keys ascending.
func FromSorted[K cmp.Ordered, V any](in map[K]V) *Map[K, V] {
	newMap := New[K, V]()

	for _, k := range slices.Sorted(maps.Keys(in)) {
		newMap.Set(k, in[k])
	}

	return newMap
}
