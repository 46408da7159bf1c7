package catalog

// Patch helpers keep a fetched snapshot consistent with a mutation that has
// already succeeded upstream, without waiting for the next full reload. The
// full reload remains the reconciliation step; these only cover the window
// between a mutation and the redirect-triggered refetch.

// UpsertByID replaces the entity with the same key, or appends it when the
// snapshot does not contain the key yet. The input slice is not mutated.
func UpsertByID[T any](list []T, item T, key func(T) int64) []T {
	id := key(item)
	out := make([]T, len(list))
	copy(out, list)
	for i, existing := range out {
		if key(existing) == id {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// RemoveByID drops the entity with the given key. Removing an id that is not
// present is a no-op; stale-id deletes are not an error.
func RemoveByID[T any](list []T, id int64, key func(T) int64) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
