package arr

// Unique returns a new slice with duplicates removed, keeping the first
// occurrence of every value and the relative order of the input.
//
// Equality is Go's ==. Pointers are compared by address, so two distinct
// pointers to equal structs are both retained. Interface elements holding
// uncomparable dynamic values (slices, maps, funcs) cause a runtime panic.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns the first element for every distinct key produced by fn,
// in input order. Later elements with an already seen key are dropped.
//
// A selector that yields nil for some elements (see [Field]) treats nil as an
// ordinary key: all such elements collapse into the first of them.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueFunc removes duplicates using a caller-supplied equality function.
// It runs in O(n²) and should be reserved for small inputs or for equality
// relations that cannot be expressed as a comparable key.
func UniqueFunc[T any](items []T, equal func(a, b T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		dup := false
		for _, kept := range out {
			if equal(kept, item) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
	}
	return out
}

// UniqueDeep removes structurally equal duplicates, including values Go
// cannot compare with == such as slices and maps. See [DeepKey] for what
// "structurally equal" means.
func UniqueDeep[T any](items []T) []T {
	return UniqueBy(items, DeepKey[T])
}
