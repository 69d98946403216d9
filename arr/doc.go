// Package arr provides small, generic helper functions for Go slices:
// de-duplication, ordered grouping, deep flattening and shuffling.
//
// Every function is pure. Inputs are never modified and results never share
// a backing array with the input, so any number of calls may run
// concurrently without coordination.
//
// # De-duplication
//
//	arr.Unique([]int{1, 2, 2, 3, 1})                        // → [1 2 3]
//	arr.UniqueBy(posts, func(p Post) int { return p.ID })   // first post per ID
//	arr.UniqueBy(rows, arr.Field[Row]("author.id"))         // by named field
//
// [Unique] uses Go's == semantics: values of basic types compare by value,
// pointers and channels by reference, structs and arrays field by field.
// Slices and maps are not comparable in Go; use [UniqueDeep] (structural
// equality via [DeepKey]) or [UniqueFunc] (custom equality) for those.
//
// # Grouping
//
// [GroupBy] returns a [Groups] value that remembers the order in which keys
// were first seen:
//
//	g := arr.GroupBy(posts, arr.Sprint(arr.Field[Post]("Tag")))
//	for tag, posts := range g.All() {
//	    fmt.Println(tag, len(posts))
//	}
//
// # Flattening
//
// [Flatten] expands nested slices and arrays of any depth, depth first and
// left to right. It walks an explicit stack rather than recursing, so deep
// nesting cannot overflow the goroutine stack. A slice that contains itself
// never terminates.
//
// # Shuffling
//
// [Shuffle] and [ShuffleWith] implement the Durstenfeld variant of the
// Fisher–Yates shuffle. The random [Source] is injectable: use
// [NewSeededSource] for reproducible output or [SecureSource] when the order
// must be unpredictable.
package arr
