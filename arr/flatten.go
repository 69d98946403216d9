package arr

import "reflect"

// frame is one partially visited sequence on the Flatten stack.
type frame struct {
	seq  reflect.Value
	next int
}

// Flatten expands every element whose dynamic type is a slice or array,
// recursively, and returns the scalar elements in depth-first, left-to-right
// order:
//
//	Flatten([]any{1, []any{2, 3}, []any{4, []int{5, 6}}, 7}) // → [1 2 3 4 5 6 7]
//
// Strings are scalars. Nil elements are kept. Empty nested sequences
// contribute nothing. Neither items nor any nested sequence is modified.
//
// A sequence that (directly or indirectly) contains itself makes Flatten run
// until memory is exhausted.
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	stack := []frame{{seq: reflect.ValueOf(items)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.seq.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		elem := top.seq.Index(top.next)
		top.next++
		v := elem.Interface()
		if nested, ok := sequence(v); ok {
			stack = append(stack, frame{seq: nested})
			continue
		}
		out = append(out, v)
	}
	return out
}

// sequence reports whether v is a slice or an array.
func sequence(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// Collapse flattens exactly one level of a slice of slices.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}
