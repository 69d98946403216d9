package arr

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Key is a comparable digest of a value's structure, produced by [DeepKey].
type Key [blake2b.Size256]byte

// DeepKey returns the BLAKE2b-256 digest of v's Go-syntax representation
// (fmt's %#v verb). Values with the same type and the same contents yield the
// same Key, including slices and maps (map keys are printed sorted).
// Pointers are rendered as addresses and therefore keep reference identity.
// Types implementing fmt.GoStringer are keyed by their GoString output.
func DeepKey[T any](v T) Key {
	// fmt dereferences pointers only at the top level; nesting v keeps every
	// pointer printed as an address.
	return Key(blake2b.Sum256([]byte(fmt.Sprintf("%#v", [1]T{v}))))
}

// Field returns a selector that reads a named attribute from an element.
//
// path is one or more names separated by dots. Each name selects an exported
// struct field, or a key in a map with string keys; pointers and interfaces
// are followed along the way. A name that cannot be resolved, or a nil
// pointer on the path, makes the selector return nil.
//
//	Field[Post]("Author.ID")
//	Field[map[string]any]("meta.tag")
//
// The result is usable as a map key only if the selected value is
// comparable; select uncomparable values through [DeepKey] instead.
func Field[T any](path string) func(T) any {
	names := strings.Split(path, ".")
	return func(item T) any {
		v := reflect.ValueOf(&item).Elem()
		for _, name := range names {
			if v = lookup(v, name); !v.IsValid() {
				return nil
			}
		}
		if !v.CanInterface() {
			return nil
		}
		return v.Interface()
	}
}

func lookup(v reflect.Value, name string) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		f, ok := v.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return reflect.Value{}
		}
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}
		}
		return fv
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return reflect.Value{}
		}
		return v.MapIndex(reflect.ValueOf(name).Convert(kt))
	default:
		return reflect.Value{}
	}
}

// Sprint converts a selector into one that yields fmt.Sprint of its result.
// A nil result becomes "<nil>".
func Sprint[T, K any](fn func(T) K) func(T) string {
	return func(item T) string {
		return fmt.Sprint(fn(item))
	}
}
