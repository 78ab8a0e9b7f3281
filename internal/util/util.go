// Package util holds the small stateless helpers shared by the dnd packages.
package util

import "reflect"

// TypeName returns a precise runtime name for v. Untyped nil reports "nil",
// typed nil pointers, maps, slices and funcs report "nil <type>", basic kinds
// report their kind ("int", "string", ...) and everything else reports its
// declared type name, package-qualified ("dnd.Node", "*dnd.Node").
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	t := rv.Type()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return "nil " + t.String()
		}
	}
	return t.String()
}

// IsDefined reports whether v holds a usable value: false for untyped nil and
// for nil pointers, maps, slices, funcs, channels and interfaces.
func IsDefined(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// EnsureSlice coerces v into a []T. A nil v yields nil, a T yields a
// one-element slice, a []T is returned as is and a []any keeps only its T
// elements. ok is false when v (or any element) is of another type.
func EnsureSlice[T any](v any) (out []T, ok bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case T:
		return []T{x}, true
	case []T:
		return x, true
	case []any:
		out = make([]T, 0, len(x))
		for _, e := range x {
			t, isT := e.(T)
			if !isT {
				return out, false
			}
			out = append(out, t)
		}
		return out, true
	}
	return nil, false
}

// Noop does nothing. Used as a placeholder callback.
func Noop() {}
