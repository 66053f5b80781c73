package core

import "reflect"

// depsChanged decides whether an effect with dependencies next must run
// again after a previous visit with prev.
func depsChanged(prev, next []any) bool {
	if next == nil {
		return true
	}
	if len(prev) != len(next) {
		return true
	}
	for i := range next {
		if !sameDep(prev[i], next[i]) {
			return true
		}
	}
	return false
}

// sameDep compares two dependencies by value for comparable types and by
// identity for maps, slices, channels and pointers. Functions are never the
// same: a closure carries no identity that survives a render.
func sameDep(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Func:
		return false
	case reflect.Map, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return equal(a, b)
}

// equal is a == b, treating a comparison that panics on an uncomparable
// dynamic value as unequal.
func equal(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
