package utils

import (
	"reflect"
)

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// RoundUp2 - Returns the smallest power of two that is equal to or bigger than n, but never bigger than limit.
// A value of n below 1 returns 1.
//   - n is the requested size
//   - limit is the max value to return, it must itself be a power of two
func RoundUp2(n, limit int) int {
	if n >= limit {
		return limit
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Nilable - Returns true if values of type T can be nil, i.e. T is a pointer, interface, map, slice, channel or func.
func Nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// IsPointer - Returns true if T is a pointer type, for which identity comparison is cheap and well-defined.
func IsPointer[T any]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Pointer
}

// IsNil - Returns true if v is the nil value of T.
// For interface types only the nil interface counts, an interface holding a typed nil pointer is not nil.
func IsNil[T any](v T) bool {
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return any(v) == nil
	}

	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Equal - Returns true if a and b are equal. Values that are comparable all the way down are compared with ==,
// everything else (slices, maps, funcs, or structs and interfaces holding them) with reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	if reflect.ValueOf(x).Comparable() && reflect.ValueOf(y).Comparable() {
		return x == y
	}

	return reflect.DeepEqual(x, y)
}
