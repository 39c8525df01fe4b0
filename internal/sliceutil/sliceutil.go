// Package sliceutil holds small generic slice helpers.
package sliceutil

// Map returns fn applied to every element of slice. A nil slice maps to an empty, non-nil slice.
func Map[T any, U any](slice []T, fn func(T) U) []U {
	mapped := make([]U, len(slice))
	for i, elem := range slice {
		mapped[i] = fn(elem)
	}
	return mapped
}

// Boxed returns the elements of slice as values of type any.
func Boxed[T any](slice []T) []any {
	return Map(slice, func(e T) any { return e })
}
