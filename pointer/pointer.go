// Package pointer provides helpers for the pointer-typed optional fields used by DTOs.
package pointer

// From returns a pointer to a copy of t.
func From[T any](t T) *T {
	return &t
}

// FromNonZero returns a pointer to t, or nil when t is the zero value.
func FromNonZero[T comparable](t T) *T {
	var zero T
	if t == zero {
		return nil
	}
	return &t
}

// ValueOrZero returns the pointed-to value, or the zero value if v is nil.
func ValueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
