// SPDX-License-Identifier: MIT

package jagged

// Combine2 merges one element from each of two sources into a result value.
// It must be free of side effects; a non-nil error aborts the whole zip.
type Combine2[A, B, R any] func(a A, b B) (R, error)

// Combine3 merges one element from each of three sources into a result value.
type Combine3[A, B, C, R any] func(a A, b B, c C) (R, error)

// Mapper transforms a single element, possibly into another type.
type Mapper[T, U any] func(v T) (U, error)

// Predicate reports whether an element should be counted.
type Predicate[T any] func(v T) (bool, error)

// Op transforms a flat scratch slice in place (reorder, overwrite).
// The slice is owned by the engine for the duration of the call; its length
// is fixed, so the nested layout it is scattered back into always matches.
type Op[T any] func(flat []T) error

// Lift2 adapts an infallible two-argument function to Combine2.
func Lift2[A, B, R any](f func(A, B) R) Combine2[A, B, R] {
	return func(a A, b B) (R, error) { return f(a, b), nil }
}

// Lift3 adapts an infallible three-argument function to Combine3.
func Lift3[A, B, C, R any](f func(A, B, C) R) Combine3[A, B, C, R] {
	return func(a A, b B, c C) (R, error) { return f(a, b, c), nil }
}

// LiftMap adapts an infallible element transform to Mapper.
func LiftMap[T, U any](f func(T) U) Mapper[T, U] {
	return func(v T) (U, error) { return f(v), nil }
}

// LiftPredicate adapts an infallible predicate to Predicate.
func LiftPredicate[T any](f func(T) bool) Predicate[T] {
	return func(v T) (bool, error) { return f(v), nil }
}

// LiftOp adapts an infallible slice transform (e.g. slices.Sort) to Op.
func LiftOp[T any](f func([]T)) Op[T] {
	return func(flat []T) error {
		f(flat)
		return nil
	}
}
