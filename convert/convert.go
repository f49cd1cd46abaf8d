// SPDX-License-Identifier: MIT

package convert

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ragged/jagged"
)

// Number is every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// numeric returns the infallible element rule F → T.
func numeric[T, F Number]() jagged.Mapper[F, T] {
	return jagged.LiftMap(func(v F) T { return T(v) })
}

// nonZero returns the infallible element rule F → bool (v != 0).
func nonZero[F Number]() jagged.Mapper[F, bool] {
	return jagged.LiftMap(func(v F) bool { return v != 0 })
}

// must discards the error of a mapping whose element rule cannot fail.
func must[S any](s S, _ error) S { return s }

// To converts every element of s to T.
func To[T, F Number](s []F) []T {
	return must(jagged.Map(s, numeric[T, F]()))
}

// To2D converts every leaf element of s to T, preserving absent rows.
func To2D[T, F Number](s [][]F) [][]T {
	return must(jagged.Map2D(s, numeric[T, F]()))
}

// To3D converts every leaf element of s to T, preserving absent rows.
func To3D[T, F Number](s [][][]F) [][][]T {
	return must(jagged.Map3D(s, numeric[T, F]()))
}

// ToInt converts s to []int (floats truncate toward zero).
func ToInt[F Number](s []F) []int { return To[int](s) }

// ToInt2D converts s to [][]int.
func ToInt2D[F Number](s [][]F) [][]int { return To2D[int](s) }

// ToInt3D converts s to [][][]int.
func ToInt3D[F Number](s [][][]F) [][][]int { return To3D[int](s) }

// ToFloat converts s to []float64.
func ToFloat[F Number](s []F) []float64 { return To[float64](s) }

// ToFloat2D converts s to [][]float64.
func ToFloat2D[F Number](s [][]F) [][]float64 { return To2D[float64](s) }

// ToFloat3D converts s to [][][]float64.
func ToFloat3D[F Number](s [][][]F) [][][]float64 { return To3D[float64](s) }

// ToBool maps every element of s to v != 0.
func ToBool[F Number](s []F) []bool {
	return must(jagged.Map(s, nonZero[F]()))
}

// ToBool2D maps every leaf element of s to v != 0.
func ToBool2D[F Number](s [][]F) [][]bool {
	return must(jagged.Map2D(s, nonZero[F]()))
}

// ToBool3D maps every leaf element of s to v != 0.
func ToBool3D[F Number](s [][][]F) [][][]bool {
	return must(jagged.Map3D(s, nonZero[F]()))
}
