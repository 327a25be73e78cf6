// seehuhn.de/go/render3d - a software 3D rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package linalg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Translate4 returns the affine transformation which moves points by (dx, dy, dz).
func Translate4[T constraints.Float](dx, dy, dz T) Mat4[T] {
	m := Identity4[T]()
	m.SetCol(3, Vec4[T]{dx, dy, dz, 1})
	return m
}

// Scale4 returns the affine transformation which scales the three axes
// independently.
func Scale4[T constraints.Float](sx, sy, sz T) Mat4[T] {
	return Mat4[T]{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// RotateX4 returns a rotation by the angle rad (in radians) about the x-axis.
func RotateX4[T constraints.Float](rad float64) Mat4[T] {
	s, c := math.Sincos(rad)
	sin, cos := T(s), T(c)
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotateY4 returns a rotation by the angle rad (in radians) about the y-axis.
func RotateY4[T constraints.Float](rad float64) Mat4[T] {
	s, c := math.Sincos(rad)
	sin, cos := T(s), T(c)
	return Mat4[T]{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ4 returns a rotation by the angle rad (in radians) about the z-axis.
func RotateZ4[T constraints.Float](rad float64) Mat4[T] {
	s, c := math.Sincos(rad)
	sin, cos := T(s), T(c)
	return Mat4[T]{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// TransformPoint applies the affine transformation m to the point p.
// The point is lifted to homogeneous coordinates with W=1 and the
// homogeneous coordinate of the result is dropped without division.
func TransformPoint[T Scalar](m Mat4[T], p Vec3[T]) Vec3[T] {
	return m.MulVec(p.Embed4(1)).Proj3()
}
