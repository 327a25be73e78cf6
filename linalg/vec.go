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

import "math"

// Vec2 is a 2-element vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// Vec3 is a 3-element vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vec4 is a 4-element vector.
// W is the homogeneous coordinate when the vector represents a point.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// V3 returns the vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// V4 returns the vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// ---------------------------------------------------------------------------
// Vec2

// At returns component i (0=X, 1=Y).
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	indexPanic(i, "Vec2")
	return 0
}

// SetAt sets component i (0=X, 1=Y).
func (v *Vec2[T]) SetAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		indexPanic(i, "Vec2")
	}
}

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }

// Mul returns v scaled by s.
func (v Vec2[T]) Mul(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div returns v with every component divided by s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Dot returns the scalar product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.Y*w.Y + v.X*w.X }

// Embed3 lifts v to three dimensions, setting Z to fill.
func (v Vec2[T]) Embed3(fill T) Vec3[T] { return Vec3[T]{v.X, v.Y, fill} }

// Embed4 lifts v to four dimensions, setting Z and W to fill.
func (v Vec2[T]) Embed4(fill T) Vec4[T] { return Vec4[T]{v.X, v.Y, fill, fill} }

// ---------------------------------------------------------------------------
// Vec3

// At returns component i (0=X, 1=Y, 2=Z).
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	indexPanic(i, "Vec3")
	return 0
}

// SetAt sets component i (0=X, 1=Y, 2=Z).
func (v *Vec3[T]) SetAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		indexPanic(i, "Vec3")
	}
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Mul returns v scaled by s.
func (v Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div returns v with every component divided by s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.Z*w.Z + v.Y*w.Y + v.X*w.X }

// Cross returns the vector product v × w.
// The result is zero if and only if v and w are collinear.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// IsZero reports whether all components of v are zero.
func (v Vec3[T]) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Norm returns the Euclidean length of v.
func (v Vec3[T]) Norm() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Normalize returns v scaled to unit length.
func (v Vec3[T]) Normalize() Vec3[T] { return v.NormalizeTo(1) }

// NormalizeTo returns v scaled to length l.
// The zero vector has no direction and is returned unchanged.
func (v Vec3[T]) NormalizeTo(l float64) Vec3[T] {
	n := v.Norm()
	if n == 0 {
		return v
	}
	f := l / n
	return Vec3[T]{T(float64(v.X) * f), T(float64(v.Y) * f), T(float64(v.Z) * f)}
}

// Embed4 lifts v to four dimensions, setting W to fill.
// Use fill=1 to turn a point into homogeneous coordinates.
func (v Vec3[T]) Embed4(fill T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, fill} }

// Proj2 drops the Z component.
func (v Vec3[T]) Proj2() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// ---------------------------------------------------------------------------
// Vec4

// At returns component i (0=X, 1=Y, 2=Z, 3=W).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	indexPanic(i, "Vec4")
	return 0
}

// SetAt sets component i (0=X, 1=Y, 2=Z, 3=W).
func (v *Vec4[T]) SetAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		indexPanic(i, "Vec4")
	}
}

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Mul returns v scaled by s.
func (v Vec4[T]) Mul(s T) Vec4[T] { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Div returns v with every component divided by s.
func (v Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the scalar product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T { return v.W*w.W + v.Z*w.Z + v.Y*w.Y + v.X*w.X }

// Proj3 drops the W component.
func (v Vec4[T]) Proj3() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// Proj2 keeps only the X and Y components.
func (v Vec4[T]) Proj2() Vec2[T] { return Vec2[T]{v.X, v.Y} }
