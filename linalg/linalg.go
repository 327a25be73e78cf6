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

// Package linalg implements small fixed-size vectors and square matrices
// over a generic scalar type.
//
// The dimension of every value is part of its type: Vec2, Vec3 and Vec4 for
// vectors, Mat1 to Mat4 for matrices. Each matrix row is a vector of the
// matching size. Only square matrices exist, so the determinant and the
// operations derived from it are always defined by construction.
//
// Integer instantiations use truncating division, exactly like the
// corresponding integer arithmetic.
package linalg

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types for vectors and matrices.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// ErrSingular is returned when a matrix without an inverse is inverted.
var ErrSingular = errors.New("linalg: matrix is singular")

// indexPanic reports an out-of-range component or row index.
func indexPanic(i int, kind string) {
	panic(fmt.Sprintf("linalg: index %d out of range for %s", i, kind))
}
