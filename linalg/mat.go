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

// Matrices are stored as arrays of row vectors: m[r] is row r, and
// m[r].At(c) is the element in row r, column c.
//
// The determinant is computed by cofactor expansion along the first row,
// recursing through the next smaller matrix type down to Mat1. Columns are
// summed from last to first.
//
// Adjugate returns the matrix of cofactors, entry (i,j) being Cofactor(i,j).
// Dividing it by its first row dotted with the first row of the matrix (this
// product equals the determinant) gives the inverse transpose; Invert
// transposes that result once more.

// Mat1 is a 1×1 matrix. It terminates the determinant recursion.
// The cofactor of its only element is the determinant of the empty
// matrix, which is 1.
type Mat1[T Scalar] [1][1]T

// Mat2 is a 2×2 matrix.
type Mat2[T Scalar] [2]Vec2[T]

// Mat3 is a 3×3 matrix.
type Mat3[T Scalar] [3]Vec3[T]

// Mat4 is a 4×4 matrix, typically an affine transformation acting on
// homogeneous coordinates.
type Mat4[T Scalar] [4]Vec4[T]

// cofactorSign applies the checkerboard sign pattern to a minor's determinant.
func cofactorSign[T Scalar](row, col int, d T) T {
	if (row+col)%2 != 0 {
		return -d
	}
	return d
}

// skip maps an index of a minor back to the index in the full matrix,
// omitting position k.
func skip(i, k int) int {
	if i < k {
		return i
	}
	return i + 1
}

func checkIndex(row, col, n int, kind string) {
	if row < 0 || row >= n {
		indexPanic(row, kind)
	}
	if col < 0 || col >= n {
		indexPanic(col, kind)
	}
}

// ---------------------------------------------------------------------------
// Mat1

// Identity1 returns the 1×1 identity matrix.
func Identity1[T Scalar]() Mat1[T] {
	return Mat1[T]{{1}}
}

// At returns the element in the given row and column.
func (m Mat1[T]) At(row, col int) T {
	checkIndex(row, col, 1, "Mat1")
	return m[0][0]
}

// Set sets the element in the given row and column.
func (m *Mat1[T]) Set(row, col int, x T) {
	checkIndex(row, col, 1, "Mat1")
	m[0][0] = x
}

// Transpose returns m.
func (m Mat1[T]) Transpose() Mat1[T] { return m }

// Mul returns the matrix product m·o.
func (m Mat1[T]) Mul(o Mat1[T]) Mat1[T] {
	return Mat1[T]{{m[0][0] * o[0][0]}}
}

// Div returns m with its element divided by s.
func (m Mat1[T]) Div(s T) Mat1[T] {
	return Mat1[T]{{m[0][0] / s}}
}

// Det returns the single element of m.
func (m Mat1[T]) Det() T { return m[0][0] }

// Adjugate returns the matrix of cofactors of m, which is always {{1}}.
func (m Mat1[T]) Adjugate() Mat1[T] {
	return Identity1[T]()
}

// InvertTranspose returns the transpose of the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat1[T]) InvertTranspose() (Mat1[T], error) {
	d := m.Det()
	if d == 0 {
		return Mat1[T]{}, ErrSingular
	}
	return m.Adjugate().Div(d), nil
}

// Invert returns the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat1[T]) Invert() (Mat1[T], error) {
	it, err := m.InvertTranspose()
	if err != nil {
		return Mat1[T]{}, err
	}
	return it.Transpose(), nil
}

// ---------------------------------------------------------------------------
// Mat2

// Identity2 returns the 2×2 identity matrix.
func Identity2[T Scalar]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// At returns the element in the given row and column.
func (m Mat2[T]) At(row, col int) T { return m[row].At(col) }

// Set sets the element in the given row and column.
func (m *Mat2[T]) Set(row, col int, x T) { m[row].SetAt(col, x) }

// Col returns column j.
func (m Mat2[T]) Col(j int) Vec2[T] {
	return Vec2[T]{m[0].At(j), m[1].At(j)}
}

// SetCol replaces column j by v.
func (m *Mat2[T]) SetCol(j int, v Vec2[T]) {
	m[0].SetAt(j, v.X)
	m[1].SetAt(j, v.Y)
}

// Transpose returns the transpose of m.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m.Col(0), m.Col(1)}
}

// Mul returns the matrix product m·o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var res Mat2[T]
	for i := range 2 {
		for j := range 2 {
			res[i].SetAt(j, m[i].Dot(o.Col(j)))
		}
	}
	return res
}

// MulVec returns the matrix-vector product m·v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{m[0].Dot(v), m[1].Dot(v)}
}

// Div returns m with every element divided by s.
func (m Mat2[T]) Div(s T) Mat2[T] {
	return Mat2[T]{m[0].Div(s), m[1].Div(s)}
}

// Minor returns the 1×1 matrix left after deleting the given row and column.
func (m Mat2[T]) Minor(row, col int) Mat1[T] {
	checkIndex(row, col, 2, "Mat2")
	return Mat1[T]{{m[1-row].At(1 - col)}}
}

// Cofactor returns the signed determinant of Minor(row, col).
func (m Mat2[T]) Cofactor(row, col int) T {
	return cofactorSign(row, col, m.Minor(row, col).Det())
}

// Det returns the determinant of m.
func (m Mat2[T]) Det() T {
	var res T
	for j := 1; j >= 0; j-- {
		res += m[0].At(j) * m.Cofactor(0, j)
	}
	return res
}

// Adjugate returns the matrix of cofactors of m.
func (m Mat2[T]) Adjugate() Mat2[T] {
	var res Mat2[T]
	for i := range 2 {
		for j := range 2 {
			res[i].SetAt(j, m.Cofactor(i, j))
		}
	}
	return res
}

// InvertTranspose returns the transpose of the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat2[T]) InvertTranspose() (Mat2[T], error) {
	adj := m.Adjugate()
	d := adj[0].Dot(m[0])
	if d == 0 {
		return Mat2[T]{}, ErrSingular
	}
	return adj.Div(d), nil
}

// Invert returns the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat2[T]) Invert() (Mat2[T], error) {
	it, err := m.InvertTranspose()
	if err != nil {
		return Mat2[T]{}, err
	}
	return it.Transpose(), nil
}

// ---------------------------------------------------------------------------
// Mat3

// Identity3 returns the 3×3 identity matrix.
func Identity3[T Scalar]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// At returns the element in the given row and column.
func (m Mat3[T]) At(row, col int) T { return m[row].At(col) }

// Set sets the element in the given row and column.
func (m *Mat3[T]) Set(row, col int, x T) { m[row].SetAt(col, x) }

// Col returns column j.
func (m Mat3[T]) Col(j int) Vec3[T] {
	return Vec3[T]{m[0].At(j), m[1].At(j), m[2].At(j)}
}

// SetCol replaces column j by v.
func (m *Mat3[T]) SetCol(j int, v Vec3[T]) {
	m[0].SetAt(j, v.X)
	m[1].SetAt(j, v.Y)
	m[2].SetAt(j, v.Z)
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m.Col(0), m.Col(1), m.Col(2)}
}

// Mul returns the matrix product m·o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var res Mat3[T]
	for i := range 3 {
		for j := range 3 {
			res[i].SetAt(j, m[i].Dot(o.Col(j)))
		}
	}
	return res
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Div returns m with every element divided by s.
func (m Mat3[T]) Div(s T) Mat3[T] {
	return Mat3[T]{m[0].Div(s), m[1].Div(s), m[2].Div(s)}
}

// Minor returns the 2×2 matrix left after deleting the given row and column.
func (m Mat3[T]) Minor(row, col int) Mat2[T] {
	checkIndex(row, col, 3, "Mat3")
	var res Mat2[T]
	for i := range 2 {
		for j := range 2 {
			res[i].SetAt(j, m[skip(i, row)].At(skip(j, col)))
		}
	}
	return res
}

// Cofactor returns the signed determinant of Minor(row, col).
func (m Mat3[T]) Cofactor(row, col int) T {
	return cofactorSign(row, col, m.Minor(row, col).Det())
}

// Det returns the determinant of m.
func (m Mat3[T]) Det() T {
	var res T
	for j := 2; j >= 0; j-- {
		res += m[0].At(j) * m.Cofactor(0, j)
	}
	return res
}

// Adjugate returns the matrix of cofactors of m.
func (m Mat3[T]) Adjugate() Mat3[T] {
	var res Mat3[T]
	for i := range 3 {
		for j := range 3 {
			res[i].SetAt(j, m.Cofactor(i, j))
		}
	}
	return res
}

// InvertTranspose returns the transpose of the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat3[T]) InvertTranspose() (Mat3[T], error) {
	adj := m.Adjugate()
	d := adj[0].Dot(m[0])
	if d == 0 {
		return Mat3[T]{}, ErrSingular
	}
	return adj.Div(d), nil
}

// Invert returns the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat3[T]) Invert() (Mat3[T], error) {
	it, err := m.InvertTranspose()
	if err != nil {
		return Mat3[T]{}, err
	}
	return it.Transpose(), nil
}

// ---------------------------------------------------------------------------
// Mat4

// Identity4 returns the 4×4 identity matrix.
func Identity4[T Scalar]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// At returns the element in the given row and column.
func (m Mat4[T]) At(row, col int) T { return m[row].At(col) }

// Set sets the element in the given row and column.
func (m *Mat4[T]) Set(row, col int, x T) { m[row].SetAt(col, x) }

// Col returns column j.
func (m Mat4[T]) Col(j int) Vec4[T] {
	return Vec4[T]{m[0].At(j), m[1].At(j), m[2].At(j), m[3].At(j)}
}

// SetCol replaces column j by v.
func (m *Mat4[T]) SetCol(j int, v Vec4[T]) {
	m[0].SetAt(j, v.X)
	m[1].SetAt(j, v.Y)
	m[2].SetAt(j, v.Z)
	m[3].SetAt(j, v.W)
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Col(0), m.Col(1), m.Col(2), m.Col(3)}
}

// Mul returns the matrix product m·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var res Mat4[T]
	for i := range 4 {
		for j := range 4 {
			res[i].SetAt(j, m[i].Dot(o.Col(j)))
		}
	}
	return res
}

// MulVec returns the matrix-vector product m·v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// Div returns m with every element divided by s.
func (m Mat4[T]) Div(s T) Mat4[T] {
	return Mat4[T]{m[0].Div(s), m[1].Div(s), m[2].Div(s), m[3].Div(s)}
}

// Minor returns the 3×3 matrix left after deleting the given row and column.
func (m Mat4[T]) Minor(row, col int) Mat3[T] {
	checkIndex(row, col, 4, "Mat4")
	var res Mat3[T]
	for i := range 3 {
		for j := range 3 {
			res[i].SetAt(j, m[skip(i, row)].At(skip(j, col)))
		}
	}
	return res
}

// Cofactor returns the signed determinant of Minor(row, col).
func (m Mat4[T]) Cofactor(row, col int) T {
	return cofactorSign(row, col, m.Minor(row, col).Det())
}

// Det returns the determinant of m.
func (m Mat4[T]) Det() T {
	var res T
	for j := 3; j >= 0; j-- {
		res += m[0].At(j) * m.Cofactor(0, j)
	}
	return res
}

// Adjugate returns the matrix of cofactors of m.
func (m Mat4[T]) Adjugate() Mat4[T] {
	var res Mat4[T]
	for i := range 4 {
		for j := range 4 {
			res[i].SetAt(j, m.Cofactor(i, j))
		}
	}
	return res
}

// InvertTranspose returns the transpose of the inverse of m.
// This is the matrix which transforms surface normals when m transforms
// points. If m is singular, ErrSingular is returned.
func (m Mat4[T]) InvertTranspose() (Mat4[T], error) {
	adj := m.Adjugate()
	d := adj[0].Dot(m[0])
	if d == 0 {
		return Mat4[T]{}, ErrSingular
	}
	return adj.Div(d), nil
}

// Invert returns the inverse of m.
// If m is singular, ErrSingular is returned.
func (m Mat4[T]) Invert() (Mat4[T], error) {
	it, err := m.InvertTranspose()
	if err != nil {
		return Mat4[T]{}, err
	}
	return it.Transpose(), nil
}
