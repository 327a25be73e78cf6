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

package render3d

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/render3d/linalg"
)

// ShadeFunc computes the color of pixel (x, y) inside a triangle.
// bc holds the barycentric weights of the pixel with respect to the three
// vertices; all weights are non-negative and sum to one.
type ShadeFunc func(x, y int, bc linalg.Vec3[float64]) color.NRGBA

// Triangle fills the triangle with vertices pts using the color c.
// The X and Y coordinates of the vertices are pixel positions and Z is
// depth, larger values being closer to the viewer.
//
// A pixel is written only if its interpolated depth is strictly greater
// than the value stored in zbuf, in which case zbuf is updated as well.
// Because of this, the image does not depend on the order in which
// triangles are drawn. If zbuf is nil, no depth test is performed.
//
// The return value is the number of pixels written.
func (r *Rasteriser) Triangle(pts [3]linalg.Vec3[float64], zbuf *DepthBuffer, dst Target, c color.NRGBA) int {
	return r.TriangleFunc(pts, zbuf, dst, func(int, int, linalg.Vec3[float64]) color.NRGBA {
		return c
	})
}

// Triangle2D fills a triangle in the image plane, without depth testing.
//
// This is the special case of Triangle where all vertices have depth zero
// and there is no depth buffer.
func (r *Rasteriser) Triangle2D(pts [3]image.Point, dst Target, c color.NRGBA) int {
	var p3 [3]linalg.Vec3[float64]
	for i, p := range pts {
		p3[i] = linalg.V3(float64(p.X), float64(p.Y), 0)
	}
	return r.Triangle(p3, nil, dst, c)
}

// TriangleFunc is like Triangle, but calls shade to compute the color of
// every pixel which passes the depth test.
func (r *Rasteriser) TriangleFunc(pts [3]linalg.Vec3[float64], zbuf *DepthBuffer, dst Target, shade ShadeFunc) int {
	if zbuf != nil && (zbuf.Width() != dst.Width() || zbuf.Height() != dst.Height()) {
		panic(fmt.Sprintf("render3d: %dx%d depth buffer used with %dx%d target",
			zbuf.Width(), zbuf.Height(), dst.Width(), dst.Height()))
	}

	xMin, xMax, yMin, yMax, ok := r.bounds(dst)
	if !ok {
		return 0
	}

	a, b, c := pts[0], pts[1], pts[2]

	// The barycentric denominator is twice the signed area of the triangle
	// and does not depend on the pixel. Check it once.
	area2 := math.Abs((c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y))
	if area2 < r.Tolerance || math.IsNaN(area2) {
		return 0
	}

	// bounding box, clamped to the clip region
	bxMin := max(xMin, int(math.Floor(min(a.X, b.X, c.X))))
	bxMax := min(xMax, int(math.Floor(max(a.X, b.X, c.X))))
	byMin := max(yMin, int(math.Floor(min(a.Y, b.Y, c.Y))))
	byMax := min(yMax, int(math.Floor(max(a.Y, b.Y, c.Y))))

	count := 0
	for y := byMin; y <= byMax; y++ {
		for x := bxMin; x <= bxMax; x++ {
			bc, inside := barycentric(a, b, c, float64(x), float64(y), r.Tolerance)
			if !inside {
				continue
			}

			z := a.Z*bc.X + b.Z*bc.Y + c.Z*bc.Z
			if zbuf != nil {
				if !(z > zbuf.At(x, y)) {
					continue
				}
				zbuf.Set(x, y, z)
			}
			dst.Set(x, y, shade(x, y, bc))
			count++
		}
	}
	return count
}

// barycentric returns the barycentric weights of the point (px, py) with
// respect to the triangle abc, using only the X and Y coordinates of the
// vertices. The second return value is false if the point lies outside the
// triangle, or if the triangle is degenerate: the magnitude of the
// denominator is less than tol.
func barycentric(a, b, c linalg.Vec3[float64], px, py, tol float64) (linalg.Vec3[float64], bool) {
	sx := linalg.V3(c.X-a.X, b.X-a.X, a.X-px)
	sy := linalg.V3(c.Y-a.Y, b.Y-a.Y, a.Y-py)
	u := sx.Cross(sy)
	if d := math.Abs(u.Z); d < tol || math.IsNaN(d) {
		return linalg.Vec3[float64]{}, false
	}

	w := linalg.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z)
	if w.X < 0 || w.Y < 0 || w.Z < 0 {
		return w, false
	}
	return w, true
}
