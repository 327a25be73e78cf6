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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/render3d/linalg"
)

// Viewport maps normalized coordinates to pixel coordinates.
//
// Normalized coordinates range over [-1, 1] in x and y. The mapping is
// orthographic: depth is passed through unchanged.
type Viewport struct {
	Width, Height int

	// M is the affine map from normalized x-y coordinates to pixel
	// coordinates, before rounding.
	M matrix.Matrix
}

// NewViewport returns the viewport which maps the square [-1,1]×[-1,1] onto
// a width×height pixel grid: x ↦ (x+1)·width/2 and y ↦ (y+1)·height/2.
func NewViewport(width, height int) Viewport {
	w := float64(width) / 2
	h := float64(height) / 2
	return Viewport{
		Width:  width,
		Height: height,
		M:      matrix.Scale(w, h).Translate(w, h),
	}
}

// Map converts p to pixel coordinates. X and Y are rounded to the nearest
// integer, Z is copied unchanged.
func (v Viewport) Map(p linalg.Vec3[float64]) linalg.Vec3[float64] {
	x := v.M[0]*p.X + v.M[2]*p.Y + v.M[4]
	y := v.M[1]*p.X + v.M[3]*p.Y + v.M[5]
	return linalg.V3(math.Floor(x+0.5), math.Floor(y+0.5), p.Z)
}

// Point converts p to a pixel position, discarding depth.
func (v Viewport) Point(p linalg.Vec3[float64]) image.Point {
	q := v.Map(p)
	return image.Point{X: int(q.X), Y: int(q.Y)}
}

// Clip returns the pixel rectangle covered by the viewport.
func (v Viewport) Clip() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(v.Width),
		URy: float64(v.Height),
	}
}
