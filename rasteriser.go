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
	"seehuhn.de/go/geom/rect"
)

// Rasteriser draws lines and triangles given in pixel coordinates.
//
// The caller creates one instance and reuses it for many primitives.
// A Rasteriser is not safe for concurrent use, but several Rasterisers with
// disjoint clip rectangles may draw into the same Target concurrently.
type Rasteriser struct {
	// Clip restricts output to this rectangle in pixel coordinates.
	// The rectangle is intersected with the bounds of the target; the
	// zero rectangle means "the whole target".
	// Coordinates must be integer-aligned; URx and URy are exclusive.
	Clip rect.Rect

	// Tolerance is the smallest magnitude of the barycentric denominator
	// (twice the signed screen-space area of a triangle) for which the
	// triangle is drawn. Triangles below the tolerance are degenerate and
	// produce no output. The default suits integer pixel coordinates;
	// coordinates on a finer scale need a smaller value.
	Tolerance float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// default values for other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:      clip,
		Tolerance: defaultTolerance,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Tolerance = defaultTolerance
}

// bounds returns the inclusive pixel range where drawing into dst is
// allowed.
func (r *Rasteriser) bounds(dst Target) (xMin, xMax, yMin, yMax int, ok bool) {
	xMin, yMin = 0, 0
	xMax, yMax = dst.Width()-1, dst.Height()-1
	if r.Clip != (rect.Rect{}) {
		xMin = max(xMin, int(r.Clip.LLx))
		yMin = max(yMin, int(r.Clip.LLy))
		xMax = min(xMax, int(r.Clip.URx)-1)
		yMax = min(yMax, int(r.Clip.URy)-1)
	}
	if xMin > xMax || yMin > yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Numerical tolerances for the rasteriser.
const (
	// defaultTolerance is the default value for Rasteriser.Tolerance.
	// It was tuned for vertices which have been rounded to integer pixel
	// positions, where any non-degenerate triangle has a denominator of
	// magnitude at least 1.
	defaultTolerance = 1e-2
)
