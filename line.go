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

import "image/color"

// Line draws the segment from (x0, y0) to (x1, y1), both end points
// included, using Bresenham's algorithm.
//
// Exactly one pixel is drawn for every step along the longer axis, so
// lines have no gaps whatever their slope. Pixels outside the clip
// rectangle are skipped.
func (r *Rasteriser) Line(x0, y0, x1, y1 int, dst Target, c color.NRGBA) {
	xMin, xMax, yMin, yMax, ok := r.bounds(dst)
	if !ok {
		return
	}

	// Iterate along x. Steep lines are drawn transposed.
	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	derror2 := abs(dy) * 2
	error2 := 0
	yStep := 1
	if y1 < y0 {
		yStep = -1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}
		if px >= xMin && px <= xMax && py >= yMin && py <= yMax {
			dst.Set(px, py, c)
		}

		error2 += derror2
		if error2 > dx {
			y += yStep
			error2 -= dx * 2
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
