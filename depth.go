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
	"math"
)

// DepthBuffer stores one depth value per pixel.
//
// Larger values are closer to the viewer. A freshly allocated or reset
// buffer holds -Inf everywhere, so that the first fragment drawn at any
// pixel always passes the depth test.
type DepthBuffer struct {
	width, height int
	z             []float64
}

// NewDepthBuffer allocates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		width:  width,
		height: height,
		z:      make([]float64, width*height),
	}
	d.Reset()
	return d
}

// Width returns the width of the buffer in pixels.
func (d *DepthBuffer) Width() int { return d.width }

// Height returns the height of the buffer in pixels.
func (d *DepthBuffer) Height() int { return d.height }

// Reset sets every depth value to -Inf.
func (d *DepthBuffer) Reset() {
	inf := math.Inf(-1)
	for i := range d.z {
		d.z[i] = inf
	}
}

// At returns the depth stored for pixel (x, y).
// It panics if (x, y) lies outside the buffer.
func (d *DepthBuffer) At(x, y int) float64 {
	return d.z[d.offset(x, y)]
}

// Set stores the depth z for pixel (x, y).
// It panics if (x, y) lies outside the buffer.
func (d *DepthBuffer) Set(x, y int, z float64) {
	d.z[d.offset(x, y)] = z
}

func (d *DepthBuffer) offset(x, y int) int {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		panic(fmt.Sprintf("render3d: pixel (%d,%d) outside %dx%d depth buffer",
			x, y, d.width, d.height))
	}
	return y*d.width + x
}

// Image returns a grayscale picture of the buffer.
// The nearest depth maps to white, the farthest to black, and pixels
// never written stay black.
func (d *DepthBuffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, d.width, d.height))

	zMin, zMax := math.Inf(1), math.Inf(-1)
	for _, z := range d.z {
		if math.IsInf(z, 0) {
			continue
		}
		zMin = min(zMin, z)
		zMax = max(zMax, z)
	}
	if zMin > zMax {
		return img
	}
	// Written pixels use 1..255, so that they stay distinguishable from
	// the background.
	scale := 0.0
	if zMax > zMin {
		scale = 254 / (zMax - zMin)
	} else {
		zMin -= 1
		scale = 254
	}

	for y := range d.height {
		row := img.Pix[y*img.Stride:]
		for x, z := range d.z[y*d.width : (y+1)*d.width] {
			if math.IsInf(z, 0) {
				continue
			}
			row[x] = uint8(1 + math.Round((z-zMin)*scale))
		}
	}
	return img
}
