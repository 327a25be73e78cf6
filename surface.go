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
)

// Target is a pixel grid which the rasteriser can draw into.
//
// Set is only called with coordinates inside the grid.
type Target interface {
	Width() int
	Height() int
	Set(x, y int, c color.NRGBA)
}

// Surface is an RGBA pixel buffer.
//
// While drawing, (0,0) is the pixel at the start of the first row.
// Use FlipVertically before saving if the first row should end up at the
// bottom of the image.
type Surface struct {
	img *image.NRGBA
}

// NewSurface allocates a Surface with all pixels transparent black.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Set sets the color of a single pixel.
// It panics if (x, y) lies outside the surface.
func (s *Surface) Set(x, y int, c color.NRGBA) {
	s.check(x, y)
	i := s.img.PixOffset(x, y)
	pix := s.img.Pix[i : i+4 : i+4]
	pix[0] = c.R
	pix[1] = c.G
	pix[2] = c.B
	pix[3] = c.A
}

// Get returns the color of a single pixel.
// It panics if (x, y) lies outside the surface.
func (s *Surface) Get(x, y int) color.NRGBA {
	s.check(x, y)
	return s.img.NRGBAAt(x, y)
}

func (s *Surface) check(x, y int) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		panic(fmt.Sprintf("render3d: pixel (%d,%d) outside %dx%d surface",
			x, y, s.Width(), s.Height()))
	}
}

// Clear sets every pixel to c.
func (s *Surface) Clear(c color.NRGBA) {
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// FlipVertically reverses the order of the rows in place.
func (s *Surface) FlipVertically() {
	h := s.Height()
	stride := s.img.Stride
	rowLen := 4 * s.Width()
	tmp := make([]byte, rowLen)
	for y := range h / 2 {
		top := s.img.Pix[y*stride : y*stride+rowLen]
		bot := s.img.Pix[(h-1-y)*stride : (h-1-y)*stride+rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// Image returns the pixel data as an image, sharing storage with s.
// The result can be passed to any image encoder.
func (s *Surface) Image() *image.NRGBA {
	return s.img
}
