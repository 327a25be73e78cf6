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
	"image/color"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

// recorder is a Target which remembers all pixels set.
type recorder struct {
	w, h int
	pix  map[image.Point]color.NRGBA
	n    int // number of calls to Set
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, pix: make(map[image.Point]color.NRGBA)}
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) Set(x, y int, c color.NRGBA) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		panic("pixel outside target")
	}
	r.pix[image.Point{X: x, Y: y}] = c
	r.n++
}

// points returns the pixels set, in row-major order.
func (r *recorder) points() []image.Point {
	var res []image.Point
	for p := range r.pix {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b image.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return res
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func pts(xy ...int) []image.Point {
	var res []image.Point
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Point{X: xy[i], Y: xy[i+1]})
	}
	slices.SortFunc(res, func(a, b image.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return res
}

func TestLine(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"horizontal", 0, 2, 4, 2, pts(0, 2, 1, 2, 2, 2, 3, 2, 4, 2)},
		{"vertical", 3, 0, 3, 4, pts(3, 0, 3, 1, 3, 2, 3, 3, 3, 4)},
		{"diagonal", 0, 0, 4, 4, pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4)},
		{"anti_diagonal", 0, 4, 4, 0, pts(0, 4, 1, 3, 2, 2, 3, 1, 4, 0)},
		{"point", 2, 2, 2, 2, pts(2, 2)},
		{"shallow", 0, 0, 7, 3, pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2, 6, 3, 7, 3)},
		{"steep", 0, 0, 3, 7, pts(0, 0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5, 3, 6, 3, 7)},
	}

	r := NewRasteriser(rect.Rect{})
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, reverse := range []bool{false, true} {
				dst := newRecorder(8, 8)
				if reverse {
					r.Line(c.x1, c.y1, c.x0, c.y0, dst, white)
				} else {
					r.Line(c.x0, c.y0, c.x1, c.y1, dst, white)
				}
				got := dst.points()
				if !slices.Equal(got, c.want) {
					t.Errorf("reverse=%t: got %v, want %v", reverse, got, c.want)
				}
				if dst.n != len(c.want) {
					t.Errorf("reverse=%t: %d calls to Set, want %d", reverse, dst.n, len(c.want))
				}
			}
		})
	}
}

// TestLineNoGaps checks that every line has exactly one pixel per step
// along its longer axis, and that consecutive pixels touch.
func TestLineNoGaps(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	for x1 := 0; x1 < 16; x1++ {
		for y1 := 0; y1 < 16; y1++ {
			dst := newRecorder(16, 16)
			r.Line(0, 0, x1, y1, dst, white)

			want := max(x1, y1) + 1
			if len(dst.pix) != want {
				t.Errorf("(0,0)-(%d,%d): %d pixels, want %d", x1, y1, len(dst.pix), want)
			}
			if _, ok := dst.pix[image.Point{X: x1, Y: y1}]; !ok {
				t.Errorf("(0,0)-(%d,%d): end point not drawn", x1, y1)
			}
			for p := range dst.pix {
				if p == (image.Point{}) {
					continue
				}
				hasNeighbour := false
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						q := image.Point{X: p.X + dx, Y: p.Y + dy}
						if q != p && dst.pix[q] == white {
							hasNeighbour = true
						}
					}
				}
				if !hasNeighbour {
					t.Errorf("(0,0)-(%d,%d): isolated pixel %v", x1, y1, p)
				}
			}
		}
	}
}

func TestLineClip(t *testing.T) {
	dst := newRecorder(8, 8)
	r := NewRasteriser(rect.Rect{})
	r.Line(-5, 3, 20, 3, dst, white)
	if len(dst.pix) != 8 {
		t.Errorf("unclipped: got %d pixels, want 8", len(dst.pix))
	}

	dst = newRecorder(8, 8)
	r.Reset(rect.Rect{LLx: 2, LLy: 0, URx: 5, URy: 8})
	r.Line(-5, 3, 20, 3, dst, white)
	want := pts(2, 3, 3, 3, 4, 3)
	if got := dst.points(); !slices.Equal(got, want) {
		t.Errorf("clipped: got %v, want %v", got, want)
	}

	dst = newRecorder(8, 8)
	r.Reset(rect.Rect{LLx: 2, LLy: 4, URx: 5, URy: 8})
	r.Line(-5, 3, 20, 3, dst, white)
	if len(dst.pix) != 0 {
		t.Errorf("outside clip: got %d pixels, want 0", len(dst.pix))
	}
}
