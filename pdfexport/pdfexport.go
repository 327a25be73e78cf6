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


// Package pdfexport writes projected triangle meshes as vector graphics.
//
// The output shows the same scene as a raster rendering, but visibility is
// resolved by drawing the triangles from back to front instead of using a
// depth buffer. For meshes where triangles intersect, the two renditions
// can differ.
package pdfexport

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/render3d"
)

// wireframeLineWidth is the stroke width for triangle edges, in pixels.
const wireframeLineWidth = 1

// Write creates a single-page PDF file showing the triangles tris on a
// black width×height page. The coordinates of tris are pixel positions as
// returned by render3d.Project; one pixel corresponds to one PDF point.
//
// In flat mode each triangle is filled with a gray level equal to its
// intensity. In wireframe mode the edges are stroked in white.
func Write(fname string, width, height int, tris []render3d.ScreenTriangle, mode render3d.Mode) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// Pixel (x, y) covers the unit square with lower-left corner (x, y),
	// and is set when its corner lies inside a triangle. Shift the
	// vertices to the centre of their pixels.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})

	if mode == render3d.ModeWireframe {
		page.SetStrokeColor(color.DeviceGray(1))
		page.SetLineWidth(wireframeLineWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
	}

	for _, t := range backToFront(tris) {
		if mode != render3d.ModeWireframe {
			page.SetFillColor(color.DeviceGray(max(0, min(1, t.Intensity))))
		}
		for cmd, pts := range outline(t) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		if mode == render3d.ModeWireframe {
			page.Stroke()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}

// backToFront returns a copy of tris, sorted so that the triangle with the
// smallest mean depth (farthest from the viewer) comes first.
// Triangles at equal depth keep their order.
func backToFront(tris []render3d.ScreenTriangle) []render3d.ScreenTriangle {
	sorted := slices.Clone(tris)
	slices.SortStableFunc(sorted, func(a, b render3d.ScreenTriangle) int {
		return cmp.Compare(meanDepth(a), meanDepth(b))
	})
	return sorted
}

func meanDepth(t render3d.ScreenTriangle) float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// outline returns the closed boundary of t, projected to the x-y plane.
func outline(t render3d.ScreenTriangle) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, p := range t.P {
			buf[0] = vec.Vec2{X: p.X, Y: p.Y}
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
