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


// Package testcases defines 3D scenes used by the tests, benchmarks and
// tools of the render3d module.
package testcases

import (
	"image/color"
	"strings"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/linalg"
	"seehuhn.de/go/render3d/obj"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name      string               // lowercase a-z and _ only
	OBJ       string               // the mesh, in Wavefront OBJ format
	Width     int                  // canvas width in pixels
	Height    int                  // canvas height in pixels
	Mode      render3d.Mode        // flat or wireframe
	Transform linalg.Mat4[float64] // model transformation (zero-value means no transform)
}

// Mesh parses the OBJ text of the test case.
// It panics if the text is malformed.
func (tc TestCase) Mesh() *obj.Model {
	m, err := obj.Parse(strings.NewReader(tc.OBJ))
	if err != nil {
		panic("testcases: " + tc.Name + ": " + err.Error())
	}
	return m
}

// Options returns the render options for the test case.
// Meshes are drawn in white, lit from the viewer.
func (tc TestCase) Options() *render3d.Options {
	opt := render3d.DefaultOptions()
	opt.Mode = tc.Mode
	opt.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if tc.Transform != (linalg.Mat4[float64]{}) {
		opt.Transform = tc.Transform
	}
	return opt
}
