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


package testcases

import (
	"math"

	"seehuhn.de/go/render3d/linalg"
)

var solidCases = []TestCase{
	{
		Name:   "cube_front",
		OBJ:    cube,
		Width:  64,
		Height: 64,
	},
	{
		Name:      "cube_rotated",
		OBJ:       cube,
		Width:     128,
		Height:    128,
		Transform: tilt,
	},
	{
		Name:   "tetrahedron",
		OBJ:    tetrahedron,
		Width:  128,
		Height: 128,
	},
	{
		Name:      "octahedron_rotated",
		OBJ:       octahedron,
		Width:     128,
		Height:    128,
		Transform: tilt,
	},
	{
		Name:      "cube_scaled",
		OBJ:       cube,
		Width:     128,
		Height:    64,
		Transform: linalg.Scale4(1.5, 1.0, 1.0).Mul(tilt),
	},
}

// tilt rotates a model so that three faces of a cube are visible.
var tilt = linalg.RotateX4[float64](math.Pi / 8).Mul(linalg.RotateY4[float64](math.Pi / 6))

// cube is an axis-aligned cube with edge length 1. All faces are wound
// counter-clockwise when seen from outside.
const cube = `
v -0.5 -0.5  0.5
v  0.5 -0.5  0.5
v  0.5  0.5  0.5
v -0.5  0.5  0.5
v -0.5 -0.5 -0.5
v  0.5 -0.5 -0.5
v  0.5  0.5 -0.5
v -0.5  0.5 -0.5
f 1 2 3 4
f 6 5 8 7
f 2 6 7 3
f 5 1 4 8
f 4 3 7 8
f 5 6 2 1
`

const tetrahedron = `
v  0.0  0.7  0.0
v -0.6 -0.4  0.35
v  0.6 -0.4  0.35
v  0.0 -0.4 -0.7
f 2 3 1
f 4 3 2
f 1 4 2
f 1 3 4
`

const octahedron = `
v  0.7  0.0  0.0
v -0.7  0.0  0.0
v  0.0  0.7  0.0
v  0.0 -0.7  0.0
v  0.0  0.0  0.7
v  0.0  0.0 -0.7
f 1 3 5
f 2 5 3
f 1 5 4
f 1 6 3
f 2 4 5
f 2 3 6
f 1 4 6
f 2 6 4
`
