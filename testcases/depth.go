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

// depthCases contain overlapping geometry, where the output depends on the
// depth test.
var depthCases = []TestCase{
	// The same two quads, listed in both orders. The near quad faces the
	// viewer, the far quad is tilted and therefore darker.
	{
		Name:   "quads_near_first",
		OBJ:    nearQuad + farQuad + "f 1 2 3 4\nf 5 6 7 8\n",
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quads_far_first",
		OBJ:    nearQuad + farQuad + "f 5 6 7 8\nf 1 2 3 4\n",
		Width:  64,
		Height: 64,
	},
	{
		Name: "interpenetrating",
		OBJ: `
# z = 0.5x
v -0.8 -0.6 -0.4
v  0.8 -0.6  0.4
v  0.0  0.7  0.0
# z = 0.1 - 0.8x
v -0.8 -0.2  0.74
v  0.8 -0.2 -0.54
v  0.0  0.9  0.1
f 1 2 3
f 4 5 6
`,
		Width:  64,
		Height: 64,
	},
}

const nearQuad = `
v -0.8 -0.8 0.5
v  0.2 -0.8 0.5
v  0.2  0.2 0.5
v -0.8  0.2 0.5
`

// farQuad lies in the plane z = -0.2 - 0.5x.
const farQuad = `
v -0.2 -0.2 -0.1
v  0.8 -0.2 -0.6
v  0.8  0.8 -0.6
v -0.2  0.8 -0.1
`
