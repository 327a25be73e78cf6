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

// basicCases contain single triangles and simple polygons in the plane
// z = 0, facing the viewer.
var basicCases = []TestCase{
	{
		Name: "triangle",
		OBJ: `
v -0.5 -0.5 0
v  0.5 -0.5 0
v  0.0  0.5 0
f 1 2 3
`,
		Width:  64,
		Height: 64,
	},
	{
		Name: "triangle_back",
		OBJ: `
# clockwise, facing away from the light
v -0.5 -0.5 0
v  0.0  0.5 0
v  0.5 -0.5 0
f 1 2 3
`,
		Width:  64,
		Height: 64,
	},
	{
		Name: "quad",
		OBJ: `
v -0.75 -0.5 0
v  0.75 -0.5 0
v  0.75  0.5 0
v -0.75  0.5 0
f 1 2 3 4
`,
		Width:  96,
		Height: 64,
	},
	{
		Name: "degenerate",
		OBJ: `
v -0.8 -0.8 0
v  0.0  0.0 0
v  0.8  0.8 0
v -0.8  0.2 0
v -0.2  0.2 0
v -0.5  0.8 0
f 1 2 3
f 4 5 6
`,
		Width:  64,
		Height: 64,
	},
	{
		Name: "clipped",
		OBJ: `
# extends past all four sides of the viewport
v -1.5 -1.5 0
v  2.5 -0.5 0
v -0.5  2.5 0
f 1 2 3
`,
		Width:  64,
		Height: 64,
	},
	{
		Name: "texcoords",
		OBJ: `
v -0.6 -0.6 0
v  0.6 -0.6 0
v  0.6  0.6 0
v -0.6  0.6 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
f -4/-4 -2/-2 -1/-1
`,
		Width:  64,
		Height: 64,
	},
}
