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

import "seehuhn.de/go/render3d"

var wireframeCases = []TestCase{
	{
		Name:   "triangle",
		OBJ:    basicCases[0].OBJ,
		Width:  64,
		Height: 64,
		Mode:   render3d.ModeWireframe,
	},
	{
		// edges of all slopes, steep and shallow, in all directions
		Name:   "fan",
		OBJ:    fan(12, 0.9),
		Width:  64,
		Height: 64,
		Mode:   render3d.ModeWireframe,
	},
	{
		Name:      "cube_rotated",
		OBJ:       cube,
		Width:     128,
		Height:    128,
		Mode:      render3d.ModeWireframe,
		Transform: tilt,
	},
	{
		Name:   "clipped",
		OBJ:    basicCases[4].OBJ,
		Width:  64,
		Height: 64,
		Mode:   render3d.ModeWireframe,
	},
}
