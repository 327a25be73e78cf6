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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/render3d"
)

// largeCases contain meshes with many triangles on large canvases.
var largeCases = []TestCase{
	{
		Name:      "sphere",
		OBJ:       uvSphere(0.9, 48, 24),
		Width:     512,
		Height:    512,
		Transform: tilt,
	},
	{
		Name:      "sphere_wireframe",
		OBJ:       uvSphere(0.9, 24, 12),
		Width:     256,
		Height:    256,
		Mode:      render3d.ModeWireframe,
		Transform: tilt,
	},
	{
		Name:      "cube",
		OBJ:       cube,
		Width:     512,
		Height:    512,
		Transform: tilt,
	},
}

// uvSphere builds a sphere of radius r around the origin, with the given
// number of segments around the y-axis and from pole to pole.
func uvSphere(r float64, slices, stacks int) string {
	b := &strings.Builder{}
	vertex := func(theta, phi float64) {
		x := r * math.Sin(theta) * math.Sin(phi)
		y := r * math.Cos(theta)
		z := r * math.Sin(theta) * math.Cos(phi)
		fmt.Fprintf(b, "v %.6f %.6f %.6f\n", x, y, z)
	}

	vertex(0, 0)
	for i := 1; i < stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		for j := range slices {
			vertex(theta, 2*math.Pi*float64(j)/float64(slices))
		}
	}
	vertex(math.Pi, 0)

	top := 1
	bottom := 2 + (stacks-1)*slices
	ring := func(i, j int) int { // 1-based OBJ index of vertex j on ring i
		return 2 + (i-1)*slices + j%slices
	}

	for j := range slices {
		fmt.Fprintf(b, "f %d %d %d\n", top, ring(1, j), ring(1, j+1))
	}
	for i := 1; i < stacks-1; i++ {
		for j := range slices {
			fmt.Fprintf(b, "f %d %d %d %d\n",
				ring(i, j), ring(i+1, j), ring(i+1, j+1), ring(i, j+1))
		}
	}
	for j := range slices {
		fmt.Fprintf(b, "f %d %d %d\n", ring(stacks-1, j), bottom, ring(stacks-1, j+1))
	}
	return b.String()
}

// fan builds n triangles around the origin, with outer vertices on a
// circle of radius r.
func fan(n int, r float64) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "v 0 0 0")
	for i := range n {
		phi := 2 * math.Pi * (float64(i) + 0.25) / float64(n)
		fmt.Fprintf(b, "v %.6f %.6f 0\n", r*math.Cos(phi), r*math.Sin(phi))
	}
	for i := range n {
		fmt.Fprintf(b, "f 1 %d %d\n", 2+i, 2+(i+1)%n)
	}
	return b.String()
}
