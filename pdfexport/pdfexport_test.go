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


package pdfexport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/linalg"
)

func tri(face int, z0, z1, z2 float64) render3d.ScreenTriangle {
	return render3d.ScreenTriangle{
		Face: face,
		P: [3]linalg.Vec3[float64]{
			linalg.V3(1, 1, z0),
			linalg.V3(30, 2, z1),
			linalg.V3(10, 25, z2),
		},
		Intensity: 0.5,
	}
}

func TestBackToFront(t *testing.T) {
	tris := []render3d.ScreenTriangle{
		tri(0, 1, 1, 1),
		tri(1, -1, -1, -1),
		tri(2, 0, 0.5, -0.5),
		tri(3, 0, 0, 0),
	}
	sorted := backToFront(tris)

	want := []int{1, 2, 3, 0}
	for i, f := range want {
		if sorted[i].Face != f {
			t.Errorf("position %d: got face %d, want %d", i, sorted[i].Face, f)
		}
	}
	if tris[0].Face != 0 || tris[1].Face != 1 {
		t.Error("input slice was modified")
	}
}

func TestOutline(t *testing.T) {
	tr := tri(0, 0, 0, 0)

	var cmds []path.Command
	for cmd, pts := range outline(tr) {
		cmds = append(cmds, cmd)
		if cmd == path.CmdClose {
			continue
		}
		p := tr.P[len(cmds)-1]
		if pts[0].X != p.X || pts[0].Y != p.Y {
			t.Errorf("vertex %d: got %v, want (%g, %g)", len(cmds)-1, pts[0], p.X, p.Y)
		}
	}

	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}
}

func TestWrite(t *testing.T) {
	tris := []render3d.ScreenTriangle{tri(0, 0, 0, 0), tri(1, 1, 1, 1)}

	for _, mode := range []render3d.Mode{render3d.ModeFlat, render3d.ModeWireframe} {
		t.Run(mode.String(), func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), "out.pdf")
			if err := Write(fname, 32, 32, tris, mode); err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header")
			}
		})
	}
}
