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

// Package obj reads and writes triangle meshes in the Wavefront OBJ format.
//
// Only geometry is supported: vertex positions ("v"), texture coordinates
// ("vt") and faces ("f"). Polygons with more than three vertices are split
// into a fan of triangles. All other statements, including normals,
// groups and material references, are ignored.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/render3d/linalg"
)

var (
	// ErrSyntax indicates a malformed statement.
	ErrSyntax = errors.New("obj: syntax error")

	// ErrIndex indicates a face which refers to a missing vertex or
	// texture coordinate.
	ErrIndex = errors.New("obj: index out of range")
)

// ParseError records the line at which parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Model is a triangle mesh. It implements render3d.Mesh.
//
// A Model is not modified after it has been loaded.
type Model struct {
	verts     []linalg.Vec3[float64]
	texCoords []linalg.Vec2[float64]
	faces     [][3]int

	// faceTex holds the texture coordinate indices of every face, or -1
	// where the face does not specify one.
	faceTex [][3]int
}

// NewModel returns a model with the given vertices and faces.
// The slices are used directly, without copying.
func NewModel(verts []linalg.Vec3[float64], faces [][3]int) *Model {
	return &Model{verts: verts, faces: faces}
}

// NumVertices returns the number of vertex positions.
func (m *Model) NumVertices() int { return len(m.verts) }

// Vertex returns vertex position i.
func (m *Model) Vertex(i int) linalg.Vec3[float64] { return m.verts[i] }

// NumFaces returns the number of triangles.
func (m *Model) NumFaces() int { return len(m.faces) }

// Face returns the vertex indices of triangle i.
func (m *Model) Face(i int) [3]int { return m.faces[i] }

// NumTexCoords returns the number of texture coordinates.
func (m *Model) NumTexCoords() int { return len(m.texCoords) }

// TexCoord returns texture coordinate i.
func (m *Model) TexCoord(i int) linalg.Vec2[float64] { return m.texCoords[i] }

// FaceTexCoords returns the texture coordinate indices for the vertices
// of triangle i. Vertices without texture coordinates have index -1.
func (m *Model) FaceTexCoords(i int) [3]int {
	if m.faceTex == nil {
		return [3]int{-1, -1, -1}
	}
	return m.faceTex[i]
}

// Load reads a model from the named file.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads a model in OBJ format from r.
//
// Indices in the file are 1-based, or negative to count back from the most
// recently defined element. The returned model uses 0-based indices.
func Parse(r io.Reader) (*Model, error) {
	m := &Model{}
	hasTex := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v []float64
			v, err = parseFloats(fields[1:], 3, 4)
			if err == nil {
				m.verts = append(m.verts, linalg.V3(v[0], v[1], v[2]))
			}
		case "vt":
			var v []float64
			v, err = parseFloats(fields[1:], 1, 3)
			if err == nil {
				vt := linalg.V2(v[0], 0)
				if len(v) > 1 {
					vt.Y = v[1]
				}
				m.texCoords = append(m.texCoords, vt)
			}
		case "f":
			var tex bool
			tex, err = m.parseFace(fields[1:])
			hasTex = hasTex || tex
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !hasTex {
		m.faceTex = nil
	}
	return m, nil
}

func parseFloats(fields []string, minN, maxN int) ([]float64, error) {
	if len(fields) < minN || len(fields) > maxN {
		return nil, fmt.Errorf("%w: expected %d to %d numbers, got %d",
			ErrSyntax, minN, maxN, len(fields))
	}
	res := make([]float64, len(fields))
	for i, s := range fields {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, s)
		}
		res[i] = x
	}
	return res, nil
}

// parseFace appends the triangles of a polygon to m.
// It reports whether any vertex of the polygon had a texture coordinate.
func (m *Model) parseFace(fields []string) (bool, error) {
	if len(fields) < 3 {
		return false, fmt.Errorf("%w: face with %d vertices", ErrSyntax, len(fields))
	}

	vIdx := make([]int, len(fields))
	tIdx := make([]int, len(fields))
	hasTex := false
	for i, s := range fields {
		parts := strings.Split(s, "/")
		if len(parts) > 3 {
			return false, fmt.Errorf("%w: invalid face vertex %q", ErrSyntax, s)
		}

		v, err := resolveIndex(parts[0], len(m.verts))
		if err != nil {
			return false, err
		}
		vIdx[i] = v

		tIdx[i] = -1
		if len(parts) > 1 && parts[1] != "" {
			t, err := resolveIndex(parts[1], len(m.texCoords))
			if err != nil {
				return false, err
			}
			tIdx[i] = t
			hasTex = true
		}
	}

	for i := 1; i+1 < len(fields); i++ {
		m.faces = append(m.faces, [3]int{vIdx[0], vIdx[i], vIdx[i+1]})
		m.faceTex = append(m.faceTex, [3]int{tIdx[0], tIdx[i], tIdx[i+1]})
	}
	return hasTex, nil
}

// resolveIndex converts a 1-based or negative OBJ index into a 0-based
// index into a list of n elements.
func resolveIndex(s string, n int) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid index %q", ErrSyntax, s)
	}
	var idx int
	switch {
	case k > 0:
		idx = k - 1
	case k < 0:
		idx = n + k
	default:
		return 0, fmt.Errorf("%w: index 0", ErrIndex)
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: %d (have %d)", ErrIndex, k, n)
	}
	return idx, nil
}

// Write writes the model in OBJ format.
func Write(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.verts {
		fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(v.X), fmtFloat(v.Y), fmtFloat(v.Z))
	}
	for _, vt := range m.texCoords {
		fmt.Fprintf(bw, "vt %s %s\n", fmtFloat(vt.X), fmtFloat(vt.Y))
	}
	for i, f := range m.faces {
		bw.WriteString("f")
		tex := m.FaceTexCoords(i)
		for j, v := range f {
			if tex[j] >= 0 {
				fmt.Fprintf(bw, " %d/%d", v+1, tex[j]+1)
			} else {
				fmt.Fprintf(bw, " %d", v+1)
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
