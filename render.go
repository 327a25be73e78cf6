// Package render3d implements a software rasterizer for triangle meshes.
//
// Meshes are mapped orthographically from normalized coordinates onto a
// pixel grid, then drawn either as wireframes (one Bresenham line per
// triangle edge) or as flat-shaded solids. Visibility of solid triangles is
// resolved per pixel by a depth buffer, so the order in which triangles are
// drawn does not affect the result.
//
// The package performs no I/O while drawing. Rendering is single-threaded
// unless RenderTiled is used, which splits the image into disjoint bands.
package render3d

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/render3d/linalg"
)

// Mesh is a source of triangle geometry.
// All indices are 0-based.
type Mesh interface {
	NumVertices() int
	Vertex(i int) linalg.Vec3[float64]

	NumFaces() int
	// Face returns the indices of the three vertices of triangle i.
	Face(i int) [3]int

	// NumTexCoords returns zero if the mesh has no texture coordinates.
	NumTexCoords() int
	TexCoord(i int) linalg.Vec2[float64]
}

// Mode selects how triangles are drawn.
type Mode int

const (
	// ModeFlat fills every triangle which faces the light, with a
	// brightness proportional to the cosine of the angle of incidence.
	// Triangles facing away from the light are culled.
	ModeFlat Mode = iota

	// ModeWireframe draws the three edges of every triangle.
	ModeWireframe
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeWireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the output of Mode.String back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "flat":
		return ModeFlat, nil
	case "wireframe":
		return ModeWireframe, nil
	}
	return 0, fmt.Errorf("render3d: unknown mode %q", s)
}

// Options controls how a mesh is rendered.
type Options struct {
	Mode Mode

	// Color is the line color in wireframe mode, and the color of a
	// triangle facing the light directly in flat mode.
	Color color.NRGBA

	// Light is the direction in which the light travels.
	// Must have unit length.
	Light linalg.Vec3[float64]

	// Transform is applied to all vertices before projection.
	// The zero value means no transformation.
	Transform linalg.Mat4[float64]
}

// DefaultOptions returns flat shading in white, lit from the viewer.
func DefaultOptions() *Options {
	return &Options{
		Mode:      ModeFlat,
		Color:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Light:     linalg.V3(0.0, 0.0, -1.0),
		Transform: linalg.Identity4[float64](),
	}
}

// ScreenTriangle is a mesh face after projection to pixel coordinates.
type ScreenTriangle struct {
	Face int // index of the face in the mesh

	// P holds the vertices: X and Y in pixels, Z the depth (larger is
	// closer to the viewer).
	P [3]linalg.Vec3[float64]

	// Intensity is the cosine of the angle between the surface normal and
	// the light. It is 1 in wireframe mode.
	Intensity float64
}

// Stats summarizes one rendered frame.
type Stats struct {
	Faces      int // faces in the mesh
	Drawn      int // faces passed on to the rasteriser
	Culled     int // faces facing away from the light
	Degenerate int // faces with collinear vertices
	Pixels     int // pixels written by triangle fills
}

// ErrFaceIndex is returned when a face refers to a vertex which does not
// exist.
var ErrFaceIndex = errors.New("render3d: vertex index out of range")

// Project transforms all faces of m to pixel coordinates.
//
// In flat mode, faces with collinear vertices and faces turned away from
// the light are dropped and counted in the returned Stats.
func Project(m Mesh, vp Viewport, opt *Options) ([]ScreenTriangle, Stats, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	xfm := opt.Transform
	if xfm == (linalg.Mat4[float64]{}) {
		xfm = linalg.Identity4[float64]()
	}

	numFaces := m.NumFaces()
	numVertices := m.NumVertices()
	stats := Stats{Faces: numFaces}
	tris := make([]ScreenTriangle, 0, numFaces)

	for i := range numFaces {
		face := m.Face(i)

		var world [3]linalg.Vec3[float64]
		for j, idx := range face {
			if idx < 0 || idx >= numVertices {
				return nil, stats, fmt.Errorf("face %d: vertex %d: %w", i, idx, ErrFaceIndex)
			}
			world[j] = linalg.TransformPoint(xfm, m.Vertex(idx))
		}

		t := ScreenTriangle{Face: i, Intensity: 1}
		if opt.Mode == ModeFlat {
			n := world[2].Sub(world[0]).Cross(world[1].Sub(world[0]))
			if n.IsZero() {
				stats.Degenerate++
				continue
			}
			t.Intensity = n.Normalize().Dot(opt.Light)
			if !(t.Intensity > 0) {
				stats.Culled++
				continue
			}
		}
		for j := range world {
			t.P[j] = vp.Map(world[j])
		}
		tris = append(tris, t)
	}
	stats.Drawn = len(tris)

	return tris, stats, nil
}

// Render draws the mesh m into dst.
//
// In flat mode, visibility is resolved using zbuf, which must have the same
// size as dst and is normally freshly allocated or reset. If zbuf is nil,
// later triangles simply overwrite earlier ones. Wireframe mode ignores
// zbuf.
func Render(m Mesh, dst Target, zbuf *DepthBuffer, opt *Options) (Stats, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	vp := NewViewport(dst.Width(), dst.Height())
	tris, stats, err := Project(m, vp, opt)
	if err != nil {
		return stats, err
	}

	r := NewRasteriser(vp.Clip())
	for i := range tris {
		stats.Pixels += drawTriangle(r, &tris[i], zbuf, dst, opt)
	}

	logStats("render", opt, stats)
	return stats, nil
}

// drawTriangle draws a single projected face and returns the number of
// pixels filled.
func drawTriangle(r *Rasteriser, t *ScreenTriangle, zbuf *DepthBuffer, dst Target, opt *Options) int {
	if opt.Mode == ModeWireframe {
		for j := range 3 {
			p, q := t.P[j], t.P[(j+1)%3]
			r.Line(int(p.X), int(p.Y), int(q.X), int(q.Y), dst, opt.Color)
		}
		return 0
	}
	return r.Triangle(t.P, zbuf, dst, shade(opt.Color, t.Intensity))
}

// shade scales the color channels of c by the given intensity.
// Alpha is left unchanged.
func shade(c color.NRGBA, intensity float64) color.NRGBA {
	f := max(0, min(1, intensity))
	return color.NRGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: c.A,
	}
}

func logStats(msg string, opt *Options, stats Stats) {
	Logger().Debug(msg,
		"mode", opt.Mode,
		"faces", stats.Faces,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"degenerate", stats.Degenerate,
		"pixels", stats.Pixels)
}
