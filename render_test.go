package render3d_test

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/linalg"
	"seehuhn.de/go/render3d/obj"
	"seehuhn.de/go/render3d/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				// load reference image
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, os.ErrNotExist) {
					if os.Getenv("RENDER3D_REQUIRE_REFERENCE") != "" {
						t.Fatalf("missing %s", refPath)
					}
					t.Skipf("missing %s, create it with \"go run ./testcases/genpdf\"", refPath)
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				// render
				dst, _ := renderCase(t, tc)
				dst.FlipVertically()
				actual := toGray(dst)

				// compare
				if err := compareImages("debug", name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestCompareImages checks the image comparison used by TestAgainstReference
// on a rendered scene, so that the comparison runs even where no reference
// images are available.
func TestCompareImages(t *testing.T) {
	tc := testcases.All["solid"][0]
	dst, _ := renderCase(t, tc)
	dst.FlipVertically()
	actual := toGray(dst)
	w, h := tc.Width, tc.Height

	dir := t.TempDir()
	refPath := filepath.Join(dir, "ref.png")
	f, err := os.Create(refPath)
	if err != nil {
		t.Fatal(err)
	}
	ref := image.NewGray(image.Rect(0, 0, w, h))
	copy(ref.Pix, actual)
	if err := png.Encode(f, ref); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	expected, err := loadGray(refPath)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(expected, actual) {
		t.Fatal("loadGray does not return the encoded pixels")
	}

	debugDir := filepath.Join(dir, "debug")
	if err := compareImages(debugDir, "same", expected, actual, w, h); err != nil {
		t.Errorf("identical images: %v", err)
	}
	if _, err := os.Stat(filepath.Join(debugDir, "same.png")); !os.IsNotExist(err) {
		t.Error("diff image written for identical images")
	}

	// small differences everywhere are tolerated, but reported
	shifted := make([]byte, len(actual))
	for i, v := range actual {
		shifted[i] = v ^ 1
	}
	if err := compareImages(debugDir, "shifted", expected, shifted, w, h); err != nil {
		t.Errorf("differences within tolerance: %v", err)
	}
	if _, err := os.Stat(filepath.Join(debugDir, "shifted.png")); err != nil {
		t.Errorf("diff image not written: %v", err)
	}

	inverted := make([]byte, len(actual))
	for i, v := range actual {
		inverted[i] = 255 - v
	}
	if err := compareImages(debugDir, "inverted", expected, inverted, w, h); err == nil {
		t.Error("inverted image accepted")
	}

	if err := compareImages(debugDir, "size", expected[:w], actual, w, h); err == nil {
		t.Error("size mismatch accepted")
	}
}

// TestTiled checks that RenderTiled produces exactly the same output as
// Render, for different numbers of bands.
func TestTiled(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				want, wantZ := renderCase(t, tc)
				wantStats, err := render3d.Render(tc.Mesh(), render3d.NewSurface(tc.Width, tc.Height),
					render3d.NewDepthBuffer(tc.Width, tc.Height), tc.Options())
				if err != nil {
					t.Fatal(err)
				}

				for _, bands := range []int{1, 3, 7, tc.Height + 5} {
					dst := render3d.NewSurface(tc.Width, tc.Height)
					zbuf := render3d.NewDepthBuffer(tc.Width, tc.Height)
					stats, err := render3d.RenderTiled(context.Background(), tc.Mesh(), dst, zbuf, tc.Options(), bands)
					if err != nil {
						t.Fatalf("%d bands: %v", bands, err)
					}
					if stats != wantStats {
						t.Errorf("%d bands: got stats %+v, want %+v", bands, stats, wantStats)
					}
					if diff := firstDiff(want, dst); diff != "" {
						t.Errorf("%d bands: %s", bands, diff)
					}
					if !slices.Equal(depths(wantZ), depths(zbuf)) {
						t.Errorf("%d bands: depth buffers differ", bands)
					}
				}
			})
		}
	}
}

// TestOrderIndependence checks that drawing the faces of a mesh in reverse
// order does not change the image. Faces of different brightness which
// share a vertex tie in depth at that vertex, so only scenes without such
// faces are used.
func TestOrderIndependence(t *testing.T) {
	for _, category := range []string{"basic", "depth"} {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				want, _ := renderCase(t, tc)

				dst := render3d.NewSurface(tc.Width, tc.Height)
				zbuf := render3d.NewDepthBuffer(tc.Width, tc.Height)
				_, err := render3d.Render(reversed{tc.Mesh()}, dst, zbuf, tc.Options())
				if err != nil {
					t.Fatal(err)
				}
				if diff := firstDiff(want, dst); diff != "" {
					t.Error(diff)
				}
			})
		}
	}

	// The two cases list the same faces in opposite order.
	var near, far testcases.TestCase
	for _, tc := range testcases.All["depth"] {
		switch tc.Name {
		case "quads_near_first":
			near = tc
		case "quads_far_first":
			far = tc
		}
	}
	a, _ := renderCase(t, near)
	b, _ := renderCase(t, far)
	if diff := firstDiff(a, b); diff != "" {
		t.Errorf("quads: %s", diff)
	}
}

func TestNearQuadWins(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["depth"] {
		if c.Name == "quads_far_first" {
			tc = c
		}
	}
	dst, zbuf := renderCase(t, tc)

	// (0,0) in normalized coordinates is covered by both quads.
	x, y := tc.Width/2, tc.Height/2
	if got := dst.Get(x, y); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel (%d,%d): got %v, want white", x, y, got)
	}
	if got := zbuf.At(x, y); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("depth at (%d,%d): got %g, want 0.5", x, y, got)
	}

	// (0.6, 0.6) is only covered by the far quad, which is tilted.
	x, y = tc.Width*8/10, tc.Height*8/10
	got := dst.Get(x, y)
	if got.R == 0 || got.R == 255 {
		t.Errorf("pixel (%d,%d): got %v, want gray", x, y, got)
	}
}

func TestStats(t *testing.T) {
	type testCase struct {
		category, name string
		want           render3d.Stats
	}
	cases := []testCase{
		{"basic", "triangle_back", render3d.Stats{Faces: 1, Culled: 1}},
		{"basic", "degenerate", render3d.Stats{Faces: 2, Drawn: 1, Degenerate: 1}},
		{"basic", "quad", render3d.Stats{Faces: 2, Drawn: 2}},
		{"solid", "cube_front", render3d.Stats{Faces: 12, Drawn: 2, Culled: 10}},
		{"wireframe", "triangle", render3d.Stats{Faces: 1, Drawn: 1}},
	}
	for _, c := range cases {
		t.Run(c.category+"_"+c.name, func(t *testing.T) {
			var tc testcases.TestCase
			for _, x := range testcases.All[c.category] {
				if x.Name == c.name {
					tc = x
				}
			}
			dst := render3d.NewSurface(tc.Width, tc.Height)
			zbuf := render3d.NewDepthBuffer(tc.Width, tc.Height)
			stats, err := render3d.Render(tc.Mesh(), dst, zbuf, tc.Options())
			if err != nil {
				t.Fatal(err)
			}
			stats.Pixels = 0
			if stats != c.want {
				t.Errorf("got %+v, want %+v", stats, c.want)
			}
		})
	}
}

// TestPixelCount checks that the reported number of pixels matches the
// image, for a mesh without overlapping faces.
func TestPixelCount(t *testing.T) {
	tc := testcases.All["basic"][0]
	dst := render3d.NewSurface(tc.Width, tc.Height)
	stats, err := render3d.Render(tc.Mesh(), dst, render3d.NewDepthBuffer(tc.Width, tc.Height), tc.Options())
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for y := range tc.Height {
		for x := range tc.Width {
			if dst.Get(x, y).A != 0 {
				count++
			}
		}
	}
	if count == 0 || count != stats.Pixels {
		t.Errorf("found %d pixels, stats report %d", count, stats.Pixels)
	}
}

func TestFaceIndex(t *testing.T) {
	m := obj.NewModel(
		[]linalg.Vec3[float64]{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		[][3]int{{0, 1, 2}, {0, 1, 3}},
	)
	dst := render3d.NewSurface(8, 8)

	_, err := render3d.Render(m, dst, nil, nil)
	if !errors.Is(err, render3d.ErrFaceIndex) {
		t.Errorf("Render: got %v, want ErrFaceIndex", err)
	}
	_, err = render3d.RenderTiled(context.Background(), m, dst, nil, nil, 2)
	if !errors.Is(err, render3d.ErrFaceIndex) {
		t.Errorf("RenderTiled: got %v, want ErrFaceIndex", err)
	}
}

func TestRenderTiledCancel(t *testing.T) {
	tc := testcases.All["large"][0]
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := render3d.NewSurface(tc.Width, tc.Height)
	zbuf := render3d.NewDepthBuffer(tc.Width, tc.Height)
	_, err := render3d.RenderTiled(ctx, tc.Mesh(), dst, zbuf, tc.Options(), 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestWireframeWithoutDepthBuffer(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["wireframe"] {
		if c.Name == "cube_rotated" {
			tc = c
		}
	}

	want, _ := renderCase(t, tc)

	dst := render3d.NewSurface(tc.Width, tc.Height)
	_, err := render3d.Render(tc.Mesh(), dst, nil, tc.Options())
	if err != nil {
		t.Fatal(err)
	}
	if diff := firstDiff(want, dst); diff != "" {
		t.Error(diff)
	}
}

// reversed presents the faces of a mesh in reverse order.
type reversed struct {
	render3d.Mesh
}

func (r reversed) Face(i int) [3]int {
	return r.Mesh.Face(r.NumFaces() - 1 - i)
}

func renderCase(t *testing.T, tc testcases.TestCase) (*render3d.Surface, *render3d.DepthBuffer) {
	t.Helper()
	dst := render3d.NewSurface(tc.Width, tc.Height)
	zbuf := render3d.NewDepthBuffer(tc.Width, tc.Height)
	if _, err := render3d.Render(tc.Mesh(), dst, zbuf, tc.Options()); err != nil {
		t.Fatal(err)
	}
	return dst, zbuf
}

func depths(zbuf *render3d.DepthBuffer) []float64 {
	var res []float64
	for y := range zbuf.Height() {
		for x := range zbuf.Width() {
			res = append(res, zbuf.At(x, y))
		}
	}
	return res
}

// firstDiff describes the first pixel where a and b differ, or returns
// the empty string if the surfaces are identical.
func firstDiff(a, b *render3d.Surface) string {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return fmt.Sprintf("size %dx%d != %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if ca, cb := a.Get(x, y), b.Get(x, y); ca != cb {
				return fmt.Sprintf("pixel (%d,%d): %v != %v", x, y, ca, cb)
			}
		}
	}
	return ""
}

func toGray(s *render3d.Surface) []byte {
	w, h := s.Width(), s.Height()
	gray := make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(s.Get(x, y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray
}

func loadGray(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

func compareImages(debugDir, name string, expected, actual []byte, w, h int) error {
	const tolerance = 2
	const maxDiffPercent = 10

	if len(expected) != w*h {
		return fmt.Errorf("reference image has %d pixels, want %d", len(expected), w*h)
	}

	total := w * h
	diffCount := 0
	hasDiff := false

	for i := range total {
		e, a := int(expected[i]), int(actual[i])
		diff := e - a
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			hasDiff = true
			if diff > tolerance {
				diffCount++
			}
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if diffCount > maxAllowed || hasDiff {
		writeDiffImage(debugDir, name, expected, actual, w, h)
	}
	if diffCount > maxAllowed {
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

func writeDiffImage(dir, name string, expected, actual []byte, w, h int) {
	os.MkdirAll(dir, 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
