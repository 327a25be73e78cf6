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

package render3d

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// cancelCheckInterval is the number of triangles drawn between two checks
// for cancellation of the context.
const cancelCheckInterval = 64

// RenderTiled is like Render, but splits dst into the given number of
// horizontal bands and draws the bands concurrently.
//
// Every band has its own Rasteriser, clipped to the band, and owns the
// corresponding rows of dst and zbuf. The result is identical to the
// output of Render. dst must allow concurrent calls to Set for different
// pixels; Surface does.
//
// If bands is less than one, runtime.GOMAXPROCS(0) bands are used.
// If ctx is cancelled, drawing stops early and the context's error is
// returned; the contents of dst and zbuf are then unspecified.
func RenderTiled(ctx context.Context, m Mesh, dst Target, zbuf *DepthBuffer, opt *Options, bands int) (Stats, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	vp := NewViewport(dst.Width(), dst.Height())
	tris, stats, err := Project(m, vp, opt)
	if err != nil {
		return stats, err
	}

	height := dst.Height()
	if bands < 1 {
		bands = runtime.GOMAXPROCS(0)
	}
	bands = min(bands, height)
	if bands < 1 {
		return stats, nil
	}
	bandHeight := (height + bands - 1) / bands

	var pixels atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for y0 := 0; y0 < height; y0 += bandHeight {
		clip := rect.Rect{
			LLx: 0,
			LLy: float64(y0),
			URx: float64(dst.Width()),
			URy: float64(min(y0+bandHeight, height)),
		}
		g.Go(func() error {
			r := NewRasteriser(clip)
			n := 0
			for i := range tris {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				t := &tris[i]
				if !overlapsBand(t, clip.LLy, clip.URy) {
					continue
				}
				n += drawTriangle(r, t, zbuf, dst, opt)
			}
			pixels.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	stats.Pixels = int(pixels.Load())

	logStats("render tiled", opt, stats)
	return stats, nil
}

// overlapsBand reports whether the bounding box of t intersects the rows
// y0 <= y < y1.
func overlapsBand(t *ScreenTriangle, y0, y1 float64) bool {
	yMin := math.Floor(min(t.P[0].Y, t.P[1].Y, t.P[2].Y))
	yMax := math.Floor(max(t.P[0].Y, t.P[1].Y, t.P[2].Y))
	return yMax >= y0 && yMin < y1
}
