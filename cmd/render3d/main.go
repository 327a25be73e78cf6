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


// Command render3d draws a Wavefront OBJ mesh into an image file.
//
// Usage:
//
//	render3d [flags] mesh.obj
//
// The output format is chosen by the file name extension of the -o flag:
// .png, .bmp, .tif/.tiff for raster images, or .pdf for a vector rendition.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/linalg"
	"seehuhn.de/go/render3d/obj"
	"seehuhn.de/go/render3d/pdfexport"
)

var errNoFaces = errors.New("mesh has no faces")

func main() {
	var (
		output  = flag.String("o", "output.png", "output file (.png, .bmp, .tif, .tiff or .pdf)")
		width   = flag.Int("width", 800, "image width in pixels")
		height  = flag.Int("height", 800, "image height in pixels")
		mode    = flag.String("mode", "flat", "drawing mode: flat or wireframe")
		rotate  = flag.Float64("rotate", 0, "rotation about the vertical axis, in degrees")
		tilt    = flag.Float64("tilt", 0, "rotation about the horizontal axis, in degrees")
		light   = flag.String("light", "0,0,-1", "direction of the light, as x,y,z")
		zbufOut = flag.String("zbuffer", "", "also write the depth buffer to this image file")
		bands   = flag.Int("bands", 1, "number of horizontal bands drawn in parallel (0 = one per CPU)")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] mesh.obj\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render3d.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := &config{
		meshPath: flag.Arg(0),
		output:   *output,
		zbufOut:  *zbufOut,
		width:    *width,
		height:   *height,
		bands:    *bands,
	}
	opt, err := makeOptions(*mode, *light, *rotate, *tilt)
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		os.Exit(2)
	}
	cfg.opt = opt

	if err := run(context.Background(), logger, cfg); err != nil {
		logger.Error("render3d failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	meshPath string
	output   string
	zbufOut  string
	width    int
	height   int
	bands    int
	opt      *render3d.Options
}

func makeOptions(mode, light string, rotate, tilt float64) (*render3d.Options, error) {
	opt := render3d.DefaultOptions()

	m, err := render3d.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	opt.Mode = m

	dir, err := parseVec3(light)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	if dir.IsZero() {
		return nil, errors.New("light: zero direction")
	}
	opt.Light = dir.Normalize()

	rx := linalg.RotateX4[float64](tilt * math.Pi / 180)
	ry := linalg.RotateY4[float64](rotate * math.Pi / 180)
	opt.Transform = rx.Mul(ry)

	return opt, nil
}

func parseVec3(s string) (linalg.Vec3[float64], error) {
	var v linalg.Vec3[float64]
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("%q: expected three comma-separated numbers", s)
	}
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("%q: %w", s, err)
		}
		v.SetAt(i, x)
	}
	return v, nil
}

func run(ctx context.Context, logger *slog.Logger, cfg *config) error {
	if cfg.width < 1 || cfg.height < 1 {
		return fmt.Errorf("invalid image size %dx%d", cfg.width, cfg.height)
	}

	m, err := obj.Load(cfg.meshPath)
	if err != nil {
		return err
	}
	if m.NumFaces() == 0 {
		return fmt.Errorf("%s: %w", cfg.meshPath, errNoFaces)
	}
	logger.Info("loaded mesh",
		"file", cfg.meshPath,
		"vertices", m.NumVertices(),
		"faces", m.NumFaces())

	if strings.EqualFold(filepath.Ext(cfg.output), ".pdf") {
		vp := render3d.NewViewport(cfg.width, cfg.height)
		tris, _, err := render3d.Project(m, vp, cfg.opt)
		if err != nil {
			return err
		}
		return pdfexport.Write(cfg.output, cfg.width, cfg.height, tris, cfg.opt.Mode)
	}
	if _, err := render3d.FormatFromPath(cfg.output); err != nil {
		return err
	}

	dst := render3d.NewSurface(cfg.width, cfg.height)
	dst.Clear(color.NRGBA{A: 255})
	zbuf := render3d.NewDepthBuffer(cfg.width, cfg.height)

	var stats render3d.Stats
	if cfg.bands == 1 {
		stats, err = render3d.Render(m, dst, zbuf, cfg.opt)
	} else {
		stats, err = render3d.RenderTiled(ctx, m, dst, zbuf, cfg.opt, cfg.bands)
	}
	if err != nil {
		return err
	}
	logger.Info("rendered",
		"mode", cfg.opt.Mode,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"pixels", stats.Pixels)

	// Row 0 holds the smallest y coordinate, which goes at the bottom.
	dst.FlipVertically()
	if err := render3d.SaveImage(cfg.output, dst.Image()); err != nil {
		return err
	}

	if cfg.zbufOut != "" {
		zimg := render3d.NewSurface(cfg.width, cfg.height)
		gray := zbuf.Image()
		for y := range cfg.height {
			for x := range cfg.width {
				g := gray.GrayAt(x, cfg.height-1-y).Y
				zimg.Set(x, y, color.NRGBA{R: g, G: g, B: g, A: 255})
			}
		}
		if err := render3d.SaveImage(cfg.zbufOut, zimg.Image()); err != nil {
			return err
		}
	}
	return nil
}
