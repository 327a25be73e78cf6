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


// Command view3d shows a Wavefront OBJ mesh in a window, rotating about
// the vertical axis. Every frame is drawn by the software rasteriser.
//
// Keys: left/right arrows change the rotation speed, up/down tilt the
// model, W toggles wireframe mode, Space pauses and Escape quits.
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

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/linalg"
	"seehuhn.de/go/render3d/obj"
)

const (
	tps        = 60
	speedStep  = 0.1 * math.Pi / tps // radians per tick, per key press
	tiltStep   = math.Pi / 90
	maxTilt    = math.Pi / 2
	background = 0x20
)

func main() {
	var (
		size    = flag.Int("size", 512, "window size in pixels")
		bands   = flag.Int("bands", 0, "number of bands drawn in parallel (0 = one per CPU)")
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

	m, err := obj.Load(flag.Arg(0))
	if err != nil {
		logger.Error("cannot load mesh", "err", err)
		os.Exit(1)
	}
	if m.NumFaces() == 0 {
		logger.Error("cannot load mesh", "file", flag.Arg(0), "err", "mesh has no faces")
		os.Exit(1)
	}

	v := &viewer{
		mesh:   m,
		size:   *size,
		bands:  *bands,
		speed:  2 * speedStep,
		logger: logger,
	}
	ebiten.SetWindowTitle("view3d: " + flag.Arg(0))
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer failed", "err", err)
		os.Exit(1)
	}
}

// viewer implements ebiten.Game.
type viewer struct {
	mesh  render3d.Mesh
	size  int
	bands int

	angle, tilt float64
	speed       float64
	paused      bool
	wireframe   bool

	surface *render3d.Surface
	zbuf    *render3d.DepthBuffer
	img     *ebiten.Image

	logger *slog.Logger
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.wireframe = !v.wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.speed += speedStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.speed -= speedStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		v.tilt = min(v.tilt+tiltStep, maxTilt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		v.tilt = max(v.tilt-tiltStep, -maxTilt)
	}

	if !v.paused {
		v.angle = math.Mod(v.angle+v.speed, 2*math.Pi)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.surface == nil {
		v.surface = render3d.NewSurface(v.size, v.size)
		v.zbuf = render3d.NewDepthBuffer(v.size, v.size)
		v.img = ebiten.NewImage(v.size, v.size)
	}

	opt := render3d.DefaultOptions()
	if v.wireframe {
		opt.Mode = render3d.ModeWireframe
	}
	opt.Transform = linalg.RotateX4[float64](v.tilt).Mul(linalg.RotateY4[float64](v.angle))

	v.surface.Clear(color.NRGBA{R: background, G: background, B: background, A: 255})
	v.zbuf.Reset()
	_, err := render3d.RenderTiled(context.Background(), v.mesh, v.surface, v.zbuf, opt, v.bands)
	if err != nil {
		v.logger.Error("render failed", "err", err)
		return
	}
	v.surface.FlipVertically()

	// All pixels are opaque, so premultiplied and straight alpha agree.
	v.img.WritePixels(v.surface.Image().Pix)
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.size, v.size
}
