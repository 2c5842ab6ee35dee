// seehuhn.de/go/ctrl - interactive vector controls
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
// Ctrldemo renders a panel of controls described by a scene file.
//
// The scripted events of the scene are replayed before the panel is drawn.
// Without an argument, a built-in scene is used.
//
// Usage:
//
//	ctrldemo [-o out.png] [-pdf out.pdf] [-svg out.svg] [-backend exact|vector] [-v] [scene.toml]
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ctrl"
	"seehuhn.de/go/ctrl/internal/scene"
	"seehuhn.de/go/ctrl/pdfout"
	"seehuhn.de/go/ctrl/raster"
	"seehuhn.de/go/ctrl/svgout"
)

//go:embed default.toml
var defaultScene []byte

var (
	pngOut  = flag.String("o", "ctrldemo.png", "PNG output file, empty to disable")
	pdfOut  = flag.String("pdf", "", "PDF output file")
	svgOut  = flag.String("svg", "", "SVG output file")
	backend = flag.String("backend", "exact", "rasteriser: exact or vector")
	verbose = flag.Bool("v", false, "log event routing")
)

var errBackend = errors.New("unknown backend")

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ctrl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "ctrldemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var s *scene.Scene
	var err error
	switch len(args) {
	case 0:
		s, err = scene.Load(bytes.NewReader(defaultScene))
	case 1:
		s, err = scene.LoadFile(args[0])
	default:
		return errors.New("too many arguments")
	}
	if err != nil {
		return err
	}

	bg, err := s.BackgroundColor()
	if err != nil {
		return err
	}
	panel, err := s.Build()
	if err != nil {
		return err
	}
	redraws, err := s.Play(panel)
	if err != nil {
		return err
	}
	ctrl.Logger().Info("events replayed",
		slog.Int("events", len(s.Events)), slog.Int("redraws", redraws))

	shapes := make([]ctrl.ColoredShape, panel.Len())
	for i := range shapes {
		shapes[i] = panel.At(i)
	}

	if *pngOut != "" {
		ras, err := newRasterizer(*backend, s.Width, s.Height)
		if err != nil {
			return err
		}
		img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
		ren := raster.NewRenderer(img)
		ren.Clear(bg)
		panel.Render(ras, &raster.Scanline{}, ren)
		if err := writePNG(*pngOut, img); err != nil {
			return err
		}
	}
	if *pdfOut != "" {
		err := pdfout.WriteFile(*pdfOut, float64(s.Width), float64(s.Height), bg, shapes...)
		if err != nil {
			return err
		}
	}
	if *svgOut != "" {
		fd, err := os.Create(*svgOut)
		if err != nil {
			return err
		}
		err = svgout.Write(fd, s.Width, s.Height, bg, shapes...)
		if err2 := fd.Close(); err == nil {
			err = err2
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func newRasterizer(name string, width, height int) (ctrl.Rasterizer, error) {
	switch name {
	case "exact":
		return raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}), nil
	case "vector":
		return raster.NewVector(width, height), nil
	}
	return nil, fmt.Errorf("%w %q", errBackend, name)
}

func writePNG(fname string, img image.Image) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}
