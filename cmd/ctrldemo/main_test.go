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
package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	*pngOut = filepath.Join(dir, "out.png")
	*pdfOut = filepath.Join(dir, "out.pdf")
	*svgOut = filepath.Join(dir, "out.svg")
	defer func() { *pngOut, *pdfOut, *svgOut = "ctrldemo.png", "", "" }()

	for _, name := range []string{"exact", "vector"} {
		*backend = name
		if err := run(nil); err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		fd, err := os.Open(*pngOut)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(fd)
		fd.Close()
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 420 || b.Dy() != 300 {
			t.Errorf("%s: image size %v, want 420x300", name, b)
		}
	}
	*backend = "exact"

	pdfData, err := os.ReadFile(*pdfOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(pdfData), "%PDF-") {
		t.Error("PDF header missing")
	}
	svgData, err := os.ReadFile(*svgOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svgData), "<path") {
		t.Error("SVG has no paths")
	}
}

func TestRunErrors(t *testing.T) {
	if err := run([]string{"a", "b"}); err == nil {
		t.Error("too many arguments accepted")
	}
	if err := run([]string{filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Error("missing scene accepted")
	}
}

func TestNewRasterizer(t *testing.T) {
	for _, name := range []string{"exact", "vector"} {
		if _, err := newRasterizer(name, 10, 10); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	_, err := newRasterizer("gpu", 10, 10)
	if !errors.Is(err, errBackend) {
		t.Errorf("got %v, want %v", err, errBackend)
	}
}
