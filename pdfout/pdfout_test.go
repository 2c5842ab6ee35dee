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
package pdfout

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/ctrl"
)

func TestWriteFile(t *testing.T) {
	cb := ctrl.NewCheckBox(10, 10, "PDF", true)
	cb.SetStatus(true)
	sl := ctrl.NewSlider(10, 40, 150, 48, true)
	sl.SetLabel("Value=%.2f")

	fname := filepath.Join(t.TempDir(), "frame.pdf")
	err := WriteFile(fname, 200, 100, nil, cb, sl)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 16)])
	}
}

func TestWriteFileError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "frame.pdf")
	if err := WriteFile(fname, 10, 10, nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestToRGB(t *testing.T) {
	white := rgb{1, 1, 1}

	type testCase struct {
		in   color.Color
		want rgb
	}
	cases := []testCase{
		{color.Black, rgb{0, 0, 0}},
		{color.White, rgb{1, 1, 1}},
		{color.Transparent, white},
		{color.NRGBA{R: 255, A: 0x80}, rgb{1, 0x7f7f / float64(0xffff), 0x7f7f / float64(0xffff)}},
	}
	for _, tc := range cases {
		got := toRGB(tc.in, white)
		for k := range 3 {
			if d := got[k] - tc.want[k]; d > 1e-3 || d < -1e-3 {
				t.Errorf("toRGB(%v) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}
