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
package svgout

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"seehuhn.de/go/ctrl"
)

func TestWrite(t *testing.T) {
	cb := ctrl.NewCheckBox(10, 10, "", true)
	cb.SetStatus(true)

	var buf bytes.Buffer
	if err := Write(&buf, 100, 50, color.White, cb); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("not an SVG document:\n%s", out)
	}
	if !strings.Contains(out, "<rect width=\"100\" height=\"50\" fill=\"#ffffff\"/>") {
		t.Error("missing background")
	}
	// border and mark; the empty label is skipped
	if n := strings.Count(out, "<path "); n != 2 {
		t.Errorf("got %d path elements, want 2", n)
	}
	if !strings.Contains(out, "fill=\"#660000\"") {
		t.Error("missing mark color")
	}
}

func TestWriteOpacity(t *testing.T) {
	s := ctrl.NewScaleBar(0, 0, 100, 10, false)

	var buf bytes.Buffer
	if err := Write(&buf, 100, 10, nil, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "<rect") {
		t.Error("unexpected background")
	}
	if !strings.Contains(out, "fill-opacity=\"0.8\"") {
		t.Errorf("missing opacity:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	cb := ctrl.NewCheckBox(10, 10, "", true)
	err := Write(failWriter{}, 10, 10, nil, cb)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("got error %v", err)
	}
}
