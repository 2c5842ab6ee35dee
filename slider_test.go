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
package ctrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/ctrl/vertex"
)

func TestSliderValue(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	assert.InDelta(t, 0.5, s.Value(), 1e-12)

	s.SetRange(10, 20)
	assert.InDelta(t, 15, s.Value(), 1e-12)

	s.SetValue(12)
	assert.InDelta(t, 12, s.Value(), 1e-12)
	s.SetValue(100)
	assert.InDelta(t, 20, s.Value(), 1e-12)
	s.SetValue(-100)
	assert.InDelta(t, 10, s.Value(), 1e-12)

	s.SetNumSteps(4)
	s.SetValue(13.4)
	assert.InDelta(t, 12.5, s.Value(), 1e-12)
}

func TestSliderDrag(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	// the track runs from x = 1 to x = 101, the pointer is at x = 51

	assert.False(t, s.OnMouseMove(30, 5, true), "not grabbed")
	assert.InDelta(t, 0.5, s.Value(), 1e-12)

	assert.False(t, s.OnMouseButtonDown(80, 5), "too far from the pointer")
	require.True(t, s.OnMouseButtonDown(53, 5))

	assert.True(t, s.OnMouseMove(28, 5, true))
	assert.InDelta(t, 0.5, s.Value(), 1e-12, "value changes on release")
	assert.InDelta(t, 0.25, s.previewValue, 1e-12)

	assert.True(t, s.OnMouseMove(-500, 5, true))
	assert.Equal(t, 0.0, s.previewValue)

	assert.True(t, s.OnMouseButtonUp(-500, 5))
	assert.Equal(t, 0.0, s.Value())
	assert.False(t, s.OnMouseMove(40, 5, true))
}

func TestSliderMoveWithoutButton(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	require.True(t, s.OnMouseButtonDown(51, 5))
	assert.True(t, s.OnMouseMove(76, 5, false), "release needs a redraw")
	assert.False(t, s.OnMouseMove(76, 5, true), "released")
	assert.InDelta(t, 0.5, s.Value(), 1e-12)

	// the release snaps a dragged preview value to the steps
	s.SetNumSteps(4)
	require.True(t, s.OnMouseButtonDown(51, 5))
	require.True(t, s.OnMouseMove(60, 5, true))
	assert.True(t, s.OnMouseMove(60, 5, false))
	assert.InDelta(t, 0.5, s.Value(), 1e-12)
	assert.Equal(t, s.value, s.previewValue)
}

func TestSliderArrows(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	assert.True(t, s.OnArrowKeys(false, true, false, false))
	assert.InDelta(t, 0.505, s.Value(), 1e-12)

	s.SetNumSteps(10)
	assert.True(t, s.OnArrowKeys(true, false, false, false))
	assert.InDelta(t, 0.4, s.Value(), 1e-12)
	assert.False(t, s.OnArrowKeys(false, false, false, false))
}

func TestSliderSteps(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	assert.Empty(t, vertex.Collect(s, SliderSteps))

	s.SetNumSteps(4)
	vv := vertex.Collect(s, SliderSteps)
	assert.Len(t, vv, 5*4)
	assert.Equal(t, vertex.Vertex{Cmd: vertex.MoveTo, X: 1, Y: 0}, vv[0])
	assert.Equal(t, vertex.Vertex{Cmd: vertex.MoveTo, X: 101, Y: 0}, vv[16])
}

func TestSliderLabel(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	assert.Empty(t, vertex.Collect(s, SliderText))

	s.SetLabel("Alpha")
	plain := vertex.Collect(s, SliderText)
	assert.NotEmpty(t, plain)

	s.SetLabel("Alpha=%.1f")
	withValue := vertex.Collect(s, SliderText)
	assert.Greater(t, len(withValue), len(plain))
}

func TestSliderLabelText(t *testing.T) {
	s := NewSlider(0, 0, 102, 10, false)
	s.SetRange(0, 2)
	s.SetValue(1.5)

	type testCase struct {
		label, want string
	}
	cases := []testCase{
		{"", ""},
		{"Alpha", "Alpha"},
		{"Alpha=%.2f", "Alpha=1.50"},
		{"Opacity 100%", "Opacity 100%"},
		{"%d%%", "%d%%"},
		{"%.0f%%", "2%"},
	}
	for _, tc := range cases {
		s.SetLabel(tc.label)
		assert.Equal(t, tc.want, s.labelText(), "label %q", tc.label)
	}
}

func TestSliderTriangle(t *testing.T) {
	s := NewSlider(0, 0, 100, 10, false)
	asc := vertex.Collect(s, SliderTriangle)
	s.SetDescending(true)
	desc := vertex.Collect(s, SliderTriangle)

	require.Len(t, asc, 4)
	require.Len(t, desc, 4)
	assert.Equal(t, vertex.Vertex{Cmd: vertex.LineTo, X: 100, Y: 10}, asc[2])
	assert.Equal(t, vertex.Vertex{Cmd: vertex.LineTo, X: 0, Y: 10}, desc[2])
}
