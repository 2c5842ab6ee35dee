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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ctrl/vertex"
)

func newSquare() *Polygon {
	p := NewPolygon(4, 5)
	p.SetPoint(0, 0, 0)
	p.SetPoint(1, 10, 0)
	p.SetPoint(2, 10, 10)
	p.SetPoint(3, 0, 10)
	return p
}

func TestPolygonDrag(t *testing.T) {
	p := newSquare()

	require.True(t, p.OnMouseButtonDown(1, 1))
	node, ok := p.Grabbed()
	require.True(t, ok)
	assert.Equal(t, 0, node)

	assert.True(t, p.OnMouseMove(6, 6, true))
	x, y := p.Point(0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)

	assert.False(t, p.OnMouseButtonUp(6, 6))
	_, ok = p.Grabbed()
	assert.False(t, ok)

	assert.False(t, p.OnMouseMove(20, 20, true))
	x, y = p.Point(0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)
}

func TestPolygonFirstMatchWins(t *testing.T) {
	p := NewPolygon(3, 5)
	p.SetPoint(0, 0, 0)
	p.SetPoint(1, 2, 0) // also within reach
	p.SetPoint(2, 1, 20)

	require.True(t, p.OnMouseButtonDown(1, 0))
	node, _ := p.Grabbed()
	assert.Equal(t, 0, node)
}

func TestPolygonNodeBeforeEdge(t *testing.T) {
	p := newSquare()

	// (2, 1) is within reach of node 0 and of the edges 0 and 1
	q := vec.Vec2{X: 2, Y: 1}
	require.Equal(t, 0, p.nodeAt(q))
	require.GreaterOrEqual(t, p.edgeAt(q), 0)

	require.True(t, p.OnMouseButtonDown(2, 1))
	node, ok := p.Grabbed()
	require.True(t, ok)
	assert.Equal(t, 0, node)

	require.True(t, p.OnMouseMove(4, 3, true))
	x, y := p.Point(0)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 2.0, y)
	for i, want := range [][2]float64{{10, 0}, {10, 10}, {0, 10}} {
		x, y := p.Point(i + 1)
		assert.Equal(t, want, [2]float64{x, y}, "point %d", i+1)
	}
}

func TestPolygonMiss(t *testing.T) {
	p := newSquare()
	assert.False(t, p.OnMouseButtonDown(50, 50))
	assert.False(t, p.OnMouseMove(60, 60, true))
	for i := range 4 {
		x, y := p.Point(i)
		assert.Contains(t, []float64{0, 10}, x)
		assert.Contains(t, []float64{0, 10}, y)
	}
}

func TestPolygonEdgeDrag(t *testing.T) {
	p := NewPolygon(4, 5)
	p.SetPoint(0, 0, 0)
	p.SetPoint(1, 100, 0)
	p.SetPoint(2, 100, 100)
	p.SetPoint(3, 0, 100)

	// close to the edge from vertex 0 to vertex 1, far from both vertices
	require.True(t, p.OnMouseButtonDown(50, 2))
	_, ok := p.Grabbed()
	assert.False(t, ok)

	assert.True(t, p.OnMouseMove(50, 12, true))
	x0, y0 := p.Point(0)
	x1, y1 := p.Point(1)
	assert.Equal(t, [4]float64{0, 10, 100, 10}, [4]float64{x0, y0, x1, y1})
	x2, y2 := p.Point(2)
	assert.Equal(t, [2]float64{100, 100}, [2]float64{x2, y2})
}

func TestPolygonInside(t *testing.T) {
	p := NewPolygon(4, 5)
	p.SetPoint(0, 0, 0)
	p.SetPoint(1, 100, 0)
	p.SetPoint(2, 100, 100)
	p.SetPoint(3, 0, 100)

	assert.True(t, p.InRect(50, 50))
	assert.False(t, p.InRect(150, 50))
	assert.False(t, p.OnMouseButtonDown(50, 50), "whole-polygon drag is off by default")

	p.SetInPolygonCheck(true)
	require.True(t, p.OnMouseButtonDown(50, 50))
	assert.True(t, p.OnMouseMove(55, 45, true))
	for i, want := range [][2]float64{{5, -5}, {105, -5}, {105, 95}, {5, 95}} {
		x, y := p.Point(i)
		assert.Equal(t, want, [2]float64{x, y}, "point %d", i)
	}
}

func TestPolygonShape(t *testing.T) {
	p := newSquare()
	vv := vertex.Collect(p, 0)

	// the outline, followed by one closed disk of 32 vertices per point
	disks := 0
	for _, v := range vv {
		if v.Cmd.IsClosed() && v.Cmd.Orientation() == vertex.OrientCCW {
			disks++
		}
	}
	assert.GreaterOrEqual(t, disks, 4)

	last := vv[len(vv)-33:]
	assert.Equal(t, vertex.MoveTo, last[0].Cmd)
	assert.InDelta(t, 5.0, last[0].X, 1e-9) // centre (0, 10), radius 5
	assert.InDelta(t, 10.0, last[0].Y, 1e-9)
	assert.True(t, last[32].Cmd.IsClosed())
}

func TestPolygonBadIndex(t *testing.T) {
	p := newSquare()
	p.SetPoint(-1, 7, 7)
	p.SetPoint(4, 7, 7)
	x, y := p.Point(4)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 4, p.NumPoints())
}
