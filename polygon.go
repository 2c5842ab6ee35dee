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
	"image/color"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ctrl/vertex"
)

// Polygon is a polygon whose vertices can be dragged with the mouse.
//
// A click close to a vertex grabs the vertex. A click close to an edge
// grabs both end points of the edge. If enabled with
// [Polygon.SetInPolygonCheck], a click inside the polygon grabs the whole
// polygon.
//
// The polygon has a single sub-path, consisting of the stroked outline
// followed by a disk for every vertex. The point radius and line width are
// given in device units and do not change with the attached
// transformation.
type Polygon struct {
	Base
	palette

	pts         []vec.Vec2
	radius      float64
	lineWidth   float64
	closed      bool
	inPolyCheck bool

	node   int // grabbed vertex, len(pts) for the whole polygon, or -1
	edge   int // grabbed edge, or -1
	dx, dy float64
	hull   curve.BezPath

	// iteration state
	status  int
	outline polyline
	stroke  vertex.Stroke
	ellipse vertex.Ellipse
}

// NewPolygon returns a polygon with n vertices, all at the origin.
// Vertices can be grabbed within the given radius.
func NewPolygon(n int, pointRadius float64) *Polygon {
	n = max(n, 0)
	p := &Polygon{
		Base:      NewBase(0, 0, 1, 1, false),
		palette:   make(palette, 1),
		pts:       make([]vec.Vec2, n),
		radius:    pointRadius,
		lineWidth: 1,
		closed:    true,
		node:      -1,
		edge:      -1,
		status:    -1,
	}
	p.outline.p = p
	p.stroke = *vertex.NewStroke(&p.outline, p.lineWidth)
	p.palette[0] = color.Black
	return p
}

// NumPoints returns the number of vertices.
func (p *Polygon) NumPoints() int { return len(p.pts) }

// Point returns vertex i.
func (p *Polygon) Point(i int) (x, y float64) {
	if i < 0 || i >= len(p.pts) {
		return 0, 0
	}
	return p.pts[i].X, p.pts[i].Y
}

// SetPoint moves vertex i. Invalid indices are ignored.
func (p *Polygon) SetPoint(i int, x, y float64) {
	if i < 0 || i >= len(p.pts) {
		return
	}
	p.pts[i] = vec.Vec2{X: x, Y: y}
}

// SetLineWidth sets the width of the outline.
func (p *Polygon) SetLineWidth(w float64) {
	p.lineWidth = max(w, 0)
}

// SetClose selects whether the outline is a closed polygon or an open
// polyline.
func (p *Polygon) SetClose(closed bool) {
	p.closed = closed
}

// SetInPolygonCheck enables dragging of the whole polygon.
func (p *Polygon) SetInPolygonCheck(on bool) {
	p.inPolyCheck = on
}

// Grabbed returns the index of the vertex being dragged.
func (p *Polygon) Grabbed() (node int, ok bool) {
	if p.node < 0 || p.node >= len(p.pts) {
		return -1, false
	}
	return p.node, true
}

// NumPaths implements the [Shape] interface.
func (p *Polygon) NumPaths() int { return 1 }

// Rewind implements the [vertex.Source] interface.
func (p *Polygon) Rewind(pathID int) {
	p.ellipse = vertex.Ellipse{}
	if pathID != 0 {
		p.status = -1
		return
	}
	p.status = 0
	p.stroke.Width = p.invScale(p.lineWidth)
	p.stroke.Rewind(0)
}

// Vertex implements the [vertex.Source] interface.
func (p *Polygon) Vertex() (vertex.Command, float64, float64) {
	if p.status < 0 {
		return vertex.Stop, 0, 0
	}
	var cmd vertex.Command
	var x, y float64
	if p.status == 0 {
		cmd, x, y = p.stroke.Vertex()
		if !cmd.IsStop() {
			return p.device(cmd, x, y)
		}
		p.status = 1
		p.nextDisk()
	}
	for p.status <= len(p.pts) {
		cmd, x, y = p.ellipse.Vertex()
		if !cmd.IsStop() {
			return p.device(cmd, x, y)
		}
		p.status++
		p.nextDisk()
	}
	return vertex.Stop, 0, 0
}

// nextDisk prepares the disk for vertex p.status-1.
func (p *Polygon) nextDisk() {
	i := p.status - 1
	if i >= len(p.pts) {
		return
	}
	r := p.invScale(p.radius)
	if i == p.node {
		r *= 1.2
	}
	p.ellipse.Init(p.pts[i].X, p.pts[i].Y, r, r, 32, false)
}

func (p *Polygon) device(cmd vertex.Command, x, y float64) (vertex.Command, float64, float64) {
	if cmd.IsVertex() {
		x, y = p.TransformXY(x, y)
	}
	return cmd, x, y
}

// InRect reports whether (x, y) is close to a vertex or an edge, or lies
// inside the polygon.
func (p *Polygon) InRect(x, y float64) bool {
	x, y = p.InverseTransformXY(x, y)
	q := vec.Vec2{X: x, Y: y}
	if p.nodeAt(q) >= 0 || p.edgeAt(q) >= 0 {
		return true
	}
	return p.inside(q)
}

// OnMouseButtonDown grabs a vertex, an edge or the whole polygon.
func (p *Polygon) OnMouseButtonDown(x, y float64) bool {
	p.node, p.edge = -1, -1
	x, y = p.InverseTransformXY(x, y)
	q := vec.Vec2{X: x, Y: y}

	if i := p.nodeAt(q); i >= 0 {
		p.dx = x - p.pts[i].X
		p.dy = y - p.pts[i].Y
		p.node = i
		return true
	}
	if i := p.edgeAt(q); i >= 0 {
		p.dx, p.dy = x, y
		p.edge = i
		return true
	}
	if p.inPolyCheck && p.inside(q) {
		p.dx, p.dy = x, y
		p.node = len(p.pts)
		return true
	}
	return false
}

// OnMouseMove drags the grabbed vertex, edge or polygon.
func (p *Polygon) OnMouseMove(x, y float64, buttonHeld bool) bool {
	x, y = p.InverseTransformXY(x, y)
	n := len(p.pts)
	switch {
	case p.node == n && n > 0:
		d := vec.Vec2{X: x - p.dx, Y: y - p.dy}
		for i := range p.pts {
			p.pts[i] = p.pts[i].Add(d)
		}
		p.dx, p.dy = x, y
	case p.edge >= 0:
		d := vec.Vec2{X: x - p.dx, Y: y - p.dy}
		i, j := p.edge, (p.edge+n-1)%n
		p.pts[i] = p.pts[i].Add(d)
		p.pts[j] = p.pts[j].Add(d)
		p.dx, p.dy = x, y
	case p.node >= 0 && p.node < n:
		p.pts[p.node] = vec.Vec2{X: x - p.dx, Y: y - p.dy}
	default:
		return false
	}
	return true
}

// OnMouseButtonUp releases whatever was grabbed.
// The release itself requires no redraw.
func (p *Polygon) OnMouseButtonUp(x, y float64) bool {
	p.node, p.edge = -1, -1
	return false
}

// OnArrowKeys implements the [InputHandler] interface.
func (p *Polygon) OnArrowKeys(left, right, down, up bool) bool { return false }

// nodeAt returns the first vertex within the grab radius of q, or -1.
func (p *Polygon) nodeAt(q vec.Vec2) int {
	r := p.invScale(p.radius)
	for i, pt := range p.pts {
		d := q.Sub(pt)
		if d.X*d.X+d.Y*d.Y < r*r {
			return i
		}
	}
	return -1
}

// edgeAt returns the first edge within the grab radius of q, or -1.
// Edge i connects vertex i-1 with vertex i.
func (p *Polygon) edgeAt(q vec.Vec2) int {
	n := len(p.pts)
	if n < 2 {
		return -1
	}
	r := p.invScale(p.radius)
	for i := range n {
		if i == 0 && !p.closed {
			continue
		}
		a := p.pts[(i+n-1)%n]
		b := p.pts[i]
		ab := b.Sub(a)
		l2 := ab.X*ab.X + ab.Y*ab.Y
		if l2 < 1e-14 {
			continue
		}
		aq := q.Sub(a)
		u := (aq.X*ab.X + aq.Y*ab.Y) / l2
		if u <= 0 || u >= 1 {
			continue
		}
		d := aq.Sub(ab.Mul(u))
		if d.X*d.X+d.Y*d.Y <= r*r {
			return i
		}
	}
	return -1
}

// inside reports whether q lies inside the polygon, using the nonzero
// winding rule.
func (p *Polygon) inside(q vec.Vec2) bool {
	if len(p.pts) < 3 {
		return false
	}
	p.hull.Truncate(0)
	for i, pt := range p.pts {
		if i == 0 {
			p.hull.MoveTo(curve.Pt(pt.X, pt.Y))
		} else {
			p.hull.LineTo(curve.Pt(pt.X, pt.Y))
		}
	}
	p.hull.ClosePath()
	return p.hull.Winding(curve.Pt(q.X, q.Y)) != 0
}

// polyline is the outline of a [Polygon] as a vertex source.
type polyline struct {
	p   *Polygon
	pos int
}

func (l *polyline) Rewind(pathID int) {
	l.pos = 0
	if pathID != 0 {
		l.pos = len(l.p.pts) + 1
	}
}

func (l *polyline) Vertex() (vertex.Command, float64, float64) {
	pts := l.p.pts
	i := l.pos
	switch {
	case i < len(pts):
		l.pos++
		if i == 0 {
			return vertex.MoveTo, pts[0].X, pts[0].Y
		}
		return vertex.LineTo, pts[i].X, pts[i].Y
	case i == len(pts) && len(pts) > 0:
		l.pos++
		if l.p.closed {
			return vertex.ClosePolygon(vertex.OrientNone), 0, 0
		}
		return vertex.EndPoly, 0, 0
	}
	return vertex.Stop, 0, 0
}
