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

package vertex

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke converts the polylines of a source into outline polygons, which,
// when filled with the nonzero winding rule, cover the stroked lines.
//
// Every segment becomes a quadrilateral, and joins and caps become separate
// small polygons. All emitted polygons are counter-clockwise, so that
// overlapping pieces add up instead of cancelling.
//
// Curve vertices of the input are treated as polyline vertices.
//
// Internal buffers grow as needed but never shrink.
type Stroke struct {
	// Width is the line width, in the coordinates of the source.
	Width float64

	// Cap is the style used at the ends of open polylines.
	Cap graphics.LineCapStyle

	// Join is the style used at the corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the maximal ratio of miter length to line width.
	MiterLimit float64

	src Source

	// input state
	pts        []vec.Vec2 // vertices of the current polyline
	closed     bool
	srcDone    bool
	pending    vec.Vec2 // start of the next polyline, already read
	hasPending bool

	// generator state
	stage stage
	item  int
	nSeg  int

	// output polygon
	poly    [maxPoly]vec.Vec2
	polyN   int
	polyPos int
}

type stage uint8

const (
	stageDone stage = iota
	stageDot
	stageStartCap
	stageSegments
	stageJoins
	stageEndCap
)

// maxPoly is the maximal number of vertices of a single output polygon.
const maxPoly = 64

// Geometric tolerances of the stroker.
const (
	// zeroLengthThreshold is the minimum length of a segment.
	// Shorter segments are dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect corners which need no join.
	collinearityThreshold = 1e-6
)

// NewStroke returns a stroke converter for src, with the given line width,
// round caps and round joins.
func NewStroke(src Source, width float64) *Stroke {
	return &Stroke{
		Width:      width,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 4,
		src:        src,
	}
}

// Attach replaces the source of the stroke converter.
func (s *Stroke) Attach(src Source) {
	s.src = src
}

// Rewind implements the [Source] interface.
// The sub-path index is passed on to the underlying source.
func (s *Stroke) Rewind(pathID int) {
	s.pts = s.pts[:0]
	s.srcDone = s.src == nil
	s.hasPending = false
	s.stage = stageDone
	s.polyN = 0
	s.polyPos = 0
	if s.src != nil {
		s.src.Rewind(pathID)
	}
}

// Vertex implements the [Source] interface.
func (s *Stroke) Vertex() (Command, float64, float64) {
	for {
		if s.polyPos < s.polyN {
			p := s.poly[s.polyPos]
			s.polyPos++
			if s.polyPos == 1 {
				return MoveTo, p.X, p.Y
			}
			return LineTo, p.X, p.Y
		}
		if s.polyN > 0 {
			s.polyN = 0
			s.polyPos = 0
			return ClosePolygon(OrientCCW), 0, 0
		}

		if s.nextPolygon() {
			continue
		}
		if !s.readPolyline() {
			return Stop, 0, 0
		}
		s.startPolyline()
	}
}

// readPolyline reads the next polyline from the source into s.pts.
// It returns false if the source is exhausted.
func (s *Stroke) readPolyline() bool {
	s.pts = s.pts[:0]
	s.closed = false
	if s.hasPending {
		s.pts = append(s.pts, s.pending)
		s.hasPending = false
	}
	for !s.srcDone {
		cmd, x, y := s.src.Vertex()
		switch {
		case cmd.IsStop():
			s.srcDone = true
		case cmd.IsMoveTo():
			if len(s.pts) > 0 {
				s.pending = vec.Vec2{X: x, Y: y}
				s.hasPending = true
				return true
			}
			s.pts = append(s.pts, vec.Vec2{X: x, Y: y})
		case cmd.IsVertex():
			s.pts = append(s.pts, vec.Vec2{X: x, Y: y})
		case cmd.IsEndPoly():
			if len(s.pts) > 0 {
				s.closed = cmd.IsClosed()
				return true
			}
		}
	}
	return len(s.pts) > 0
}

// startPolyline removes repeated vertices and sets up the generator
// for the polyline in s.pts.
func (s *Stroke) startPolyline() {
	n := 1
	for i := 1; i < len(s.pts); i++ {
		if s.pts[i].Sub(s.pts[n-1]).Length() >= zeroLengthThreshold {
			s.pts[n] = s.pts[i]
			n++
		}
	}
	if s.closed && n > 1 && s.pts[n-1].Sub(s.pts[0]).Length() < zeroLengthThreshold {
		n--
	}
	s.pts = s.pts[:n]
	if n < 3 {
		s.closed = false
	}

	s.item = 0
	switch {
	case n == 1:
		s.stage = stageDot
	case s.closed:
		s.nSeg = n
		s.stage = stageSegments
	default:
		s.nSeg = n - 1
		s.stage = stageStartCap
	}
}

// nextPolygon fills s.poly with the next output polygon of the current
// polyline. It returns false once the polyline is exhausted.
func (s *Stroke) nextPolygon() bool {
	d := s.Width / 2
	if d <= 0 {
		s.stage = stageDone
		return false
	}

	for s.stage != stageDone {
		s.polyN = 0
		switch s.stage {
		case stageDot:
			s.stage = stageDone
			switch s.Cap {
			case graphics.LineCapRound:
				s.addDisk(s.pts[0], d)
			case graphics.LineCapSquare:
				p := s.pts[0]
				s.add(p.Add(vec.Vec2{X: -d, Y: -d}), p.Add(vec.Vec2{X: d, Y: -d}),
					p.Add(vec.Vec2{X: d, Y: d}), p.Add(vec.Vec2{X: -d, Y: d}))
			}

		case stageStartCap:
			s.stage = stageSegments
			t := unit(s.pts[1].Sub(s.pts[0]))
			s.addCap(s.pts[0], t.Mul(-1), d)

		case stageSegments:
			if s.item >= s.nSeg {
				s.stage = stageJoins
				s.item = 0
				continue
			}
			a := s.pts[s.item]
			b := s.pts[(s.item+1)%len(s.pts)]
			s.item++
			n := normal(unit(b.Sub(a))).Mul(d)
			s.add(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))

		case stageJoins:
			k := len(s.pts)
			first, last := 0, k-1
			if !s.closed {
				first, last = 1, k-2
			}
			if s.item < first {
				s.item = first
			}
			if s.item > last {
				s.stage = stageEndCap
				if s.closed {
					s.stage = stageDone
				}
				continue
			}
			j := s.item
			s.item++
			p := s.pts[j]
			t1 := unit(p.Sub(s.pts[(j-1+k)%k]))
			t2 := unit(s.pts[(j+1)%k].Sub(p))
			s.addJoin(p, t1, t2, d)

		case stageEndCap:
			s.stage = stageDone
			k := len(s.pts)
			t := unit(s.pts[k-1].Sub(s.pts[k-2]))
			s.addCap(s.pts[k-1], t, d)
		}

		if s.finishPolygon() {
			return true
		}
	}
	return false
}

// addCap adds a line cap at p. The vector t points away from the line.
func (s *Stroke) addCap(p, t vec.Vec2, d float64) {
	switch s.Cap {
	case graphics.LineCapRound:
		s.addDisk(p, d)
	case graphics.LineCapSquare:
		n := normal(t).Mul(d)
		ext := p.Add(t.Mul(d))
		s.add(p.Add(n), ext.Add(n), ext.Sub(n), p.Sub(n))
	}
}

// addJoin adds the join at corner p between incoming direction t1 and
// outgoing direction t2.
func (s *Stroke) addJoin(p, t1, t2 vec.Vec2, d float64) {
	sinTheta := t1.X*t2.Y - t1.Y*t2.X
	cosTheta := t1.Dot(t2)
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	if s.Join == graphics.LineJoinRound {
		s.addDisk(p, d)
		return
	}

	// The outer side of a left turn is the right-hand side.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side * d)
	n2 := normal(t2).Mul(side * d)

	if s.Join == graphics.LineJoinMiter && 1+cosTheta > 1e-9 {
		// The miter extends d/cos(θ/2) from p, and 1+cos(θ) = 2cos²(θ/2).
		ratio := 1 / math.Sqrt((1+cosTheta)/2)
		if ratio <= s.MiterLimit {
			m := p.Add(n1.Add(n2).Mul(1 / (1 + cosTheta)))
			s.add(p, p.Add(n1), m, p.Add(n2))
			return
		}
	}
	s.add(p, p.Add(n1), p.Add(n2))
}

// addDisk adds a polygonal disk of radius d around p.
func (s *Stroke) addDisk(p vec.Vec2, d float64) {
	n := min(ellipseSteps(d, d), maxPoly)
	for i := range n {
		angle := float64(i) / float64(n) * 2 * math.Pi
		s.poly[s.polyN] = vec.Vec2{X: p.X + d*math.Cos(angle), Y: p.Y + d*math.Sin(angle)}
		s.polyN++
	}
}

func (s *Stroke) add(pts ...vec.Vec2) {
	s.polyN += copy(s.poly[s.polyN:], pts)
}

// finishPolygon makes the output polygon counter-clockwise.
// It returns false if the polygon encloses no area.
func (s *Stroke) finishPolygon() bool {
	poly := s.poly[:s.polyN]
	var area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 || math.IsNaN(area) {
		s.polyN = 0
		return false
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	s.polyPos = 0
	return true
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns t rotated by 90° counter-clockwise.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}
