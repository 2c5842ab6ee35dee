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

// Package raster turns vertex sources into anti-aliased pixel coverage and
// composites the coverage into images.
//
// A [Rasteriser] accumulates the edges of one or more sub-paths, and
// [Rasteriser.Sweep] converts them into spans of a [Scanline]. A [Renderer]
// then fills the spans with a solid color. [Vector] is an alternative
// rasteriser, based on golang.org/x/image/vector.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ctrl/vertex"
)

// FillRule selects how overlapping polygons are combined.
type FillRule uint8

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// Rasteriser converts vertex sources to pixel coverage values.
// The caller creates one instance and reuses it for many paths.
// Internal buffers grow as needed but never shrink, achieving zero
// allocations in steady state.
//
// All polygons are filled as if they were closed.
type Rasteriser struct {
	// CTM is applied to all vertices before rasterisation.
	// Must be a non-singular matrix.
	CTM matrix.Matrix

	// Clip defines the output region in device coordinates.
	// Must be a rectangle with integer-aligned coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0. Typical values are 0.25-1.0.
	Flatness float64

	// Rule is the fill rule used by Fill and Sweep.
	Rule FillRule

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers (Approach A). Paths with larger bounding boxes use
	// the active edge list (Approach B).
	smallPathThreshold int

	// Internal buffers (reused across calls)
	cover       []float32 // coverage accumulation: cover change per pixel; reused as output
	area        []float32 // coverage accumulation: area within pixel
	edges       []edge    // edges added since the last Reset (device coordinates)
	activeIdx   []int     // indices of active edges
	rowHasEdges []bool    // per-scanline flag: true if any edge contributes

	// bounding box of all edges, in device space
	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle,
// the identity transformation and the nonzero winding rule.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Rule:     NonZero,

		smallPathThreshold: smallPathThreshold,
		edgeBBoxFirst:      true,
	}
}

// Reset discards all edges added so far.
func (r *Rasteriser) Reset() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// AddPath reads one sub-path of src and adds its edges.
//
// Open polygons are closed implicitly. Vertices which arrive without a
// preceding MoveTo start a new polygon.
func (r *Rasteriser) AddPath(src vertex.Source, pathID int) {
	src.Rewind(pathID)

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	var ctrl [2]vec.Vec2 // pending curve control points
	nCtrl := 0
	open := false

	for range vertex.MaxCollect {
		cmd, x, y := src.Vertex()
		if cmd.IsStop() {
			break
		}
		p := vec.Vec2{X: x, Y: y}

		if cmd.IsVertex() && (cmd.IsMoveTo() || !open) {
			if open && current != subpath {
				r.addEdge(current, subpath)
			}
			current, subpath = p, p
			open = true
			nCtrl = 0
			continue
		}

		switch cmd.Kind() {
		case vertex.LineTo:
			r.addEdge(current, p)
			current = p
			nCtrl = 0

		case vertex.Curve3:
			if nCtrl < 1 {
				ctrl[nCtrl] = p
				nCtrl++
				continue
			}
			r.flattenQuadratic(current, ctrl[0], p, r.addEdge)
			current = p
			nCtrl = 0

		case vertex.Curve4:
			if nCtrl < 2 {
				ctrl[nCtrl] = p
				nCtrl++
				continue
			}
			r.flattenCubic(current, ctrl[0], ctrl[1], p, r.addEdge)
			current = p
			nCtrl = 0

		case vertex.EndPoly:
			if open && current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
			open = false
			nCtrl = 0
		}
	}
	if open && current != subpath {
		r.addEdge(current, subpath)
	}
}

// Sweep appends the coverage of all edges added since the last Reset to sl.
// It returns true if any pixel is covered.
func (r *Rasteriser) Sweep(sl *Scanline) bool {
	n := sl.Len()
	r.Fill(sl.Add)
	return sl.Len() > n
}

// Fill computes the coverage of all edges added since the last Reset,
// using r.Rule. The emit callback receives coverage row-by-row; its slice
// argument is valid only during the call.
func (r *Rasteriser) Fill(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.bbox()
	if !ok {
		return // empty or degenerate path
	}

	width := xMax - xMin
	height := yMax - yMin
	if width*height < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, emit)
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
// All points are in user space; CTM-aware tolerance checking is used.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint. All in user space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	mDev := max(r.transformLinear(d1).Length(), r.transformLinear(d2).Length())
	n := 1
	if mDev > 0 {
		nFloat := math.Sqrt(3 * mDev / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		emit(prev, pt)
		prev = pt
	}
}

// bbox returns the bounding box of all edges in device coordinates,
// clamped to the clip rectangle.
func (r *Rasteriser) bbox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy)

	xMin = max(int(math.Floor(r.edgeDevXMin)), clipXMin)
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, clipXMax)
	yMin = max(int(math.Floor(r.edgeDevYMin)), clipYMin)
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, clipYMax)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge adds an edge from user space coordinates, transforming to device space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	if math.IsNaN(dx0+dy0+dx1+dy1) || math.IsInf(dx0+dy0+dx1+dy1, 0) {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(dx0, dx1)
		r.edgeDevXMax = max(dx0, dx1)
		r.edgeDevYMin = min(dy0, dy1)
		r.edgeDevYMax = max(dy0, dy1)
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, dx0, dx1)
		r.edgeDevXMax = max(r.edgeDevXMax, dx0, dx1)
		r.edgeDevYMin = min(r.edgeDevYMin, dy0, dy1)
		r.edgeDevYMax = max(r.edgeDevYMax, dy0, dy1)
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (where sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (where xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by the integrate functions:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]   (carry forward for next pixel)

// accumulateEdge adds a single edge's contribution to the cover and area buffers.
// The buffers are indexed by (x - bboxXMin). Edges spanning several pixels
// horizontally are split at pixel boundaries.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := xAtYTop, xAtYBot
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}

	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	// edge entirely to the left of the bbox
	if pixRight < bboxXMin {
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	// edge entirely to the right of the bbox
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		accumulateInColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yAtPixLeft := e.y0 + dydx*(float64(pix)-e.x0)
		yAtPixRight := e.y0 + dydx*(float64(pix+1)-e.x0)

		segYMin := max(min(yAtPixLeft, yAtPixRight), yTop)
		segYMax := min(max(yAtPixLeft, yAtPixRight), yBot)
		segDy := segYMax - segYMin
		if segDy <= 0 {
			continue
		}

		coverVal := sign * float32(segDy)
		yMid := (segYMin + segYMax) / 2
		xMid := e.x0 + e.dxdy*(yMid-e.y0)
		areaVal := coverVal * float32(1-(xMid-float64(pix)))

		if pix < bboxXMin {
			cover[0] += coverVal
			area[0] += coverVal
		} else if pix < bboxXMax {
			idx := pix - bboxXMin
			cover[idx] += coverVal
			area[idx] += areaVal
		}
	}
}

// accumulateInColumn handles an edge segment that falls within a single pixel column.
func accumulateInColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	areaVal := coverVal * float32(1-(xMid-float64(pix)))

	idx := pix - bboxXMin
	cover[idx] += coverVal
	area[idx] += areaVal
}

// integrate converts accumulated cover/area to final coverage values.
// The cover slice is modified in place.
func integrate(rule FillRule, cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}

		var cov float32
		if rule == EvenOdd {
			// 1 - abs(1 - mod(raw, 2))
			mod := raw - 2*float32(int(raw/2))
			cov = 1 - abs32(1-mod)
		} else {
			cov = min(raw, 1)
		}
		cover[i] = cov
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// fillSmallPath rasterises using 2D buffers (Approach A).
func (r *Rasteriser) fillSmallPath(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]

		edgeYMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		edgeYMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)

		for y := edgeYMin; y < edgeYMax; y++ {
			row := y - yMin
			rowOffset := row * width
			r.accumulateEdge(e, y, r.cover[rowOffset:rowOffset+width], r.area[rowOffset:rowOffset+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		rowOffset := row * width
		coverage := r.cover[rowOffset : rowOffset+width]
		integrate(r.Rule, coverage, r.area[rowOffset:rowOffset+width])

		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLargePath rasterises using 1D buffers and an active edge list (Approach B).
func (r *Rasteriser) fillLargePath(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for nextEdge < len(r.edges) {
			e := &r.edges[nextEdge]
			if min(e.y0, e.y1) >= yfNext {
				break
			}
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		contributed := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// remove from active list (swap with last)
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}

			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			if min(yfNext, max(e.y0, e.y1)) > max(yf, min(e.y0, e.y1)) {
				contributed = true
			}
			i++
		}
		if !contributed {
			continue
		}

		integrate(r.Rule, r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers (Approach A).
	smallPathThreshold = 65536
)
