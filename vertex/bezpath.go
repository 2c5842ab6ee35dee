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

import "honnef.co/go/curve"

// ToBezPath records one sub-path of src as a [curve.BezPath].
//
// Since a filled polygon is always closed, every polygon is closed in the
// result, whether or not src closes it explicitly.
func ToBezPath(src Source, pathID int) curve.BezPath {
	var bp curve.BezPath
	var ctrl [2]curve.Point
	nCtrl := 0
	open := false

	closePoly := func() {
		if open {
			bp.ClosePath()
			open = false
		}
	}

	for _, v := range Collect(src, pathID) {
		pt := curve.Pt(v.X, v.Y)
		if v.Cmd.IsVertex() && !v.Cmd.IsMoveTo() && !open {
			// a polygon without MoveTo starts at its first vertex
			bp.MoveTo(pt)
			open = true
			nCtrl = 0
			continue
		}
		switch v.Cmd.Kind() {
		case MoveTo:
			closePoly()
			bp.MoveTo(pt)
			open = true
			nCtrl = 0
		case LineTo:
			bp.LineTo(pt)
			nCtrl = 0
		case Curve3:
			if nCtrl < 1 {
				ctrl[nCtrl] = pt
				nCtrl++
				continue
			}
			bp.QuadTo(ctrl[0], pt)
			nCtrl = 0
		case Curve4:
			if nCtrl < 2 {
				ctrl[nCtrl] = pt
				nCtrl++
				continue
			}
			bp.CubicTo(ctrl[0], ctrl[1], pt)
			nCtrl = 0
		case EndPoly:
			closePoly()
			nCtrl = 0
		}
	}
	closePoly()
	return bp
}
