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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DataSource presents a [path.Data] as a [Source] with a single sub-path.
type DataSource struct {
	data  *path.Data
	cmd   int // index into data.Cmds
	coord int // index into data.Coords
	sub   int // vertex within the current command
	done  bool
}

// FromData returns a source which replays p.
// The path is not copied; it must not be modified during iteration.
func FromData(p *path.Data) *DataSource {
	return &DataSource{data: p, done: true}
}

// Rewind implements the [Source] interface.
func (s *DataSource) Rewind(pathID int) {
	s.cmd, s.coord, s.sub = 0, 0, 0
	s.done = pathID != 0 || s.data == nil
}

// Vertex implements the [Source] interface.
func (s *DataSource) Vertex() (Command, float64, float64) {
	if s.done || s.cmd >= len(s.data.Cmds) {
		s.done = true
		return Stop, 0, 0
	}

	var kind Command
	var n int
	switch s.data.Cmds[s.cmd] {
	case path.CmdMoveTo:
		kind, n = MoveTo, 1
	case path.CmdLineTo:
		kind, n = LineTo, 1
	case path.CmdQuadTo:
		kind, n = Curve3, 2
	case path.CmdCubeTo:
		kind, n = Curve4, 3
	case path.CmdClose:
		s.cmd++
		return ClosePolygon(OrientNone), 0, 0
	default:
		s.done = true
		return Stop, 0, 0
	}

	p := s.data.Coords[s.coord+s.sub]
	s.sub++
	if s.sub == n {
		s.cmd++
		s.coord += n
		s.sub = 0
	}
	return kind, p.X, p.Y
}

// ToData records one sub-path of src as a [path.Data].
// Polygons are closed only where src closes them explicitly.
func ToData(src Source, pathID int) *path.Data {
	p := &path.Data{}
	var ctrl [2]vec.Vec2
	nCtrl := 0

	for _, v := range Collect(src, pathID) {
		pt := vec.Vec2{X: v.X, Y: v.Y}
		switch v.Cmd.Kind() {
		case MoveTo:
			p = p.MoveTo(pt)
			nCtrl = 0
		case LineTo:
			p = p.LineTo(pt)
			nCtrl = 0
		case Curve3:
			if nCtrl < 1 {
				ctrl[nCtrl] = pt
				nCtrl++
				continue
			}
			p = p.QuadTo(ctrl[0], pt)
			nCtrl = 0
		case Curve4:
			if nCtrl < 2 {
				ctrl[nCtrl] = pt
				nCtrl++
				continue
			}
			p = p.CubeTo(ctrl[0], ctrl[1], pt)
			nCtrl = 0
		case EndPoly:
			if v.Cmd.IsClosed() {
				p = p.Close()
			}
			nCtrl = 0
		}
	}
	return p
}
