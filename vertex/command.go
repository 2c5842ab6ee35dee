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

// Package vertex defines the lazy path protocol shared by every path
// producer in this module, together with a few generators and converters
// built on it.
//
// A producer implements [Source]. The consumer selects a sub-path with
// [Source.Rewind] and then calls [Source.Vertex] until it returns [Stop].
package vertex

import (
	"strconv"
	"strings"
)

// Command is a path command, optionally combined with flags.
//
// The low four bits hold the command kind. For [EndPoly] the flags
// [FlagCCW], [FlagCW] and [FlagClose] may be set.
type Command uint8

// Command kinds.
const (
	Stop    Command = iota // end of the sub-path
	MoveTo                 // start a new polygon at (x, y)
	LineTo                 // straight line to (x, y)
	Curve3                 // quadratic Bézier: control point, then end point
	Curve4                 // cubic Bézier: two control points, then end point
	EndPoly                // end of a polygon; the coordinates are unused

	kindMask Command = 0x0F
)

// Flags for [EndPoly].
const (
	FlagCCW   Command = 0x10
	FlagCW    Command = 0x20
	FlagClose Command = 0x40

	orientMask = FlagCCW | FlagCW
)

// Orientation is the winding direction of a polygon.
type Orientation uint8

// Possible values of an [Orientation].
const (
	OrientNone Orientation = iota
	OrientCCW
	OrientCW
)

// ClosePolygon returns the command which closes the current polygon.
func ClosePolygon(o Orientation) Command {
	cmd := EndPoly | FlagClose
	switch o {
	case OrientCCW:
		cmd |= FlagCCW
	case OrientCW:
		cmd |= FlagCW
	}
	return cmd
}

// Kind returns the command with all flags removed.
func (c Command) Kind() Command {
	return c & kindMask
}

// IsStop reports whether c ends the sub-path.
func (c Command) IsStop() bool {
	return c.Kind() == Stop
}

// IsVertex reports whether c carries a coordinate.
func (c Command) IsVertex() bool {
	k := c.Kind()
	return k >= MoveTo && k <= Curve4
}

// IsMoveTo reports whether c starts a new polygon.
func (c Command) IsMoveTo() bool {
	return c.Kind() == MoveTo
}

// IsCurve reports whether c is a Bézier vertex.
func (c Command) IsCurve() bool {
	k := c.Kind()
	return k == Curve3 || k == Curve4
}

// IsEndPoly reports whether c ends a polygon.
func (c Command) IsEndPoly() bool {
	return c.Kind() == EndPoly
}

// IsClosed reports whether c ends a polygon and closes it.
func (c Command) IsClosed() bool {
	return c.IsEndPoly() && c&FlagClose != 0
}

// Orientation returns the orientation recorded in an [EndPoly] command.
func (c Command) Orientation() Orientation {
	if !c.IsEndPoly() {
		return OrientNone
	}
	switch c & orientMask {
	case FlagCCW:
		return OrientCCW
	case FlagCW:
		return OrientCW
	}
	return OrientNone
}

func (c Command) String() string {
	var name string
	switch c.Kind() {
	case Stop:
		name = "Stop"
	case MoveTo:
		name = "MoveTo"
	case LineTo:
		name = "LineTo"
	case Curve3:
		name = "Curve3"
	case Curve4:
		name = "Curve4"
	case EndPoly:
		name = "EndPoly"
	default:
		return "Command(" + strconv.Itoa(int(c.Kind())) + ")"
	}
	if !c.IsEndPoly() {
		return name
	}

	var b strings.Builder
	b.WriteString(name)
	if c&FlagClose != 0 {
		b.WriteString("|Close")
	}
	switch c.Orientation() {
	case OrientCCW:
		b.WriteString("|CCW")
	case OrientCW:
		b.WriteString("|CW")
	}
	return b.String()
}
