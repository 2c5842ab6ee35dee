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

// Source produces path commands lazily, one vertex at a time.
//
// Rewind selects the sub-path with the given index and restarts iteration.
// Calling Rewind again with the same index restarts the same sequence.
// Vertex returns the next command of the selected sub-path. Once [Stop] has
// been returned, further calls return [Stop] until Rewind is called.
//
// Indices which a source does not define are empty sub-paths: the first
// call to Vertex returns [Stop].
type Source interface {
	Rewind(pathID int)
	Vertex() (cmd Command, x, y float64)
}

// Vertex is a single path command together with its coordinates.
type Vertex struct {
	Cmd  Command
	X, Y float64
}

// MaxCollect limits the number of vertices read by [Collect].
const MaxCollect = 1 << 20

// Collect reads one sub-path of src into memory. The final [Stop] is not
// included. At most [MaxCollect] vertices are read, so that a misbehaving
// source cannot hang the caller.
func Collect(src Source, pathID int) []Vertex {
	var res []Vertex
	src.Rewind(pathID)
	for range MaxCollect {
		cmd, x, y := src.Vertex()
		if cmd.IsStop() {
			break
		}
		res = append(res, Vertex{Cmd: cmd, X: x, Y: y})
	}
	return res
}

// Empty is a source without vertices.
type Empty struct{}

// Rewind implements the [Source] interface.
func (Empty) Rewind(int) {}

// Vertex implements the [Source] interface.
func (Empty) Vertex() (Command, float64, float64) { return Stop, 0, 0 }
