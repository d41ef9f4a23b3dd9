// Package placement enumerates the squares a single ship could occupy.
package placement

import (
	"strings"

	"github.com/domino14/salvo/board"
)

// A Placement is a run of contiguous squares in one row or column, ordered
// along the direction of the run.
type Placement struct {
	Direction board.BoardDirection
	Cells     []board.Coord
}

func (p Placement) Len() int {
	return len(p.Cells)
}

func (p Placement) String() string {
	var sb strings.Builder
	for i, c := range p.Cells {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(c.String())
	}
	return p.Direction.String() + " " + sb.String()
}

// Covers returns true if c is one of the squares of the placement.
func (p Placement) Covers(c board.Coord) bool {
	for _, pc := range p.Cells {
		if pc == c {
			return true
		}
	}
	return false
}

// fits reports whether a ship of the given length starting at start and
// extending along dir stays on the board and avoids every blocked square.
func fits(d board.Dims, start board.Coord, length int, dir board.BoardDirection,
	blocked board.CoordSet) bool {

	dr, dc := dir.Step()
	for i := 0; i < length; i++ {
		c := start.Add(dr*i, dc*i)
		if !d.Contains(c) || blocked.Has(c) {
			return false
		}
	}
	return true
}

func build(start board.Coord, length int, dir board.BoardDirection) Placement {
	dr, dc := dir.Step()
	cells := make([]board.Coord, length)
	for i := range cells {
		cells[i] = start.Add(dr*i, dc*i)
	}
	return Placement{Direction: dir, Cells: cells}
}

// Enumerate lists every placement of a ship of the given length that lies on
// the board and touches no blocked square. Horizontal placements come first,
// row-major by starting square, then vertical placements in the same order.
func Enumerate(d board.Dims, length int, blocked board.CoordSet) []Placement {
	if length <= 0 || !d.Valid() {
		return nil
	}
	var ps []Placement
	for _, dir := range []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection} {
		Each(d, length, dir, blocked, func(start board.Coord) {
			ps = append(ps, build(start, length, dir))
		})
	}
	return ps
}

// Each calls fn with the starting square of every legal placement along dir,
// in row-major order, without allocating the placements themselves.
func Each(d board.Dims, length int, dir board.BoardDirection, blocked board.CoordSet,
	fn func(start board.Coord)) {

	if length <= 0 {
		return
	}
	dr, dc := dir.Step()
	maxRow := d.Height - dr*(length-1)
	maxCol := d.Width - dc*(length-1)
	for r := 0; r < maxRow; r++ {
		for c := 0; c < maxCol; c++ {
			start := board.Coord{Row: r, Col: c}
			if fits(d, start, length, dir, blocked) {
				fn(start)
			}
		}
	}
}
