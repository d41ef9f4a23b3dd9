package board

import (
	"fmt"
)

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// Step returns the row and column deltas for one cell along the direction.
func (bd BoardDirection) Step() (int, int) {
	if bd == VerticalDirection {
		return 1, 0
	}
	return 0, 1
}

// Dims are the dimensions of a rectangular board.
type Dims struct {
	Height int
	Width  int
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Height, d.Width)
}

func (d Dims) Valid() bool {
	return d.Height > 0 && d.Width > 0
}

func (d Dims) NumSquares() int {
	return d.Height * d.Width
}

// Contains returns true if the coordinate is on the board.
func (d Dims) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < d.Height && c.Col >= 0 && c.Col < d.Width
}

// Index returns the row-major index of an on-board coordinate.
func (d Dims) Index(c Coord) int {
	return c.Row*d.Width + c.Col
}

func (d Dims) CoordAt(idx int) Coord {
	return Coord{Row: idx / d.Width, Col: idx % d.Width}
}

// Neighbors returns the on-board 4-neighbourhood of c in the order
// up, down, left, right.
func (d Dims) Neighbors(c Coord) []Coord {
	ns := make([]Coord, 0, 4)
	for _, delta := range [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		n := Coord{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
		if d.Contains(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// Corners returns the four corner squares of the board. Boards with a
// single row or column return duplicates collapsed.
func (d Dims) Corners() []Coord {
	cs := NewCoordSet(
		Coord{0, 0},
		Coord{0, d.Width - 1},
		Coord{d.Height - 1, 0},
		Coord{d.Height - 1, d.Width - 1},
	)
	return cs.Sorted()
}

// A SunkShip is a ship that has been fully identified. Its squares no longer
// take part in targeting.
type SunkShip struct {
	Length    int
	Positions []Coord
}

func (s SunkShip) Copy() SunkShip {
	ps := make([]Coord, len(s.Positions))
	copy(ps, s.Positions)
	return SunkShip{Length: s.Length, Positions: ps}
}

// SunkSquares returns every square occupied by the given sunk ships.
func SunkSquares(ships []SunkShip) CoordSet {
	cs := CoordSet{}
	for _, s := range ships {
		cs.Add(s.Positions...)
	}
	return cs
}
