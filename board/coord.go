package board

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A Coord is a (row, column) pair, 0-indexed from the top-left square.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Compare orders coordinates row-major.
func (c Coord) Compare(o Coord) int {
	if c.Row != o.Row {
		return c.Row - o.Row
	}
	return c.Col - o.Col
}

// ParseCoord parses a coordinate of the form "row,col".
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("coordinate %q must look like row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return Coord{Row: r, Col: c}, nil
}

// CoordSet is a set of coordinates used for containment tests.
type CoordSet map[Coord]struct{}

func NewCoordSet(cs ...Coord) CoordSet {
	s := make(CoordSet, len(cs))
	s.Add(cs...)
	return s
}

func (s CoordSet) Add(cs ...Coord) {
	for _, c := range cs {
		s[c] = struct{}{}
	}
}

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Union returns a new set holding the members of s and o.
func (s CoordSet) Union(o CoordSet) CoordSet {
	u := make(CoordSet, len(s)+len(o))
	for c := range s {
		u[c] = struct{}{}
	}
	for c := range o {
		u[c] = struct{}{}
	}
	return u
}

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coord {
	cs := make([]Coord, 0, len(s))
	for c := range s {
		cs = append(cs, c)
	}
	slices.SortFunc(cs, Coord.Compare)
	return cs
}

// CopyCoords returns a fresh copy of cs so callers never share backing
// arrays with the engine.
func CopyCoords(cs []Coord) []Coord {
	if cs == nil {
		return nil
	}
	out := make([]Coord, len(cs))
	copy(out, cs)
	return out
}

// StraightRun reports whether cs are distinct squares forming one unbroken
// line along a row or a column, in any order.
func StraightRun(cs []Coord) bool {
	if len(cs) == 0 {
		return false
	}
	sorted := slices.Clone(cs)
	slices.SortFunc(sorted, Coord.Compare)
	if len(sorted) == 1 {
		return true
	}
	step := Coord{Row: sorted[1].Row - sorted[0].Row, Col: sorted[1].Col - sorted[0].Col}
	if step != (Coord{0, 1}) && step != (Coord{1, 0}) {
		return false
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1].Add(step.Row, step.Col) {
			return false
		}
	}
	return true
}
