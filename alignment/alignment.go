// Package alignment finds runs of adjacent hits and the squares that would
// extend them.
package alignment

import (
	"slices"

	"github.com/samber/lo"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/heatmap"
)

const (
	// Bounds for the smallest-plausible-ship estimate.
	MinPlausibleShip = 2
	MaxPlausibleShip = 5
)

// A Group is a maximal run of two or more adjacent hits in one row or
// column, ordered along the run.
type Group struct {
	Direction board.BoardDirection
	Coords    []board.Coord
}

func (g Group) Len() int {
	return len(g.Coords)
}

func (g Group) First() board.Coord {
	return g.Coords[0]
}

func (g Group) Last() board.Coord {
	return g.Coords[len(g.Coords)-1]
}

// Find groups the hits into aligned runs. Horizontal groups are returned
// first, ordered by row then starting column, followed by vertical groups
// ordered by column then starting row.
func Find(hits []board.Coord) []Group {
	hits = lo.Uniq(hits)
	byRow := lo.GroupBy(hits, func(c board.Coord) int { return c.Row })
	byCol := lo.GroupBy(hits, func(c board.Coord) int { return c.Col })

	var groups []Group
	groups = append(groups, runs(byRow, board.HorizontalDirection)...)
	groups = append(groups, runs(byCol, board.VerticalDirection)...)
	return groups
}

// runs splits each line of hits into maximal consecutive runs along dir and
// keeps the ones with at least two hits.
func runs(lines map[int][]board.Coord, dir board.BoardDirection) []Group {
	along := func(c board.Coord) int {
		if dir == board.HorizontalDirection {
			return c.Col
		}
		return c.Row
	}
	keys := lo.Keys(lines)
	slices.Sort(keys)

	var groups []Group
	for _, k := range keys {
		line := slices.Clone(lines[k])
		slices.SortFunc(line, func(a, b board.Coord) int { return along(a) - along(b) })
		cur := []board.Coord{line[0]}
		flush := func() {
			if len(cur) >= 2 {
				groups = append(groups, Group{Direction: dir, Coords: cur})
			}
		}
		for _, c := range line[1:] {
			if along(c)-along(cur[len(cur)-1]) == 1 {
				cur = append(cur, c)
				continue
			}
			flush()
			cur = []board.Coord{c}
		}
		flush()
	}
	return groups
}

// Isolated returns the hits that are not part of any group, in their
// original order.
func Isolated(hits []board.Coord, groups []Group) []board.Coord {
	grouped := board.CoordSet{}
	for _, g := range groups {
		grouped.Add(g.Coords...)
	}
	return lo.Filter(hits, func(c board.Coord, _ int) bool {
		return !grouped.Has(c)
	})
}

// ExtensionPoints returns the on-board squares just before the start and
// just after the end of the group, skipping misses.
func ExtensionPoints(g Group, d board.Dims, misses board.CoordSet) []board.Coord {
	dr, dc := g.Direction.Step()
	var pts []board.Coord
	for _, c := range []board.Coord{g.First().Add(-dr, -dc), g.Last().Add(dr, dc)} {
		if d.Contains(c) && !misses.Has(c) {
			pts = append(pts, c)
		}
	}
	return pts
}

// AllExtensionPoints returns the extension points of every group, without
// duplicates, in group order.
func AllExtensionPoints(groups []Group, d board.Dims, misses board.CoordSet) []board.Coord {
	var pts []board.Coord
	for _, g := range groups {
		pts = append(pts, ExtensionPoints(g, d, misses)...)
	}
	return lo.Uniq(pts)
}

// CompletionCells returns the extension points of groups that are exactly
// one square short of the target ship size.
func CompletionCells(groups []Group, target int, d board.Dims, misses board.CoordSet) []board.Coord {
	short := lo.Filter(groups, func(g Group, _ int) bool {
		return g.Len() == target-1
	})
	return AllExtensionPoints(short, d, misses)
}

// SmallestPlausibleShip estimates the ship size worth completing from the
// longest run of positive squares in any row or column of m, clamped to
// [MinPlausibleShip, MaxPlausibleShip].
func SmallestPlausibleShip(m *heatmap.Map) int {
	d := m.Dims()
	longest := 0
	scan := func(outer, inner int, at func(i, j int) board.Coord) {
		for i := 0; i < outer; i++ {
			run := 0
			for j := 0; j < inner; j++ {
				if m.At(at(i, j)) > 0 {
					run++
					longest = max(longest, run)
				} else {
					run = 0
				}
			}
		}
	}
	scan(d.Height, d.Width, func(i, j int) board.Coord { return board.Coord{Row: i, Col: j} })
	scan(d.Width, d.Height, func(i, j int) board.Coord { return board.Coord{Row: j, Col: i} })
	return min(max(longest, MinPlausibleShip), MaxPlausibleShip)
}
