package placement

import (
	"github.com/samber/lo"

	"github.com/domino14/salvo/board"
)

// Consistent returns true if the known hits lying inside p form one unbroken
// stretch of its squares. A placement that covers no hits is consistent.
func Consistent(p Placement, hits board.CoordSet) bool {
	first, last, n := -1, -1, 0
	for i, c := range p.Cells {
		if !hits.Has(c) {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
		n++
	}
	if n == 0 {
		return true
	}
	return last-first+1 == n
}

// Filter keeps only the consistent placements. The input is not modified.
func Filter(ps []Placement, hits board.CoordSet) []Placement {
	return lo.Filter(ps, func(p Placement, _ int) bool {
		return Consistent(p, hits)
	})
}

// CountThrough counts the placements of the given length, in both
// directions, that pass through c and stay on the board without touching a
// miss. The square c itself is not checked against the misses.
func CountThrough(d board.Dims, c board.Coord, length int, misses board.CoordSet) int {
	if length <= 0 || !d.Contains(c) {
		return 0
	}
	count := 0
	for _, dir := range []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection} {
		dr, dc := dir.Step()
	offsets:
		for off := 0; off < length; off++ {
			start := c.Add(-dr*off, -dc*off)
			for i := 0; i < length; i++ {
				sq := start.Add(dr*i, dc*i)
				if !d.Contains(sq) {
					continue offsets
				}
				if sq != c && misses.Has(sq) {
					continue offsets
				}
			}
			count++
		}
	}
	return count
}
