package strategy

import (
	"github.com/samber/lo"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/heatmap"
	"github.com/domino14/salvo/placement"
)

// Corners returns the squares that close the rectangle spanned by any two
// hits sharing neither a row nor a column. Such a pair often belongs to two
// ships meeting at a corner, or one ship plus a stray hit. Off-board squares,
// hits and misses are skipped.
func Corners(hits []board.Coord, d board.Dims, misses board.CoordSet) []board.Coord {
	hitSet := board.NewCoordSet(hits...)
	var cs []board.Coord
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			a, b := hits[i], hits[j]
			if a.Row == b.Row || a.Col == b.Col {
				continue
			}
			for _, c := range []board.Coord{{Row: a.Row, Col: b.Col}, {Row: b.Row, Col: a.Col}} {
				if d.Contains(c) && !hitSet.Has(c) && !misses.Has(c) {
					cs = append(cs, c)
				}
			}
		}
	}
	return lo.Uniq(cs)
}

// Entropy scores every live square of m by how many placements of the
// remaining ships pass through it, scaled so the best square scores 1.
// Squares that are zero in m score zero.
func Entropy(m *heatmap.Map, ev Evidence) *heatmap.Map {
	out := heatmap.New(ev.Dims)
	for _, c := range m.Live() {
		n := 0
		for _, l := range ev.Remaining {
			n += placement.CountThrough(ev.Dims, c, l, ev.Misses)
		}
		out.Set(c, float64(n))
	}
	out.ScaleToMax()
	return out
}

// Blend mixes the entropy score into m with the given weight. m is first
// scaled so its largest square is 1, putting both terms on the same range.
// Squares that are zero in m stay zero.
func Blend(m, entropy *heatmap.Map, weight float64) {
	m.ScaleToMax()
	for _, c := range m.Live() {
		m.Set(c, (1-weight)*m.At(c)+weight*entropy.At(c))
	}
}
