package strategy

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/salvo/alignment"
	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/heatmap"
)

// Evidence is what the modulators know about the board. Hits must already
// exclude the squares of confirmed sunk ships.
type Evidence struct {
	Dims      board.Dims
	Hits      []board.Coord
	Misses    board.CoordSet
	Remaining []int
}

// Apply multiplies m in place by the weights of the given mode. The mode is
// used as-is; callers resolve auto-upgrades with Mode.Effective first.
// m is not normalized afterwards.
func Apply(m *heatmap.Map, mode Mode, ev Evidence) {
	p := ParamsFor(mode)
	if len(ev.Hits) == 0 && p.NoHits != mode {
		log.Debug().Str("mode", mode.String()).Str("fallback", p.NoHits.String()).
			Msg("no-active-hits")
		p = ParamsFor(p.NoHits)
	}
	// The completion estimate reads the map before anything is boosted.
	completionTarget := alignment.SmallestPlausibleShip(m)

	if p.ParityDamping > 0 {
		p.parity(m)
	}
	if p.InitialSearch && len(ev.Hits) == 0 {
		p.initialSearch(m, ev)
	}
	if p.AdjacencyFactor > 0 {
		for _, c := range neighborsOf(ev.Hits, ev.Dims) {
			m.MulCapped(c, p.AdjacencyFactor, p.AdjacencyCap)
		}
	}
	if len(ev.Hits) == 0 {
		return
	}

	groups := alignment.Find(ev.Hits)
	log.Debug().Str("mode", mode.String()).Int("hits", len(ev.Hits)).
		Int("groups", len(groups)).Int("completion-target", completionTarget).
		Msg("target-phase")

	if p.ExtensionFactor > 0 && len(groups) > 0 {
		boost(m, alignment.AllExtensionPoints(groups, ev.Dims, ev.Misses), p.ExtensionFactor)
	}
	switch p.Neighbors {
	case NeighborsWhenUnaligned:
		if len(groups) == 0 {
			boost(m, neighborsOf(ev.Hits, ev.Dims), p.NeighborFactor)
		}
	case NeighborsOfIsolated:
		boost(m, neighborsOf(alignment.Isolated(ev.Hits, groups), ev.Dims), p.NeighborFactor)
	}
	if p.CompletionFactor > 0 {
		boost(m, alignment.CompletionCells(groups, completionTarget, ev.Dims, ev.Misses),
			p.CompletionFactor)
	}
	if p.PatternNeighborFactor > 0 {
		boost(m, neighborsOf(ev.Hits, ev.Dims), p.PatternNeighborFactor)
	}
	if p.CornerFactor > 0 {
		boost(m, Corners(ev.Hits, ev.Dims, ev.Misses), p.CornerFactor)
	}
	// With two or more groups the alignment signal already dominates.
	if p.EntropyWeight > 0 && len(groups) < 2 {
		Blend(m, Entropy(m, ev), p.EntropyWeight)
	}
}

// boost multiplies each distinct square in cs by f once.
func boost(m *heatmap.Map, cs []board.Coord, f float64) {
	for _, c := range lo.Uniq(cs) {
		m.Mul(c, f)
	}
}

// neighborsOf returns the distinct on-board 4-neighbours of the given
// squares.
func neighborsOf(cs []board.Coord, d board.Dims) []board.Coord {
	var ns []board.Coord
	for _, c := range cs {
		ns = append(ns, d.Neighbors(c)...)
	}
	return lo.Uniq(ns)
}

func (p Params) parity(m *heatmap.Map) {
	d := m.Dims()
	for r := 0; r < d.Height; r++ {
		for c := 0; c < d.Width; c++ {
			if (r+c)%2 == 1 {
				m.Mul(board.Coord{Row: r, Col: c}, p.ParityDamping)
			}
		}
	}
}

// initialSearch spreads the first shots out: it favours a grid spaced by the
// smallest remaining ship, avoids the corners and leans towards the centre of
// a standard board.
func (p Params) initialSearch(m *heatmap.Map, ev Evidence) {
	d := ev.Dims
	if p.GridFactor > 0 && len(ev.Remaining) > 0 {
		spacing := max(lo.Min(ev.Remaining), 1)
		for r := 0; r < d.Height; r++ {
			for c := 0; c < d.Width; c++ {
				if (r+c)%spacing == 0 {
					m.Mul(board.Coord{Row: r, Col: c}, p.GridFactor)
				}
			}
		}
	}
	if p.CornerDamping > 0 {
		boost(m, d.Corners(), p.CornerDamping)
	}
	if p.CentreFactor > 0 && d.Height == 10 && d.Width == 10 {
		for r := 4; r <= 6; r++ {
			for c := 4; c <= 6; c++ {
				m.Mul(board.Coord{Row: r, Col: c}, p.CentreFactor)
			}
		}
	}
}
