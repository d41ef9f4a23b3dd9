package alignment

import (
	"github.com/samber/lo"

	"github.com/domino14/salvo/board"
)

// ProposeSunk returns, for each group whose length matches one of the
// remaining ship lengths, a candidate sunk ship covering that group.
//
// These are guesses only. Two remaining ships of the same length, or two
// ships lying end to end, both fool this check, so nothing here marks a ship
// as sunk; the caller decides whether to confirm a candidate.
func ProposeSunk(groups []Group, remaining []int) []board.SunkShip {
	var cands []board.SunkShip
	for _, g := range groups {
		if !lo.Contains(remaining, g.Len()) {
			continue
		}
		cands = append(cands, board.SunkShip{
			Length:    g.Len(),
			Positions: board.CopyCoords(g.Coords),
		})
	}
	return cands
}
