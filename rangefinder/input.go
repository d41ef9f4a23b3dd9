package rangefinder

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/strategy"
)

var (
	ErrBadDimensions  = errors.New("board dimensions must be positive")
	ErrOutOfBounds    = errors.New("coordinate is off the board")
	ErrHitMissOverlap = errors.New("square is recorded as both a hit and a miss")
	ErrBadShipLength  = errors.New("ship lengths must be positive")
	ErrBadSunkShip    = errors.New("sunk ship does not match its length")
)

// Input is everything the rangefinder needs for one computation. The
// rangefinder only reads from it.
type Input struct {
	Height    int
	Width     int
	Hits      []board.Coord
	Misses    []board.Coord
	Remaining []int
	Mode      strategy.Mode
	Sunk      []board.SunkShip
}

func (in Input) Dims() board.Dims {
	return board.Dims{Height: in.Height, Width: in.Width}
}

// Copy returns a deep copy of the input.
func (in Input) Copy() Input {
	out := in
	out.Hits = board.CopyCoords(in.Hits)
	out.Misses = board.CopyCoords(in.Misses)
	if in.Remaining != nil {
		out.Remaining = append([]int(nil), in.Remaining...)
	}
	if in.Sunk != nil {
		out.Sunk = lo.Map(in.Sunk, func(s board.SunkShip, _ int) board.SunkShip {
			return s.Copy()
		})
	}
	return out
}

// ActiveHits returns the hits that are not part of any confirmed sunk ship,
// in their original order.
func ActiveHits(hits []board.Coord, sunk []board.SunkShip) []board.Coord {
	sunkSquares := board.SunkSquares(sunk)
	return lo.Filter(hits, func(c board.Coord, _ int) bool {
		return !sunkSquares.Has(c)
	})
}

// Validate checks the input for mistakes a caller could make. The
// rangefinder itself never calls it; it degrades to an all-zero map instead.
func (in Input) Validate() error {
	d := in.Dims()
	if !d.Valid() {
		return fmt.Errorf("%w: got %v", ErrBadDimensions, d)
	}
	for _, c := range in.Hits {
		if !d.Contains(c) {
			return fmt.Errorf("%w: hit %v on %v board", ErrOutOfBounds, c, d)
		}
	}
	hitSet := board.NewCoordSet(in.Hits...)
	for _, c := range in.Misses {
		if !d.Contains(c) {
			return fmt.Errorf("%w: miss %v on %v board", ErrOutOfBounds, c, d)
		}
		if hitSet.Has(c) {
			return fmt.Errorf("%w: %v", ErrHitMissOverlap, c)
		}
	}
	for _, l := range in.Remaining {
		if l <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadShipLength, l)
		}
	}
	missSet := board.NewCoordSet(in.Misses...)
	claimed := board.CoordSet{}
	for _, s := range in.Sunk {
		if s.Length <= 0 || len(s.Positions) != s.Length {
			return fmt.Errorf("%w: length %d with %d squares", ErrBadSunkShip,
				s.Length, len(s.Positions))
		}
		for _, c := range s.Positions {
			if !d.Contains(c) {
				return fmt.Errorf("%w: sunk ship square %v", ErrOutOfBounds, c)
			}
			if missSet.Has(c) {
				return fmt.Errorf("%w: square %v is a miss", ErrBadSunkShip, c)
			}
		}
		if !board.StraightRun(s.Positions) {
			return fmt.Errorf("%w: %v is not one straight run", ErrBadSunkShip, s.Positions)
		}
		for _, c := range s.Positions {
			if claimed.Has(c) {
				return fmt.Errorf("%w: square %v is in two sunk ships", ErrBadSunkShip, c)
			}
		}
		claimed.Add(s.Positions...)
	}
	return nil
}
