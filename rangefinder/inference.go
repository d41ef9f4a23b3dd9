// Package rangefinder estimates, for every square of the board, how likely
// it is that an unseen ship occupies it.
package rangefinder

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/salvo/alignment"
	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/config"
	"github.com/domino14/salvo/heatmap"
	"github.com/domino14/salvo/strategy"
)

// RangeFinder computes probability maps. It keeps no state between calls;
// the only setting is how many workers the placement tally may use.
type RangeFinder struct {
	threads int
}

func New() *RangeFinder {
	return &RangeFinder{threads: 1}
}

// NewFromConfig returns a rangefinder using the configured thread count.
func NewFromConfig(cfg *config.Config) *RangeFinder {
	r := New()
	r.SetThreads(cfg.GetInt(config.ConfigThreads))
	return r
}

func (r *RangeFinder) SetThreads(t int) {
	r.threads = max(t, 1)
}

func (r *RangeFinder) Threads() int {
	return r.threads
}

// ComputeProbabilities is Compute on a single-threaded rangefinder.
func ComputeProbabilities(in Input) *heatmap.Map {
	return New().Compute(in)
}

// Compute returns a freshly allocated probability map for the input. Hit and
// miss squares are zero, and the positive squares sum to 1. The map is
// all-zero when there are no remaining ships or when the hits, misses and
// remaining ships cannot all be true at once.
func (r *RangeFinder) Compute(in Input) *heatmap.Map {
	d := in.Dims()
	if !d.Valid() {
		return heatmap.New(d)
	}
	remaining := lo.Filter(in.Remaining, func(l int, _ int) bool { return l > 0 })
	if len(remaining) == 0 {
		return heatmap.New(d)
	}

	misses := board.NewCoordSet(in.Misses...)
	active := ActiveHits(in.Hits, in.Sunk)
	blocked := misses.Union(board.SunkSquares(in.Sunk))

	m := baseMap(d, remaining, blocked, board.NewCoordSet(active...), r.threads)
	if m.IsZero() {
		return m
	}

	mode := in.Mode.Effective(len(in.Hits))
	if mode != in.Mode {
		log.Debug().Str("requested", in.Mode.String()).Str("applied", mode.String()).
			Msg("mode-upgraded")
	}
	strategy.Apply(m, mode, strategy.Evidence{
		Dims:      d,
		Hits:      active,
		Misses:    misses,
		Remaining: remaining,
	})

	m.Zero(in.Hits...)
	m.Zero(in.Misses...)
	m.Normalize()
	return m
}

// SunkCandidates proposes aligned groups of active hits that could be a
// whole sunk ship. Nothing is marked sunk; the caller confirms a candidate
// by passing it back in Input.Sunk and removing its length from
// Input.Remaining.
func SunkCandidates(in Input) []board.SunkShip {
	groups := alignment.Find(ActiveHits(in.Hits, in.Sunk))
	return alignment.ProposeSunk(groups, in.Remaining)
}
