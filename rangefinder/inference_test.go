package rangefinder

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/config"
	"github.com/domino14/salvo/heatmap"
	"github.com/domino14/salvo/placement"
	"github.com/domino14/salvo/strategy"
)

const tolerance = 1e-9

var allModes = []strategy.Mode{
	strategy.Normal, strategy.Hunting, strategy.Targeting,
	strategy.SuperAggressive, strategy.Optimized,
}

func workedInput() Input {
	return Input{
		Height:    10,
		Width:     10,
		Hits:      []board.Coord{{2, 3}, {2, 4}},
		Misses:    []board.Coord{{0, 0}, {1, 1}, {3, 3}},
		Remaining: []int{5, 4, 3},
		Mode:      strategy.Normal,
	}
}

func assertNormalized(t *testing.T, m *heatmap.Map) {
	t.Helper()
	if m.IsZero() {
		return
	}
	assert.InDelta(t, 1.0, m.Sum(), tolerance)
	for _, v := range m.Values() {
		assert.True(t, v >= 0 && v <= 1, "value %v out of range", v)
	}
}

func TestBaseMapUniformity(t *testing.T) {
	is := is.New(t)
	d := board.Dims{Height: 9, Width: 9}
	m := baseMap(d, []int{3}, board.CoordSet{}, board.CoordSet{}, 1)
	total := len(placement.Enumerate(d, 3, board.CoordSet{}))
	is.Equal(total, 2*9*7)
	for i := 0; i < d.NumSquares(); i++ {
		c := d.CoordAt(i)
		covering := placement.CountThrough(d, c, 3, board.CoordSet{})
		assert.InDelta(t, float64(covering)/float64(total), m.At(c), tolerance)
	}

	out := ComputeProbabilities(Input{Height: 9, Width: 9, Remaining: []int{3}})
	is.True(out.At(board.Coord{4, 4}) >= out.At(board.Coord{0, 0}))
	is.True(out.At(board.Coord{4, 4}) > out.At(board.Coord{8, 8}))
	assertNormalized(t, out)
}

func TestWorkedScenario(t *testing.T) {
	is := is.New(t)
	in := workedInput()
	m := ComputeProbabilities(in)

	assertNormalized(t, m)
	for _, c := range in.Misses {
		is.Equal(m.At(c), 0.0)
	}
	for _, c := range in.Hits {
		is.Equal(m.At(c), 0.0)
	}
	best := m.Best(2)
	is.Equal(board.NewCoordSet(best[0].Coord, best[1].Coord),
		board.NewCoordSet(board.Coord{2, 2}, board.Coord{2, 5}))
	is.True(best[1].Value > 0)

	// The caller's mode is left alone by the upgrade.
	is.Equal(in.Mode, strategy.Normal)
	is.Equal(in.Mode.Effective(len(in.Hits)), strategy.Targeting)
}

func TestNoShips(t *testing.T) {
	is := is.New(t)
	in := workedInput()
	in.Remaining = nil
	for _, mode := range allModes {
		in.Mode = mode
		m := ComputeProbabilities(in)
		is.True(m.IsZero())
		is.Equal(m.Dims(), board.Dims{Height: 10, Width: 10})
		is.Equal(len(m.Values()), 100)
	}
}

func TestContradictoryState(t *testing.T) {
	is := is.New(t)
	in := Input{
		Height:    10,
		Width:     10,
		Hits:      []board.Coord{{0, 0}},
		Misses:    []board.Coord{{0, 1}, {1, 0}},
		Remaining: []int{2},
	}
	for _, mode := range allModes {
		in.Mode = mode
		is.True(ComputeProbabilities(in).IsZero())
	}
}

func TestZeroingAndNormalization(t *testing.T) {
	is := is.New(t)
	inputs := []Input{
		workedInput(),
		{Height: 10, Width: 10, Remaining: []int{5, 4, 3, 3, 2}},
		{
			Height: 8, Width: 12,
			Hits:      []board.Coord{{1, 1}, {4, 7}, {5, 7}},
			Misses:    []board.Coord{{0, 0}, {3, 7}, {7, 11}, {4, 4}},
			Remaining: []int{4, 3, 2},
		},
	}
	for _, in := range inputs {
		for _, mode := range allModes {
			in.Mode = mode
			m := ComputeProbabilities(in)
			is.True(!m.IsZero())
			assertNormalized(t, m)
			for _, c := range append(board.CopyCoords(in.Hits), in.Misses...) {
				is.Equal(m.At(c), 0.0)
			}
		}
	}
}

func TestPurity(t *testing.T) {
	is := is.New(t)
	in := workedInput()
	in.Sunk = []board.SunkShip{{Length: 2, Positions: []board.Coord{{8, 8}, {8, 9}}}}
	in.Hits = append(in.Hits, board.Coord{8, 8}, board.Coord{8, 9})
	snapshot := in.Copy()

	for _, mode := range allModes {
		in.Mode = mode
		snapshot.Mode = mode
		a := ComputeProbabilities(in)
		b := ComputeProbabilities(in)
		is.Equal(a.Values(), b.Values())
		is.Equal(in, snapshot)
	}
}

func TestThreadCountDoesNotChangeResult(t *testing.T) {
	is := is.New(t)
	in := workedInput()
	in.Remaining = []int{5, 4, 3, 3, 2}
	in.Mode = strategy.Optimized

	single := New()
	multi := New()
	multi.SetThreads(4)
	is.Equal(multi.Threads(), 4)
	is.Equal(single.Compute(in).Values(), multi.Compute(in).Values())

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigThreads, 0)
	is.Equal(NewFromConfig(cfg).Threads(), 1)
}

func TestAlignmentBoostMonotonicity(t *testing.T) {
	is := is.New(t)
	in := Input{
		Height:    10,
		Width:     10,
		Hits:      []board.Coord{{4, 4}, {4, 5}},
		Remaining: []int{5, 4, 3, 3, 2},
	}
	extensions := []board.Coord{{4, 3}, {4, 6}}
	perpendicular := []board.Coord{{3, 4}, {5, 4}, {3, 5}, {5, 5}}
	for _, mode := range []strategy.Mode{strategy.Targeting, strategy.SuperAggressive, strategy.Optimized} {
		in.Mode = mode
		m := ComputeProbabilities(in)
		for _, e := range extensions {
			for _, p := range perpendicular {
				is.True(m.At(e) > m.At(p))
			}
		}
	}
}

func TestSunkShipsAreIgnored(t *testing.T) {
	is := is.New(t)
	sunk := board.SunkShip{Length: 3, Positions: []board.Coord{{0, 0}, {0, 1}, {0, 2}}}
	withSunk := Input{
		Height:    10,
		Width:     10,
		Hits:      append(board.CopyCoords(sunk.Positions), board.Coord{6, 6}),
		Remaining: []int{4, 2},
		Mode:      strategy.Optimized,
		Sunk:      []board.SunkShip{sunk},
	}
	m := ComputeProbabilities(withSunk)
	assertNormalized(t, m)
	// The square extending the sunk ship gets no alignment boost.
	best := m.Best(4)
	for _, sq := range best {
		is.True(sq.Coord != board.Coord{0, 3})
	}
	is.Equal(m.At(board.Coord{0, 1}), 0.0)
	// The best squares surround the one active hit.
	is.True(board.NewCoordSet(board.Coord{5, 6}, board.Coord{7, 6}, board.Coord{6, 5},
		board.Coord{6, 7}).Has(best[0].Coord))

	is.Equal(ActiveHits(withSunk.Hits, withSunk.Sunk), []board.Coord{{6, 6}})
}

func TestSunkCandidates(t *testing.T) {
	is := is.New(t)
	in := Input{
		Height:    10,
		Width:     10,
		Hits:      []board.Coord{{1, 1}, {1, 2}, {1, 3}, {7, 7}, {8, 7}},
		Remaining: []int{3, 4},
	}
	cands := SunkCandidates(in)
	is.Equal(len(cands), 1)
	is.Equal(cands[0].Positions, []board.Coord{{1, 1}, {1, 2}, {1, 3}})

	in.Sunk = cands
	in.Remaining = []int{4}
	is.Equal(len(SunkCandidates(in)), 0)
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(workedInput().Validate())

	cases := []struct {
		mutate func(*Input)
		err    error
	}{
		{func(in *Input) { in.Height = 0 }, ErrBadDimensions},
		{func(in *Input) { in.Hits = append(in.Hits, board.Coord{10, 0}) }, ErrOutOfBounds},
		{func(in *Input) { in.Misses = append(in.Misses, board.Coord{0, -1}) }, ErrOutOfBounds},
		{func(in *Input) { in.Misses = append(in.Misses, board.Coord{2, 3}) }, ErrHitMissOverlap},
		{func(in *Input) { in.Remaining = []int{3, 0} }, ErrBadShipLength},
		{func(in *Input) {
			in.Sunk = []board.SunkShip{{Length: 3, Positions: []board.Coord{{5, 5}}}}
		}, ErrBadSunkShip},
		{func(in *Input) {
			in.Sunk = []board.SunkShip{{Length: 2, Positions: []board.Coord{{0, 0}, {0, 1}}}}
		}, ErrBadSunkShip},
		{func(in *Input) {
			in.Sunk = []board.SunkShip{{Length: 2, Positions: []board.Coord{{5, 5}, {6, 6}}}}
		}, ErrBadSunkShip},
		{func(in *Input) {
			in.Sunk = []board.SunkShip{{Length: 2, Positions: []board.Coord{{5, 5}, {5, 7}}}}
		}, ErrBadSunkShip},
		{func(in *Input) {
			in.Sunk = []board.SunkShip{
				{Length: 2, Positions: []board.Coord{{5, 5}, {5, 6}}},
				{Length: 3, Positions: []board.Coord{{4, 6}, {5, 6}, {6, 6}}},
			}
		}, ErrBadSunkShip},
	}
	for _, tc := range cases {
		in := workedInput()
		tc.mutate(&in)
		is.True(errors.Is(in.Validate(), tc.err))
	}

	in := workedInput()
	in.Sunk = []board.SunkShip{{Length: 3, Positions: []board.Coord{{7, 2}, {5, 2}, {6, 2}}}}
	is.NoErr(in.Validate())
}

func TestAnalyzeMap(t *testing.T) {
	is := is.New(t)
	in := workedInput()
	out := AnalyzeMap(in, ComputeProbabilities(in), 3)
	is.True(strings.Contains(out, "Mode: targeting (requested normal)"))
	is.True(strings.Contains(out, "Group (horizontal): 2,3 -> 2,4 (2)"))
	is.Equal(strings.Count(out, "\n"), 7)

	in.Remaining = nil
	is.Equal(AnalyzeMap(in, ComputeProbabilities(in), 3), "No valid placements.")
}
