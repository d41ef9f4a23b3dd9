package placement

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/salvo/board"
)

var tenByTen = board.Dims{Height: 10, Width: 10}

func TestEnumerateCounts(t *testing.T) {
	is := is.New(t)
	// 10 rows * 6 starts, twice.
	is.Equal(len(Enumerate(tenByTen, 5, board.CoordSet{})), 120)
	is.Equal(len(Enumerate(tenByTen, 1, board.CoordSet{})), 200)
	is.Equal(len(Enumerate(board.Dims{Height: 3, Width: 4}, 4, board.CoordSet{})), 3)
	is.Equal(len(Enumerate(board.Dims{Height: 3, Width: 4}, 5, board.CoordSet{})), 0)
	is.Equal(len(Enumerate(tenByTen, 0, board.CoordSet{})), 0)
}

func TestEnumerateOrder(t *testing.T) {
	is := is.New(t)
	ps := Enumerate(board.Dims{Height: 2, Width: 3}, 2, board.CoordSet{})
	is.Equal(len(ps), 7)

	starts := make([]board.Coord, len(ps))
	for i, p := range ps {
		starts[i] = p.Cells[0]
		is.Equal(p.Len(), 2)
	}
	is.Equal(starts, []board.Coord{
		{0, 0}, {0, 1}, {1, 0}, {1, 1}, // horizontal
		{0, 0}, {0, 1}, {0, 2}, // vertical
	})
	is.Equal(ps[0].Direction, board.HorizontalDirection)
	is.Equal(ps[4].Direction, board.VerticalDirection)
	is.Equal(ps[5].Cells, []board.Coord{{0, 1}, {1, 1}})
}

func TestEnumerateAvoidsMisses(t *testing.T) {
	is := is.New(t)
	misses := board.NewCoordSet(board.Coord{0, 2})
	ps := Enumerate(board.Dims{Height: 1, Width: 5}, 2, misses)
	// [0,1] and [3,4] only.
	is.Equal(len(ps), 2)
	for _, p := range ps {
		is.True(!p.Covers(board.Coord{0, 2}))
	}
}

func TestConsistent(t *testing.T) {
	p := Placement{
		Direction: board.HorizontalDirection,
		Cells:     []board.Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	}
	cases := []struct {
		name string
		hits []board.Coord
		exp  bool
	}{
		{"no hits", nil, true},
		{"hit elsewhere", []board.Coord{{5, 5}}, true},
		{"single", []board.Coord{{0, 2}}, true},
		{"contiguous", []board.Coord{{0, 1}, {0, 2}}, true},
		{"all", []board.Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, true},
		{"gap", []board.Coord{{0, 0}, {0, 2}}, false},
		{"ends", []board.Coord{{0, 0}, {0, 3}}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.exp, Consistent(p, board.NewCoordSet(tc.hits...)), tc.name)
	}
}

func TestFilter(t *testing.T) {
	is := is.New(t)
	d := board.Dims{Height: 1, Width: 4}
	hits := board.NewCoordSet(board.Coord{0, 0}, board.Coord{0, 2})
	ps := Enumerate(d, 2, board.CoordSet{})
	// [0,1] [1,2] [2,3], all touch exactly one hit.
	is.Equal(len(Filter(ps, hits)), 3)
	ps = Enumerate(d, 3, board.CoordSet{})
	// [0..2] has a gap, [1..3] covers one hit.
	kept := Filter(ps, hits)
	is.Equal(len(kept), 1)
	is.Equal(kept[0].Cells[0], board.Coord{0, 1})
}

func TestCountThrough(t *testing.T) {
	is := is.New(t)
	// Corner of an open board: one horizontal and one vertical placement.
	is.Equal(CountThrough(tenByTen, board.Coord{0, 0}, 3, board.CoordSet{}), 2)
	// Interior: three offsets each way.
	is.Equal(CountThrough(tenByTen, board.Coord{5, 5}, 3, board.CoordSet{}), 6)

	// The queried square is never checked against the misses.
	misses := board.NewCoordSet(board.Coord{5, 5})
	is.Equal(CountThrough(tenByTen, board.Coord{5, 5}, 3, misses), 6)

	// A miss to the right removes the two horizontal placements that reach it.
	misses = board.NewCoordSet(board.Coord{5, 6})
	is.Equal(CountThrough(tenByTen, board.Coord{5, 5}, 3, misses), 4)
	is.Equal(CountThrough(tenByTen, board.Coord{10, 5}, 3, misses), 0)
}
