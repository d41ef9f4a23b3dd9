package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestContains(t *testing.T) {
	is := is.New(t)
	d := Dims{Height: 3, Width: 5}
	is.True(d.Contains(Coord{0, 0}))
	is.True(d.Contains(Coord{2, 4}))
	is.True(!d.Contains(Coord{3, 0}))
	is.True(!d.Contains(Coord{0, 5}))
	is.True(!d.Contains(Coord{-1, 2}))
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	d := Dims{Height: 10, Width: 10}
	is.Equal(d.Neighbors(Coord{0, 0}), []Coord{{1, 0}, {0, 1}})
	is.Equal(d.Neighbors(Coord{5, 5}), []Coord{{4, 5}, {6, 5}, {5, 4}, {5, 6}})
	is.Equal(d.Neighbors(Coord{9, 9}), []Coord{{8, 9}, {9, 8}})
}

func TestIndexRoundTrip(t *testing.T) {
	is := is.New(t)
	d := Dims{Height: 4, Width: 7}
	for i := 0; i < d.NumSquares(); i++ {
		is.Equal(d.Index(d.CoordAt(i)), i)
	}
	is.Equal(d.Index(Coord{2, 3}), 17)
}

func TestCorners(t *testing.T) {
	is := is.New(t)
	is.Equal(Dims{Height: 10, Width: 10}.Corners(),
		[]Coord{{0, 0}, {0, 9}, {9, 0}, {9, 9}})
	is.Equal(Dims{Height: 1, Width: 3}.Corners(), []Coord{{0, 0}, {0, 2}})
}

func TestParseCoord(t *testing.T) {
	is := is.New(t)
	c, err := ParseCoord(" 2, 3")
	is.NoErr(err)
	is.Equal(c, Coord{2, 3})

	_, err = ParseCoord("2")
	is.True(err != nil)
	_, err = ParseCoord("a,3")
	is.True(err != nil)
}

func TestSunkSquares(t *testing.T) {
	is := is.New(t)
	ships := []SunkShip{
		{Length: 2, Positions: []Coord{{0, 0}, {0, 1}}},
		{Length: 3, Positions: []Coord{{4, 4}, {5, 4}, {6, 4}}},
	}
	s := SunkSquares(ships)
	is.Equal(len(s), 5)
	is.True(s.Has(Coord{5, 4}))
	is.True(!s.Has(Coord{1, 1}))

	cp := ships[0].Copy()
	cp.Positions[0] = Coord{9, 9}
	is.Equal(ships[0].Positions[0], Coord{0, 0})
}

func TestStraightRun(t *testing.T) {
	is := is.New(t)
	is.True(StraightRun([]Coord{{4, 4}}))
	is.True(StraightRun([]Coord{{2, 3}, {2, 1}, {2, 2}}))
	is.True(StraightRun([]Coord{{4, 2}, {3, 2}, {2, 2}}))
	is.True(!StraightRun(nil))
	is.True(!StraightRun([]Coord{{0, 0}, {0, 2}}))
	is.True(!StraightRun([]Coord{{0, 0}, {1, 1}}))
	is.True(!StraightRun([]Coord{{0, 0}, {0, 1}, {1, 1}}))
	is.True(!StraightRun([]Coord{{0, 0}, {0, 0}}))
}
