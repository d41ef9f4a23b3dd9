package heatmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/salvo/board"
)

func TestNormalize(t *testing.T) {
	is := is.New(t)
	m := FromRows([][]float64{
		{1, 0, 3},
		{0, 4, -2},
	})
	m.Normalize()
	assert.InDelta(t, 1.0, m.Sum(), 1e-12)
	assert.InDelta(t, 0.125, m.At(board.Coord{0, 0}), 1e-12)
	assert.InDelta(t, 0.5, m.At(board.Coord{1, 1}), 1e-12)
	is.Equal(m.At(board.Coord{0, 1}), 0.0)
	is.Equal(m.At(board.Coord{1, 2}), 0.0)
}

func TestNormalizeAllZero(t *testing.T) {
	is := is.New(t)
	m := New(board.Dims{Height: 3, Width: 3})
	m.Normalize()
	is.True(m.IsZero())
	is.Equal(m.Sum(), 0.0)
}

func TestMulCapped(t *testing.T) {
	is := is.New(t)
	m := FromRows([][]float64{{0.2, 0.5}})
	m.MulCapped(board.Coord{0, 0}, 3, 1)
	m.MulCapped(board.Coord{0, 1}, 3, 1)
	m.MulCapped(board.Coord{4, 4}, 3, 1)
	assert.InDelta(t, 0.6, m.At(board.Coord{0, 0}), 1e-12)
	is.Equal(m.At(board.Coord{0, 1}), 1.0)
}

func TestRowsAreCopies(t *testing.T) {
	is := is.New(t)
	src := [][]float64{{1, 2}, {3, 4}}
	m := FromRows(src)
	src[0][0] = 99
	is.Equal(m.At(board.Coord{0, 0}), 1.0)

	rows := m.Rows()
	rows[1][1] = 99
	is.Equal(m.At(board.Coord{1, 1}), 4.0)

	vals := m.Values()
	vals[0] = 42
	is.Equal(m.At(board.Coord{0, 0}), 1.0)
}

func TestBest(t *testing.T) {
	is := is.New(t)
	m := FromRows([][]float64{
		{0.1, 0.3, 0},
		{0.3, 0.2, 0.1},
	})
	best := m.Best(3)
	is.Equal(len(best), 3)
	is.Equal(best[0].Coord, board.Coord{0, 1})
	is.Equal(best[1].Coord, board.Coord{1, 0})
	is.Equal(best[2].Coord, board.Coord{1, 1})
	is.Equal(len(m.Best(-1)), 5)
	is.Equal(m.Live(), []board.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}})
}

func TestString(t *testing.T) {
	is := is.New(t)
	m := FromRows([][]float64{
		{0.5, 0},
		{0.25, 0.25},
	})
	expected := "" +
		"         0      1\n" +
		"  0  50.00   0.00\n" +
		"  1  25.00  25.00\n"
	is.Equal(m.String(), expected)
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	m := FromRows([][]float64{{0.5, 0}, {0.25, 0.25}})
	var buf bytes.Buffer
	m.Display(&buf, map[board.Coord]rune{{Row: 0, Col: 1}: 'x'})
	out := buf.String()
	is.True(strings.Contains(out, "\033[48;5;255m"))
	is.True(strings.Contains(out, " x"))
	is.Equal(strings.Count(out, "\n"), 3)
}
