// Package heatmap holds the per-square probability grid produced by the
// rangefinder, along with its normalization and display helpers.
package heatmap

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/domino14/salvo/board"
)

// A Map is a height x width grid of non-negative weights, stored row-major.
type Map struct {
	dims    board.Dims
	squares []float64
}

// New returns an all-zero map for the given dimensions.
func New(d board.Dims) *Map {
	if !d.Valid() {
		return &Map{dims: d}
	}
	return &Map{dims: d, squares: make([]float64, d.NumSquares())}
}

// FromRows builds a map from a rectangular slice of rows. The rows are
// copied.
func FromRows(rows [][]float64) *Map {
	if len(rows) == 0 {
		return New(board.Dims{})
	}
	m := New(board.Dims{Height: len(rows), Width: len(rows[0])})
	for r, row := range rows {
		copy(m.squares[r*m.dims.Width:(r+1)*m.dims.Width], row)
	}
	return m
}

func (m *Map) Dims() board.Dims {
	return m.dims
}

func (m *Map) At(c board.Coord) float64 {
	if !m.dims.Contains(c) {
		return 0
	}
	return m.squares[m.dims.Index(c)]
}

func (m *Map) Set(c board.Coord, v float64) {
	if !m.dims.Contains(c) {
		return
	}
	m.squares[m.dims.Index(c)] = v
}

// Mul multiplies the square at c by f. Off-board coordinates are ignored.
func (m *Map) Mul(c board.Coord, f float64) {
	if !m.dims.Contains(c) {
		return
	}
	m.squares[m.dims.Index(c)] *= f
}

// MulCapped multiplies the square at c by f and caps the result at limit.
func (m *Map) MulCapped(c board.Coord, f, limit float64) {
	if !m.dims.Contains(c) {
		return
	}
	idx := m.dims.Index(c)
	m.squares[idx] = min(m.squares[idx]*f, limit)
}

// Zero clears every given square.
func (m *Map) Zero(cs ...board.Coord) {
	for _, c := range cs {
		m.Set(c, 0)
	}
}

// Values returns a copy of the squares in row-major order.
func (m *Map) Values() []float64 {
	return slices.Clone(m.squares)
}

// Rows returns a freshly allocated copy of the map as a slice of rows.
func (m *Map) Rows() [][]float64 {
	rows := make([][]float64, m.dims.Height)
	for r := range rows {
		rows[r] = slices.Clone(m.squares[r*m.dims.Width : (r+1)*m.dims.Width])
	}
	return rows
}

func (m *Map) Copy() *Map {
	return &Map{dims: m.dims, squares: slices.Clone(m.squares)}
}

// Sum returns the sum of all strictly positive squares.
func (m *Map) Sum() float64 {
	var s float64
	for _, v := range m.squares {
		if v > 0 {
			s += v
		}
	}
	return s
}

// Max returns the largest value on the map, or 0 for an empty map.
func (m *Map) Max() float64 {
	if len(m.squares) == 0 {
		return 0
	}
	return floats.Max(m.squares)
}

// IsZero returns true if no square holds a positive value.
func (m *Map) IsZero() bool {
	for _, v := range m.squares {
		if v > 0 {
			return false
		}
	}
	return true
}

// Live returns the coordinates of every strictly positive square,
// row-major.
func (m *Map) Live() []board.Coord {
	var cs []board.Coord
	for i, v := range m.squares {
		if v > 0 {
			cs = append(cs, m.dims.CoordAt(i))
		}
	}
	return cs
}

// Normalize rescales the map so its positive squares sum to 1. Squares that
// are zero (or negative) end up exactly zero. A map with no positive squares
// is left all-zero.
func (m *Map) Normalize() {
	for i, v := range m.squares {
		if v <= 0 {
			m.squares[i] = 0
		}
	}
	sum := floats.Sum(m.squares)
	if sum <= 0 {
		return
	}
	floats.Scale(1/sum, m.squares)
}

// ScaleToMax rescales the map so the largest square is 1.
func (m *Map) ScaleToMax() {
	mx := m.Max()
	if mx <= 0 {
		return
	}
	floats.Scale(1/mx, m.squares)
}

// A Square pairs a coordinate with its value.
type Square struct {
	Coord board.Coord
	Value float64
}

func (s Square) String() string {
	return fmt.Sprintf("%v (%.2f%%)", s.Coord, s.Value*100)
}

// Best returns up to n positive squares in decreasing order of value. Ties
// are broken row-major.
func (m *Map) Best(n int) []Square {
	sqs := make([]Square, 0, len(m.squares))
	for i, v := range m.squares {
		if v > 0 {
			sqs = append(sqs, Square{Coord: m.dims.CoordAt(i), Value: v})
		}
	}
	slices.SortStableFunc(sqs, func(a, b Square) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})
	if n >= 0 && len(sqs) > n {
		sqs = sqs[:n]
	}
	return sqs
}

// String renders the map as a fixed-width grid with row and column headers
// and each square shown as a percentage.
func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < m.dims.Width; c++ {
		fmt.Fprintf(&sb, "%7d", c)
	}
	sb.WriteString("\n")
	for r := 0; r < m.dims.Height; r++ {
		fmt.Fprintf(&sb, "%3d", r)
		for c := 0; c < m.dims.Width; c++ {
			fmt.Fprintf(&sb, "%7.2f", m.squares[r*m.dims.Width+c]*100)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// getHeatColor returns an ANSI escape sequence for a given heat level.
func getHeatColor(fraction float64) string {
	// Map the fraction (0 to 1) to grayscale colors (232 to 255 in ANSI 256-color palette)
	// 232 is darkest (black), 255 is lightest (white)
	start := 232
	end := 255
	colorCode := int(float64(start) + fraction*float64(end-start))
	return fmt.Sprintf("\033[48;5;%dm", colorCode) // Background color
}

// Display renders the map to w as shaded blocks, brightest where the value
// is highest. Squares in marks are drawn with their rune instead of blank.
func (m *Map) Display(w io.Writer, marks map[board.Coord]rune) {
	reset := "\033[0m"
	mx := m.Max()
	fmt.Fprintln(w)
	for r := 0; r < m.dims.Height; r++ {
		for c := 0; c < m.dims.Width; c++ {
			coord := board.Coord{Row: r, Col: c}
			frac := 0.0
			if mx > 0 {
				frac = m.At(coord) / mx
			}
			ch := ' '
			if mk, ok := marks[coord]; ok {
				ch = mk
			}
			fmt.Fprintf(w, "%s %c%s", getHeatColor(frac), ch, reset)
		}
		fmt.Fprintln(w)
	}
}
