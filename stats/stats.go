// Package stats summarizes a probability map for diagnostics.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/salvo/heatmap"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Summary describes the distribution of the live (positive) squares of a
// map.
type Summary struct {
	LiveSquares int
	Max         float64
	Mean        float64
	StdDev      float64
	// Entropy is the Shannon entropy of the live squares, in nats.
	Entropy float64

	live []float64
}

// Summarize computes the summary of m. The map is expected to be
// normalized; an all-zero map gives a zero summary.
func Summarize(m *heatmap.Map) Summary {
	live := make([]float64, 0)
	for _, v := range m.Values() {
		if v > 0 {
			live = append(live, v)
		}
	}
	s := Summary{LiveSquares: len(live), live: live}
	if len(live) == 0 {
		return s
	}
	s.Max = floats.Max(live)
	s.Mean, s.StdDev = stat.MeanStdDev(live, nil)
	if len(live) == 1 {
		s.StdDev = 0
	}
	// A single live square gives -0.
	s.Entropy = max(stat.Entropy(live), 0)
	return s
}

// Bits returns the entropy in bits.
func (s Summary) Bits() float64 {
	return s.Entropy / math.Ln2
}

// Histogram buckets the live squares by value.
func (s Summary) Histogram(bins int) histogram.Histogram {
	return histogram.Hist(bins, s.live)
}

// WriteHistogram draws the histogram of live values to w.
func (s Summary) WriteHistogram(w io.Writer, bins, width int) error {
	if s.LiveSquares == 0 {
		_, err := io.WriteString(w, "no live squares\n")
		return err
	}
	return histogram.Fprint(w, s.Histogram(bins), histogram.Linear(width))
}

func (s Summary) String() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "%-14s%d\n", "Live squares", s.LiveSquares)
	fmt.Fprintf(&ss, "%-14s%.3f%%\n", "Max", s.Max*100)
	fmt.Fprintf(&ss, "%-14s%.3f%%\n", "Mean", s.Mean*100)
	fmt.Fprintf(&ss, "%-14s%.3f%%\n", "Stdev", s.StdDev*100)
	fmt.Fprintf(&ss, "%-14s%.3f bits\n", "Entropy", s.Bits())
	return ss.String()
}
