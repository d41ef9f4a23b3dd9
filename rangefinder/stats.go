package rangefinder

import (
	"fmt"
	"strings"

	"github.com/domino14/salvo/alignment"
	"github.com/domino14/salvo/heatmap"
)

// AnalyzeMap describes how a map was produced from the input: which mode was
// applied, which hits are still active, which aligned groups exist, and the
// n best squares.
func AnalyzeMap(in Input, m *heatmap.Map, n int) string {
	if m.IsZero() {
		return "No valid placements."
	}
	var ss strings.Builder
	active := ActiveHits(in.Hits, in.Sunk)
	mode := in.Mode.Effective(len(in.Hits))

	fmt.Fprintf(&ss, "Mode: %v", mode)
	if mode != in.Mode {
		fmt.Fprintf(&ss, " (requested %v)", in.Mode)
	}
	ss.WriteString("\n")
	fmt.Fprintf(&ss, "Active hits: %d of %d, remaining ships: %v\n",
		len(active), len(in.Hits), in.Remaining)

	for _, g := range alignment.Find(active) {
		fmt.Fprintf(&ss, "Group %v: %v -> %v (%d)\n", g.Direction, g.First(), g.Last(), g.Len())
	}

	fmt.Fprintf(&ss, "%-6s%-10s%-12s\n", "Rank", "Square", "Prob %")
	for i, sq := range m.Best(n) {
		fmt.Fprintf(&ss, "%-6d%-10s%-12.3f\n", i+1, sq.Coord.String(), sq.Value*100)
	}
	return ss.String()
}
