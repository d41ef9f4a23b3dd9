package strategy

type NeighborPolicy int

const (
	// NoNeighbors skips the hit-neighbour pass.
	NoNeighbors NeighborPolicy = iota
	// NeighborsWhenUnaligned boosts the neighbours of every hit, but only
	// when no aligned group exists.
	NeighborsWhenUnaligned
	// NeighborsOfIsolated boosts the neighbours of hits outside any group.
	NeighborsOfIsolated
)

// Params are the multipliers one mode applies. A zero factor disables the
// corresponding pass.
type Params struct {
	// NoHits is the mode whose parameters are used when there are no active
	// hits on the board.
	NoHits Mode

	// Search-phase passes.
	ParityDamping float64 // odd row+col squares
	InitialSearch bool
	GridFactor    float64 // squares on the smallest-ship spacing grid
	CornerDamping float64 // the four board corners
	CentreFactor  float64 // the 3x3 centre of a 10x10 board

	AdjacencyFactor float64
	AdjacencyCap    float64

	// Target-phase passes.
	ExtensionFactor       float64
	Neighbors             NeighborPolicy
	NeighborFactor        float64
	CompletionFactor      float64
	PatternNeighborFactor float64
	CornerFactor          float64
	EntropyWeight         float64
}

var modeParams = map[Mode]Params{
	Normal: {
		NoHits:          Normal,
		AdjacencyFactor: 3.0,
		AdjacencyCap:    1.0,
	},
	Hunting: {
		NoHits:        Hunting,
		ParityDamping: 0.5,
	},
	Targeting: {
		NoHits:           Targeting,
		ExtensionFactor:  4.0,
		Neighbors:        NeighborsWhenUnaligned,
		NeighborFactor:   3.0,
		CompletionFactor: 5.0,
	},
	SuperAggressive: {
		NoHits:           Hunting,
		ExtensionFactor:  8.0,
		Neighbors:        NeighborsWhenUnaligned,
		NeighborFactor:   5.0,
		CompletionFactor: 10.0,
		CornerFactor:     1.5,
	},
	Optimized: {
		NoHits:                Optimized,
		InitialSearch:         true,
		GridFactor:            2.0,
		CornerDamping:         0.5,
		CentreFactor:          1.25,
		ExtensionFactor:       15.0,
		Neighbors:             NeighborsOfIsolated,
		NeighborFactor:        10.0,
		CompletionFactor:      20.0,
		PatternNeighborFactor: 2.0,
		CornerFactor:          5.0,
		EntropyWeight:         0.3,
	},
}

// ParamsFor returns the factor table row for m. Unknown modes get the
// Normal row.
func ParamsFor(m Mode) Params {
	if p, ok := modeParams[m]; ok {
		return p
	}
	return modeParams[Normal]
}
