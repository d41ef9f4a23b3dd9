package rangefinder

import (
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/heatmap"
	"github.com/domino14/salvo/placement"
)

// lengthTally is the coverage of every consistent placement of one ship
// length.
type lengthTally struct {
	counts []int
	total  int
}

func tallyLength(d board.Dims, length int, blocked, hits board.CoordSet) lengthTally {
	t := lengthTally{counts: make([]int, d.NumSquares())}
	for _, p := range placement.Filter(placement.Enumerate(d, length, blocked), hits) {
		t.total++
		for _, c := range p.Cells {
			t.counts[d.Index(c)]++
		}
	}
	return t
}

// aggregate counts, for every square, how many consistent placements of the
// remaining ships cover it, along with the total number of placements.
// Each distinct length is tallied once, on up to threads workers, and
// weighted by how many ships share it. Counts are integers, so the merge
// gives the same result for any thread count.
func aggregate(d board.Dims, remaining []int, blocked, hits board.CoordSet,
	threads int) ([]int, int) {

	multiplicity := lo.CountValues(remaining)
	lengths := lo.Keys(multiplicity)
	slices.Sort(lengths)

	tallies := make([]lengthTally, len(lengths))
	g := errgroup.Group{}
	g.SetLimit(max(threads, 1))
	for i, l := range lengths {
		i, l := i, l
		g.Go(func() error {
			tallies[i] = tallyLength(d, l, blocked, hits)
			return nil
		})
	}
	// tallyLength never fails.
	_ = g.Wait()

	counts := make([]int, d.NumSquares())
	total := 0
	for i, l := range lengths {
		k := multiplicity[l]
		total += k * tallies[i].total
		for idx, n := range tallies[i].counts {
			counts[idx] += k * n
		}
	}
	return counts, total
}

// baseMap turns the placement counts into per-square probabilities. It
// returns an all-zero map when no placement survives or when some active hit
// cannot be covered by any surviving placement.
func baseMap(d board.Dims, remaining []int, blocked, hits board.CoordSet,
	threads int) *heatmap.Map {

	m := heatmap.New(d)
	counts, total := aggregate(d, remaining, blocked, hits, threads)
	if total == 0 {
		log.Debug().Ints("remaining", remaining).Msg("no-consistent-placements")
		return m
	}
	for _, h := range hits.Sorted() {
		if d.Contains(h) && counts[d.Index(h)] == 0 {
			log.Debug().Stringer("hit", h).Msg("unexplained-hit")
			return m
		}
	}
	for idx, n := range counts {
		m.Set(d.CoordAt(idx), float64(n)/float64(total))
	}
	log.Debug().Int("placements", total).Int("threads", threads).Msg("aggregated")
	return m
}
