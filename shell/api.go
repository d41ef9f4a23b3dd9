package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/config"
	"github.com/domino14/salvo/heatmap"
	"github.com/domino14/salvo/rangefinder"
	"github.com/domino14/salvo/scenario"
	"github.com/domino14/salvo/stats"
	"github.com/domino14/salvo/strategy"
)

const defaultBestCount = 5

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type handler func(cmd *shellcmd) (*Response, error)

func (sc *ShellController) commands() map[string]handler {
	return map[string]handler{
		"help":       sc.help,
		"new":        sc.newBoard,
		"fleet":      sc.fleet,
		"hit":        sc.hit,
		"miss":       sc.miss,
		"sink":       sc.sink,
		"candidates": sc.sunkCandidates,
		"mode":       sc.mode,
		"threads":    sc.threads,
		"show":       sc.show,
		"heat":       sc.heat,
		"best":       sc.best,
		"pick":       sc.pick,
		"stats":      sc.stats,
		"load":       sc.load,
		"save":       sc.save,
		"state":      sc.state,
		"version":    sc.version,
	}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage("standard")), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) newBoard(cmd *shellcmd) (*Response, error) {
	height := sc.config.GetInt(config.ConfigBoardHeight)
	width := sc.config.GetInt(config.ConfigBoardWidth)
	switch len(cmd.args) {
	case 0:
	case 2:
		var err error
		if height, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
		if width, err = strconv.Atoi(cmd.args[1]); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("usage: new [height width]")
	}
	if height <= 0 || width <= 0 {
		return nil, rangefinder.ErrBadDimensions
	}
	sc.reset(height, width)
	return msg(fmt.Sprintf("new %v board, fleet %v", sc.input.Dims(), sc.input.Remaining)), nil
}

func (sc *ShellController) fleet(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("remaining ships: %v", sc.input.Remaining)), nil
	}
	lengths := make([]int, 0, len(cmd.args))
	for _, a := range cmd.args {
		l, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		if l <= 0 {
			return nil, rangefinder.ErrBadShipLength
		}
		lengths = append(lengths, l)
	}
	sc.input.Remaining = lengths
	sc.changed()
	return msg(fmt.Sprintf("remaining ships: %v", lengths)), nil
}

func (sc *ShellController) parseCoords(args []string) ([]board.Coord, error) {
	if len(args) == 0 {
		return nil, errors.New("need at least one row,col coordinate")
	}
	d := sc.input.Dims()
	cs := make([]board.Coord, 0, len(args))
	for _, a := range args {
		c, err := board.ParseCoord(a)
		if err != nil {
			return nil, err
		}
		if !d.Contains(c) {
			return nil, fmt.Errorf("%w: %v on %v board", rangefinder.ErrOutOfBounds, c, d)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// record adds squares to one side of the record after checking the result
// is still valid.
func (sc *ShellController) record(args []string, hits bool) (*Response, error) {
	cs, err := sc.parseCoords(args)
	if err != nil {
		return nil, err
	}
	next := sc.input.Copy()
	if hits {
		next.Hits = lo.Uniq(append(next.Hits, cs...))
	} else {
		next.Misses = lo.Uniq(append(next.Misses, cs...))
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	sc.input = next
	sc.changed()
	kind := "miss"
	if hits {
		kind = "hit"
	}
	log.Debug().Str("kind", kind).Interface("squares", cs).Msg("recorded")
	return msg(fmt.Sprintf("recorded %s at %v", kind, cs)), nil
}

func (sc *ShellController) hit(cmd *shellcmd) (*Response, error) {
	return sc.record(cmd.args, true)
}

func (sc *ShellController) miss(cmd *shellcmd) (*Response, error) {
	return sc.record(cmd.args, false)
}

// confirmSunk records a sunk ship. Its squares become hits if they were not
// already, and one ship of its length leaves the remaining fleet.
func (sc *ShellController) confirmSunk(ship board.SunkShip) error {
	idx := slices.Index(sc.input.Remaining, ship.Length)
	if idx == -1 {
		return fmt.Errorf("no remaining ship of length %d", ship.Length)
	}
	next := sc.input.Copy()
	next.Remaining = slices.Delete(next.Remaining, idx, idx+1)
	next.Sunk = append(next.Sunk, ship.Copy())
	next.Hits = lo.Uniq(append(next.Hits, ship.Positions...))
	if err := next.Validate(); err != nil {
		return err
	}
	sc.input = next
	sc.changed()
	return nil
}

func (sc *ShellController) sink(cmd *shellcmd) (*Response, error) {
	cs, err := sc.parseCoords(cmd.args)
	if err != nil {
		return nil, err
	}
	cs = lo.Uniq(cs)
	slices.SortFunc(cs, board.Coord.Compare)
	if !board.StraightRun(cs) {
		return nil, errors.New("a sunk ship must be one straight unbroken run")
	}
	if err := sc.confirmSunk(board.SunkShip{Length: len(cs), Positions: cs}); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("sunk ship of length %d; remaining %v", len(cs), sc.input.Remaining)), nil
}

func (sc *ShellController) sunkCandidates(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 2 && cmd.args[0] == "confirm" {
		n, err := strconv.Atoi(cmd.args[1])
		if err != nil {
			return nil, err
		}
		if n < 1 || n > len(sc.candidates) {
			return nil, fmt.Errorf("no candidate %d; run candidates first", n)
		}
		ship := sc.candidates[n-1]
		if err := sc.confirmSunk(ship); err != nil {
			return nil, err
		}
		return msg(fmt.Sprintf("confirmed sunk ship %v; remaining %v",
			ship.Positions, sc.input.Remaining)), nil
	}
	sc.candidates = rangefinder.SunkCandidates(sc.input)
	if len(sc.candidates) == 0 {
		return msg("no sunk ship candidates"), nil
	}
	var ss strings.Builder
	for i, c := range sc.candidates {
		fmt.Fprintf(&ss, "%d: length %d at %v\n", i+1, c.Length, c.Positions)
	}
	ss.WriteString("confirm one with: candidates confirm <n>")
	return msg(ss.String()), nil
}

func (sc *ShellController) mode(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		eff := sc.input.Mode.Effective(len(sc.input.Hits))
		if eff != sc.input.Mode {
			return msg(fmt.Sprintf("mode: %v (applied as %v)", sc.input.Mode, eff)), nil
		}
		return msg("mode: " + sc.input.Mode.String()), nil
	}
	m, err := strategy.ModeFromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.input.Mode = m
	sc.changed()
	return msg("mode set to " + m.String()), nil
}

func (sc *ShellController) threads(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return msg(fmt.Sprintf("threads: %d", sc.rf.Threads())), nil
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.rf.SetThreads(n)
	return msg(fmt.Sprintf("threads set to %d", sc.rf.Threads())), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	n := defaultBestCount
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	return msg(rangefinder.AnalyzeMap(sc.input, sc.currentMap(), n)), nil
}

// pick suggests one square to fire at, choosing at random among the squares
// tied for the best value.
func (sc *ShellController) pick(cmd *shellcmd) (*Response, error) {
	m := sc.currentMap()
	if m.IsZero() {
		return nil, errors.New("no valid placements; check the hits, misses and fleet")
	}
	all := m.Best(-1)
	top := lo.Filter(all, func(sq heatmap.Square, _ int) bool {
		return stats.FuzzyEqual(sq.Value, all[0].Value)
	})
	choice := top[frand.Intn(len(top))]
	return msg(fmt.Sprintf("fire at %v (%d tied)", choice, len(top))), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <scenario.yaml>")
	}
	path := sc.scenarioPath(cmd.args[0])
	s, in, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	sc.input = in
	sc.changed()
	return msg(fmt.Sprintf("loaded scenario %q (%v, %d hits, %d misses, fleet %v)",
		s.Name, in.Dims(), len(in.Hits), len(in.Misses), in.Remaining)), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <scenario.yaml> [-name name]")
	}
	path := sc.scenarioPath(cmd.args[0])
	name := cmd.options["name"]
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := scenario.Save(path, scenario.FromInput(name, sc.input)); err != nil {
		return nil, err
	}
	return msg("saved to " + path), nil
}

// scenarioPath resolves bare file names against the configured scenario
// directory.
func (sc *ShellController) scenarioPath(p string) string {
	if filepath.IsAbs(p) || strings.ContainsRune(p, filepath.Separator) {
		return p
	}
	return filepath.Join(sc.config.GetString(config.ConfigScenarioPath), p)
}

func (sc *ShellController) state(cmd *shellcmd) (*Response, error) {
	var ss strings.Builder
	fmt.Fprintf(&ss, "board:  %v\n", sc.input.Dims())
	fmt.Fprintf(&ss, "mode:   %v\n", sc.input.Mode)
	fmt.Fprintf(&ss, "hits:   %v\n", sc.input.Hits)
	fmt.Fprintf(&ss, "misses: %v\n", sc.input.Misses)
	fmt.Fprintf(&ss, "fleet:  %v\n", sc.input.Remaining)
	for _, s := range sc.input.Sunk {
		fmt.Fprintf(&ss, "sunk:   %d at %v\n", s.Length, s.Positions)
	}
	return msg(strings.TrimRight(ss.String(), "\n")), nil
}

func (sc *ShellController) version(cmd *shellcmd) (*Response, error) {
	v := sc.gitVersion
	if v == "" {
		v = "(development build)"
	}
	return msg(fmt.Sprintf("salvo %s\nexecutable directory: %s", v, sc.execPath)), nil
}
