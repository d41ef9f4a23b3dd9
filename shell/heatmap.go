package shell

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/stats"
)

const (
	defaultHistogramBins  = 10
	defaultHistogramWidth = 40
)

// marks returns the runes drawn over recorded squares in the colour view.
func (sc *ShellController) marks() map[board.Coord]rune {
	mk := make(map[board.Coord]rune, len(sc.input.Hits)+len(sc.input.Misses))
	for _, c := range sc.input.Misses {
		mk[c] = 'o'
	}
	for _, c := range sc.input.Hits {
		mk[c] = 'X'
	}
	for _, s := range sc.input.Sunk {
		for _, c := range s.Positions {
			mk[c] = '#'
		}
	}
	return mk
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(strings.TrimRight(sc.currentMap().String(), "\n")), nil
}

func (sc *ShellController) heat(cmd *shellcmd) (*Response, error) {
	var buf bytes.Buffer
	m := sc.currentMap()
	log.Debug().Int("live", len(m.Live())).Msg("rendering-heatmap")
	m.Display(&buf, sc.marks())
	buf.WriteString("X hit   o miss   # sunk")
	return msg(buf.String()), nil
}

func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	bins := defaultHistogramBins
	if b, ok := cmd.options["bins"]; ok {
		var err error
		if bins, err = strconv.Atoi(b); err != nil {
			return nil, err
		}
		if bins <= 0 {
			return nil, fmt.Errorf("bins must be positive, got %d", bins)
		}
	}
	s := stats.Summarize(sc.currentMap())
	var buf bytes.Buffer
	buf.WriteString(s.String())
	if err := s.WriteHistogram(&buf, bins, defaultHistogramWidth); err != nil {
		return nil, err
	}
	return msg(string(bytes.TrimRight(buf.Bytes(), "\n"))), nil
}
