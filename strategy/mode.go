// Package strategy sharpens a base probability map according to a targeting
// mode. Every mode is one row of a single factor table; the passes that read
// the table are shared.
package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownMode = errors.New("unknown mode")

type Mode int

const (
	Normal Mode = iota
	Hunting
	Targeting
	SuperAggressive
	Optimized
)

var modeNames = map[Mode]string{
	Normal:          "normal",
	Hunting:         "hunting",
	Targeting:       "targeting",
	SuperAggressive: "super_aggressive",
	Optimized:       "optimized",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ModeNames lists the accepted mode names in mode order.
func ModeNames() []string {
	return []string{"normal", "hunting", "targeting", "super_aggressive", "optimized"}
}

// ModeFromString parses a mode name. Dashes and case are ignored, so
// "Super-Aggressive" is accepted.
func ModeFromString(s string) (Mode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	m, ok := lo.FindKey(modeNames, norm)
	if !ok {
		return Normal, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMode, s,
			strings.Join(ModeNames(), ", "))
	}
	return m, nil
}

// Effective returns the mode that is actually applied for a call with the
// given number of hits: Normal is treated as Targeting as soon as there is
// any hit on the board. The receiver is not changed.
func (m Mode) Effective(numHits int) Mode {
	if m == Normal && numHits > 0 {
		return Targeting
	}
	return m
}
