// Package scenario reads YAML descriptions of a board position, used as test
// fixtures and by the shell's load command.
//
// A scenario looks like:
//
//	height: 10
//	width: 10
//	mode: targeting
//	hits: [[2, 3], [2, 4]]
//	misses: [[0, 0]]
//	remaining: [5, 4, 3]
//	sunk:
//	  - length: 2
//	    positions: [[7, 7], [7, 8]]
package scenario

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/rangefinder"
	"github.com/domino14/salvo/strategy"
)

type Sunk struct {
	Length    int      `yaml:"length"`
	Positions [][2]int `yaml:"positions"`
}

type Scenario struct {
	Name      string   `yaml:"name,omitempty"`
	Height    int      `yaml:"height"`
	Width     int      `yaml:"width"`
	Mode      string   `yaml:"mode,omitempty"`
	Hits      [][2]int `yaml:"hits,omitempty"`
	Misses    [][2]int `yaml:"misses,omitempty"`
	Remaining []int    `yaml:"remaining"`
	Sunk      []Sunk   `yaml:"sunk,omitempty"`
}

func toCoords(pairs [][2]int) []board.Coord {
	return lo.Map(pairs, func(p [2]int, _ int) board.Coord {
		return board.Coord{Row: p[0], Col: p[1]}
	})
}

func toPairs(cs []board.Coord) [][2]int {
	return lo.Map(cs, func(c board.Coord, _ int) [2]int {
		return [2]int{c.Row, c.Col}
	})
}

// Input converts the scenario into a validated rangefinder input. An empty
// mode means normal.
func (s Scenario) Input() (rangefinder.Input, error) {
	mode := strategy.Normal
	if s.Mode != "" {
		var err error
		mode, err = strategy.ModeFromString(s.Mode)
		if err != nil {
			return rangefinder.Input{}, err
		}
	}
	in := rangefinder.Input{
		Height:    s.Height,
		Width:     s.Width,
		Hits:      toCoords(s.Hits),
		Misses:    toCoords(s.Misses),
		Remaining: append([]int(nil), s.Remaining...),
		Mode:      mode,
		Sunk: lo.Map(s.Sunk, func(sk Sunk, _ int) board.SunkShip {
			return board.SunkShip{Length: sk.Length, Positions: toCoords(sk.Positions)}
		}),
	}
	if err := in.Validate(); err != nil {
		return rangefinder.Input{}, err
	}
	return in, nil
}

// FromInput builds a scenario describing the given input.
func FromInput(name string, in rangefinder.Input) Scenario {
	return Scenario{
		Name:      name,
		Height:    in.Height,
		Width:     in.Width,
		Mode:      in.Mode.String(),
		Hits:      toPairs(in.Hits),
		Misses:    toPairs(in.Misses),
		Remaining: append([]int(nil), in.Remaining...),
		Sunk: lo.Map(in.Sunk, func(s board.SunkShip, _ int) Sunk {
			return Sunk{Length: s.Length, Positions: toPairs(s.Positions)}
		}),
	}
}

// Parse decodes a scenario from YAML and returns its rangefinder input.
func Parse(data []byte) (Scenario, rangefinder.Input, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, rangefinder.Input{}, fmt.Errorf("decoding scenario: %w", err)
	}
	in, err := s.Input()
	if err != nil {
		return Scenario{}, rangefinder.Input{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return s, in, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (Scenario, rangefinder.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, rangefinder.Input{}, err
	}
	return Parse(data)
}

// Save writes the scenario to path as YAML.
func Save(path string, s Scenario) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
