// Package scenario loads named grid layouts from JSON files.
//
// A scenario bundles a grid layout with the actor character the caller
// intends to move and the fill character written into vacated cells.
// Scenario files are read-only inputs; nothing is ever written back.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/casterix/gridkit/grid"
)

// ErrInvalidScenario reports a scenario file that fails validation.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario describes a grid layout and the characters used to play it.
type Scenario struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Layout      []string `json:"layout"`
	Actor       string   `json:"actor"`
	Fill        string   `json:"fill"`
}

// Load reads and validates a scenario JSON file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	if sc.Fill == "" {
		sc.Fill = string(grid.DefaultFill)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario for structural correctness: a name, a
// non-empty rectangular layout, a single-character actor occurring
// exactly once, and a single-character fill.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if len(s.Layout) == 0 {
		return fmt.Errorf("%w: layout is empty", ErrInvalidScenario)
	}

	width := len([]rune(s.Layout[0]))
	for i, row := range s.Layout {
		if n := len([]rune(row)); n != width {
			return fmt.Errorf("%w: row %d has %d characters, expected %d",
				ErrInvalidScenario, i+1, n, width)
		}
	}

	actor, err := singleRune(s.Actor, "actor")
	if err != nil {
		return err
	}
	if _, err := singleRune(s.Fill, "fill"); err != nil {
		return err
	}

	if n := strings.Count(strings.Join(s.Layout, "\n"), s.Actor); n != 1 {
		return fmt.Errorf("%w: actor %q must appear exactly once in layout, found %d",
			ErrInvalidScenario, string(actor), n)
	}
	return nil
}

// ActorRune returns the actor as a rune. Validate must have passed.
func (s *Scenario) ActorRune() rune { return []rune(s.Actor)[0] }

// FillRune returns the fill character as a rune. Validate must have
// passed.
func (s *Scenario) FillRune() rune { return []rune(s.Fill)[0] }

// Grid builds the scenario's layout into a parsed grid.
func (s *Scenario) Grid() (*grid.Grid, error) {
	return grid.New(strings.Join(s.Layout, "\n"))
}

func singleRune(value, field string) (rune, error) {
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %s must be exactly one character, got %q",
			ErrInvalidScenario, field, value)
	}
	return runes[0], nil
}
