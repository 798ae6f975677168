package experiments

import (
	"bytes"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Setup describes a tournament: the agents taking part, which pairs play,
// and how many games each pair plays.
type Setup struct {
	Name           string                `yaml:"name" json:"name"`
	Games          int                   `yaml:"games" json:"games"`
	Rows           int                   `yaml:"rows" json:"rows"`
	Columns        int                   `yaml:"columns" json:"columns"`
	Seed           uint64                `yaml:"seed" json:"seed"`
	AlternateFirst bool                  `yaml:"alternate_first" json:"alternate_first"`
	OutputDir      string                `yaml:"output_dir" json:"output_dir"`
	Agents         []metrics.AgentConfig `yaml:"agents" json:"agents"`
	MatchUps       [][2]int              `yaml:"matchups" json:"matchups"` // Pairs of AgentConfig.ID, the first plays A
}

var ErrInvalidSetup = errors.New("invalid setup")

// LoadSetup reads a YAML setup file, fills in defaults and validates it.
func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read setup: %w", err)
	}
	return ParseSetup(data)
}

func ParseSetup(data []byte) (Setup, error) {
	var setup Setup
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&setup); err != nil {
		return Setup{}, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	setup.applyDefaults()
	if err := setup.Validate(); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

func (s *Setup) applyDefaults() {
	if s.Name == "" {
		s.Name = "tournament"
	}
	if s.Games == 0 {
		s.Games = meta.NUM_GAMES
	}
	if s.Rows == 0 {
		s.Rows = game.StandardRows
	}
	if s.Columns == 0 {
		s.Columns = game.StandardColumns
	}
	for i := range s.Agents {
		config := &s.Agents[i]
		switch config.Kind {
		case metrics.KindMinimax:
			if config.Depth == 0 {
				config.Depth = meta.DEPTH
			}
			if config.Evaluator == "" {
				config.Evaluator = metrics.EvaluatorWindow
			}
		case metrics.KindMCTS, metrics.KindSampling:
			if config.Goroutines == 0 {
				config.Goroutines = meta.GO_ROUTINES
			}
			if config.Rollouts == 0 && config.Duration == 0 {
				config.Rollouts = meta.ROLLOUTS
			}
			if config.Kind == metrics.KindSampling && config.Temperature == 0 {
				config.Temperature = meta.TEMPERATURE
			}
		}
	}
}

func (s Setup) Validate() error {
	if s.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidSetup, s.Games)
	}
	if s.Rows < 1 || s.Columns < 1 {
		return fmt.Errorf("%w: board dimensions %dx%d", ErrInvalidSetup, s.Rows, s.Columns)
	}
	if len(s.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidSetup)
	}

	ids := make(map[int]bool, len(s.Agents))
	for _, config := range s.Agents {
		if ids[config.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidSetup, config.ID)
		}
		ids[config.ID] = true
		if err := validateAgent(config); err != nil {
			return err
		}
	}
	for _, matchUp := range s.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("%w: matchup references unknown agent %d", ErrInvalidSetup, id)
			}
		}
	}
	return nil
}

func validateAgent(config metrics.AgentConfig) error {
	switch config.Kind {
	case metrics.KindMinimax:
		if config.Depth < 1 {
			return fmt.Errorf("%w: agent %d needs a positive depth", ErrInvalidSetup, config.ID)
		}
		if config.Evaluator != metrics.EvaluatorWindow && config.Evaluator != metrics.EvaluatorPattern {
			return fmt.Errorf("%w: agent %d has unknown evaluator %q", ErrInvalidSetup, config.ID, config.Evaluator)
		}
		if config.Weights != nil {
			if err := config.Weights.Validate(); err != nil {
				return fmt.Errorf("%w: agent %d: %v", ErrInvalidSetup, config.ID, err)
			}
		}
	case metrics.KindMCTS, metrics.KindSampling:
		if config.Exploration < 0 {
			return fmt.Errorf("%w: agent %d has a negative exploration constant", ErrInvalidSetup, config.ID)
		}
		if config.Temperature < 0 {
			return fmt.Errorf("%w: agent %d has a negative temperature", ErrInvalidSetup, config.ID)
		}
	case metrics.KindTactical:
	default:
		return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidSetup, config.ID, config.Kind)
	}
	return nil
}
