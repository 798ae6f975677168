package metrics

import (
	"connect4/game"
	"time"
)

// Agent kinds understood by the tournament runner
const (
	KindMinimax  = "minimax"
	KindMCTS     = "mcts"
	KindSampling = "sampling"
	KindTactical = "tactical"
)

// Evaluators selectable for minimax agents
const (
	EvaluatorWindow  = "window"
	EvaluatorPattern = "pattern"
)

type AgentConfig struct {
	ID          int           `yaml:"id" json:"id"`
	Kind        string        `yaml:"kind" json:"kind"`
	Depth       int           `yaml:"depth,omitempty" json:"depth,omitempty"`
	Evaluator   string        `yaml:"evaluator,omitempty" json:"evaluator,omitempty"`
	Weights     *game.Weights `yaml:"weights,omitempty" json:"weights,omitempty"`
	Goroutines  int           `yaml:"goroutines,omitempty" json:"goroutines,omitempty"`
	Rollouts    int           `yaml:"rollouts,omitempty" json:"rollouts,omitempty"`
	Duration    time.Duration `yaml:"duration,omitempty" json:"duration,omitempty"`
	Exploration float64       `yaml:"exploration,omitempty" json:"exploration,omitempty"`
	Temperature float64       `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	Seed        uint64        `yaml:"seed,omitempty" json:"seed,omitempty"`
}
