package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"fmt"

	"golang.org/x/exp/rand"
)

// NewAgent builds the agent described by config. Searches are seeded with seed.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case metrics.KindMinimax:
		return agent.NewMinimaxAgent(createMinimax(config), config.Depth), nil
	case metrics.KindMCTS:
		return agent.NewEvaluationAgent(createMCTS(config, seed)), nil
	case metrics.KindSampling:
		rng := rand.New(rand.NewSource(seed + 1))
		return agent.NewTrainingAgent(createMCTS(config, seed), config.Temperature, rng), nil
	case metrics.KindTactical:
		return agent.NewTacticalAgent(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", ErrInvalidSetup, config.Kind)
	}
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	weights := game.DefaultWeights()
	if config.Weights != nil {
		weights = *config.Weights
	}

	var evaluator game.Evaluator = game.NewWindowEvaluator(weights)
	if config.Evaluator == metrics.EvaluatorPattern {
		evaluator = game.NewPatternEvaluator()
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	return searcher.NewMinimax(evaluator, options...)
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Rollouts > 0 {
		options = append(options, searcher.WithRollouts(config.Rollouts))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	return searcher.NewMCTS(options...)
}
