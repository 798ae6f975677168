package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"math"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples columns in
// proportion to their MCTS visit counts raised to 1/temperature. Lower
// temperatures play closer to the most visited column.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return trainingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	if err := checkPlayable(board); err != nil {
		return game.NoColumn, metrics.SearchMetric{}, err
	}
	column, stats, metric := a.mcts.Simulate(board)
	if stats.Total() == 0 { // Nothing to sample from
		return column, metric, nil
	}
	policy := adjustTemperature(stats, a.temperature)
	return sample(policy, a.rng), metric, nil
}

func adjustTemperature(stats searcher.Stats, temperature float64) []float64 {
	// Compute temperature-adjusted column probabilities
	exponent := 1.0 / temperature
	most := 0
	for _, s := range stats {
		most = max(most, s.Visits)
	}
	sum := 0.0
	adjusted := make([]float64, len(stats))
	for column, s := range stats {
		// Scale by the largest count first so small temperatures cannot overflow
		prob := math.Pow(float64(s.Visits)/float64(most), exponent)
		sum += prob
		adjusted[column] = prob
	}
	// Normalize
	for column := range adjusted {
		adjusted[column] /= sum
	}
	return adjusted
}

func sample(policy []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	last := game.NoColumn
	for column, prob := range policy {
		if prob == 0 {
			continue
		}
		last = column
		cumulative += prob
		if sampled < cumulative {
			return column
		}
	}
	return last // Fallback in case of rounding errors
}
