package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
