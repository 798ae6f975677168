package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrMissingAgent = errors.New("need an agent for each player")
	ErrGameOver     = errors.New("game on board is already over")
)

type Local struct {
	Board  *game.Board
	agents map[game.Player]agent.Agent
	rng    *rand.Rand
}

// LocalEngine plays agentA as PlayerA and agentB as PlayerB on board, starting
// with whoever is to move on it. rng picks replacement columns for bad moves.
func LocalEngine(board *game.Board, agentA, agentB agent.Agent, rng *rand.Rand) (*Local, error) {
	if agentA == nil || agentB == nil {
		return nil, ErrMissingAgent
	}
	if board.Terminal() {
		return nil, ErrGameOver
	}
	return &Local{
		Board:  board,
		agents: map[game.Player]agent.Agent{game.PlayerA: agentA, game.PlayerB: agentB},
		rng:    rng,
	}, nil
}

// Run executes the entire game loop until a win or a draw.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Board.Turn())

	step := 1
	for !e.Board.Terminal() {
		player := e.Board.Turn()
		column, searchMetric, err := e.agents[player].FindMove(e.Board.Clone())

		fallback := false
		if err != nil || !e.Board.CanDrop(column) {
			legal := e.Board.AvailableColumns()
			replacement := legal[e.rng.Intn(len(legal))]
			log.Warn().Err(err).Msgf("player %s chose column %d, playing random column %d instead", player, column, replacement)
			column, fallback = replacement, true
		}
		e.Board.Drop(column)
		log.Debug().Msgf("step %d: player %s dropped in column %d\n%s", step, player, column, e.Board)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Column:       column,
			Fallback:     fallback,
			SearchMetric: searchMetric,
		})
		step++
	}

	gameMetric.Winner = e.Board.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner != game.None {
		log.Info().Msgf("player %s won after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("draw after %d moves", gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}
