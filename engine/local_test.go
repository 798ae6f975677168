package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// scripted plays whatever its function returns
type scripted func(b *game.Board) (int, error)

func (s scripted) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	column, err := s(b)
	return column, metrics.SearchMetric{Engine: "scripted"}, err
}

func always(column int) scripted {
	return func(*game.Board) (int, error) { return column, nil }
}

func TestLocalEngine(t *testing.T) {
	t.Run("rejects a missing agent", func(t *testing.T) {
		_, err := LocalEngine(game.NewStandardBoard(), always(0), nil, rand.New(rand.NewSource(1)))

		require.ErrorIs(t, err, ErrMissingAgent)
	})

	t.Run("rejects a finished game", func(t *testing.T) {
		b := game.NewStandardBoard()
		for _, c := range []int{0, 1, 0, 1, 0, 1, 0} {
			require.True(t, b.Drop(c))
		}

		_, err := LocalEngine(b, always(0), always(1), rand.New(rand.NewSource(1)))

		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestLocalRun(t *testing.T) {
	t.Run("first player to connect four wins", func(t *testing.T) {
		e, err := LocalEngine(game.NewStandardBoard(), always(0), always(1), rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.PlayerA, winner)
		require.Equal(t, game.PlayerA, gameMetric.Winner)
		require.Equal(t, game.PlayerA, gameMetric.StartingPlayer)
		require.Equal(t, 7, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 7)
		require.Equal(t, game.PlayerB, moveMetrics[1].Player)
		require.Equal(t, "scripted", moveMetrics[0].Engine)
		require.False(t, moveMetrics[6].Fallback)
	})

	t.Run("starting player comes from the board", func(t *testing.T) {
		b, err := game.NewBoard(6, 7, game.PlayerB)
		require.NoError(t, err)
		e, err := LocalEngine(b, always(0), always(1), rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.PlayerB, winner)
		require.Equal(t, game.PlayerB, gameMetric.StartingPlayer)
		require.Equal(t, game.PlayerB, moveMetrics[0].Player)
	})

	t.Run("illegal columns are replaced by random legal ones", func(t *testing.T) {
		e, err := LocalEngine(game.NewStandardBoard(), always(0), always(0), rand.New(rand.NewSource(2)))
		require.NoError(t, err)

		_, gameMetric, moveMetrics := e.Run()

		for i := 0; i < 6; i++ {
			require.False(t, moveMetrics[i].Fallback, "column 0 still has room at step %d", i+1)
		}
		require.True(t, moveMetrics[6].Fallback, "column 0 is full at step 7")
		require.NotEqual(t, 0, moveMetrics[6].Column)
		require.Equal(t, e.Board.Moves(), gameMetric.TotalMoves)
	})

	t.Run("agent errors are replaced by random legal columns", func(t *testing.T) {
		failing := scripted(func(*game.Board) (int, error) { return game.NoColumn, errors.New("boom") })
		e, err := LocalEngine(game.NewStandardBoard(), failing, failing, rand.New(rand.NewSource(3)))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.True(t, e.Board.Terminal())
		require.Equal(t, e.Board.Winner(), winner)
		for _, m := range moveMetrics {
			require.True(t, m.Fallback)
		}
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
	})

	t.Run("agents cannot change the game board", func(t *testing.T) {
		vandal := scripted(func(b *game.Board) (int, error) {
			b.Drop(6)
			b.Drop(6)
			return 3, nil
		})
		e, err := LocalEngine(game.NewStandardBoard(), vandal, always(4), rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		_, _, moveMetrics := e.Run()

		require.Zero(t, e.Board.Height(6))
		require.Equal(t, 3, moveMetrics[0].Column)
	})

	t.Run("search agents play a full game", func(t *testing.T) {
		minimax := agent.NewMinimaxAgent(searcher.NewMinimax(nil), 2)
		mcts := agent.NewEvaluationAgent(searcher.NewMCTS(searcher.WithRollouts(100), searcher.WithGoroutines(2), searcher.WithSeed(4)))
		e, err := LocalEngine(game.NewStandardBoard(), minimax, mcts, rand.New(rand.NewSource(4)))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.True(t, e.Board.Terminal())
		require.Equal(t, e.Board.Winner(), winner)
		require.LessOrEqual(t, gameMetric.TotalMoves, game.StandardRows*game.StandardColumns)
		for _, m := range moveMetrics {
			require.False(t, m.Fallback, "search agents only return legal columns")
		}
	})
}
