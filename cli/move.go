package cli

import (
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type moveOptions struct {
	engine      string
	toMove      string
	gridFile    string
	depth       int
	weights     game.Weights
	rollouts    int
	duration    time.Duration
	exploration float64
	goroutines  int
	seed        uint64
}

// moveResult is what the move command prints. Score is set by minimax, Stats by MCTS.
type moveResult struct {
	Column int            `json:"column"`
	Score  *float64       `json:"score,omitempty"`
	Stats  searcher.Stats `json:"stats,omitempty"`
}

func newMoveCmd() *cobra.Command {
	opts := moveOptions{weights: game.DefaultWeights()}

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Choose a move for a position",
		Long: `Reads a grid as a JSON array of rows (top row first, 0 empty, 1 for A,
2 for B) from --grid or standard input and prints the chosen column as JSON.
A column of -1 means the game is already over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, opts.gridFile)
			if err != nil {
				return err
			}
			toMove, err := parsePlayer(opts.toMove)
			if err != nil {
				return err
			}

			result, err := chooseMove(grid, toMove, opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "minimax", "Search engine: minimax, mcts")
	cmd.Flags().StringVarP(&opts.toMove, "to-move", "p", "A", "Side to move: A or B")
	cmd.Flags().StringVarP(&opts.gridFile, "grid", "g", "", "Grid JSON file (default: standard input)")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", meta.DEPTH, "Minimax search depth")
	cmd.Flags().Float64Var(&opts.weights.ThreeInRow, "three", opts.weights.ThreeInRow, "Minimax weight of an open three")
	cmd.Flags().Float64Var(&opts.weights.TwoInRow, "two", opts.weights.TwoInRow, "Minimax weight of an open two")
	cmd.Flags().Float64Var(&opts.weights.CenterControl, "center", opts.weights.CenterControl, "Minimax weight of a centre piece")
	cmd.Flags().Float64Var(&opts.weights.OpponentThreat, "threat", opts.weights.OpponentThreat, "Minimax penalty of an opponent three")
	cmd.Flags().IntVarP(&opts.rollouts, "rollouts", "r", meta.ROLLOUTS, "MCTS rollouts, negative for no limit")
	cmd.Flags().DurationVar(&opts.duration, "duration", meta.TIME_BUDGET, "MCTS time budget, 0 for no limit")
	cmd.Flags().Float64Var(&opts.exploration, "exploration", searcher.DefaultExploration, "MCTS exploration constant")
	cmd.Flags().IntVar(&opts.goroutines, "goroutines", meta.GO_ROUTINES, "MCTS worker goroutines")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "MCTS random seed, 0 for a time based seed")

	return cmd
}

func chooseMove(grid [][]int, toMove game.Player, opts moveOptions) (moveResult, error) {
	switch opts.engine {
	case "minimax":
		column, score, err := searcher.ChooseMoveMinimax(grid, toMove, opts.depth, opts.weights)
		if err != nil {
			return moveResult{}, err
		}
		return moveResult{Column: column, Score: encodableScore(score)}, nil
	case "mcts":
		options := []searcher.Option{searcher.WithGoroutines(opts.goroutines)}
		if opts.seed != 0 {
			options = append(options, searcher.WithSeed(opts.seed))
		}
		column, stats, err := searcher.ChooseMoveMCTS(grid, toMove, opts.rollouts, opts.duration, opts.exploration, options...)
		if err != nil {
			return moveResult{}, err
		}
		return moveResult{Column: column, Stats: stats}, nil
	default:
		return moveResult{}, fmt.Errorf("unknown engine %q", opts.engine)
	}
}

// encodableScore clamps forced wins and losses, which JSON cannot carry as infinities.
func encodableScore(score float64) *float64 {
	switch {
	case math.IsInf(score, 1):
		score = math.MaxFloat64
	case math.IsInf(score, -1):
		score = -math.MaxFloat64
	}
	return &score
}

func readGrid(cmd *cobra.Command, path string) ([][]int, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open grid: %w", err)
		}
		defer f.Close()
		r = f
	}

	var grid [][]int
	if err := json.NewDecoder(r).Decode(&grid); err != nil {
		return nil, fmt.Errorf("%w: grid is not a JSON array of rows: %v", game.ErrMalformedInput, err)
	}
	return grid, nil
}

func parsePlayer(s string) (game.Player, error) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return game.PlayerA, nil
	case "B", "2":
		return game.PlayerB, nil
	default:
		return game.None, fmt.Errorf("%w: side to move must be A or B, got %q", game.ErrMalformedInput, s)
	}
}
