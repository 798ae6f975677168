package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MatchResult tallies the games of one matchup. Agent1 always plays A.
type MatchResult struct {
	Agent1 int `json:"agent1"`
	Agent2 int `json:"agent2"`
	Wins1  int `json:"wins1"`
	Wins2  int `json:"wins2"`
	Draws  int `json:"draws"`
}

type Results struct {
	MatchUps    []MatchResult
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Dir         string // Where results were written, empty if not stored
}

// Run plays every matchup of setup and stores the records under
// setup.OutputDir when it is set.
func Run(setup Setup) (Results, error) {
	if err := setup.Validate(); err != nil {
		return Results{}, err
	}
	configs := make(map[int]metrics.AgentConfig, len(setup.Agents))
	for _, config := range setup.Agents {
		configs[config.ID] = config
	}

	seed := setup.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	master := rand.New(rand.NewSource(seed))

	// Run a number of games for each matchup
	count := 0
	results := Results{}

	log.Info().Msgf("starting %s...", setup.Name)

	for mi, matchUp := range setup.MatchUps {
		config1 := configs[matchUp[0]]
		config2 := configs[matchUp[1]]
		tally := MatchResult{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.MatchUps), config1, config2)

		for i := 0; i < setup.Games; i++ {
			first := game.PlayerA
			if setup.AlternateFirst && i%2 == 1 {
				first = game.PlayerB
			}

			winner, gameMetric, moveMetrics, err := runGame(setup, config1, config2, first, master)
			if err != nil {
				return Results{}, err
			}
			count++

			switch winner {
			case game.PlayerA:
				tally.Wins1++
			case game.PlayerB:
				tally.Wins2++
			default:
				tally.Draws++
			}
			results.GameRecords = append(results.GameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.MoveRecords = append(results.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(setup.MatchUps), i+1, winner)
		}
		results.MatchUps = append(results.MatchUps, tally)
		log.Info().Msgf("completed matchup %d of %d: %d-%d with %d draws", mi+1, len(setup.MatchUps), tally.Wins1, tally.Wins2, tally.Draws)
	}

	log.Info().Msgf("completed %s", setup.Name)

	if setup.OutputDir != "" {
		dir, err := store(setup, results)
		if err != nil {
			return Results{}, err
		}
		results.Dir = dir
	}
	return results, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(setup Setup, config1, config2 metrics.AgentConfig, first game.Player, master *rand.Rand) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := NewAgent(config1, master.Uint64())
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	agent2, err := NewAgent(config2, master.Uint64())
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	board, err := game.NewBoard(setup.Rows, setup.Columns, first)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	e, err := engine.LocalEngine(board, agent1, agent2, rand.New(rand.NewSource(master.Uint64())))
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func store(setup Setup, results Results) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(setup.OutputDir, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(struct {
		Setup
		Results []MatchResult `json:"results"`
	}{setup, results.MatchUps})
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}

	err = writer.WriteAgentConfigs(setup.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(results.GameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.MoveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
