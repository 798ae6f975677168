// meta/meta.go
package meta

import "time"

// DEPTH defines the default minimax search depth in plies.
const DEPTH = 5

// ROLLOUTS defines the default number of MCTS rollouts per move.
const ROLLOUTS = 2000

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// TIME_BUDGET defines the default wall-clock budget per move, 0 for none.
const TIME_BUDGET = 0 * time.Millisecond

// TEMPERATURE defines the default sampling temperature of training agents.
const TEMPERATURE = 1.0

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 10

// RESULTS_DIR defines where tournament results are written.
const RESULTS_DIR = "results"
