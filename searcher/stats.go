package searcher

import "connect4/game"

// ColumnStats aggregates the rollouts that started by dropping in one column.
// Wins and losses are from the perspective of the player to move at the root.
type ColumnStats struct {
	Visits int `json:"visits"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func (s ColumnStats) Draws() int {
	return s.Visits - s.Wins - s.Losses
}

// Ratio is the mean outcome (wins - losses) / visits; zero when unvisited.
func (s ColumnStats) Ratio() float64 {
	if s.Visits == 0 {
		return 0
	}
	return float64(s.Wins-s.Losses) / float64(s.Visits)
}

// Stats holds one ColumnStats per board column.
type Stats []ColumnStats

func NewStats(columns int) Stats {
	return make(Stats, columns)
}

func (s Stats) Total() int {
	total := 0
	for _, column := range s {
		total += column.Visits
	}
	return total
}

// Best returns the visited column with the highest ratio, ties to the lower index.
func (s Stats) Best() int {
	best := game.NoColumn
	for column, stats := range s {
		if stats.Visits == 0 {
			continue
		}
		if best == game.NoColumn || stats.Ratio() > s[best].Ratio() {
			best = column
		}
	}
	return best
}

// Merge sums per-column counters of every partial into a new Stats.
func Merge(columns int, partials ...Stats) Stats {
	merged := NewStats(columns)
	for _, partial := range partials {
		for column, stats := range partial {
			merged[column].Visits += stats.Visits
			merged[column].Wins += stats.Wins
			merged[column].Losses += stats.Losses
		}
	}
	return merged
}
