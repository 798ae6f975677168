package game

import "fmt"

// Weights tunes the windowed evaluator.
type Weights struct {
	ThreeInRow     float64 `yaml:"three_in_row" json:"three_in_row"`       // Three own pieces and an empty cell in a window
	TwoInRow       float64 `yaml:"two_in_row" json:"two_in_row"`           // Two own pieces and two empty cells in a window
	CenterControl  float64 `yaml:"center_control" json:"center_control"`   // Per piece advantage in the centre column
	OpponentThreat float64 `yaml:"opponent_threat" json:"opponent_threat"` // Penalty for three opponent pieces and an empty cell
}

// DefaultWeights penalize an opponent threat more than an own three is
// rewarded, so that blocking wins over extending.
func DefaultWeights() Weights {
	return Weights{
		ThreeInRow:     5,
		TwoInRow:       2,
		CenterControl:  3,
		OpponentThreat: 8,
	}
}

func (w Weights) Validate() error {
	if w.ThreeInRow < 0 || w.TwoInRow < 0 || w.CenterControl < 0 || w.OpponentThreat < 0 {
		return fmt.Errorf("%w: negative evaluation weight in %+v", ErrMalformedInput, w)
	}
	return nil
}

// WindowEvaluator sums a score over every four-cell window on the board and
// adds a centre column bonus.
type WindowEvaluator struct {
	weights Weights
}

func NewWindowEvaluator(weights Weights) *WindowEvaluator {
	return &WindowEvaluator{weights: weights}
}

func (e *WindowEvaluator) Weights() Weights {
	return e.weights
}

func (e *WindowEvaluator) Evaluate(b *Board, perspective Player) float64 {
	opponent := perspective.Opponent()
	score := 0.0

	b.forEachWindow(func(window [ConnectLength]Player) {
		score += e.scoreWindow(window, perspective, opponent)
	})

	center := b.columns / 2
	own, opp := 0, 0
	for r := 0; r < b.rows; r++ {
		switch b.At(r, center) {
		case perspective:
			own++
		case opponent:
			opp++
		}
	}
	score += float64(own-opp) * e.weights.CenterControl

	return score
}

func (e *WindowEvaluator) scoreWindow(window [ConnectLength]Player, perspective, opponent Player) float64 {
	own, opp, empty := 0, 0, 0
	for _, p := range window {
		switch p {
		case perspective:
			own++
		case opponent:
			opp++
		default:
			empty++
		}
	}

	switch {
	case own == 3 && empty == 1:
		return e.weights.ThreeInRow
	case own == 2 && empty == 2:
		return e.weights.TwoInRow
	case opp == 3 && empty == 1:
		return -e.weights.OpponentThreat
	}
	return 0
}

// forEachWindow visits every horizontal, vertical and diagonal window of
// ConnectLength cells.
func (b *Board) forEachWindow(visit func(window [ConnectLength]Player)) {
	var window [ConnectLength]Player
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			for _, d := range directions {
				endRow := r + (ConnectLength-1)*d[0]
				endCol := c + (ConnectLength-1)*d[1]
				if !b.inBounds(endRow, endCol) {
					continue
				}
				for i := range window {
					window[i] = b.cells[b.index(r+i*d[0], c+i*d[1])]
				}
				visit(window)
			}
		}
	}
}
