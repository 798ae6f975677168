package game

import "errors"

// Player identifies the owner of a cell, or the side to move.
type Player uint8

const (
	None Player = iota // Empty cell, or a drawn result
	PlayerA
	PlayerB
)

const (
	StandardRows    = 6
	StandardColumns = 7
	ConnectLength   = 4

	// NoColumn is returned when no move can be chosen
	NoColumn = -1
)

var ErrMalformedInput = errors.New("malformed input")

// Opponent returns the other side. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return None
	}
}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "-"
	}
}

// Evaluator scores a non-terminal board from the perspective of one player.
// Higher is better for perspective. Terminal boards are scored by the search
// engines, never by an Evaluator.
type Evaluator interface {
	Evaluate(b *Board, perspective Player) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(b *Board, perspective Player) float64

func (f EvaluatorFunc) Evaluate(b *Board, perspective Player) float64 {
	return f(b, perspective)
}
