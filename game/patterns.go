package game

// Heat added by each detected pattern
const (
	heatMustFill       = 8.0  // Empty cell completing three, playable now
	heatBeneathPending = -2.0 // Cell under a completing cell that is not yet playable
	heatOpenEnd        = 4.0  // End of an open two
	heatSplitGap       = 6.0  // Gap in the middle of a split two
)

type cell [2]int

// Directions a flat open pattern can lie along; vertical lines are never open at both ends
var openDirections = [3][2]int{{0, 1}, {1, 1}, {-1, 1}}

// PatternEvaluator scores a board from detected threat patterns rather than
// raw window counts. For each side it finds completing cells of three-piece
// lines, open twos (_XX_) and split twos (_X_X_), turns them into a heat map
// of cell priorities, and returns the perspective's total heat minus the
// opponent's.
type PatternEvaluator struct{}

func NewPatternEvaluator() *PatternEvaluator {
	return &PatternEvaluator{}
}

func (e *PatternEvaluator) Evaluate(b *Board, perspective Player) float64 {
	return heatSum(b.heat(perspective)) - heatSum(b.heat(perspective.Opponent()))
}

func heatSum(heat []float64) float64 {
	sum := 0.0
	for _, h := range heat {
		if h > 0 {
			sum += h
		}
	}
	return sum
}

// heat returns the per-cell priority map of player's patterns, row-major.
func (b *Board) heat(player Player) []float64 {
	heat := make([]float64, len(b.cells))

	for p := range b.completingCells(player) {
		r, c := p[0], p[1]
		if b.supported(r, c) {
			heat[b.index(r, c)] += heatMustFill
		} else {
			heat[b.index(r+1, c)] += heatBeneathPending
		}
	}
	for pair := range b.openTwos(player) {
		for _, p := range pair {
			heat[b.index(p[0], p[1])] += heatOpenEnd
		}
	}
	for triple := range b.splitTwos(player) {
		heat[b.index(triple[0][0], triple[0][1])] += heatOpenEnd
		heat[b.index(triple[1][0], triple[1][1])] += heatSplitGap
		heat[b.index(triple[2][0], triple[2][1])] += heatOpenEnd
	}
	return heat
}

// supported reports whether a piece dropped in the column would land on (row, column).
func (b *Board) supported(row, column int) bool {
	return row == b.rows-1 || b.At(row+1, column) != None
}

// completingCells finds empty cells that would give player four in a row.
func (b *Board) completingCells(player Player) map[cell]struct{} {
	found := make(map[cell]struct{})
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			for _, d := range directions {
				if !b.inBounds(r+(ConnectLength-1)*d[0], c+(ConnectLength-1)*d[1]) {
					continue
				}
				own, gap := 0, cell{-1, -1}
				for i := 0; i < ConnectLength; i++ {
					rr, cc := r+i*d[0], c+i*d[1]
					switch b.At(rr, cc) {
					case player:
						own++
					case None:
						gap = cell{rr, cc}
					}
				}
				if own == ConnectLength-1 && gap[0] >= 0 {
					found[gap] = struct{}{}
				}
			}
		}
	}
	return found
}

// openTwos finds _XX_ lines whose cells are all playable, keyed by their two ends.
func (b *Board) openTwos(player Player) map[[2]cell]struct{} {
	pattern := [4]Player{None, player, player, None}
	found := make(map[[2]cell]struct{})
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			for _, d := range openDirections {
				if !b.matchesSupported(r, c, d, pattern[:]) {
					continue
				}
				found[[2]cell{{r, c}, {r + 3*d[0], c + 3*d[1]}}] = struct{}{}
			}
		}
	}
	return found
}

// splitTwos finds _X_X_ lines whose cells are all playable, keyed by their three gaps.
func (b *Board) splitTwos(player Player) map[[3]cell]struct{} {
	pattern := [5]Player{None, player, None, player, None}
	found := make(map[[3]cell]struct{})
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			for _, d := range openDirections {
				if !b.matchesSupported(r, c, d, pattern[:]) {
					continue
				}
				found[[3]cell{{r, c}, {r + 2*d[0], c + 2*d[1]}, {r + 4*d[0], c + 4*d[1]}}] = struct{}{}
			}
		}
	}
	return found
}

func (b *Board) matchesSupported(row, column int, d [2]int, pattern []Player) bool {
	for i, want := range pattern {
		r, c := row+i*d[0], column+i*d[1]
		if !b.inBounds(r, c) || b.At(r, c) != want || !b.supported(r, c) {
			return false
		}
	}
	return true
}
