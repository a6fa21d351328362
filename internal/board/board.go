package board

// Size - the board dimension; the game is always played on a 3x3 grid.
const Size = 3

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Maximizer
	Minimizer
)

func (that Cell) String() string {
	switch that {
	case Maximizer:
		return "maximizer"
	case Minimizer:
		return "minimizer"
	default:
		return "empty"
	}
}

// Opponent - returns the other player's cell value. Empty maps to itself.
func Opponent(player Cell) Cell {
	switch player {
	case Maximizer:
		return Minimizer
	case Minimizer:
		return Maximizer
	default:
		return Empty
	}
}

// Outcome is the result of a game derived from a board position.
type Outcome uint8

const (
	InProgress Outcome = iota
	MaximizerWin
	MinimizerWin
	Draw
)

func (that Outcome) String() string {
	switch that {
	case MaximizerWin:
		return "maximizer wins"
	case MinimizerWin:
		return "minimizer wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Coord addresses a single square, zero-based, row-major.
type Coord struct {
	Row int
	Col int
}

// Board is a value type: passing it copies all nine cells, so every
// hypothetical position built during search is an independent snapshot.
type Board [Size][Size]Cell

// WinLines - the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8][3]Coord{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// New - returns an all-empty board.
func New() Board {
	return Board{}
}

// At - returns the cell at the given coordinate.
func (that Board) At(c Coord) Cell {
	return that[c.Row][c.Col]
}

// With - returns a copy of the board with one square set to the given mark.
func (that Board) With(c Coord, player Cell) Board {
	that[c.Row][c.Col] = player
	return that
}

// Winner - reports whether player owns all three squares of any winning line.
func (that Board) Winner(player Cell) bool {
	for _, line := range WinLines {
		if that.At(line[0]) == player && that.At(line[1]) == player && that.At(line[2]) == player {
			return true
		}
	}

	return false
}

// IsTerminal - reports whether the game is over: somebody won or the board
// is full. A board where both sides hold a completed line is unreachable by
// legal play and gets no special handling.
func (that Board) IsTerminal() bool {
	return that.Winner(Maximizer) || that.Winner(Minimizer) || len(that.EmptyCells()) == 0
}

// Evaluate - scores the position from the Maximizer's perspective: +1 for a
// Maximizer win, -1 for a Minimizer win, 0 otherwise. Only meaningful at
// terminal nodes; a non-terminal board degenerately scores 0.
func (that Board) Evaluate() int {
	switch {
	case that.Winner(Maximizer):
		return 1
	case that.Winner(Minimizer):
		return -1
	default:
		return 0
	}
}

// EmptyCells - returns the coordinates of all empty squares in row-major
// order. Recomputed fresh on every call.
func (that Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				cells = append(cells, Coord{Row: row, Col: col})
			}
		}
	}

	return cells
}

// LegalMoves - returns one successor board per empty square, each an
// independent copy with that square set to player's mark. Generation order
// matches EmptyCells, which fixes the search engine's tie-break.
func (that Board) LegalMoves(player Cell) []Board {
	empty := that.EmptyCells()

	children := make([]Board, 0, len(empty))
	for _, cell := range empty {
		children = append(children, that.With(cell, player))
	}

	return children
}

// Outcome - derives the game result from the position.
func (that Board) Outcome() Outcome {
	switch {
	case that.Winner(Maximizer):
		return MaximizerWin
	case that.Winner(Minimizer):
		return MinimizerWin
	case len(that.EmptyCells()) == 0:
		return Draw
	default:
		return InProgress
	}
}

// Diff - returns the first square, row-major, where the two boards disagree.
// Callers use it to recover the move behind a successor board produced by
// the search engine.
func (that Board) Diff(other Board) (Coord, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] != other[row][col] {
				return Coord{Row: row, Col: col}, true
			}
		}
	}

	return Coord{}, false
}
