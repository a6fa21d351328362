package game

import "github.com/minimax-games/tictactoe/internal/board"

// Player binds a side of the search to a display mark.
type Player struct {
	Side  board.Cell
	Mark  string
	Human bool
}

// NewPlayers - returns the human and computer players. The human always
// plays the Minimizer side; the mark is presentation only.
func NewPlayers(humanMark, computerMark string) (*Player, *Player) {
	human := &Player{Side: board.Minimizer, Mark: humanMark, Human: true}
	computer := &Player{Side: board.Maximizer, Mark: computerMark}

	return human, computer
}
