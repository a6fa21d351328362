package game

import (
	"fmt"

	"github.com/minimax-games/tictactoe/internal/apperror"
	"github.com/minimax-games/tictactoe/internal/board"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is the single live game owned by the turn loop. The board inside it
// is mutated only here, between search calls, never during one.
type Game struct {
	Board   board.Board
	Turn    board.Cell
	Status  string
	Outcome board.Outcome
}

func New(firstTurn board.Cell) *Game {
	return &Game{
		Board:  board.New(),
		Turn:   firstTurn,
		Status: StatusOngoing,
	}
}

// MakeTurn - places player's mark on the given square and advances the game
// state. Rejects moves on a finished game, out of turn, out of range, or on
// an occupied square.
func (that *Game) MakeTurn(player board.Cell, cell board.Coord) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell.Row < 0 || cell.Row >= board.Size || cell.Col < 0 || cell.Col >= board.Size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, cell.Row, cell.Col)
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if that.Board.At(cell) != board.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board = that.Board.With(cell, player)
	that.updateState()

	return nil
}

// updateState - checks the position after a move and either finishes the
// game or passes the turn.
func (that *Game) updateState() {
	switch outcome := that.Board.Outcome(); outcome {
	case board.MaximizerWin, board.MinimizerWin, board.Draw:
		that.Outcome = outcome
		that.Status = StatusFinished
		that.Turn = board.Empty
	default:
		that.Turn = board.Opponent(that.Turn)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
