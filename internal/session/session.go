package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minimax-games/tictactoe/internal/apperror"
	"github.com/minimax-games/tictactoe/internal/board"
	"github.com/minimax-games/tictactoe/internal/game"
)

type searcher interface {
	SelectBestMove(b board.Board) (board.Board, bool)
}

type ui interface {
	PromptMove(ctx context.Context) (board.Coord, error)
	ShowBoard(b board.Board)
	ShowMessage(msg string)
	ShowOutcome(outcome board.Outcome)
}

// Session sequences human and computer turns over the single live game
// until it finishes.
type Session struct {
	logger *slog.Logger

	searcher searcher
	ui       ui
	game     *game.Game
}

func New(logger *slog.Logger, searcher searcher, ui ui, gameInstance *game.Game) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		searcher: searcher,
		ui:       ui,
		game:     gameInstance,
	}
}

// Run - plays the game to completion and returns the final outcome. The
// context only interrupts the loop between turns; a single search always
// runs to completion.
func (that *Session) Run(ctx context.Context) (board.Outcome, error) {
	that.ui.ShowBoard(that.game.Board)

	for that.game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return board.InProgress, fmt.Errorf("game interrupted: %w", err)
		}

		var err error
		if that.game.Turn == board.Minimizer {
			err = that.humanTurn(ctx)
		} else {
			err = that.computerTurn()
		}

		if err != nil {
			return board.InProgress, err
		}

		that.ui.ShowBoard(that.game.Board)
	}

	that.ui.ShowOutcome(that.game.Outcome)

	return that.game.Outcome, nil
}

// humanTurn - prompts until the human supplies a playable square.
func (that *Session) humanTurn(ctx context.Context) error {
	for {
		cell, err := that.ui.PromptMove(ctx)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = that.game.MakeTurn(board.Minimizer, cell)
		if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) {
			that.ui.ShowMessage("Cell is already occupied. Try again.")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

// computerTurn - asks the engine for a successor board and applies the one
// square that changed.
func (that *Session) computerTurn() error {
	next, ok := that.searcher.SelectBestMove(that.game.Board)
	if !ok {
		return apperror.ErrNoLegalMoves
	}

	cell, ok := that.game.Board.Diff(next)
	if !ok {
		return fmt.Errorf("%w: engine returned an unchanged board", apperror.ErrNoLegalMoves)
	}

	if err := that.game.MakeTurn(board.Maximizer, cell); err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	that.logger.Debug("computer moved", "row", cell.Row, "col", cell.Col)

	return nil
}
