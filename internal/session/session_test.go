package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimax-games/tictactoe/internal/board"
	"github.com/minimax-games/tictactoe/internal/engine"
	"github.com/minimax-games/tictactoe/internal/game"
	"github.com/minimax-games/tictactoe/testing/suite"
)

// scriptedUI plays the human side by a strategy function and records what
// the session shows.
type scriptedUI struct {
	game     *game.Game
	strategy func(b board.Board) (board.Coord, error)

	boardsShown int
	messages    []string
	outcome     board.Outcome
}

func (that *scriptedUI) PromptMove(_ context.Context) (board.Coord, error) {
	return that.strategy(that.game.Board)
}

func (that *scriptedUI) ShowBoard(_ board.Board) {
	that.boardsShown++
}

func (that *scriptedUI) ShowMessage(msg string) {
	that.messages = append(that.messages, msg)
}

func (that *scriptedUI) ShowOutcome(outcome board.Outcome) {
	that.outcome = outcome
}

func firstEmpty(b board.Board) (board.Coord, error) {
	return b.EmptyCells()[0], nil
}

func TestSession_Run(t *testing.T) {
	t.Run("Human-first game runs to completion and the computer does not lose", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameInstance := game.New(board.Minimizer)
		ui := &scriptedUI{game: gameInstance, strategy: firstEmpty}
		sess := New(st.Logger, engine.New(st.Logger), ui, gameInstance)

		// When: the game is played until it finishes
		outcome, err := sess.Run(ctx)

		// Then: the game ends and the minimizer has not won
		require.NoError(t, err)
		assert.NotEqual(t, board.MinimizerWin, outcome)
		assert.Equal(t, outcome, ui.outcome)
		assert.True(t, gameInstance.IsFinished())
		// Then: the initial position plus every move was rendered
		assert.Greater(t, ui.boardsShown, 2)
	})

	t.Run("Computer-first game runs to completion", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameInstance := game.New(board.Maximizer)
		ui := &scriptedUI{game: gameInstance, strategy: firstEmpty}
		sess := New(st.Logger, engine.New(st.Logger), ui, gameInstance)

		outcome, err := sess.Run(ctx)

		require.NoError(t, err)
		assert.NotEqual(t, board.MinimizerWin, outcome)
		assert.True(t, gameInstance.IsFinished())
	})

	t.Run("Occupied square is re-prompted, not fatal", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameInstance := game.New(board.Minimizer)

		// Given: a human whose second answer repeats the already-taken (0,0)
		attempts := 0
		strategy := func(b board.Board) (board.Coord, error) {
			attempts++
			if attempts == 2 {
				return board.Coord{Row: 0, Col: 0}, nil
			}
			return b.EmptyCells()[0], nil
		}

		ui := &scriptedUI{game: gameInstance, strategy: strategy}
		sess := New(st.Logger, engine.New(st.Logger), ui, gameInstance)

		_, err := sess.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, ui.messages, "Cell is already occupied. Try again.")
	})

	t.Run("Prompt failure aborts the game", func(t *testing.T) {
		ctx, st := suite.New(t)

		errInput := errors.New("stdin closed")
		gameInstance := game.New(board.Minimizer)
		ui := &scriptedUI{game: gameInstance, strategy: func(_ board.Board) (board.Coord, error) {
			return board.Coord{}, errInput
		}}
		sess := New(st.Logger, engine.New(st.Logger), ui, gameInstance)

		outcome, err := sess.Run(ctx)

		require.ErrorIs(t, err, errInput)
		assert.Equal(t, board.InProgress, outcome)
	})

	t.Run("Cancelled context stops the loop between turns", func(t *testing.T) {
		_, st := suite.New(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		gameInstance := game.New(board.Minimizer)
		ui := &scriptedUI{game: gameInstance, strategy: firstEmpty}
		sess := New(st.Logger, engine.New(st.Logger), ui, gameInstance)

		_, err := sess.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}
