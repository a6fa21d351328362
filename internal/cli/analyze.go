package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/minimax-games/tictactoe/internal/apperror"
	"github.com/minimax-games/tictactoe/internal/board"
	"github.com/minimax-games/tictactoe/internal/engine"
)

func newAnalyzeCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <position>",
		Short: "Print the engine's best move for a position",
		Long: `Evaluates a position with the computer (O, the maximizer) to move.

The position is nine characters, row-major: O for the computer, X for the
human, . for an empty square. Example:

  tictactoe analyze "XX.OO...."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), logger, args[0])
		},
	}
}

func runAnalyze(out io.Writer, logger *slog.Logger, position string) error {
	b, err := ParsePosition(position)
	if err != nil {
		return fmt.Errorf("failed to parse position: %w", err)
	}

	if b.IsTerminal() {
		fmt.Fprintf(out, "position is terminal: %s\n", b.Outcome())
		return nil
	}

	next, ok := engine.New(logger).SelectBestMove(b)
	if !ok {
		return apperror.ErrNoLegalMoves
	}

	cell, _ := b.Diff(next)
	value := engine.Minimax(next, len(b.EmptyCells()), math.MinInt, math.MaxInt, false)

	fmt.Fprintf(out, "best move: %d (row %d, col %d), value %+d\n",
		cell.Row*board.Size+cell.Col+1, cell.Row+1, cell.Col+1, value)

	return nil
}
