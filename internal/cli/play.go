package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/minimax-games/tictactoe/internal/board"
	"github.com/minimax-games/tictactoe/internal/config"
	"github.com/minimax-games/tictactoe/internal/engine"
	"github.com/minimax-games/tictactoe/internal/game"
	"github.com/minimax-games/tictactoe/internal/session"
)

func newPlayCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game against the computer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), logger, conf, os.Stdin, cmd.OutOrStdout())
		},
	}
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	humanMark, computerMark := conf.Marks()
	human, computer := game.NewPlayers(humanMark, computerMark)

	term := NewTerminal(in, out, human, computer, conf.ColorOutput)

	firstTurn := board.Minimizer
	if conf.FirstTurn == "computer" {
		firstTurn = board.Maximizer
	}

	gameInstance := game.New(firstTurn)
	gameSession := session.New(logger, engine.New(logger), term, gameInstance)

	term.ShowWelcome()

	outcome, err := gameSession.Run(ctx)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	logger.Info("game finished", "outcome", outcome.String())

	return nil
}
