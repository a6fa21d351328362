package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/minimax-games/tictactoe/internal/config"
)

// Execute - builds the command tree and runs it. A bare invocation starts an
// interactive game, same as the play subcommand.
func Execute(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe against a perfect minimax opponent",
		Long:  `A console tic-tac-toe game whose computer player searches the full game tree with alpha-beta pruning and therefore never loses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), logger, conf, os.Stdin, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPlayCmd(logger, conf))
	rootCmd.AddCommand(newAnalyzeCmd(logger))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd.ExecuteContext(ctx)
}
