package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/minimax-games/tictactoe/internal/board"
	"github.com/minimax-games/tictactoe/internal/game"
)

// Terminal renders the board and reads the human's moves. It is the
// session's only I/O surface.
type Terminal struct {
	in     *bufio.Reader
	w      io.Writer
	styled *termenv.Output

	human    *game.Player
	computer *game.Player
}

func NewTerminal(in io.Reader, out io.Writer, human, computer *game.Player, color bool) *Terminal {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Terminal{
		in:     bufio.NewReader(in),
		w:      out,
		styled: termenv.NewOutput(out, opts...),

		human:    human,
		computer: computer,
	}
}

func (that *Terminal) ShowWelcome() {
	title := that.styled.String("Welcome to Tic Tac Toe!").Bold()
	fmt.Fprintln(that.w, title)
}

// ShowBoard - prints the position with 1-based row and column legends.
func (that *Terminal) ShowBoard(b board.Board) {
	fmt.Fprintln(that.w)
	fmt.Fprintln(that.w, "  1 2 3")
	for row := 0; row < board.Size; row++ {
		marks := make([]string, 0, board.Size)
		for col := 0; col < board.Size; col++ {
			marks = append(marks, that.cellString(b[row][col]))
		}
		fmt.Fprintf(that.w, "%d %s\n", row+1, strings.Join(marks, " "))
	}
}

func (that *Terminal) cellString(cell board.Cell) string {
	switch cell {
	case board.Maximizer:
		return that.styled.String(that.computer.Mark).Foreground(that.styled.Color("1")).String()
	case board.Minimizer:
		return that.styled.String(that.human.Mark).Foreground(that.styled.Color("6")).String()
	default:
		return "."
	}
}

// PromptMove - asks for a square number until the input parses. Occupied
// squares are rejected later by the game itself.
func (that *Terminal) PromptMove(ctx context.Context) (board.Coord, error) {
	for {
		if err := ctx.Err(); err != nil {
			return board.Coord{}, err
		}

		fmt.Fprint(that.w, "Choose your move (1-9): ")

		line, err := that.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return board.Coord{}, fmt.Errorf("failed to read input: %w", err)
		}

		cell, err := ParseMove(strings.TrimSpace(line))
		if err != nil {
			that.ShowMessage("Invalid move. Try again.")
			continue
		}

		return cell, nil
	}
}

func (that *Terminal) ShowMessage(msg string) {
	fmt.Fprintln(that.w, msg)
}

func (that *Terminal) ShowOutcome(outcome board.Outcome) {
	var msg string

	switch outcome {
	case board.MinimizerWin:
		msg = "Congratulations, you win!"
	case board.MaximizerWin:
		msg = "AI wins. Better luck next time!"
	case board.Draw:
		msg = "It's a draw!"
	default:
		msg = "Game is still in progress."
	}

	fmt.Fprintln(that.w, that.styled.String(msg).Bold())
}
