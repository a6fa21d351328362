package cli

import (
	"fmt"
	"strconv"

	"github.com/minimax-games/tictactoe/internal/apperror"
	"github.com/minimax-games/tictactoe/internal/board"
)

// ParseMove - maps a square number 1-9 onto a coordinate, row-major:
// (n-1)/3 is the row, (n-1)%3 the column.
func ParseMove(input string) (board.Coord, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, input)
	}

	if n < 1 || n > board.Size*board.Size {
		return board.Coord{}, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, n)
	}

	return board.Coord{Row: (n - 1) / board.Size, Col: (n - 1) % board.Size}, nil
}

// ParsePosition - reads a nine-character row-major position string: O for
// the computer (maximizer), X for the human (minimizer), . for empty.
func ParsePosition(input string) (board.Board, error) {
	if len(input) != board.Size*board.Size {
		return board.Board{}, fmt.Errorf("%w: position must be %d characters, got %d", apperror.ErrInvalidCell, board.Size*board.Size, len(input))
	}

	var b board.Board
	for i, r := range input {
		cell := board.Coord{Row: i / board.Size, Col: i % board.Size}

		switch r {
		case 'O', 'o':
			b = b.With(cell, board.Maximizer)
		case 'X', 'x':
			b = b.With(cell, board.Minimizer)
		case '.':
		default:
			return board.Board{}, fmt.Errorf("%w: unexpected character %q at index %d", apperror.ErrInvalidCell, r, i)
		}
	}

	return b, nil
}
