package engine

import (
	"log/slog"
	"math"

	"github.com/minimax-games/tictactoe/internal/board"
)

// Engine selects moves for the Maximizer by exhaustive game-tree search.
type Engine struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),
	}
}

// Minimax - evaluates a position by recursive adversarial search with
// alpha-beta pruning. Alpha is the best score the Maximizer can already
// guarantee on this path, beta the best the Minimizer can; once beta <= alpha
// the remaining siblings cannot affect the result and are skipped. Pruning
// never changes the returned value relative to an unpruned search.
//
// The top-level call must pass alpha = math.MinInt and beta = math.MaxInt.
// Depth is initialized to the number of empty squares, so on a 3x3 board the
// terminal check and depth exhaustion coincide at the last square.
func Minimax(b board.Board, depth, alpha, beta int, maximizing bool) int {
	if depth == 0 || b.IsTerminal() {
		return b.Evaluate()
	}

	if maximizing {
		best := math.MinInt
		for _, child := range b.LegalMoves(board.Maximizer) {
			score := Minimax(child, depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, child := range b.LegalMoves(board.Minimizer) {
		score := Minimax(child, depth-1, alpha, beta, true)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}

	return best
}

// SelectBestMove - returns the successor board a perfectly rational Maximizer
// would move to, searching every candidate to full depth. Among equally good
// candidates the first in row-major generation order wins. The second return
// is false only when the board has no empty square; callers must not invoke
// the engine on a finished game.
//
// The result is a full hypothetical board, not a coordinate; callers recover
// the move with Board.Diff against the original.
func (that *Engine) SelectBestMove(b board.Board) (board.Board, bool) {
	children := b.LegalMoves(board.Maximizer)
	if len(children) == 0 {
		return board.Board{}, false
	}

	depth := len(b.EmptyCells())

	var bestBoard board.Board
	bestScore := math.MinInt
	for _, child := range children {
		score := Minimax(child, depth, math.MinInt, math.MaxInt, false)
		if score > bestScore {
			bestScore = score
			bestBoard = child
		}
	}

	if cell, ok := b.Diff(bestBoard); ok {
		that.logger.Debug("selected move", "row", cell.Row, "col", cell.Col, "score", bestScore)
	}

	return bestBoard, true
}
