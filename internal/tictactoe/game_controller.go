package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// ApplyMove places the next player's mark on cell. It reports false without
// an error when the move is ignored by the rules: the board already has a
// winner or the cell is taken.
func ApplyMove(game *entity.Game, cell int) (bool, error) {
	if err := validateCell(cell); err != nil {
		return false, fmt.Errorf("invalid turn: %w", err)
	}

	board := game.CurrentBoard()
	if Evaluate(board).HasWinner() || board[cell] != entity.EmptyCell {
		return false, nil
	}

	nextBoard := board
	nextBoard[cell] = game.NextMark()
	location := entity.LocationOf(cell)

	history := make([]entity.HistoryEntry, game.CurrentMove+1, game.CurrentMove+2)
	copy(history, game.History[:game.CurrentMove+1])
	history = append(history, entity.HistoryEntry{Board: nextBoard, Location: &location})

	game.History = history
	game.CurrentMove = len(history) - 1

	return true, nil
}

// JumpTo moves the current position to an earlier or later recorded move.
func JumpTo(game *entity.Game, move int) error {
	if !game.HasMove(move) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, move, len(game.History)-1)
	}

	game.CurrentMove = move

	return nil
}

func ToggleSortOrder(game *entity.Game) {
	game.Ascending = !game.Ascending
}

// validateCell - checks that the cell is on the board.
func validateCell(cell int) error {
	if cell < 0 || cell >= entity.CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return nil
}
