package usecase

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// MoveItem is one row of the move list.
type MoveItem struct {
	Move      int              `json:"move"`
	Location  *entity.Location `json:"location,omitempty"`
	IsCurrent bool             `json:"is_current"`
}

// Snapshot is a read-only view of a session at one point in time. It shares
// no memory with the live game.
type Snapshot struct {
	Board       entity.Board `json:"board"`
	WinningLine []int        `json:"winning_line"`
	Winner      entity.Cell  `json:"winner"`
	Draw        bool         `json:"draw"`
	Status      string       `json:"status"`
	XIsNext     bool         `json:"x_is_next"`
	CurrentMove int          `json:"current_move"`
	Ascending   bool         `json:"ascending"`
	Moves       []MoveItem   `json:"moves"`
}

func newSnapshot(game *entity.Game) Snapshot {
	board := game.CurrentBoard()
	result := tictactoe.Evaluate(board)

	moves := make([]MoveItem, 0, len(game.History))
	for move, step := range game.History {
		item := MoveItem{Move: move, IsCurrent: move == game.CurrentMove}
		if step.Location != nil {
			location := *step.Location
			item.Location = &location
		}
		moves = append(moves, item)
	}

	if !game.Ascending {
		slices.Reverse(moves)
	}

	return Snapshot{
		Board:       board,
		WinningLine: result.Line,
		Winner:      result.Winner,
		Draw:        !result.HasWinner() && tictactoe.IsBoardFull(board),
		Status:      tictactoe.Status(board, game.XIsNext()),
		XIsNext:     game.XIsNext(),
		CurrentMove: game.CurrentMove,
		Ascending:   game.Ascending,
		Moves:       moves,
	}
}

func (that Snapshot) IsWinningCell(cell int) bool {
	return slices.Contains(that.WinningLine, cell)
}

// Changed reports whether other would render differently.
func (that Snapshot) Changed(other Snapshot) bool {
	if that.Board != other.Board ||
		that.CurrentMove != other.CurrentMove ||
		that.Ascending != other.Ascending ||
		that.Status != other.Status ||
		len(that.Moves) != len(other.Moves) {
		return true
	}

	for i := range that.Moves {
		a, b := that.Moves[i], other.Moves[i]
		if a.Move != b.Move || a.IsCurrent != b.IsCurrent {
			return true
		}
		if (a.Location == nil) != (b.Location == nil) {
			return true
		}
		if a.Location != nil && *a.Location != *b.Location {
			return true
		}
	}

	return false
}
