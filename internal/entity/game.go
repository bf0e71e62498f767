package entity

import (
	"fmt"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Cell is the content of one square of the board.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Board holds nine cells in row-major order. It is an array, so assigning a
// Board copies it.
type Board [CellCount]Cell

// Location is a 1-indexed (row, column) pair.
type Location struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Location) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Column)
}

// LocationOf returns the location of a cell index.
func LocationOf(cell int) Location {
	return Location{
		Row:    cell/BoardSize + 1,
		Column: cell%BoardSize + 1,
	}
}

// CellAt returns the cell index of a 1-indexed location, or -1 when the
// location is off the board.
func CellAt(row, column int) int {
	if row < 1 || row > BoardSize || column < 1 || column > BoardSize {
		return -1
	}

	return (row-1)*BoardSize + column - 1
}

// HistoryEntry is one snapshot of the board. Location is nil for the
// initial entry.
type HistoryEntry struct {
	Board    Board     `json:"board"`
	Location *Location `json:"location,omitempty"`
}

// Game is the mutable state of one session. The turn is derived from
// CurrentMove and never stored.
type Game struct {
	History     []HistoryEntry `json:"history"`
	CurrentMove int            `json:"current_move"`
	Ascending   bool           `json:"ascending"`
}

func NewGame() *Game {
	return &Game{
		History:     []HistoryEntry{{Board: Board{}}},
		CurrentMove: 0,
		Ascending:   true,
	}
}

func (that *Game) CurrentBoard() Board {
	return that.History[that.CurrentMove].Board
}

func (that *Game) XIsNext() bool {
	return that.CurrentMove%2 == 0
}

// NextMark returns the mark of the player to move at CurrentMove.
func (that *Game) NextMark() Cell {
	if that.XIsNext() {
		return PlayerX
	}
	return PlayerO
}

func (that *Game) HasMove(move int) bool {
	return move >= 0 && move < len(that.History)
}
