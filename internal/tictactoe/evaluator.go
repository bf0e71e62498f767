package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// WinCombos are checked in this order; the first complete one wins.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

const statusDraw = "Draw"

// Result is the outcome of Evaluate. Line is empty when there is no winner.
type Result struct {
	Winner entity.Cell
	Line   []int
}

func (that Result) HasWinner() bool {
	return that.Winner != entity.EmptyCell
}

// Evaluate returns the first winning triple on the board.
func Evaluate(board entity.Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Result{
				Winner: a,
				Line:   []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	return Result{Winner: entity.EmptyCell, Line: []int{}}
}

// IsBoardFull reports whether no cell is empty, regardless of a winner.
func IsBoardFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

func Status(board entity.Board, xIsNext bool) string {
	if result := Evaluate(board); result.HasWinner() {
		return "Winner: " + result.Winner.String()
	}

	if IsBoardFull(board) {
		return statusDraw
	}

	if xIsNext {
		return "Next player: " + entity.PlayerX.String()
	}
	return "Next player: " + entity.PlayerO.String()
}
