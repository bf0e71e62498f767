package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewRenderer(buf, config.ColorNever), buf
}

func TestRenderer_RenderBoard(t *testing.T) {
	t.Run("Empty cells show their number", func(t *testing.T) {
		renderer, buf := newTestRenderer()

		// Given: a board with X in the corner
		snapshot := usecase.Snapshot{
			Board:  entity.Board{entity.PlayerX},
			Status: "Next player: O",
		}

		// When: rendering it
		renderer.RenderBoard(snapshot)

		// Then: the grid is drawn row by row
		expected := "Next player: O\n" +
			" X │ 2 │ 3 \n" +
			"───┼───┼───\n" +
			" 4 │ 5 │ 6 \n" +
			"───┼───┼───\n" +
			" 7 │ 8 │ 9 \n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Winning cells are drawn", func(t *testing.T) {
		renderer, buf := newTestRenderer()

		// Given: O has won on the right column
		snapshot := usecase.Snapshot{
			Board: entity.Board{
				entity.PlayerX, entity.PlayerX, entity.PlayerO,
				entity.EmptyCell, entity.PlayerX, entity.PlayerO,
				entity.EmptyCell, entity.EmptyCell, entity.PlayerO,
			},
			WinningLine: []int{2, 5, 8},
			Winner:      entity.PlayerO,
			Status:      "Winner: O",
		}

		// When: rendering it
		renderer.RenderBoard(snapshot)

		// Then: the winner is announced and only the winning marks are bracketed
		assert.Contains(t, buf.String(), "Winner: O\n")
		assert.Contains(t, buf.String(), " X │ X │[O]\n")
		assert.Contains(t, buf.String(), " 4 │ X │[O]\n")
		assert.Contains(t, buf.String(), " 7 │ 8 │[O]\n")
	})

	t.Run("Winning line differs from the same board without it", func(t *testing.T) {
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// Given: one renderer without colors for each snapshot
		won, wonBuf := newTestRenderer()
		plain, plainBuf := newTestRenderer()

		// When: rendering the board with and without a winning line
		won.RenderBoard(usecase.Snapshot{Board: board, WinningLine: []int{0, 1, 2}, Status: "S"})
		plain.RenderBoard(usecase.Snapshot{Board: board, WinningLine: []int{}, Status: "S"})

		// Then: the winning row is marked and the rest is identical
		assert.NotEqual(t, plainBuf.String(), wonBuf.String())
		assert.Contains(t, wonBuf.String(), "[X]│[X]│[X]\n")
		assert.Contains(t, plainBuf.String(), " X │ X │ X \n")
		assert.Contains(t, wonBuf.String(), " O │ O │ 6 \n")
	})
}

func TestRenderer_WinningCellStyle(t *testing.T) {
	// Given: a renderer that always colors
	buf := &bytes.Buffer{}
	renderer := NewRenderer(buf, config.ColorAlways)

	// When: rendering a board where X holds the top row
	renderer.RenderBoard(usecase.Snapshot{
		Board:       entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX},
		WinningLine: []int{0, 1, 2},
		Status:      "Winner: X",
	})

	// Then: each winning cell is one styled run, reset only after the bracket
	out := buf.String()
	assert.Contains(t, out, "[X]\x1b[0m")
	assert.NotContains(t, out, "X\x1b[0m]")
}

func TestRenderer_RenderHistory(t *testing.T) {
	moves := []usecase.MoveItem{
		{Move: 0},
		{Move: 1, Location: &entity.Location{Row: 2, Column: 2}, IsCurrent: true},
		{Move: 2, Location: &entity.Location{Row: 1, Column: 3}},
	}

	t.Run("Ascending", func(t *testing.T) {
		renderer, buf := newTestRenderer()

		renderer.RenderHistory(usecase.Snapshot{Moves: moves, Ascending: true})

		expected := "Moves [Sort Descending]\n" +
			"  Go to game start\n" +
			"> You are at move #1 (2, 2)\n" +
			"  Go to move #2 (1, 3)\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Current game start", func(t *testing.T) {
		renderer, buf := newTestRenderer()

		renderer.RenderHistory(usecase.Snapshot{
			Moves:     []usecase.MoveItem{{Move: 0, IsCurrent: true}},
			Ascending: false,
		})

		assert.Equal(t, "Moves [Sort Ascending]\n> Game start\n", buf.String())
	})
}

func TestRenderer_RenderError(t *testing.T) {
	renderer, buf := newTestRenderer()

	renderer.RenderError(errors.New("boom"))

	assert.Equal(t, "error: boom\n", buf.String())
}

func TestRenderer_Colors(t *testing.T) {
	// Given: a renderer that always colors
	buf := &bytes.Buffer{}
	renderer := NewRenderer(buf, config.ColorAlways)

	// When: rendering a mark on the winning line
	renderer.RenderBoard(usecase.Snapshot{
		Board:       entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX},
		WinningLine: []int{0, 1, 2},
		Winner:      entity.PlayerX,
		Status:      "Winner: X",
	})

	// Then: escape sequences are written
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestLabels(t *testing.T) {
	location := &entity.Location{Row: 3, Column: 1}

	assert.Equal(t, "Go to game start", MoveLabel(usecase.MoveItem{Move: 0}))
	assert.Equal(t, "Go to move #4 (3, 1)", MoveLabel(usecase.MoveItem{Move: 4, Location: location}))
	assert.Equal(t, "Game start", CurrentMoveLabel(usecase.MoveItem{Move: 0}))
	assert.Equal(t, "You are at move #4 (3, 1)", CurrentMoveLabel(usecase.MoveItem{Move: 4, Location: location}))
	assert.Equal(t, "Sort Descending", SortLabel(true))
	assert.Equal(t, "Sort Ascending", SortLabel(false))
}
