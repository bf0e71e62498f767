package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	colorX = "12"
	colorO = "9"

	rowSeparator = "───┼───┼───"
	colSeparator = "│"
)

// Renderer draws snapshots as text.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer returns a renderer writing to w. The color mode is one of the
// config.Color* values.
func NewRenderer(w io.Writer, colorMode string) *Renderer {
	var opts []termenv.OutputOption

	switch colorMode {
	case config.ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	case config.ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI256))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

// Render draws the status, the board and the move list.
func (that *Renderer) Render(snapshot usecase.Snapshot) {
	that.RenderBoard(snapshot)
	fmt.Fprintln(that.output)
	that.RenderHistory(snapshot)
}

func (that *Renderer) RenderBoard(snapshot usecase.Snapshot) {
	fmt.Fprintln(that.output, that.output.String(snapshot.Status).Bold())

	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			fmt.Fprintln(that.output, rowSeparator)
		}

		cells := make([]string, 0, entity.BoardSize)
		for column := 0; column < entity.BoardSize; column++ {
			cells = append(cells, that.square(snapshot, row*entity.BoardSize+column))
		}
		fmt.Fprintln(that.output, strings.Join(cells, colSeparator))
	}
}

func (that *Renderer) square(snapshot usecase.Snapshot, cell int) string {
	mark := snapshot.Board[cell]
	if mark == entity.EmptyCell {
		return " " + that.output.String(strconv.Itoa(cell+1)).Faint().String() + " "
	}

	color := that.output.Color(colorO)
	if mark == entity.PlayerX {
		color = that.output.Color(colorX)
	}

	// brackets keep the winning line visible when colors are off
	if snapshot.IsWinningCell(cell) {
		return that.output.String("[" + mark.String() + "]").Bold().Foreground(color).Reverse().String()
	}

	return " " + that.output.String(mark.String()).Bold().Foreground(color).String() + " "
}

func (that *Renderer) RenderHistory(snapshot usecase.Snapshot) {
	fmt.Fprintf(that.output, "Moves [%s]\n", SortLabel(snapshot.Ascending))

	for _, item := range snapshot.Moves {
		if item.IsCurrent {
			fmt.Fprintf(that.output, "> %s\n", that.output.String(CurrentMoveLabel(item)).Bold())
			continue
		}
		fmt.Fprintf(that.output, "  %s\n", MoveLabel(item))
	}
}

func (that *Renderer) RenderError(err error) {
	fmt.Fprintln(that.output, that.output.String("error: "+err.Error()).Foreground(that.output.Color(colorO)))
}

func (that *Renderer) RenderHelp() {
	fmt.Fprint(that.output, helpText)
}

// MoveLabel is the text of a move the player can jump to.
func MoveLabel(item usecase.MoveItem) string {
	if item.Move == 0 || item.Location == nil {
		return "Go to game start"
	}

	return fmt.Sprintf("Go to move #%d %s", item.Move, item.Location)
}

// CurrentMoveLabel is the text of the move being displayed.
func CurrentMoveLabel(item usecase.MoveItem) string {
	if item.Move == 0 || item.Location == nil {
		return "Game start"
	}

	return fmt.Sprintf("You are at move #%d %s", item.Move, item.Location)
}

// SortLabel names the action the sort command performs next.
func SortLabel(ascending bool) string {
	if ascending {
		return "Sort Descending"
	}
	return "Sort Ascending"
}

const helpText = `Commands:
  1..9              play a cell, counted row by row from the top left
  <row> <col>       play a cell by row and column (1..3)
  play <n|row col>  same as above
  jump <move>       show the board as it was after a move (0 = start)
  sort              reverse the order of the move list
  board             show the board
  history           show the move list
  restart           start a new game
  help              show this help
  quit              leave
`
