package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

type gameManager interface {
	Play(cell int) (usecase.Snapshot, error)
	PlayAt(row, column int) (usecase.Snapshot, error)
	JumpTo(move int) (usecase.Snapshot, error)
	ToggleSortOrder() usecase.Snapshot
	Restart() usecase.Snapshot
	Snapshot() usecase.Snapshot
}

// LineReader is the input side of the terminal.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type promptSetter interface {
	SetPrompt(prompt string)
}

type Handler struct {
	logger   *slog.Logger
	game     gameManager
	renderer *Renderer
	prompt   string

	last usecase.Snapshot
}

func NewHandler(logger *slog.Logger, game gameManager, renderer *Renderer, prompt string) *Handler {
	return &Handler{
		logger:   logger.With("component", "terminal"),
		game:     game,
		renderer: renderer,
		prompt:   prompt,
		last:     game.Snapshot(),
	}
}

// Run reads commands until the input ends or the player quits.
func (that *Handler) Run(reader LineReader) error {
	log := that.logger.With("method", "Run")

	that.renderer.Render(that.last)
	that.updatePrompt(reader)

	for {
		line, err := reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				log.Info("interrupted")
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read command: %w", err)
		}

		if quit := that.Execute(line); quit {
			return nil
		}

		that.updatePrompt(reader)
	}
}

// Execute runs one input line and reports whether the player asked to quit.
func (that *Handler) Execute(line string) bool {
	log := that.logger.With("method", "Execute")

	cmd, err := Parse(line)
	if err != nil {
		log.Debug("failed to parse command", "line", line, "error", err)
		that.renderer.RenderError(err)
		return false
	}

	var snapshot usecase.Snapshot

	switch cmd.Type {
	case CmdNone:
		return false
	case CmdQuit:
		return true
	case CmdHelp:
		that.renderer.RenderHelp()
		return false
	case CmdBoard:
		that.renderer.RenderBoard(that.last)
		return false
	case CmdHistory:
		that.renderer.RenderHistory(that.last)
		return false
	case CmdPlay:
		snapshot, err = that.game.Play(cmd.Cell)
	case CmdPlayAt:
		snapshot, err = that.game.PlayAt(cmd.Row, cmd.Column)
	case CmdJump:
		snapshot, err = that.game.JumpTo(cmd.Move)
	case CmdSort:
		snapshot = that.game.ToggleSortOrder()
	case CmdRestart:
		snapshot = that.game.Restart()
	}

	if err != nil {
		log.Debug("command failed", "line", line, "error", err)
		that.renderer.RenderError(err)
		return false
	}

	if snapshot.Changed(that.last) {
		that.renderer.Render(snapshot)
	}
	that.last = snapshot

	return false
}

func (that *Handler) updatePrompt(reader LineReader) {
	setter, ok := reader.(promptSetter)
	if !ok {
		return
	}

	setter.SetPrompt(Prompt(that.prompt, that.last))
}

// Prompt shows whose turn it is, or that the displayed game is over.
func Prompt(base string, snapshot usecase.Snapshot) string {
	turn := "O"
	switch {
	case snapshot.Winner != entity.EmptyCell || snapshot.Draw:
		turn = "-"
	case snapshot.XIsNext:
		turn = "X"
	}

	return fmt.Sprintf("%s [#%d %s]> ", base, snapshot.CurrentMove, turn)
}
