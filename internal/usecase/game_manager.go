package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// GameManager owns the state of a single game session. It is not safe for
// concurrent use.
type GameManager struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameManager(logger *slog.Logger, sessionID string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game", "session", sessionID),
		game:   entity.NewGame(),
	}
}

// Play applies a move on cell. Moves the rules ignore return the unchanged
// snapshot and no error.
func (that *GameManager) Play(cell int) (Snapshot, error) {
	log := that.logger.With("method", "Play", "cell", cell)

	applied, err := tictactoe.ApplyMove(that.game, cell)
	if err != nil {
		return that.Snapshot(), fmt.Errorf("failed make turn: %w", err)
	}

	if !applied {
		log.Debug("move ignored", "move", that.game.CurrentMove)
		return that.Snapshot(), nil
	}

	snapshot := that.Snapshot()
	log.Debug("move applied", "move", snapshot.CurrentMove, "status", snapshot.Status)

	if snapshot.Winner != entity.EmptyCell || snapshot.Draw {
		log.Info("game over", "status", snapshot.Status, "moves", snapshot.CurrentMove)
	}

	return snapshot, nil
}

// PlayAt applies a move on a 1-indexed (row, column) location.
func (that *GameManager) PlayAt(row, column int) (Snapshot, error) {
	cell := entity.CellAt(row, column)
	if cell < 0 {
		return that.Snapshot(), fmt.Errorf("%w: row %d column %d", apperror.ErrInvalidCell, row, column)
	}

	return that.Play(cell)
}

func (that *GameManager) JumpTo(move int) (Snapshot, error) {
	if err := tictactoe.JumpTo(that.game, move); err != nil {
		return that.Snapshot(), fmt.Errorf("failed jump to move: %w", err)
	}

	that.logger.Debug("jumped", "method", "JumpTo", "move", move)

	return that.Snapshot(), nil
}

func (that *GameManager) ToggleSortOrder() Snapshot {
	tictactoe.ToggleSortOrder(that.game)

	return that.Snapshot()
}

// Restart drops the whole history. The sort order is kept.
func (that *GameManager) Restart() Snapshot {
	ascending := that.game.Ascending

	that.game = entity.NewGame()
	that.game.Ascending = ascending

	that.logger.Info("game restarted")

	return that.Snapshot()
}

// SetAscending sets the initial order of the move list.
func (that *GameManager) SetAscending(ascending bool) {
	that.game.Ascending = ascending
}

func (that *GameManager) Snapshot() Snapshot {
	return newSnapshot(that.game)
}
