package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	maxWaitDuration = 10 * time.Second
	sessionID       = "test-session"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Manager *usecase.GameManager
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Manager: usecase.NewGameManager(logger, sessionID),
	}
}

// Play plays cells in order and fails the test on any error.
func (that *Suite) Play(cells ...int) usecase.Snapshot {
	that.Helper()

	snapshot := that.Manager.Snapshot()
	for _, cell := range cells {
		var err error
		if snapshot, err = that.Manager.Play(cell); err != nil {
			that.Fatalf("could not play cell %d: %v", cell, err)
		}
	}

	return snapshot
}
