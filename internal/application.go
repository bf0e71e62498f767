package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs one game session on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	reader, err := terminal.NewLineReader(conf.Terminal, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	defer func() {
		if err = reader.Close(); err != nil {
			log.Error("could not close terminal", "error", err)
		}
	}()

	sessionID := pkg.GenerateSessionID()
	gameManager := usecase.NewGameManager(logger, sessionID)
	gameManager.SetAscending(!conf.Terminal.Descending)

	renderer := terminal.NewRenderer(os.Stdout, conf.Terminal.Color)
	handler := terminal.NewHandler(logger, gameManager, renderer, conf.Terminal.Prompt)

	log.Info("Starting game session", "session", sessionID)

	// the game state is only touched from this goroutine
	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- handler.Run(reader)
	}()

	select {
	case err = <-runErrCh:
		if err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
		log.Info("Game session finished", "session", sessionID)
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
