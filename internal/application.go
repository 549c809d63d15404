package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/session"
	"github.com/rocketscienceinc/tictactoe-arena/internal/terminal"
)

// RunApp - wires the engine, players and terminal together and runs one
// tournament.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	tier, err := engine.ParseTier(conf.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to parse difficulty: %w", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameEngine := engine.New(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok

	registry := entity.NewPlayerRegistry()

	human, err := registry.Register(conf.Human.Name, conf.Human.Mark)
	if err != nil {
		return fmt.Errorf("failed to register human player: %w", err)
	}

	bot, err := registry.Register(conf.Bot.Name, conf.Bot.Mark)
	if err != nil {
		return fmt.Errorf("failed to register bot player: %w", err)
	}

	tournament := session.NewTournament([2]*entity.Player{human, bot}, conf.TargetWins)

	sources := [2]session.MoveSource{
		terminal.NewHumanSource(os.Stdin, os.Stdout, gameEngine),
		terminal.NewThinkingSource(session.NewBotSource(gameEngine, tier), os.Stdout),
	}

	gameSession := session.New(logger, tournament, sources, terminal.NewView(os.Stdout))

	log.Info("Starting tournament",
		"difficulty", conf.Difficulty,
		"targetWins", conf.TargetWins,
		"seed", seed,
	)

	if err = gameSession.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, terminal.ErrInputClosed) {
			log.Info("Session ended early")
			return nil
		}

		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}
