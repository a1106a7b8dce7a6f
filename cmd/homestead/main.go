package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/gravitas-games/homestead/internal/config"
	"github.com/gravitas-games/homestead/internal/console"
	"github.com/gravitas-games/homestead/internal/game"
	"github.com/gravitas-games/homestead/internal/logging"
	"github.com/gravitas-games/homestead/internal/save"
	"github.com/gravitas-games/homestead/pkg/models"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		log.Printf("Ignoring .env: %v", err)
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/homestead.yaml"
	}

	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No config at %s, using defaults", configPath)
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Log)
	logger.Info("configuration loaded", "path", configPath, "backend", cfg.Save.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("homestead stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("homestead stopped")
}

// loadEnv reads a dotenv file. A missing file is not an error.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := save.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("store close error", "error", err)
		}
	}()

	world, err := game.NewWorld(cfg, logger, store)
	if err != nil {
		return err
	}
	player := &models.Player{ID: cfg.Player.ID, Username: cfg.Player.Username, FarmName: cfg.Player.FarmName}
	session, err := world.NewSession(player)
	if err != nil {
		return err
	}
	if _, err := session.Load(ctx); err != nil && !errors.Is(err, save.ErrNoSave) {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	consoleDone := make(chan struct{})

	g.Go(func() error {
		defer close(consoleDone)
		return console.New(world, session, os.Stdout).Run(gctx, os.Stdin)
	})

	if cfg.Game.AutosaveSeconds > 0 {
		interval := time.Duration(cfg.Game.AutosaveSeconds) * time.Second
		g.Go(func() error {
			return autosave(gctx, consoleDone, session, interval, logger)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	// Final save on the way out
	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := session.SaveIfDirty(saveCtx); err != nil {
		return err
	}
	return nil
}

func autosave(ctx context.Context, done <-chan struct{}, session *game.Session, every time.Duration, logger *slog.Logger) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		case <-ticker.C:
			if _, err := session.SaveIfDirty(ctx); err != nil {
				logger.Warn("autosave failed", "error", err)
			}
		}
	}
}
