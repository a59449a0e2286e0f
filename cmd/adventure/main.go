// Package main provides the adventure binary: it loads the world and plays it
// in the configured terminal shell.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/repl"
	"github.com/cory-johannsen/adventure/internal/frontend/tui"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/observability"
	"github.com/cory-johannsen/adventure/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and ADVENTURE_* environment variables")
	worldPath := flag.String("world", "", "path to a world YAML file; overrides game.world")
	shell := flag.String("shell", "", "front-end to run: tui or repl; overrides game.shell")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *worldPath != "" {
		cfg.Game.World = *worldPath
	}
	if *shell != "" {
		cfg.Game.Shell = *shell
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validating flags: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	initial := engine.StartGame()
	if cfg.Game.World != "" {
		initial, err = world.LoadFromFile(cfg.Game.World)
		if err != nil {
			logger.Fatal("loading world", zap.String("path", cfg.Game.World), zap.Error(err))
		}
	}
	logger.Info("world loaded",
		zap.String("path", cfg.Game.World),
		zap.Int("rooms", len(initial.Rooms)),
		zap.Int("items", initial.Inventory.Len()),
	)

	sess := session.New(initial, logger)

	lc := server.NewLifecycle(logger)
	switch cfg.Game.Shell {
	case config.ShellREPL:
		lc.Add("repl", repl.New(sess, os.Stdin, os.Stdout, repl.Options{
			Width: cfg.Game.WrapWidth,
			Color: cfg.Game.Color,
		}, logger))
	default:
		lc.Add("tui", tui.NewService(sess, os.Stdin, os.Stdout))
	}

	logger.Info("adventure ready",
		zap.String("shell", cfg.Game.Shell),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lc.Run(context.Background()); err != nil {
		logger.Error("adventure ended with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("adventure ended",
		zap.String("session", sess.ID().String()),
		zap.Int("turns", sess.Turns()),
		zap.Bool("won", sess.HasWon()),
	)
}
