// Package main is the entry point for the Midgard day/night cycle viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-daycycle/internal/app"
	"github.com/Faultbox/midgard-daycycle/internal/config"
	"github.com/Faultbox/midgard-daycycle/internal/daynight"
	"github.com/Faultbox/midgard-daycycle/internal/game"
	"github.com/Faultbox/midgard-daycycle/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Day/Night Cycle ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path, err := config.Persist(cfg); err != nil {
		logger.Error("config save failed", zap.Error(err))
	} else if path != "" {
		logger.Info("config saved", zap.String("path", path))
	}

	if err := run(cfg); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("stopped normally")
}

func run(cfg *config.Config) error {
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	sim, err := daynight.New(settings)
	if err != nil {
		return fmt.Errorf("creating simulator: %w", err)
	}
	logger.Info("simulator ready",
		zap.String("clock", sim.Last().Clock),
		zap.Float64("multiplier", settings.TimeMultiplier),
		zap.Float64("sunrise", settings.SunriseHour),
		zap.Float64("sunset", settings.SunsetHour),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := app.NewDriver(sim, logger.Named("daycycle"))

	if cfg.Graphics.Headless {
		return driver.RunHeadless(ctx, app.HeadlessOptions{
			Frames:   cfg.Graphics.Frames,
			Realtime: cfg.Graphics.Frames == 0,
		})
	}

	g, err := game.New(game.Config{
		Title:      "Midgard",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
	}, driver)
	if err != nil {
		return fmt.Errorf("creating viewer: %w", err)
	}
	defer g.Close()

	err = g.Run(ctx)
	logger.Info("viewer closed", zap.Uint64("frames", driver.Frames()))
	return err
}
