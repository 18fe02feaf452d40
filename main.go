package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"snake-classic/ai"
	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/tui"
	"snake-classic/ui"
)

// raylib must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	g, err := game.NewGame(cfg.Grid(), game.WithSeed(cfg.Seed), game.WithLogger(logger))
	if err != nil {
		return err
	}
	if cfg.Speed > 0 {
		g.SetSpeed(cfg.Speed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		game.NewScheduler(g, logger).Run(ctx)
	}()
	defer wg.Wait()
	defer stop()

	if cfg.Autopilot {
		detach := ai.NewPilot(g, logger).Attach()
		defer detach()
	}

	logger.Info().
		Str("frontend", cfg.Frontend).
		Int("width", cfg.Grid().Width).
		Int("height", cfg.Grid().Height).
		Int("speed", cfg.Speed).
		Bool("autopilot", cfg.Autopilot).
		Msg("Starting snake")

	switch cfg.Frontend {
	case config.FrontendTerminal:
		return tui.Run(ctx, g, logger)
	default:
		ui.Run(ctx, g, cfg.Scale, logger)
		return nil
	}
}
