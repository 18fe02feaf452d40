package ui

import (
	"context"

	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Run opens the window and renders g until the window is closed or ctx ends.
// It must be called from the main goroutine.
func Run(ctx context.Context, g *game.Game, cellSize int, logger zerolog.Logger) {
	snap := g.Snapshot()
	r := NewRenderer(snap.Grid, cellSize)

	w, h := r.ScreenSize()
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	logger.Info().Int32("width", w).Int32("height", h).Msg("Window opened")

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		r.HandleInput(g)
		r.Draw(g.Snapshot())
	}
}
