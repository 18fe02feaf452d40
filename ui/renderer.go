package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10  // Padding around game area
	panelHeight   = 150 // Score, banner and buttons below the grid
	fontSize      = 20
)

var (
	headColor  = rl.Green
	bodyColor  = rl.Black
	foodColor  = rl.Red
	boardColor = rl.LightGray
)

type Renderer struct {
	cellSize     int32
	gridWidth    int32
	gridHeight   int32
	screenWidth  int32
	screenHeight int32
	buttons      []button
}

func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	r := &Renderer{
		cellSize:   int32(cellSize),
		gridWidth:  int32(grid.Width * cellSize),
		gridHeight: int32(grid.Height * cellSize),
	}
	r.screenWidth = r.gridWidth + borderPadding*2
	r.screenHeight = r.gridHeight + borderPadding*2 + panelHeight
	r.buttons = layoutButtons(borderPadding, r.gridHeight+borderPadding*2+40, r.gridWidth)
	return r
}

func (r *Renderer) ScreenSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.RayWhite)

	// Board with a 3px frame
	rl.DrawRectangle(borderPadding-3, borderPadding-3, r.gridWidth+6, r.gridHeight+6, rl.Black)
	rl.DrawRectangle(borderPadding, borderPadding, r.gridWidth, r.gridHeight, boardColor)

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		r.drawCell(snap.Snake[i], color)
	}
	r.drawCell(snap.Food, foodColor)

	panelY := r.gridHeight + borderPadding*2
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), borderPadding, panelY, fontSize, rl.DarkGreen)
	rl.DrawText(fmt.Sprintf("Best: %d", snap.Best), borderPadding+140, panelY, fontSize, rl.DarkGray)
	rl.DrawText(speedLabel(snap), borderPadding+260, panelY, fontSize, rl.DarkGray)

	for _, b := range r.buttons {
		b.draw()
	}

	switch snap.Status {
	case types.GameOver:
		r.drawBanner("Game Over!", rl.Red)
	case types.NotStarted:
		if snap.Speed == 0 {
			r.drawBanner("Pick a speed", rl.DarkGray)
		} else {
			r.drawBanner("Press an arrow to start", rl.DarkGray)
		}
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		borderPadding+int32(p.X)*r.cellSize,
		borderPadding+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawBanner(text string, color rl.Color) {
	size := int32(fontSize * 2)
	width := rl.MeasureText(text, size)
	x := borderPadding + (r.gridWidth-width)/2
	y := borderPadding + (r.gridHeight-size)/2
	rl.DrawText(text, x, y, size, color)
}

func speedLabel(snap game.Snapshot) string {
	for _, p := range types.Presets {
		if p.MS == snap.Speed {
			return p.Name
		}
	}
	if snap.Speed == 0 {
		return "no speed"
	}
	return fmt.Sprintf("%d ms", snap.Speed)
}
