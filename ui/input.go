package ui

import (
	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// button is an on-screen control. Mouse clicks and touch taps both land here.
type button struct {
	label  string
	rect   rl.Rectangle
	action func(*game.Game)
}

func (b button) draw() {
	rl.DrawRectangleRec(b.rect, rl.LightGray)
	rl.DrawRectangleLinesEx(b.rect, 1, rl.DarkGray)
	textWidth := rl.MeasureText(b.label, fontSize-4)
	rl.DrawText(b.label,
		int32(b.rect.X)+(int32(b.rect.Width)-textWidth)/2,
		int32(b.rect.Y)+(int32(b.rect.Height)-(fontSize-4))/2,
		fontSize-4, rl.Black)
}

func setDirection(d types.Direction) func(*game.Game) {
	return func(g *game.Game) { g.SetDirection(d.ToPoint()) }
}

func setSpeed(ms int) func(*game.Game) {
	return func(g *game.Game) { g.SetSpeed(ms) }
}

// layoutButtons places the speed row, restart and the direction pad.
func layoutButtons(x, y, width int32) []button {
	const (
		h   = 28
		gap = 6
		pad = 32
	)
	buttons := make([]button, 0, len(types.Presets)+5)

	bx := float32(x)
	for _, p := range types.Presets {
		buttons = append(buttons, button{
			label:  p.Name,
			rect:   rl.NewRectangle(bx, float32(y), 110, h),
			action: setSpeed(p.MS),
		})
		bx += 110 + gap
	}
	buttons = append(buttons, button{
		label:  "restart",
		rect:   rl.NewRectangle(float32(x), float32(y+h+gap), 110, h),
		action: (*game.Game).Restart,
	})

	// Direction pad in the bottom-right corner
	px := float32(x + width - 3*pad - 2*gap)
	py := float32(y)
	buttons = append(buttons,
		button{label: "^", rect: rl.NewRectangle(px+pad+gap, py, pad, pad), action: setDirection(types.UP)},
		button{label: "<", rect: rl.NewRectangle(px, py+pad+gap, pad, pad), action: setDirection(types.LEFT)},
		button{label: "v", rect: rl.NewRectangle(px+pad+gap, py+pad+gap, pad, pad), action: setDirection(types.DOWN)},
		button{label: ">", rect: rl.NewRectangle(px+2*(pad+gap), py+pad+gap, pad, pad), action: setDirection(types.RIGHT)},
	)
	return buttons
}

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.UP,
	rl.KeyW:     types.UP,
	rl.KeyDown:  types.DOWN,
	rl.KeyS:     types.DOWN,
	rl.KeyLeft:  types.LEFT,
	rl.KeyA:     types.LEFT,
	rl.KeyRight: types.RIGHT,
	rl.KeyD:     types.RIGHT,
}

var keySpeeds = map[int32]int{
	rl.KeyOne:   types.Beginner,
	rl.KeyTwo:   types.Intermediate,
	rl.KeyThree: types.Advanced,
}

// HandleInput turns this frame's key presses, clicks and taps into intents.
func (r *Renderer) HandleInput(g *game.Game) {
	for key, dir := range keyDirections {
		if rl.IsKeyPressed(key) {
			g.SetDirection(dir.ToPoint())
		}
	}
	for key, ms := range keySpeeds {
		if rl.IsKeyPressed(key) {
			g.SetSpeed(ms)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.Start()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Restart()
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	pos := rl.GetMousePosition()
	for _, b := range r.buttons {
		if rl.CheckCollisionPointRec(pos, b.rect) {
			b.action(g)
			return
		}
	}
}
