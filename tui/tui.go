// Package tui renders the game in a terminal and reads keyboard intents.
package tui

import (
	"context"
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Each grid cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	defStyle    = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	boardStyle  = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorGreen)
	bodyStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	foodStyle   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorRed)
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
)

// UI draws snapshots on a tcell screen.
type UI struct {
	screen tcell.Screen
	game   *game.Game
	logger zerolog.Logger
}

func New(s tcell.Screen, g *game.Game, logger zerolog.Logger) *UI {
	return &UI{
		screen: s,
		game:   g,
		logger: logger.With().Str("component", "tui").Logger(),
	}
}

// Run takes over the terminal until the player quits or ctx ends.
func Run(ctx context.Context, g *game.Game, logger zerolog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()

	return New(s, g, logger).Loop(ctx)
}

// Loop redraws on every game change and handles keys until quit.
func (u *UI) Loop(ctx context.Context) error {
	u.screen.DisableMouse()
	u.screen.SetStyle(defStyle)
	u.screen.Clear()

	redraw := make(chan game.Snapshot, 1)
	unsubscribe := u.game.Subscribe(func(snap game.Snapshot) {
		// Keep only the latest snapshot
		select {
		case <-redraw:
		default:
		}
		select {
		case redraw <- snap:
		default:
		}
	})
	defer unsubscribe()

	eventCh := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-quit:
				return
			}
		}
	}()

	u.Draw(u.game.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-redraw:
			u.Draw(snap)
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				u.screen.Sync()
				u.Draw(u.game.Snapshot())
			case *tcell.EventKey:
				if u.HandleKey(ev) {
					u.logger.Info().Msg("Quit requested")
					return nil
				}
				u.Draw(u.game.Snapshot())
			}
		}
	}
}

// HandleKey applies one key press and reports whether the player quit.
func (u *UI) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.game.SetDirection(types.UP.ToPoint())
	case tcell.KeyDown:
		u.game.SetDirection(types.DOWN.ToPoint())
	case tcell.KeyLeft:
		u.game.SetDirection(types.LEFT.ToPoint())
	case tcell.KeyRight:
		u.game.SetDirection(types.RIGHT.ToPoint())
	case tcell.KeyRune:
		return u.handleRune(ev.Rune())
	}
	return false
}

func (u *UI) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 'w':
		u.game.SetDirection(types.UP.ToPoint())
	case 's':
		u.game.SetDirection(types.DOWN.ToPoint())
	case 'a':
		u.game.SetDirection(types.LEFT.ToPoint())
	case 'd':
		u.game.SetDirection(types.RIGHT.ToPoint())
	case ' ':
		u.game.Start()
	case 'r':
		u.game.Restart()
	case '1', '2', '3':
		u.game.SetSpeed(types.Presets[r-'1'].MS)
	}
	return false
}

// Draw paints the board framed by a border, the score line and the help line.
func (u *UI) Draw(snap game.Snapshot) {
	s := u.screen
	s.Clear()

	w := snap.Grid.Width*cellWidth + 2
	h := snap.Grid.Height + 2
	drawBox(s, 0, 0, w-1, h-1, defStyle)
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			u.setCell(types.Point{X: x, Y: y}, ' ', boardStyle)
		}
	}

	for i := len(snap.Snake) - 1; i > 0; i-- {
		u.setCell(snap.Snake[i], tcell.RuneBlock, bodyStyle)
	}
	u.setCell(snap.Food, tcell.RuneDiamond, foodStyle)
	u.setCell(snap.Snake[0], tcell.RuneBlock, headStyle)

	drawText(s, 0, h, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best), scoreStyle)
	drawText(s, 0, h+1, "arrows/wasd move  space start  r restart  1-3 speed  q quit", defStyle)

	switch snap.Status {
	case types.GameOver:
		u.banner(snap, " Game Over! ")
	case types.NotStarted:
		if snap.Speed == 0 {
			u.banner(snap, " Press 1, 2 or 3 to pick a speed ")
		}
	}

	s.Show()
}

func (u *UI) setCell(p types.Point, r rune, style tcell.Style) {
	x := 1 + p.X*cellWidth
	for i := 0; i < cellWidth; i++ {
		u.screen.SetContent(x+i, 1+p.Y, r, nil, style)
	}
}

func (u *UI) banner(snap game.Snapshot, text string) {
	x := 1 + (snap.Grid.Width*cellWidth-len(text))/2
	y := 1 + snap.Grid.Height/2
	drawText(u.screen, x, y, text, bannerStyle)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}
