package ai

import (
	"sync"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/rs/zerolog"
)

// Decide picks the safe action that gets closest to the food, preferring to
// keep going straight on ties. With no safe action it goes straight.
func Decide(s State) Action {
	best := Straight
	found := false
	for _, a := range []Action{Straight, Left, Right} {
		if s.Danger[a] {
			continue
		}
		if !found || s.FoodDistance[a] < s.FoodDistance[best] {
			best = a
			found = true
		}
	}
	return best
}

// Pilot steers a game on its own. It is just another producer of direction
// intents: it sees the snapshot after each committed tick and sets the
// direction for the next one.
type Pilot struct {
	game   *game.Game
	logger zerolog.Logger

	mu       sync.Mutex
	lastGame string
	lastStep int
}

func NewPilot(g *game.Game, logger zerolog.Logger) *Pilot {
	return &Pilot{
		game:     g,
		logger:   logger.With().Str("component", "autopilot").Logger(),
		lastStep: -1,
	}
}

// Attach subscribes the pilot to the game and starts the current game if it
// has not started yet. The returned func detaches it.
func (p *Pilot) Attach() (detach func()) {
	unsubscribe := p.game.Subscribe(p.observe)
	p.observe(p.game.Snapshot())
	return unsubscribe
}

func (p *Pilot) observe(snap game.Snapshot) {
	switch snap.Status {
	case types.NotStarted:
		if snap.Speed > 0 {
			p.game.Start()
		}
	case types.Running:
		if !p.firstSight(snap) {
			return
		}
		action := Decide(NewState(snap))
		dir := relativeToAbsolute(types.DirectionOf(snap.Direction), action)
		p.logger.Trace().Int("step", snap.Steps).Stringer("dir", dir).Msg("Steering")
		p.game.SetDirection(dir.ToPoint())
	}
}

// firstSight reports whether snap is a step the pilot has not acted on yet.
func (p *Pilot) firstSight(snap game.Snapshot) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := snap.GameID.String()
	if id == p.lastGame && snap.Steps == p.lastStep {
		return false
	}
	p.lastGame, p.lastStep = id, snap.Steps
	return true
}
