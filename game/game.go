package game

import (
	"errors"
	"sync"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrGridTooSmall = errors.New("grid does not contain the start positions")

// Snapshot is a read-only copy of the game state handed to renderers.
type Snapshot struct {
	GameID      uuid.UUID
	Grid        types.Grid
	Snake       []types.Point // head first
	Food        types.Point
	Direction   types.Point
	Status      types.Status
	Collision   types.CollisionType
	Score       int
	Speed       int // ms per tick, 0 when unset
	Steps       int
	Best        int
	GamesPlayed int
}

// Game owns the whole state of one Snake session. Every method is safe for
// concurrent use; calls are serialized so a tick never observes a partially
// applied direction change.
type Game struct {
	mu sync.Mutex

	id        uuid.UUID
	grid      types.Grid
	snake     *entity.Snake
	food      types.Point
	direction types.Point
	score     int
	status    types.Status
	collision types.CollisionType
	speed     int
	steps     int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       zerolog.Logger

	observers  map[int]func(Snapshot)
	observerID int
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the food generator.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.foodMgr = manager.NewFoodManager(g.grid, seed)
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = l.With().Str("component", "game").Logger()
	}
}

// NewGame creates a game on grid in the NotStarted state with no speed set.
func NewGame(grid types.Grid, opts ...Option) (*Game, error) {
	if !grid.Contains(types.AppleStart) {
		return nil, ErrGridTooSmall
	}
	for _, p := range types.SnakeStart {
		if !grid.Contains(p) {
			return nil, ErrGridTooSmall
		}
	}

	g := &Game{
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, uint64(time.Now().UnixNano())),
		stateMgr:     manager.NewStateManager(),
		logger:       zerolog.Nop(),
		observers:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g, nil
}

// reset restores the initial entities. Callers hold g.mu.
func (g *Game) reset() {
	g.id = uuid.New()
	g.snake = entity.NewSnake(types.SnakeStart)
	g.food = types.AppleStart
	g.direction = types.DirStart
	g.score = 0
	g.steps = 0
	g.status = types.NotStarted
	g.collision = types.NoCollision
}

// SetDirection records the direction for the next tick. The first call
// starts the game. Reversing onto the current direction is ignored.
func (g *Game) SetDirection(dir types.Point) {
	g.mu.Lock()

	if !dir.IsUnit() {
		g.mu.Unlock()
		g.logger.Debug().Int("x", dir.X).Int("y", dir.Y).Msg("Ignoring non-unit direction")
		return
	}

	started := g.startLocked()
	if dir.Add(g.direction) != (types.Point{}) {
		g.direction = dir
	}

	if !started {
		g.mu.Unlock()
		return
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// Start moves a NotStarted game to Running.
func (g *Game) Start() {
	g.mu.Lock()
	if !g.startLocked() {
		g.mu.Unlock()
		return
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

func (g *Game) startLocked() bool {
	if g.status != types.NotStarted {
		return false
	}
	g.status = types.Running
	g.logger.Info().Str("game", g.id.String()).Int("speed", g.speed).Msg("Game started")
	return true
}

// Tick advances the simulation by one step and returns the resulting status.
// It does nothing unless the game is Running with a speed set.
func (g *Game) Tick() types.Status {
	g.mu.Lock()

	if g.status != types.Running || g.speed <= 0 {
		status := g.status
		g.mu.Unlock()
		return status
	}

	newHead := g.snake.GetHead().Add(g.direction)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.status = types.GameOver
		g.collision = collision
		g.stateMgr.RecordGame(g.score)
		g.logger.Info().
			Str("game", g.id.String()).
			Stringer("collision", collision).
			Int("score", g.score).
			Int("steps", g.steps).
			Msg("Game over")
		snap := g.snapshotLocked()
		g.mu.Unlock()
		g.notify(snap)
		return types.GameOver
	}

	g.snake.Move(newHead)
	g.steps++

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		g.food = g.foodMgr.GenerateFood()
		g.logger.Debug().
			Int("score", g.score).
			Int("food_x", g.food.X).
			Int("food_y", g.food.Y).
			Msg("Food eaten")
	} else {
		g.snake.RemoveTail()
	}

	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
	return types.Running
}

// Restart resets snake, food, direction, score and status. The speed is kept.
func (g *Game) Restart() {
	g.mu.Lock()
	g.reset()
	g.logger.Info().Str("game", g.id.String()).Msg("Game restarted")
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// SetSpeed sets the tick period in milliseconds and starts a fresh game.
func (g *Game) SetSpeed(ms int) {
	if ms <= 0 {
		g.logger.Warn().Int("speed", ms).Msg("Ignoring non-positive speed")
		return
	}

	g.mu.Lock()
	g.speed = ms
	g.reset()
	g.logger.Info().Str("game", g.id.String()).Int("speed", ms).Msg("Speed selected")
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)
}

// Status returns the current lifecycle state.
func (g *Game) Status() types.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Speed returns the tick period, or 0 when no speed was selected.
func (g *Game) Speed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Duration(g.speed) * time.Millisecond
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	return Snapshot{
		GameID:      g.id,
		Grid:        g.grid,
		Snake:       g.snake.Cells(),
		Food:        g.food,
		Direction:   g.direction,
		Status:      g.status,
		Collision:   g.collision,
		Score:       g.score,
		Speed:       g.speed,
		Steps:       g.steps,
		Best:        g.stateMgr.GetHighScore(),
		GamesPlayed: g.stateMgr.GetGamesPlayed(),
	}
}

// Subscribe registers fn to receive a snapshot after every change to the
// snake, food, status or speed. fn runs in the goroutine that made the change,
// outside the game lock, so it may call back into the game.
func (g *Game) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	g.mu.Lock()
	id := g.observerID
	g.observerID++
	g.observers[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.observers, id)
		g.mu.Unlock()
	}
}

func (g *Game) notify(snap Snapshot) {
	g.mu.Lock()
	fns := make([]func(Snapshot), 0, len(g.observers))
	for _, fn := range g.observers {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
