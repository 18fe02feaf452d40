package game

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	up    = types.UP.ToPoint()
	down  = types.DOWN.ToPoint()
	left  = types.LEFT.ToPoint()
	right = types.RIGHT.ToPoint()
)

func newRunningGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(types.NewGrid(types.CanvasSize, types.Scale), WithSeed(1))
	require.NoError(t, err)
	g.SetSpeed(types.Beginner)
	g.Start()
	require.Equal(t, types.Running, g.Status())
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g, err := NewGame(types.Grid{Width: 25, Height: 25})
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, types.SnakeStart, snap.Snake)
	assert.Equal(t, types.AppleStart, snap.Food)
	assert.Equal(t, up, snap.Direction)
	assert.Equal(t, types.NotStarted, snap.Status)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Speed)
	assert.Zero(t, g.Speed())
}

func TestNewGameGridTooSmall(t *testing.T) {
	_, err := NewGame(types.Grid{Width: 8, Height: 8})
	assert.ErrorIs(t, err, ErrGridTooSmall)
}

func TestTickMovesUp(t *testing.T) {
	g := newRunningGame(t)

	assert.Equal(t, types.Running, g.Tick())

	snap := g.Snapshot()
	assert.Equal(t, []types.Point{{X: 8, Y: 7}, {X: 8, Y: 8}}, snap.Snake)
	assert.Zero(t, snap.Score)
	assert.Equal(t, types.Running, snap.Status)
	assert.Equal(t, 1, snap.Steps)
}

func TestTickEatsFood(t *testing.T) {
	g := newRunningGame(t)
	g.food = types.Point{X: 8, Y: 7}

	g.Tick()

	snap := g.Snapshot()
	assert.Equal(t, []types.Point{{X: 8, Y: 7}, {X: 8, Y: 8}, {X: 8, Y: 9}}, snap.Snake)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, types.Running, snap.Status)
	assert.True(t, snap.Grid.Contains(snap.Food))
}

func TestGrowthInvariant(t *testing.T) {
	g := newRunningGame(t)

	for i := 0; i < 6; i++ {
		before := g.Snapshot()
		ateFood := before.Snake[0].Add(before.Direction) == before.Food

		require.Equal(t, types.Running, g.Tick())

		after := g.Snapshot()
		if ateFood {
			assert.Equal(t, len(before.Snake)+1, len(after.Snake))
			assert.Equal(t, before.Score+1, after.Score)
		} else {
			assert.Equal(t, len(before.Snake), len(after.Snake))
			assert.Equal(t, before.Score, after.Score)
		}
	}
}

func TestTickWallCollision(t *testing.T) {
	g := newRunningGame(t)
	g.snake = entity.NewSnake([]types.Point{{X: 0, Y: 5}, {X: 1, Y: 5}})
	g.direction = left
	before := g.Snapshot().Snake

	assert.Equal(t, types.GameOver, g.Tick())

	snap := g.Snapshot()
	assert.Equal(t, types.GameOver, snap.Status)
	assert.Equal(t, types.WallCollision, snap.Collision)
	assert.Equal(t, before, snap.Snake)
	assert.Equal(t, 1, snap.GamesPlayed)
}

func TestTickWallCollisionEveryBorder(t *testing.T) {
	tests := []struct {
		name string
		head types.Point
		dir  types.Point
	}{
		{"top", types.Point{X: 4, Y: 0}, up},
		{"bottom", types.Point{X: 4, Y: 24}, down},
		{"left", types.Point{X: 0, Y: 4}, left},
		{"right", types.Point{X: 24, Y: 4}, right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newRunningGame(t)
			g.snake = entity.NewSnake([]types.Point{tt.head})
			g.direction = tt.dir

			assert.Equal(t, types.GameOver, g.Tick())
			assert.Equal(t, []types.Point{tt.head}, g.Snapshot().Snake)
		})
	}
}

func TestTickSelfCollision(t *testing.T) {
	g := newRunningGame(t)
	body := []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
	g.snake = entity.NewSnake(body)
	g.direction = right

	assert.Equal(t, types.GameOver, g.Tick())

	snap := g.Snapshot()
	assert.Equal(t, types.SelfCollision, snap.Collision)
	assert.Equal(t, body, snap.Snake)
}

func TestTickIntoTailIsCollision(t *testing.T) {
	g := newRunningGame(t)
	body := []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}}
	g.snake = entity.NewSnake(body)
	g.direction = up

	assert.Equal(t, types.GameOver, g.Tick())
	assert.Equal(t, body, g.Snapshot().Snake)
}

func TestTickBorderCheckedBeforeSelf(t *testing.T) {
	g := newRunningGame(t)
	g.snake = entity.NewSnake([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	g.direction = left

	g.Tick()
	assert.Equal(t, types.WallCollision, g.Snapshot().Collision)
}

func TestTickNoopWhenNotRunning(t *testing.T) {
	g, err := NewGame(types.Grid{Width: 25, Height: 25})
	require.NoError(t, err)
	g.SetSpeed(types.Advanced)

	assert.Equal(t, types.NotStarted, g.Tick())
	assert.Equal(t, types.SnakeStart, g.Snapshot().Snake)

	g.Start()
	g.snake = entity.NewSnake([]types.Point{{X: 0, Y: 0}})
	g.direction = up
	require.Equal(t, types.GameOver, g.Tick())

	before := g.Snapshot()
	assert.Equal(t, types.GameOver, g.Tick())
	assert.Equal(t, before, g.Snapshot())
}

func TestTickNoopWithoutSpeed(t *testing.T) {
	g, err := NewGame(types.Grid{Width: 25, Height: 25})
	require.NoError(t, err)
	g.Start()

	assert.Equal(t, types.Running, g.Tick())
	assert.Equal(t, types.SnakeStart, g.Snapshot().Snake)
	assert.Zero(t, g.Snapshot().Steps)
}

func TestSetDirectionStartsGame(t *testing.T) {
	g, err := NewGame(types.Grid{Width: 25, Height: 25})
	require.NoError(t, err)

	g.SetDirection(down)

	assert.Equal(t, types.Running, g.Status())
	assert.Equal(t, up, g.Snapshot().Direction, "reversal is rejected even on the starting intent")
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	pairs := []struct{ current, opposite types.Point }{
		{up, down},
		{down, up},
		{left, right},
		{right, left},
	}
	for _, p := range pairs {
		g := newRunningGame(t)
		g.direction = p.current

		g.SetDirection(p.opposite)
		assert.Equal(t, p.current, g.Snapshot().Direction)
		g.SetDirection(p.opposite)
		assert.Equal(t, p.current, g.Snapshot().Direction)
	}
}

func TestSetDirectionAppliesOnNextTick(t *testing.T) {
	g := newRunningGame(t)

	g.SetDirection(left)
	assert.Equal(t, []types.Point{{X: 8, Y: 8}, {X: 8, Y: 9}}, g.Snapshot().Snake)

	g.Tick()
	assert.Equal(t, types.Point{X: 7, Y: 8}, g.Snapshot().Snake[0])
}

func TestSetDirectionIgnoresNonUnit(t *testing.T) {
	g := newRunningGame(t)

	g.SetDirection(types.Point{X: 1, Y: 1})
	g.SetDirection(types.Point{})

	assert.Equal(t, up, g.Snapshot().Direction)
}

func TestStartOnlyFromNotStarted(t *testing.T) {
	g := newRunningGame(t)
	g.snake = entity.NewSnake([]types.Point{{X: 0, Y: 0}})
	g.Tick()
	require.Equal(t, types.GameOver, g.Status())

	g.Start()
	g.SetDirection(right)
	assert.Equal(t, types.GameOver, g.Status())
}

func TestRestart(t *testing.T) {
	g := newRunningGame(t)
	g.food = types.Point{X: 8, Y: 7}
	g.Tick()
	g.SetDirection(left)
	g.Tick()
	firstID := g.Snapshot().GameID

	g.Restart()

	snap := g.Snapshot()
	assert.Equal(t, types.SnakeStart, snap.Snake)
	assert.Equal(t, types.AppleStart, snap.Food)
	assert.Equal(t, up, snap.Direction)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Steps)
	assert.Equal(t, types.NotStarted, snap.Status)
	assert.Equal(t, types.NoCollision, snap.Collision)
	assert.Equal(t, types.Beginner, snap.Speed, "restart keeps the speed")
	assert.NotEqual(t, firstID, snap.GameID)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newRunningGame(t)
	g.snake = entity.NewSnake([]types.Point{{X: 0, Y: 0}})
	g.Tick()
	require.Equal(t, types.GameOver, g.Status())

	g.Restart()
	assert.Equal(t, types.NotStarted, g.Status())
	assert.Equal(t, types.SnakeStart, g.Snapshot().Snake)
}

func TestSetSpeedRestarts(t *testing.T) {
	g := newRunningGame(t)
	g.Tick()

	g.SetSpeed(types.Advanced)

	snap := g.Snapshot()
	assert.Equal(t, types.Advanced, snap.Speed)
	assert.Equal(t, types.NotStarted, snap.Status)
	assert.Equal(t, types.SnakeStart, snap.Snake)

	g.SetSpeed(0)
	assert.Equal(t, types.Advanced, g.Snapshot().Speed)
}

func TestFoodMayOverlapSnake(t *testing.T) {
	g := newRunningGame(t)

	for i := 0; i < 200; i++ {
		g.food = g.snake.GetHead().Add(g.direction)
		if !g.Snapshot().Grid.Contains(g.food) {
			break
		}
		g.Tick()
		snap := g.Snapshot()
		assert.True(t, snap.Grid.Contains(snap.Food))
	}
}

func TestSubscribe(t *testing.T) {
	g, err := NewGame(types.Grid{Width: 25, Height: 25}, WithSeed(3))
	require.NoError(t, err)

	var got []Snapshot
	unsubscribe := g.Subscribe(func(s Snapshot) { got = append(got, s) })

	g.SetSpeed(types.Beginner)
	g.SetDirection(left)
	g.SetDirection(up)
	g.Tick()

	require.Len(t, got, 3)
	assert.Equal(t, types.NotStarted, got[0].Status)
	assert.Equal(t, types.Running, got[1].Status)
	assert.Equal(t, types.Point{X: 8, Y: 7}, got[2].Snake[0])

	unsubscribe()
	g.Tick()
	assert.Len(t, got, 3)
}

func TestSubscriberMayCallBack(t *testing.T) {
	g, err := NewGame(types.Grid{Width: 25, Height: 25})
	require.NoError(t, err)

	g.Subscribe(func(s Snapshot) {
		if s.Status == types.Running {
			g.SetDirection(left)
		}
	})
	g.SetSpeed(types.Beginner)
	g.Start()
	g.Tick()

	assert.Equal(t, left, g.Snapshot().Direction)
}
