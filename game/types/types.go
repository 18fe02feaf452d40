package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Canvas geometry. The grid is CanvasSize/Scale cells on each side.
const (
	CanvasSize = 500
	Scale      = 20
)

// Point is a grid cell or a movement vector.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsUnit reports whether p is one of the four cardinal unit vectors.
func (p Point) IsUnit() bool {
	return (p.X == 0 && (p.Y == 1 || p.Y == -1)) || (p.Y == 0 && (p.X == 1 || p.X == -1))
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewGrid derives a square grid from a canvas extent and a cell scale.
func NewGrid(canvas, scale int) Grid {
	size := canvas / scale
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Status is the lifecycle state of a game.
type Status int

const (
	NotStarted Status = iota
	Running
	GameOver
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Initial values restored by every restart.
var (
	SnakeStart = []Point{{X: 8, Y: 8}, {X: 8, Y: 9}}
	AppleStart = Point{X: 8, Y: 3}
	DirStart   = UP.ToPoint()
)

// Tick periods in milliseconds.
const (
	Beginner     = 150
	Intermediate = 100
	Advanced     = 50
)

// Preset is a named tick speed.
type Preset struct {
	Name string
	MS   int
}

// Presets lists the selectable speeds, slowest first.
var Presets = []Preset{
	{Name: "beginner", MS: Beginner},
	{Name: "intermediate", MS: Intermediate},
	{Name: "advanced", MS: Advanced},
}

var ErrInvalidSpeed = errors.New("invalid speed")

// ParseSpeed accepts a preset name or a positive number of milliseconds.
// The empty string means unset and yields 0.
func ParseSpeed(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, nil
	}
	for _, p := range Presets {
		if p.Name == s {
			return p.MS, nil
		}
	}
	ms, err := strconv.Atoi(s)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpeed, s)
	}
	return ms, nil
}
