package ai

import (
	"snake-classic/game"
	"snake-classic/game/types"
)

// Action is a move relative to the current heading.
type Action int

const (
	Left Action = iota
	Straight
	Right
)

// State is what the pilot senses around the head.
type State struct {
	Heading      types.Direction
	FoodDistance [3]int  // Manhattan distance to food after each action
	Danger       [3]bool // wall or body after each action
}

// NewState senses snap from the head's point of view.
func NewState(snap game.Snapshot) State {
	s := State{Heading: types.DirectionOf(snap.Direction)}
	if s.Heading == types.NONE {
		s.Heading = types.UP
	}
	head := snap.Snake[0]
	for a := Left; a <= Right; a++ {
		next := head.Add(relativeToAbsolute(s.Heading, a).ToPoint())
		s.Danger[a] = isDanger(next, snap)
		s.FoodDistance[a] = manhattanDistance(next, snap.Food)
	}
	return s
}

// relativeToAbsolute converts a relative action into an absolute direction.
func relativeToAbsolute(heading types.Direction, a Action) types.Direction {
	switch a {
	case Left:
		return heading.TurnLeft()
	case Right:
		return heading.TurnRight()
	default:
		return heading
	}
}

// isDanger reports whether moving the head to p ends the game.
func isDanger(p types.Point, snap game.Snapshot) bool {
	if !snap.Grid.Contains(p) {
		return true
	}
	for _, part := range snap.Snake {
		if p == part {
			return true
		}
	}
	return false
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
