package types

// Direction is a cardinal direction.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction into a movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// TurnLeft returns the direction after a left turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the direction after a right turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return d.TurnLeft().TurnLeft()
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// DirectionOf maps a unit vector back to its Direction, NONE otherwise.
func DirectionOf(p Point) Direction {
	switch p {
	case Point{X: 0, Y: -1}:
		return UP
	case Point{X: 1, Y: 0}:
		return RIGHT
	case Point{X: 0, Y: 1}:
		return DOWN
	case Point{X: -1, Y: 0}:
		return LEFT
	default:
		return NONE
	}
}
