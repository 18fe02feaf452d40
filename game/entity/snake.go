package entity

import "snake-classic/game/types"

// Snake is an ordered chain of cells, head first.
type Snake struct {
	Body []types.Point
}

// NewSnake copies start so restarts never alias the shared constant.
func NewSnake(start []types.Point) *Snake {
	body := make([]types.Point, len(start))
	copy(body, start)
	return &Snake{Body: body}
}

// Move prepends newHead.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last cell; the snake never shrinks below one cell.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any cell of the body equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
