package world

type Direction string

const (
	FacingFront Direction = "front"
	FacingBack  Direction = "back"
	FacingLeft  Direction = "left"
	FacingRight Direction = "right"
)

// Facing derives the direction after moving from p0 to p1. Horizontal
// displacement wins ties; a zero move keeps the previous direction.
func Facing(prev Direction, p0, p1 Point) Direction {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	switch {
	case dx != 0 && abs(dx) >= abs(dy):
		if dx > 0 {
			return FacingRight
		}
		return FacingLeft
	case dy > 0:
		return FacingFront
	case dy < 0:
		return FacingBack
	default:
		return prev
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
