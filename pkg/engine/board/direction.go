package board

// Direction represents a directional input moving the runner cell.
type Direction int

// Direction constants
const (
	Left Direction = iota
	Up
	Right
	Down
)

// AllDirections returns all valid directions for iteration.
func AllDirections() []Direction {
	return []Direction{Left, Up, Right, Down}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four recognized inputs.
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}
