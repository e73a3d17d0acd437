package component

import "pascman/internal/ecs"

const (
	CPosition  ecs.ComponentType = 1
	CDirection ecs.ComponentType = 2
	CHome      ecs.ComponentType = 3
)

// Position is a grid cell. It stays within map bounds while the entity lives.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Step returns the neighbouring cell in direction d. The result may be off
// the map; callers check bounds before using it.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is the facing of a character. Values match the wire encoding.
type Direction uint8

const (
	Down  Direction = 0
	Right Direction = 1
	Left  Direction = 2
	Up    Direction = 3
)

func (Direction) Type() ecs.ComponentType { return CDirection }

// Delta converts the direction to a unit (dx, dy) step.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d <= Up }

// Towards picks the heading for a (dx, dy) delta. The horizontal component
// wins; vertical is used only when dx is zero. ok is false for a zero delta.
func Towards(dx, dy int) (d Direction, ok bool) {
	switch {
	case dx > 0:
		return Right, true
	case dx < 0:
		return Left, true
	case dy > 0:
		return Down, true
	case dy < 0:
		return Up, true
	}
	return Down, false
}

// Home is the cell a villain returns to when it respawns.
type Home struct {
	X, Y int
}

func (Home) Type() ecs.ComponentType { return CHome }
