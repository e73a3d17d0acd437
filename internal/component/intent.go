package component

import "pascman/internal/ecs"

const CIntendsToMove ecs.ComponentType = 13

// IntendsToMove is a one-tick movement request: either a step in Dir or,
// when HasTarget is set, a jump to Target.
type IntendsToMove struct {
	Dir       Direction
	Target    Position
	HasTarget bool
}

func (IntendsToMove) Type() ecs.ComponentType { return CIntendsToMove }

// MoveDir requests a single step.
func MoveDir(d Direction) IntendsToMove { return IntendsToMove{Dir: d} }

// MoveTo requests an absolute target cell.
func MoveTo(p Position) IntendsToMove { return IntendsToMove{Target: p, HasTarget: true} }
