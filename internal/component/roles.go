package component

import (
	"time"

	"pascman/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const (
	CSwapRole        ecs.ComponentType = 14
	CDelayedSwapRole ecs.ComponentType = 15
)

// Role is one of the two capability tags that power-ups exchange.
type Role uint8

const (
	RoleHunter Role = iota
	RoleVictim
)

// Component returns the marker component for the role.
func (r Role) Component() ecs.Component {
	if r == RoleHunter {
		return Hunter{}
	}
	return Victim{}
}

// ComponentType returns the marker component type for the role.
func (r Role) ComponentType() ecs.ComponentType {
	if r == RoleHunter {
		return CHunter
	}
	return CVictim
}

func (r Role) String() string {
	if r == RoleHunter {
		return "hunter"
	}
	return "victim"
}

// SwapRole is consumed by the role-swap stage: Remove is dropped, Add is
// attached, and the entity is tinted with Color.
type SwapRole struct {
	Add    Role
	Remove Role
	Color  tcell.Color
}

func (SwapRole) Type() ecs.ComponentType { return CSwapRole }

// DelayedSwapRole holds Swap until FireAt has passed.
type DelayedSwapRole struct {
	FireAt time.Time
	Swap   SwapRole
}

func (DelayedSwapRole) Type() ecs.ComponentType { return CDelayedSwapRole }
