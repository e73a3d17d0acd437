package component

import "pascman/internal/ecs"

const (
	CFood      ecs.ComponentType = 11
	CSuperfood ecs.ComponentType = 12
)

// Food is a collectible. Superfood entities carry Food as well.
type Food struct {
	Glyph rune
}

func (Food) Type() ecs.ComponentType { return CFood }

// Superfood marks a powerup: eating it swaps hunters and victims for a while.
type Superfood struct{}

func (Superfood) Type() ecs.ComponentType { return CSuperfood }
