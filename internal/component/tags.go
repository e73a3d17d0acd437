package component

import "pascman/internal/ecs"

const (
	CHero       ecs.ComponentType = 4
	CVillain    ecs.ComponentType = 5
	CHunter     ecs.ComponentType = 6
	CVictim     ecs.ComponentType = 7
	CControlled ecs.ComponentType = 8
	CDead       ecs.ComponentType = 9
	CSpecial    ecs.ComponentType = 10
)

// Hero marks the food-collecting character.
type Hero struct{}

func (Hero) Type() ecs.ComponentType { return CHero }

// Villain marks the characters chasing the hero.
type Villain struct{}

func (Villain) Type() ecs.ComponentType { return CVillain }

// Hunter is the predator capability: it kills co-located victims.
type Hunter struct{}

func (Hunter) Type() ecs.ComponentType { return CHunter }

// Victim is the prey capability.
type Victim struct{}

func (Victim) Type() ecs.ComponentType { return CVictim }

// Controlled marks entities steered by the local keyboard.
type Controlled struct{}

func (Controlled) Type() ecs.ComponentType { return CControlled }

// Dead is removed, together with its entity, by the cleanup stage.
type Dead struct{}

func (Dead) Type() ecs.ComponentType { return CDead }

// Special marks an entity switched to hunter by a SPECIAL_MODE message.
type Special struct{}

func (Special) Type() ecs.ComponentType { return CSpecial }
