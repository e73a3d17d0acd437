package component

import (
	"time"

	"pascman/internal/ecs"
)

const CBrain ecs.ComponentType = 18

// BrainKind selects how an autonomous actor picks its moves.
type BrainKind uint8

const (
	BrainSmart  BrainKind = iota // distance-field pursuit or flight
	BrainRandom                  // uniform random direction
)

// Brain makes an entity act on its own once every Interval.
type Brain struct {
	Kind     BrainKind
	Interval time.Duration
	NextAt   time.Time
}

func (Brain) Type() ecs.ComponentType { return CBrain }

// Due reports whether the actor may act at now.
func (b Brain) Due(now time.Time) bool { return !now.Before(b.NextAt) }
