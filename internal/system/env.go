package system

import (
	"math/rand"
	"time"

	"pascman/internal/component"
	"pascman/internal/gamemap"
)

// Verdict is the end-condition result of a tick.
type Verdict uint8

const (
	VerdictNone Verdict = iota
	VerdictWon
	VerdictLost
)

func (v Verdict) String() string {
	switch v {
	case VerdictWon:
		return "won"
	case VerdictLost:
		return "lost"
	}
	return "none"
}

// Round is per-round bookkeeping shared by the systems.
type Round struct {
	HeroSpawned bool // at least one hero entered the round
	FoodSpawned bool // at least one food entered the round
	FoodEaten   int
	Kills       int
}

// Env holds the resources systems read and write besides the world. The
// simulation updates Now, Key and KeyPressed before each run.
type Env struct {
	Map *gamemap.GameMap
	Now time.Time
	Rng *rand.Rand

	Key        component.Direction
	KeyPressed bool // a direction key arrived this tick
	AnyKey     bool // any key arrived this tick

	PowerupDuration time.Duration
	MaxDepth        int
	RespawnVillains bool

	Round   Round
	Verdict Verdict
}
