package system

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/gamemap"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newEnv builds an Env over rows where '#' is wall and anything else floor.
func newEnv(rows ...string) *Env {
	m := gamemap.New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				m.Set(x, y, gamemap.MakeWall())
			}
		}
	}
	return &Env{
		Map:             m,
		Now:             epoch,
		Rng:             rand.New(rand.NewSource(1)),
		PowerupDuration: 8 * time.Second,
		MaxDepth:        64,
	}
}

// step runs each system as its own stage, flushing in between.
func step(t *testing.T, w *ecs.World, fns ...ecs.SystemFunc) {
	t.Helper()
	s := ecs.NewSchedule("test")
	for i, fn := range fns {
		name := fmt.Sprintf("stage-%d", i)
		s.Stage(name, ecs.System{Name: name, Run: fn})
	}
	require.NoError(t, s.Run(w))
}

func posOf(w *ecs.World, id ecs.EntityID) component.Position {
	return w.Get(id, component.CPosition).(component.Position)
}

func dirOf(w *ecs.World, id ecs.EntityID) component.Direction {
	return w.Get(id, component.CDirection).(component.Direction)
}

// tick runs the running pipeline the way the simulation stages it.
func tick(t *testing.T, w *ecs.World, env *Env) {
	t.Helper()
	one := func(name string, fn ecs.SystemFunc) ecs.System { return ecs.System{Name: name, Run: fn} }
	s := ecs.NewSchedule("running").
		Stage("input", one("input", Input(env))).
		Stage("ai", one("planner", Planner(env))).
		Stage("movement", one("movement", Movement(env))).
		Stage("interactions",
			one("eat", EatFood(env)),
			one("kill", KillVictims(env)),
			one("powerups", ConsumePowerups(env))).
		Stage("timers", one("delayed", DelayedSwaps(env))).
		Stage("roleswap", one("roleswap", RoleSwap(env))).
		Stage("cleanup", one("cleanup", Cleanup(env))).
		Stage("endgame", one("endgame", EndGame(env)))
	require.NoError(t, s.Run(w))
}
