package system

import (
	"testing"
	"time"

	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/factory"
	"pascman/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smart = factory.VillainBrain{Kind: component.BrainSmart, Interval: time.Second}

func TestPlannerApproachesMonotonically(t *testing.T) {
	env := newEnv("........")
	w := ecs.NewWorld()
	factory.NewHero(w, 100, 0, 0)
	villain := factory.NewVillain(w, 101, 7, 0, 0, smart)

	prev := 7
	for i := 1; i <= 6; i++ {
		env.Now = epoch.Add(time.Duration(i) * time.Second)
		tick(t, w, env)
		x := posOf(w, villain).X
		assert.Equal(t, prev-1, x, "tick %d", i)
		assert.Equal(t, component.Left, dirOf(w, villain))
		prev = x
	}
}

func TestPlannerCooldown(t *testing.T) {
	env := newEnv("........")
	w := ecs.NewWorld()
	factory.NewHero(w, 100, 0, 0)
	villain := factory.NewVillain(w, 101, 7, 0, 0, smart)

	tick(t, w, env)
	assert.Equal(t, 6, posOf(w, villain).X)
	tick(t, w, env)
	assert.Equal(t, 6, posOf(w, villain).X, "cooldown not elapsed")

	env.Now = epoch.Add(999 * time.Millisecond)
	tick(t, w, env)
	assert.Equal(t, 6, posOf(w, villain).X)

	env.Now = epoch.Add(time.Second)
	tick(t, w, env)
	assert.Equal(t, 5, posOf(w, villain).X)
	b := w.Get(villain, component.CBrain).(component.Brain)
	assert.Equal(t, epoch.Add(2*time.Second), b.NextAt)
}

func TestPlannerDepthCutoff(t *testing.T) {
	env := newEnv("........")
	env.MaxDepth = 3
	w := ecs.NewWorld()
	factory.NewHero(w, 100, 0, 0)
	villain := factory.NewVillain(w, 101, 7, 0, 0, smart)

	tick(t, w, env)
	assert.Equal(t, component.Position{X: 7, Y: 0}, posOf(w, villain), "hero is beyond the bounded field")
	assert.Equal(t, component.Down, dirOf(w, villain))
}

func TestPursueTieOrder(t *testing.T) {
	env := newEnv(
		"...",
		"...",
		"...",
	)
	f := env.Map.DistanceField([]gamemap.Cell{{X: 0, Y: 0}}, 10)
	dir, ok := Pursue(env.Map, f, component.Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, component.Up, dir, "up wins the tie with left")

	_, ok = Pursue(env.Map, f, component.Position{X: 0, Y: 0})
	assert.False(t, ok, "already on the source")
}

func TestFleeTowardsUnreached(t *testing.T) {
	env := newEnv("........")
	env.MaxDepth = 2
	f := env.Map.DistanceField([]gamemap.Cell{{X: 1, Y: 0}}, env.MaxDepth)

	dir, ok := Flee(env.Map, f, component.Position{X: 3, Y: 0})
	require.True(t, ok)
	assert.Equal(t, component.Right, dir)

	_, ok = Flee(env.Map, f, component.Position{X: 5, Y: 0})
	assert.False(t, ok, "already outside the field")
}

func TestHuntedVillainFlees(t *testing.T) {
	env := newEnv("........")
	w := ecs.NewWorld()
	hero := factory.NewHero(w, 100, 1, 0)
	w.Remove(hero, component.CVictim)
	w.Add(hero, component.Hunter{})
	villain := factory.NewVillain(w, 101, 3, 0, 0, smart)
	w.Remove(villain, component.CHunter)
	w.Add(villain, component.Victim{})

	tick(t, w, env)
	assert.Equal(t, 4, posOf(w, villain).X)
	assert.Equal(t, component.Right, dirOf(w, villain))
}

func TestRandomWalker(t *testing.T) {
	env := newEnv(
		"...",
		"...",
		"...",
	)
	w := ecs.NewWorld()
	v := factory.NewVillain(w, 101, 1, 1, 0, factory.VillainBrain{Kind: component.BrainRandom, Interval: time.Second})

	step(t, w, Planner(env))
	require.True(t, w.Has(v, component.CIntendsToMove))
	intent := w.Get(v, component.CIntendsToMove).(component.IntendsToMove)
	assert.True(t, intent.Dir.Valid())
	assert.False(t, intent.HasTarget)
}

func TestPlannerKeepsProtocolIntent(t *testing.T) {
	env := newEnv("........")
	w := ecs.NewWorld()
	factory.NewHero(w, 100, 0, 0)
	villain := factory.NewVillain(w, 101, 4, 0, 0, smart)
	w.Add(villain, component.MoveTo(component.Position{X: 6, Y: 0}))

	tick(t, w, env)
	assert.Equal(t, 6, posOf(w, villain).X)
}
