package factory

import (
	"testing"
	"time"

	"pascman/internal/component"
	"pascman/internal/ecs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHero(t *testing.T) {
	w := ecs.NewWorld()
	id := NewHero(w, 60, 1, 2)
	for _, ct := range []ecs.ComponentType{
		component.CHero, component.CVictim, component.CControlled,
		component.CPosition, component.CDirection, component.CRenderable, component.CID,
	} {
		assert.True(t, w.Has(id, ct), "missing component %d", ct)
	}
	assert.False(t, w.Has(id, component.CHunter))
	assert.Equal(t, component.ID(60), w.Get(id, component.CID))
	assert.Equal(t, component.Position{X: 1, Y: 2}, w.Get(id, component.CPosition))
}

func TestNewVillainBrain(t *testing.T) {
	w := ecs.NewWorld()
	smart := NewVillain(w, 61, 3, 4, 0, VillainBrain{Kind: component.BrainSmart, Interval: time.Second})
	remote := NewVillain(w, 62, 5, 4, 7, VillainBrain{})

	require.True(t, w.Has(smart, component.CBrain))
	assert.Equal(t, time.Second, w.Get(smart, component.CBrain).(component.Brain).Interval)
	assert.False(t, w.Has(remote, component.CBrain), "no interval means externally driven")

	assert.Equal(t, component.Home{X: 3, Y: 4}, w.Get(smart, component.CHome))
	assert.True(t, w.Has(remote, component.CHunter))
	r := w.Get(remote, component.CRenderable).(component.Renderable)
	assert.Equal(t, VillainGlyphs[2], r.Glyphs)
}

func TestSuperfoodIsFood(t *testing.T) {
	w := ecs.NewWorld()
	NewFood(w, 1, 0, 0)
	NewSuperfood(w, 2, 1, 0)
	assert.Len(t, w.Query(component.CFood), 2)
	assert.Len(t, w.Query(component.CSuperfood), 1)
}
