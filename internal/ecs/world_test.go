package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stub components used only in tests
type posComp struct{ x, y int }

func (posComp) Type() ComponentType { return 1 }

type tagComp struct{}

func (tagComp) Type() ComponentType { return 2 }

type deadComp struct{}

func (deadComp) Type() ComponentType { return 3 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	require.NotEqual(t, NilEntity, id)
	assert.True(t, w.Alive(id))
	assert.Equal(t, 1, w.Len())
}

func TestSpawnAttachesComponents(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(posComp{x: 4, y: 2}, tagComp{})

	c, ok := w.Get(id, 1).(posComp)
	require.True(t, ok)
	assert.Equal(t, posComp{x: 4, y: 2}, c)
	assert.True(t, w.Has(id, 2))
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(posComp{x: 7})
	w.DestroyEntity(id)

	assert.False(t, w.Alive(id))
	assert.Nil(t, w.Get(id, 1))
	// second destroy is a no-op
	w.DestroyEntity(id)
	assert.Equal(t, 0, w.Len())
}

func TestAddToDestroyedEntityIsIgnored(t *testing.T) {
	w := NewWorld()
	id := w.Spawn()
	w.DestroyEntity(id)
	w.Add(id, posComp{})

	assert.Nil(t, w.Get(id, 1))
	assert.Empty(t, w.Query(1))
}

func TestQueryFiltersAndSorts(t *testing.T) {
	w := NewWorld()
	var both []EntityID
	for i := 0; i < 5; i++ {
		both = append(both, w.Spawn(posComp{x: i}, tagComp{}))
		w.Spawn(posComp{x: i})
	}

	assert.Equal(t, both, w.Query(1, 2))
	assert.Len(t, w.Query(1), 10)
	assert.Nil(t, w.Query())
}

func TestMatchHonoursNone(t *testing.T) {
	w := NewWorld()
	live := w.Spawn(posComp{}, tagComp{})
	w.Spawn(posComp{}, tagComp{}, deadComp{})

	got := w.Match(Filter{All: []ComponentType{1, 2}, None: []ComponentType{3}})
	assert.Equal(t, []EntityID{live}, got)
	assert.Equal(t, 1, w.Count(Filter{All: []ComponentType{3}}))
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Remove(id, ComponentType(99))
	w.Remove(NilEntity, ComponentType(1))
	assert.True(t, w.Alive(id))
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	w := NewWorld()
	old := w.Spawn(posComp{})
	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Alive(old))
	fresh := w.Spawn(posComp{})
	assert.Greater(t, fresh, old)
	assert.Equal(t, []EntityID{fresh}, w.Query(1))
}

func TestComponentsOrderedByType(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(deadComp{}, posComp{x: 1}, tagComp{})

	cs := w.Components(id)
	require.Len(t, cs, 3)
	assert.Equal(t, ComponentType(1), cs[0].Type())
	assert.Equal(t, ComponentType(3), cs[2].Type())
}
