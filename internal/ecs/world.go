package ecs

import (
	"cmp"
	"slices"
)

// World holds every live entity and one sparse store per component type.
type World struct {
	next   EntityID
	live   map[EntityID]struct{}
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld returns an empty World whose first entity gets id 1.
func NewWorld() *World {
	return &World{
		next:   1,
		live:   make(map[EntityID]struct{}),
		stores: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity returns a fresh id. Ids are never reused.
func (w *World) CreateEntity() EntityID {
	id := w.next
	w.next++
	w.live[id] = struct{}{}
	return id
}

// Spawn creates an entity carrying cs.
func (w *World) Spawn(cs ...Component) EntityID {
	id := w.CreateEntity()
	for _, c := range cs {
		w.Add(id, c)
	}
	return id
}

// DestroyEntity drops id and everything attached to it. Destroying a dead
// entity does nothing.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	delete(w.live, id)
	for _, s := range w.stores {
		delete(s, id)
	}
}

// Alive reports whether id was created and not destroyed since.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.live[id]
	return ok
}

// Len is the number of live entities.
func (w *World) Len() int { return len(w.live) }

// Add sets c on id, replacing a component of the same type. Dead ids are
// ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	s, ok := w.stores[c.Type()]
	if !ok {
		s = make(map[EntityID]Component)
		w.stores[c.Type()] = s
	}
	s[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Remove detaches id's component of type t, if any.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Components lists what id carries, ordered by type.
func (w *World) Components(id EntityID) []Component {
	var out []Component
	for _, s := range w.stores {
		if c, ok := s[id]; ok {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Component) int { return cmp.Compare(a.Type(), b.Type()) })
	return out
}

// Entities lists the live ids in ascending order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.live))
	for id := range w.live {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clear destroys every entity. Ids keep increasing so references held
// across a clear never resolve to a new entity.
func (w *World) Clear() {
	clear(w.live)
	clear(w.stores)
}

// Query is Match with only required types.
func (w *World) Query(types ...ComponentType) []EntityID {
	return w.Match(Filter{All: types})
}

// Count returns how many live entities match f.
func (w *World) Count(f Filter) int {
	return len(w.Match(f))
}

// Match returns the live entities carrying every type in f.All and none of
// f.None, in ascending id order. An empty f.All matches nothing.
func (w *World) Match(f Filter) []EntityID {
	if len(f.All) == 0 {
		return nil
	}
	// Scan the rarest required type.
	pivot := f.All[0]
	for _, t := range f.All[1:] {
		if len(w.stores[t]) < len(w.stores[pivot]) {
			pivot = t
		}
	}
	var ids []EntityID
	for id := range w.stores[pivot] {
		if w.Alive(id) && w.matches(id, f) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (w *World) matches(id EntityID, f Filter) bool {
	for _, t := range f.All {
		if !w.Has(id, t) {
			return false
		}
	}
	for _, t := range f.None {
		if w.Has(id, t) {
			return false
		}
	}
	return true
}
