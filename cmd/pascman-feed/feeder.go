package main

import (
	"pascman/internal/component"
	"pascman/internal/gamemap"
	"pascman/internal/protocol"
)

// feeder is a minimal authoritative side for one local hero: it announces
// the layout, then answers each direction with the frames a server would
// broadcast. Villains stand still. The first direction after a round ended
// starts a new one by announcing the layout again.
type feeder struct {
	player   uint32
	layout   *gamemap.Layout
	heroID   uint32
	hero     gamemap.Cell
	hasHero  bool
	food     map[gamemap.Cell]uint32
	villains map[gamemap.Cell]uint32
	over     bool
}

func newFeeder(player uint32, l *gamemap.Layout) *feeder {
	f := &feeder{
		player:   player,
		layout:   l,
		food:     make(map[gamemap.Cell]uint32),
		villains: make(map[gamemap.Cell]uint32),
	}
	for _, s := range l.Spawns {
		c := gamemap.Cell{X: s.X, Y: s.Y}
		switch s.Kind {
		case gamemap.SpawnFood, gamemap.SpawnSuperfood:
			f.food[c] = s.ID
		case gamemap.SpawnVillain:
			f.villains[c] = s.ID
		case gamemap.SpawnHero:
			f.heroID, f.hero, f.hasHero = s.ID, c, true
		}
	}
	return f
}

// hello is the map broadcast.
func (f *feeder) hello() []protocol.Message {
	return protocol.LayoutMessages(f.player, f.layout)
}

// step moves the hero one cell in direction d.
func (f *feeder) step(d component.Direction) []protocol.Message {
	if f.over {
		*f = *newFeeder(f.player, f.layout)
		return f.hello()
	}
	if !f.hasHero {
		return nil
	}
	dx, dy := d.Delta()
	next := gamemap.Cell{X: f.hero.X + dx, Y: f.hero.Y + dy}
	if !f.layout.Map.CanEnter(next.X, next.Y) {
		return nil
	}
	f.hero = next
	out := []protocol.Message{protocol.Movement{ID: f.heroID, X: uint32(next.X), Y: uint32(next.Y)}}

	if id, ok := f.villains[next]; ok {
		f.over = true
		return append(out, protocol.KillVictim{Killer: id, Killed: f.heroID}, protocol.Defeat{})
	}
	if id, ok := f.food[next]; ok {
		delete(f.food, next)
		out = append(out, protocol.EatFood{Eater: f.heroID, Food: id})
		if len(f.food) == 0 {
			f.over = true
			out = append(out, protocol.Victory{})
		}
	}
	return out
}
