package game

import (
	"go.uber.org/zap"

	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/gamemap"
	"pascman/internal/protocol"
)

// ingest drains the queue and applies each message to the world directly,
// before any schedule runs.
func (s *Simulation) ingest() {
	var index map[uint32]ecs.EntityID
	lookup := func() map[uint32]ecs.EntityID {
		if index == nil {
			index = s.indexIDs()
		}
		return index
	}
	s.queue.Drain(func(m protocol.Message) {
		s.log.Debug("message", zap.Stringer("type", m.Type()), zap.Any("payload", m))
		if _, ok := m.(protocol.Registration); ok {
			index = nil
		}
		s.apply(m, lookup)
	})
}

// indexIDs maps external ids to live entities.
func (s *Simulation) indexIDs() map[uint32]ecs.EntityID {
	out := make(map[uint32]ecs.EntityID)
	for _, e := range s.world.Query(component.CID) {
		out[uint32(s.world.Get(e, component.CID).(component.ID))] = e
	}
	return out
}

func (s *Simulation) apply(m protocol.Message, lookup func() map[uint32]ecs.EntityID) {
	destroy := func(id uint32) bool {
		idx := lookup()
		e, ok := idx[id]
		if !ok || !s.world.Alive(e) {
			return false
		}
		s.world.DestroyEntity(e)
		delete(idx, id)
		return true
	}

	switch v := m.(type) {
	case protocol.Registration:
		s.player = v.Player
		s.world.Clear()
		s.env.Map = gamemap.New(s.gridW, s.gridH)
		s.layout = &gamemap.Layout{Map: s.env.Map.Clone()}
		s.newRound()
		s.log.Info("registered", zap.Uint32("player", v.Player), zap.String("run_id", s.round.id.String()))

	case protocol.Spawn:
		s.applySpawn(v, lookup, destroy)

	case protocol.Movement:
		e, ok := lookup()[v.ID]
		if !ok || !s.world.Alive(e) {
			s.log.Debug("movement for unknown id", zap.Uint32("id", v.ID))
			return
		}
		s.world.Add(e, component.MoveTo(component.Position{X: int(v.X), Y: int(v.Y)}))

	case protocol.EatFood:
		if destroy(v.Food) {
			s.env.Round.FoodEaten++
		}

	case protocol.KillVictim:
		if destroy(v.Killed) {
			s.env.Round.Kills++
		}

	case protocol.LeftGame:
		destroy(v.ID)

	case protocol.Victory:
		s.finish(Outcome{Kind: Won, Winner: s.player, Loser: opponent(s.player)})

	case protocol.Defeat:
		s.finish(Outcome{Kind: Lost, Winner: opponent(s.player), Loser: s.player})

	case protocol.GameOver:
		s.finish(Outcome{Kind: Finished, Winner: v.Winner, Loser: v.Loser})

	case protocol.SpecialMode:
		e, ok := lookup()[v.ID]
		if !ok || !s.world.Alive(e) {
			return
		}
		s.applySpecial(e, v.Active)
	}
}

func (s *Simulation) applySpawn(v protocol.Spawn, lookup func() map[uint32]ecs.EntityID, destroy func(uint32) bool) {
	x, y := int(v.X), int(v.Y)
	m := s.env.Map
	if !m.InBounds(x, y) {
		s.log.Warn("spawn out of bounds", zap.Uint32("id", v.ID), zap.Stringer("item", v.Item), zap.Int("x", x), zap.Int("y", y))
		return
	}

	var kind gamemap.SpawnKind
	switch v.Item {
	case protocol.ItemWall:
		m.Set(x, y, gamemap.MakeWall())
		s.layout.Map.Set(x, y, gamemap.MakeWall())
		return
	case protocol.ItemFloor:
		m.Set(x, y, gamemap.MakeFloor())
		s.layout.Map.Set(x, y, gamemap.MakeFloor())
		return
	case protocol.ItemFood:
		kind = gamemap.SpawnFood
	case protocol.ItemSuperfood:
		kind = gamemap.SpawnSuperfood
	case protocol.ItemPlayer1:
		kind = gamemap.SpawnHero
	case protocol.ItemPlayer2:
		kind = gamemap.SpawnVillain
	default:
		return
	}

	destroy(v.ID)
	sp := gamemap.Spawn{ID: v.ID, Kind: kind, X: x, Y: y, Variant: int(v.ID)}
	lookup()[v.ID] = s.spawn(sp)
	s.remember(sp)
}

// remember records sp in the layout so a restart replays it.
func (s *Simulation) remember(sp gamemap.Spawn) {
	for i, old := range s.layout.Spawns {
		if old.ID == sp.ID {
			s.layout.Spawns[i] = sp
			return
		}
	}
	s.layout.Spawns = append(s.layout.Spawns, sp)
}

// applySpecial switches a victim to hunter, or switches it back. Entities
// that are hunters by nature are left alone.
func (s *Simulation) applySpecial(e ecs.EntityID, active bool) {
	w := s.world
	switch {
	case active && w.Has(e, component.CVictim) && !w.Has(e, component.CSpecial):
		w.Add(e, component.Special{})
		w.Add(e, component.SwapRole{Add: component.RoleHunter, Remove: component.RoleVictim})
	case !active && w.Has(e, component.CSpecial):
		w.Remove(e, component.CSpecial)
		w.Add(e, component.SwapRole{Add: component.RoleVictim, Remove: component.RoleHunter})
	}
}
