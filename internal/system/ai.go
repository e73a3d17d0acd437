package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/gamemap"
)

var actors = ecs.Filter{
	All:  []ecs.ComponentType{component.CBrain, component.CPosition},
	None: []ecs.ComponentType{component.CDead, component.CControlled},
}

// Planner lets every autonomous actor whose cooldown has elapsed choose a
// move. Smart hunters descend the distance field seeded at victims; smart
// victims climb the field seeded at hunters. Random walkers roll a direction.
func Planner(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		var toVictims, toHunters *gamemap.DistanceField
		for _, id := range w.Match(actors) {
			brain, due := cooldown(w.Get(id, component.CBrain).(component.Brain), env.Now)
			if !due {
				continue
			}
			cmd.Add(id, brain)
			if w.Has(id, component.CIntendsToMove) {
				continue
			}
			pos := w.Get(id, component.CPosition).(component.Position)

			var (
				dir component.Direction
				ok  bool
			)
			switch {
			case brain.Kind == component.BrainRandom:
				dir, ok = component.Direction(env.Rng.Intn(4)), true
			case w.Has(id, component.CHunter):
				if toVictims == nil {
					toVictims = field(w, env, component.CVictim)
				}
				dir, ok = Pursue(env.Map, toVictims, pos)
			case w.Has(id, component.CVictim):
				if toHunters == nil {
					toHunters = field(w, env, component.CHunter)
				}
				dir, ok = Flee(env.Map, toHunters, pos)
			}
			if ok {
				cmd.Add(id, component.MoveDir(dir))
			}
		}
		return nil
	}
}

// field floods the map from every living entity holding role.
func field(w *ecs.World, env *Env, role ecs.ComponentType) *gamemap.DistanceField {
	var sources []gamemap.Cell
	for _, id := range w.Match(living(role, component.CPosition)) {
		p := w.Get(id, component.CPosition).(component.Position)
		sources = append(sources, gamemap.Cell{X: p.X, Y: p.Y})
	}
	return env.Map.DistanceField(sources, env.MaxDepth)
}

// Pursue picks the exit with the lowest distance strictly below the current
// cell's. A cell outside the field yields no move.
func Pursue(m *gamemap.GameMap, f *gamemap.DistanceField, pos component.Position) (component.Direction, bool) {
	here, ok := f.Distance(pos.X, pos.Y)
	if !ok {
		return component.Down, false
	}
	best, found := here, false
	var to gamemap.Cell
	for _, e := range m.Exits(pos.X, pos.Y) {
		if d, ok := f.Distance(e.X, e.Y); ok && d < best {
			best, to, found = d, e, true
		}
	}
	if !found {
		return component.Down, false
	}
	return component.Towards(to.X-pos.X, to.Y-pos.Y)
}

// Flee picks the exit with the highest distance strictly above the current
// cell's. Cells outside the field count as infinitely far.
func Flee(m *gamemap.GameMap, f *gamemap.DistanceField, pos component.Position) (component.Direction, bool) {
	here, inField := f.Distance(pos.X, pos.Y)
	if !inField {
		return component.Down, false
	}
	best, bestInf, found := here, false, false
	var to gamemap.Cell
	for _, e := range m.Exits(pos.X, pos.Y) {
		d, ok := f.Distance(e.X, e.Y)
		switch {
		case bestInf:
		case !ok:
			best, bestInf, to, found = 0, true, e, true
		case d > best:
			best, to, found = d, e, true
		}
	}
	if !found {
		return component.Down, false
	}
	return component.Towards(to.X-pos.X, to.Y-pos.Y)
}
