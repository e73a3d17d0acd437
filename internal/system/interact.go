package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/factory"

	"github.com/gdamore/tcell/v2"
)

func living(types ...ecs.ComponentType) ecs.Filter {
	return ecs.Filter{All: types, None: []ecs.ComponentType{component.CDead}}
}

// positions returns the set of cells occupied by entities matching f.
func positions(w *ecs.World, f ecs.Filter) map[component.Position]bool {
	out := make(map[component.Position]bool)
	for _, id := range w.Match(f) {
		out[w.Get(id, component.CPosition).(component.Position)] = true
	}
	return out
}

// EatFood marks every food sharing a cell with a hero as dead.
func EatFood(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		heroes := positions(w, living(component.CHero, component.CPosition))
		if len(heroes) == 0 {
			return nil
		}
		for _, id := range w.Match(living(component.CFood, component.CPosition)) {
			if heroes[w.Get(id, component.CPosition).(component.Position)] {
				cmd.Add(id, component.Dead{})
				env.Round.FoodEaten++
			}
		}
		return nil
	}
}

// KillVictims marks every victim sharing a cell with any hunter as dead.
func KillVictims(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		hunters := positions(w, living(component.CHunter, component.CPosition))
		if len(hunters) == 0 {
			return nil
		}
		for _, id := range w.Match(living(component.CVictim, component.CPosition)) {
			if hunters[w.Get(id, component.CPosition).(component.Position)] {
				cmd.Add(id, component.Dead{})
				env.Round.Kills++
			}
		}
		return nil
	}
}

// ConsumePowerups inverts every hunter and victim when a hero stands on a
// superfood, and schedules the inversion back after PowerupDuration.
// Entities already inside a swap window only get their deadline pushed.
func ConsumePowerups(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		heroes := positions(w, living(component.CHero, component.CPosition))
		eaten := false
		for _, id := range w.Match(living(component.CSuperfood, component.CPosition)) {
			if heroes[w.Get(id, component.CPosition).(component.Position)] {
				eaten = true
				break
			}
		}
		if !eaten {
			return nil
		}

		fireAt := env.Now.Add(env.PowerupDuration)
		invert := func(id ecs.EntityID, from, to component.Role) {
			if d, ok := w.Get(id, component.CDelayedSwapRole).(component.DelayedSwapRole); ok {
				d.FireAt = fireAt
				cmd.Add(id, d)
				return
			}
			restore := tcell.ColorDefault
			if r, ok := w.Get(id, component.CRenderable).(component.Renderable); ok {
				restore = r.Color
			}
			tint := tcell.ColorDefault
			if to == component.RoleVictim && w.Has(id, component.CVillain) {
				tint = factory.HuntedColor
			}
			cmd.Add(id, component.SwapRole{Add: to, Remove: from, Color: tint})
			cmd.Add(id, component.DelayedSwapRole{
				FireAt: fireAt,
				Swap:   component.SwapRole{Add: from, Remove: to, Color: restore},
			})
		}
		for _, id := range w.Match(living(component.CHunter)) {
			invert(id, component.RoleHunter, component.RoleVictim)
		}
		for _, id := range w.Match(living(component.CVictim)) {
			if w.Has(id, component.CHunter) {
				continue
			}
			invert(id, component.RoleVictim, component.RoleHunter)
		}
		return nil
	}
}
