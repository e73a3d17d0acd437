package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"
)

// Movement resolves IntendsToMove. The facing always turns to the attempted
// heading; the position changes only when the candidate cell can be entered.
// The intention is consumed either way.
func Movement(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		for _, id := range w.Query(component.CIntendsToMove) {
			intent := w.Get(id, component.CIntendsToMove).(component.IntendsToMove)
			cmd.Remove(id, component.CIntendsToMove)

			pos, ok := w.Get(id, component.CPosition).(component.Position)
			if !ok {
				continue
			}
			dest, dir, turned := resolve(pos, intent)
			if turned {
				cmd.Add(id, dir)
			}
			if env.Map.CanEnter(dest.X, dest.Y) {
				cmd.Add(id, dest)
			}
		}
		return nil
	}
}

// resolve returns the candidate cell and heading for an intention. turned is
// false only for a target equal to the current cell.
func resolve(pos component.Position, intent component.IntendsToMove) (component.Position, component.Direction, bool) {
	if !intent.HasTarget {
		return pos.Step(intent.Dir), intent.Dir, true
	}
	dir, ok := component.Towards(intent.Target.X-pos.X, intent.Target.Y-pos.Y)
	return intent.Target, dir, ok
}
