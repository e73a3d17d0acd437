package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// RoleSwap applies pending SwapRole components: the Remove role is dropped,
// the Add role attached, and the sprite recoloured unless Color is default.
func RoleSwap(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		for _, id := range w.Query(component.CSwapRole) {
			s := w.Get(id, component.CSwapRole).(component.SwapRole)
			cmd.Remove(id, component.CSwapRole)
			cmd.Remove(id, s.Remove.ComponentType())
			cmd.Add(id, s.Add.Component())
			if s.Color == tcell.ColorDefault {
				continue
			}
			if r, ok := w.Get(id, component.CRenderable).(component.Renderable); ok {
				r.Color = s.Color
				cmd.Add(id, r)
			}
		}
		return nil
	}
}
