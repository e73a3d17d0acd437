package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"
)

var controlled = ecs.Filter{
	All:  []ecs.ComponentType{component.CControlled, component.CPosition},
	None: []ecs.ComponentType{component.CDead},
}

// Input turns this tick's direction key into a step intention on every
// keyboard-controlled entity.
func Input(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		if !env.KeyPressed {
			return nil
		}
		for _, id := range w.Match(controlled) {
			cmd.Add(id, component.MoveDir(env.Key))
		}
		return nil
	}
}
