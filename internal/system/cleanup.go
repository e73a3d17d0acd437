package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/factory"
)

// transient components are not carried over when a villain respawns
var transient = map[ecs.ComponentType]bool{
	component.CDead:            true,
	component.CIntendsToMove:   true,
	component.CSwapRole:        true,
	component.CDelayedSwapRole: true,
	component.CSpecial:         true,
	component.CVictim:          true,
}

// Cleanup destroys every dead entity. With RespawnVillains set, a dead
// villain comes back at its home cell as a hunter, keeping its external id.
func Cleanup(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		for _, id := range w.Query(component.CDead) {
			if env.RespawnVillains && w.Has(id, component.CVillain) && w.Has(id, component.CHome) {
				cmd.Spawn(respawned(w, id, env)...)
			}
			cmd.Destroy(id)
		}
		return nil
	}
}

func respawned(w *ecs.World, id ecs.EntityID, env *Env) []ecs.Component {
	home := w.Get(id, component.CHome).(component.Home)
	var cs []ecs.Component
	for _, c := range w.Components(id) {
		if transient[c.Type()] {
			continue
		}
		switch v := c.(type) {
		case component.Position:
			c = component.Position{X: home.X, Y: home.Y}
		case component.Direction:
			c = component.Down
		case component.Renderable:
			v.Color = factory.VillainColor
			c = v
		case component.Brain:
			v.NextAt = env.Now.Add(v.Interval)
			c = v
		}
		cs = append(cs, c)
	}
	if !w.Has(id, component.CHunter) {
		cs = append(cs, component.Hunter{})
	}
	return cs
}
