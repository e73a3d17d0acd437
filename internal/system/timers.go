package system

import (
	"time"

	"pascman/internal/component"
	"pascman/internal/ecs"
)

// DelayedSwaps issues each held SwapRole once its deadline has passed.
func DelayedSwaps(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		for _, id := range w.Query(component.CDelayedSwapRole) {
			d := w.Get(id, component.CDelayedSwapRole).(component.DelayedSwapRole)
			if env.Now.Before(d.FireAt) {
				continue
			}
			cmd.Add(id, d.Swap)
			cmd.Remove(id, component.CDelayedSwapRole)
		}
		return nil
	}
}

// cooldown reports whether b may act at now and returns the brain re-armed
// for its next turn.
func cooldown(b component.Brain, now time.Time) (component.Brain, bool) {
	if !b.Due(now) {
		return b, false
	}
	b.NextAt = now.Add(b.Interval)
	return b, true
}
