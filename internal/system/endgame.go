package system

import (
	"pascman/internal/component"
	"pascman/internal/ecs"
)

// EndGame judges the round. No hero left means Lost, which wins over no food
// left meaning Won. Each count is only judged once the round has seen one.
func EndGame(env *Env) ecs.SystemFunc {
	return func(w *ecs.World, cmd *ecs.CommandBuffer) error {
		env.Verdict = Judge(env.Round, w.Count(living(component.CHero)), w.Count(living(component.CFood)))
		return nil
	}
}

// Judge is the end condition over the live hero and food counts.
func Judge(r Round, heroes, food int) Verdict {
	switch {
	case r.HeroSpawned && heroes == 0:
		return VerdictLost
	case r.FoodSpawned && food == 0:
		return VerdictWon
	}
	return VerdictNone
}
