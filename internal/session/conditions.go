package session

import (
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

// CheckWinConditions returns the IDs of all currently satisfied win
// conditions. Pure function of state and config; the session re-runs it
// every tick.
func CheckWinConditions(st *PlayerState, cfg *game.GameConfig) []string {
	var ids []string
	for i := range cfg.WinConditions {
		c := &cfg.WinConditions[i]
		if conditionMet(c, st, false) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// CheckFailConditions returns the IDs of all currently satisfied fail
// conditions. A configured global time limit contributes the synthetic
// "global_time_limit" ID once elapsed time exceeds it, regardless of the
// fail condition list.
func CheckFailConditions(st *PlayerState, cfg *game.GameConfig) []string {
	var ids []string
	for i := range cfg.FailConditions {
		c := &cfg.FailConditions[i]
		if conditionMet(c, st, true) {
			ids = append(ids, c.ID)
		}
	}
	if cfg.TimeLimitMs > 0 && st.ElapsedMs >= cfg.TimeLimitMs {
		ids = append(ids, game.GlobalTimeLimitID)
	}
	return ids
}

func conditionMet(c *game.Condition, st *PlayerState, asFail bool) bool {
	switch c.Type {
	case game.ConditionCollectAll:
		// With no explicit item list the condition degrades to "inventory
		// non-empty"; the config carries no total collectible count.
		if len(c.ItemIDs) == 0 {
			return len(st.Inventory) > 0
		}
		for _, id := range c.ItemIDs {
			if !st.HasItem(id) {
				return false
			}
		}
		return true

	case game.ConditionCollectCount:
		return st.ItemCount() >= c.Count

	case game.ConditionReachScore:
		return st.Score >= c.Score

	case game.ConditionCompleteObjectives:
		return objectivesMet(c, st)

	case game.ConditionReachLocation:
		if c.Position != nil {
			return geom.InSphere(st.Position, *c.Position, c.Radius)
		}
		return st.VisitedScenes[c.SceneID]

	case game.ConditionTimeLimit:
		// As a win condition this is a "still in time" gate; as a fail
		// condition it is the inverse, armed by fail_on_expire.
		if asFail {
			return c.FailOnExpire && st.ElapsedMs >= c.LimitMs
		}
		return st.ElapsedMs < c.LimitMs

	case game.ConditionCustom:
		return compare(st.Variables[c.Variable], c.Operator, c.Value)

	default:
		return false
	}
}

func objectivesMet(c *game.Condition, st *PlayerState) bool {
	if len(c.ObjectiveIDs) == 0 {
		return false
	}
	for _, id := range c.ObjectiveIDs {
		done := st.Objectives[id] != nil && st.Objectives[id].Completed
		if c.RequireAll && !done {
			return false
		}
		if !c.RequireAll && done {
			return true
		}
	}
	return c.RequireAll
}

// winSatisfied reports whether every non-optional win condition is in the
// satisfied set. An experience with no win conditions can never be won
// through conditions (only abandoned), so an empty list is not a win.
func winSatisfied(cfg *game.GameConfig, satisfied []string) bool {
	if len(cfg.WinConditions) == 0 {
		return false
	}
	set := make(map[string]bool, len(satisfied))
	for _, id := range satisfied {
		set[id] = true
	}
	required := 0
	for i := range cfg.WinConditions {
		c := &cfg.WinConditions[i]
		if c.Optional {
			continue
		}
		required++
		if !set[c.ID] {
			return false
		}
	}
	// All conditions optional: any one satisfied wins.
	if required == 0 {
		return len(satisfied) > 0
	}
	return true
}
