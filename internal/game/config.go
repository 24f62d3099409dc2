package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/geom"
)

// GameConfig is the author-time configuration for an experience. It is
// immutable for the duration of a session; the publishing pipeline is
// responsible for producing a well-formed config, so beyond basic shape
// checks at load time the runtime trusts it.
type GameConfig struct {
	Scoring   ScoringConfig   `json:"scoring"`
	Inventory InventoryConfig `json:"inventory"`

	WinConditions  []Condition `json:"win_conditions,omitempty"`
	FailConditions []Condition `json:"fail_conditions,omitempty"`
	Objectives     []Objective `json:"objectives,omitempty"`
	Rewards        []Reward    `json:"rewards,omitempty"`

	// TimeLimitMs, when positive, contributes a synthetic
	// "global_time_limit" fail condition once elapsed time exceeds it,
	// independent of the fail_conditions list.
	TimeLimitMs int64 `json:"time_limit_ms,omitempty"`

	WinMessage  string   `json:"win_message,omitempty"`
	FailMessage string   `json:"fail_message,omitempty"`
	OnWin       []Action `json:"on_win,omitempty"`
	OnFail      []Action `json:"on_fail,omitempty"`
}

// ScoringConfig controls the score field of player state.
type ScoringConfig struct {
	StartingScore int  `json:"starting_score,omitempty"`
	AllowNegative bool `json:"allow_negative,omitempty"`
}

// InventoryConfig controls inventory behavior. When Stackable is set,
// collecting an item already held increments its quantity instead of
// appending a second entry; item_id is the stacking key.
type InventoryConfig struct {
	MaxItems  int  `json:"max_items,omitempty"`
	Stackable bool `json:"stackable,omitempty"`
}

// Objective is a named, trackable sub-goal distinct from raw win
// conditions.
type Objective struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Reward is granted by the host when the session is won. The runtime only
// carries it; realizing rewards is the publishing system's concern.
type Reward struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Points int    `json:"points,omitempty"`
}

// ConditionType identifies a win or fail condition variant.
type ConditionType string

const (
	ConditionCollectAll         ConditionType = "collect_all"
	ConditionCollectCount       ConditionType = "collect_count"
	ConditionReachScore         ConditionType = "reach_score"
	ConditionCompleteObjectives ConditionType = "complete_objectives"
	ConditionReachLocation      ConditionType = "reach_location"
	ConditionTimeLimit          ConditionType = "time_limit"
	ConditionCustom             ConditionType = "custom"
)

// GlobalTimeLimitID is the synthetic fail condition ID reported when
// GameConfig.TimeLimitMs expires.
const GlobalTimeLimitID = "global_time_limit"

// Condition is a tagged union: Type selects the variant. Optional
// conditions are evaluated and reported but do not gate the win.
type Condition struct {
	ID       string        `json:"id"`
	Type     ConditionType `json:"type"`
	Optional bool          `json:"optional,omitempty"`

	// collect_all. An empty list is satisfied by any non-empty inventory;
	// the config does not track the scene's total collectible count.
	ItemIDs []string `json:"item_ids,omitempty"`

	// collect_count
	Count int `json:"count,omitempty"`

	// reach_score
	Score int `json:"score,omitempty"`

	// complete_objectives
	ObjectiveIDs []string `json:"objective_ids,omitempty"`
	RequireAll   bool     `json:"require_all,omitempty"`

	// reach_location: either a position+radius sphere test or a visited
	// scene check.
	Position *geom.Vec3 `json:"position,omitempty"`
	Radius   float32    `json:"radius,omitempty"`
	SceneID  string     `json:"scene_id,omitempty"`

	// time_limit
	LimitMs      int64 `json:"limit_ms,omitempty"`
	FailOnExpire bool  `json:"fail_on_expire,omitempty"`

	// custom
	Variable string    `json:"variable,omitempty"`
	Operator CompareOp `json:"operator,omitempty"`
	Value    any       `json:"value,omitempty"`
}

func (c *Condition) Validate() error {
	el := errors.NewErrorList()

	if c.ID == "" {
		el.Add(fmt.Errorf("condition id is required"))
	}

	switch c.Type {
	case ConditionCollectAll:
	case ConditionCollectCount:
		if c.Count <= 0 {
			el.Add(fmt.Errorf("collect_count condition count must be positive"))
		}
	case ConditionReachScore:
	case ConditionCompleteObjectives:
		if len(c.ObjectiveIDs) == 0 {
			el.Add(fmt.Errorf("complete_objectives condition needs objective_ids"))
		}
	case ConditionReachLocation:
		if c.Position == nil && c.SceneID == "" {
			el.Add(fmt.Errorf("reach_location condition needs a position or scene_id"))
		}
		if c.Position != nil && c.Radius <= 0 {
			el.Add(fmt.Errorf("reach_location condition radius must be positive"))
		}
	case ConditionTimeLimit:
		if c.LimitMs <= 0 {
			el.Add(fmt.Errorf("time_limit condition limit_ms must be positive"))
		}
	case ConditionCustom:
		if c.Variable == "" {
			el.Add(fmt.Errorf("custom condition variable is required"))
		}
		el.Add(c.Operator.Validate())
	default:
		el.Add(fmt.Errorf("condition type %q is invalid", c.Type))
	}

	return el.Err()
}

func (c *GameConfig) Validate() error {
	el := errors.NewErrorList()

	if c.TimeLimitMs < 0 {
		el.Add(fmt.Errorf("time_limit_ms cannot be negative"))
	}
	if c.Inventory.MaxItems < 0 {
		el.Add(fmt.Errorf("inventory max_items cannot be negative"))
	}

	ids := make(map[string]bool)
	for i := range c.WinConditions {
		if err := c.WinConditions[i].Validate(); err != nil {
			el.Add(fmt.Errorf("win condition %d: %w", i, err))
		}
		if id := c.WinConditions[i].ID; ids[id] {
			el.Add(fmt.Errorf("duplicate condition id %q", id))
		} else {
			ids[id] = true
		}
	}
	for i := range c.FailConditions {
		if err := c.FailConditions[i].Validate(); err != nil {
			el.Add(fmt.Errorf("fail condition %d: %w", i, err))
		}
		if id := c.FailConditions[i].ID; ids[id] {
			el.Add(fmt.Errorf("duplicate condition id %q", id))
		} else {
			ids[id] = true
		}
	}

	for i, o := range c.Objectives {
		if o.ID == "" {
			el.Add(fmt.Errorf("objective %d: id is required", i))
		}
	}

	return el.Err()
}

// Objective returns the objective with the given ID, or nil.
func (c *GameConfig) Objective(id string) *Objective {
	for i := range c.Objectives {
		if c.Objectives[i].ID == id {
			return &c.Objectives[i]
		}
	}
	return nil
}
