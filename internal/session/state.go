package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

// DefaultSpeed is the player movement speed in scene units per second when
// the experience does not override it.
const DefaultSpeed = 3.0

// CollectedItem is one inventory entry. When the inventory is stackable,
// ItemID is the stacking key and Quantity counts the stack.
type CollectedItem struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	ObjectID    string `json:"object_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Quantity    int    `json:"quantity"`
	CollectedAt int64  `json:"collected_at"`
}

// ObjectiveProgress tracks one objective's runtime progress.
type ObjectiveProgress struct {
	Completed   bool    `json:"completed"`
	Progress    float32 `json:"progress"`
	CompletedAt int64   `json:"completed_at,omitempty"`
}

// PlayerState is the single source of truth for one play session. It is
// mutated only by the session's executor and per-tick movement/timer logic,
// and frozen once HasWon or HasFailed becomes true.
type PlayerState struct {
	Position geom.Vec3 `json:"position"`
	Rotation geom.Rot  `json:"rotation"`
	Speed    float32   `json:"speed"`

	Score      int                           `json:"score"`
	Inventory  []CollectedItem               `json:"inventory"`
	Objectives map[string]*ObjectiveProgress `json:"objectives"`

	VisitedScenes map[string]bool `json:"visited_scenes"`
	Variables     map[string]any  `json:"variables"`

	// HiddenObjects and CollectedObjects externalize the only mutable
	// aspects of placed objects, so shared scene data stays untouched.
	HiddenObjects    map[string]bool `json:"hidden_objects"`
	CollectedObjects map[string]bool `json:"collected_objects"`

	StartedAt time.Time `json:"started_at"`

	// ElapsedMs is simulated time: it advances only while the session is
	// unpaused and not complete, scaled by the debug time scale.
	ElapsedMs int64 `json:"elapsed_ms"`

	Paused bool `json:"paused"`
	Alive  bool `json:"alive"`

	HasWon    bool `json:"has_won"`
	HasFailed bool `json:"has_failed"`

	WinConditionsMet  []string `json:"win_conditions_met"`
	FailConditionsMet []string `json:"fail_conditions_met"`
}

// NewPlayerState builds the starting state for a session. Every field has a
// safe default; construction cannot fail.
func NewPlayerState(spawn geom.Vec3, yaw float32, cfg *game.GameConfig) *PlayerState {
	return &PlayerState{
		Position:         spawn,
		Rotation:         geom.Rot{Yaw: yaw},
		Speed:            DefaultSpeed,
		Score:            cfg.Scoring.StartingScore,
		Objectives:       make(map[string]*ObjectiveProgress),
		VisitedScenes:    make(map[string]bool),
		Variables:        make(map[string]any),
		HiddenObjects:    make(map[string]bool),
		CollectedObjects: make(map[string]bool),
		StartedAt:        time.Now(),
		Alive:            true,
	}
}

// Complete reports whether the session reached a terminal state.
func (p *PlayerState) Complete() bool {
	return p.HasWon || p.HasFailed
}

// Item returns the inventory entry with the given item ID, or nil.
func (p *PlayerState) Item(itemID string) *CollectedItem {
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID {
			return &p.Inventory[i]
		}
	}
	return nil
}

// HasItem reports whether the inventory holds the given item ID.
func (p *PlayerState) HasItem(itemID string) bool {
	return p.Item(itemID) != nil
}

// ItemCount returns the sum of all inventory quantities.
func (p *PlayerState) ItemCount() int {
	n := 0
	for i := range p.Inventory {
		n += p.Inventory[i].Quantity
	}
	return n
}

// addItem appends an item or, when stacking, bumps the existing entry.
// Returns the affected entry.
func (p *PlayerState) addItem(itemID, objectID, name string, qty int, stack bool) *CollectedItem {
	if qty <= 0 {
		qty = 1
	}
	if stack {
		if it := p.Item(itemID); it != nil {
			it.Quantity += qty
			return it
		}
	}
	p.Inventory = append(p.Inventory, CollectedItem{
		ID:          uuid.New().String(),
		ItemID:      itemID,
		ObjectID:    objectID,
		Name:        name,
		Quantity:    qty,
		CollectedAt: p.ElapsedMs,
	})
	return &p.Inventory[len(p.Inventory)-1]
}

// removeItem removes up to qty of an item, dropping the entry when its
// quantity reaches zero. Returns the quantity actually removed.
func (p *PlayerState) removeItem(itemID string, qty int) int {
	if qty <= 0 {
		qty = 1
	}
	for i := range p.Inventory {
		if p.Inventory[i].ItemID != itemID {
			continue
		}
		removed := qty
		if p.Inventory[i].Quantity <= qty {
			removed = p.Inventory[i].Quantity
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		} else {
			p.Inventory[i].Quantity -= qty
		}
		return removed
	}
	return 0
}
