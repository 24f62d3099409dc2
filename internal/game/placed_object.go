package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/geom"
)

// Transform positions a placed object within a scene.
type Transform struct {
	Position geom.Vec3 `json:"position"`
	Rotation geom.Vec3 `json:"rotation"`
	Scale    geom.Vec3 `json:"scale"`
}

// PlacedObject is an instance of a catalog object positioned in a scene.
// It is immutable during play: visibility and collected status are tracked
// in the player state, not here, so shared scene data is never mutated by a
// running session.
type PlacedObject struct {
	// InstanceID is unique within the owning scene.
	InstanceID string `json:"instance_id"`

	// ObjectID references the catalog entry this instance was placed from.
	ObjectID string `json:"object_id"`

	Name      string            `json:"name"`
	ModelRef  string            `json:"model_ref,omitempty"`
	Transform Transform         `json:"transform"`
	Kind      string            `json:"kind,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`

	// Interactions are evaluated in declaration order every tick.
	Interactions []Interaction `json:"interactions,omitempty"`
}

func (o *PlacedObject) Validate() error {
	el := errors.NewErrorList()

	if o.InstanceID == "" {
		el.Add(fmt.Errorf("placed object instance_id is required"))
	}
	if o.ObjectID == "" {
		el.Add(fmt.Errorf("placed object object_id is required"))
	}

	seen := make(map[string]bool, len(o.Interactions))
	for i := range o.Interactions {
		ia := &o.Interactions[i]
		if err := ia.Validate(); err != nil {
			el.Add(fmt.Errorf("interaction %d: %w", i, err))
		}
		if ia.ID != "" && seen[ia.ID] {
			el.Add(fmt.Errorf("duplicate interaction id %q", ia.ID))
		}
		seen[ia.ID] = true
	}

	return el.Err()
}

// Interaction is a trigger→actions rule attached to a placed object. When
// the trigger fires, the actions execute as an atomic ordered batch.
type Interaction struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Enabled bool   `json:"enabled"`

	Trigger Trigger  `json:"trigger"`
	Actions []Action `json:"actions"`

	// CooldownMs suppresses re-firing within this window. Zero means no
	// cooldown.
	CooldownMs int64 `json:"cooldown_ms,omitempty"`

	// MaxTriggers permanently disables the interaction after this many
	// fires. Zero means unlimited.
	MaxTriggers int `json:"max_triggers,omitempty"`
}

func (i *Interaction) Validate() error {
	el := errors.NewErrorList()

	if i.ID == "" {
		el.Add(fmt.Errorf("interaction id is required"))
	}
	if len(i.Actions) == 0 {
		el.Add(fmt.Errorf("interaction must have at least one action"))
	}
	if i.CooldownMs < 0 {
		el.Add(fmt.Errorf("cooldown_ms cannot be negative"))
	}
	if i.MaxTriggers < 0 {
		el.Add(fmt.Errorf("max_triggers cannot be negative"))
	}

	el.Add(i.Trigger.Validate())
	for n := range i.Actions {
		if err := i.Actions[n].Validate(); err != nil {
			el.Add(fmt.Errorf("action %d: %w", n, err))
		}
	}

	return el.Err()
}
