package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/geom"
)

// TriggerType identifies the condition that activates an interaction.
type TriggerType string

const (
	TriggerProximity   TriggerType = "proximity"
	TriggerClick       TriggerType = "click"
	TriggerCollision   TriggerType = "collision"
	TriggerCollect     TriggerType = "collect"
	TriggerLook        TriggerType = "look"
	TriggerEnterZone   TriggerType = "enter_zone"
	TriggerExitZone    TriggerType = "exit_zone"
	TriggerTimer       TriggerType = "timer"
	TriggerConditional TriggerType = "conditional"
)

// ZoneShape is the volume shape of a zone trigger.
type ZoneShape string

const (
	ZoneSphere ZoneShape = "sphere"
	ZoneBox    ZoneShape = "box"
)

// CompareOp is the operator used by conditional triggers and custom
// win/fail conditions.
type CompareOp string

const (
	CompareEquals   CompareOp = "equals"
	CompareGreater  CompareOp = "greater"
	CompareLess     CompareOp = "less"
	CompareContains CompareOp = "contains"
)

// Trigger is a tagged union: Type selects the variant, and only that
// variant's fields are meaningful. The configuration is immutable during
// play; all derived state (in-range flags, cooldowns, fire counts) lives in
// the session, never here.
type Trigger struct {
	Type TriggerType `json:"type"`

	// proximity
	Radius  float32 `json:"radius,omitempty"`
	OnEnter bool    `json:"on_enter,omitempty"`
	OnExit  bool    `json:"on_exit,omitempty"`

	// click
	HoldMs int64 `json:"hold_ms,omitempty"`

	// collision
	Continuous bool `json:"continuous,omitempty"`

	// collect
	DestroyOnCollect bool `json:"destroy_on_collect,omitempty"`

	// look
	DurationMs int64   `json:"duration_ms,omitempty"`
	AngleDeg   float32 `json:"angle_deg,omitempty"`

	// enter_zone / exit_zone. Rotation on the owning object is stored but
	// not applied to containment tests (axis-aligned only).
	Shape ZoneShape  `json:"shape,omitempty"`
	Size  *geom.Vec3 `json:"size,omitempty"`

	// timer
	DelayMs     int64 `json:"delay_ms,omitempty"`
	Repeat      bool  `json:"repeat,omitempty"`
	RepeatCount int   `json:"repeat_count,omitempty"`

	// conditional
	Variable string    `json:"variable,omitempty"`
	Operator CompareOp `json:"operator,omitempty"`
	Value    any       `json:"value,omitempty"`
}

// External reports whether this trigger kind fires only on an external
// stimulus (pointer ray, physics contact, gaze dwell) rather than from the
// per-tick scan.
func (t *Trigger) External() bool {
	switch t.Type {
	case TriggerClick, TriggerCollision, TriggerCollect, TriggerLook:
		return true
	default:
		return false
	}
}

func (t *Trigger) Validate() error {
	el := errors.NewErrorList()

	switch t.Type {
	case TriggerProximity:
		if t.Radius <= 0 {
			el.Add(fmt.Errorf("proximity trigger radius must be positive"))
		}
		if !t.OnEnter && !t.OnExit {
			el.Add(fmt.Errorf("proximity trigger must set on_enter or on_exit"))
		}
	case TriggerEnterZone, TriggerExitZone:
		if t.Shape != ZoneSphere && t.Shape != ZoneBox {
			el.Add(fmt.Errorf("zone trigger shape %q is invalid", t.Shape))
		}
		if t.Size == nil {
			el.Add(fmt.Errorf("zone trigger size is required"))
		}
	case TriggerTimer:
		if t.DelayMs <= 0 {
			el.Add(fmt.Errorf("timer trigger delay_ms must be positive"))
		}
		if t.RepeatCount < 0 {
			el.Add(fmt.Errorf("timer trigger repeat_count cannot be negative"))
		}
	case TriggerConditional:
		if t.Variable == "" {
			el.Add(fmt.Errorf("conditional trigger variable is required"))
		}
		el.Add(t.Operator.Validate())
	case TriggerClick, TriggerCollision, TriggerCollect:
		// No required fields.
	case TriggerLook:
		if t.DurationMs < 0 {
			el.Add(fmt.Errorf("look trigger duration_ms cannot be negative"))
		}
	default:
		el.Add(fmt.Errorf("trigger type %q is invalid", t.Type))
	}

	return el.Err()
}

func (op CompareOp) Validate() error {
	switch op {
	case CompareEquals, CompareGreater, CompareLess, CompareContains:
		return nil
	default:
		return fmt.Errorf("comparison operator %q is invalid", op)
	}
}
