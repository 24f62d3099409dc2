package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/geom"
)

// ActionType identifies the effect an action applies when its interaction
// fires.
type ActionType string

const (
	ActionPlaySound         ActionType = "play_sound"
	ActionShowMessage       ActionType = "show_message"
	ActionAddScore          ActionType = "add_score"
	ActionAddInventory      ActionType = "add_inventory"
	ActionShowObject        ActionType = "show_object"
	ActionHideObject        ActionType = "hide_object"
	ActionTeleport          ActionType = "teleport"
	ActionPlayAnimation     ActionType = "play_animation"
	ActionChangeScene       ActionType = "change_scene"
	ActionSetVariable       ActionType = "set_variable"
	ActionEmitParticles     ActionType = "emit_particles"
	ActionVibrate           ActionType = "vibrate"
	ActionOpenURL           ActionType = "open_url"
	ActionCompleteObjective ActionType = "complete_objective"
)

// VarOp is the mutation a set_variable action applies.
type VarOp string

const (
	VarSet      VarOp = "set"
	VarAdd      VarOp = "add"
	VarSubtract VarOp = "subtract"
	VarToggle   VarOp = "toggle"
)

// Action is a tagged union: Type selects the variant. Actions are pure
// data; the session's executor applies them to player state.
type Action struct {
	Type ActionType `json:"type"`

	// play_sound
	SoundURL string  `json:"sound_url,omitempty"`
	Volume   float32 `json:"volume,omitempty"`
	Loop     bool    `json:"loop,omitempty"`

	// show_message. The message text is a template: player variables,
	// score, and inventory count are in scope when it renders.
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`

	// add_score
	Points int `json:"points,omitempty"`

	// add_inventory
	ItemID   string `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	// show_object / hide_object / play_animation target
	TargetID string `json:"target_id,omitempty"`

	// teleport
	Destination *geom.Vec3 `json:"destination,omitempty"`

	// play_animation
	Animation string `json:"animation,omitempty"`

	// change_scene
	SceneID string     `json:"scene_id,omitempty"`
	Spawn   *geom.Vec3 `json:"spawn,omitempty"`

	// set_variable
	Variable  string `json:"variable,omitempty"`
	Operation VarOp  `json:"operation,omitempty"`
	Value     any    `json:"value,omitempty"`

	// emit_particles
	Effect string `json:"effect,omitempty"`

	// vibrate
	VibrateMs int64 `json:"vibrate_ms,omitempty"`

	// open_url
	URL    string `json:"url,omitempty"`
	NewTab bool   `json:"new_tab,omitempty"`

	// complete_objective
	ObjectiveID string `json:"objective_id,omitempty"`
}

func (a *Action) Validate() error {
	el := errors.NewErrorList()

	switch a.Type {
	case ActionPlaySound:
		if a.SoundURL == "" {
			el.Add(fmt.Errorf("play_sound action sound_url is required"))
		}
	case ActionShowMessage:
		if a.Message == "" {
			el.Add(fmt.Errorf("show_message action message is required"))
		}
	case ActionAddScore:
		// Zero-point actions are allowed; they still emit an event.
	case ActionAddInventory:
		if a.ItemID == "" {
			el.Add(fmt.Errorf("add_inventory action item_id is required"))
		}
		if a.Quantity < 0 {
			el.Add(fmt.Errorf("add_inventory action quantity cannot be negative"))
		}
	case ActionShowObject, ActionHideObject:
		if a.TargetID == "" {
			el.Add(fmt.Errorf("%s action target_id is required", a.Type))
		}
	case ActionTeleport:
		if a.Destination == nil {
			el.Add(fmt.Errorf("teleport action destination is required"))
		}
	case ActionPlayAnimation:
		if a.Animation == "" {
			el.Add(fmt.Errorf("play_animation action animation is required"))
		}
	case ActionChangeScene:
		if a.SceneID == "" {
			el.Add(fmt.Errorf("change_scene action scene_id is required"))
		}
	case ActionSetVariable:
		if a.Variable == "" {
			el.Add(fmt.Errorf("set_variable action variable is required"))
		}
		switch a.Operation {
		case VarSet, VarAdd, VarSubtract, VarToggle:
		default:
			el.Add(fmt.Errorf("set_variable operation %q is invalid", a.Operation))
		}
	case ActionEmitParticles:
		if a.Effect == "" {
			el.Add(fmt.Errorf("emit_particles action effect is required"))
		}
	case ActionVibrate:
		if a.VibrateMs <= 0 {
			el.Add(fmt.Errorf("vibrate action vibrate_ms must be positive"))
		}
	case ActionOpenURL:
		if a.URL == "" {
			el.Add(fmt.Errorf("open_url action url is required"))
		}
	case ActionCompleteObjective:
		if a.ObjectiveID == "" {
			el.Add(fmt.Errorf("complete_objective action objective_id is required"))
		}
	default:
		el.Add(fmt.Errorf("action type %q is invalid", a.Type))
	}

	return el.Err()
}
