// Package events defines the runtime event log records. The event log is
// the single channel through which presentation layers observe simulation
// changes: consumers diff against the last-seen log length, which gives
// replay-safe, at-least-once delivery without callbacks.
package events

import "github.com/splatforge/go-playtest/internal/geom"

// Type identifies an event variant.
type Type string

const (
	ScoreChanged       Type = "score_changed"
	ItemCollected      Type = "item_collected"
	ItemRemoved        Type = "item_removed"
	ObjectiveProgress  Type = "objective_progress"
	ObjectiveCompleted Type = "objective_completed"
	MessageShown       Type = "message_shown"
	SoundPlayed        Type = "sound_played"
	AnimationPlayed    Type = "animation_played"
	ParticlesEmitted   Type = "particles_emitted"
	Vibrated           Type = "vibrated"
	URLOpened          Type = "url_opened"
	Teleported         Type = "teleported"
	SceneChanged       Type = "scene_changed"
	VariableChanged    Type = "variable_changed"
	WinConditionMet    Type = "win_condition_met"
	FailConditionMet   Type = "fail_condition_met"
	GameWon            Type = "game_won"
	GameFailed         Type = "game_failed"
	InteractionFired   Type = "interaction_triggered"
	ObjectShown        Type = "show_object"
	ObjectHidden       Type = "hide_object"
	PortalLocked       Type = "portal_locked"
)

// Event is an immutable, append-only log record. Type selects the variant;
// only that variant's payload fields are set. At is simulated milliseconds
// since session start, never wall-clock, so two runs with the same input
// produce identical logs.
type Event struct {
	Type Type  `json:"type"`
	At   int64 `json:"at"`

	// Source interaction, when the event was produced by one firing.
	ObjectInstanceID string `json:"object_instance_id,omitempty"`
	InteractionID    string `json:"interaction_id,omitempty"`

	// TargetID is the object a show_object/hide_object/play_animation acted
	// on, as opposed to the object whose interaction fired.
	TargetID string `json:"target_id,omitempty"`

	// score_changed
	OldScore int `json:"old_score,omitempty"`
	NewScore int `json:"new_score,omitempty"`
	Delta    int `json:"delta,omitempty"`

	// item_collected / item_removed
	ItemID   string `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	// objective_progress / objective_completed
	ObjectiveID string  `json:"objective_id,omitempty"`
	Progress    float32 `json:"progress,omitempty"`

	// message_shown
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`

	// sound_played
	SoundURL string  `json:"sound_url,omitempty"`
	Volume   float32 `json:"volume,omitempty"`
	Loop     bool    `json:"loop,omitempty"`

	// animation_played / particles_emitted / url_opened / vibrated
	Animation string `json:"animation,omitempty"`
	Effect    string `json:"effect,omitempty"`
	URL       string `json:"url,omitempty"`
	NewTab    bool   `json:"new_tab,omitempty"`
	VibrateMs int64  `json:"vibrate_ms,omitempty"`

	// teleported (destination) and scene_changed (spawn)
	Position *geom.Vec3 `json:"position,omitempty"`

	// scene_changed / portal_locked
	SceneID  string `json:"scene_id,omitempty"`
	PortalID string `json:"portal_id,omitempty"`

	// variable_changed
	Variable string `json:"variable,omitempty"`
	Value    any    `json:"value,omitempty"`

	// win_condition_met / fail_condition_met
	ConditionID string `json:"condition_id,omitempty"`
}
