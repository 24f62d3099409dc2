package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/splatforge/go-playtest/internal/events"
)

// Subject layout, per session:
//
//	playtest.<sessionID>.events   — runtime events, host → renderer
//	playtest.<sessionID>.input    — movement/rotation, renderer → host
//	playtest.<sessionID>.stimulus — click/collision/collect/look hits
//	playtest.<sessionID>.control  — pause/resume/reset/stop
func EventSubject(sessionID string) string {
	return fmt.Sprintf("playtest.%s.events", sessionID)
}

func InputSubject(sessionID string) string {
	return fmt.Sprintf("playtest.%s.input", sessionID)
}

func StimulusSubject(sessionID string) string {
	return fmt.Sprintf("playtest.%s.stimulus", sessionID)
}

func ControlSubject(sessionID string) string {
	return fmt.Sprintf("playtest.%s.control", sessionID)
}

// PubSub is the broker surface the stream needs.
type PubSub interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// InputMessage carries held movement input and rotation deltas from the
// renderer.
type InputMessage struct {
	Forward float32 `json:"forward"`
	Strafe  float32 `json:"strafe"`
	DPitch  float32 `json:"d_pitch,omitempty"`
	DYaw    float32 `json:"d_yaw,omitempty"`
}

// StimulusMessage reports an external trigger hit detected by the
// renderer: a pointer ray, physics contact, or gaze dwell on an object.
type StimulusMessage struct {
	InteractionID    string `json:"interaction_id"`
	ObjectInstanceID string `json:"object_instance_id"`
}

// ControlMessage carries a session lifecycle request.
type ControlMessage struct {
	Op string `json:"op"`
}

const (
	ControlPause  = "pause"
	ControlResume = "resume"
	ControlReset  = "reset"
	ControlStop   = "stop"
)

// EventStream publishes runtime events to a session's event subject, one
// message per event so consumers can react incrementally.
type EventStream struct {
	ps PubSub
}

func NewEventStream(ps PubSub) *EventStream {
	return &EventStream{ps: ps}
}

func (s *EventStream) PublishEvents(sessionID string, evs []events.Event) error {
	subject := EventSubject(sessionID)
	for i := range evs {
		data, err := json.Marshal(&evs[i])
		if err != nil {
			return fmt.Errorf("marshalling event %s: %w", evs[i].Type, err)
		}
		if err := s.ps.Publish(subject, data); err != nil {
			return fmt.Errorf("publishing event %s: %w", evs[i].Type, err)
		}
	}
	return nil
}
