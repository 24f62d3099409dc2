package host

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/messaging"
	"github.com/splatforge/go-playtest/internal/nav"
	"github.com/splatforge/go-playtest/internal/session"
	"github.com/splatforge/go-playtest/internal/storage"
)

// liveSession pairs a session with its broker plumbing. Broker handlers
// run on NATS goroutines, but the session is single-writer, so inbound
// messages queue in an inbox that the tick drains.
type liveSession struct {
	sess              *session.Session
	experienceID      string
	proximityInterval time.Duration

	// published is the event log length already streamed out.
	published int

	transition *nav.Transition
	pending    *session.SceneChange

	unsubs []func()

	mu    sync.Mutex
	inbox []inbound
}

type inbound struct {
	input    *messaging.InputMessage
	stimulus *messaging.StimulusMessage
	control  *messaging.ControlMessage
}

func (ls *liveSession) subscribe(ps messaging.PubSub) error {
	id := ls.sess.ID

	subs := []struct {
		subject string
		handler func(data []byte)
	}{
		{messaging.InputSubject(id), ls.handleInput},
		{messaging.StimulusSubject(id), ls.handleStimulus},
		{messaging.ControlSubject(id), ls.handleControl},
	}

	for _, s := range subs {
		unsub, err := ps.Subscribe(s.subject, s.handler)
		if err != nil {
			return err
		}
		ls.unsubs = append(ls.unsubs, unsub)
	}
	return nil
}

func (ls *liveSession) unsubscribe() {
	for _, u := range ls.unsubs {
		u()
	}
	ls.unsubs = nil
}

func (ls *liveSession) handleInput(data []byte) {
	var msg messaging.InputMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("malformed input message", "session", ls.sess.ID, "error", err)
		return
	}
	ls.enqueue(inbound{input: &msg})
}

func (ls *liveSession) handleStimulus(data []byte) {
	var msg messaging.StimulusMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("malformed stimulus message", "session", ls.sess.ID, "error", err)
		return
	}
	ls.enqueue(inbound{stimulus: &msg})
}

func (ls *liveSession) handleControl(data []byte) {
	var msg messaging.ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("malformed control message", "session", ls.sess.ID, "error", err)
		return
	}
	ls.enqueue(inbound{control: &msg})
}

func (ls *liveSession) enqueue(msg inbound) {
	ls.mu.Lock()
	ls.inbox = append(ls.inbox, msg)
	ls.mu.Unlock()
}

// drainInbox applies queued messages in arrival order.
func (ls *liveSession) drainInbox() {
	ls.mu.Lock()
	msgs := ls.inbox
	ls.inbox = nil
	ls.mu.Unlock()

	for _, msg := range msgs {
		switch {
		case msg.input != nil:
			ls.sess.SetInput(msg.input.Forward, msg.input.Strafe)
			ls.sess.AddRotation(msg.input.DPitch, msg.input.DYaw)
		case msg.stimulus != nil:
			ls.sess.TriggerInteraction(msg.stimulus.InteractionID, msg.stimulus.ObjectInstanceID)
		case msg.control != nil:
			switch msg.control.Op {
			case messaging.ControlPause:
				ls.sess.Pause()
			case messaging.ControlResume:
				ls.sess.Resume()
			case messaging.ControlReset:
				ls.sess.Reset()
				ls.published = 0
			case messaging.ControlStop:
				ls.sess.Stop()
			default:
				slog.Warn("unknown control op", "session", ls.sess.ID, "op", msg.control.Op)
			}
		}
	}
}

// inTransition reports whether a scene change is in flight; the simulation
// freezes while it is.
func (ls *liveSession) inTransition() bool {
	return ls.transition != nil && ls.transition.Active()
}

// beginTransition starts the fade_out → loading → fade_in walk for a scene
// change the session requested.
func (ls *liveSession) beginTransition(sc *session.SceneChange) {
	if ls.transition != nil && ls.transition.Active() {
		return
	}
	ls.pending = sc
	ls.transition = nav.NewTransition(sc.PortalID, ls.sess.SceneID, sc.SceneID)
}

// advanceTransition moves an in-flight transition one phase per tick. The
// loading phase swaps in a fresh session for the target scene with the
// preserved state applied; the session ID is kept so the renderer's
// subjects stay valid.
func (ls *liveSession) advanceTransition(scenes storage.Storer[*game.Scene]) {
	if ls.transition == nil || !ls.transition.Active() {
		return
	}

	if ls.transition.Advance() != nav.PhaseFadeIn {
		return
	}

	// Loading just completed; build the next scene's session.
	sc := ls.pending
	ls.pending = nil

	scene := scenes.Get(storage.Identifier(sc.SceneID))
	if scene == nil {
		slog.Warn("portal target scene not found", "session", ls.sess.ID, "scene", sc.SceneID)
		return
	}

	opts := []session.Opt{
		session.WithID(ls.sess.ID),
		session.WithPreserved(ls.sess.Preserved()),
		session.WithProximityInterval(ls.proximityInterval),
	}
	if sc.Spawn != nil {
		opts = append(opts, session.WithStartPosition(*sc.Spawn, scene.SpawnYaw))
	}

	next, err := session.New(ls.experienceID, sc.SceneID, ls.sess.Config(), scene, opts...)
	if err != nil {
		slog.Warn("building next scene session", "session", ls.sess.ID, "error", err)
		return
	}

	ls.sess = next
	ls.published = 0
}
