// Package host owns live playtest sessions: it creates them from published
// experiences, feeds them driver ticks and inbound player input, streams
// their event logs out over the broker, and walks portal transitions
// between scenes.
package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/messaging"
	"github.com/splatforge/go-playtest/internal/session"
	"github.com/splatforge/go-playtest/internal/storage"
)

// CreateSubject is where renderers request a new session:
// {"experience_id": "...", "session_id": "..."} (session_id optional).
const CreateSubject = "playtest.create"

const subscribeRetryInterval = 500 * time.Millisecond

// CreateMessage is the payload accepted on CreateSubject.
type CreateMessage struct {
	ExperienceID string `json:"experience_id"`
	SessionID    string `json:"session_id,omitempty"`
}

// SessionManager runs every live session. It is a service worker (Start
// maintains broker subscriptions) and a driver manager (Tick advances the
// simulations).
type SessionManager struct {
	mu sync.Mutex

	experiences storage.Storer[*game.Experience]
	scenes      storage.Storer[*game.Scene]

	ps     messaging.PubSub
	stream *messaging.EventStream

	proximityInterval time.Duration

	sessions map[string]*liveSession
}

func NewSessionManager(experiences storage.Storer[*game.Experience], scenes storage.Storer[*game.Scene], ps messaging.PubSub, proximityInterval time.Duration) *SessionManager {
	return &SessionManager{
		experiences:       experiences,
		scenes:            scenes,
		ps:                ps,
		stream:            messaging.NewEventStream(ps),
		proximityInterval: proximityInterval,
		sessions:          map[string]*liveSession{},
	}
}

// Start subscribes to the session-creation subject and holds the
// subscription until the context ends. The broker worker starts
// concurrently, so subscription is retried until it comes up.
func (m *SessionManager) Start(ctx context.Context) error {
	var unsub func()
	ticker := time.NewTicker(subscribeRetryInterval)
	defer ticker.Stop()

	for unsub == nil {
		u, err := m.ps.Subscribe(CreateSubject, m.handleCreate)
		if err == nil {
			unsub = u
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	defer unsub()

	slog.InfoContext(ctx, "session manager ready", "subject", CreateSubject)

	<-ctx.Done()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ls := range m.sessions {
		ls.unsubscribe()
		delete(m.sessions, id)
	}
	return nil
}

func (m *SessionManager) handleCreate(data []byte) {
	var msg CreateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("malformed create message", "error", err)
		return
	}
	if _, err := m.CreateSession(msg.ExperienceID, msg.SessionID); err != nil {
		slog.Warn("creating session", "experience", msg.ExperienceID, "error", err)
	}
}

// CreateSession starts a session at the experience's start scene and wires
// its input, stimulus, and control subjects. A supplied session ID keeps
// subject names predictable for the requesting renderer; otherwise one is
// generated.
func (m *SessionManager) CreateSession(experienceID, sessionID string) (*session.Session, error) {
	exp := m.experiences.Get(storage.Identifier(experienceID))
	if exp == nil {
		return nil, fmt.Errorf("experience %q not found", experienceID)
	}
	scene := m.scenes.Get(storage.Identifier(exp.StartSceneID))
	if scene == nil {
		return nil, fmt.Errorf("scene %q not found", exp.StartSceneID)
	}

	opts := []session.Opt{session.WithProximityInterval(m.proximityInterval)}
	if sessionID != "" {
		opts = append(opts, session.WithID(sessionID))
	}

	sess, err := session.New(experienceID, exp.StartSceneID, &exp.Config, scene, opts...)
	if err != nil {
		return nil, err
	}

	ls := &liveSession{sess: sess, experienceID: experienceID, proximityInterval: m.proximityInterval}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[sess.ID]; exists {
		return nil, fmt.Errorf("session %q already exists", sess.ID)
	}
	if err := ls.subscribe(m.ps); err != nil {
		ls.unsubscribe()
		return nil, err
	}
	m.sessions[sess.ID] = ls

	slog.Info("session created", "session", sess.ID, "experience", experienceID, "scene", exp.StartSceneID)
	return sess, nil
}

// Session returns the live session with the given ID, or nil.
func (m *SessionManager) Session(id string) *session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ls, ok := m.sessions[id]; ok {
		return ls.sess
	}
	return nil
}

// Tick advances every live session by dt seconds: inbound messages first,
// then the simulation, then event publishing and any portal transition.
// Sessions tick in sorted ID order so a multi-session frame is
// deterministic.
func (m *SessionManager) Tick(ctx context.Context, dt float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ls := m.sessions[id]

		ls.drainInbox()
		if ls.inTransition() {
			ls.advanceTransition(m.scenes)
		} else {
			ls.sess.Tick(dt)
		}

		if evs := ls.sess.EventsSince(ls.published); len(evs) > 0 {
			if err := m.stream.PublishEvents(id, evs); err != nil {
				slog.WarnContext(ctx, "publishing events", "session", id, "error", err)
			}
			ls.published = len(ls.sess.Events())
		}

		if sc := ls.sess.TakeSceneChange(); sc != nil {
			ls.beginTransition(sc)
		}

		if ls.sess.Stopped() {
			ls.unsubscribe()
			delete(m.sessions, id)
			slog.InfoContext(ctx, "session stopped", "session", id)
		}
	}

	return nil
}
