// Package session implements the playtest runtime: the player state model,
// trigger evaluation, action execution, win/fail checking, and the
// append-only event log, tied together by a per-tick update loop.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/splatforge/go-playtest/internal/events"
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

// DebugState holds playtest-only overrides, applied before the normal tick
// logic: invincibility skips fail-condition application entirely.
type DebugState struct {
	TimeScale          float32
	Invincible         bool
	UnlimitedInventory bool
}

// Input is the accumulated movement input for the next tick. Forward and
// strafe are held values in [-1, 1]; pitch/yaw deltas are consumed by the
// tick that applies them.
type Input struct {
	Forward float32
	Strafe  float32
	DPitch  float32
	DYaw    float32
}

// SceneChange is a pending request to move the player to another scene,
// produced by a change_scene action or a portal entry. The host consumes
// it, loads the target scene, and starts a fresh session with the
// preserved state applied.
type SceneChange struct {
	SceneID  string
	Spawn    *geom.Vec3
	PortalID string
}

// Session owns one play-through of one scene. It is designed for
// single-threaded, single-writer access from one render/update loop; it is
// not safe for concurrent ticking without external locking. Multiple
// sessions are fully independent — cross-scene continuity happens through
// explicit preserved-state snapshots, never shared references.
type Session struct {
	ID           string
	ExperienceID string
	SceneID      string

	cfg   *game.GameConfig
	scene *game.Scene

	spawn       geom.Vec3
	spawnYaw    float32
	preserved   *PreservedState
	proximityMs int64

	state  *PlayerState
	istate map[interactionKey]*InteractionState
	debug  DebugState
	input  Input

	// log is append-only and never truncated during a session; readers
	// diff by length.
	log []events.Event

	stopped      bool
	pendingScene *SceneChange
	portalIn     map[string]bool
	prevWin      map[string]bool
	prevFail     map[string]bool

	elapsed   float64
	proxAccum int64
}

// Opt configures a Session at construction.
type Opt func(*Session)

// WithID overrides the generated session ID.
func WithID(id string) Opt {
	return func(s *Session) { s.ID = id }
}

// WithStartPosition overrides the scene's spawn point, e.g. when arriving
// through a portal with a target spawn.
func WithStartPosition(pos geom.Vec3, yaw float32) Opt {
	return func(s *Session) {
		s.spawn = pos
		s.spawnYaw = yaw
	}
}

// WithPreserved applies a cross-scene snapshot on every (re)start.
func WithPreserved(p *PreservedState) Opt {
	return func(s *Session) { s.preserved = p }
}

// WithProximityInterval scans proximity and zone triggers on this coarser
// cadence instead of every tick.
func WithProximityInterval(d time.Duration) Opt {
	return func(s *Session) { s.proximityMs = d.Milliseconds() }
}

// New constructs and starts a session. A nil config or scene is programmer
// misuse and fails fast here; nothing errors mid-tick.
func New(experienceID, sceneID string, cfg *game.GameConfig, scene *game.Scene, opts ...Opt) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config is required")
	}
	if scene == nil {
		return nil, fmt.Errorf("scene is required")
	}

	s := &Session{
		ID:           uuid.New().String(),
		ExperienceID: experienceID,
		SceneID:      sceneID,
		cfg:          cfg,
		scene:        scene,
		spawn:        scene.Spawn,
		spawnYaw:     scene.SpawnYaw,
		debug:        DebugState{TimeScale: 1},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Start()
	return s, nil
}

// Start (re)initializes the player state and clears the event log. Calling
// it on a running session is an idempotent restart.
func (s *Session) Start() {
	s.state = NewPlayerState(s.spawn, s.spawnYaw, s.cfg)
	ApplyPreservedState(s.preserved, s.state)
	s.state.VisitedScenes[s.SceneID] = true

	s.elapsed = float64(s.state.ElapsedMs) / 1000
	s.proxAccum = 0
	s.istate = make(map[interactionKey]*InteractionState)
	s.log = nil
	s.input = Input{}
	s.stopped = false
	s.pendingScene = nil
	s.portalIn = make(map[string]bool)
	s.prevWin = make(map[string]bool)
	s.prevFail = make(map[string]bool)
}

// Reset reinitializes from the same start position and config, for "play
// again" flows. Terminal flags clear only through this path.
func (s *Session) Reset() {
	s.Start()
}

// Tick advances the simulation by dt seconds. It is a no-op while paused,
// stopped, or complete, so a host that keeps calling it cannot corrupt
// state. Within one tick the order is fixed: time, movement, triggers,
// portals, win/fail — giving a reproducible event log for a given input
// sequence.
func (s *Session) Tick(dt float32) {
	if s.stopped || s.state.Paused || s.state.Complete() {
		return
	}
	if s.debug.TimeScale > 0 {
		dt *= s.debug.TimeScale
	}
	if dt <= 0 {
		return
	}

	s.elapsed += float64(dt)
	s.state.ElapsedMs = int64(s.elapsed * 1000)

	if s.input.DPitch != 0 || s.input.DYaw != 0 {
		s.state.Rotation = Rotate(s.state.Rotation, s.input.DPitch, s.input.DYaw)
		s.input.DPitch, s.input.DYaw = 0, 0
	}
	s.state.Position = Move(s.state.Position, s.state.Rotation, s.input.Forward, s.input.Strafe, dt, s.state.Speed)

	scanSpatial := true
	if s.proximityMs > 0 {
		s.proxAccum += int64(float64(dt) * 1000)
		if s.proxAccum >= s.proximityMs {
			s.proxAccum = 0
		} else {
			scanSpatial = false
		}
	}

	s.evaluateTriggers(scanSpatial)
	s.checkPortals()
	s.evaluateConditions()
}

// Pause stops time; ticks are ignored until Resume, preserving exact
// elapsed time.
func (s *Session) Pause() {
	s.state.Paused = true
}

// Resume continues a paused session.
func (s *Session) Resume() {
	s.state.Paused = false
}

// Stop ends the session. The last consistent state stays readable.
func (s *Session) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Session) Stopped() bool {
	return s.stopped
}

// SetInput records held movement input, clamped to [-1, 1] per axis.
func (s *Session) SetInput(forward, strafe float32) {
	s.input.Forward = clampAxis(forward)
	s.input.Strafe = clampAxis(strafe)
}

// AddRotation accumulates pitch/yaw deltas (degrees) for the next tick.
func (s *Session) AddRotation(dPitch, dYaw float32) {
	s.input.DPitch += dPitch
	s.input.DYaw += dYaw
}

func clampAxis(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// State returns the live player state. Read-only for callers; all mutation
// goes through the session.
func (s *Session) State() *PlayerState {
	return s.state
}

// Debug returns the mutable debug overrides.
func (s *Session) Debug() *DebugState {
	return &s.debug
}

// Events returns the full event log.
func (s *Session) Events() []events.Event {
	return s.log
}

// EventsSince returns the events appended after the first n, which is how
// presentation layers consume the log: remember the length you have seen,
// ask for the rest.
func (s *Session) EventsSince(n int) []events.Event {
	if n < 0 {
		n = 0
	}
	if n >= len(s.log) {
		return nil
	}
	return s.log[n:]
}

// TakeSceneChange returns and clears the pending scene change, if any.
func (s *Session) TakeSceneChange() *SceneChange {
	sc := s.pendingScene
	s.pendingScene = nil
	return sc
}

// Config returns the immutable game config the session runs under.
func (s *Session) Config() *game.GameConfig {
	return s.cfg
}

// Preserved snapshots the cross-scene subset of the current state.
func (s *Session) Preserved() *PreservedState {
	return ExtractPreservedState(s.state)
}

func (s *Session) emit(ev events.Event) {
	ev.At = s.state.ElapsedMs
	s.log = append(s.log, ev)
}

// evaluateConditions re-checks win/fail conditions, emits edge events for
// newly satisfied ones, and sets the terminal flags. Once HasWon or
// HasFailed is set the session is frozen until Reset.
func (s *Session) evaluateConditions() {
	win := CheckWinConditions(s.state, s.cfg)
	nowWin := make(map[string]bool, len(win))
	for _, id := range win {
		nowWin[id] = true
		if !s.prevWin[id] {
			s.emit(events.Event{Type: events.WinConditionMet, ConditionID: id})
		}
	}
	s.prevWin = nowWin
	s.state.WinConditionsMet = win

	if !s.state.HasWon && winSatisfied(s.cfg, win) {
		for i := range s.cfg.OnWin {
			s.apply(&s.cfg.OnWin[i], "", "")
		}
		s.state.HasWon = true
		s.emit(events.Event{Type: events.GameWon, Message: s.cfg.WinMessage})
		return
	}

	if s.debug.Invincible {
		return
	}

	fail := CheckFailConditions(s.state, s.cfg)
	nowFail := make(map[string]bool, len(fail))
	for _, id := range fail {
		nowFail[id] = true
		if !s.prevFail[id] {
			s.emit(events.Event{Type: events.FailConditionMet, ConditionID: id})
		}
	}
	s.prevFail = nowFail
	s.state.FailConditionsMet = fail

	if !s.state.HasFailed && len(fail) > 0 {
		for i := range s.cfg.OnFail {
			s.apply(&s.cfg.OnFail[i], "", "")
		}
		s.state.HasFailed = true
		s.state.Alive = false
		s.emit(events.Event{Type: events.GameFailed, Message: s.cfg.FailMessage, ConditionID: fail[0]})
	}
}
