package nav

// Phase is one stage of a scene transition.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseFadeOut  Phase = "fade_out"
	PhaseLoading  Phase = "loading"
	PhaseFadeIn   Phase = "fade_in"
	PhaseComplete Phase = "complete"
)

// Transition tracks one scene change through its phases:
// idle → fade_out → loading → fade_in → complete → idle. The host drives it
// forward as the renderer fades and the new scene's assets arrive.
type Transition struct {
	phase Phase

	PortalID    string
	FromSceneID string
	ToSceneID   string
}

// NewTransition begins a transition through the given portal, starting in
// fade_out.
func NewTransition(portalID, fromSceneID, toSceneID string) *Transition {
	return &Transition{
		phase:       PhaseFadeOut,
		PortalID:    portalID,
		FromSceneID: fromSceneID,
		ToSceneID:   toSceneID,
	}
}

// Phase returns the current phase.
func (t *Transition) Phase() Phase {
	return t.phase
}

// Active reports whether the transition is still in flight.
func (t *Transition) Active() bool {
	return t.phase != PhaseIdle
}

// Advance moves to the next phase and returns it. Advancing past complete
// returns to idle; advancing an idle transition stays idle.
func (t *Transition) Advance() Phase {
	switch t.phase {
	case PhaseFadeOut:
		t.phase = PhaseLoading
	case PhaseLoading:
		t.phase = PhaseFadeIn
	case PhaseFadeIn:
		t.phase = PhaseComplete
	case PhaseComplete:
		t.phase = PhaseIdle
	}
	return t.phase
}
