package session

// interactionKey identifies one interaction on one placed object. It is a
// composite struct key on purpose: the IDs are authored strings, so a
// concatenated key could be ambiguous.
type interactionKey struct {
	objectInstanceID string
	interactionID    string
}

// InteractionState is the per-interaction runtime bookkeeping. Created
// lazily on first evaluation and discarded with the session; the authored
// interaction itself never changes.
type InteractionState struct {
	// TriggerCount is how many times the interaction has fired.
	TriggerCount int

	// LastFiredAt is the simulated time of the last fire, -1 if never.
	LastFiredAt int64

	// InRange is the previous containment result for proximity and zone
	// triggers; firing is edge-triggered on its transitions.
	InRange bool

	// condMet is the previous result for conditional triggers.
	condMet bool

	// Timer trigger schedule. Armed lazily on first evaluation.
	timerArmed bool
	nextFireAt int64
	timerFires int
}

func (s *Session) interactionState(objectInstanceID, interactionID string) *InteractionState {
	key := interactionKey{objectInstanceID: objectInstanceID, interactionID: interactionID}
	st, ok := s.istate[key]
	if !ok {
		st = &InteractionState{LastFiredAt: -1}
		s.istate[key] = st
	}
	return st
}
