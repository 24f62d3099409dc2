package session

import (
	"github.com/splatforge/go-playtest/internal/events"
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

// evaluateTriggers scans every placed object's enabled interactions and
// fires the ones whose trigger condition newly holds. Objects are visited
// in scene order and interactions in declaration order, so the resulting
// event sequence is deterministic.
//
// Proximity and zone triggers are scanned only when the proximity cadence
// elapses (scanSpatial), which bounds their cost independently of frame
// rate on scenes with many objects.
func (s *Session) evaluateTriggers(scanSpatial bool) {
	now := s.state.ElapsedMs

	for oi := range s.scene.Objects {
		obj := &s.scene.Objects[oi]
		if s.state.CollectedObjects[obj.InstanceID] {
			continue
		}

		for ii := range obj.Interactions {
			ia := &obj.Interactions[ii]
			if !ia.Enabled {
				continue
			}
			st := s.interactionState(obj.InstanceID, ia.ID)

			switch ia.Trigger.Type {
			case game.TriggerProximity:
				if scanSpatial {
					in := geom.Dist(s.state.Position, obj.Transform.Position) <= ia.Trigger.Radius
					s.spatialEdge(obj, ia, st, in, ia.Trigger.OnEnter, ia.Trigger.OnExit)
				}

			case game.TriggerEnterZone:
				if scanSpatial {
					s.spatialEdge(obj, ia, st, s.inZone(obj, &ia.Trigger), true, false)
				}

			case game.TriggerExitZone:
				if scanSpatial {
					s.spatialEdge(obj, ia, st, s.inZone(obj, &ia.Trigger), false, true)
				}

			case game.TriggerTimer:
				if !st.timerArmed && st.nextFireAt == 0 && st.timerFires == 0 {
					st.timerArmed = true
					st.nextFireAt = now + ia.Trigger.DelayMs
				}
				if st.timerArmed && now >= st.nextFireAt {
					// The scheduled fire is consumed even when cooldown or
					// max-trigger gating suppresses it.
					s.tryFire(obj, ia, st)
					st.timerFires++
					if ia.Trigger.Repeat && (ia.Trigger.RepeatCount == 0 || st.timerFires < ia.Trigger.RepeatCount) {
						st.nextFireAt += ia.Trigger.DelayMs
					} else {
						st.timerArmed = false
					}
				}

			case game.TriggerConditional:
				met := compare(s.state.Variables[ia.Trigger.Variable], ia.Trigger.Operator, ia.Trigger.Value)
				if met && !st.condMet {
					s.tryFire(obj, ia, st)
				}
				st.condMet = met

			default:
				// Click, collision, collect, and look need an external
				// stimulus; they fire only via TriggerInteraction.
			}
		}
	}
}

// spatialEdge applies edge-triggered enter/exit semantics shared by
// proximity and zone triggers. Edge state updates even when a fire is
// suppressed, so a suppressed re-entry does not retroactively fire once
// cooldown expires.
func (s *Session) spatialEdge(obj *game.PlacedObject, ia *game.Interaction, st *InteractionState, in, onEnter, onExit bool) {
	if in == st.InRange {
		return
	}
	if in && onEnter {
		s.tryFire(obj, ia, st)
	}
	if !in && onExit {
		s.tryFire(obj, ia, st)
	}
	st.InRange = in
}

// inZone tests containment in a zone trigger's volume, centered on the
// owning object. A sphere zone uses Size.X as its radius. Rotation is
// ignored (axis-aligned only).
func (s *Session) inZone(obj *game.PlacedObject, t *game.Trigger) bool {
	if t.Size == nil {
		return false
	}
	center := obj.Transform.Position
	if t.Shape == game.ZoneSphere {
		return geom.InSphere(s.state.Position, center, t.Size.X)
	}
	return geom.InBox(s.state.Position, center, *t.Size)
}

// tryFire applies the interaction-level gating that is uniform across all
// trigger kinds, then executes the action batch. Returns whether the
// interaction fired.
func (s *Session) tryFire(obj *game.PlacedObject, ia *game.Interaction, st *InteractionState) bool {
	if ia.MaxTriggers > 0 && st.TriggerCount >= ia.MaxTriggers {
		return false
	}
	now := s.state.ElapsedMs
	if ia.CooldownMs > 0 && st.LastFiredAt >= 0 && now-st.LastFiredAt < ia.CooldownMs {
		return false
	}

	st.TriggerCount++
	st.LastFiredAt = now

	s.emit(events.Event{
		Type:             events.InteractionFired,
		ObjectInstanceID: obj.InstanceID,
		InteractionID:    ia.ID,
	})

	if ia.Trigger.Type == game.TriggerCollect {
		s.state.CollectedObjects[obj.InstanceID] = true
		if ia.Trigger.DestroyOnCollect {
			s.state.HiddenObjects[obj.InstanceID] = true
		}
	}

	for i := range ia.Actions {
		s.apply(&ia.Actions[i], obj.InstanceID, ia.ID)
	}
	return true
}

// TriggerInteraction is the external-stimulus entry point: the renderer
// calls it when a pointer ray, physics contact, or gaze dwell hits an
// object. Only click/collision/collect/look triggers respond; gating is
// the same as for internally detected triggers. Unknown or disabled
// interactions are a no-op — the caller cannot always know enablement
// state in advance.
func (s *Session) TriggerInteraction(interactionID, objectInstanceID string) {
	if s.stopped || s.state.Paused || s.state.Complete() {
		return
	}

	obj := s.scene.Object(objectInstanceID)
	if obj == nil || s.state.CollectedObjects[objectInstanceID] {
		return
	}

	for ii := range obj.Interactions {
		ia := &obj.Interactions[ii]
		if ia.ID != interactionID || !ia.Enabled || !ia.Trigger.External() {
			continue
		}
		s.tryFire(obj, ia, s.interactionState(objectInstanceID, interactionID))
		return
	}
}
