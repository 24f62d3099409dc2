package session

import (
	"github.com/splatforge/go-playtest/internal/events"
	"github.com/splatforge/go-playtest/internal/game"
)

// apply executes one action against the player state and appends its
// event(s). Actions referencing a missing object, variable, or objective
// are no-ops that still emit — downstream consumers stay simple, and a
// half-built scene never crashes a playtest.
//
// Intent actions (sound, message, animation, particles, vibrate, open_url)
// mutate nothing: they only append the event the presentation layer
// realizes. The core stays free of I/O.
func (s *Session) apply(a *game.Action, objectInstanceID, interactionID string) {
	src := events.Event{
		ObjectInstanceID: objectInstanceID,
		InteractionID:    interactionID,
	}

	switch a.Type {
	case game.ActionPlaySound:
		src.Type = events.SoundPlayed
		src.SoundURL = a.SoundURL
		src.Volume = a.Volume
		src.Loop = a.Loop
		s.emit(src)

	case game.ActionShowMessage:
		src.Type = events.MessageShown
		src.Message = renderMessage(a.Message, s.state)
		src.DurationMs = a.DurationMs
		s.emit(src)

	case game.ActionAddScore:
		old := s.state.Score
		next := old + a.Points
		if next < 0 && !s.cfg.Scoring.AllowNegative {
			next = 0
		}
		s.state.Score = next
		src.Type = events.ScoreChanged
		src.OldScore = old
		src.NewScore = next
		src.Delta = next - old
		s.emit(src)

	case game.ActionAddInventory:
		stack := s.cfg.Inventory.Stackable
		max := s.cfg.Inventory.MaxItems
		full := !s.debug.UnlimitedInventory && max > 0 && s.state.ItemCount() >= max &&
			!(stack && s.state.HasItem(a.ItemID))
		if full {
			// A pickup the cap rejects never entered the inventory, so it
			// emits no item_collected.
			return
		}
		s.state.addItem(a.ItemID, objectInstanceID, a.ItemName, a.Quantity, stack)
		src.Type = events.ItemCollected
		src.ItemID = a.ItemID
		src.ItemName = a.ItemName
		src.Quantity = a.Quantity
		if src.Quantity <= 0 {
			src.Quantity = 1
		}
		s.emit(src)

	case game.ActionShowObject:
		delete(s.state.HiddenObjects, a.TargetID)
		src.Type = events.ObjectShown
		src.TargetID = a.TargetID
		s.emit(src)

	case game.ActionHideObject:
		s.state.HiddenObjects[a.TargetID] = true
		src.Type = events.ObjectHidden
		src.TargetID = a.TargetID
		s.emit(src)

	case game.ActionTeleport:
		if a.Destination != nil {
			s.state.Position = *a.Destination
		}
		src.Type = events.Teleported
		src.Position = a.Destination
		s.emit(src)

	case game.ActionPlayAnimation:
		src.Type = events.AnimationPlayed
		src.TargetID = a.TargetID
		src.Animation = a.Animation
		s.emit(src)

	case game.ActionChangeScene:
		if s.pendingScene == nil {
			s.pendingScene = &SceneChange{SceneID: a.SceneID, Spawn: a.Spawn}
		}
		src.Type = events.SceneChanged
		src.SceneID = a.SceneID
		src.Position = a.Spawn
		s.emit(src)

	case game.ActionSetVariable:
		val := s.setVariable(a.Variable, a.Operation, a.Value)
		src.Type = events.VariableChanged
		src.Variable = a.Variable
		src.Value = val
		s.emit(src)

	case game.ActionEmitParticles:
		src.Type = events.ParticlesEmitted
		src.Effect = a.Effect
		s.emit(src)

	case game.ActionVibrate:
		src.Type = events.Vibrated
		src.VibrateMs = a.VibrateMs
		s.emit(src)

	case game.ActionOpenURL:
		src.Type = events.URLOpened
		src.URL = a.URL
		src.NewTab = a.NewTab
		s.emit(src)

	case game.ActionCompleteObjective:
		if s.cfg.Objective(a.ObjectiveID) != nil {
			op := s.state.Objectives[a.ObjectiveID]
			if op == nil {
				op = &ObjectiveProgress{}
				s.state.Objectives[a.ObjectiveID] = op
			}
			if !op.Completed {
				op.Completed = true
				op.Progress = 1
				op.CompletedAt = s.state.ElapsedMs

				// Progress changed; the progress event precedes the
				// completion event on this first transition only.
				prog := src
				prog.Type = events.ObjectiveProgress
				prog.ObjectiveID = a.ObjectiveID
				prog.Progress = 1
				s.emit(prog)
			}
			src.Progress = 1
		}
		src.Type = events.ObjectiveCompleted
		src.ObjectiveID = a.ObjectiveID
		s.emit(src)
	}
}

// setVariable applies a set/add/subtract/toggle mutation, creating the
// variable from zero/false as appropriate, and returns the new value.
func (s *Session) setVariable(name string, op game.VarOp, value any) any {
	old := s.state.Variables[name]

	var next any
	switch op {
	case game.VarSet:
		next = value
	case game.VarAdd:
		cur, _ := asNumber(old)
		delta, _ := asNumber(value)
		next = cur + delta
	case game.VarSubtract:
		cur, _ := asNumber(old)
		delta, _ := asNumber(value)
		next = cur - delta
	case game.VarToggle:
		cur, _ := old.(bool)
		next = !cur
	default:
		next = old
	}

	s.state.Variables[name] = next
	return next
}
