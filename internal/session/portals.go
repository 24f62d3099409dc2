package session

import (
	"github.com/splatforge/go-playtest/internal/events"
	"github.com/splatforge/go-playtest/internal/nav"
)

// checkPortals runs portal zone detection each tick. Entry is
// edge-triggered per portal: standing inside a locked portal's volume emits
// portal_locked once, not every tick, and leaving re-arms it.
func (s *Session) checkPortals() {
	for i := range s.scene.Portals {
		p := &s.scene.Portals[i]
		if !p.Enabled {
			continue
		}

		in := nav.InPortalZone(s.state.Position, p)
		was := s.portalIn[p.ID]
		s.portalIn[p.ID] = in
		if !in || was {
			continue
		}

		if p.Locked() && !s.state.HasItem(p.RequiredItemID) {
			s.emit(events.Event{
				Type:     events.PortalLocked,
				PortalID: p.ID,
				SceneID:  p.TargetSceneID,
				Message:  p.LockedMessage,
			})
			continue
		}

		if s.pendingScene != nil {
			continue
		}

		if p.Locked() && p.ConsumesKey {
			removed := s.state.removeItem(p.RequiredItemID, 1)
			s.emit(events.Event{
				Type:     events.ItemRemoved,
				ItemID:   p.RequiredItemID,
				Quantity: removed,
			})
		}

		s.pendingScene = &SceneChange{
			SceneID:  p.TargetSceneID,
			Spawn:    p.TargetSpawn,
			PortalID: p.ID,
		}
		s.emit(events.Event{
			Type:     events.SceneChanged,
			SceneID:  p.TargetSceneID,
			PortalID: p.ID,
			Position: p.TargetSpawn,
		})
	}
}
