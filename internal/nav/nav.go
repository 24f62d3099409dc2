// Package nav implements portal zone detection and the scene-transition
// phase machine. Loading the target scene's assets is the host's job; this
// package only tracks where a transition stands.
package nav

import (
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

// DistanceToPortal returns the unrotated Euclidean distance from pos to the
// portal's origin. Portal rotation is stored on the asset but not applied
// here, the same simplification as box containment.
func DistanceToPortal(pos geom.Vec3, p *game.Portal) float32 {
	return geom.Dist(pos, p.Position)
}

// NearestPortal returns the closest enabled portal within maxDistance, or
// nil when none is in range. Ties keep the earlier portal in scene order.
func NearestPortal(pos geom.Vec3, portals []game.Portal, maxDistance float32) *game.Portal {
	var nearest *game.Portal
	var best float32
	for i := range portals {
		p := &portals[i]
		if !p.Enabled {
			continue
		}
		d := DistanceToPortal(pos, p)
		if d > maxDistance {
			continue
		}
		if nearest == nil || d < best {
			nearest = p
			best = d
		}
	}
	return nearest
}

// InPortalZone reports whether pos is inside the portal's trigger volume.
// Axis-aligned only; the portal's rotation is not applied.
func InPortalZone(pos geom.Vec3, p *game.Portal) bool {
	return geom.InBox(pos, p.Position, p.Size)
}
