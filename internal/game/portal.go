package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/geom"
)

// Portal is a scene-to-scene transition trigger volume.
type Portal struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Position geom.Vec3 `json:"position"`

	// Rotation is stored for the renderer but not applied to zone
	// detection; portal volumes are treated as axis-aligned.
	Rotation geom.Vec3 `json:"rotation,omitempty"`
	Size     geom.Vec3 `json:"size"`

	TargetSceneID string     `json:"target_scene_id"`
	TargetSpawn   *geom.Vec3 `json:"target_spawn,omitempty"`

	Enabled bool `json:"enabled"`

	// RequiredItemID locks the portal until the player holds the item.
	// When ConsumesKey is set, entering removes one of the item.
	RequiredItemID string `json:"required_item_id,omitempty"`
	ConsumesKey    bool   `json:"consumes_key,omitempty"`
	LockedMessage  string `json:"locked_message,omitempty"`
}

func (p *Portal) Validate() error {
	el := errors.NewErrorList()

	if p.ID == "" {
		el.Add(fmt.Errorf("portal id is required"))
	}
	if p.TargetSceneID == "" {
		el.Add(fmt.Errorf("portal target_scene_id is required"))
	}
	if p.Size.X <= 0 || p.Size.Y <= 0 || p.Size.Z <= 0 {
		el.Add(fmt.Errorf("portal size must be positive in all dimensions"))
	}

	return el.Err()
}

// Locked reports whether the portal requires an item to enter.
func (p *Portal) Locked() bool {
	return p.RequiredItemID != ""
}
