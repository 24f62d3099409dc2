package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/geom"
)

// Scene is one 3D environment within an experience: a splat plus placed
// objects and portals. Scene IDs follow the convention
// <experience>-<name> (e.g., "museum-entrance-hall").
type Scene struct {
	Name string `json:"name"`

	// SplatURL locates the scene's gaussian splat. Opaque to the runtime;
	// the renderer loads it.
	SplatURL string `json:"splat_url,omitempty"`

	Spawn    geom.Vec3 `json:"spawn"`
	SpawnYaw float32   `json:"spawn_yaw,omitempty"`

	Objects []PlacedObject `json:"objects,omitempty"`
	Portals []Portal       `json:"portals,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Scene) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("scene name is required"))
	}

	seen := make(map[string]bool, len(s.Objects))
	for i := range s.Objects {
		if err := s.Objects[i].Validate(); err != nil {
			el.Add(fmt.Errorf("object %d: %w", i, err))
		}
		id := s.Objects[i].InstanceID
		if id != "" && seen[id] {
			el.Add(fmt.Errorf("duplicate object instance_id %q", id))
		}
		seen[id] = true
	}

	for i := range s.Portals {
		if err := s.Portals[i].Validate(); err != nil {
			el.Add(fmt.Errorf("portal %d: %w", i, err))
		}
	}

	return el.Err()
}

// Object returns the placed object with the given instance ID, or nil.
func (s *Scene) Object(instanceID string) *PlacedObject {
	for i := range s.Objects {
		if s.Objects[i].InstanceID == instanceID {
			return &s.Objects[i]
		}
	}
	return nil
}

// Experience is a published collection of scenes plus a game config.
type Experience struct {
	Name string `json:"name"`

	// SceneIDs lists the experience's scenes in authored order. The first
	// playable scene is StartSceneID.
	SceneIDs     []string `json:"scene_ids"`
	StartSceneID string   `json:"start_scene_id"`

	Config GameConfig `json:"config"`
}

// Validate satisfies storage.ValidatingSpec.
func (e *Experience) Validate() error {
	el := errors.NewErrorList()

	if e.Name == "" {
		el.Add(fmt.Errorf("experience name is required"))
	}
	if len(e.SceneIDs) == 0 {
		el.Add(fmt.Errorf("experience needs at least one scene"))
	}
	if e.StartSceneID == "" {
		el.Add(fmt.Errorf("experience start_scene_id is required"))
	} else {
		found := false
		for _, id := range e.SceneIDs {
			if id == e.StartSceneID {
				found = true
				break
			}
		}
		if !found {
			el.Add(fmt.Errorf("start_scene_id %q is not in scene_ids", e.StartSceneID))
		}
	}

	el.Add(e.Config.Validate())

	return el.Err()
}
