package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/splatforge/go-playtest/internal/geom"
)

func validObject(instanceID string) PlacedObject {
	return PlacedObject{
		InstanceID: instanceID,
		ObjectID:   "exhibit",
		Interactions: []Interaction{{
			ID:      "touch",
			Enabled: true,
			Trigger: Trigger{Type: TriggerClick},
			Actions: []Action{{Type: ActionShowMessage, Message: "hi"}},
		}},
	}
}

func TestSceneValidate(t *testing.T) {
	tests := map[string]struct {
		scene  Scene
		expErr string
	}{
		"valid": {
			Scene{Name: "gallery", Objects: []PlacedObject{validObject("a"), validObject("b")}},
			"",
		},
		"missing name": {
			Scene{},
			"name is required",
		},
		"duplicate instance ids": {
			Scene{Name: "gallery", Objects: []PlacedObject{validObject("a"), validObject("a")}},
			"duplicate object instance_id",
		},
		"invalid nested object": {
			Scene{Name: "gallery", Objects: []PlacedObject{{InstanceID: "a"}}},
			"object_id is required",
		},
		"invalid portal": {
			Scene{Name: "gallery", Portals: []Portal{{ID: "p"}}},
			"target_scene_id is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.scene.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				testutil.AssertErrorContains(t, err, tt.expErr)
			}
		})
	}
}

func TestSceneObjectLookup(t *testing.T) {
	s := Scene{Name: "gallery", Objects: []PlacedObject{validObject("a"), validObject("b")}}

	testutil.AssertEqual(t, "found", s.Object("b").InstanceID, "b")
	testutil.AssertEqual(t, "missing", s.Object("c") == nil, true)
}

func TestExperienceValidate(t *testing.T) {
	tests := map[string]struct {
		exp    Experience
		expErr string
	}{
		"valid": {
			Experience{Name: "Museum Hunt", SceneIDs: []string{"museum-lobby"}, StartSceneID: "museum-lobby"},
			"",
		},
		"missing name": {
			Experience{SceneIDs: []string{"a"}, StartSceneID: "a"},
			"name is required",
		},
		"no scenes": {
			Experience{Name: "Museum Hunt", StartSceneID: "a"},
			"at least one scene",
		},
		"start not listed": {
			Experience{Name: "Museum Hunt", SceneIDs: []string{"museum-lobby"}, StartSceneID: "museum-vault"},
			"is not in scene_ids",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.exp.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				testutil.AssertErrorContains(t, err, tt.expErr)
			}
		})
	}
}

func TestPortalValidate(t *testing.T) {
	valid := Portal{
		ID:            "vault-door",
		Size:          geom.Vec3{X: 1, Y: 2, Z: 1},
		TargetSceneID: "museum-vault",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	flat := valid
	flat.Size.Y = 0
	testutil.AssertErrorContains(t, flat.Validate(), "size must be positive")

	testutil.AssertEqual(t, "unlocked", valid.Locked(), false)
	locked := valid
	locked.RequiredItemID = "brass-key"
	testutil.AssertEqual(t, "locked", locked.Locked(), true)
}

func TestGameConfigValidate(t *testing.T) {
	tests := map[string]struct {
		cfg    GameConfig
		expErr string
	}{
		"empty": {
			GameConfig{},
			"",
		},
		"negative time limit": {
			GameConfig{TimeLimitMs: -1},
			"time_limit_ms cannot be negative",
		},
		"duplicate condition ids": {
			GameConfig{
				WinConditions:  []Condition{{ID: "c", Type: ConditionCollectAll}},
				FailConditions: []Condition{{ID: "c", Type: ConditionTimeLimit, LimitMs: 1000}},
			},
			"duplicate condition id",
		},
		"invalid condition": {
			GameConfig{WinConditions: []Condition{{ID: "c", Type: ConditionCollectCount}}},
			"count must be positive",
		},
		"objective without id": {
			GameConfig{Objectives: []Objective{{Name: "unnamed"}}},
			"id is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				testutil.AssertErrorContains(t, err, tt.expErr)
			}
		})
	}
}
