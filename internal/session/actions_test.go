package session

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/splatforge/go-playtest/internal/events"
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

func TestAddScoreClamping(t *testing.T) {
	tests := map[string]struct {
		starting      int
		allowNegative bool
		points        int
		expScore      int
		expDelta      int
	}{
		"add":                  {10, false, 5, 15, 5},
		"subtract":             {10, false, -3, 7, -3},
		"clamped at zero":      {2, false, -5, 0, -2},
		"already zero":         {0, false, -5, 0, 0},
		"negative allowed":     {2, true, -5, -3, -5},
		"negative going lower": {-3, true, -4, -7, -4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &game.GameConfig{
				Scoring: game.ScoringConfig{StartingScore: tt.starting, AllowNegative: tt.allowNegative},
			}
			s := newTestSession(t, cfg, &game.Scene{Name: "gallery"})

			a := game.Action{Type: game.ActionAddScore, Points: tt.points}
			s.apply(&a, "", "")

			testutil.AssertEqual(t, "score", s.State().Score, tt.expScore)
			ev := s.Events()[0]
			testutil.AssertEqual(t, "event type", ev.Type, events.ScoreChanged)
			testutil.AssertEqual(t, "old score", ev.OldScore, tt.starting)
			testutil.AssertEqual(t, "new score", ev.NewScore, tt.expScore)
			testutil.AssertEqual(t, "delta", ev.Delta, tt.expDelta)
		})
	}
}

func TestAddInventoryStacking(t *testing.T) {
	cfg := &game.GameConfig{Inventory: game.InventoryConfig{Stackable: true}}
	s := newTestSession(t, cfg, &game.Scene{Name: "gallery"})

	a := game.Action{Type: game.ActionAddInventory, ItemID: "coin", Quantity: 2}
	s.apply(&a, "", "")
	s.apply(&a, "", "")

	testutil.AssertEqual(t, "entry count", len(s.State().Inventory), 1)
	testutil.AssertEqual(t, "quantity", s.State().Inventory[0].Quantity, 4)
	testutil.AssertEqual(t, "total", s.State().ItemCount(), 4)
}

func TestAddInventoryUnstacked(t *testing.T) {
	s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})

	a := game.Action{Type: game.ActionAddInventory, ItemID: "coin"}
	s.apply(&a, "", "")
	s.apply(&a, "", "")

	testutil.AssertEqual(t, "entry count", len(s.State().Inventory), 2)
	testutil.AssertEqual(t, "total", s.State().ItemCount(), 2)
}

func TestAddInventoryFull(t *testing.T) {
	cfg := &game.GameConfig{Inventory: game.InventoryConfig{MaxItems: 1}}
	s := newTestSession(t, cfg, &game.Scene{Name: "gallery"})

	first := game.Action{Type: game.ActionAddInventory, ItemID: "coin"}
	second := game.Action{Type: game.ActionAddInventory, ItemID: "gem"}
	s.apply(&first, "", "")
	s.apply(&second, "", "")

	testutil.AssertEqual(t, "kept first only", s.State().ItemCount(), 1)
	testutil.AssertEqual(t, "has first", s.State().HasItem("coin"), true)
	testutil.AssertEqual(t, "dropped second", s.State().HasItem("gem"), false)
	// A rejected pickup is invisible to the HUD.
	testutil.AssertEqual(t, "event count", len(s.Events()), 1)
	testutil.AssertEqual(t, "first pickup event", s.Events()[0].Type, events.ItemCollected)

	s.Debug().UnlimitedInventory = true
	s.apply(&second, "", "")
	testutil.AssertEqual(t, "debug override", s.State().HasItem("gem"), true)
	testutil.AssertEqual(t, "debug pickup event", len(s.Events()), 2)
}

func TestShowHideObject(t *testing.T) {
	s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})

	hide := game.Action{Type: game.ActionHideObject, TargetID: "statue-1"}
	show := game.Action{Type: game.ActionShowObject, TargetID: "statue-1"}

	s.apply(&hide, "", "")
	testutil.AssertEqual(t, "hidden", s.State().HiddenObjects["statue-1"], true)
	testutil.AssertEqual(t, "hide event", s.Events()[0].Type, events.ObjectHidden)

	s.apply(&show, "", "")
	testutil.AssertEqual(t, "shown", s.State().HiddenObjects["statue-1"], false)
	testutil.AssertEqual(t, "show event", s.Events()[1].Type, events.ObjectShown)
}

func TestTeleport(t *testing.T) {
	s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})

	dest := geom.Vec3{X: 4, Y: 1, Z: -2}
	a := game.Action{Type: game.ActionTeleport, Destination: &dest}
	s.apply(&a, "", "")

	testutil.AssertEqual(t, "position", s.State().Position, dest)
	testutil.AssertEqual(t, "event type", s.Events()[0].Type, events.Teleported)
}

func TestChangeSceneKeepsFirstRequest(t *testing.T) {
	s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})

	first := game.Action{Type: game.ActionChangeScene, SceneID: "museum-vault"}
	second := game.Action{Type: game.ActionChangeScene, SceneID: "museum-attic"}
	s.apply(&first, "", "")
	s.apply(&second, "", "")

	sc := s.TakeSceneChange()
	testutil.AssertEqual(t, "first wins", sc.SceneID, "museum-vault")
}

func TestSetVariable(t *testing.T) {
	tests := map[string]struct {
		initial any
		op      game.VarOp
		value   any
		exp     any
	}{
		"set":               {nil, game.VarSet, "open", "open"},
		"set overwrites":    {float64(3), game.VarSet, float64(7), float64(7)},
		"add from zero":     {nil, game.VarAdd, float64(2), float64(2)},
		"add":               {float64(3), game.VarAdd, float64(2), float64(5)},
		"subtract":          {float64(3), game.VarSubtract, float64(5), float64(-2)},
		"toggle from unset": {nil, game.VarToggle, nil, true},
		"toggle true":       {true, game.VarToggle, nil, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})
			if tt.initial != nil {
				s.State().Variables["door"] = tt.initial
			}

			a := game.Action{Type: game.ActionSetVariable, Variable: "door", Operation: tt.op, Value: tt.value}
			s.apply(&a, "", "")

			testutil.AssertEqual(t, "value", s.State().Variables["door"], tt.exp)
			ev := s.Events()[0]
			testutil.AssertEqual(t, "event type", ev.Type, events.VariableChanged)
			testutil.AssertEqual(t, "event value", ev.Value, tt.exp)
		})
	}
}

func TestCompleteObjective(t *testing.T) {
	cfg := &game.GameConfig{
		Objectives: []game.Objective{{ID: "find-the-key", Name: "Find the key"}},
	}
	s := newTestSession(t, cfg, &game.Scene{Name: "gallery"})
	s.Tick(1.0)

	a := game.Action{Type: game.ActionCompleteObjective, ObjectiveID: "find-the-key"}
	s.apply(&a, "", "")

	op := s.State().Objectives["find-the-key"]
	testutil.AssertEqual(t, "completed", op.Completed, true)
	testutil.AssertEqual(t, "progress", op.Progress, float32(1))
	testutil.AssertEqual(t, "completed at", op.CompletedAt, int64(1000))
	testutil.AssertEqual(t, "progress event", s.Events()[0].Type, events.ObjectiveProgress)
	testutil.AssertEqual(t, "progress value", s.Events()[0].Progress, float32(1))
	testutil.AssertEqual(t, "completed event", s.Events()[1].Type, events.ObjectiveCompleted)

	// Completing twice keeps the original timestamp and emits no second
	// progress event.
	s.Tick(1.0)
	s.apply(&a, "", "")
	testutil.AssertEqual(t, "timestamp kept", op.CompletedAt, int64(1000))
	testutil.AssertEqual(t, "event count", len(s.Events()), 3)
	testutil.AssertEqual(t, "re-complete event", s.Events()[2].Type, events.ObjectiveCompleted)
}

func TestCompleteUnknownObjective(t *testing.T) {
	s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})

	a := game.Action{Type: game.ActionCompleteObjective, ObjectiveID: "no-such"}
	s.apply(&a, "", "")

	testutil.AssertEqual(t, "no progress entry", len(s.State().Objectives), 0)
	// Still observable downstream.
	testutil.AssertEqual(t, "event emitted", s.Events()[0].Type, events.ObjectiveCompleted)
}

func TestIntentActionsMutateNothing(t *testing.T) {
	tests := map[string]struct {
		action game.Action
		exp    events.Type
	}{
		"sound":     {game.Action{Type: game.ActionPlaySound, SoundURL: "https://cdn/chime.mp3", Volume: 0.5}, events.SoundPlayed},
		"animation": {game.Action{Type: game.ActionPlayAnimation, TargetID: "statue-1", Animation: "wave"}, events.AnimationPlayed},
		"particles": {game.Action{Type: game.ActionEmitParticles, Effect: "sparkle"}, events.ParticlesEmitted},
		"vibrate":   {game.Action{Type: game.ActionVibrate, VibrateMs: 200}, events.Vibrated},
		"open url":  {game.Action{Type: game.ActionOpenURL, URL: "https://example.com", NewTab: true}, events.URLOpened},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t, &game.GameConfig{}, &game.Scene{Name: "gallery"})
			before := *s.State()

			s.apply(&tt.action, "statue-1", "fanfare")

			testutil.AssertEqual(t, "event type", s.Events()[0].Type, tt.exp)
			testutil.AssertEqual(t, "source object", s.Events()[0].ObjectInstanceID, "statue-1")
			testutil.AssertEqual(t, "score untouched", s.State().Score, before.Score)
			testutil.AssertEqual(t, "position untouched", s.State().Position, before.Position)
			testutil.AssertEqual(t, "inventory untouched", len(s.State().Inventory), 0)
		})
	}
}
