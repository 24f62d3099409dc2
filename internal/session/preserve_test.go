package session

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/geom"
)

func TestPreservedStateRoundTrip(t *testing.T) {
	src := NewPlayerState(geom.Vec3{X: 5}, 90, &game.GameConfig{})
	src.Score = 120
	src.ElapsedMs = 45000
	src.addItem("coin", "coin-1", "Coin", 3, true)
	src.addItem("brass-key", "key-1", "Brass Key", 1, true)
	src.Inventory[0].CollectedAt = 100
	src.Variables["door"] = "open"
	src.Objectives["find-the-key"] = &ObjectiveProgress{Completed: true, Progress: 1, CompletedAt: 2000}
	src.VisitedScenes["museum-lobby"] = true
	src.HiddenObjects["statue-1"] = true
	src.CollectedObjects["coin-1"] = true

	p := ExtractPreservedState(src)

	dst := NewPlayerState(geom.Vec3{}, 0, &game.GameConfig{})
	ApplyPreservedState(p, dst)

	testutil.AssertEqual(t, "score", dst.Score, 120)
	testutil.AssertEqual(t, "elapsed", dst.ElapsedMs, int64(45000))
	testutil.AssertEqual(t, "inventory entries", len(dst.Inventory), 2)
	testutil.AssertEqual(t, "coin quantity", dst.Item("coin").Quantity, 3)
	testutil.AssertEqual(t, "variable", dst.Variables["door"], "open")
	testutil.AssertEqual(t, "objective", dst.Objectives["find-the-key"].Completed, true)
	testutil.AssertEqual(t, "visited", dst.VisitedScenes["museum-lobby"], true)

	// Collection times are re-stamped to the carried elapsed time.
	testutil.AssertEqual(t, "restamped", dst.Inventory[0].CollectedAt, int64(45000))

	// Scene-local state stays behind.
	testutil.AssertEqual(t, "hidden objects dropped", len(dst.HiddenObjects), 0)
	testutil.AssertEqual(t, "collected objects dropped", len(dst.CollectedObjects), 0)
	testutil.AssertEqual(t, "position not carried", dst.Position, geom.Vec3{})
}

func TestPreservedStateIsACopy(t *testing.T) {
	src := NewPlayerState(geom.Vec3{}, 0, &game.GameConfig{})
	src.addItem("coin", "", "", 1, true)
	src.Variables["door"] = "open"
	src.Objectives["a"] = &ObjectiveProgress{Completed: false}

	p := ExtractPreservedState(src)

	src.Inventory[0].Quantity = 99
	src.Variables["door"] = "closed"
	src.Objectives["a"].Completed = true

	testutil.AssertEqual(t, "inventory isolated", p.Inventory[0].Quantity, 1)
	testutil.AssertEqual(t, "variables isolated", p.Variables["door"], "open")
	testutil.AssertEqual(t, "objectives isolated", p.Objectives["a"].Completed, false)
}

func TestApplyNilPreserved(t *testing.T) {
	st := NewPlayerState(geom.Vec3{}, 0, &game.GameConfig{})
	ApplyPreservedState(nil, st)
	testutil.AssertEqual(t, "untouched", st.Score, 0)
}
