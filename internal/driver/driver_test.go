package driver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type recordingManager struct {
	ticks  int
	deltas []float32
	err    error
}

func (m *recordingManager) Tick(ctx context.Context, dt float32) error {
	m.ticks++
	m.deltas = append(m.deltas, dt)
	return m.err
}

func TestTickFansOutInOrder(t *testing.T) {
	first := &recordingManager{}
	second := &recordingManager{}
	d := NewPlayDriver([]Manager{first, second})

	if err := d.Tick(context.Background(), 0.016); err != nil {
		t.Fatalf("tick: %v", err)
	}

	testutil.AssertEqual(t, "first ticked", first.ticks, 1)
	testutil.AssertEqual(t, "second ticked", second.ticks, 1)
	testutil.AssertEqual(t, "delta", first.deltas[0], float32(0.016))
}

func TestTickStopsOnError(t *testing.T) {
	failing := &recordingManager{err: fmt.Errorf("boom")}
	after := &recordingManager{}
	d := NewPlayDriver([]Manager{failing, after})

	if err := d.Tick(context.Background(), 0.016); err == nil {
		t.Fatal("expected error")
	}
	testutil.AssertEqual(t, "later manager skipped", after.ticks, 0)
}

func TestStartTicksUntilCancelled(t *testing.T) {
	m := &recordingManager{}
	d := NewPlayDriver([]Manager{m}, WithFrameInterval(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	if m.ticks == 0 {
		t.Error("expected at least one tick")
	}
	for _, dt := range m.deltas {
		if dt < 0 {
			t.Errorf("negative delta %v", dt)
		}
	}
}

func TestStartReturnsManagerError(t *testing.T) {
	m := &recordingManager{err: fmt.Errorf("boom")}
	d := NewPlayDriver([]Manager{m}, WithFrameInterval(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := d.Start(ctx); err == nil {
		t.Fatal("expected error")
	}
}
