// Package driver runs the real-time update loop that advances playtest
// sessions.
package driver

import (
	"context"
	"time"
)

const (
	DefaultFrameInterval = 16 * time.Millisecond
)

// Manager is anything the driver advances each frame. The delta is the
// measured elapsed time since the previous frame, in seconds; managers
// must never consult the wall clock themselves.
type Manager interface {
	Tick(ctx context.Context, dt float32) error
}

// PlayDriver fans frame ticks out to its managers in registration order.
type PlayDriver struct {
	frameInterval time.Duration
	managers      []Manager
}

func NewPlayDriver(managers []Manager, opts ...PlayDriverOpt) *PlayDriver {
	d := &PlayDriver{
		frameInterval: DefaultFrameInterval,
		managers:      managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start runs the frame loop until the context is cancelled. It satisfies
// the service worker contract.
func (d *PlayDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if err := d.Tick(ctx, dt); err != nil {
				return err
			}
		}
	}
}

// Tick advances every manager by dt seconds.
func (d *PlayDriver) Tick(ctx context.Context, dt float32) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx, dt); err != nil {
			return err
		}
	}
	return nil
}
