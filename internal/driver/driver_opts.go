package driver

import "time"

type PlayDriverOpt func(*PlayDriver)

func WithFrameInterval(interval time.Duration) PlayDriverOpt {
	return func(d *PlayDriver) {
		d.frameInterval = interval
	}
}
