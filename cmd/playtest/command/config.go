package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	FrameInterval     string        `json:"frame_interval"`
	ProximityInterval string        `json:"proximity_interval"`
	Storage           StorageConfig `json:"storage"`
	Nats              NatsConfig    `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.FrameInterval != "" {
		d, err := time.ParseDuration(c.FrameInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing frame_interval: %w", err))
		} else if d < time.Millisecond {
			el.Add(fmt.Errorf("frame_interval must be at least 1ms"))
		}
	}

	if c.ProximityInterval != "" {
		_, err := time.ParseDuration(c.ProximityInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing proximity_interval: %w", err))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())

	return el.Err()
}
