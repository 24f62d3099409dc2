package command

import (
	"fmt"
	"time"

	service "github.com/pixil98/go-service"
	"github.com/splatforge/go-playtest/internal/driver"
	"github.com/splatforge/go-playtest/internal/host"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	experiences, err := cfg.Storage.Experiences.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating experience store: %w", err)
	}
	scenes, err := cfg.Storage.Scenes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scene store: %w", err)
	}

	broker, err := cfg.Nats.buildBroker()
	if err != nil {
		return nil, fmt.Errorf("creating broker: %w", err)
	}

	proximityInterval := time.Duration(0)
	if cfg.ProximityInterval != "" {
		proximityInterval, err = time.ParseDuration(cfg.ProximityInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing proximity_interval: %w", err)
		}
	}

	sessions := host.NewSessionManager(experiences, scenes, broker, proximityInterval)

	var driverOpts []driver.PlayDriverOpt
	if cfg.FrameInterval != "" {
		d, err := time.ParseDuration(cfg.FrameInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing frame_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithFrameInterval(d))
	}

	return service.WorkerList{
		"broker":   broker,
		"sessions": sessions,
		"driver":   driver.NewPlayDriver([]driver.Manager{sessions}, driverOpts...),
	}, nil
}
