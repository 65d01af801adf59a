// Package telemetry turns one open SMC session into a stream of metric
// lines: it walks the configured sensor groups, resolves each key and
// emits a line per present sensor. Absent sensors are silently
// omitted; only the inability to reach the controller at all fails a
// pass.
package telemetry

import (
	"context"

	"github.com/dbsqp/smc-influxdb/internal/errors"
	"github.com/dbsqp/smc-influxdb/internal/logger"
	"github.com/dbsqp/smc-influxdb/internal/sensors"
	"github.com/dbsqp/smc-influxdb/internal/smc"
)

type service struct {
	session *smc.Session
	emitter Emitter
	cfg     Config
}

// NewService builds a Collector over an open session.
func NewService(session *smc.Session, emitter Emitter, cfg Config) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	return &service{
		session: session,
		emitter: emitter,
		cfg:     cfg,
	}, nil
}

func (s *service) Run(ctx context.Context) error {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	if s.cfg.Full {
		for _, sensor := range sensors.All() {
			if err := s.emitTemperature(sensor); err != nil {
				return err
			}
		}

		return s.emitFans()
	}

	groups := []struct {
		enabled bool
		sensor  sensors.Sensor
	}{
		{s.cfg.CPU, sensors.CPU},
		{s.cfg.GPU, sensors.GPU},
		{s.cfg.SSD, sensors.SSD},
		{s.cfg.WiFi, sensors.WiFi},
	}
	for _, group := range groups {
		if !group.enabled {
			continue
		}
		if err := s.emitTemperature(group.sensor); err != nil {
			return err
		}
	}

	if s.cfg.Fan {
		return s.emitFans()
	}

	return nil
}

// emitTemperature reads one probe and emits it when present. A reading
// of 0 or below means absent and produces no line.
func (s *service) emitTemperature(sensor sensors.Sensor) error {
	celsius := smc.Temperature(s.session, sensor.Key)
	if celsius <= 0 {
		return nil
	}

	return s.emitter.Temperature(TempReading{
		Key:     sensor.Key,
		Sensor:  sensor.Label,
		Celsius: celsius,
	})
}

// emitFans enumerates and emits all present fans. A failed FNum read
// means no fan telemetry, not a failed pass.
func (s *service) emitFans() error {
	fans, err := smc.Fans(s.session)
	if err != nil {
		logger.Debug().Err(err).Msg("fan enumeration failed")
		return nil
	}

	for _, fan := range fans {
		if err := s.emitter.Fan(fan); err != nil {
			return err
		}
	}

	return nil
}
