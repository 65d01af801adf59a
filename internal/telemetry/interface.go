package telemetry

import (
	"context"

	"github.com/dbsqp/smc-influxdb/internal/smc"
)

// Collector drives one telemetry pass: reading the configured sensors
// from the controller and handing each resolved value to the Emitter.
type Collector interface {
	Run(ctx context.Context) error
}

// Emitter consumes resolved readings and writes them out as metric
// lines. Implementations own the formatting; the collector owns the
// suppression rules for absent sensors.
type Emitter interface {
	Temperature(reading TempReading) error
	Fan(reading smc.FanReading) error
}

// TempReading is one resolved temperature sensor.
type TempReading struct {
	Key     string
	Sensor  string
	Celsius float64
}
