package telemetry

import "github.com/dbsqp/smc-influxdb/internal/errors"

// Config selects which sensor groups a pass reads. Full overrides the
// individual groups and walks the entire catalog plus fans.
type Config struct {
	CPU  bool
	GPU  bool
	WiFi bool
	SSD  bool
	Fan  bool
	Full bool
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if !c.Full && !c.CPU && !c.GPU && !c.WiFi && !c.SSD && !c.Fan {
		return errFactory.WithData(ErrInvalidConfig, "no sensor group selected")
	}

	return nil
}
