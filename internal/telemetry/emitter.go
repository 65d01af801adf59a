package telemetry

import (
	"fmt"
	"io"

	"github.com/dbsqp/smc-influxdb/internal/errors"
	"github.com/dbsqp/smc-influxdb/internal/smc"
)

// lineEmitter writes readings in InfluxDB line protocol. The field
// widths (%08.2f / %06.2f) match the output the legacy tool has always
// produced; downstream parsers depend on them.
type lineEmitter struct {
	w         io.Writer
	hostTag   string
	timestamp int64
}

// NewEmitter returns an Emitter writing line protocol to w. hostTag is
// either empty or a ready-made "host=<name>," tag fragment; timestamp
// is the nanosecond epoch stamped on every line.
func NewEmitter(w io.Writer, hostTag string, timestamp int64) Emitter {
	return &lineEmitter{
		w:         w,
		hostTag:   hostTag,
		timestamp: timestamp,
	}
}

func (e *lineEmitter) Temperature(reading TempReading) error {
	errFactory := errors.New()

	_, err := fmt.Fprintf(e.w, "temperature,%skey=%s,sensor=%s temp=%08.2f %d\n",
		e.hostTag, reading.Key, reading.Sensor, reading.Celsius, e.timestamp)
	if err != nil {
		return errFactory.Wrap(ErrEmitFailed, err)
	}

	return nil
}

func (e *lineEmitter) Fan(reading smc.FanReading) error {
	errFactory := errors.New()

	_, err := fmt.Fprintf(e.w, "fan,%skey=F%dAc,sensor=%s rpm=%08.2f,percent=%06.2f %d\n",
		e.hostTag, reading.Index, reading.Label, reading.RPM, reading.Percent, e.timestamp)
	if err != nil {
		return errFactory.Wrap(ErrEmitFailed, err)
	}

	return nil
}

// HostTag builds the tag fragment for a hostname, ready to splice into
// the tag set. An empty hostname yields an empty fragment.
func HostTag(hostname string) string {
	if hostname == "" {
		return ""
	}

	return fmt.Sprintf("host=%s,", hostname)
}
