// Package sensors holds the catalog of known temperature probes: the
// 4-character SMC key of each sensor and its human-readable label.
package sensors

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"

	"github.com/dbsqp/smc-influxdb/internal/logger"
)

// Sensor is one catalog entry.
type Sensor struct {
	Key   string
	Label string
}

// Default probes per sensor group. These are the well-known primary
// keys present on most machines; the full catalog covers the rest.
var (
	CPU  = Sensor{Key: "TC0P", Label: "CPU"}
	GPU  = Sensor{Key: "TG0P", Label: "GPU"}
	SSD  = Sensor{Key: "TH0X", Label: "SSD"}
	WiFi = Sensor{Key: "TW0P", Label: "WiFi"}
)

//go:embed sensors.tsv
var catalogData []byte

// All returns every known temperature sensor in catalog order. Labels
// are not unique: some keys are model-specific aliases for the same
// physical probe.
func All() []Sensor {
	parser := csv.NewReader(bytes.NewReader(catalogData))
	parser.Comma = '\t'

	var catalog []Sensor
	for {
		line, err := parser.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error().Err(err).Msg("malformed sensor catalog entry")
			break
		}
		if len(line) == 2 {
			catalog = append(catalog, Sensor{Key: line[0], Label: line[1]})
		}
	}

	return catalog
}
