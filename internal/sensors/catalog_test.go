package sensors_test

import (
	"testing"

	"github.com/dbsqp/smc-influxdb/internal/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	catalog := sensors.All()
	require.NotEmpty(t, catalog)

	// catalog order is emission order; the primary CPU probe leads
	assert.Equal(t, sensors.Sensor{Key: "TC0P", Label: "CPU"}, catalog[0])

	byKey := make(map[string]string, len(catalog))
	for _, sensor := range catalog {
		assert.Len(t, sensor.Key, 4, "key %q must be 4 characters", sensor.Key)
		assert.NotEmpty(t, sensor.Label)
		byKey[sensor.Key] = sensor.Label
	}

	assert.Equal(t, "WiFi", byKey["TW0P"])
	assert.Equal(t, "SSD", byKey["TH0X"])
	assert.Equal(t, "Mainboard", byKey["Tm0P"])
}

func TestDefaultGroupSensorsInCatalog(t *testing.T) {
	byKey := make(map[string]string)
	for _, sensor := range sensors.All() {
		byKey[sensor.Key] = sensor.Label
	}

	for _, sensor := range []sensors.Sensor{sensors.CPU, sensors.GPU, sensors.SSD, sensors.WiFi} {
		assert.Equal(t, sensor.Label, byKey[sensor.Key])
	}
}
