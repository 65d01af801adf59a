package smc_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/dbsqp/smc-influxdb/internal/smc"
	"github.com/stretchr/testify/assert"
)

func TestTemperature(t *testing.T) {
	transport := newFakeTransport(map[string]fakeValue{
		"TC0P": {dataType: "sp78", bytes: []byte{0x2C, 0x00}},
		"TG0P": {dataType: "ui8 ", bytes: []byte{0x30}},
		"TW0P": {dataType: "sp78", bytes: nil},
	})
	session := smc.NewSession(transport)

	assert.InDelta(t, 44.0, smc.Temperature(session, "TC0P"), 1e-9)

	// unsupported type and empty value both read as absent
	assert.Zero(t, smc.Temperature(session, "TG0P"))
	assert.Zero(t, smc.Temperature(session, "TW0P"))

	// unknown key reads as absent, not an error
	assert.Zero(t, smc.Temperature(session, "TH0X"))
}

func TestFanSpeedFPE2(t *testing.T) {
	transport := newFakeTransport(map[string]fakeValue{
		"F0Ac": {dataType: "fpe2", bytes: fpe2Bytes(1200)},
	})
	session := smc.NewSession(transport)

	assert.InDelta(t, 1200.0, smc.FanSpeed(session, "F0Ac"), 1e-9)
}

func TestFanSpeedFloat(t *testing.T) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(1857.5))
	transport := newFakeTransport(map[string]fakeValue{
		"F0Ac": {dataType: "flt ", bytes: buf},
	})
	session := smc.NewSession(transport)

	assert.InDelta(t, 1857.5, smc.FanSpeed(session, "F0Ac"), 1e-6)
}

func TestFanSpeedAbsentSentinel(t *testing.T) {
	transport := newFakeTransport(map[string]fakeValue{
		"F0Mn": {dataType: "ui16", bytes: []byte{0x04, 0xB0}},
		"F0Mx": {dataType: "fpe2", bytes: nil},
	})
	session := smc.NewSession(transport)

	// 0 RPM is a valid reading, so absence is negative
	assert.InDelta(t, -1.0, smc.FanSpeed(session, "F0Mn"), 1e-9)
	assert.InDelta(t, -1.0, smc.FanSpeed(session, "F0Mx"), 1e-9)
	assert.InDelta(t, -1.0, smc.FanSpeed(session, "F9Ac"), 1e-9)
}

func TestFanSpeedZeroIsValid(t *testing.T) {
	transport := newFakeTransport(map[string]fakeValue{
		"F0Ac": {dataType: "fpe2", bytes: fpe2Bytes(0)},
	})
	session := smc.NewSession(transport)

	assert.Zero(t, smc.FanSpeed(session, "F0Ac"))
}
