package smc

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFixedPointFPE2(t *testing.T) {
	// Golden vectors: fpe2 is raw/4 with two fractional bits.
	assert.InDelta(t, 12.5, decodeFixedPoint([]byte{0x00, 0x32}, 2, 2), 1e-9)
	assert.InDelta(t, 1200.0, decodeFixedPoint([]byte{0x12, 0xC0}, 2, 2), 1e-9)
	assert.InDelta(t, 3000.0, decodeFixedPoint([]byte{0x2E, 0xE0}, 2, 2), 1e-9)
	assert.InDelta(t, 0.0, decodeFixedPoint([]byte{0x00, 0x00}, 2, 2), 1e-9)
}

func TestDecodeFixedPointQuarterTerm(t *testing.T) {
	// The low two bits of the last byte contribute quarter steps.
	assert.InDelta(t, 12.75, decodeFixedPoint([]byte{0x00, 0x33}, 2, 2), 1e-9)
	assert.InDelta(t, 12.25, decodeFixedPoint([]byte{0x00, 0x31}, 2, 2), 1e-9)
}

func TestDecodeFixedPointDegenerate(t *testing.T) {
	assert.Zero(t, decodeFixedPoint(nil, 0, 2))
	assert.Zero(t, decodeFixedPoint([]byte{}, 2, 2))
}

func TestDecodeSP78(t *testing.T) {
	assert.InDelta(t, 44.0, decodeSP78([]byte{0x2C, 0x00}), 1e-9)
	assert.InDelta(t, 44.5, decodeSP78([]byte{0x2C, 0x80}), 1e-9)
	assert.InDelta(t, -1.0, decodeSP78([]byte{0xFF, 0x00}), 1e-9)
	assert.InDelta(t, -0.5, decodeSP78([]byte{0xFF, 0x80}), 1e-9)
	assert.Zero(t, decodeSP78([]byte{0x2C}))
}

func TestDecodeFloat32(t *testing.T) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(1200.0))
	assert.InDelta(t, 1200.0, float64(decodeFloat32(buf)), 1e-6)

	binary.LittleEndian.PutUint32(buf, math.Float32bits(0))
	assert.Zero(t, decodeFloat32(buf))

	assert.Zero(t, decodeFloat32([]byte{0x01, 0x02}))
}
