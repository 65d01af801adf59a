package smc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeKey(t *testing.T) {
	assert.Equal(t, uint32(0x54433050), EncodeKey("TC0P"))
	assert.Equal(t, uint32(0x464E756D), EncodeKey("FNum"))
	assert.Equal(t, uint32(0x73703738), EncodeKey("sp78"))
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{"TC0P", "TG0P", "TW0P", "FNum", "F0Ac", "flt ", "fpe2", "sp78", "#KEY"}
	for _, key := range keys {
		assert.Equal(t, key, DecodeType(EncodeKey(key)), "round trip for %q", key)
	}
}

func TestDecodeUint(t *testing.T) {
	assert.Equal(t, uint32(2), decodeUint([]byte{0x02}, 1))
	assert.Equal(t, uint32(0), decodeUint([]byte{0x00}, 1))
	assert.Equal(t, uint32(256), decodeUint([]byte{0x01, 0x00}, 2))
	assert.Equal(t, uint32(0x0102), decodeUint([]byte{0x01, 0x02}, 2))

	// size beyond the buffer is clamped, not a panic
	assert.Equal(t, uint32(7), decodeUint([]byte{0x07}, 4))
}
