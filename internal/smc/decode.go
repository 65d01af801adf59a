package smc

import (
	"encoding/binary"
	"math"
)

// Type tags recognized by the decoders.
const (
	typeFlt  = "flt "
	typeFPE2 = "fpe2"
	typeSP78 = "sp78"
)

// decodeFixedPoint interprets the first size bytes of buf as an
// unsigned fixed-point value with e fractional bits. This reproduces
// the decode the legacy tool has always used, including the trailing
// quarter-step term taken from the low two bits of the last byte.
// Outputs must stay bit-for-bit comparable with that tool, so do not
// simplify the arithmetic.
func decodeFixedPoint(buf []byte, size int, e uint) float64 {
	if size > len(buf) {
		size = len(buf)
	}
	if size == 0 {
		return 0
	}

	var total float64
	for i := 0; i < size; i++ {
		if i == size-1 {
			total += float64(buf[i] >> e)
		} else {
			total += float64(uint64(buf[i]) << ((size - 1 - i) * (8 - int(e))))
		}
	}

	total += float64(buf[size-1]&0x03) * 0.25

	return total
}

// decodeSP78 interprets the first two bytes of buf as a signed 8.8
// fixed-point temperature: the integer byte is signed, the fraction
// byte is not.
func decodeSP78(buf []byte) float64 {
	if len(buf) < 2 {
		return 0
	}

	return float64(int32(int8(buf[0]))*256+int32(buf[1])) / 256.0
}

// decodeFloat32 reinterprets the first four bytes of buf as an
// IEEE-754 float in the controller's byte order. The wire order is
// little endian on the target hardware, so the conversion is explicit
// rather than a raw in-place cast.
func decodeFloat32(buf []byte) float32 {
	if len(buf) < 4 {
		return 0
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:4]))
}
