package smc

import "github.com/dbsqp/smc-influxdb/internal/logger"

// Temperature resolves one key into degrees Celsius. Temperatures are
// reported in the sp78 signed 8.8 format; a failed read, an empty
// value, or any other type tag yields 0, which callers treat as
// "sensor not present".
func Temperature(s *Session, key string) float64 {
	val, err := s.ReadKey(key)
	if err != nil {
		logger.Debug().Err(err).Str("key", key).Msg("temperature read failed")
		return 0
	}
	if val.DataSize == 0 {
		return 0
	}

	if val.DataType == typeSP78 {
		return decodeSP78(val.Bytes[:])
	}

	return 0
}

// FanSpeed resolves one key into RPM. Fan values arrive either as a
// native float ("flt ") or as fpe2 fixed point. The absent sentinel is
// -1 rather than 0: a stopped fan legitimately reads 0 RPM.
func FanSpeed(s *Session, key string) float64 {
	val, err := s.ReadKey(key)
	if err != nil {
		logger.Debug().Err(err).Str("key", key).Msg("fan speed read failed")
		return -1
	}
	if val.DataSize == 0 {
		return -1
	}

	switch val.DataType {
	case typeFlt:
		return float64(decodeFloat32(val.Bytes[:]))
	case typeFPE2:
		return decodeFixedPoint(val.Bytes[:], int(val.DataSize), 2)
	}

	return -1
}
