package smc

import (
	"fmt"

	"github.com/dbsqp/smc-influxdb/internal/logger"
)

// FanReading is one fan's resolved telemetry. Percent is the position
// of the current speed within the [min, max] range, clamped at 0 below
// but deliberately not above: a fan driven past its nominal maximum
// reports more than 100%.
type FanReading struct {
	Index   int
	Label   string
	RPM     float64
	Min     float64
	Max     float64
	Percent float64
}

// Fans enumerates the fans reported by the FNum key. Each fan must
// pass an existence check on its ID key and yield valid current, min
// and max speeds; any missing piece skips that fan. Fans reading 0 RPM
// are omitted entirely.
func Fans(s *Session) ([]FanReading, error) {
	val, err := s.ReadKey("FNum")
	if err != nil {
		return nil, err
	}

	count := int(decodeUint(val.Bytes[:], int(val.DataSize)))
	logger.Debug().Int("count", count).Msg("fan count read")

	var fans []FanReading
	for i := 0; i < count; i++ {
		if _, err := s.ReadKey(fmt.Sprintf("F%dID", i)); err != nil {
			continue
		}

		cur := FanSpeed(s, fmt.Sprintf("F%dAc", i))
		if cur < 0 {
			continue
		}

		minRPM := FanSpeed(s, fmt.Sprintf("F%dMn", i))
		if minRPM < 0 {
			continue
		}

		maxRPM := FanSpeed(s, fmt.Sprintf("F%dMx", i))
		if maxRPM < 0 {
			continue
		}

		pct := (cur - minRPM) / (maxRPM - minRPM) * 100
		if pct < 0 {
			pct = 0
		}

		if cur > 0 {
			fans = append(fans, FanReading{
				Index:   i,
				Label:   fanLabel(i, count),
				RPM:     cur,
				Min:     minRPM,
				Max:     maxRPM,
				Percent: pct,
			})
		}
	}

	return fans, nil
}

// fanLabel names a fan by its position. Single-fan machines call it
// Main; two-fan laptops have Left and Right. Anything past index 1
// gets the generic Other.
func fanLabel(index, count int) string {
	switch index {
	case 0:
		if count == 1 {
			return "Main"
		}
		return "Left"
	case 1:
		return "Right"
	default:
		return "Other"
	}
}
