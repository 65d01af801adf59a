package smc

import "github.com/dbsqp/smc-influxdb/internal/errors"

const (
	// Session lifecycle errors
	ErrServiceUnavailable = errors.ErrorCode("smc_service_unavailable")
	ErrOpenFailed         = errors.ErrorCode("smc_open_failed")
	ErrCloseFailed        = errors.ErrorCode("smc_close_failed")

	// Key exchange errors
	ErrReadKeyFailed    = errors.ErrorCode("smc_read_key_failed")
	ErrInvalidKey       = errors.ErrorCode("smc_invalid_key")
	ErrInvalidDataSize  = errors.ErrorCode("smc_invalid_data_size")
	ErrReadVersFailed   = errors.ErrorCode("smc_read_version_failed")
	ErrReadPLimitFailed = errors.ErrorCode("smc_read_plimit_failed")
)

// IsUnavailable reports whether err indicates the controller service
// could not be reached at all, as opposed to a single failed exchange.
func IsUnavailable(err error) bool {
	return errors.HasCode(err, ErrServiceUnavailable) || errors.HasCode(err, ErrOpenFailed)
}
