package telemetry

import "github.com/dbsqp/smc-influxdb/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrorCode("telemetry_invalid_config")

	// Collection Errors
	ErrCollectFailed    = errors.ErrorCode("telemetry_collect_failed")
	ErrEmitFailed       = errors.ErrorCode("telemetry_emit_failed")
	ErrOperationTimeout = errors.ErrorCode("telemetry_operation_timeout")
)
