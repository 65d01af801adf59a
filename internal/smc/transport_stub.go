//go:build !darwin || !cgo

package smc

import "github.com/dbsqp/smc-influxdb/internal/errors"

// The SMC is only reachable through IOKit on macOS; everywhere else
// opening a session reports the service as unavailable.
func openTransport() (Transport, error) {
	errFactory := errors.New()

	return nil, errFactory.WithData(ErrServiceUnavailable, "SMC access requires macOS with cgo")
}
