package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dbsqp/smc-influxdb/internal/config"
	"github.com/dbsqp/smc-influxdb/internal/errors"
	"github.com/dbsqp/smc-influxdb/internal/logger"
	"github.com/dbsqp/smc-influxdb/internal/smc"
	"github.com/dbsqp/smc-influxdb/internal/telemetry"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose)
	logger.Debug().Msg("Config loaded")

	if err := run(cfg); err != nil {
		logger.Error().Err(err).Msg("telemetry pass failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	session, err := smc.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close SMC session")
		}
	}()

	var hostTag string
	if cfg.HostTag {
		hostTag = telemetry.HostTag(config.Hostname())
	}

	emitter := telemetry.NewEmitter(os.Stdout, hostTag, time.Now().UnixNano())

	collector, err := telemetry.NewService(session, emitter, telemetry.Config{
		CPU:  cfg.CPU,
		GPU:  cfg.GPU,
		WiFi: cfg.WiFi,
		SSD:  cfg.SSD,
		Fan:  cfg.Fan,
		Full: cfg.Full,
	})
	if err != nil {
		return err
	}

	return collector.Run(context.Background())
}
