package config

import (
	"os"

	"github.com/dbsqp/smc-influxdb/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "smcinflux"
	envPrefix = "SMCINFLUX"
)

// Config selects the sensor groups to read and the output/logging
// options. Values merge from defaults, an optional TOML file and
// command-line flags, flags winning.
type Config struct {
	CPU     bool `mapstructure:"cpu"`
	GPU     bool `mapstructure:"gpu"`
	WiFi    bool `mapstructure:"wifi"`
	SSD     bool `mapstructure:"ssd"`
	Fan     bool `mapstructure:"fan"`
	All     bool `mapstructure:"all"`
	Full    bool `mapstructure:"full"`
	HostTag bool `mapstructure:"hostname"`
	Debug   bool `mapstructure:"debug"`
	Verbose bool `mapstructure:"verbose"`
}

func Load() (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.BoolP("cpu", "c", false, "CPU temperature")
	fs.BoolP("gpu", "g", false, "GPU temperature")
	fs.BoolP("wifi", "w", false, "WiFi temperature")
	fs.BoolP("ssd", "s", false, "SSD temperature")
	fs.BoolP("fan", "f", false, "fan speeds")
	fs.BoolP("all", "a", false, "CPU, GPU, WiFi, SSD and fans - same as -cgwsf")
	fs.BoolP("full", "A", false, "every known temperature and fan metric")
	fs.BoolP("hostname", "n", false, "tag lines with the hostname")
	fs.Bool("debug", false, "enable debug logging")
	fs.Bool("verbose", false, "enable verbose logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}

		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	config.normalize()

	return config, nil
}

// normalize expands the umbrella flags: --all switches on every group,
// and a run with no group selected defaults to all groups, matching
// the tool's historical behavior.
func (c *Config) normalize() {
	if c.All {
		c.CPU, c.GPU, c.WiFi, c.SSD, c.Fan = true, true, true, true, true
	}

	if !c.Full && !c.CPU && !c.GPU && !c.WiFi && !c.SSD && !c.Fan {
		c.CPU, c.GPU, c.WiFi, c.SSD, c.Fan = true, true, true, true, true
	}
}
