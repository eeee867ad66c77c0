package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig      = "config"
	FlagEnvFile     = "env-file"
	FlagEndpoint    = "endpoint"
	FlagTimeout     = "timeout"
	FlagOutput      = "output"
	FlagDebug       = "debug"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagMetricsFile = "metrics-file"
	FlagOpen        = "open"
	FlagNotify      = "notify"
)

// BindFlags registers duckurl's flags on fs with Default values.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "Path to a YAML config file")
	fs.String(FlagEnvFile, "", "Path to a dotenv file with DUCKURL_* variables")
	fs.String(FlagEndpoint, d.Endpoint, "API endpoint returning a JSON object with a \"url\" key")
	fs.Duration(FlagTimeout, d.Timeout, "Overall request timeout (0 disables)")
	fs.StringP(FlagOutput, "o", d.Output, "Output format: default or json")
	fs.Bool(FlagDebug, d.Debug, "Enable debug logging on stderr (same as --log-level debug)")
	fs.String(FlagLogLevel, d.LogLevel, "Log level: debug, info, warn or error")
	fs.String(FlagLogFormat, d.LogFormat, "Log format: text or json")
	fs.String(FlagMetricsFile, d.MetricsFile, "Write Prometheus metrics to this file after the run")
	fs.Bool(FlagOpen, d.Open, "Open the duck in the default browser")
	fs.Bool(FlagNotify, d.Notify, "Show a desktop notification with the duck URL")
}

// Load resolves the configuration for a run. fs must have been set up with
// BindFlags and parsed; only flags the user changed override other sources.
func Load(fs *pflag.FlagSet) (Config, error) {
	cfg := Default()

	if path, _ := fs.GetString(FlagConfig); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if path, _ := fs.GetString(FlagEnvFile); path != "" {
		if err := LoadEnvFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(fs); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set(FlagEndpoint, func() (e error) { c.Endpoint, e = fs.GetString(FlagEndpoint); return })
	set(FlagTimeout, func() (e error) { c.Timeout, e = fs.GetDuration(FlagTimeout); return })
	set(FlagOutput, func() (e error) { c.Output, e = fs.GetString(FlagOutput); return })
	set(FlagDebug, func() (e error) { c.Debug, e = fs.GetBool(FlagDebug); return })
	set(FlagLogLevel, func() (e error) { c.LogLevel, e = fs.GetString(FlagLogLevel); return })
	set(FlagLogFormat, func() (e error) { c.LogFormat, e = fs.GetString(FlagLogFormat); return })
	set(FlagMetricsFile, func() (e error) { c.MetricsFile, e = fs.GetString(FlagMetricsFile); return })
	set(FlagOpen, func() (e error) { c.Open, e = fs.GetBool(FlagOpen); return })
	set(FlagNotify, func() (e error) { c.Notify, e = fs.GetBool(FlagNotify); return })

	if err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}
	return nil
}
