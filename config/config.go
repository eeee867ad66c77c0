// Package config resolves duckurl's settings from defaults, an optional YAML
// file, an optional dotenv file, DUCKURL_* environment variables and
// command-line flags, in that order of increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jongio/duckurl/cliout"
	"github.com/jongio/duckurl/duckapi"
	"github.com/jongio/duckurl/httpclient"
	"github.com/jongio/duckurl/logutil"
	"github.com/jongio/duckurl/urlutil"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable, e.g. DUCKURL_ENDPOINT.
const EnvPrefix = "DUCKURL"

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the resolved settings for one run.
type Config struct {
	Endpoint    string        `yaml:"endpoint" split_words:"true"`
	Timeout     time.Duration `yaml:"timeout" split_words:"true"`
	Output      string        `yaml:"output" split_words:"true"`
	Debug       bool          `yaml:"debug" split_words:"true"`
	LogLevel    string        `yaml:"logLevel" split_words:"true"`
	LogFormat   string        `yaml:"logFormat" split_words:"true"`
	MetricsFile string        `yaml:"metricsFile" split_words:"true"`
	Open        bool          `yaml:"open" split_words:"true"`
	Notify      bool          `yaml:"notify" split_words:"true"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Endpoint:  duckapi.DefaultEndpoint,
		Timeout:   httpclient.DefaultTimeout,
		Output:    string(cliout.FormatDefault),
		LogLevel:  logutil.LevelWarn.String(),
		LogFormat: LogFormatText,
	}
}

// Level returns the effective log level. Debug forces LevelDebug.
func (c Config) Level() logutil.Level {
	if c.Debug {
		return logutil.LevelDebug
	}
	level, _ := logutil.ParseLevel(c.LogLevel)
	return level
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	var errs []error
	if err := urlutil.Validate(c.Endpoint); err != nil {
		errs = append(errs, fmt.Errorf("endpoint: %w", err))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout: must not be negative, got %s", c.Timeout))
	}
	if _, err := cliout.ParseFormat(c.Output); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if _, ok := logutil.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("log-level: must be debug, info, warn or error, got %q", c.LogLevel))
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		errs = append(errs, fmt.Errorf("log-format: must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat))
	}
	return errors.Join(errs...)
}

// LoadFile merges a YAML file into c. Unknown keys are rejected; an empty
// file is allowed.
func (c *Config) LoadFile(path string) error {
	// #nosec G304 -- path comes from the --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnvFile exports the variables in a dotenv file. Variables already
// set in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadEnv overrides c with DUCKURL_* environment variables that are set.
func (c *Config) LoadEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}
