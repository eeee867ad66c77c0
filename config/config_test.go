package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/duckurl/duckapi"
	"github.com/jongio/duckurl/logutil"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("duckurl", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, duckapi.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "default", cfg.Output)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, logutil.LevelWarn, cfg.Level())
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Open)
	assert.False(t, cfg.Notify)
	assert.Empty(t, cfg.MetricsFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "duckurl.yaml", `
endpoint: http://localhost:8080/random
timeout: 5s
output: json
logFormat: json
`)

	cfg, err := Load(newFlagSet(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/random", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	cfg, err := Load(newFlagSet(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown key", content: "endpiont: https://example.com\n", wantErr: "failed to parse config file"},
		{name: "bad yaml", content: "endpoint: [\n", wantErr: "failed to parse config file"},
		{name: "bad duration", content: "timeout: soon\n", wantErr: "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "duckurl.yaml", tt.content)
			_, err := Load(newFlagSet(t, "--config", path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(newFlagSet(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "duckurl.yaml", "endpoint: https://file.example.com/random\noutput: json\n")
	t.Setenv("DUCKURL_ENDPOINT", "https://env.example.com/random")
	t.Setenv("DUCKURL_DEBUG", "true")
	t.Setenv("DUCKURL_METRICS_FILE", "/tmp/duckurl.prom")

	cfg, err := Load(newFlagSet(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/random", cfg.Endpoint)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/duckurl.prom", cfg.MetricsFile)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DUCKURL_TIMEOUT", "forever")

	_, err := Load(newFlagSet(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read environment")
}

func TestLoad_EnvFile(t *testing.T) {
	path := writeFile(t, ".env", "DUCKURL_LOG_FORMAT=json\nDUCKURL_NOTIFY=true\n")
	// godotenv exports into the process; register cleanup for both keys.
	t.Setenv("DUCKURL_LOG_FORMAT", "")
	os.Unsetenv("DUCKURL_LOG_FORMAT")
	t.Setenv("DUCKURL_NOTIFY", "")
	os.Unsetenv("DUCKURL_NOTIFY")

	cfg, err := Load(newFlagSet(t, "--env-file", path))
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.True(t, cfg.Notify)
}

func TestLoad_EnvFileDoesNotOverrideEnv(t *testing.T) {
	path := writeFile(t, ".env", "DUCKURL_OUTPUT=json\n")
	t.Setenv("DUCKURL_OUTPUT", "default")

	cfg, err := Load(newFlagSet(t, "--env-file", path))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Output)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(newFlagSet(t, "--env-file", filepath.Join(t.TempDir(), ".env")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load env file")
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	path := writeFile(t, "duckurl.yaml", "endpoint: https://file.example.com/random\ntimeout: 5s\n")
	t.Setenv("DUCKURL_ENDPOINT", "https://env.example.com/random")
	t.Setenv("DUCKURL_OPEN", "true")

	cfg, err := Load(newFlagSet(t,
		"--config", path,
		"--endpoint", "https://flag.example.com/random",
		"--timeout", "1s",
		"-o", "json",
		"--debug",
		"--open=false",
		"--metrics-file", "out.prom",
	))
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com/random", cfg.Endpoint)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Open)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
}

func TestLoad_UnchangedFlagsKeepLowerSources(t *testing.T) {
	t.Setenv("DUCKURL_TIMEOUT", "2s")

	cfg, err := Load(newFlagSet(t, "--debug"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }},
		{name: "http endpoint", mutate: func(c *Config) { c.Endpoint = "http://example.com/api" }},
		{name: "relative endpoint", mutate: func(c *Config) { c.Endpoint = "not a url" }, wantErr: "endpoint:"},
		{name: "empty endpoint", mutate: func(c *Config) { c.Endpoint = "" }, wantErr: "endpoint: url cannot be empty"},
		{name: "ftp endpoint", mutate: func(c *Config) { c.Endpoint = "ftp://example.com" }, wantErr: "got: ftp"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: "timeout: must not be negative"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: "invalid output format: xml"},
		{name: "info log level", mutate: func(c *Config) { c.LogLevel = "INFO" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "log-level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "logfmt" }, wantErr: "log-format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidReportsAllProblems(t *testing.T) {
	_, err := Load(newFlagSet(t, "--timeout=-1s", "-o", "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "output")
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		debug    bool
		want     logutil.Level
	}{
		{name: "default", logLevel: "warn", want: logutil.LevelWarn},
		{name: "info", logLevel: "info", want: logutil.LevelInfo},
		{name: "error", logLevel: "error", want: logutil.LevelError},
		{name: "debug flag wins", logLevel: "error", debug: true, want: logutil.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.LogLevel = tt.logLevel
			cfg.Debug = tt.debug
			assert.Equal(t, tt.want, cfg.Level())
		})
	}
}

func TestLoad_LogLevelSources(t *testing.T) {
	t.Setenv("DUCKURL_LOG_LEVEL", "info")

	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelInfo, cfg.Level())

	cfg, err = Load(newFlagSet(t, "--log-level", "error"))
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelError, cfg.Level())
}
