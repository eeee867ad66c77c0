// Package logutil provides duckurl's structured logging on top of slog.
//
// Logs always go to stderr so that stdout only ever carries the duck URL.
//
// # Basic Usage
//
//	logutil.SetupLogger(logutil.LevelWarn, false)
//
//	log := logutil.NewLogger("duckapi").WithOperation("fetch")
//	log.Debug("response received", "status", 200)
//
// The default level is warn: a successful run prints nothing to stderr.
// --debug (or DUCKURL_DEBUG=true) lowers it to debug.
//
// # Structured Logging
//
// With structured=true logs are JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"response received","component":"duckapi","status":200}
//
// Otherwise slog's text format is used:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="response received" component=duckapi status=200
package logutil
