package sdk

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// NewZerologTelemetry returns TelemetryHooks that route SDK log entries,
// request/response lines, and verification failures through the given
// zerolog logger. Callers who run their own observability stack can wire the
// hooks directly instead.
func NewZerologTelemetry(logger zerolog.Logger) TelemetryHooks {
	return TelemetryHooks{
		OnLogEntry: func(_ context.Context, entry LogEntry) {
			evt := logger.Info()
			if entry.Level == LogLevelError {
				evt = logger.Error()
			}
			evt.Fields(entry.Fields).Msg(entry.Message)
		},
		OnResponse: func(_ context.Context, req Request, wire *WireResponse, err error, latency time.Duration) {
			evt := logger.Debug().
				Str("method", req.Method).
				Str("path", req.Path).
				Dur("latency", latency)
			if err != nil {
				evt = logger.Error().
					Str("method", req.Method).
					Str("path", req.Path).
					Dur("latency", latency).
					Err(err)
			} else if wire != nil {
				evt = evt.Int("status", wire.Status)
			}
			evt.Msg("http_response")
		},
		OnVerification: func(_ context.Context, req Request, err error) {
			if err == nil {
				return
			}
			logger.Error().
				Str("method", req.Method).
				Str("path", req.Path).
				Err(err).
				Msg("response_verification_failed")
		},
	}
}
