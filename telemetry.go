package sdk

import (
	"context"
	"time"
)

// TelemetryHooks expose observability callbacks without forcing dependencies
// on the caller.
type TelemetryHooks struct {
	// OnRequest fires after signing, just before the transport runs.
	OnRequest func(ctx context.Context, req Request)
	// OnResponse fires after the transport returns (even when err != nil).
	OnResponse func(ctx context.Context, req Request, wire *WireResponse, err error, latency time.Duration)
	// OnVerification fires after response signature verification; err is nil
	// on pass-through and success.
	OnVerification func(ctx context.Context, req Request, err error)
	// OnLogEntry allows callers to capture SDK log events (info/errors).
	OnLogEntry func(ctx context.Context, entry LogEntry)
	// OnMetric records lightweight counters/gauges for observability dashboards.
	OnMetric func(ctx context.Context, metric Metric)
}

// LogLevel encodes the severity for log hooks.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

// LogEntry captures structured log details for SDK consumers.
type LogEntry struct {
	Level   LogLevel
	Message string
	Fields  map[string]any
}

// Metric represents a single observability datapoint.
type Metric struct {
	Name   string
	Value  float64
	Labels map[string]string
}

func (t TelemetryHooks) log(ctx context.Context, level LogLevel, msg string, fields map[string]any) {
	if t.OnLogEntry == nil {
		return
	}
	t.OnLogEntry(ctx, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (t TelemetryHooks) metric(ctx context.Context, name string, value float64, labels map[string]string) {
	if t.OnMetric == nil {
		return
	}
	t.OnMetric(ctx, Metric{Name: name, Value: value, Labels: labels})
}
