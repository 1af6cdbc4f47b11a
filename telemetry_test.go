package sdk

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTelemetryHooksFire(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var gotRequest, gotResponse, gotVerification bool
	client := testClient(t, Config{
		BaseURL:          server.URL,
		ClientPrivateKey: testKey(t),
		SessionToken:     "S",
		Telemetry: TelemetryHooks{
			OnRequest: func(_ context.Context, req Request) {
				gotRequest = true
				if len(req.Headers) == 0 {
					t.Error("OnRequest must see the fully prepared request")
				}
			},
			OnResponse: func(_ context.Context, _ Request, wire *WireResponse, err error, _ time.Duration) {
				gotResponse = true
				if err != nil || wire == nil || wire.Status != http.StatusOK {
					t.Errorf("OnResponse saw wire=%v err=%v", wire, err)
				}
			},
			OnVerification: func(_ context.Context, _ Request, err error) {
				gotVerification = true
				if err != nil {
					t.Errorf("OnVerification saw %v", err)
				}
			},
		},
	})
	if _, err := client.Do(context.Background(), NewRequest(http.MethodGet, "/v1/user", nil)); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !gotRequest || !gotResponse || !gotVerification {
		t.Errorf("hooks fired: request=%v response=%v verification=%v", gotRequest, gotResponse, gotVerification)
	}
}

func TestZerologTelemetryLogsResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	client := testClient(t, Config{
		BaseURL:          server.URL,
		ClientPrivateKey: testKey(t),
		SessionToken:     "S",
		Telemetry:        NewZerologTelemetry(logger),
	})
	if _, err := client.Do(context.Background(), NewRequest(http.MethodGet, "/v1/user", nil)); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "http_response") {
		t.Errorf("expected http_response log line, got %q", out)
	}
	if !strings.Contains(out, "/v1/user") {
		t.Errorf("expected path in log output, got %q", out)
	}
}
