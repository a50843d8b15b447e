package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/characters", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("Cookie", "session=abc")
	req.Header.Set("User-Agent", "TestAgent")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	if !strings.Contains(logOutput, LogMsgRequestHeaders) {
		t.Fatalf("Log output missing headers log: %s", logOutput)
	}
	for _, secret := range []string{"secret-key-123", "Bearer mytoken", "session=abc"} {
		if strings.Contains(logOutput, secret) {
			t.Errorf("SECURITY FAIL: Log output contains %q: %s", secret, logOutput)
		}
	}
	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("Log output missing non-sensitive header: %s", logOutput)
	}
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if strings.Contains(buf.String(), LogMsgRequestStarted) {
		t.Errorf("health checks should not be logged: %s", buf.String())
	}
}

func TestLoggingMiddleware_RecordsStatusAndClientIP(t *testing.T) {
	buf := captureLogs(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := SecurityLoggingMiddleware(nil, NewSuspiciousActivityDetector())(loggingMiddleware(inner))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quests", nil)
	req.RemoteAddr = "198.51.100.7:999"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, "status=418") {
		t.Errorf("expected status in completion log: %s", out)
	}
	if !strings.Contains(out, "client_ip=198.51.100.7") {
		t.Errorf("expected client ip in logs: %s", out)
	}
}
