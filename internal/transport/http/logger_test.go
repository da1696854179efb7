package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/msstore-grabber/internal/logger"
)

// enableDebugLevel switches the global logger to debug for the duration of a test.
// Tests calling it must not run in parallel.
func enableDebugLevel(t *testing.T) {
	t.Helper()

	previous := logger.Level()

	logger.SetLevel(zapcore.DebugLevel)
	t.Cleanup(func() { logger.SetLevel(previous) })
}

func observedContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return logger.ToContext(context.Background(), zap.New(core).Sugar()), logs
}

// TestLogTransport_DumpsFormRequest tests that the POST form and the text response are logged.
func TestLogTransport_DumpsFormRequest(t *testing.T) {
	enableDebugLevel(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<table></table>")) //nolint:errcheck,gosec // Test handler, error is not critical.
	}))
	defer server.Close()

	ctx, logs := observedContext()

	form := url.Values{"type": {"ProductId"}, "ProductId": {"9WZDNCRFJBMP"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/api/GetFiles",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "POST /api/GetFiles [200]")
	assert.Contains(t, entries[0].Message, "ProductId=9WZDNCRFJBMP")
	assert.Contains(t, entries[0].Message, "<table></table>")
}

// TestLogTransport_SkipsBinaryBody tests that package bodies are not dumped.
func TestLogTransport_SkipsBinaryBody(t *testing.T) {
	enableDebugLevel(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("PK-binary-payload")) //nolint:errcheck,gosec // Test handler, error is not critical.
	}))
	defer server.Close()

	ctx, logs := observedContext()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/file.appx", nil)
	require.NoError(t, err)

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Message, "PK-binary-payload")
}

// TestLogTransport_Truncates tests that long dumps are cut to the configured length.
func TestLogTransport_Truncates(t *testing.T) {
	enableDebugLevel(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(strings.Repeat("x", 500))) //nolint:errcheck,gosec // Test handler, error is not critical.
	}))
	defer server.Close()

	ctx, logs := observedContext()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := NewLogTransport(http.DefaultTransport, 32).RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "... [truncated]")
	assert.NotContains(t, entries[0].Message, strings.Repeat("x", 100))
}

// TestLogTransport_LogsFailure tests that transport errors are logged and returned.
func TestLogTransport_LogsFailure(t *testing.T) {
	enableDebugLevel(t)

	ctx, logs := observedContext()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://[::1]:0", nil)
	require.NoError(t, err)

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(req) //nolint:bodyclose // Response is nil on error.
	require.Error(t, err)
	assert.Nil(t, resp)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Request failed", entries[0].Message)
}

// TestLogTransport_NilRequest tests that a nil request is rejected.
func TestLogTransport_NilRequest(t *testing.T) {
	t.Parallel()

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(nil) //nolint:bodyclose // Response is nil on error.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)
}
