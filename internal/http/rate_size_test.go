package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/config"
)

// Burst hits return 429 once the per-minute budget is spent.
func TestRateLimit(t *testing.T) {
	logs := observeLogs(t)
	app := newTestApp(t, func(c *config.Config) { c.RateLimitPerMin = 3 })

	for i := 0; i < 4; i++ {
		code, _ := doJSON(t, app, "GET", "/items/", nil)
		if i < 3 {
			require.NotEqual(t, http.StatusTooManyRequests, code, "hit rate limit too early at %d", i)
			continue
		}
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
	assert.Equal(t, 1, logs.FilterMessage("rate.limit.hit").Len())

	// health checks are exempt
	code, _ := doJSON(t, app, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
}

// Oversized bodies are rejected before reaching a handler.
func TestBodySizeLimit(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.MaxUploadBytes = 1 << 10 })

	oversize := bytes.Repeat([]byte("A"), (1<<10)+10)
	req := httptest.NewRequest("POST", "/suppliers/", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	// fasthttp may fail the round trip instead of answering; either way the body never lands
	if err != nil {
		if strings.Contains(err.Error(), "body size exceeds") || strings.Contains(err.Error(), "too large") {
			return
		}
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 413 for oversize, got %d body=%s", resp.StatusCode, string(body))
	}
}
