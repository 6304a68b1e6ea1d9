package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"warehouse/internal/config"
	"warehouse/internal/http/handlers"
	applog "warehouse/internal/log"
	"warehouse/internal/repos"
)

func testConfig() config.Config {
	return config.Config{
		DBDSN:             ":memory:",
		MaxUploadBytes:    1 << 20,
		LowStockThreshold: 10,
		ScanLimit:         1000,
	}
}

// newTestApp builds the full app over an in-memory store. tweak may adjust
// the config first.
func newTestApp(t *testing.T, tweak func(*config.Config)) *fiber.App {
	t.Helper()
	cfg := testConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	app, err := handlers.NewApp(db, cfg)
	require.NoError(t, err)
	return app
}

// observeLogs routes the app logger into an in-memory observer for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := applog.SetLogger(zap.New(core))
	t.Cleanup(func() { applog.SetLogger(prev) })
	return logs
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	if body == nil {
		return doRaw(t, app, method, path, "", nil)
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return doRaw(t, app, method, path, fiber.MIMEApplicationJSON, b)
}

func doRaw(t *testing.T, app *fiber.App, method, path, contentType string, body []byte) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// mustJSON performs the request, requires want as status and decodes the body into v.
func mustJSON(t *testing.T, app *fiber.App, method, path string, body any, want int, v any) {
	t.Helper()
	code, raw := doJSON(t, app, method, path, body)
	require.Equal(t, want, code, "body=%s", raw)
	if v != nil {
		require.NoError(t, json.Unmarshal(raw, v), "body=%s", raw)
	}
}

func errorOf(t *testing.T, raw []byte) string {
	t.Helper()
	var e struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &e), "body=%s", raw)
	return e.Error
}
