package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout_api/internal/modules/config"
	"breakout_api/internal/modules/health/service"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Service.Host = "127.0.0.1"
	cfg.Service.AdminPort = 9999
	assert.Equal(t, "127.0.0.1:9999", NewConfig(cfg).Addr)
}

func TestMux_LiveAndReady(t *testing.T) {
	state := service.NewState()
	mux := NewMux(state)

	rec := get(t, mux, "/livez")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = get(t, mux, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	state.SetReady(true)
	rec = get(t, mux, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())
}

func TestMux_Healthz(t *testing.T) {
	state := service.NewState()
	state.SetReady(true)
	state.ObserveRequest()
	state.ObserveRequest()
	state.ObserveSignal(time.Unix(1700000000, 0))
	mux := NewMux(state)

	rec := get(t, mux, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Ready          bool  `json:"ready"`
		Requests       int64 `json:"requests"`
		Signals        int64 `json:"signals"`
		LastSignalUnix int64 `json:"lastSignalUnix"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Ready)
	assert.Equal(t, int64(2), body.Requests)
	assert.Equal(t, int64(1), body.Signals)
	assert.Equal(t, int64(1700000000), body.LastSignalUnix)
}

func TestMux_WrongMethod(t *testing.T) {
	mux := NewMux(service.NewState())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/livez", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
