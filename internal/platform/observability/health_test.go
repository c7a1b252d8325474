package observability

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorageDown = errors.New("storage down")

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return rec.Code, string(body)
}

func TestServer_Healthz(t *testing.T) {
	code, body := get(t, NewServer(nil, 0, nil).Handler(), "/healthz")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)
}

func TestServer_Readyz(t *testing.T) {
	ready := NewServer(func(context.Context) error { return nil }, 0, nil)
	code, _ := get(t, ready.Handler(), "/readyz")
	assert.Equal(t, http.StatusOK, code)

	failing := NewServer(func(context.Context) error { return errStorageDown }, 0, nil)
	code, body := get(t, failing.Handler(), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body, errStorageDown.Error())
}

func TestServer_Metrics(t *testing.T) {
	GreetingsTotal.WithLabelValues(GreetingFound).Inc()

	code, body := get(t, NewServer(nil, 0, nil).Handler(), "/metrics")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "greeter_greetings_total")
}

func TestServer_ExtraHandlerIsCounted(t *testing.T) {
	srv := NewServer(nil, 0, nil)
	srv.Handle("/teapot", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("/teapot", "418"))

	code, _ := get(t, srv.Handler(), "/teapot")

	assert.Equal(t, http.StatusTeapot, code)
	assert.InDelta(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("/teapot", "418")), 0.001)
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- NewServer(nil, 0, nil).Start(ctx) }()

	cancel()

	assert.NoError(t, <-done)
}
