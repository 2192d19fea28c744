package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))

	return m.GetCounter().GetValue()
}

func TestObserveAction(t *testing.T) {
	before := counterValue(t, ActionsTotal.WithLabelValues("restart", "error"))

	ObserveAction("restart", errors.New("boom"))

	after := counterValue(t, ActionsTotal.WithLabelValues("restart", "error"))
	assert.Equal(t, before+1, after)
}

func TestInstrument(t *testing.T) {
	handler := Instrument("teapot", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := counterValue(t, HTTPRequestsTotal.WithLabelValues("teapot", "4xx"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, counterValue(t, HTTPRequestsTotal.WithLabelValues("teapot", "4xx")))
}

func TestHandler(t *testing.T) {
	RebuildsTotal.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "kivimon_rebuilds_total")
}
