package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestHandlerExposesCounters(t *testing.T) {
	before := testutil.ToFloat64(HistoryAppendFailures.WithLabelValues("create"))
	HistoryAppendFailures.WithLabelValues("create").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(HistoryAppendFailures.WithLabelValues("create")))

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "laundry_status_history_append_failures_total")
}
