package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDerivation_CountsByResult(t *testing.T) {
	s := NewService()

	s.ObserveDerivation(ResultOK, 20*time.Millisecond)
	s.ObserveDerivation(ResultOK, 30*time.Millisecond)
	s.ObserveDerivation(ResultInvalidInput, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.derivationCounter.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.derivationCounter.WithLabelValues(ResultInvalidInput)))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.derivationCounter.WithLabelValues(ResultNotAdmitted)))
	assert.Equal(t, 2, testutil.CollectAndCount(s.derivationDuration))
}

func TestTrackInflight(t *testing.T) {
	s := NewService()

	done1 := s.TrackInflight()
	done2 := s.TrackInflight()
	assert.Equal(t, 2.0, testutil.ToFloat64(s.derivationInflight))

	done1()
	done2()
	assert.Equal(t, 0.0, testutil.ToFloat64(s.derivationInflight))
}

func TestHandler_RecordsHTTPMetricsUnderHandlerID(t *testing.T) {
	s := NewService()
	h := s.Handler("/api/generate/{pepper}/{word}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/generate/secret/word", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	body := scrape(t, s)
	assert.Contains(t, body, `handler="/api/generate/{pepper}/{word}"`)
	assert.NotContains(t, body, "secret")
}

func TestHandlerID_Middleware(t *testing.T) {
	s := NewService()
	mw := s.HandlerID("/api/")
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/", nil))

	assert.Contains(t, scrape(t, s), `handler="/api/"`)
}

func TestExpositionHandler_ServesDerivationMetrics(t *testing.T) {
	s := NewService()
	s.ObserveDerivation(ResultError, time.Millisecond)

	body := scrape(t, s)
	assert.Contains(t, body, "passgen_derivation_total")
	assert.Contains(t, body, `result="error"`)
	assert.Contains(t, body, "go_goroutines")
}

func scrape(t *testing.T, s *Service) string {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ExpositionHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return strings.TrimSpace(string(b))
}
