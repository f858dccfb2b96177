package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/http/metric"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/middleware"
	"github.com/tuanvumaihuynh/product-catalog/pkg/correlationid"
)

func TestRecoverer(t *testing.T) {
	t.Run("Should write internal error body on panic", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))

		h := middleware.Recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"errors":[{"msg":"an unknown error occurred","type":"internal_error"}]}`, rec.Body.String())
		assert.Contains(t, logs.String(), "panic while handling request")
		assert.Contains(t, logs.String(), "boom")
	})

	t.Run("Should re-panic on abort handler", func(t *testing.T) {
		h := middleware.Recoverer(slog.New(slog.NewTextHandler(io.Discard, nil)))(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(http.ErrAbortHandler)
			}),
		)

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestCorrelationID(t *testing.T) {
	var seen string
	h := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = correlationid.FromContext(r.Context())
	}))

	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "Should keep caller id", header: "abc-123", wantKeep: true},
		{name: "Should generate id when missing", header: ""},
		{name: "Should replace oversized id", header: strings.Repeat("x", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(correlationid.Header, tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			got := rec.Header().Get(correlationid.Header)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metric.New(reg)

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/products/{id:[0-9]+}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/products/1", "/products/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	// both ids share one series
	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/products/{id:[0-9]+}", "404")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.InflightRequests), 0)
}
