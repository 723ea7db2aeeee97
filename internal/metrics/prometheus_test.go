package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/swingimport/internal/core"
)

func TestManager_ParseCompleted(t *testing.T) {
	m := NewManager()

	m.ParseCompleted(core.ShapeSummary, 8, 1, 20*time.Millisecond)
	m.ParseCompleted(core.ShapeSummary, 4, 0, 10*time.Millisecond)
	m.ParseCompleted(core.ShapeDetailed, 5, 2, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parsesTotal.WithLabelValues("summary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parsesTotal.WithLabelValues("detailed")))
	assert.Equal(t, 17.0, testutil.ToFloat64(m.rowsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.droppedRows))
	assert.Equal(t, 2, testutil.CollectAndCount(m.parseDuration))
}

func TestManager_ParseFailed(t *testing.T) {
	m := NewManager()

	m.ParseFailed("FILE005")
	m.ParseFailed("FILE005")
	m.ParseFailed("FILE001")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parseFailures.WithLabelValues("FILE005")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseFailures.WithLabelValues("FILE001")))
}

func TestManager_ActiveParses(t *testing.T) {
	active := 3
	m := NewManager(WithActiveParses(func() int { return active }))

	expected := `
# HELP swing_import_active_parses Parses currently holding a limiter slot
# TYPE swing_import_active_parses gauge
swing_import_active_parses 3
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "swing_import_active_parses")
	assert.NoError(t, err)
}

func TestManager_Handler(t *testing.T) {
	m := NewManager(WithNamespace("test"))
	m.ParseCompleted(core.ShapeGeneric, 1, 0, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `test_import_parses_total{shape="generic"} 1`)
}

func TestManager_Middleware(t *testing.T) {
	m := NewManager()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/shapes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/api/analyses/parse", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/shapes", nil),
		httptest.NewRequest(http.MethodGet, "/api/shapes", nil),
		httptest.NewRequest(http.MethodPost, "/api/analyses/parse", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/shapes", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/analyses/parse", "400")))
}
