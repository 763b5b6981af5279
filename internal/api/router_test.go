package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const conditional = "Si llueve, entonces la calle se moja. La calle está mojada, luego llovió."

func newTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("RATE_LIMIT_RPS", "1000")
	t.Setenv("RATE_LIMIT_BURST", "1000")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	engine := reasoning.NewEngine(knowledge.Default(), reasoning.NewKeyedSource(1), zap.NewNop(),
		reasoning.WithClock(func() time.Time { return fixed }))
	app := NewApp(nil, engine, zap.NewNop())
	t.Cleanup(app.Close)
	return app
}

func do(t *testing.T, app *App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyze(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodPost, "/v1/analyze", map[string]any{
		"text":    conditional,
		"context": map[string]string{"user_id": "ana"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var report domain.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, conditional, report.Query)
	var ids []string
	for _, d := range report.Detections {
		ids = append(ids, d.ID)
	}
	assert.Contains(t, ids, knowledge.IDAffirmingConsequent)
	assert.NotEmpty(t, report.Text)

	rec = do(t, app, http.MethodGet, "/v1/users/ana/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, 1, p.ConsultCount)
}

func TestAnalyze_BadRequests(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name string
		body any
		want int
	}{
		{"malformed json", "{", http.StatusBadRequest},
		{"missing text", map[string]any{}, http.StatusBadRequest},
		{"unknown field", map[string]any{"text": "hola mundo", "extra": 1}, http.StatusBadRequest},
		{"too large", `{"text":"` + strings.Repeat("a", 1<<20) + `"}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, app, http.MethodPost, "/v1/analyze", tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestAnalyze_EmptyTextIsReportedNotRejected(t *testing.T) {
	app := newTestApp(t)
	rec := do(t, app, http.MethodPost, "/v1/analyze", map[string]any{"text": "   "})
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, domain.InputWhitespace, report.InputError)
	assert.Zero(t, app.Engine.Statistics().TotalProcessed)
}

func TestBatch(t *testing.T) {
	app := newTestApp(t)
	rec := do(t, app, http.MethodPost, "/v1/analyze/batch", map[string]any{
		"queries": []map[string]any{{"text": conditional}, {"text": ""}, {"text": "Todos los gatos son felinos."}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Results []struct {
			Index  int                    `json:"index"`
			Report *domain.AnalysisReport `json:"report"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, domain.InputEmpty, resp.Results[1].Report.InputError)

	rec = do(t, app, http.MethodPost, "/v1/analyze/batch", map[string]any{"queries": []any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnoseAndStatistics(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodPost, "/v1/diagnose", map[string]any{"text": conditional})
	require.Equal(t, http.StatusOK, rec.Code)
	var d domain.Diagnosis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Contains(t, d.FallacyIDs, knowledge.IDAffirmingConsequent)

	rec = do(t, app, http.MethodGet, "/v1/statistics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalProcessed, "diagnose does not record")
	assert.Equal(t, reasoning.DefaultHistoryCap, stats.HistoryCap)
}

func TestLearningEndpoints(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/v1/analyze", map[string]any{"text": conditional}).Code)

	rec := do(t, app, http.MethodGet, "/v1/learning/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	exported := rec.Body.String()
	var snap domain.LearningSnapshot
	require.NoError(t, json.Unmarshal([]byte(exported), &snap))
	require.Len(t, snap.Cases, 1)

	rec = do(t, app, http.MethodPost, "/v1/cases/similar", map[string]any{"text": conditional, "limit": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"distance":0`)

	require.Equal(t, http.StatusNoContent, do(t, app, http.MethodPost, "/v1/learning/reset", nil).Code)
	assert.Zero(t, app.Engine.Statistics().TotalProcessed)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/v1/users/ana/profile", nil).Code)

	require.Equal(t, http.StatusNoContent, do(t, app, http.MethodPost, "/v1/learning/restore", exported).Code)
	assert.Equal(t, 1, app.Engine.Statistics().TotalProcessed)

	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodPost, "/v1/learning/restore", `{"total_processed":-1}`).Code)
}

func TestRestoreAcceptsLargeSnapshots(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/v1/analyze", map[string]any{"text": conditional}).Code)
	exported := do(t, app, http.MethodGet, "/v1/learning/export", nil).Body.String()

	// Leading whitespace pushes the body past the analysis request limit.
	padded := strings.Repeat(" ", 2<<20) + exported
	require.Equal(t, http.StatusNoContent, do(t, app, http.MethodPost, "/v1/learning/restore", padded).Code)
	assert.Equal(t, 1, app.Engine.Statistics().TotalProcessed)

	assert.Equal(t, http.StatusRequestEntityTooLarge, do(t, app, http.MethodPost, "/v1/analyze", strings.Repeat(" ", 2<<20)+`{"text":"hola mundo"}`).Code)
}

func TestRestoreLimitFromConfig(t *testing.T) {
	t.Setenv("RESTORE_MAX_BYTES", "64")
	app := newTestApp(t)
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/v1/analyze", map[string]any{"text": conditional}).Code)
	exported := do(t, app, http.MethodGet, "/v1/learning/export", nil).Body.String()
	require.Greater(t, len(exported), 64)

	assert.Equal(t, http.StatusRequestEntityTooLarge, do(t, app, http.MethodPost, "/v1/learning/restore", exported).Code)
}

func TestHealthStatusAndMetrics(t *testing.T) {
	app := newTestApp(t)

	rec := do(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storage":"memory"`)

	rec = do(t, app, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"history_cap":1000`)

	do(t, app, http.MethodPost, "/v1/analyze", map[string]any{"text": conditional})
	rec = do(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `logos_analyses_total{status="ok"} 1`)
	assert.Contains(t, rec.Body.String(), `logos_http_requests_total`)
}

func TestAPIKeyRequired(t *testing.T) {
	t.Setenv("API_KEY", "s3cret")
	app := newTestApp(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, app, http.MethodGet, "/v1/statistics", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/health", nil).Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/statistics", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
