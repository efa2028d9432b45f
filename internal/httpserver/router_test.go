package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/analyzer"
	"interview-insights-go/internal/store"
	"interview-insights-go/internal/types"
)

func newTestServer(t *testing.T) (*store.Memory, http.Handler) {
	t.Helper()
	st := store.NewMemory()
	batch := analyzer.NewBatch(st, analyzer.Mock{}, 1, 0)
	return st, NewRouter(st, batch, []string{"*"})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCreateInterview(t *testing.T) {
	st, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/interviews", map[string]string{
		"title":      "Ops interview",
		"company_id": "acme",
		"transcript": "We do everything in spreadsheets.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[types.Interview](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, types.StatusPending, created.AnalysisStatus)
	assert.NotEmpty(t, created.CreatedAt)

	stored, err := st.GetInterview(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ops interview", stored.Title)
}

func TestCreateInterviewRequiresTranscript(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/interviews", map[string]string{"title": "empty"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInterviewNotFound(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/interviews/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteInterview(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateInterview(types.Interview{ID: "iv1"}))

	rec := doJSON(t, h, http.MethodDelete, "/interviews/iv1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/interviews/iv1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditAnalysisMarksCompleted(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateInterview(types.Interview{
		ID: "iv1", AnalysisStatus: types.StatusFailed, AnalysisError: "timeout",
	}))

	rec := doJSON(t, h, http.MethodPut, "/interviews/iv1/analysis", types.AnalysisRecord{
		Tools: []types.Tool{{Name: "Excel"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := st.GetInterview("iv1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, stored.AnalysisStatus)
	assert.Empty(t, stored.AnalysisError)
	require.NotNil(t, stored.Analysis)
	assert.Equal(t, "Excel", stored.Analysis.Tools[0].Name)
}

func TestAnalyzeOneQueues(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateInterview(types.Interview{ID: "iv1", Transcript: "hello", AnalysisStatus: types.StatusPending}))

	rec := doJSON(t, h, http.MethodPost, "/interviews/iv1/analyze", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// The mock analyzer completes almost immediately in the background.
	require.Eventually(t, func() bool {
		iv, err := st.GetInterview("iv1")
		return err == nil && iv.AnalysisStatus == types.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAnalyzeOneUnknownInterview(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/interviews/nope/analyze", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzeBatchQueuesPendingAndFailed(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateInterview(types.Interview{ID: "p", AnalysisStatus: types.StatusPending}))
	require.NoError(t, st.CreateInterview(types.Interview{ID: "f", AnalysisStatus: types.StatusFailed}))
	require.NoError(t, st.CreateInterview(types.Interview{ID: "c", AnalysisStatus: types.StatusCompleted}))

	rec := doJSON(t, h, http.MethodPost, "/analyze", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	resp := decode[map[string]any](t, rec)
	assert.Equal(t, float64(2), resp["count"])
}

func TestDashboardAndProfileEndpoints(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateInterview(types.Interview{
		ID:             "iv1",
		AnalysisStatus: types.StatusCompleted,
		Analysis: &types.AnalysisRecord{
			Workflows: []types.Workflow{{Name: "Invoice Processing", Frequency: "daily"}},
			Tools:     []types.Tool{{Name: "Excel", UsedBy: []string{"AP Clerk"}}},
			Roles:     []types.Role{{Title: "AP Clerk"}},
		},
	}))

	rec := doJSON(t, h, http.MethodGet, "/dashboard/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	metrics := decode[types.DashboardMetrics](t, rec)
	assert.Equal(t, 1, metrics.TotalInterviews)
	assert.Len(t, metrics.Workflows, 1)

	rec = doJSON(t, h, http.MethodGet, "/analysis/merged", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	merged := decode[types.AnalysisRecord](t, rec)
	assert.Len(t, merged.Tools, 1)

	for _, path := range []string{"/profiles/roles", "/profiles/workflows", "/profiles/tools", "/profiles/training-gaps"} {
		rec = doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGenerateSummary(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateInterview(types.Interview{
		ID:             "done",
		CreatedAt:      "2026-01-10T00:00:00Z",
		AnalysisStatus: types.StatusCompleted,
		Analysis: &types.AnalysisRecord{
			Workflows: []types.Workflow{{Name: "Billing", Frequency: "weekly"}},
		},
	}))
	require.NoError(t, st.CreateInterview(types.Interview{ID: "pending", AnalysisStatus: types.StatusPending}))

	rec := doJSON(t, h, http.MethodPost, "/summaries", map[string]any{
		"title":         "Acme insights",
		"user_id":       "consultant-1",
		"interview_ids": []string{"done", "pending"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[types.SummaryRecord](t, rec)
	assert.Equal(t, "Acme insights", created.Title)
	assert.Equal(t, []string{"done"}, created.InterviewIDs, "pending interviews contribute nothing")
	require.Len(t, created.Summary.TopWorkflows, 1)
	assert.Equal(t, "Billing", created.Summary.TopWorkflows[0].Name)

	stored, err := st.GetSummary(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
}

func TestGenerateSummaryValidation(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/summaries", map[string]any{"title": "no ids"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/summaries", map[string]any{
		"interview_ids": []string{"ghost"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown interview id rejects the request")
}

func TestEditSummaryReplacesEditableSections(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateSummary(types.SummaryRecord{
		ID:    "s1",
		Title: "Draft",
		Summary: types.CompanySummary{
			TotalInterviews: 3,
			Recommendations: []types.Recommendation{{ID: "r1", Text: "old", Priority: "low"}},
		},
	}))

	rec := doJSON(t, h, http.MethodPut, "/summaries/s1", map[string]any{
		"title": "Final",
		"recommendations": []types.Recommendation{
			{ID: "r2", Text: "Replace the spreadsheet", Priority: "high"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := st.GetSummary("s1")
	require.NoError(t, err)
	assert.Equal(t, "Final", stored.Title)
	require.Len(t, stored.Summary.Recommendations, 1)
	assert.Equal(t, "Replace the spreadsheet", stored.Summary.Recommendations[0].Text)
	assert.Equal(t, 3, stored.Summary.TotalInterviews, "generated fields stay frozen")
}

func TestDeleteSummary(t *testing.T) {
	st, h := newTestServer(t)
	require.NoError(t, st.CreateSummary(types.SummaryRecord{ID: "s1"}))

	rec := doJSON(t, h, http.MethodDelete, "/summaries/s1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/summaries/s1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
