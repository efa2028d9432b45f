package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"interview-insights-go/internal/insights"
	"interview-insights-go/internal/types"
)

func (r *Router) handleCreateInterview(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Title      string `json:"title"`
		CompanyID  string `json:"company_id"`
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if body.Transcript == "" {
		return badRequest(fmt.Errorf("transcript is required"))
	}
	iv := types.Interview{
		ID:             uuid.New().String(),
		Title:          body.Title,
		CompanyID:      body.CompanyID,
		Transcript:     body.Transcript,
		AnalysisStatus: types.StatusPending,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := r.store.CreateInterview(iv); err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, iv)
}

func (r *Router) handleListInterviews(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.store.ListInterviews())
}

func (r *Router) handleGetInterview(w http.ResponseWriter, req *http.Request) error {
	iv, err := r.store.GetInterview(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, iv)
}

func (r *Router) handleDeleteInterview(w http.ResponseWriter, req *http.Request) error {
	if err := r.store.DeleteInterview(chi.URLParam(req, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// handleEditAnalysis replaces the analysis record of one interview with a
// hand-edited version and marks the interview completed so it contributes
// to derived views. Records arrive unvalidated; the engine treats missing
// collections as empty.
func (r *Router) handleEditAnalysis(w http.ResponseWriter, req *http.Request) error {
	iv, err := r.store.GetInterview(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	var rec types.AnalysisRecord
	if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
		return badRequest(err)
	}
	iv.Analysis = &rec
	iv.AnalysisStatus = types.StatusCompleted
	iv.AnalysisError = ""
	if err := r.store.UpdateInterview(iv); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, iv)
}

func (r *Router) handleAnalyzeOne(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if _, err := r.store.GetInterview(id); err != nil {
		return err
	}
	go func() {
		if err := r.batch.Run(context.Background(), []string{id}); err != nil {
			r.log.Component("httpserver").WithField("error", err.Error()).Warn("analysis run aborted")
		}
	}()
	return writeJSON(w, http.StatusAccepted, map[string]any{
		"status":       "queued",
		"interview_id": id,
		"queuedAt":     time.Now().UTC().Format(time.RFC3339),
	})
}

// handleAnalyzeBatch queues every pending or previously failed interview.
func (r *Router) handleAnalyzeBatch(w http.ResponseWriter, req *http.Request) error {
	var ids []string
	for _, iv := range r.store.ListInterviews() {
		if iv.AnalysisStatus == types.StatusPending || iv.AnalysisStatus == types.StatusFailed {
			ids = append(ids, iv.ID)
		}
	}
	go func() {
		if err := r.batch.Run(context.Background(), ids); err != nil {
			r.log.Component("httpserver").WithField("error", err.Error()).Warn("batch run aborted")
		}
	}()
	return writeJSON(w, http.StatusAccepted, map[string]any{
		"status": "queued",
		"count":  len(ids),
	})
}

func (r *Router) handleDashboardMetrics(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, insights.CalculateDashboardMetrics(r.store.ListInterviews()))
}

func (r *Router) handleMergedAnalysis(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, insights.MergeAnalysisData(r.store.ListInterviews()))
}

func (r *Router) handleRoleProfiles(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, insights.BuildRoleProfiles(r.store.ListInterviews()))
}

func (r *Router) handleWorkflowProfiles(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, insights.BuildWorkflowProfiles(r.store.ListInterviews()))
}

func (r *Router) handleToolProfiles(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, insights.BuildToolProfiles(r.store.ListInterviews()))
}

func (r *Router) handleTrainingGapProfiles(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, insights.BuildTrainingGapProfiles(r.store.ListInterviews()))
}

// handleGenerateSummary aggregates the selected interviews (only completed
// ones contribute) and persists the result as a frozen snapshot. If the
// source interviews change afterwards the summary must be regenerated, not
// patched.
func (r *Router) handleGenerateSummary(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Title        string   `json:"title"`
		UserID       string   `json:"user_id"`
		InterviewIDs []string `json:"interview_ids"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if len(body.InterviewIDs) == 0 {
		return badRequest(fmt.Errorf("interview_ids is required"))
	}

	var analyses []types.AnalysisRecord
	var dates []string
	var included []string
	for _, id := range body.InterviewIDs {
		iv, err := r.store.GetInterview(id)
		if err != nil {
			return badRequest(fmt.Errorf("interview %s: %w", id, err))
		}
		if iv.AnalysisStatus != types.StatusCompleted || iv.Analysis == nil {
			continue
		}
		analyses = append(analyses, *iv.Analysis)
		dates = append(dates, iv.CreatedAt)
		included = append(included, iv.ID)
	}

	rec := types.SummaryRecord{
		ID:           uuid.New().String(),
		UserID:       body.UserID,
		Title:        body.Title,
		InterviewIDs: included,
		Summary:      insights.AggregateAnalyses(analyses, dates),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := r.store.CreateSummary(rec); err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, rec)
}

func (r *Router) handleListSummaries(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.store.ListSummaries())
}

func (r *Router) handleGetSummary(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.store.GetSummary(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, rec)
}

// handleEditSummary replaces the editable sub-arrays wholesale. Everything
// else in a generated summary stays frozen.
func (r *Router) handleEditSummary(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.store.GetSummary(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	var body struct {
		Title              *string                   `json:"title"`
		CriticalPainPoints *[]types.PainPointSummary `json:"criticalPainPoints"`
		HighRiskHandoffs   *[]types.HandoffSummary   `json:"highRiskHandoffs"`
		Recommendations    *[]types.Recommendation   `json:"recommendations"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if body.Title != nil {
		rec.Title = *body.Title
	}
	if body.CriticalPainPoints != nil {
		rec.Summary.CriticalPainPoints = *body.CriticalPainPoints
	}
	if body.HighRiskHandoffs != nil {
		rec.Summary.HighRiskHandoffs = *body.HighRiskHandoffs
	}
	if body.Recommendations != nil {
		rec.Summary.Recommendations = *body.Recommendations
	}
	if err := r.store.UpdateSummary(rec); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, rec)
}

func (r *Router) handleDeleteSummary(w http.ResponseWriter, req *http.Request) error {
	if err := r.store.DeleteSummary(chi.URLParam(req, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
