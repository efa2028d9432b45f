package insights

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// Top-N caps for the company summary.
const (
	summaryTopN         = 10
	recommendationsTopN = 15
)

// AggregateAnalyses folds many analysis records into one company summary.
// dates is positionally parallel to analyses (interview creation dates,
// ISO-8601). Sorts are stable, so ties keep first-seen order; all grouping
// keys are normalized per keys.go except handoffs, which group by the exact
// case-sensitive from→to:process composite.
func AggregateAnalyses(analyses []types.AnalysisRecord, dates []string) types.CompanySummary {
	summary := types.CompanySummary{
		TotalInterviews:      len(analyses),
		DateRange:            dateRange(dates),
		TopWorkflows:         []types.WorkflowSummary{},
		CriticalPainPoints:   []types.PainPointSummary{},
		CommonTools:          []types.ToolSummary{},
		RoleDistribution:     map[string]int{},
		PriorityTrainingGaps: []types.TrainingGapSummary{},
		HighRiskHandoffs:     []types.HandoffSummary{},
		Recommendations:      []types.Recommendation{},
	}

	workflows := map[string]*types.WorkflowSummary{}
	var workflowOrder []string
	painPoints := map[string]*types.PainPointSummary{}
	var painOrder []string
	tools := map[string]*types.ToolSummary{}
	var toolOrder []string
	gaps := map[string]*types.TrainingGapSummary{}
	var gapOrder []string
	handoffs := map[string]*types.HandoffSummary{}
	var handoffOrder []string

	for _, a := range analyses {
		for _, wf := range a.Workflows {
			key := NameKey(wf.Name)
			acc, ok := workflows[key]
			if !ok {
				acc = &types.WorkflowSummary{
					ID:           uuid.New().String(),
					Name:         wf.Name,
					Frequency:    wf.Frequency,
					Participants: []string{},
				}
				workflows[key] = acc
				workflowOrder = append(workflowOrder, key)
			}
			acc.MentionCount++
			acc.AnnualVolume += AnnualVolume(wf.Frequency)
			acc.Frequency = MaxFrequency(acc.Frequency, wf.Frequency)
			acc.Participants = appendUniqueFold(acc.Participants, wf.Participants...)
		}

		for _, pp := range a.PainPoints {
			// Low/medium pain points never reach a company summary.
			if SeverityRank(pp.Severity) < SeverityRank("high") {
				continue
			}
			key := PainPointKey(pp.Description)
			acc, ok := painPoints[key]
			if !ok {
				// Severity stays as first assigned; the dashboard builder is
				// the one that upgrades (see metrics.go).
				acc = &types.PainPointSummary{
					ID:            uuid.New().String(),
					Description:   pp.Description,
					Category:      pp.Category,
					Severity:      pp.Severity,
					AffectedRoles: []string{},
				}
				painPoints[key] = acc
				painOrder = append(painOrder, key)
			}
			acc.AffectedCount++
			acc.AffectedRoles = appendUniqueFold(acc.AffectedRoles, pp.AffectedRoles...)
		}

		for _, t := range a.Tools {
			key := NameKey(t.Name)
			acc, ok := tools[key]
			if !ok {
				acc = &types.ToolSummary{
					ID:     uuid.New().String(),
					Name:   t.Name,
					UsedBy: []string{},
				}
				tools[key] = acc
				toolOrder = append(toolOrder, key)
			}
			acc.UserCount++
			acc.Purpose = firstNonEmpty(acc.Purpose, t.Purpose)
			acc.UsedBy = appendUniqueFold(acc.UsedBy, t.UsedBy...)
		}

		for _, r := range a.Roles {
			summary.RoleDistribution[r.Title]++
		}

		for _, tg := range a.TrainingGaps {
			if PriorityRank(tg.Priority) < PriorityRank("high") {
				continue
			}
			key := NameKey(tg.Area)
			acc, ok := gaps[key]
			if !ok {
				acc = &types.TrainingGapSummary{
					ID:            uuid.New().String(),
					Area:          tg.Area,
					Priority:      tg.Priority,
					AffectedRoles: []string{},
				}
				gaps[key] = acc
				gapOrder = append(gapOrder, key)
			}
			acc.Frequency++
			acc.AffectedRoles = appendUniqueFold(acc.AffectedRoles, tg.AffectedRoles...)
		}

		for _, h := range a.HandoffRisks {
			if RiskRank(h.RiskLevel) < RiskRank("high") {
				continue
			}
			key := HandoffKey(h)
			acc, ok := handoffs[key]
			if !ok {
				acc = &types.HandoffSummary{
					ID:        uuid.New().String(),
					FromRole:  h.FromRole,
					ToRole:    h.ToRole,
					Process:   h.Process,
					RiskLevel: h.RiskLevel,
				}
				handoffs[key] = acc
				handoffOrder = append(handoffOrder, key)
			}
			acc.Count++
		}
	}

	for _, key := range workflowOrder {
		summary.TopWorkflows = append(summary.TopWorkflows, *workflows[key])
	}
	// Ranked by raw mention count, not annual volume.
	sort.SliceStable(summary.TopWorkflows, func(i, j int) bool {
		return summary.TopWorkflows[i].MentionCount > summary.TopWorkflows[j].MentionCount
	})
	summary.TopWorkflows = capWorkflows(summary.TopWorkflows, summaryTopN)

	for _, key := range painOrder {
		summary.CriticalPainPoints = append(summary.CriticalPainPoints, *painPoints[key])
	}
	sort.SliceStable(summary.CriticalPainPoints, func(i, j int) bool {
		return summary.CriticalPainPoints[i].AffectedCount > summary.CriticalPainPoints[j].AffectedCount
	})
	if len(summary.CriticalPainPoints) > summaryTopN {
		summary.CriticalPainPoints = summary.CriticalPainPoints[:summaryTopN]
	}

	for _, key := range toolOrder {
		summary.CommonTools = append(summary.CommonTools, *tools[key])
	}
	sort.SliceStable(summary.CommonTools, func(i, j int) bool {
		return summary.CommonTools[i].UserCount > summary.CommonTools[j].UserCount
	})
	if len(summary.CommonTools) > summaryTopN {
		summary.CommonTools = summary.CommonTools[:summaryTopN]
	}

	for _, key := range gapOrder {
		summary.PriorityTrainingGaps = append(summary.PriorityTrainingGaps, *gaps[key])
	}
	sort.SliceStable(summary.PriorityTrainingGaps, func(i, j int) bool {
		return summary.PriorityTrainingGaps[i].Frequency > summary.PriorityTrainingGaps[j].Frequency
	})
	if len(summary.PriorityTrainingGaps) > summaryTopN {
		summary.PriorityTrainingGaps = summary.PriorityTrainingGaps[:summaryTopN]
	}

	for _, key := range handoffOrder {
		summary.HighRiskHandoffs = append(summary.HighRiskHandoffs, *handoffs[key])
	}
	sort.SliceStable(summary.HighRiskHandoffs, func(i, j int) bool {
		return summary.HighRiskHandoffs[i].Count > summary.HighRiskHandoffs[j].Count
	})
	if len(summary.HighRiskHandoffs) > summaryTopN {
		summary.HighRiskHandoffs = summary.HighRiskHandoffs[:summaryTopN]
	}

	summary.Recommendations = fuseRecommendations(analyses)
	return summary
}

func capWorkflows(list []types.WorkflowSummary, n int) []types.WorkflowSummary {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// fuseRecommendations merges explicit recommendation lists with ones
// synthesized from older records that predate the recommendations field.
// Duplicates (50-char key) keep the higher-ranked priority and bump an
// internal count used as the sort tiebreaker; the emitted shape is
// {id, text, priority} only.
func fuseRecommendations(analyses []types.AnalysisRecord) []types.Recommendation {
	type recAcc struct {
		text     string
		priority string
		count    int
	}
	accs := map[string]*recAcc{}
	var order []string

	add := func(text, priority string) {
		if text == "" {
			return
		}
		key := RecommendationKey(text)
		acc, ok := accs[key]
		if !ok {
			accs[key] = &recAcc{text: text, priority: priority, count: 1}
			order = append(order, key)
			return
		}
		acc.count++
		acc.priority = MaxPriority(acc.priority, priority)
	}

	for _, a := range analyses {
		if len(a.Recommendations) > 0 {
			for _, r := range a.Recommendations {
				add(r.Text, r.Priority)
			}
			continue
		}
		// Older records: synthesize from per-category suggestion fields.
		for _, pp := range a.PainPoints {
			add(pp.SuggestedSolution, priorityFromSeverity(pp.Severity))
		}
		for _, tg := range a.TrainingGaps {
			add(tg.SuggestedTraining, tg.Priority)
		}
		for _, h := range a.HandoffRisks {
			add(h.Mitigation, h.RiskLevel)
		}
	}

	out := make([]types.Recommendation, 0, len(order))
	counts := make(map[string]int, len(order))
	for _, key := range order {
		acc := accs[key]
		rec := types.Recommendation{
			ID:       uuid.New().String(),
			Text:     acc.text,
			Priority: acc.priority,
		}
		counts[rec.ID] = acc.count
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := PriorityRank(out[i].Priority), PriorityRank(out[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return counts[out[i].ID] > counts[out[j].ID]
	})
	if len(out) > recommendationsTopN {
		out = out[:recommendationsTopN]
	}
	return out
}

// dateRange picks lexicographic min/max over ISO-8601 strings, falling back
// to the current instant when dates is empty.
func dateRange(dates []string) types.DateRange {
	var nonEmpty []string
	for _, d := range dates {
		if d != "" {
			nonEmpty = append(nonEmpty, d)
		}
	}
	if len(nonEmpty) == 0 {
		now := time.Now().UTC().Format(time.RFC3339)
		return types.DateRange{Earliest: now, Latest: now}
	}
	earliest, latest := nonEmpty[0], nonEmpty[0]
	for _, d := range nonEmpty[1:] {
		if d < earliest {
			earliest = d
		}
		if d > latest {
			latest = d
		}
	}
	return types.DateRange{Earliest: earliest, Latest: latest}
}
