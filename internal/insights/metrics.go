package insights

import (
	"strings"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// CalculateDashboardMetrics folds all completed interviews into per-category
// aggregation lists plus flat distributions. Unlike AggregateAnalyses it
// applies no severity/priority filter, upgrades merged severity/priority/
// risk level to the maximum seen, and groups handoffs by the lower-cased
// composite key. TotalInterviews counts every input; everything else only
// sees completed interviews.
func CalculateDashboardMetrics(interviews []types.Interview) types.DashboardMetrics {
	m := types.DashboardMetrics{
		TotalInterviews:        len(interviews),
		Workflows:              []types.WorkflowAggregation{},
		PainPoints:             []types.PainPointAggregation{},
		Tools:                  []types.ToolAggregation{},
		Roles:                  []types.RoleAggregation{},
		TrainingGaps:           []types.TrainingGapAggregation{},
		HandoffRisks:           []types.HandoffRiskAggregation{},
		PainPointsByCategory:   map[string]int{},
		PainPointsBySeverity:   map[string]int{},
		WorkflowsByFrequency:   map[string]int{},
		TrainingGapsByPriority: map[string]int{},
		HandoffsByRiskLevel:    map[string]int{},
	}

	workflows := map[string]*types.WorkflowAggregation{}
	var workflowOrder []string
	painPoints := map[string]*types.PainPointAggregation{}
	var painOrder []string
	tools := map[string]*types.ToolAggregation{}
	var toolOrder []string
	roles := map[string]*types.RoleAggregation{}
	var roleOrder []string
	gaps := map[string]*types.TrainingGapAggregation{}
	var gapOrder []string
	handoffs := map[string]*types.HandoffRiskAggregation{}
	var handoffOrder []string

	for _, iv := range interviews {
		if iv.AnalysisStatus != types.StatusCompleted {
			continue
		}
		m.CompletedInterviews++
		if iv.Analysis == nil {
			continue
		}
		a := iv.Analysis

		for _, wf := range a.Workflows {
			key := NameKey(wf.Name)
			acc, ok := workflows[key]
			if !ok {
				acc = &types.WorkflowAggregation{Workflow: wf}
				acc.Workflow.ID = uuid.New().String()
				workflows[key] = acc
				workflowOrder = append(workflowOrder, key)
			} else {
				acc.Frequency = MaxFrequency(acc.Frequency, wf.Frequency)
				acc.Participants = appendUniqueFold(acc.Participants, wf.Participants...)
				acc.Duration = firstNonEmpty(acc.Duration, wf.Duration)
			}
			acc.Count++
			acc.InterviewIDs = appendUnique(acc.InterviewIDs, iv.ID)
		}

		for _, pp := range a.PainPoints {
			key := PainPointKey(pp.Description)
			acc, ok := painPoints[key]
			if !ok {
				acc = &types.PainPointAggregation{PainPoint: pp}
				acc.PainPoint.ID = uuid.New().String()
				painPoints[key] = acc
				painOrder = append(painOrder, key)
			} else {
				// Severity upgrades to the maximum seen across interviews.
				acc.Severity = MaxSeverity(acc.Severity, pp.Severity)
				acc.AffectedRoles = appendUniqueFold(acc.AffectedRoles, pp.AffectedRoles...)
				acc.SuggestedSolution = firstNonEmpty(acc.SuggestedSolution, pp.SuggestedSolution)
			}
			acc.Count++
			acc.InterviewIDs = appendUnique(acc.InterviewIDs, iv.ID)
		}

		for _, t := range a.Tools {
			key := NameKey(t.Name)
			acc, ok := tools[key]
			if !ok {
				acc = &types.ToolAggregation{Tool: t}
				acc.Tool.ID = uuid.New().String()
				tools[key] = acc
				toolOrder = append(toolOrder, key)
			} else {
				acc.UsedBy = appendUniqueFold(acc.UsedBy, t.UsedBy...)
				acc.Integrations = appendUniqueFold(acc.Integrations, t.Integrations...)
				acc.Purpose = firstNonEmpty(acc.Purpose, t.Purpose)
				acc.Limitations = firstNonEmpty(acc.Limitations, t.Limitations)
			}
			acc.Count++
			acc.InterviewIDs = appendUnique(acc.InterviewIDs, iv.ID)
		}

		for _, r := range a.Roles {
			key := NameKey(r.Title)
			acc, ok := roles[key]
			if !ok {
				acc = &types.RoleAggregation{Role: r}
				acc.Role.ID = uuid.New().String()
				roles[key] = acc
				roleOrder = append(roleOrder, key)
			} else {
				acc.Responsibilities = appendUniqueFold(acc.Responsibilities, r.Responsibilities...)
				acc.Workflows = appendUniqueFold(acc.Workflows, r.Workflows...)
				acc.Tools = appendUniqueFold(acc.Tools, r.Tools...)
				if r.TeamSize > acc.TeamSize {
					acc.TeamSize = r.TeamSize
				}
			}
			acc.Count++
			acc.InterviewIDs = appendUnique(acc.InterviewIDs, iv.ID)
		}

		for _, tg := range a.TrainingGaps {
			key := NameKey(tg.Area)
			acc, ok := gaps[key]
			if !ok {
				acc = &types.TrainingGapAggregation{TrainingGap: tg}
				acc.TrainingGap.ID = uuid.New().String()
				gaps[key] = acc
				gapOrder = append(gapOrder, key)
			} else {
				acc.Priority = MaxPriority(acc.Priority, tg.Priority)
				acc.AffectedRoles = appendUniqueFold(acc.AffectedRoles, tg.AffectedRoles...)
				acc.SuggestedTraining = firstNonEmpty(acc.SuggestedTraining, tg.SuggestedTraining)
			}
			acc.Count++
			acc.InterviewIDs = appendUnique(acc.InterviewIDs, iv.ID)
		}

		for _, h := range a.HandoffRisks {
			key := HandoffKeyFolded(h)
			acc, ok := handoffs[key]
			if !ok {
				acc = &types.HandoffRiskAggregation{HandoffRisk: h}
				acc.HandoffRisk.ID = uuid.New().String()
				handoffs[key] = acc
				handoffOrder = append(handoffOrder, key)
			} else {
				acc.RiskLevel = MaxRiskLevel(acc.RiskLevel, h.RiskLevel)
				acc.Mitigation = firstNonEmpty(acc.Mitigation, h.Mitigation)
				acc.Description = firstNonEmpty(acc.Description, h.Description)
			}
			acc.Count++
			acc.InterviewIDs = appendUnique(acc.InterviewIDs, iv.ID)
		}
	}

	for _, key := range workflowOrder {
		m.Workflows = append(m.Workflows, *workflows[key])
	}
	for _, key := range painOrder {
		m.PainPoints = append(m.PainPoints, *painPoints[key])
	}
	for _, key := range toolOrder {
		m.Tools = append(m.Tools, *tools[key])
	}
	for _, key := range roleOrder {
		m.Roles = append(m.Roles, *roles[key])
	}
	for _, key := range gapOrder {
		m.TrainingGaps = append(m.TrainingGaps, *gaps[key])
	}
	for _, key := range handoffOrder {
		m.HandoffRisks = append(m.HandoffRisks, *handoffs[key])
	}

	// Distributions are derived from the aggregated lists, not by rescanning
	// raw interviews: each bucket sums the entry counts, so the totals equal
	// Σ aggregation.count.
	for _, wf := range m.Workflows {
		m.WorkflowsByFrequency[strings.ToLower(wf.Frequency)] += wf.Count
	}
	for _, pp := range m.PainPoints {
		m.PainPointsByCategory[strings.ToLower(pp.Category)] += pp.Count
		m.PainPointsBySeverity[strings.ToLower(pp.Severity)] += pp.Count
		// Counts distinct aggregated issues, not raw mentions.
		if SeverityRank(pp.Severity) >= SeverityRank("high") {
			m.CriticalPainPoints++
		}
	}
	for _, tg := range m.TrainingGaps {
		m.TrainingGapsByPriority[strings.ToLower(tg.Priority)] += tg.Count
	}
	for _, h := range m.HandoffRisks {
		m.HandoffsByRiskLevel[strings.ToLower(h.RiskLevel)] += h.Count
		if RiskRank(h.RiskLevel) >= RiskRank("high") {
			m.HighRiskHandoffs++
		}
	}

	return m
}
