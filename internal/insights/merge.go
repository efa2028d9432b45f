package insights

import (
	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// MergeAnalysisData folds the raw analysis fields of many interviews into a
// single unified record, preserving field-level detail instead of producing
// top-N summaries. Every emitted item gets a freshly minted id so merged
// records never collide with per-interview ids. Recommendations are left
// empty on purpose: recommendation fusion belongs to the company-summary
// aggregator, not to raw-field merging.
func MergeAnalysisData(interviews []types.Interview) types.AnalysisRecord {
	out := types.AnalysisRecord{
		Workflows:    []types.Workflow{},
		PainPoints:   []types.PainPoint{},
		Tools:        []types.Tool{},
		Roles:        []types.Role{},
		TrainingGaps: []types.TrainingGap{},
		HandoffRisks: []types.HandoffRisk{},
	}

	workflows := map[string]*types.Workflow{}
	var workflowOrder []string
	painPoints := map[string]*types.PainPoint{}
	var painOrder []string
	tools := map[string]*types.Tool{}
	var toolOrder []string
	roles := map[string]*types.Role{}
	var roleOrder []string
	gaps := map[string]*types.TrainingGap{}
	var gapOrder []string
	handoffs := map[string]*types.HandoffRisk{}
	var handoffOrder []string

	for _, iv := range interviews {
		if iv.Analysis == nil {
			continue
		}
		a := iv.Analysis

		for _, wf := range a.Workflows {
			key := NameKey(wf.Name)
			acc, ok := workflows[key]
			if !ok {
				acc = &types.Workflow{
					ID:        uuid.New().String(),
					Name:      wf.Name,
					Frequency: wf.Frequency,
					Duration:  wf.Duration,
					Notes:     wf.Notes,
				}
				acc.Steps = appendUnique(nil, wf.Steps...)
				acc.Participants = appendUniqueFold(nil, wf.Participants...)
				workflows[key] = acc
				workflowOrder = append(workflowOrder, key)
				continue
			}
			// Step identity is exact text; step strings are short enough
			// that prefix truncation would only lose information.
			acc.Steps = appendUnique(acc.Steps, wf.Steps...)
			acc.Participants = appendUniqueFold(acc.Participants, wf.Participants...)
			acc.Frequency = MaxFrequency(acc.Frequency, wf.Frequency)
			acc.Duration = firstNonEmpty(acc.Duration, wf.Duration)
			acc.Notes = joinNotes(acc.Notes, wf.Notes)
		}

		for _, pp := range a.PainPoints {
			key := PainPointKey(pp.Description)
			acc, ok := painPoints[key]
			if !ok {
				cp := pp
				cp.ID = uuid.New().String()
				cp.AffectedRoles = appendUniqueFold(nil, pp.AffectedRoles...)
				painPoints[key] = &cp
				painOrder = append(painOrder, key)
				continue
			}
			acc.AffectedRoles = appendUniqueFold(acc.AffectedRoles, pp.AffectedRoles...)
			acc.Severity = MaxSeverity(acc.Severity, pp.Severity)
			acc.SuggestedSolution = firstNonEmpty(acc.SuggestedSolution, pp.SuggestedSolution)
		}

		for _, t := range a.Tools {
			key := NameKey(t.Name)
			acc, ok := tools[key]
			if !ok {
				cp := t
				cp.ID = uuid.New().String()
				cp.UsedBy = appendUniqueFold(nil, t.UsedBy...)
				cp.Integrations = appendUniqueFold(nil, t.Integrations...)
				tools[key] = &cp
				toolOrder = append(toolOrder, key)
				continue
			}
			acc.UsedBy = appendUniqueFold(acc.UsedBy, t.UsedBy...)
			acc.Integrations = appendUniqueFold(acc.Integrations, t.Integrations...)
			acc.Limitations = firstNonEmpty(acc.Limitations, t.Limitations)
			acc.Purpose = firstNonEmpty(acc.Purpose, t.Purpose)
		}

		for _, r := range a.Roles {
			key := NameKey(r.Title)
			acc, ok := roles[key]
			if !ok {
				cp := r
				cp.ID = uuid.New().String()
				cp.Responsibilities = appendUniqueFold(nil, r.Responsibilities...)
				cp.Workflows = appendUniqueFold(nil, r.Workflows...)
				cp.Tools = appendUniqueFold(nil, r.Tools...)
				roles[key] = &cp
				roleOrder = append(roleOrder, key)
				continue
			}
			acc.Responsibilities = appendUniqueFold(acc.Responsibilities, r.Responsibilities...)
			acc.Workflows = appendUniqueFold(acc.Workflows, r.Workflows...)
			acc.Tools = appendUniqueFold(acc.Tools, r.Tools...)
			if r.TeamSize > acc.TeamSize {
				acc.TeamSize = r.TeamSize
			}
		}

		for _, tg := range a.TrainingGaps {
			key := NameKey(tg.Area)
			acc, ok := gaps[key]
			if !ok {
				cp := tg
				cp.ID = uuid.New().String()
				cp.AffectedRoles = appendUniqueFold(nil, tg.AffectedRoles...)
				gaps[key] = &cp
				gapOrder = append(gapOrder, key)
				continue
			}
			acc.AffectedRoles = appendUniqueFold(acc.AffectedRoles, tg.AffectedRoles...)
			acc.Priority = MaxPriority(acc.Priority, tg.Priority)
			acc.SuggestedTraining = firstNonEmpty(acc.SuggestedTraining, tg.SuggestedTraining)
		}

		for _, h := range a.HandoffRisks {
			key := HandoffKeyFolded(h)
			acc, ok := handoffs[key]
			if !ok {
				cp := h
				cp.ID = uuid.New().String()
				handoffs[key] = &cp
				handoffOrder = append(handoffOrder, key)
				continue
			}
			acc.RiskLevel = MaxRiskLevel(acc.RiskLevel, h.RiskLevel)
			acc.Mitigation = firstNonEmpty(acc.Mitigation, h.Mitigation)
			acc.Description = firstNonEmpty(acc.Description, h.Description)
		}
	}

	for _, key := range workflowOrder {
		out.Workflows = append(out.Workflows, *workflows[key])
	}
	for _, key := range painOrder {
		out.PainPoints = append(out.PainPoints, *painPoints[key])
	}
	for _, key := range toolOrder {
		out.Tools = append(out.Tools, *tools[key])
	}
	for _, key := range roleOrder {
		out.Roles = append(out.Roles, *roles[key])
	}
	for _, key := range gapOrder {
		out.TrainingGaps = append(out.TrainingGaps, *gaps[key])
	}
	for _, key := range handoffOrder {
		out.HandoffRisks = append(out.HandoffRisks, *handoffs[key])
	}
	return out
}

func joinNotes(current, incoming string) string {
	switch {
	case current == "":
		return incoming
	case incoming == "":
		return current
	default:
		return current + "; " + incoming
	}
}
