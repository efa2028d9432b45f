package insights

import (
	"sort"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// BuildRoleProfiles aggregates roles by lower-cased title, then joins the
// full handoff, pain-point and training-gap collections against each role:
// InputsFrom are handoffs arriving at the role, OutputsTo are handoffs
// leaving it, IssuesDetected and TrainingNeeds come from case-insensitive
// membership in the respective affectedRoles lists.
func BuildRoleProfiles(interviews []types.Interview) []types.RoleProfile {
	c := collectCompleted(interviews)

	profiles := map[string]*types.RoleProfile{}
	var order []string
	for _, tr := range c.roles {
		r := tr.item
		key := NameKey(r.Title)
		p, ok := profiles[key]
		if !ok {
			p = &types.RoleProfile{
				ID:               uuid.New().String(),
				Title:            r.Title,
				Responsibilities: []string{},
				Workflows:        []string{},
				Tools:            []string{},
				InputsFrom:       []types.HandoffPartner{},
				OutputsTo:        []types.HandoffPartner{},
				IssuesDetected:   []types.RoleIssue{},
				TrainingNeeds:    []types.RoleTrainingNeed{},
			}
			profiles[key] = p
			order = append(order, key)
		}
		p.Count++
		p.InterviewIDs = appendUnique(p.InterviewIDs, tr.interviewID)
		p.Responsibilities = appendUniqueFold(p.Responsibilities, r.Responsibilities...)
		p.Workflows = appendUniqueFold(p.Workflows, r.Workflows...)
		p.Tools = appendUniqueFold(p.Tools, r.Tools...)
		if r.TeamSize > p.TeamSize {
			p.TeamSize = r.TeamSize
		}
	}

	for _, key := range order {
		p := profiles[key]
		p.InputsFrom = handoffPartners(c.handoffs, key, true)
		p.OutputsTo = handoffPartners(c.handoffs, key, false)
		p.IssuesDetected = roleIssues(c.painPoints, p.Title)
		p.TrainingNeeds = roleTrainingNeeds(c.gaps, p.Title)
	}

	out := make([]types.RoleProfile, 0, len(order))
	for _, key := range order {
		out = append(out, *profiles[key])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// handoffPartners groups the handoffs touching a role by counterpart role
// plus process. incoming selects handoffs whose ToRole matches (the role's
// inputs); otherwise FromRole matches (its outputs).
func handoffPartners(handoffs []tagged[types.HandoffRisk], roleKey string, incoming bool) []types.HandoffPartner {
	partners := map[string]*types.HandoffPartner{}
	var order []string
	for _, th := range handoffs {
		h := th.item
		var mine, other string
		if incoming {
			mine, other = h.ToRole, h.FromRole
		} else {
			mine, other = h.FromRole, h.ToRole
		}
		if NameKey(mine) != roleKey {
			continue
		}
		key := NameKey(other) + "|" + NameKey(h.Process)
		p, ok := partners[key]
		if !ok {
			p = &types.HandoffPartner{Role: other, Process: h.Process, RiskLevel: h.RiskLevel}
			partners[key] = p
			order = append(order, key)
		} else {
			p.RiskLevel = MaxRiskLevel(p.RiskLevel, h.RiskLevel)
		}
		p.Count++
	}
	out := make([]types.HandoffPartner, 0, len(order))
	for _, key := range order {
		out = append(out, *partners[key])
	}
	return out
}

func roleIssues(painPoints []tagged[types.PainPoint], title string) []types.RoleIssue {
	issues := map[string]*types.RoleIssue{}
	var order []string
	for _, tp := range painPoints {
		pp := tp.item
		if !containsFold(pp.AffectedRoles, title) {
			continue
		}
		key := PainPointKey(pp.Description)
		is, ok := issues[key]
		if !ok {
			is = &types.RoleIssue{Description: pp.Description, Category: pp.Category, Severity: pp.Severity}
			issues[key] = is
			order = append(order, key)
		} else {
			is.Severity = MaxSeverity(is.Severity, pp.Severity)
		}
		is.Count++
	}
	out := make([]types.RoleIssue, 0, len(order))
	for _, key := range order {
		out = append(out, *issues[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := SeverityRank(out[i].Severity), SeverityRank(out[j].Severity)
		if si != sj {
			return si > sj
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func roleTrainingNeeds(gaps []tagged[types.TrainingGap], title string) []types.RoleTrainingNeed {
	needs := map[string]*types.RoleTrainingNeed{}
	var order []string
	for _, tg := range gaps {
		g := tg.item
		if !containsFold(g.AffectedRoles, title) {
			continue
		}
		key := NameKey(g.Area)
		n, ok := needs[key]
		if !ok {
			n = &types.RoleTrainingNeed{Area: g.Area, Priority: g.Priority}
			needs[key] = n
			order = append(order, key)
		} else {
			n.Priority = MaxPriority(n.Priority, g.Priority)
		}
		n.Count++
	}
	out := make([]types.RoleTrainingNeed, 0, len(order))
	for _, key := range order {
		out = append(out, *needs[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := PriorityRank(out[i].Priority), PriorityRank(out[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return out[i].Count > out[j].Count
	})
	return out
}
