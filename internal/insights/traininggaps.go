package insights

import (
	"sort"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// BuildTrainingGapProfiles aggregates training gaps by lower-cased area and
// counts how often each affected role is named. Ranked by priority, then by
// occurrence count.
func BuildTrainingGapProfiles(interviews []types.Interview) []types.TrainingGapProfile {
	c := collectCompleted(interviews)

	type gapAcc struct {
		profile    *types.TrainingGapProfile
		roleCounts map[string]*types.RoleCount
		roleOrder  []string
	}
	accs := map[string]*gapAcc{}
	var order []string
	for _, tg := range c.gaps {
		g := tg.item
		key := NameKey(g.Area)
		acc, ok := accs[key]
		if !ok {
			acc = &gapAcc{
				profile: &types.TrainingGapProfile{
					ID:            uuid.New().String(),
					Area:          g.Area,
					Priority:      g.Priority,
					AffectedRoles: []types.RoleCount{},
				},
				roleCounts: map[string]*types.RoleCount{},
			}
			accs[key] = acc
			order = append(order, key)
		}
		p := acc.profile
		p.Count++
		p.InterviewIDs = appendUnique(p.InterviewIDs, tg.interviewID)
		p.Priority = MaxPriority(p.Priority, g.Priority)
		p.CurrentState = firstNonEmpty(p.CurrentState, g.CurrentState)
		p.DesiredState = firstNonEmpty(p.DesiredState, g.DesiredState)
		for _, role := range g.AffectedRoles {
			rk := NameKey(role)
			rc, ok := acc.roleCounts[rk]
			if !ok {
				rc = &types.RoleCount{Role: role}
				acc.roleCounts[rk] = rc
				acc.roleOrder = append(acc.roleOrder, rk)
			}
			rc.Count++
		}
	}

	out := make([]types.TrainingGapProfile, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		for _, rk := range acc.roleOrder {
			acc.profile.AffectedRoles = append(acc.profile.AffectedRoles, *acc.roleCounts[rk])
		}
		out = append(out, *acc.profile)
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
