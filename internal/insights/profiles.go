package insights

import (
	"interview-insights-go/internal/types"
)

// Profile builders only ever see completed interviews. A single traversal
// collects every record of every type, tagged with its interview id, so the
// cross-referencing passes never re-walk the interview list.

type tagged[T any] struct {
	item        T
	interviewID string
}

type collected struct {
	workflows  []tagged[types.Workflow]
	painPoints []tagged[types.PainPoint]
	tools      []tagged[types.Tool]
	roles      []tagged[types.Role]
	gaps       []tagged[types.TrainingGap]
	handoffs   []tagged[types.HandoffRisk]
}

func collectCompleted(interviews []types.Interview) collected {
	var c collected
	for _, iv := range interviews {
		if iv.AnalysisStatus != types.StatusCompleted || iv.Analysis == nil {
			continue
		}
		a := iv.Analysis
		for _, wf := range a.Workflows {
			c.workflows = append(c.workflows, tagged[types.Workflow]{wf, iv.ID})
		}
		for _, pp := range a.PainPoints {
			c.painPoints = append(c.painPoints, tagged[types.PainPoint]{pp, iv.ID})
		}
		for _, t := range a.Tools {
			c.tools = append(c.tools, tagged[types.Tool]{t, iv.ID})
		}
		for _, r := range a.Roles {
			c.roles = append(c.roles, tagged[types.Role]{r, iv.ID})
		}
		for _, tg := range a.TrainingGaps {
			c.gaps = append(c.gaps, tagged[types.TrainingGap]{tg, iv.ID})
		}
		for _, h := range a.HandoffRisks {
			c.handoffs = append(c.handoffs, tagged[types.HandoffRisk]{h, iv.ID})
		}
	}
	return c
}

// participantTools maps a folded participant/role name to the tool names
// they touch, learned from both Tool.UsedBy and Role.Tools. This is the
// join that lets workflows know their systems and tools know their
// workflows.
func participantTools(c collected) map[string][]string {
	lookup := map[string][]string{}
	for _, tt := range c.tools {
		for _, user := range tt.item.UsedBy {
			key := NameKey(user)
			lookup[key] = appendUniqueFold(lookup[key], tt.item.Name)
		}
	}
	for _, tr := range c.roles {
		key := NameKey(tr.item.Title)
		lookup[key] = appendUniqueFold(lookup[key], tr.item.Tools...)
	}
	return lookup
}
