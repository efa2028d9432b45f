package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

const maxToolGaps = 5

type toolAcc struct {
	profile     *types.ToolProfile
	freqs       []string
	limitations []string
}

type workflowSystems struct {
	name    string
	systems []string
}

// BuildToolProfiles aggregates tools by lower-cased name, classifies each
// into a category, cross-references the workflows it appears in (through
// participant/tool joins) and runs the gap detectors. Detectors append
// independently; a tool can carry several gap types at once, capped at
// maxToolGaps.
func BuildToolProfiles(interviews []types.Interview) []types.ToolProfile {
	c := collectCompleted(interviews)
	lookup := participantTools(c)

	accs := map[string]*toolAcc{}
	var order []string
	for _, tt := range c.tools {
		t := tt.item
		key := NameKey(t.Name)
		acc, ok := accs[key]
		if !ok {
			acc = &toolAcc{
				profile: &types.ToolProfile{
					ID:           uuid.New().String(),
					Name:         t.Name,
					Category:     ClassifyToolCategory(t.Name),
					UsedBy:       []string{},
					Integrations: []string{},
					Workflows:    []string{},
					Gaps:         []types.ToolGap{},
				},
			}
			accs[key] = acc
			order = append(order, key)
		}
		p := acc.profile
		p.Count++
		p.InterviewIDs = appendUnique(p.InterviewIDs, tt.interviewID)
		p.Purpose = firstNonEmpty(p.Purpose, t.Purpose)
		p.UsedBy = appendUniqueFold(p.UsedBy, t.UsedBy...)
		p.Integrations = appendUniqueFold(p.Integrations, t.Integrations...)
		acc.freqs = append(acc.freqs, t.Frequency)
		// Every mention's limitation text is kept, not just the first, so
		// the data-handoff scan sees them all.
		if lim := strings.TrimSpace(t.Limitations); lim != "" {
			acc.limitations = appendUnique(acc.limitations, lim)
		}
	}

	// Per-workflow system sets, for the workflow cross-reference and the
	// missing-integration detector.
	wfAccs := map[string]*workflowSystems{}
	var wfOrder []string
	for _, tw := range c.workflows {
		wf := tw.item
		key := NameKey(wf.Name)
		acc, ok := wfAccs[key]
		if !ok {
			acc = &workflowSystems{name: wf.Name}
			wfAccs[key] = acc
			wfOrder = append(wfOrder, key)
		}
		for _, participant := range wf.Participants {
			acc.systems = appendUniqueFold(acc.systems, lookup[NameKey(participant)]...)
		}
	}

	for _, key := range order {
		p := accs[key].profile
		for _, wfKey := range wfOrder {
			if containsFold(wfAccs[wfKey].systems, p.Name) {
				p.Workflows = appendUnique(p.Workflows, wfAccs[wfKey].name)
			}
		}
		p.Frequency = modalFrequency(accs[key].freqs)
	}

	for _, key := range order {
		acc := accs[key]
		p := acc.profile

		if len(p.InterviewIDs) == 1 {
			p.Gaps = appendGap(p.Gaps, types.ToolGap{
				Type:        types.GapUnderutilized,
				Severity:    "low",
				Description: fmt.Sprintf("%s was mentioned in only one interview; adoption may be limited to a single team.", p.Name),
			})
		}

		if p.Category != "other" {
			var others []string
			for _, otherKey := range order {
				if otherKey != key && accs[otherKey].profile.Category == p.Category {
					others = append(others, accs[otherKey].profile.Name)
				}
			}
			if len(others) > 0 {
				p.Gaps = appendGap(p.Gaps, types.ToolGap{
					Type:         types.GapOverlap,
					Severity:     "medium",
					Description:  fmt.Sprintf("%s overlaps with %s (%s); teams may be split across equivalent tools.", p.Name, strings.Join(others, ", "), p.Category),
					RelatedTools: others,
				})
			}
		}

		addMissingIntegrationGaps(p, key, accs, wfAccs, wfOrder)

		if p.Category == "spreadsheet" && hasStructuredSystem(accs, order, key) {
			p.Gaps = appendGap(p.Gaps, types.ToolGap{
				Type:        types.GapDataHandoff,
				Severity:    "low",
				Description: fmt.Sprintf("%s likely carries data into or out of structured systems by hand.", p.Name),
			})
		}
		for _, lim := range acc.limitations {
			if handoffLimitation.MatchString(lim) {
				p.Gaps = appendGap(p.Gaps, types.ToolGap{
					Type:        types.GapDataHandoff,
					Severity:    "medium",
					Description: lim,
				})
			}
		}
	}

	out := make([]types.ToolProfile, 0, len(order))
	for _, key := range order {
		out = append(out, *accs[key].profile)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func appendGap(gaps []types.ToolGap, g types.ToolGap) []types.ToolGap {
	if len(gaps) >= maxToolGaps {
		return gaps
	}
	return append(gaps, g)
}

// addMissingIntegrationGaps flags tool pairs that share a workflow but list
// each other in integrations in neither direction. Pairs involving commonly
// integrated tools (spreadsheets, email) are skipped; each (tool, other)
// pair is reported at most once per workflow.
func addMissingIntegrationGaps(p *types.ToolProfile, selfKey string, accs map[string]*toolAcc, wfAccs map[string]*workflowSystems, wfOrder []string) {
	if commonlyIntegrated.MatchString(p.Name) {
		return
	}
	seen := map[string]struct{}{}
	for _, wfKey := range wfOrder {
		wf := wfAccs[wfKey]
		if !containsFold(wf.systems, p.Name) {
			continue
		}
		for _, otherName := range wf.systems {
			otherKey := NameKey(otherName)
			if otherKey == selfKey {
				continue
			}
			other, ok := accs[otherKey]
			if !ok {
				// A role references a tool no interview described; nothing
				// to compare integrations against.
				continue
			}
			if commonlyIntegrated.MatchString(otherName) {
				continue
			}
			if containsFold(p.Integrations, otherName) || containsFold(other.profile.Integrations, p.Name) {
				continue
			}
			pairKey := wfKey + "|" + otherKey
			if _, dup := seen[pairKey]; dup {
				continue
			}
			seen[pairKey] = struct{}{}
			p.Gaps = appendGap(p.Gaps, types.ToolGap{
				Type:         types.GapMissingIntegration,
				Severity:     "medium",
				Description:  fmt.Sprintf("%s and %s are both used in %s but neither integrates with the other.", p.Name, other.profile.Name, wf.name),
				RelatedTools: []string{other.profile.Name},
			})
		}
	}
}

// hasStructuredSystem reports whether any other tool belongs to a concrete
// non-spreadsheet category, which makes a spreadsheet look like the glue
// between systems.
func hasStructuredSystem(accs map[string]*toolAcc, order []string, selfKey string) bool {
	for _, key := range order {
		if key == selfKey {
			continue
		}
		cat := accs[key].profile.Category
		if cat != "spreadsheet" && cat != "other" {
			return true
		}
	}
	return false
}

// modalFrequency picks the most common non-"unknown" usage frequency among
// the contributing mentions; ties keep the first-seen value.
func modalFrequency(freqs []string) string {
	counts := map[string]int{}
	var order []string
	for _, f := range freqs {
		v := strings.ToLower(strings.TrimSpace(f))
		if v == "" || v == "unknown" {
			continue
		}
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}
	best := "unknown"
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
