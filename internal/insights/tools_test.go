package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/types"
)

func findProfile(t *testing.T, out []types.ToolProfile, name string) types.ToolProfile {
	t.Helper()
	for _, p := range out {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no profile named %q", name)
	return types.ToolProfile{}
}

func gapTypes(p types.ToolProfile) []string {
	var out []string
	for _, g := range p.Gaps {
		out = append(out, g.Type)
	}
	return out
}

func TestBuildToolProfilesEmptyInput(t *testing.T) {
	assert.Empty(t, BuildToolProfiles(nil))
}

func TestBuildToolProfilesUnderutilizedAndDataHandoff(t *testing.T) {
	// Excel named by one interview alongside a CRM: underutilized (single
	// interview) plus a data-handoff gap (spreadsheet next to a structured
	// system), but no overlap gap since no other spreadsheet exists.
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Tools: []types.Tool{
				{Name: "Excel", UsedBy: []string{"Sales Rep"}},
				{Name: "Salesforce", UsedBy: []string{"Sales Rep"}},
			},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "salesforce", UsedBy: []string{"Sales Manager"}}},
		}),
	}
	out := BuildToolProfiles(ivs)

	excel := findProfile(t, out, "Excel")
	assert.Equal(t, "spreadsheet", excel.Category)
	assert.Contains(t, gapTypes(excel), types.GapUnderutilized)
	assert.Contains(t, gapTypes(excel), types.GapDataHandoff)
	assert.NotContains(t, gapTypes(excel), types.GapOverlap)

	sf := findProfile(t, out, "Salesforce")
	assert.Equal(t, "crm", sf.Category)
	assert.Equal(t, 2, sf.Count)
	assert.NotContains(t, gapTypes(sf), types.GapUnderutilized)
}

func TestBuildToolProfilesOverlapGap(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "Jira"}, {Name: "Asana"}},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "jira"}, {Name: "asana"}},
		}),
	}
	out := BuildToolProfiles(ivs)

	jira := findProfile(t, out, "Jira")
	require.Contains(t, gapTypes(jira), types.GapOverlap)
	for _, g := range jira.Gaps {
		if g.Type == types.GapOverlap {
			assert.Equal(t, []string{"Asana"}, g.RelatedTools)
			assert.Equal(t, "medium", g.Severity)
		}
	}
	asana := findProfile(t, out, "Asana")
	assert.Contains(t, gapTypes(asana), types.GapOverlap, "overlap is reported on both sides")
}

func TestBuildToolProfilesMissingIntegrationGap(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Workflows: []types.Workflow{{Name: "Order Fulfillment", Participants: []string{"Ops"}}},
			Tools: []types.Tool{
				{Name: "Salesforce", UsedBy: []string{"Ops"}},
				{Name: "NetSuite", UsedBy: []string{"Ops"}},
			},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			Tools: []types.Tool{
				{Name: "salesforce", UsedBy: []string{"Ops"}},
				{Name: "netsuite", UsedBy: []string{"Ops"}},
			},
		}),
	}
	out := BuildToolProfiles(ivs)

	sf := findProfile(t, out, "Salesforce")
	require.Contains(t, gapTypes(sf), types.GapMissingIntegration)
	for _, g := range sf.Gaps {
		if g.Type == types.GapMissingIntegration {
			assert.Equal(t, []string{"NetSuite"}, g.RelatedTools)
		}
	}
}

func TestBuildToolProfilesNoMissingIntegrationWhenDeclared(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Workflows: []types.Workflow{{Name: "Order Fulfillment", Participants: []string{"Ops"}}},
			Tools: []types.Tool{
				// One direction declared is enough.
				{Name: "Salesforce", UsedBy: []string{"Ops"}, Integrations: []string{"netsuite"}},
				{Name: "NetSuite", UsedBy: []string{"Ops"}},
			},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "Salesforce"}, {Name: "NetSuite"}},
		}),
	}
	out := BuildToolProfiles(ivs)
	sf := findProfile(t, out, "Salesforce")
	assert.NotContains(t, gapTypes(sf), types.GapMissingIntegration)
	ns := findProfile(t, out, "NetSuite")
	assert.NotContains(t, gapTypes(ns), types.GapMissingIntegration)
}

func TestBuildToolProfilesMissingIntegrationSkipsCommonTools(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Workflows: []types.Workflow{{Name: "Reporting", Participants: []string{"Analyst"}}},
			Tools: []types.Tool{
				{Name: "Excel", UsedBy: []string{"Analyst"}},
				{Name: "Tableau", UsedBy: []string{"Analyst"}},
			},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "Excel"}, {Name: "Tableau"}},
		}),
	}
	out := BuildToolProfiles(ivs)
	tableau := findProfile(t, out, "Tableau")
	assert.NotContains(t, gapTypes(tableau), types.GapMissingIntegration,
		"pairs involving spreadsheets/email never count as missing integrations")
}

func TestBuildToolProfilesLimitationHandoffGapKeepsText(t *testing.T) {
	lim := "Requires manual export to CSV every week"
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "Tableau", Limitations: lim}},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			Tools: []types.Tool{{Name: "tableau", Limitations: "Slow on big dashboards"}},
		}),
	}
	out := BuildToolProfiles(ivs)

	tableau := findProfile(t, out, "Tableau")
	var handoffs []types.ToolGap
	for _, g := range tableau.Gaps {
		if g.Type == types.GapDataHandoff {
			handoffs = append(handoffs, g)
		}
	}
	require.Len(t, handoffs, 1, "only the limitation describing manual movement qualifies")
	assert.Equal(t, lim, handoffs[0].Description, "limitation text is carried verbatim")
	assert.Equal(t, "medium", handoffs[0].Severity)
}

func TestBuildToolProfilesGapCap(t *testing.T) {
	// Eight project-management tools in one interview each: every profile
	// accumulates underutilized + overlap + many missing-integration gaps,
	// but never more than five total.
	names := []string{"Jira", "Asana", "Trello", "Monday", "ClickUp", "Basecamp", "Wrike One", "Wrike Two"}
	var tools []types.Tool
	for _, n := range names {
		tools = append(tools, types.Tool{Name: n, UsedBy: []string{"PM"}})
	}
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Workflows: []types.Workflow{{Name: "Planning", Participants: []string{"PM"}}},
			Tools:     tools,
		}),
	}
	out := BuildToolProfiles(ivs)
	for _, p := range out {
		assert.LessOrEqual(t, len(p.Gaps), 5)
	}
}

func TestBuildToolProfilesWorkflowCrossReference(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			Workflows: []types.Workflow{
				{Name: "Order Fulfillment", Participants: []string{"Ops"}},
				{Name: "Planning", Participants: []string{"PM"}},
			},
			Tools: []types.Tool{{Name: "NetSuite", UsedBy: []string{"Ops"}}},
		}),
	}
	out := BuildToolProfiles(ivs)
	ns := findProfile(t, out, "NetSuite")
	assert.Equal(t, []string{"Order Fulfillment"}, ns.Workflows)
}

func TestModalFrequency(t *testing.T) {
	assert.Equal(t, "daily", modalFrequency([]string{"daily", "weekly", "daily"}))
	assert.Equal(t, "weekly", modalFrequency([]string{"weekly", "daily"}), "ties keep the first-seen value")
	assert.Equal(t, "daily", modalFrequency([]string{"unknown", "", "daily"}))
	assert.Equal(t, "unknown", modalFrequency(nil))
	assert.Equal(t, "unknown", modalFrequency([]string{"", "unknown"}))
}
