package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/types"
)

func TestBuildTrainingGapProfilesEmptyInput(t *testing.T) {
	assert.Empty(t, BuildTrainingGapProfiles(nil))
}

func TestBuildTrainingGapProfilesAggregation(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			TrainingGaps: []types.TrainingGap{{
				Area: "Excel", Priority: "low",
				AffectedRoles: []string{"AP Clerk", "Buyer"},
				CurrentState:  "basic formulas only",
			}},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			TrainingGaps: []types.TrainingGap{{
				Area: "excel", Priority: "high",
				AffectedRoles: []string{"ap clerk"},
				DesiredState:  "pivot tables and lookups",
			}},
		}),
	}
	out := BuildTrainingGapProfiles(ivs)

	require.Len(t, out, 1)
	p := out[0]
	assert.Equal(t, "Excel", p.Area)
	assert.Equal(t, 2, p.Count)
	assert.Equal(t, "high", p.Priority)
	assert.Equal(t, "basic formulas only", p.CurrentState)
	assert.Equal(t, "pivot tables and lookups", p.DesiredState)

	require.Len(t, p.AffectedRoles, 2)
	assert.Equal(t, "AP Clerk", p.AffectedRoles[0].Role)
	assert.Equal(t, 2, p.AffectedRoles[0].Count, "case variants count toward the same role")
	assert.Equal(t, "Buyer", p.AffectedRoles[1].Role)
	assert.Equal(t, 1, p.AffectedRoles[1].Count)
}

func TestBuildTrainingGapProfilesRanking(t *testing.T) {
	ivs := []types.Interview{
		completedInterview("iv1", types.AnalysisRecord{
			TrainingGaps: []types.TrainingGap{
				{Area: "Reporting", Priority: "medium"},
				{Area: "Excel", Priority: "high"},
				{Area: "Phone Etiquette", Priority: "medium"},
			},
		}),
		completedInterview("iv2", types.AnalysisRecord{
			TrainingGaps: []types.TrainingGap{{Area: "reporting", Priority: "medium"}},
		}),
	}
	out := BuildTrainingGapProfiles(ivs)

	require.Len(t, out, 3)
	assert.Equal(t, "Excel", out[0].Area, "priority beats count")
	assert.Equal(t, "Reporting", out[1].Area, "count breaks the priority tie")
	assert.Equal(t, "Phone Etiquette", out[2].Area)
}
