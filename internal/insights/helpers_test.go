package insights

import "interview-insights-go/internal/types"

func completedInterview(id string, a types.AnalysisRecord) types.Interview {
	return types.Interview{
		ID:             id,
		AnalysisStatus: types.StatusCompleted,
		Analysis:       &a,
	}
}
