// Package dataset bulk-imports interview transcripts from a spreadsheet,
// for seeding a fresh instance from a consultant's existing workbook.
package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"interview-insights-go/internal/types"
)

// LoadInterviews reads the first sheet of an xlsx workbook into pending
// interviews. Column positions are detected from header names; rows without
// a transcript are skipped quietly.
func LoadInterviews(path string) ([]types.Interview, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	titleIdx := -1
	companyIdx := -1
	dateIdx := -1
	transcriptIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case transcriptIdx == -1 && (strings.Contains(l, "transcript") || strings.Contains(l, "text")):
			transcriptIdx = i
		case titleIdx == -1 && (strings.Contains(l, "title") || strings.Contains(l, "interviewee") || strings.Contains(l, "name")):
			titleIdx = i
		case companyIdx == -1 && strings.Contains(l, "company"):
			companyIdx = i
		case dateIdx == -1 && (strings.Contains(l, "date") || strings.Contains(l, "created")):
			dateIdx = i
		}
	}
	if transcriptIdx == -1 {
		// Workbooks from the field tend to keep the transcript last.
		transcriptIdx = len(header) - 1
	}

	cell := func(r []string, idx int) string {
		if idx >= 0 && idx < len(r) {
			return strings.TrimSpace(r[idx])
		}
		return ""
	}

	var out []types.Interview
	for i, r := range rows {
		if i == 0 {
			continue
		}
		transcript := cell(r, transcriptIdx)
		if transcript == "" {
			continue
		}
		createdAt := cell(r, dateIdx)
		if createdAt == "" {
			createdAt = time.Now().UTC().Format(time.RFC3339)
		}
		out = append(out, types.Interview{
			ID:             uuid.New().String(),
			Title:          cell(r, titleIdx),
			CompanyID:      cell(r, companyIdx),
			Transcript:     transcript,
			AnalysisStatus: types.StatusPending,
			CreatedAt:      createdAt,
		})
	}
	return out, nil
}
