package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// ParseAnalysis decodes an LLM reply into an analysis record, tolerating
// commentary and markdown fences around the JSON. Every item gets an id
// minted here; the model is never trusted to provide stable ids.
func ParseAnalysis(reply string) (*types.AnalysisRecord, error) {
	raw := ExtractJSON(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object found in analyzer reply")
	}
	var rec types.AnalysisRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	mintIDs(&rec)
	return &rec, nil
}

func mintIDs(rec *types.AnalysisRecord) {
	for i := range rec.Workflows {
		rec.Workflows[i].ID = uuid.New().String()
	}
	for i := range rec.PainPoints {
		rec.PainPoints[i].ID = uuid.New().String()
	}
	for i := range rec.Tools {
		rec.Tools[i].ID = uuid.New().String()
	}
	for i := range rec.Roles {
		rec.Roles[i].ID = uuid.New().String()
	}
	for i := range rec.TrainingGaps {
		rec.TrainingGaps[i].ID = uuid.New().String()
	}
	for i := range rec.HandoffRisks {
		rec.HandoffRisks[i].ID = uuid.New().String()
	}
	for i := range rec.Recommendations {
		rec.Recommendations[i].ID = uuid.New().String()
	}
}

// ExtractJSON finds the first balanced JSON object in a string, stripping
// common markdown fences first.
func ExtractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, fence := range []string{"```json", "```yaml", "```text", "```", "`json", "`"} {
		s = strings.ReplaceAll(s, fence, "")
	}

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}
