package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlainObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSON(`{"a":1}`))
}

func TestExtractJSONStripsFences(t *testing.T) {
	reply := "```json\n{\"workflows\": []}\n```"
	assert.Equal(t, `{"workflows": []}`, ExtractJSON(reply))
}

func TestExtractJSONIgnoresCommentary(t *testing.T) {
	reply := "Here is the structured analysis you asked for:\n\n{\"tools\": []}\n\nLet me know if you need more detail."
	assert.Equal(t, `{"tools": []}`, ExtractJSON(reply))
}

func TestExtractJSONBalancesNestedBraces(t *testing.T) {
	reply := `{"outer": {"inner": {"deep": true}}} trailing`
	assert.Equal(t, `{"outer": {"inner": {"deep": true}}}`, ExtractJSON(reply))
}

func TestExtractJSONHandlesBracesInStrings(t *testing.T) {
	reply := `{"note": "uses {curly} braces and a \" quote"}`
	assert.Equal(t, reply, ExtractJSON(reply))
}

func TestExtractJSONNoObject(t *testing.T) {
	assert.Empty(t, ExtractJSON("the model refused to answer"))
	assert.Empty(t, ExtractJSON(""))
	assert.Empty(t, ExtractJSON(`{"never closed": true`))
}

func TestParseAnalysisMintsIDs(t *testing.T) {
	reply := `{
		"workflows": [{"name": "Invoice Processing", "frequency": "daily", "steps": ["Receive", "Enter"]}],
		"painPoints": [{"description": "Rekeying data", "severity": "high"}],
		"tools": [{"name": "Excel"}],
		"roles": [{"title": "AP Clerk"}],
		"trainingGaps": [{"area": "Excel", "priority": "medium"}],
		"handoffRisks": [{"fromRole": "Sales", "toRole": "Ops", "process": "Orders", "riskLevel": "high"}],
		"recommendations": [{"text": "Automate entry", "priority": "high"}]
	}`
	rec, err := ParseAnalysis(reply)
	require.NoError(t, err)

	require.Len(t, rec.Workflows, 1)
	assert.Equal(t, "Invoice Processing", rec.Workflows[0].Name)
	assert.NotEmpty(t, rec.Workflows[0].ID)
	assert.NotEmpty(t, rec.PainPoints[0].ID)
	assert.NotEmpty(t, rec.Tools[0].ID)
	assert.NotEmpty(t, rec.Roles[0].ID)
	assert.NotEmpty(t, rec.TrainingGaps[0].ID)
	assert.NotEmpty(t, rec.HandoffRisks[0].ID)
	assert.NotEmpty(t, rec.Recommendations[0].ID)
}

func TestParseAnalysisOverridesModelIDs(t *testing.T) {
	rec, err := ParseAnalysis(`{"tools": [{"id": "model-made-this-up", "name": "Excel"}]}`)
	require.NoError(t, err)
	require.Len(t, rec.Tools, 1)
	assert.NotEqual(t, "model-made-this-up", rec.Tools[0].ID)
}

func TestParseAnalysisErrors(t *testing.T) {
	_, err := ParseAnalysis("no json here")
	assert.Error(t, err)

	_, err = ParseAnalysis(`{"workflows": "should be a list"}`)
	assert.Error(t, err)
}
