package analyzer

import "fmt"

// The analysis prompt pins the exact JSON shape the engine consumes. The
// model is told to leave unknown fields empty rather than invent content;
// ids are minted server-side, so the schema omits them.
const analysisSchema = `{
  "workflows": [
    {"name": "", "steps": [""], "frequency": "daily|weekly|monthly|ad-hoc", "participants": [""], "duration": "", "notes": ""}
  ],
  "painPoints": [
    {"category": "inefficiency|bottleneck|error-prone|manual|communication|other", "description": "", "severity": "low|medium|high|critical", "affectedRoles": [""], "frequency": "", "impact": "", "suggestedSolution": ""}
  ],
  "tools": [
    {"name": "", "purpose": "", "usedBy": [""], "frequency": "", "integrations": [""], "limitations": ""}
  ],
  "roles": [
    {"title": "", "responsibilities": [""], "workflows": [""], "tools": [""], "teamSize": 0}
  ],
  "trainingGaps": [
    {"area": "", "affectedRoles": [""], "priority": "low|medium|high", "currentState": "", "desiredState": "", "suggestedTraining": ""}
  ],
  "handoffRisks": [
    {"fromRole": "", "toRole": "", "process": "", "riskLevel": "low|medium|high", "description": "", "mitigation": ""}
  ],
  "recommendations": [
    {"text": "", "priority": "low|medium|high", "category": ""}
  ]
}`

const systemPrompt = `You are an operations analyst. You read interview transcripts from company staff and extract how the company actually works: workflows, pain points, tools, roles, training gaps, and risky handoffs between roles.

Ground every item in the transcript. Do not invent names, tools, or numbers. If the transcript does not support a field, leave it empty (or an empty list) rather than guessing. Use only the enum values listed in the schema.`

// BuildUserPrompt wraps the transcript with the strict return-only-JSON
// instructions.
func BuildUserPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze the following interview transcript and return ONLY a JSON object matching this schema exactly (no commentary, no markdown fences):

%s

TRANSCRIPT:
"""
%s
"""`, analysisSchema, transcript)
}
