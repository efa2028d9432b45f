package types

// Derived structures. Everything in this file is recomputed from the current
// interview set on every read; only CompanySummary is ever persisted (inside
// a SummaryRecord) as a frozen snapshot.

type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// WorkflowSummary ranks by MentionCount; AnnualVolume is the sum of
// per-mention annual frequency conversions and captures volume, not reach.
type WorkflowSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Frequency    string   `json:"frequency"`
	MentionCount int      `json:"mentionCount"`
	AnnualVolume int      `json:"annualVolume"`
	Participants []string `json:"participants"`
}

type PainPointSummary struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Severity      string   `json:"severity"`
	AffectedCount int      `json:"affectedCount"`
	AffectedRoles []string `json:"affectedRoles"`
}

type ToolSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Purpose   string   `json:"purpose,omitempty"`
	UserCount int      `json:"userCount"`
	UsedBy    []string `json:"usedBy"`
}

type TrainingGapSummary struct {
	ID            string   `json:"id"`
	Area          string   `json:"area"`
	Priority      string   `json:"priority"`
	Frequency     int      `json:"frequency"`
	AffectedRoles []string `json:"affectedRoles"`
}

type HandoffSummary struct {
	ID        string `json:"id"`
	FromRole  string `json:"fromRole"`
	ToRole    string `json:"toRole"`
	Process   string `json:"process"`
	RiskLevel string `json:"riskLevel"`
	Count     int    `json:"count"`
}

// CompanySummary is the ranked top-N rollup across a set of analyses.
type CompanySummary struct {
	TotalInterviews      int                  `json:"totalInterviews"`
	DateRange            DateRange            `json:"dateRange"`
	TopWorkflows         []WorkflowSummary    `json:"topWorkflows"`
	CriticalPainPoints   []PainPointSummary   `json:"criticalPainPoints"`
	CommonTools          []ToolSummary        `json:"commonTools"`
	RoleDistribution     map[string]int       `json:"roleDistribution"`
	PriorityTrainingGaps []TrainingGapSummary `json:"priorityTrainingGaps"`
	HighRiskHandoffs     []HandoffSummary     `json:"highRiskHandoffs"`
	Recommendations      []Recommendation     `json:"recommendations"`
}

// Aggregation entries: the source fields plus occurrence count and the ids of
// the interviews that contributed, for drill-down.

type WorkflowAggregation struct {
	Workflow
	Count        int      `json:"count"`
	InterviewIDs []string `json:"interviewIds"`
}

type PainPointAggregation struct {
	PainPoint
	Count        int      `json:"count"`
	InterviewIDs []string `json:"interviewIds"`
}

type ToolAggregation struct {
	Tool
	Count        int      `json:"count"`
	InterviewIDs []string `json:"interviewIds"`
}

type RoleAggregation struct {
	Role
	Count        int      `json:"count"`
	InterviewIDs []string `json:"interviewIds"`
}

type TrainingGapAggregation struct {
	TrainingGap
	Count        int      `json:"count"`
	InterviewIDs []string `json:"interviewIds"`
}

type HandoffRiskAggregation struct {
	HandoffRisk
	Count        int      `json:"count"`
	InterviewIDs []string `json:"interviewIds"`
}

// DashboardMetrics aggregates every category across completed interviews.
// The top-level counters count distinct aggregated entries, not raw mentions.
type DashboardMetrics struct {
	TotalInterviews     int `json:"totalInterviews"`
	CompletedInterviews int `json:"completedInterviews"`
	CriticalPainPoints  int `json:"criticalPainPoints"`
	HighRiskHandoffs    int `json:"highRiskHandoffs"`

	Workflows    []WorkflowAggregation    `json:"workflows"`
	PainPoints   []PainPointAggregation   `json:"painPoints"`
	Tools        []ToolAggregation        `json:"tools"`
	Roles        []RoleAggregation        `json:"roles"`
	TrainingGaps []TrainingGapAggregation `json:"trainingGaps"`
	HandoffRisks []HandoffRiskAggregation `json:"handoffRisks"`

	PainPointsByCategory   map[string]int `json:"painPointsByCategory"`
	PainPointsBySeverity   map[string]int `json:"painPointsBySeverity"`
	WorkflowsByFrequency   map[string]int `json:"workflowsByFrequency"`
	TrainingGapsByPriority map[string]int `json:"trainingGapsByPriority"`
	HandoffsByRiskLevel    map[string]int `json:"handoffsByRiskLevel"`
}

// HandoffPartner is one side of a role's handoff traffic, grouped by the
// counterpart role and process.
type HandoffPartner struct {
	Role      string `json:"role"`
	Process   string `json:"process"`
	RiskLevel string `json:"riskLevel"`
	Count     int    `json:"count"`
}

type RoleIssue struct {
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Severity    string `json:"severity"`
	Count       int    `json:"count"`
}

type RoleTrainingNeed struct {
	Area     string `json:"area"`
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

type RoleProfile struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Count            int                `json:"count"`
	InterviewIDs     []string           `json:"interviewIds"`
	Responsibilities []string           `json:"responsibilities"`
	Workflows        []string           `json:"workflows"`
	Tools            []string           `json:"tools"`
	TeamSize         int                `json:"teamSize,omitempty"`
	InputsFrom       []HandoffPartner   `json:"inputsFrom"`
	OutputsTo        []HandoffPartner   `json:"outputsTo"`
	IssuesDetected   []RoleIssue        `json:"issuesDetected"`
	TrainingNeeds    []RoleTrainingNeed `json:"trainingNeeds"`
}

// WorkflowStep carries an occurrence count and the index at which the step
// text was first sighted. Order is display order, not a consensus position:
// a later interview listing the same step elsewhere does not move it.
type WorkflowStep struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
	Order int    `json:"order"`
}

type FailurePoint struct {
	Description string `json:"description"`
	Severity    string `json:"severity"`
	RelatedStep string `json:"relatedStep,omitempty"`
}

type WorkflowProfile struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Count         int            `json:"count"`
	InterviewIDs  []string       `json:"interviewIds"`
	Frequency     string         `json:"frequency"`
	Participants  []string       `json:"participants"`
	Steps         []WorkflowStep `json:"steps"`
	Systems       []string       `json:"systems"`
	FailurePoints []FailurePoint `json:"failurePoints"`
	UnclearSteps  []string       `json:"unclearSteps"`
}

// Tool gap types emitted by the heuristic detectors.
const (
	GapUnderutilized      = "underutilized"
	GapOverlap            = "overlap"
	GapMissingIntegration = "missing-integration"
	GapDataHandoff        = "data-handoff"
)

type ToolGap struct {
	Type         string   `json:"type"`
	Severity     string   `json:"severity"`
	Description  string   `json:"description"`
	RelatedTools []string `json:"relatedTools,omitempty"`
}

type ToolProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Purpose      string    `json:"purpose,omitempty"`
	Count        int       `json:"count"`
	InterviewIDs []string  `json:"interviewIds"`
	UsedBy       []string  `json:"usedBy"`
	Frequency    string    `json:"frequency"`
	Integrations []string  `json:"integrations"`
	Workflows    []string  `json:"workflows"`
	Gaps         []ToolGap `json:"gaps"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type TrainingGapProfile struct {
	ID            string      `json:"id"`
	Area          string      `json:"area"`
	Priority      string      `json:"priority"`
	Count         int         `json:"count"`
	InterviewIDs  []string    `json:"interviewIds"`
	AffectedRoles []RoleCount `json:"affectedRoles"`
	CurrentState  string      `json:"currentState,omitempty"`
	DesiredState  string      `json:"desiredState,omitempty"`
}
