package types

// Analysis status values for an interview.
const (
	StatusPending   = "pending"
	StatusAnalyzing = "analyzing"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Workflow struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Steps        []string `json:"steps"`
	Frequency    string   `json:"frequency"` // daily|weekly|monthly|ad-hoc
	Participants []string `json:"participants"`
	Duration     string   `json:"duration,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type PainPoint struct {
	ID                string   `json:"id"`
	Category          string   `json:"category"` // inefficiency|bottleneck|error-prone|manual|communication|other
	Description       string   `json:"description"`
	Severity          string   `json:"severity"` // low|medium|high|critical
	AffectedRoles     []string `json:"affectedRoles"`
	Frequency         string   `json:"frequency,omitempty"`
	Impact            string   `json:"impact,omitempty"`
	SuggestedSolution string   `json:"suggestedSolution,omitempty"`
}

type Tool struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Purpose      string   `json:"purpose,omitempty"`
	UsedBy       []string `json:"usedBy"`
	Frequency    string   `json:"frequency,omitempty"`
	Integrations []string `json:"integrations,omitempty"`
	Limitations  string   `json:"limitations,omitempty"`
}

type Role struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Responsibilities []string `json:"responsibilities"`
	Workflows        []string `json:"workflows"` // workflow names
	Tools            []string `json:"tools"`     // tool names
	TeamSize         int      `json:"teamSize,omitempty"`
}

type TrainingGap struct {
	ID                string   `json:"id"`
	Area              string   `json:"area"`
	AffectedRoles     []string `json:"affectedRoles"`
	Priority          string   `json:"priority"` // low|medium|high
	CurrentState      string   `json:"currentState,omitempty"`
	DesiredState      string   `json:"desiredState,omitempty"`
	SuggestedTraining string   `json:"suggestedTraining,omitempty"`
}

type HandoffRisk struct {
	ID          string `json:"id"`
	FromRole    string `json:"fromRole"`
	ToRole      string `json:"toRole"`
	Process     string `json:"process"`
	RiskLevel   string `json:"riskLevel"` // low|medium|high
	Description string `json:"description,omitempty"`
	Mitigation  string `json:"mitigation,omitempty"`
}

type Recommendation struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority"` // low|medium|high
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
}

// AnalysisRecord is the structured output of analyzing one interview
// transcript. Older records may lack Recommendations.
type AnalysisRecord struct {
	Workflows       []Workflow       `json:"workflows"`
	PainPoints      []PainPoint      `json:"painPoints"`
	Tools           []Tool           `json:"tools"`
	Roles           []Role           `json:"roles"`
	TrainingGaps    []TrainingGap    `json:"trainingGaps"`
	HandoffRisks    []HandoffRisk    `json:"handoffRisks"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// Interview is the persisted record for one uploaded transcript. Analysis is
// nil until the external analyzer completes; a failed analysis leaves it nil
// and sets AnalysisError.
type Interview struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id,omitempty"`
	Title          string          `json:"title,omitempty"`
	Transcript     string          `json:"transcript,omitempty"`
	AnalysisStatus string          `json:"analysis_status"`
	AnalysisError  string          `json:"analysis_error,omitempty"`
	CreatedAt      string          `json:"created_at"` // ISO-8601
	Analysis       *AnalysisRecord `json:"analysis,omitempty"`
}

// SummaryRecord is the persisted envelope for a generated company summary.
// The summary itself is a frozen snapshot; source-interview changes require
// regeneration, not incremental update.
type SummaryRecord struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id,omitempty"`
	Title        string         `json:"title"`
	InterviewIDs []string       `json:"interview_ids"`
	Summary      CompanySummary `json:"summary_data"`
	CreatedAt    string         `json:"created_at"`
}
