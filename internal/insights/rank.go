package insights

import "strings"

// The four ranking lattices. When two records about the same entity disagree
// on one of these fields the merged record keeps the higher-ranked value,
// never an average. Every call site uses these tables; none redefines its
// own. Unknown values rank 0 and lose to anything known.
var (
	frequencyRank = map[string]int{"ad-hoc": 1, "monthly": 2, "weekly": 3, "daily": 4}
	severityRank  = map[string]int{"low": 1, "medium": 2, "high": 3, "critical": 4}
	priorityRank  = map[string]int{"low": 1, "medium": 2, "high": 3}
	riskRank      = map[string]int{"low": 1, "medium": 2, "high": 3}
)

// annualRuns converts a workflow frequency to runs per year, so workflow
// weight captures volume rather than mention count. Unknown frequencies
// count as ad-hoc.
var annualRuns = map[string]int{"daily": 365, "weekly": 52, "monthly": 12, "ad-hoc": 1}

func FrequencyRank(v string) int { return frequencyRank[strings.ToLower(v)] }
func SeverityRank(v string) int  { return severityRank[strings.ToLower(v)] }
func PriorityRank(v string) int  { return priorityRank[strings.ToLower(v)] }
func RiskRank(v string) int      { return riskRank[strings.ToLower(v)] }

// AnnualVolume returns the yearly run count for a workflow frequency.
func AnnualVolume(frequency string) int {
	if n, ok := annualRuns[strings.ToLower(frequency)]; ok {
		return n
	}
	return 1
}

func maxBy(rank map[string]int, current, incoming string) string {
	if rank[strings.ToLower(incoming)] > rank[strings.ToLower(current)] {
		return incoming
	}
	return current
}

func MaxFrequency(current, incoming string) string { return maxBy(frequencyRank, current, incoming) }
func MaxSeverity(current, incoming string) string  { return maxBy(severityRank, current, incoming) }
func MaxPriority(current, incoming string) string  { return maxBy(priorityRank, current, incoming) }
func MaxRiskLevel(current, incoming string) string { return maxBy(riskRank, current, incoming) }

// priorityFromSeverity maps a pain-point severity to a recommendation
// priority when synthesizing recommendations from older records.
func priorityFromSeverity(severity string) string {
	switch strings.ToLower(severity) {
	case "critical", "high":
		return "high"
	case "medium":
		return "medium"
	default:
		return "low"
	}
}
