// Package insights is the aggregation engine: it folds independently
// produced analysis records into de-duplicated, ranked, cross-referenced
// views (company summaries, dashboard metrics, merged records, profiles).
// Everything here is pure and synchronous; callers recompute derived views
// from the current interview set on every read.
package insights

import (
	"strings"

	"interview-insights-go/internal/types"
)

// Comparison-key prefix lengths for long free-text fields. Truncation makes
// near-duplicate descriptions collapse into one entry at the cost of
// false-merging descriptions that share a prefix; that tradeoff is
// deliberate. The 100-vs-50 split between pain points and recommendations is
// likewise deliberate, so each stays a named constant.
const (
	painPointKeyLen      = 100
	recommendationKeyLen = 50
)

// NameKey folds a name/title/area for case-insensitive grouping. No
// whitespace normalization: "Invoice  Processing" and "Invoice Processing"
// are different entities.
func NameKey(s string) string {
	return strings.ToLower(s)
}

// PainPointKey is the grouping key for pain-point descriptions.
func PainPointKey(description string) string {
	return prefixKey(description, painPointKeyLen)
}

// RecommendationKey is the grouping key for recommendation texts.
func RecommendationKey(text string) string {
	return prefixKey(text, recommendationKeyLen)
}

func prefixKey(s string, n int) string {
	k := strings.ToLower(s)
	if len(k) > n {
		k = k[:n]
	}
	return k
}

// HandoffKey is the case-sensitive composite key the company-summary
// aggregator groups handoffs by. Deliberately stricter than the other keys.
func HandoffKey(h types.HandoffRisk) string {
	return h.FromRole + "→" + h.ToRole + ":" + h.Process
}

// HandoffKeyFolded is the lower-cased variant used by the dashboard builder
// and the analysis merger.
func HandoffKeyFolded(h types.HandoffRisk) string {
	return strings.ToLower(HandoffKey(h))
}

// appendUnique appends items not already present, exact match. Used where
// exact-text identity matters (workflow steps).
func appendUnique(dst []string, items ...string) []string {
	for _, it := range items {
		if it == "" {
			continue
		}
		found := false
		for _, have := range dst {
			if have == it {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, it)
		}
	}
	return dst
}

// appendUniqueFold appends items not already present ignoring case, keeping
// the first-seen casing. Used for role/participant/tool name sets.
func appendUniqueFold(dst []string, items ...string) []string {
	for _, it := range items {
		if it == "" {
			continue
		}
		if !containsFold(dst, it) {
			dst = append(dst, it)
		}
	}
	return dst
}

func containsFold(list []string, s string) bool {
	for _, have := range list {
		if strings.EqualFold(have, s) {
			return true
		}
	}
	return false
}

// firstNonEmpty keeps the existing value unless it is empty.
func firstNonEmpty(current, incoming string) string {
	if current != "" {
		return current
	}
	return incoming
}
