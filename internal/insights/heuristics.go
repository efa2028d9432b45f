package insights

import (
	"regexp"
	"strings"
)

// Heuristic classifiers and matchers used by the profile builders. These are
// intentionally approximate pattern tables; adjusting them changes which
// gaps and failure points surface, so treat the tables as product data.

// toolCategories is checked in order; the first match wins, so earlier rows
// shadow later ones (e.g. "Dynamics CRM" classifies as crm, not erp).
var toolCategories = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"crm", regexp.MustCompile(`(?i)salesforce|hubspot|pipedrive|zoho|crm`)},
	{"project-management", regexp.MustCompile(`(?i)jira|asana|trello|monday|clickup|basecamp|wrike`)},
	{"spreadsheet", regexp.MustCompile(`(?i)excel|sheets|spreadsheet|airtable`)},
	{"communication", regexp.MustCompile(`(?i)slack|teams|outlook|gmail|email|zoom`)},
	{"erp", regexp.MustCompile(`(?i)sap|netsuite|oracle|quickbooks|xero|dynamics|erp`)},
}

// ClassifyToolCategory infers a tool category from its name. Unmatched
// tools are "other".
func ClassifyToolCategory(name string) string {
	for _, c := range toolCategories {
		if c.pattern.MatchString(name) {
			return c.name
		}
	}
	return "other"
}

// commonlyIntegrated names tools that exchange data with nearly everything;
// pairing one of these with another tool is not a missing integration.
var commonlyIntegrated = regexp.MustCompile(`(?i)excel|sheets|email|outlook|gmail`)

// handoffLimitation spots limitation texts that describe manual data
// movement.
var handoffLimitation = regexp.MustCompile(`(?i)manual|export|copy`)

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// tokenize lower-cases and splits on non-alphanumerics, dropping tokens of
// three characters or fewer so stopwords never match.
func tokenize(s string) []string {
	var out []string
	for _, tok := range tokenSplit.Split(strings.ToLower(s), -1) {
		if len(tok) > 3 {
			out = append(out, tok)
		}
	}
	return out
}

// tokensOverlap reports whether the two token lists share any token.
func tokensOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, tok := range a {
		set[tok] = struct{}{}
	}
	for _, tok := range b {
		if _, ok := set[tok]; ok {
			return true
		}
	}
	return false
}
