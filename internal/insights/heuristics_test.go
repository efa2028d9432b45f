package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyToolCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Salesforce", "crm"},
		{"HubSpot CRM", "crm"},
		{"Jira", "project-management"},
		{"Monday.com", "project-management"},
		{"Excel", "spreadsheet"},
		{"Google Sheets", "spreadsheet"},
		{"Slack", "communication"},
		{"Outlook", "communication"},
		{"NetSuite", "erp"},
		{"QuickBooks Online", "erp"},
		{"Dynamics CRM", "crm"}, // earlier table rows shadow later ones
		{"Tableau", "other"},
		{"", "other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyToolCategory(tc.name), tc.name)
	}
}

func TestCommonlyIntegratedMatcher(t *testing.T) {
	assert.True(t, commonlyIntegrated.MatchString("Excel"))
	assert.True(t, commonlyIntegrated.MatchString("Google Sheets"))
	assert.True(t, commonlyIntegrated.MatchString("Outlook"))
	assert.False(t, commonlyIntegrated.MatchString("Salesforce"))
}

func TestHandoffLimitationMatcher(t *testing.T) {
	assert.True(t, handoffLimitation.MatchString("requires manual rekeying"))
	assert.True(t, handoffLimitation.MatchString("weekly CSV export"))
	assert.True(t, handoffLimitation.MatchString("copy-paste between tabs"))
	assert.False(t, handoffLimitation.MatchString("slow search"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"invoice", "processing"}, tokenize("Invoice Processing"))
	// Tokens of three characters or fewer are dropped.
	assert.Equal(t, []string{"send", "approval"}, tokenize("Send it for approval now"))
	assert.Empty(t, tokenize("a b c"))
	assert.Empty(t, tokenize(""))
}

func TestTokensOverlap(t *testing.T) {
	assert.True(t, tokensOverlap([]string{"invoice", "processing"}, []string{"duplicate", "invoice"}))
	assert.False(t, tokensOverlap([]string{"invoice"}, []string{"payroll"}))
	assert.False(t, tokensOverlap(nil, []string{"payroll"}))
	assert.False(t, tokensOverlap([]string{"invoice"}, nil))
}
