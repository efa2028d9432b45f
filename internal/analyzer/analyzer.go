// Package analyzer calls the external LLM to turn a raw transcript into a
// structured analysis record. The engine treats it as an opaque function;
// failures are captured per interview, never propagated as batch failures.
package analyzer

import (
	"context"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*types.AnalysisRecord, error)
}

// Mock returns a small deterministic record for offline runs
// (USE_MOCK_LLM=true), mirroring the shape a real analysis produces.
type Mock struct{}

func (Mock) Analyze(_ context.Context, _ string) (*types.AnalysisRecord, error) {
	return &types.AnalysisRecord{
		Workflows: []types.Workflow{{
			ID:           uuid.New().String(),
			Name:         "Invoice Processing",
			Steps:        []string{"Receive invoice by email", "Enter invoice into spreadsheet", "Send for approval"},
			Frequency:    "daily",
			Participants: []string{"Accounts Payable Clerk", "Finance Manager"},
		}},
		PainPoints: []types.PainPoint{{
			ID:                uuid.New().String(),
			Category:          "manual",
			Description:       "Manual data entry into the accounting spreadsheet causes delays and typos",
			Severity:          "high",
			AffectedRoles:     []string{"Accounts Payable Clerk"},
			Frequency:         "daily",
			Impact:            "Invoices paid late",
			SuggestedSolution: "Adopt an invoice capture tool that posts directly to the ledger",
		}},
		Tools: []types.Tool{{
			ID:        uuid.New().String(),
			Name:      "Excel",
			Purpose:   "Invoice tracking",
			UsedBy:    []string{"Accounts Payable Clerk"},
			Frequency: "daily",
		}},
		Roles: []types.Role{{
			ID:               uuid.New().String(),
			Title:            "Accounts Payable Clerk",
			Responsibilities: []string{"Process supplier invoices"},
			Workflows:        []string{"Invoice Processing"},
			Tools:            []string{"Excel"},
			TeamSize:         2,
		}},
		TrainingGaps: []types.TrainingGap{{
			ID:            uuid.New().String(),
			Area:          "Spreadsheet automation",
			AffectedRoles: []string{"Accounts Payable Clerk"},
			Priority:      "medium",
			CurrentState:  "Everything keyed by hand",
			DesiredState:  "Formulas and imports used routinely",
		}},
		HandoffRisks: []types.HandoffRisk{{
			ID:          uuid.New().String(),
			FromRole:    "Accounts Payable Clerk",
			ToRole:      "Finance Manager",
			Process:     "Invoice approval",
			RiskLevel:   "medium",
			Description: "Approvals requested over chat with no audit trail",
		}},
	}, nil
}
