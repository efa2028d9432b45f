// Package store is the record-store port the rest of the service persists
// through. The engine never touches it; handlers read current records,
// recompute derived views, and write results back.
package store

import (
	"errors"

	"interview-insights-go/internal/types"
)

var ErrNotFound = errors.New("record not found")

// Store is simple CRUD over interviews and generated summaries plus change
// notification. Subscribers are invoked after every mutation; observers are
// expected to recompute whole derived views, never patch them.
type Store interface {
	CreateInterview(iv types.Interview) error
	GetInterview(id string) (types.Interview, error)
	ListInterviews() []types.Interview
	UpdateInterview(iv types.Interview) error
	DeleteInterview(id string) error

	CreateSummary(rec types.SummaryRecord) error
	GetSummary(id string) (types.SummaryRecord, error)
	ListSummaries() []types.SummaryRecord
	UpdateSummary(rec types.SummaryRecord) error
	DeleteSummary(id string) error

	Subscribe(fn func())
}
