package analyzer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/store"
	"interview-insights-go/internal/types"
)

// Batch runs analyses over many interviews with a small fixed fan-out and a
// short delay between submissions, to stay inside external rate limits. A
// failed analysis marks that one interview failed; it never aborts the rest
// of the batch.
type Batch struct {
	Store       store.Store
	Analyzer    Analyzer
	Concurrency int
	SubmitDelay time.Duration

	log *logrus.Entry
}

func NewBatch(st store.Store, an Analyzer, concurrency int, submitDelay time.Duration) *Batch {
	if concurrency <= 0 {
		concurrency = 3
	}
	return &Batch{
		Store:       st,
		Analyzer:    an,
		Concurrency: concurrency,
		SubmitDelay: submitDelay,
		log:         logger.New().Component("analyzer.batch"),
	}
}

// Run analyzes the given interview ids. It returns only context errors;
// per-interview outcomes land in the store.
func (b *Batch) Run(ctx context.Context, ids []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			b.analyzeOne(ctx, id)
			return nil
		})
		if b.SubmitDelay > 0 {
			select {
			case <-time.After(b.SubmitDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return g.Wait()
}

func (b *Batch) analyzeOne(ctx context.Context, id string) {
	log := b.log.WithField("interview_id", id)
	iv, err := b.Store.GetInterview(id)
	if err != nil {
		log.WithError(err).Warn("interview disappeared before analysis")
		return
	}

	iv.AnalysisStatus = types.StatusAnalyzing
	iv.AnalysisError = ""
	if err := b.Store.UpdateInterview(iv); err != nil {
		log.WithError(err).Warn("could not mark interview analyzing")
		return
	}

	rec, err := b.Analyzer.Analyze(ctx, iv.Transcript)
	// Re-read: the user may have edited the interview while we were out.
	current, getErr := b.Store.GetInterview(id)
	if getErr != nil {
		log.WithError(getErr).Warn("interview deleted during analysis")
		return
	}
	if err != nil {
		log.WithError(err).Warn("analysis failed")
		current.AnalysisStatus = types.StatusFailed
		current.AnalysisError = err.Error()
		current.Analysis = nil
	} else {
		current.AnalysisStatus = types.StatusCompleted
		current.AnalysisError = ""
		current.Analysis = rec
	}
	if err := b.Store.UpdateInterview(current); err != nil {
		log.WithError(err).Error("could not persist analysis result")
	}
}
