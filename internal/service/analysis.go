package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/metrics"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAnalysisTimeout  = 2 * time.Second
	DefaultBatchConcurrency = 4
	MaxBatchSize            = 100
)

var (
	ErrQueryTimeout  = errors.New("analysis timed out")
	ErrEmptyBatch    = errors.New("batch has no queries")
	ErrBatchTooLarge = fmt.Errorf("batch exceeds %d queries", MaxBatchSize)
)

// BatchItem is one query of a batch request.
type BatchItem struct {
	Text    string               `json:"text"`
	Context *domain.QueryContext `json:"context,omitempty"`
}

// BatchResult keeps the position of the query it answers. Error is set
// instead of Report when that query alone failed.
type BatchResult struct {
	Index  int                    `json:"index"`
	Report *domain.AnalysisReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// AnalysisService runs the reasoning engine under a deadline, persists the
// recorded cases and exports metrics.
type AnalysisService struct {
	engine       *reasoning.Engine
	caseStore    domain.CaseStore
	profileStore domain.ProfileStore
	metrics      *metrics.Metrics
	timeout      time.Duration
	concurrency  int
	logger       *zap.Logger
}

func NewAnalysisService(engine *reasoning.Engine, m *metrics.Metrics, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		engine:      engine,
		metrics:     m,
		timeout:     DefaultAnalysisTimeout,
		concurrency: DefaultBatchConcurrency,
		logger:      logger,
	}
}

// SetCaseStore enables persistence of recorded cases. Without it the engine's
// in-memory history is the only copy.
func (s *AnalysisService) SetCaseStore(store domain.CaseStore) {
	s.caseStore = store
}

func (s *AnalysisService) SetProfileStore(store domain.ProfileStore) {
	s.profileStore = store
}

func (s *AnalysisService) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

func (s *AnalysisService) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// Analyze processes one query. Invalid input is not an error: the report
// carries InputError instead.
func (s *AnalysisService) Analyze(ctx context.Context, text string, qctx *domain.QueryContext) (*domain.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, s.contextError(err)
	}

	type result struct {
		report *domain.AnalysisReport
		rec    *domain.CaseRecord
	}
	start := time.Now()
	done := make(chan result, 1)
	go func() {
		report, rec := s.engine.Process(text, qctx)
		done <- result{report: report, rec: rec}
	}()

	select {
	case <-ctx.Done():
		return nil, s.contextError(ctx.Err())
	case res := <-done:
		s.metrics.ObserveReport(res.report, time.Since(start))
		if res.rec != nil {
			s.persist(ctx, res.rec)
		}
		return res.report, nil
	}
}

func (s *AnalysisService) contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		s.metrics.ObserveTimeout()
		return ErrQueryTimeout
	}
	return err
}

// persist writes the case and the updated profile. Store failures are logged
// and never fail the analysis.
func (s *AnalysisService) persist(ctx context.Context, rec *domain.CaseRecord) {
	if s.caseStore != nil {
		if err := s.caseStore.Create(ctx, rec); err != nil {
			s.logger.Warn("failed to persist case record",
				zap.String("case_id", rec.ID.String()),
				zap.Error(err),
			)
		}
	}
	if s.profileStore == nil || rec.UserID == "" {
		return
	}
	p, ok := s.engine.Profile(rec.UserID)
	if !ok {
		return
	}
	if err := s.profileStore.Upsert(ctx, p); err != nil {
		s.logger.Warn("failed to persist user profile",
			zap.String("user_id", rec.UserID),
			zap.Error(err),
		)
	}
}

// ProcessBatch analyses items with bounded parallelism. Results keep input
// order. A query that times out fails alone; a cancelled ctx fails the batch.
func (s *AnalysisService) ProcessBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(items) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	results := make([]BatchResult, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.Analyze(gctx, item.Text, item.Context)
			switch {
			case errors.Is(err, ErrQueryTimeout):
				results[i] = BatchResult{Index: i, Error: err.Error()}
				return nil
			case err != nil:
				return err
			}
			results[i] = BatchResult{Index: i, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("process batch: %w", err)
	}
	return results, nil
}

func (s *AnalysisService) Diagnose(text string) domain.Diagnosis {
	return s.engine.Diagnose(text)
}

// SimilarCases looks up the persisted history when a store is configured and
// falls back to the in-memory history otherwise.
func (s *AnalysisService) SimilarCases(ctx context.Context, text string, limit int) ([]domain.CaseWithScore, error) {
	if limit <= 0 {
		limit = reasoning.DefaultSimilarMax
	}
	if s.caseStore == nil {
		return s.engine.SimilarCases(text, limit), nil
	}
	vec := s.engine.QueryVector(text)
	if vec == nil {
		return nil, nil
	}
	cases, err := s.caseStore.FindSimilar(ctx, vec, limit)
	if err != nil {
		return nil, fmt.Errorf("find similar cases: %w", err)
	}
	return cases, nil
}

func (s *AnalysisService) Statistics() domain.Statistics {
	stats := s.engine.Statistics()
	s.metrics.ObserveStatistics(stats)
	return stats
}
