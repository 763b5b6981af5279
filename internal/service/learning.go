package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"github.com/Harshitk-cp/logos/internal/store"
	"go.uber.org/zap"
)

var ErrProfileNotFound = errors.New("profile not found")

// LearningService exposes the tracker's accumulated state and keeps the
// optional stores in step with it.
type LearningService struct {
	engine       *reasoning.Engine
	caseStore    domain.CaseStore
	profileStore domain.ProfileStore
	logger       *zap.Logger
}

func NewLearningService(engine *reasoning.Engine, logger *zap.Logger) *LearningService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearningService{engine: engine, logger: logger}
}

func (s *LearningService) SetCaseStore(store domain.CaseStore) {
	s.caseStore = store
}

func (s *LearningService) SetProfileStore(store domain.ProfileStore) {
	s.profileStore = store
}

func (s *LearningService) Export() domain.LearningSnapshot {
	return s.engine.ExportLearningData()
}

// Reset clears the in-memory tracker first, then the stores. The tracker is
// cleared even if a store fails.
func (s *LearningService) Reset(ctx context.Context) error {
	s.engine.ResetLearning()

	var errs []error
	if s.caseStore != nil {
		n, err := s.caseStore.DeleteAll(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("delete cases: %w", err))
		} else {
			s.logger.Info("deleted persisted cases", zap.Int64("count", n))
		}
	}
	if s.profileStore != nil {
		n, err := s.profileStore.DeleteAll(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("delete profiles: %w", err))
		} else {
			s.logger.Info("deleted persisted profiles", zap.Int64("count", n))
		}
	}
	return errors.Join(errs...)
}

// Restore replaces the tracker state with snap. Only the newest cases up to
// the history cap are kept.
func (s *LearningService) Restore(snap domain.LearningSnapshot) error {
	if err := s.engine.RestoreLearning(snap); err != nil {
		return fmt.Errorf("restore learning data: %w", err)
	}
	s.logger.Info("restored learning data",
		zap.Int("cases", len(snap.Cases)),
		zap.Int("profiles", len(snap.Profiles)),
	)
	return nil
}

// WarmStart loads the most recent persisted cases into an empty tracker.
// Counters are rebuilt from the loaded cases only.
func (s *LearningService) WarmStart(ctx context.Context, limit int) (int, error) {
	if s.caseStore == nil {
		return 0, nil
	}
	cases, err := s.caseStore.ListRecent(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list recent cases: %w", err)
	}
	if len(cases) == 0 {
		return 0, nil
	}

	// ListRecent is newest first; the tracker expects oldest first.
	for i, j := 0, len(cases)-1; i < j; i, j = i+1, j-1 {
		cases[i], cases[j] = cases[j], cases[i]
	}
	snap := domain.LearningSnapshot{
		Cases:         cases,
		FallacyCounts: make(map[string]int),
		PatternCounts: make(map[string]int),
	}
	for _, c := range cases {
		for _, id := range c.FallacyIDs {
			snap.FallacyCounts[id]++
		}
		snap.PatternCounts[reasoning.PatternKey(c.StructureType, c.ComplexityTier)]++
		snap.QualitySum += c.QualityScore
		snap.ComplexitySum += c.Complexity
	}
	snap.TotalProcessed = len(cases)

	if err := s.engine.RestoreLearning(snap); err != nil {
		return 0, fmt.Errorf("warm start: %w", err)
	}
	return len(cases), nil
}

// Profile prefers the live tracker and falls back to the profile store.
func (s *LearningService) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if p, ok := s.engine.Profile(userID); ok {
		return p, nil
	}
	if s.profileStore == nil {
		return nil, ErrProfileNotFound
	}
	p, err := s.profileStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}
