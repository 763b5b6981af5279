package domain

import (
	"context"
)

// CaseStore persists case records outside the engine's in-memory history.
type CaseStore interface {
	Create(ctx context.Context, c *CaseRecord) error
	FindSimilar(ctx context.Context, topicVector []float32, limit int) ([]CaseWithScore, error)
	ListRecent(ctx context.Context, limit int) ([]CaseRecord, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ProfileStore persists per-user aggregates.
type ProfileStore interface {
	Upsert(ctx context.Context, p *UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// RandomSource supplies the engine's only randomness. Intn must be
// deterministic for a given key on one source.
type RandomSource interface {
	Intn(key string, n int) int
}
