package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

// Upsert replaces the stored aggregates for the profile's user.
func (s *ProfileStore) Upsert(ctx context.Context, p *domain.UserProfile) error {
	topics, err := json.Marshal(p.TopicCounts)
	if err != nil {
		return fmt.Errorf("marshal topic counts: %w", err)
	}
	structures, err := json.Marshal(p.StructureCounts)
	if err != nil {
		return fmt.Errorf("marshal structure counts: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO user_profiles (user_id, consult_count, avg_quality, avg_complexity, topic_counts, structure_counts, last_seen)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		     consult_count = EXCLUDED.consult_count,
		     avg_quality = EXCLUDED.avg_quality,
		     avg_complexity = EXCLUDED.avg_complexity,
		     topic_counts = EXCLUDED.topic_counts,
		     structure_counts = EXCLUDED.structure_counts,
		     last_seen = EXCLUDED.last_seen`,
		p.UserID, p.ConsultCount, p.AvgQuality, p.AvgComplexity, topics, structures, p.LastSeen,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	var topics, structures []byte
	err := s.db.QueryRow(ctx,
		`SELECT user_id, consult_count, avg_quality, avg_complexity, topic_counts, structure_counts, last_seen
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.ConsultCount, &p.AvgQuality, &p.AvgComplexity, &topics, &structures, &p.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(topics, &p.TopicCounts); err != nil {
		return nil, fmt.Errorf("decode topic counts: %w", err)
	}
	if err := json.Unmarshal(structures, &p.StructureCounts); err != nil {
		return nil, fmt.Errorf("decode structure counts: %w", err)
	}
	return p, nil
}

func (s *ProfileStore) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM user_profiles`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
