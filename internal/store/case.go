package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

const defaultListLimit = 100

type CaseStore struct {
	db *pgxpool.Pool
}

func NewCaseStore(db *pgxpool.Pool) *CaseStore {
	return &CaseStore{db: db}
}

func (s *CaseStore) Create(ctx context.Context, c *domain.CaseRecord) error {
	var vec *pgvector.Vector
	if len(c.TopicVector) > 0 {
		v := pgvector.NewVector(c.TopicVector)
		vec = &v
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO case_records (id, user_id, query_excerpt, summary, fallacy_ids, quality_score, complexity, structure_type, complexity_tier, topics, topic_vector, referenced, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.UserID, c.QueryExcerpt, c.Summary, c.FallacyIDs, c.QualityScore, c.Complexity, c.StructureType, c.ComplexityTier, c.Topics, vec, c.Referenced, c.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return fmt.Errorf("insert case record: %w", err)
	}
	return nil
}

// FindSimilar returns the nearest cases by Euclidean distance on the topic
// vector and bumps their referenced counter in the same statement.
func (s *CaseStore) FindSimilar(ctx context.Context, topicVector []float32, limit int) ([]domain.CaseWithScore, error) {
	if limit <= 0 {
		limit = 5
	}
	vec := pgvector.NewVector(topicVector)

	rows, err := s.db.Query(ctx,
		`WITH nearest AS (
		     SELECT id, topic_vector <-> $1 AS distance
		     FROM case_records
		     WHERE topic_vector IS NOT NULL
		     ORDER BY distance ASC, created_at DESC
		     LIMIT $2
		 )
		 UPDATE case_records c SET referenced = c.referenced + 1
		 FROM nearest n WHERE c.id = n.id
		 RETURNING c.id, c.user_id, c.query_excerpt, c.summary, c.fallacy_ids, c.quality_score, c.complexity, c.structure_type, c.complexity_tier, c.topics, c.referenced, c.created_at, n.distance`,
		vec, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find similar cases: %w", err)
	}
	defer rows.Close()

	var results []domain.CaseWithScore
	for rows.Next() {
		var cs domain.CaseWithScore
		if err := rows.Scan(
			&cs.ID, &cs.UserID, &cs.QueryExcerpt, &cs.Summary, &cs.FallacyIDs, &cs.QualityScore, &cs.Complexity,
			&cs.StructureType, &cs.ComplexityTier, &cs.Topics, &cs.Referenced, &cs.Timestamp, &cs.Distance,
		); err != nil {
			return nil, fmt.Errorf("scan similar case: %w", err)
		}
		results = append(results, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("similar case rows: %w", err)
	}

	// UPDATE ... RETURNING does not keep the CTE order.
	sortByDistance(results)
	return results, nil
}

func (s *CaseStore) ListRecent(ctx context.Context, limit int) ([]domain.CaseRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, query_excerpt, summary, fallacy_ids, quality_score, complexity, structure_type, complexity_tier, topics, topic_vector, referenced, created_at
		 FROM case_records
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.CaseRecord
	for rows.Next() {
		var c domain.CaseRecord
		var vec *pgvector.Vector
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.QueryExcerpt, &c.Summary, &c.FallacyIDs, &c.QualityScore, &c.Complexity,
			&c.StructureType, &c.ComplexityTier, &c.Topics, &vec, &c.Referenced, &c.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		if vec != nil {
			c.TopicVector = vec.Slice()
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

func (s *CaseStore) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM case_records`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func sortByDistance(cs []domain.CaseWithScore) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Distance != cs[j].Distance {
			return cs[i].Distance < cs[j].Distance
		}
		return cs[i].Timestamp.After(cs[j].Timestamp)
	})
}
