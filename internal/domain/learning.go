package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaseRecord is the compact trace of one processed query kept in the bounded history.
type CaseRecord struct {
	ID             uuid.UUID      `json:"id"`
	UserID         string         `json:"user_id,omitempty"`
	QueryExcerpt   string         `json:"query_excerpt"`
	Summary        string         `json:"summary"`
	FallacyIDs     []string       `json:"fallacy_ids"`
	QualityScore   float64        `json:"quality_score"`
	Complexity     float64        `json:"complexity"`
	StructureType  StructureType  `json:"structure_type"`
	ComplexityTier ComplexityTier `json:"complexity_tier"`
	Topics         []string       `json:"topics,omitempty"`
	TopicVector    []float32      `json:"topic_vector,omitempty"`
	Referenced     int            `json:"referenced"`
	Timestamp      time.Time      `json:"timestamp"`
}

// UserProfile holds running aggregates for one user id.
type UserProfile struct {
	UserID          string                `json:"user_id"`
	ConsultCount    int                   `json:"consult_count"`
	AvgQuality      float64               `json:"avg_quality"`
	AvgComplexity   float64               `json:"avg_complexity"`
	TopicCounts     map[string]int        `json:"topic_counts"`
	StructureCounts map[StructureType]int `json:"structure_counts"`
	LastSeen        time.Time             `json:"last_seen"`
}

// Clone returns a deep copy so snapshots never alias tracker state.
func (p *UserProfile) Clone() *UserProfile {
	c := *p
	c.TopicCounts = make(map[string]int, len(p.TopicCounts))
	for k, v := range p.TopicCounts {
		c.TopicCounts[k] = v
	}
	c.StructureCounts = make(map[StructureType]int, len(p.StructureCounts))
	for k, v := range p.StructureCounts {
		c.StructureCounts[k] = v
	}
	return &c
}

type Statistics struct {
	TotalProcessed   int            `json:"total_processed"`
	HistoryLength    int            `json:"history_length"`
	HistoryCap       int            `json:"history_cap"`
	FallacyCounts    map[string]int `json:"fallacy_counts"`
	PatternCounts    map[string]int `json:"pattern_counts"`
	UserProfileCount int            `json:"user_profile_count"`
	AvgQuality       float64        `json:"avg_quality"`
	AvgComplexity    float64        `json:"avg_complexity"`
	SkippedWrites    int            `json:"skipped_writes"`
}

// LearningSnapshot is the exported tracker state.
type LearningSnapshot struct {
	Cases          []CaseRecord            `json:"cases"`
	FallacyCounts  map[string]int          `json:"fallacy_counts"`
	PatternCounts  map[string]int          `json:"pattern_counts"`
	Profiles       map[string]*UserProfile `json:"profiles"`
	TotalProcessed int                     `json:"total_processed"`
	QualitySum     float64                 `json:"quality_sum"`
	ComplexitySum  float64                 `json:"complexity_sum"`
	ExportedAt     time.Time               `json:"exported_at"`
}

// CaseWithScore is a case returned by similarity lookup, lower distance is closer.
type CaseWithScore struct {
	CaseRecord
	Distance float64 `json:"distance"`
}
