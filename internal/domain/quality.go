package domain

type QualityTier string

const (
	TierExcellent  QualityTier = "excellent"
	TierGood       QualityTier = "good"
	TierAdequate   QualityTier = "adequate"
	TierImprovable QualityTier = "improvable"
	TierDeficient  QualityTier = "deficient"
)

// QualityTierThresholds lists each tier with its inclusive lower bound,
// highest tier first.
var QualityTierThresholds = []struct {
	Tier QualityTier
	Min  float64
}{
	{TierExcellent, 0.8},
	{TierGood, 0.7},
	{TierAdequate, 0.6},
	{TierImprovable, 0.5},
	{TierDeficient, 0.0},
}

// ComputeQualityTier derives the tier from the composite score alone.
func ComputeQualityTier(score float64) QualityTier {
	for _, th := range QualityTierThresholds {
		if score >= th.Min {
			return th.Tier
		}
	}
	return TierDeficient
}

type QualityAssessment struct {
	Score           float64     `json:"score"`
	Tier            QualityTier `json:"tier"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
	Recommendations []string    `json:"recommendations"`
}

type ComplexityTier string

const (
	ComplexityLow    ComplexityTier = "low"
	ComplexityMedium ComplexityTier = "medium"
	ComplexityHigh   ComplexityTier = "high"
)

func ComputeComplexityTier(complexity float64) ComplexityTier {
	switch {
	case complexity >= 0.7:
		return ComplexityHigh
	case complexity >= 0.4:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}
