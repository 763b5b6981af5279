package domain

import "testing"

func TestComputeQualityTier(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  QualityTier
	}{
		{"excellent - 1.0", 1.0, TierExcellent},
		{"excellent boundary - 0.8", 0.8, TierExcellent},
		{"good - 0.79", 0.79, TierGood},
		{"good boundary - 0.7", 0.7, TierGood},
		{"adequate - 0.65", 0.65, TierAdequate},
		{"adequate boundary - 0.6", 0.6, TierAdequate},
		{"improvable - 0.55", 0.55, TierImprovable},
		{"improvable boundary - 0.5", 0.5, TierImprovable},
		{"deficient - 0.49", 0.49, TierDeficient},
		{"deficient - 0.1", 0.1, TierDeficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQualityTier(tt.score)
			if got != tt.want {
				t.Errorf("ComputeQualityTier(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestQualityTierThresholdsOrdered(t *testing.T) {
	for i, th := range QualityTierThresholds {
		if got := ComputeQualityTier(th.Min); got != th.Tier {
			t.Errorf("ComputeQualityTier(min of %s) = %s", th.Tier, got)
		}
		if i > 0 && th.Min >= QualityTierThresholds[i-1].Min {
			t.Errorf("threshold of %s must be below %s", th.Tier, QualityTierThresholds[i-1].Tier)
		}
	}
	if got := ComputeQualityTier(-0.1); got != TierDeficient {
		t.Errorf("ComputeQualityTier(-0.1) = %s, want deficient", got)
	}
}

func TestComputeComplexityTier(t *testing.T) {
	tests := []struct {
		complexity float64
		want       ComplexityTier
	}{
		{0.0, ComplexityLow},
		{0.39, ComplexityLow},
		{0.4, ComplexityMedium},
		{0.69, ComplexityMedium},
		{0.7, ComplexityHigh},
		{1.0, ComplexityHigh},
	}
	for _, tt := range tests {
		if got := ComputeComplexityTier(tt.complexity); got != tt.want {
			t.Errorf("ComputeComplexityTier(%v) = %v, want %v", tt.complexity, got, tt.want)
		}
	}
}

func TestUserProfileClone(t *testing.T) {
	p := &UserProfile{
		UserID:          "u1",
		TopicCounts:     map[string]int{"ciencia": 2},
		StructureCounts: map[StructureType]int{StructureAssertive: 1},
	}
	c := p.Clone()
	c.TopicCounts["ciencia"] = 9
	c.StructureCounts[StructureAssertive] = 9
	if p.TopicCounts["ciencia"] != 2 || p.StructureCounts[StructureAssertive] != 1 {
		t.Error("clone must not alias the original maps")
	}
}
