package domain

type FallacyCategory string

const (
	CategoryFormal    FallacyCategory = "formal"
	CategoryInformal  FallacyCategory = "informal"
	CategoryCognitive FallacyCategory = "cognitive"
)

// DetectionCategory separates fallacies from cognitive biases in the output.
type DetectionCategory string

const (
	DetectionFormal   DetectionCategory = "formal"
	DetectionInformal DetectionCategory = "informal"
	DetectionBias     DetectionCategory = "bias"
)

func ValidFallacyCategory(c string) bool {
	switch FallacyCategory(c) {
	case CategoryFormal, CategoryInformal, CategoryCognitive:
		return true
	}
	return false
}

// MatchInfo describes where a detection rule fired in the folded query text.
// Start and End are byte offsets into the folded text.
type MatchInfo struct {
	Start int
	End   int
	Count int
}

type FallacyDetection struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   DetectionCategory `json:"category"`
	Severity   float64           `json:"severity"`
	Confidence float64           `json:"confidence"`
	Excerpt    string            `json:"excerpt"`
	Correction string            `json:"correction"`
}

// IsBias reports whether the detection is a cognitive bias rather than a fallacy.
func (d FallacyDetection) IsBias() bool {
	return d.Category == DetectionBias
}
