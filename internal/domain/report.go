package domain

type InputErrorKind string

const (
	InputEmpty      InputErrorKind = "empty"
	InputWhitespace InputErrorKind = "whitespace"
	InputTooShort   InputErrorKind = "too_short"
)

type Section struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// AnalysisReport is the full output of one ProcessQuery call.
type AnalysisReport struct {
	Query        string                 `json:"query"`
	IsComplex    bool                   `json:"is_complex"`
	InputError   InputErrorKind         `json:"input_error,omitempty"`
	Analysis     AnalysisResult         `json:"analysis"`
	Detections   []FallacyDetection     `json:"detections"`
	Structure    StructureEvaluation    `json:"structure"`
	Inferences   []Inference            `json:"inferences"`
	Quality      QualityAssessment      `json:"quality"`
	Approach     ApproachRecommendation `json:"approach"`
	Summary      string                 `json:"summary"`
	Sections     []Section              `json:"sections"`
	Text         string                 `json:"text"`
	SkippedRules []string               `json:"skipped_rules,omitempty"`
}

// Fallacies returns detections that are not cognitive biases.
func (r *AnalysisReport) Fallacies() []FallacyDetection {
	var out []FallacyDetection
	for _, d := range r.Detections {
		if !d.IsBias() {
			out = append(out, d)
		}
	}
	return out
}

// Biases returns the cognitive-bias detections.
func (r *AnalysisReport) Biases() []FallacyDetection {
	var out []FallacyDetection
	for _, d := range r.Detections {
		if d.IsBias() {
			out = append(out, d)
		}
	}
	return out
}

// Diagnosis is the lightweight subset returned by Diagnose.
type Diagnosis struct {
	IsComplex       bool           `json:"is_complex"`
	InputError      InputErrorKind `json:"input_error,omitempty"`
	WordCount       int            `json:"word_count"`
	SentenceType    SentenceType   `json:"sentence_type"`
	StructureType   StructureType  `json:"structure_type"`
	Complexity      float64        `json:"complexity"`
	Domain          string         `json:"domain"`
	FallacyIDs      []string       `json:"fallacy_ids"`
	PremiseCount    int            `json:"premise_count"`
	ConclusionCount int            `json:"conclusion_count"`
}
