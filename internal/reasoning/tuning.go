package reasoning

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHistoryCap    = 1000
	DefaultMaxProfiles   = 10000
	DefaultExcerptRadius = 50
	DefaultMaxInferences = 5
)

// Tuning holds the heuristic weights of the pipeline. Zero values are not
// meaningful; start from DefaultTuning and override.
type Tuning struct {
	HistoryCap  int `yaml:"history_cap"`
	MaxProfiles int `yaml:"max_profiles"`

	// Detection adjustments, applied to informal rules only.
	ExcerptRadius         int     `yaml:"excerpt_radius"`
	NegationBonus         float64 `yaml:"negation_bonus"`
	AbsoluteBonus         float64 `yaml:"absolute_bonus"`
	LongExcerptPenalty    float64 `yaml:"long_excerpt_penalty"`
	LongExcerptRunes      int     `yaml:"long_excerpt_runes"`
	RepeatMatchBonus      float64 `yaml:"repeat_match_bonus"`
	MinSeverity           float64 `yaml:"min_severity"`
	MinDetectionConf      float64 `yaml:"min_detection_confidence"`
	MaxDetectionConf      float64 `yaml:"max_detection_confidence"`
	ContradictionPenalty  float64 `yaml:"contradiction_penalty"`
	BreakdownComplexity   float64 `yaml:"breakdown_complexity"`
	BreakdownWords        int     `yaml:"breakdown_words"`
	InferenceFloor        float64 `yaml:"inference_floor"`
	MaxInferences         int     `yaml:"max_inferences"`
	SolidInference        float64 `yaml:"solid_inference"`
	DeductiveOverlap      float64 `yaml:"deductive_overlap"`
	DeductiveHigh         float64 `yaml:"deductive_high"`
	DeductiveLow          float64 `yaml:"deductive_low"`
	InductiveCap          float64 `yaml:"inductive_cap"`
	WeakGeneralization    float64 `yaml:"weak_generalization"`
	AbductiveAmbiguity    float64 `yaml:"abductive_ambiguity"`
	PredicateWeight       float64 `yaml:"predicate_weight"`
	QualityBase           float64 `yaml:"quality_base"`
	QualitySeverityWeight float64 `yaml:"quality_severity_weight"`
	MetricStrong          float64 `yaml:"metric_strong"`
	MetricWeak            float64 `yaml:"metric_weak"`
}

func DefaultTuning() Tuning {
	return Tuning{
		HistoryCap:            DefaultHistoryCap,
		MaxProfiles:           DefaultMaxProfiles,
		ExcerptRadius:         DefaultExcerptRadius,
		NegationBonus:         0.1,
		AbsoluteBonus:         0.1,
		LongExcerptPenalty:    0.1,
		LongExcerptRunes:      100,
		RepeatMatchBonus:      0.1,
		MinSeverity:           0.1,
		MinDetectionConf:      0.3,
		MaxDetectionConf:      0.95,
		ContradictionPenalty:  0.2,
		BreakdownComplexity:   0.7,
		BreakdownWords:        50,
		InferenceFloor:        0.3,
		MaxInferences:         DefaultMaxInferences,
		SolidInference:        0.6,
		DeductiveOverlap:      0.5,
		DeductiveHigh:         0.8,
		DeductiveLow:          0.4,
		InductiveCap:          0.9,
		WeakGeneralization:    0.6,
		AbductiveAmbiguity:    0.3,
		PredicateWeight:       0.2,
		QualityBase:           0.7,
		QualitySeverityWeight: 0.3,
		MetricStrong:          0.7,
		MetricWeak:            0.4,
	}
}

// LoadTuning reads a YAML file over DefaultTuning. Unknown keys are rejected.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return DefaultTuning(), fmt.Errorf("decode tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return t, nil
}

// Validate rejects settings that would break output bounds. Every float
// setting is a weight or threshold on the unit interval.
func (t Tuning) Validate() error {
	switch {
	case t.HistoryCap <= 0:
		return fmt.Errorf("tuning: history_cap must be positive, got %d", t.HistoryCap)
	case t.MaxProfiles <= 0:
		return fmt.Errorf("tuning: max_profiles must be positive, got %d", t.MaxProfiles)
	case t.MaxInferences <= 0 || t.MaxInferences > DefaultMaxInferences:
		return fmt.Errorf("tuning: max_inferences must be in 1..%d, got %d", DefaultMaxInferences, t.MaxInferences)
	case t.ExcerptRadius < 0:
		return fmt.Errorf("tuning: excerpt_radius must not be negative, got %d", t.ExcerptRadius)
	case t.LongExcerptRunes < 0:
		return fmt.Errorf("tuning: long_excerpt_runes must not be negative, got %d", t.LongExcerptRunes)
	case t.BreakdownWords < 0:
		return fmt.Errorf("tuning: breakdown_words must not be negative, got %d", t.BreakdownWords)
	}

	for _, f := range t.unitFields() {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			return fmt.Errorf("tuning: %s must be in [0,1], got %v", f.name, f.value)
		}
	}

	switch {
	case t.InferenceFloor < 0.3 || t.InferenceFloor >= 1:
		return fmt.Errorf("tuning: inference_floor must be in [0.3,1), got %v", t.InferenceFloor)
	case t.MinDetectionConf > t.MaxDetectionConf:
		return fmt.Errorf("tuning: min_detection_confidence %v exceeds max_detection_confidence %v", t.MinDetectionConf, t.MaxDetectionConf)
	case t.DeductiveLow > t.DeductiveHigh:
		return fmt.Errorf("tuning: deductive_low %v exceeds deductive_high %v", t.DeductiveLow, t.DeductiveHigh)
	case t.MetricWeak > t.MetricStrong:
		return fmt.Errorf("tuning: metric_weak %v exceeds metric_strong %v", t.MetricWeak, t.MetricStrong)
	case t.InferenceFloor > t.SolidInference:
		return fmt.Errorf("tuning: inference_floor %v exceeds solid_inference %v", t.InferenceFloor, t.SolidInference)
	}
	return nil
}

type unitField struct {
	name  string
	value float64
}

func (t Tuning) unitFields() []unitField {
	return []unitField{
		{"negation_bonus", t.NegationBonus},
		{"absolute_bonus", t.AbsoluteBonus},
		{"long_excerpt_penalty", t.LongExcerptPenalty},
		{"repeat_match_bonus", t.RepeatMatchBonus},
		{"min_severity", t.MinSeverity},
		{"min_detection_confidence", t.MinDetectionConf},
		{"max_detection_confidence", t.MaxDetectionConf},
		{"contradiction_penalty", t.ContradictionPenalty},
		{"breakdown_complexity", t.BreakdownComplexity},
		{"inference_floor", t.InferenceFloor},
		{"solid_inference", t.SolidInference},
		{"deductive_overlap", t.DeductiveOverlap},
		{"deductive_high", t.DeductiveHigh},
		{"deductive_low", t.DeductiveLow},
		{"inductive_cap", t.InductiveCap},
		{"weak_generalization", t.WeakGeneralization},
		{"abductive_ambiguity", t.AbductiveAmbiguity},
		{"predicate_weight", t.PredicateWeight},
		{"quality_base", t.QualityBase},
		{"quality_severity_weight", t.QualitySeverityWeight},
		{"metric_strong", t.MetricStrong},
		{"metric_weak", t.MetricWeak},
	}
}
