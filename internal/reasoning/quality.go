package reasoning

import (
	"fmt"

	"github.com/Harshitk-cp/logos/internal/domain"
)

const (
	qualityStrengthWeight     = 0.2
	qualityCoherenceWeight    = 0.15
	qualityClarityWeight      = 0.1
	qualityInferenceWeight    = 0.15
	qualityCompletenessWeight = 0.1
	qualityFloor              = 0.1
)

// metricCheck maps one sub-metric to its strength/weakness lines.
type metricCheck struct {
	value          func(domain.StructureEvaluation) float64
	strong         string
	weak           string
	recommendation string
}

var metricChecks = []metricCheck{
	{
		value:          func(s domain.StructureEvaluation) float64 { return s.Strength },
		strong:         "Las premisas sostienen la conclusión con fuerza.",
		weak:           "El argumento tiene poca fuerza de apoyo.",
		recommendation: "Aporta razones o evidencias explícitas que respalden la conclusión.",
	},
	{
		value:          func(s domain.StructureEvaluation) float64 { return s.Coherence },
		strong:         "La conclusión retoma los términos de las premisas.",
		weak:           "La conclusión usa términos que no aparecen en las premisas.",
		recommendation: "Conecta la conclusión con los mismos conceptos que usan las premisas.",
	},
	{
		value:          func(s domain.StructureEvaluation) float64 { return s.Clarity },
		strong:         "Las afirmaciones están formuladas con claridad.",
		weak:           "Las afirmaciones son poco claras o implícitas.",
		recommendation: "Formula cada premisa en una oración breve y explícita.",
	},
	{
		value:          func(s domain.StructureEvaluation) float64 { return s.Completeness },
		strong:         "El argumento está completo.",
		weak:           "Faltan premisas o una conclusión explícita.",
		recommendation: "Explicita la conclusión y las premisas que la sostienen.",
	},
}

// QualityEvaluator aggregates detections, structure and inferences into a
// single score.
type QualityEvaluator struct {
	tuning Tuning
}

func NewQualityEvaluator(tuning Tuning) *QualityEvaluator {
	return &QualityEvaluator{tuning: tuning}
}

func (q *QualityEvaluator) Evaluate(dets []domain.FallacyDetection, s domain.StructureEvaluation, infs []domain.Inference) domain.QualityAssessment {
	var severities []float64
	biases := 0
	for _, d := range dets {
		if d.IsBias() {
			biases++
			continue
		}
		severities = append(severities, d.Severity)
	}
	solid := q.solidRatio(infs)

	score := q.tuning.QualityBase -
		q.tuning.QualitySeverityWeight*mean(severities) +
		qualityStrengthWeight*s.Strength +
		qualityCoherenceWeight*s.Coherence +
		qualityClarityWeight*s.Clarity +
		qualityInferenceWeight*solid +
		qualityCompletenessWeight*s.Completeness
	score = clamp(score, qualityFloor, 1)

	qa := domain.QualityAssessment{
		Score:           score,
		Tier:            domain.ComputeQualityTier(score),
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}
	for _, c := range metricChecks {
		switch v := c.value(s); {
		case v >= q.tuning.MetricStrong:
			qa.Strengths = append(qa.Strengths, c.strong)
		case v < q.tuning.MetricWeak:
			qa.Weaknesses = append(qa.Weaknesses, c.weak)
			qa.Recommendations = append(qa.Recommendations, c.recommendation)
		}
	}

	switch n := len(severities); {
	case n == 0:
		qa.Strengths = append(qa.Strengths, "No se detectaron falacias.")
	default:
		qa.Weaknesses = append(qa.Weaknesses, fmt.Sprintf("Se detectaron %d falacia(s).", n))
	}
	if biases > 0 {
		qa.Weaknesses = append(qa.Weaknesses, fmt.Sprintf("Se detectaron %d indicio(s) de sesgo cognitivo.", biases))
	}
	if len(s.Contradictions) > 0 {
		qa.Weaknesses = append(qa.Weaknesses, "Hay términos opuestos que sugieren una contradicción.")
		qa.Recommendations = append(qa.Recommendations, "Revisa si las afirmaciones opuestas pueden sostenerse a la vez.")
	}
	if len(infs) > 0 && solid >= 0.5 {
		qa.Strengths = append(qa.Strengths, "Admite inferencias sólidas.")
	}

	seen := make(map[string]bool)
	for _, d := range dets {
		if d.Correction == "" || seen[d.Correction] {
			continue
		}
		seen[d.Correction] = true
		qa.Recommendations = append(qa.Recommendations, d.Correction)
	}
	return qa
}

func (q *QualityEvaluator) solidRatio(infs []domain.Inference) float64 {
	if len(infs) == 0 {
		return 0
	}
	n := 0
	for _, inf := range infs {
		if inf.Confidence >= q.tuning.SolidInference {
			n++
		}
	}
	return float64(n) / float64(len(infs))
}
