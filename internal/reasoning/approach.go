package reasoning

import (
	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
)

const (
	lowAmbiguity    = 0.3
	highAmbiguity   = 0.5
	highComplexity  = 0.5
	highDepth       = 0.5
	highAbstraction = 0.5
)

type predicate struct {
	label string
	eval  func(domain.AnalysisResult) bool
}

var predicates = map[knowledge.PredicateID]predicate{
	knowledge.PredHasPremises: {"hay premisas identificables", func(a domain.AnalysisResult) bool {
		return len(a.Logical.Premises) > 0
	}},
	knowledge.PredHasConclusions: {"hay una conclusión", func(a domain.AnalysisResult) bool {
		return len(a.Logical.Conclusions) > 0
	}},
	knowledge.PredDeductiveStructure: {"la estructura es deductiva", func(a domain.AnalysisResult) bool {
		return a.Logical.StructureType == domain.StructureDeductiveConditional
	}},
	knowledge.PredLowAmbiguity: {"el planteamiento es poco ambiguo", func(a domain.AnalysisResult) bool {
		return a.Semantic.Ambiguity < lowAmbiguity
	}},
	knowledge.PredExpectsExplanation: {"se pide una explicación", func(a domain.AnalysisResult) bool {
		return a.Contextual.ExpectedResponse == "explanation" || a.Linguistic.SentenceType == domain.SentenceExplanatoryQuestion
	}},
	knowledge.PredMultipleTopics: {"intervienen varios temas", func(a domain.AnalysisResult) bool {
		return len(a.Semantic.Topics) >= 2
	}},
	knowledge.PredHighComplexity: {"la consulta es compleja", func(a domain.AnalysisResult) bool {
		return a.Complexity > highComplexity
	}},
	knowledge.PredCausalRelations: {"hay relaciones causales", func(a domain.AnalysisResult) bool {
		return a.Semantic.HasRelation(domain.RelationCausal)
	}},
	knowledge.PredNeedsBreakdown: {"conviene descomponerla", func(a domain.AnalysisResult) bool {
		return a.NeedsBreakdown
	}},
	knowledge.PredHighDepth: {"tiene profundidad conceptual", func(a domain.AnalysisResult) bool {
		return a.Depth > highDepth
	}},
	knowledge.PredContrastRelations: {"contrapone ideas", func(a domain.AnalysisResult) bool {
		return a.Semantic.HasRelation(domain.RelationContrast)
	}},
	knowledge.PredExpectsEvaluation: {"se pide una evaluación", func(a domain.AnalysisResult) bool {
		return a.Contextual.ExpectedResponse == "evaluation"
	}},
	knowledge.PredNormativeQuestion: {"es una pregunta normativa", func(a domain.AnalysisResult) bool {
		return a.Linguistic.SentenceType == domain.SentenceNormativeQuestion
	}},
	knowledge.PredHasAssumptions: {"descansa en supuestos", func(a domain.AnalysisResult) bool {
		for _, p := range a.Logical.Premises {
			if p.Kind == string(domain.PremiseAssumption) {
				return true
			}
		}
		return false
	}},
	knowledge.PredSubjectiveStatement: {"expresa una opinión", func(a domain.AnalysisResult) bool {
		return a.Linguistic.SentenceType == domain.SentenceSubjectiveDeclarative
	}},
	knowledge.PredHighAbstraction: {"es abstracta", func(a domain.AnalysisResult) bool {
		return a.Contextual.Abstraction > highAbstraction
	}},
	knowledge.PredSimilarityRelations: {"establece analogías", func(a domain.AnalysisResult) bool {
		return a.Semantic.HasRelation(domain.RelationSimilarity)
	}},
	knowledge.PredHypotheticalModality: {"se formula como deseo o conjetura", func(a domain.AnalysisResult) bool {
		return a.Linguistic.Modality == domain.ModalityVolitive || a.Linguistic.Modality == domain.ModalityEpistemic
	}},
	knowledge.PredHighAmbiguity: {"es abierta o ambigua", func(a domain.AnalysisResult) bool {
		return a.Semantic.Ambiguity > highAmbiguity
	}},
	knowledge.PredNoPremises: {"no parte de premisas explícitas", func(a domain.AnalysisResult) bool {
		return len(a.Logical.Premises) == 0
	}},
}

// ApproachSelector picks the thinking style whose predicates match best.
type ApproachSelector struct {
	kb     *knowledge.KnowledgeBase
	tuning Tuning
}

func NewApproachSelector(kb *knowledge.KnowledgeBase, tuning Tuning) *ApproachSelector {
	return &ApproachSelector{kb: kb, tuning: tuning}
}

// Select scores every system in knowledge base order. The first system with
// the highest score wins.
func (s *ApproachSelector) Select(a domain.AnalysisResult) domain.ApproachRecommendation {
	rec := domain.ApproachRecommendation{Rationale: []string{}}
	best := -1.0
	for _, sys := range s.kb.ThinkingSystems() {
		score := 0.0
		var matched []string
		for _, id := range sys.Predicates {
			p, ok := predicates[id]
			if !ok || !p.eval(a) {
				continue
			}
			score += s.tuning.PredicateWeight
			matched = append(matched, p.label)
		}
		score = clamp01(score)
		rec.Ranking = append(rec.Ranking, domain.StyleScore{Style: sys.Style, Score: score})
		if score > best {
			best = score
			rec.Style, rec.Score = sys.Style, score
			rec.Rationale = append([]string{}, matched...)
		}
	}
	return rec
}
