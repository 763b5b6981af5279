package knowledge

import "github.com/Harshitk-cp/logos/internal/domain"

// PredicateID names a boolean feature of an AnalysisResult.
type PredicateID string

const (
	PredHasPremises          PredicateID = "has_premises"
	PredHasConclusions       PredicateID = "has_conclusions"
	PredDeductiveStructure   PredicateID = "deductive_structure"
	PredLowAmbiguity         PredicateID = "low_ambiguity"
	PredExpectsExplanation   PredicateID = "expects_explanation"
	PredMultipleTopics       PredicateID = "multiple_topics"
	PredHighComplexity       PredicateID = "high_complexity"
	PredCausalRelations      PredicateID = "causal_relations"
	PredNeedsBreakdown       PredicateID = "needs_breakdown"
	PredHighDepth            PredicateID = "high_depth"
	PredContrastRelations    PredicateID = "contrast_relations"
	PredExpectsEvaluation    PredicateID = "expects_evaluation"
	PredNormativeQuestion    PredicateID = "normative_question"
	PredHasAssumptions       PredicateID = "has_assumptions"
	PredSubjectiveStatement  PredicateID = "subjective_statement"
	PredHighAbstraction      PredicateID = "high_abstraction"
	PredSimilarityRelations  PredicateID = "similarity_relations"
	PredHypotheticalModality PredicateID = "hypothetical_modality"
	PredHighAmbiguity        PredicateID = "high_ambiguity"
	PredNoPremises           PredicateID = "no_premises"
)

func defaultThinkingSystems() []ThinkingSystem {
	return []ThinkingSystem{
		{
			Style:          domain.StyleAnalytical,
			Name:           "Pensamiento analítico",
			Predicates:     []PredicateID{PredHasPremises, PredHasConclusions, PredDeductiveStructure, PredLowAmbiguity, PredExpectsExplanation},
			Strengths:      []string{"precisión", "trazabilidad de cada paso"},
			Weaknesses:     []string{"puede perder el contexto general"},
			Recommendation: "Descompón el argumento en premisas y verifica cada inferencia por separado.",
		},
		{
			Style:          domain.StyleSystemic,
			Name:           "Pensamiento sistémico",
			Predicates:     []PredicateID{PredMultipleTopics, PredHighComplexity, PredCausalRelations, PredNeedsBreakdown, PredHighDepth},
			Strengths:      []string{"visión de conjunto", "detección de interdependencias"},
			Weaknesses:     []string{"puede diluir los detalles"},
			Recommendation: "Mapea cómo se relacionan los factores entre sí antes de sacar conclusiones.",
		},
		{
			Style:          domain.StyleCritical,
			Name:           "Pensamiento crítico",
			Predicates:     []PredicateID{PredContrastRelations, PredExpectsEvaluation, PredNormativeQuestion, PredHasAssumptions, PredSubjectiveStatement},
			Strengths:      []string{"detección de supuestos", "evaluación de evidencia"},
			Weaknesses:     []string{"puede volverse excesivamente escéptico"},
			Recommendation: "Identifica los supuestos implícitos y pregunta qué evidencia los respalda.",
		},
		{
			Style:          domain.StyleCreative,
			Name:           "Pensamiento creativo",
			Predicates:     []PredicateID{PredHighAbstraction, PredSimilarityRelations, PredHypotheticalModality, PredHighAmbiguity, PredNoPremises},
			Strengths:      []string{"generación de alternativas", "conexiones inesperadas"},
			Weaknesses:     []string{"puede alejarse de la evidencia"},
			Recommendation: "Explora analogías y escenarios alternativos antes de cerrar una respuesta.",
		},
	}
}
