package reasoning

import (
	"testing"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(text string, qctx domain.QueryContext) domain.AnalysisResult {
	a := NewAnalyzer(knowledge.Default(), DefaultTuning())
	return a.Analyze(textnorm.NewDoc(text), qctx)
}

func TestAnalyzer_SentenceType(t *testing.T) {
	tests := []struct {
		text string
		want domain.SentenceType
	}{
		{"¿Por qué el cielo es azul?", domain.SentenceExplanatoryQuestion},
		{"¿Debería dejar mi trabajo?", domain.SentenceNormativeQuestion},
		{"¿Qué hora es?", domain.SentenceInformativeQuestion},
		{"Si llueve, me quedo en casa.", domain.SentenceConditional},
		{"Me quedo en casa porque llueve.", domain.SentenceExplanatory},
		{"Creo que el cine es mejor que el teatro.", domain.SentenceSubjectiveDeclarative},
		{"El cielo es azul.", domain.SentenceDeclarative},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, analyze(tt.text, domain.QueryContext{}).Linguistic.SentenceType)
		})
	}
}

func TestAnalyzer_Modality(t *testing.T) {
	tests := []struct {
		text string
		want domain.Modality
	}{
		{"Debemos cuidar el planeta.", domain.ModalityDeontic},
		{"Es imposible viajar más rápido que la luz.", domain.ModalityAlethic},
		{"Quizás mañana haga sol.", domain.ModalityEpistemic},
		{"Ojalá gane mi equipo.", domain.ModalityVolitive},
		{"El tren sale a las diez.", domain.ModalityAssertive},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, analyze(tt.text, domain.QueryContext{}).Linguistic.Modality)
		})
	}
}

func TestAnalyzer_Emotion(t *testing.T) {
	assert.Equal(t, "miedo", analyze("Tengo miedo y estoy preocupado por el examen.", domain.QueryContext{}).Linguistic.ImpliedEmotion)
	assert.Equal(t, domain.EmotionNeutral, analyze("El tren sale a las diez.", domain.QueryContext{}).Linguistic.ImpliedEmotion)
}

func TestAnalyzer_TopicsAndDomain(t *testing.T) {
	res := analyze("La inflación sube los precios del mercado y el gobierno cambia la ley.", domain.QueryContext{})
	require.NotEmpty(t, res.Semantic.Topics)
	assert.Equal(t, "economia", res.Semantic.Topics[0].Name)
	assert.Equal(t, 3, res.Semantic.Topics[0].Relevance)
	assert.Contains(t, res.Semantic.Topics[0].Subtopics, "macroeconomia")
	assert.Equal(t, "politica", res.Semantic.Topics[1].Name)
	assert.Equal(t, "economia", res.Contextual.Domain)
}

func TestAnalyzer_DomainFallbacks(t *testing.T) {
	res := analyze("¿Y entonces qué pasa?", domain.QueryContext{DomainHint: "Salud"})
	assert.Equal(t, "salud", res.Contextual.Domain)

	res = analyze("¿Y entonces qué pasa?", domain.QueryContext{RecentHistory: []string{"Hablemos de la democracia y las elecciones?"}})
	assert.Equal(t, "politica", res.Contextual.Domain)
	assert.Equal(t, domain.ResponseFollowUp, res.Contextual.ExpectedResponse)

	res = analyze("¿Y entonces qué pasa?", domain.QueryContext{})
	assert.Equal(t, domain.DomainGeneral, res.Contextual.Domain)
	assert.Equal(t, domain.ResponseGeneral, res.Contextual.ExpectedResponse)
}

func TestAnalyzer_ConceptsAndRelations(t *testing.T) {
	res := analyze("La libertad es un derecho, pero la responsabilidad la limita. La mente es como una computadora.", domain.QueryContext{})

	var terms []string
	for _, c := range res.Semantic.Concepts {
		terms = append(terms, c.Term)
	}
	assert.Contains(t, terms, "libertad")
	assert.Contains(t, terms, "responsabilidad")
	assert.Contains(t, terms, "derecho")

	assert.True(t, res.Semantic.HasRelation(domain.RelationContrast))
	assert.True(t, res.Semantic.HasRelation(domain.RelationSimilarity))
	for _, r := range res.Semantic.Relations {
		if r.Type == domain.RelationSimilarity {
			assert.Equal(t, "la mente", r.Left)
			assert.Equal(t, "una computadora", r.Right)
		}
	}
}

func TestAnalyzer_Ambiguity(t *testing.T) {
	res := analyze("Tal vez eso podría ser algo, quizás.", domain.QueryContext{})
	// two hedges, two vague pronouns, one modal verb
	assert.InDelta(t, 0.55, res.Semantic.Ambiguity, 1e-9)

	res = analyze("El agua hierve a cien grados.", domain.QueryContext{})
	assert.Zero(t, res.Semantic.Ambiguity)
}

func TestAnalyzer_ImplicitConclusion(t *testing.T) {
	res := analyze("Los estudios demuestran que el ejercicio mejora la salud. Hay que hacer deporte. ¿No crees?", domain.QueryContext{})

	lf := res.Logical
	require.Len(t, lf.Conclusions, 1)
	assert.Equal(t, string(domain.ConclusionImplicit), lf.Conclusions[0].Kind)
	assert.Equal(t, "hay que hacer deporte", lf.Conclusions[0].Content)
	require.Len(t, lf.Premises, 1)
	assert.Equal(t, string(domain.PremiseEvidence), lf.Premises[0].Kind)
}

func TestAnalyzer_StructureType(t *testing.T) {
	tests := []struct {
		text string
		want domain.StructureType
	}{
		{"Hola.", domain.StructureDeclarativeSimple},
		{"El cielo es azul.", domain.StructureAssertive},
		{"Me quedo en casa porque llueve.", domain.StructureExplanatory},
		{"Los datos muestran un aumento, por lo tanto hay que actuar.", domain.StructureArgumentative},
		{"Si llueve, entonces me mojo. Llueve. Por lo tanto me mojo.", domain.StructureDeductiveConditional},
		{"Todos los metales conducen. Todo el cobre es metal. Por lo tanto el cobre conduce.", domain.StructureInductiveGeneralization},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, analyze(tt.text, domain.QueryContext{}).Logical.StructureType)
		})
	}
}

func TestAnalyzer_UrgencyAndAbstraction(t *testing.T) {
	assert.Equal(t, domain.UrgencyHigh, analyze("Necesito ayuda urgente con esto.", domain.QueryContext{}).Contextual.Urgency)
	assert.Equal(t, domain.UrgencyLow, analyze("No es urgente, pero necesito ayuda.", domain.QueryContext{}).Contextual.Urgency)
	assert.Equal(t, domain.UrgencyMedium, analyze("Necesito una respuesta.", domain.QueryContext{}).Contextual.Urgency)

	res := analyze("¿Qué es la verdad? La naturaleza de la justicia y el sentido de la existencia.", domain.QueryContext{})
	assert.Greater(t, res.Contextual.Abstraction, 0.5)
	assert.Equal(t, "definition", res.Contextual.ExpectedResponse)
}

func TestAnalyzer_NeedsBreakdown(t *testing.T) {
	long := ""
	for i := 0; i < 60; i++ {
		long += "palabra "
	}
	res := analyze(long, domain.QueryContext{})
	assert.True(t, res.NeedsBreakdown)
	assert.Equal(t, 60, res.Linguistic.WordCount)
}

func TestAnalyzer_OneWordPremiseBeforeComma(t *testing.T) {
	res := analyze("Si llueve, entonces la calle se moja. Llueve, luego la calle se moja.", domain.QueryContext{})

	var premises []string
	for _, p := range res.Logical.Premises {
		premises = append(premises, p.Content)
	}
	assert.Contains(t, premises, "llueve")
	require.Len(t, res.Logical.Conclusions, 1)

	var strategies []domain.Strategy
	for _, inf := range newGenerator().Generate(res) {
		strategies = append(strategies, inf.Strategy)
	}
	assert.Contains(t, strategies, domain.StrategyDeductive)

	res = analyze("Bueno luego hablamos del tema pendiente.", domain.QueryContext{})
	assert.Empty(t, res.Logical.Premises, "a one-word prefix without a comma is not a premise")
}

func TestAnalyzer_RelationsBoundedBySentences(t *testing.T) {
	res := analyze("La mente es como una computadora porque procesa datos, pero no siente.", domain.QueryContext{})
	require.Len(t, res.Semantic.Relations, 1)
	assert.Equal(t, domain.RelationSimilarity, res.Semantic.Relations[0].Type)
	assert.Equal(t, "la mente", res.Semantic.Relations[0].Left)

	text := "El calor provoca sequía, así que el río baja. Sin embargo llueve en otoño. Hola mundo."
	r := analyze(text, domain.QueryContext{})
	assert.LessOrEqual(t, len(r.Semantic.Relations), len(textnorm.NewDoc(text).Sentences))
}
