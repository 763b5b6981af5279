package reasoning

import (
	"testing"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
	"github.com/stretchr/testify/assert"
)

func TestCompleteness(t *testing.T) {
	want := map[int]float64{0: 0, 1: 0.3, 2: 0.6, 3: 0.8, 4: 0.9, 9: 0.9}
	for n, v := range want {
		assert.Equal(t, v, completeness(n), "n=%d", n)
	}
}

func TestArgumentType(t *testing.T) {
	p := domain.Statement{Content: "p"}
	u := domain.Statement{Content: "u", Universal: true}
	c := domain.Statement{Content: "c"}
	conditional := []domain.Connective{{Word: "si", Category: domain.ConnectiveConditional}}
	adversative := []domain.Connective{{Word: "pero", Category: domain.ConnectiveAdversative}}

	tests := []struct {
		name string
		lf   domain.LogicalFeatures
		want domain.ArgumentType
	}{
		{"none", domain.LogicalFeatures{}, domain.ArgumentNone},
		{"simple", domain.LogicalFeatures{Premises: []domain.Statement{p}, Conclusions: []domain.Statement{c}}, domain.ArgumentSimple},
		{"dialectic", domain.LogicalFeatures{Premises: []domain.Statement{p}, Conclusions: []domain.Statement{c}, Connectives: adversative}, domain.ArgumentDialectic},
		{"complex", domain.LogicalFeatures{Premises: []domain.Statement{p, p, p}, Conclusions: []domain.Statement{c, c}}, domain.ArgumentComplex},
		{"multiple conclusions", domain.LogicalFeatures{Premises: []domain.Statement{p}, Conclusions: []domain.Statement{c, c}}, domain.ArgumentMultipleConclusions},
		{"deductive", domain.LogicalFeatures{Premises: []domain.Statement{p}, Conclusions: []domain.Statement{c}, Connectives: conditional}, domain.ArgumentDeductive},
		{"inductive", domain.LogicalFeatures{Premises: []domain.Statement{u, u}, Conclusions: []domain.Statement{c}}, domain.ArgumentInductive},
		{"multiple premises", domain.LogicalFeatures{Premises: []domain.Statement{p, p, p}}, domain.ArgumentMultiplePremises},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, argumentType(tt.lf))
		})
	}
}

func TestStrength(t *testing.T) {
	lf := domain.LogicalFeatures{
		Premises:    []domain.Statement{{Strength: 0.8}, {Strength: 0.6}},
		Conclusions: []domain.Statement{{Strength: 0.7}},
		Connectives: []domain.Connective{{Category: domain.ConnectiveCausal}},
	}
	// 0.4*0.7 + 0.3*0.7 + 0.15
	assert.InDelta(t, 0.64, strength(lf), 1e-9)

	dangling := domain.LogicalFeatures{Premises: []domain.Statement{{Strength: 0.5}, {Strength: 0.5}, {Strength: 0.5}, {Strength: 0.5}}}
	assert.InDelta(t, 0.1, strength(dangling), 1e-9)
}

func TestStructureEvaluator_CoherenceAndContradictions(t *testing.T) {
	e := NewStructureEvaluator(knowledge.Default(), DefaultTuning())
	lf := domain.LogicalFeatures{
		Premises:    []domain.Statement{{Content: "los gatos siempre cazan ratones"}},
		Conclusions: []domain.Statement{{Content: "los gatos cazan"}},
	}

	doc := textnorm.NewDoc("Los gatos siempre cazan ratones, luego los gatos cazan.")
	got := e.Evaluate(doc, domain.AnalysisResult{Logical: lf})
	assert.Equal(t, 1.0, got.Coherence)
	assert.Empty(t, got.Contradictions)

	doc = textnorm.NewDoc("Los gatos siempre cazan ratones pero nunca comen, luego los gatos cazan.")
	got = e.Evaluate(doc, domain.AnalysisResult{Logical: lf})
	assert.Equal(t, []string{"siempre/nunca"}, got.Contradictions)
	assert.InDelta(t, 0.8, got.Coherence, 1e-9)
}

func TestClarity(t *testing.T) {
	assert.Equal(t, clarityBase, clarity(domain.LogicalFeatures{}))

	crisp := domain.LogicalFeatures{Conclusions: []domain.Statement{{Content: "el agua hierve a cien grados", Explicitness: 0.9}}}
	assert.InDelta(t, 0.8, clarity(crisp), 1e-9)

	vague := domain.LogicalFeatures{Conclusions: []domain.Statement{{Content: "eso", Explicitness: 0.4}}}
	assert.InDelta(t, 0.35, clarity(vague), 1e-9)
}
