package knowledge

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ExamplesTriggerOwnRule(t *testing.T) {
	kb := Default()
	require.Len(t, kb.Fallacies(), 11)

	for _, def := range kb.Fallacies() {
		t.Run(def.ID, func(t *testing.T) {
			info, err := def.Match(textnorm.NewDoc(def.Example))
			require.NoError(t, err)
			require.NotNil(t, info, "example %q should match", def.Example)
			assert.GreaterOrEqual(t, info.Count, 1)
			assert.Less(t, info.Start, info.End)
		})
	}
}

func TestDefault_RulesIgnorePlainQuestion(t *testing.T) {
	kb := Default()
	doc := textnorm.NewDoc("Hola, cómo estás?")
	for _, def := range kb.Fallacies() {
		info, err := def.Match(doc)
		require.NoError(t, err)
		assert.Nil(t, info, "rule %s should not fire", def.ID)
	}
}

func TestFormalRules_DoNotCrossFire(t *testing.T) {
	kb := Default()
	ac, ok := kb.Fallacy(IDAffirmingConsequent)
	require.True(t, ok)
	da, ok := kb.Fallacy(IDDenyingAntecedent)
	require.True(t, ok)

	tests := []struct {
		name   string
		text   string
		wantAC bool
		wantDA bool
	}{
		{"affirming consequent", ac.Example, true, false},
		{"denying antecedent", da.Example, false, true},
		{"modus ponens", "Si llueve, entonces la calle se moja. Llueve, luego la calle se moja.", false, false},
		{"no minor premise", "Si llueve, entonces la calle se moja.", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := textnorm.NewDoc(tt.text)
			gotAC, _ := ac.Match(doc)
			gotDA, _ := da.Match(doc)
			assert.Equal(t, tt.wantAC, gotAC != nil)
			assert.Equal(t, tt.wantDA, gotDA != nil)
		})
	}
}

func TestParseConditionalArgument(t *testing.T) {
	arg, ok := ParseConditionalArgument(textnorm.FoldString("Si estudias, entonces apruebas. No estudias, por lo tanto no apruebas."))
	require.True(t, ok)
	assert.Equal(t, "estudias", arg.Antecedent)
	assert.Equal(t, "apruebas", arg.Consequent)
	assert.Equal(t, "no estudias", arg.Minor)
	assert.Equal(t, "no apruebas", arg.Conclusion)

	_, ok = ParseConditionalArgument("hoy hace sol")
	assert.False(t, ok)
}

func TestRegexMatcher_EarliestSpanAndCount(t *testing.T) {
	m := RegexMatcher(`\bbeta\b`, `\balfa\b`)
	info, err := m(textnorm.NewDoc("alfa beta alfa"))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 0, info.Start)
	assert.Equal(t, 4, info.End)
	assert.Equal(t, 3, info.Count)
}

func TestNew_Validation(t *testing.T) {
	noop := func(*textnorm.Doc) (*domain.MatchInfo, error) { return nil, nil }

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "duplicate id",
			opts:    []Option{WithExtraFallacies(FallacyDefinition{ID: IDAdHominem, Category: domain.CategoryInformal, Match: noop})},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "invalid category",
			opts:    []Option{WithExtraFallacies(FallacyDefinition{ID: "custom", Category: "rhetorical", Match: noop})},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "missing matcher",
			opts:    []Option{WithExtraFallacies(FallacyDefinition{ID: "custom", Category: domain.CategoryInformal})},
			wantErr: ErrMissingMatcher,
		},
		{
			name: "replace table",
			opts: []Option{WithFallacies(FallacyDefinition{ID: "only", Category: domain.CategoryFormal, Match: noop})},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb, err := New(tt.opts...)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, kb)
				return
			}
			require.NoError(t, err)
			assert.Len(t, kb.Fallacies(), 1)
			_, ok := kb.Fallacy("only")
			assert.True(t, ok)
		})
	}
}

func TestKnowledgeBase_Lookups(t *testing.T) {
	kb := Default()

	for _, s := range domain.AllStrategies() {
		lt, ok := kb.LogicType(s)
		assert.True(t, ok, "logic type %s", s)
		assert.NotEmpty(t, lt.Name)
	}
	for _, style := range domain.AllThinkingStyles() {
		ts, ok := kb.ThinkingSystem(style)
		assert.True(t, ok, "thinking system %s", style)
		assert.Len(t, ts.Predicates, 5)
	}
	_, ok := kb.Fallacy("missing")
	assert.False(t, ok)
	assert.NotEmpty(t, kb.ReflectiveQuestions())
	assert.Len(t, kb.Topics(), 9)
	assert.NotEmpty(t, kb.Lexicon().Connectives)
}
