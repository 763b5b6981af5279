package reasoning

import (
	"strings"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
)

const (
	strengthPremiseWeight    = 0.4
	strengthConclusionWeight = 0.3
	strengthConditional      = 0.15
	strengthCausal           = 0.15
	strengthDanglingPenalty  = 0.1
	danglingPremises         = 3

	clarityBase           = 0.5
	clarityHighExplicit   = 0.8
	clarityMidExplicit    = 0.6
	clarityLowExplicit    = 0.5
	clarityHighBonus      = 0.2
	clarityMidBonus       = 0.1
	clarityLowPenalty     = 0.1
	clarityMinWords       = 5
	clarityMaxWords       = 25
	clarityVerboseWords   = 40
	clarityTerseWords     = 3
	clarityLengthBonus    = 0.1
	clarityVerbosePenalty = 0.1
	clarityTersePenalty   = 0.05
)

// completenessSteps is indexed by premise+conclusion count; larger counts
// use the last entry.
var completenessSteps = []float64{0, 0.3, 0.6, 0.8, 0.9}

// StructureEvaluator scores the argument the Analyzer extracted.
type StructureEvaluator struct {
	lex    *knowledge.Lexicon
	tuning Tuning
}

func NewStructureEvaluator(kb *knowledge.KnowledgeBase, tuning Tuning) *StructureEvaluator {
	return &StructureEvaluator{lex: kb.Lexicon(), tuning: tuning}
}

func (e *StructureEvaluator) Evaluate(doc *textnorm.Doc, a domain.AnalysisResult) domain.StructureEvaluation {
	lf := a.Logical
	contradictions := e.contradictions(doc)
	return domain.StructureEvaluation{
		Type:           argumentType(lf),
		Strength:       strength(lf),
		Coherence:      e.coherence(lf, len(contradictions)),
		Completeness:   completeness(len(lf.Premises) + len(lf.Conclusions)),
		Clarity:        clarity(lf),
		Contradictions: contradictions,
	}
}

func strength(lf domain.LogicalFeatures) float64 {
	ps := make([]float64, len(lf.Premises))
	for i, p := range lf.Premises {
		ps[i] = p.Strength
	}
	v := strengthPremiseWeight * mean(ps)
	if len(lf.Conclusions) > 0 {
		v += strengthConclusionWeight * lf.Conclusions[0].Strength
	}
	v += boolWeight(lf.HasConnective(domain.ConnectiveConditional), strengthConditional)
	v += boolWeight(lf.HasConnective(domain.ConnectiveCausal), strengthCausal)
	v -= boolWeight(len(lf.Premises) > danglingPremises && len(lf.Conclusions) == 0, strengthDanglingPenalty)
	return clamp01(v)
}

func argumentType(lf domain.LogicalFeatures) domain.ArgumentType {
	p, c := len(lf.Premises), len(lf.Conclusions)
	universal := 0
	for _, st := range lf.Premises {
		if st.Universal {
			universal++
		}
	}

	switch {
	case p == 0 && c == 0:
		return domain.ArgumentNone
	case lf.HasConnective(domain.ConnectiveAdversative) && p >= 1 && c >= 1:
		return domain.ArgumentDialectic
	case p >= 3 && c >= 2:
		return domain.ArgumentComplex
	case c >= 2:
		return domain.ArgumentMultipleConclusions
	case lf.HasConnective(domain.ConnectiveConditional) && p >= 1 && c >= 1:
		return domain.ArgumentDeductive
	case universal >= 2 && c >= 1:
		return domain.ArgumentInductive
	case p >= 3:
		return domain.ArgumentMultiplePremises
	}
	return domain.ArgumentSimple
}

// vocabularyOverlap is the share of conclusion stems that also occur in
// the premises.
func vocabularyOverlap(lf domain.LogicalFeatures) float64 {
	var premises, conclusions []string
	for _, p := range lf.Premises {
		premises = append(premises, p.Content)
	}
	for _, c := range lf.Conclusions {
		conclusions = append(conclusions, c.Content)
	}
	ps := textnorm.ContentStems(strings.Join(premises, " "))
	cs := textnorm.ContentStems(strings.Join(conclusions, " "))
	if len(ps) == 0 || len(cs) == 0 {
		return 0
	}
	return float64(textnorm.Overlap(cs, ps)) / float64(len(cs))
}

func (e *StructureEvaluator) coherence(lf domain.LogicalFeatures, contradictions int) float64 {
	return clamp01(vocabularyOverlap(lf) - e.tuning.ContradictionPenalty*float64(contradictions))
}

func (e *StructureEvaluator) contradictions(doc *textnorm.Doc) []string {
	var out []string
	for _, pair := range e.lex.Antonyms {
		if doc.Has(pair.A) && doc.Has(pair.B) {
			out = append(out, pair.A+"/"+pair.B)
		}
	}
	return out
}

func completeness(n int) float64 {
	if n >= len(completenessSteps) {
		n = len(completenessSteps) - 1
	}
	return completenessSteps[n]
}

func clarity(lf domain.LogicalFeatures) float64 {
	statements := append(append([]domain.Statement(nil), lf.Premises...), lf.Conclusions...)
	if len(statements) == 0 {
		return clarityBase
	}

	explicit := make([]float64, len(statements))
	words := make([]float64, len(statements))
	for i, st := range statements {
		explicit[i] = st.Explicitness
		words[i] = float64(len(textnorm.Tokenize(st.Content)))
	}

	v := clarityBase
	switch ex := mean(explicit); {
	case ex >= clarityHighExplicit:
		v += clarityHighBonus
	case ex >= clarityMidExplicit:
		v += clarityMidBonus
	case ex < clarityLowExplicit:
		v -= clarityLowPenalty
	}
	switch w := mean(words); {
	case w > clarityVerboseWords:
		v -= clarityVerbosePenalty
	case w >= clarityMinWords && w <= clarityMaxWords:
		v += clarityLengthBonus
	case w < clarityTerseWords:
		v -= clarityTersePenalty
	}
	return clamp01(v)
}
