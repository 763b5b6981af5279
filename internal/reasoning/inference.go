package reasoning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
)

const (
	inductivePerPremise  = 0.1
	inductivePremiseCap  = 0.7
	inductiveDiversity   = 0.3
	abductiveTopicBase   = 0.4
	abductiveTopicStep   = 0.1
	abductiveTopicCap    = 0.8
	abductiveIntentBase  = 0.5
	abductiveQuestion    = 0.1
	abductiveEmotion     = 0.45
	maxAlternatives      = 2
	analogicalBase       = 0.6
	analogicalCloseTerms = 0.2
	analogicalMaxDiff    = 2
	analogicalShared     = 0.1
	contextualBase       = 0.6
	contextualDomain     = 0.1
	contextualUrgency    = 0.1
	contextualAbstract   = 0.05
	contextualBreakdown  = 0.05
	contextualAbstractAt = 0.5
)

// InferenceGenerator proposes candidate inferences, one per applicable
// strategy.
type InferenceGenerator struct {
	kb     *knowledge.KnowledgeBase
	tuning Tuning
}

func NewInferenceGenerator(kb *knowledge.KnowledgeBase, tuning Tuning) *InferenceGenerator {
	return &InferenceGenerator{kb: kb, tuning: tuning}
}

// Generate returns at most MaxInferences inferences above the confidence
// floor, highest confidence first.
func (g *InferenceGenerator) Generate(a domain.AnalysisResult) []domain.Inference {
	var candidates []domain.Inference
	for _, gen := range []func(domain.AnalysisResult) (domain.Inference, bool){
		g.deductive,
		g.inductive,
		g.abductive,
		g.analogical,
		g.contextual,
	} {
		if inf, ok := gen(a); ok {
			inf.Confidence = clamp01(inf.Confidence)
			candidates = append(candidates, inf)
		}
	}

	out := []domain.Inference{}
	for _, inf := range candidates {
		if inf.Confidence > g.tuning.InferenceFloor {
			out = append(out, inf)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > g.tuning.MaxInferences {
		out = out[:g.tuning.MaxInferences]
	}
	return out
}

func (g *InferenceGenerator) detail(s domain.Strategy) string {
	if lt, ok := g.kb.LogicType(s); ok {
		return lt.Name + ": " + lt.Description
	}
	return ""
}

func (g *InferenceGenerator) deductive(a domain.AnalysisResult) (domain.Inference, bool) {
	lf := a.Logical
	if len(lf.Premises) < 2 || len(lf.Conclusions) < 1 {
		return domain.Inference{}, false
	}
	conditional := false
	for _, p := range lf.Premises {
		if p.Conditional {
			conditional = true
			break
		}
	}
	if !conditional {
		return domain.Inference{}, false
	}

	conf := g.tuning.DeductiveLow
	if vocabularyOverlap(lf) > g.tuning.DeductiveOverlap {
		conf = g.tuning.DeductiveHigh
	}
	return domain.Inference{
		Strategy:   domain.StrategyDeductive,
		Statement:  fmt.Sprintf("Si se aceptan las premisas, se sigue que %s.", lf.Conclusions[0].Content),
		Confidence: conf,
		Detail:     g.detail(domain.StrategyDeductive),
	}, true
}

func (g *InferenceGenerator) inductive(a domain.AnalysisResult) (domain.Inference, bool) {
	var universal []domain.Statement
	for _, p := range a.Logical.Premises {
		if p.Universal {
			universal = append(universal, p)
		}
	}
	if len(universal) < 2 {
		return domain.Inference{}, false
	}

	counts := make(map[string]int)
	total := 0
	var order []string
	for _, p := range universal {
		for _, w := range textnorm.ContentWords(p.Content) {
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
			total++
		}
	}
	diversity := 0.0
	if total > 0 {
		diversity = float64(len(counts)) / float64(total)
	}

	conf := minFloat(inductivePremiseCap, inductivePerPremise*float64(len(universal))) + inductiveDiversity*diversity
	conf = minFloat(conf, g.tuning.InductiveCap)

	shared := ""
	for _, w := range order {
		if counts[w] > counts[shared] {
			shared = w
		}
	}
	inf := domain.Inference{
		Strategy:   domain.StrategyInductive,
		Statement:  fmt.Sprintf("Los %d casos observados comparten «%s»; es probable que el patrón se generalice.", len(universal), shared),
		Confidence: conf,
		Detail:     g.detail(domain.StrategyInductive),
	}
	if conf < g.tuning.WeakGeneralization {
		inf.Flags = append(inf.Flags, domain.FlagWeakGeneralization)
	}
	return inf, true
}

type explanation struct {
	statement  string
	confidence float64
}

func (g *InferenceGenerator) abductive(a domain.AnalysisResult) (domain.Inference, bool) {
	if a.Semantic.Ambiguity <= g.tuning.AbductiveAmbiguity {
		return domain.Inference{}, false
	}

	var cands []explanation
	if len(a.Semantic.Topics) > 0 {
		top := a.Semantic.Topics[0]
		cands = append(cands, explanation{
			statement:  fmt.Sprintf("La explicación más plausible se relaciona con %s.", top.Name),
			confidence: minFloat(abductiveTopicCap, abductiveTopicBase+abductiveTopicStep*float64(top.Relevance)),
		})
	}
	intent := abductiveIntentBase + boolWeight(a.Linguistic.SentenceType.IsQuestion(), abductiveQuestion)
	cands = append(cands, explanation{
		statement:  fmt.Sprintf("La consulta parece buscar una respuesta de tipo %s.", a.Contextual.ExpectedResponse),
		confidence: intent,
	})
	if a.Linguistic.ImpliedEmotion != domain.EmotionNeutral {
		cands = append(cands, explanation{
			statement:  fmt.Sprintf("El tono sugiere %s como motivación de fondo.", a.Linguistic.ImpliedEmotion),
			confidence: abductiveEmotion,
		})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].confidence > cands[j].confidence
	})

	inf := domain.Inference{
		Strategy:   domain.StrategyAbductive,
		Statement:  cands[0].statement,
		Confidence: cands[0].confidence,
		Detail:     g.detail(domain.StrategyAbductive),
	}
	for _, c := range cands[1:] {
		if len(inf.Alternatives) == maxAlternatives {
			break
		}
		inf.Alternatives = append(inf.Alternatives, c.statement)
	}
	return inf, true
}

func (g *InferenceGenerator) analogical(a domain.AnalysisResult) (domain.Inference, bool) {
	var rel *domain.Relation
	for i := range a.Semantic.Relations {
		if a.Semantic.Relations[i].Type == domain.RelationSimilarity {
			rel = &a.Semantic.Relations[i]
			break
		}
	}
	if rel == nil {
		return domain.Inference{}, false
	}

	conf := analogicalBase
	diff := len(strings.Fields(rel.Left)) - len(strings.Fields(rel.Right))
	if diff < 0 {
		diff = -diff
	}
	if diff <= analogicalMaxDiff {
		conf += analogicalCloseTerms
	}
	if textnorm.Overlap(textnorm.ContentStems(rel.Left), textnorm.ContentStems(rel.Right)) > 0 {
		conf += analogicalShared
	} else {
		conf -= analogicalShared
	}
	return domain.Inference{
		Strategy:   domain.StrategyAnalogical,
		Statement:  fmt.Sprintf("Lo que vale para «%s» podría valer para «%s» si la semejanza es relevante.", rel.Right, rel.Left),
		Confidence: conf,
		Detail:     g.detail(domain.StrategyAnalogical),
	}, true
}

func (g *InferenceGenerator) contextual(a domain.AnalysisResult) (domain.Inference, bool) {
	ctx := a.Contextual
	conf := contextualBase +
		boolWeight(ctx.Domain != domain.DomainGeneral, contextualDomain) +
		boolWeight(ctx.Urgency == domain.UrgencyHigh || ctx.Urgency == domain.UrgencyMedium, contextualUrgency) +
		boolWeight(ctx.Abstraction > contextualAbstractAt, contextualAbstract) +
		boolWeight(a.NeedsBreakdown, contextualBreakdown)

	stmt := fmt.Sprintf("En el ámbito %s, con urgencia %s, conviene una respuesta de tipo %s.", ctx.Domain, ctx.Urgency, ctx.ExpectedResponse)
	if a.NeedsBreakdown {
		stmt += " La consulta conviene abordarla por partes."
	}
	return domain.Inference{
		Strategy:   domain.StrategyContextual,
		Statement:  stmt,
		Confidence: conf,
		Detail:     g.detail(domain.StrategyContextual),
	}, true
}
