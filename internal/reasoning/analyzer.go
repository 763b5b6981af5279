package reasoning

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
)

const (
	WordsForFullLength    = 200
	DenseSentenceWords    = 15
	MaxConcepts           = 10
	MinConceptRunes       = 6
	PrefixKeywordRunes    = 5
	MinPremisePrefixWords = 2
	MinGeneralWords       = 3
)

// Complexity weights.
const (
	complexityLength      = 0.3
	complexityDense       = 0.1
	complexityTopic       = 0.05
	complexityConcept     = 0.03
	complexityAmbiguity   = 0.15
	complexityPremise     = 0.04
	complexityConclusion  = 0.05
	complexityConnective  = 0.02
	depthRelevance        = 0.05
	depthRelevanceCap     = 10
	depthAbstraction      = 0.3
	depthCoreDomainBonus  = 0.1
	depthOtherDomainBonus = 0.05
	abstractionVocabulary = 0.15
	abstractionPhrasing   = 0.2
	abstractionConcept    = 0.05
	ambiguityHedge        = 0.15
	ambiguityVague        = 0.1
	ambiguityModal        = 0.05
)

// Base strengths of extracted statements.
const (
	explicitConclusionStrength     = 0.7
	explicitConclusionExplicitness = 0.9
	implicitConclusionStrength     = 0.4
	implicitConclusionExplicitness = 0.5
	generalPremiseStrength         = 0.6
	generalPremiseExplicitness     = 0.6
)

var structureDepthBonus = map[domain.StructureType]float64{
	domain.StructureDeductiveConditional:    0.25,
	domain.StructureMixed:                   0.25,
	domain.StructureInductiveGeneralization: 0.2,
	domain.StructureArgumentative:           0.2,
	domain.StructureExplanatory:             0.15,
	domain.StructureAssertive:               0.1,
}

var coreDomains = map[string]bool{"filosofia": true, "ciencia": true}

// Analyzer decomposes a query into feature sets using the knowledge base
// taxonomies.
type Analyzer struct {
	kb     *knowledge.KnowledgeBase
	lex    *knowledge.Lexicon
	tuning Tuning
}

func NewAnalyzer(kb *knowledge.KnowledgeBase, tuning Tuning) *Analyzer {
	return &Analyzer{kb: kb, lex: kb.Lexicon(), tuning: tuning}
}

func (a *Analyzer) Analyze(doc *textnorm.Doc, qctx domain.QueryContext) domain.AnalysisResult {
	var res domain.AnalysisResult
	res.Linguistic = a.linguistic(doc)
	res.Semantic = a.semantic(doc)
	res.Logical = a.logical(doc)
	res.Contextual = a.contextual(doc, res.Semantic, qctx)

	res.Complexity = a.complexity(res)
	res.Depth = a.depth(res)
	res.NeedsBreakdown = res.Complexity > a.tuning.BreakdownComplexity || res.Linguistic.WordCount > a.tuning.BreakdownWords
	return res
}

func (a *Analyzer) linguistic(doc *textnorm.Doc) domain.LinguisticFeatures {
	f := domain.LinguisticFeatures{
		WordCount:     len(doc.Tokens),
		SentenceCount: len(doc.Sentences),
	}
	if f.SentenceCount == 0 && f.WordCount > 0 {
		f.SentenceCount = 1
	}
	if f.SentenceCount > 0 {
		f.Density = float64(f.WordCount) / float64(f.SentenceCount)
	}
	f.SentenceType = a.sentenceType(doc)
	f.Modality = a.modality(doc)
	f.ImpliedEmotion = a.emotion(doc)
	return f
}

func (a *Analyzer) sentenceType(doc *textnorm.Doc) domain.SentenceType {
	question := false
	for _, s := range doc.Sentences {
		if s.Question {
			question = true
			break
		}
	}

	switch {
	case question && doc.HasAny(a.lex.QuestionExplanatory):
		return domain.SentenceExplanatoryQuestion
	case question && doc.HasAny(a.lex.QuestionNormative):
		return domain.SentenceNormativeQuestion
	case question:
		return domain.SentenceInformativeQuestion
	case isConditional(doc):
		return domain.SentenceConditional
	case doc.HasAny(a.lex.CausalMarkers):
		return domain.SentenceExplanatory
	case doc.HasAny(a.lex.SubjectiveMarkers):
		return domain.SentenceSubjectiveDeclarative
	}
	return domain.SentenceDeclarative
}

func isConditional(doc *textnorm.Doc) bool {
	if len(doc.Tokens) > 0 && doc.Tokens[0] == "si" {
		return true
	}
	if strings.HasPrefix(strings.Join(doc.Tokens, " "), "en caso de") {
		return true
	}
	return doc.Has("si") && doc.Has("entonces")
}

func (a *Analyzer) modality(doc *textnorm.Doc) domain.Modality {
	for _, rule := range a.lex.Modalities {
		if doc.HasAny(rule.Phrases) {
			return domain.Modality(rule.Label)
		}
	}
	return domain.ModalityAssertive
}

func (a *Analyzer) emotion(doc *textnorm.Doc) string {
	best, bestScore := domain.EmotionNeutral, 0.0
	for _, set := range a.lex.Emotions {
		score := 0.0
		for _, w := range set.Words {
			score += w.Weight * float64(doc.Count(w.Word))
		}
		if score > bestScore {
			best, bestScore = set.Emotion, score
		}
	}
	return best
}

func (a *Analyzer) semantic(doc *textnorm.Doc) domain.SemanticFeatures {
	return domain.SemanticFeatures{
		Topics:    rankTopics(a.kb.Topics(), doc),
		Concepts:  a.concepts(doc),
		Relations: a.relations(doc),
		Ambiguity: a.ambiguity(doc),
	}
}

func keywordHits(doc *textnorm.Doc, kw string) int {
	if strings.Contains(kw, " ") {
		return doc.Count(kw)
	}
	prefix := utf8.RuneCountInString(kw) >= PrefixKeywordRunes
	n := 0
	for _, tok := range doc.Tokens {
		if tok == kw || (prefix && strings.HasPrefix(tok, kw)) {
			n++
		}
	}
	return n
}

// rankTopics scores every category of the taxonomy against doc. Ties keep
// taxonomy order.
func rankTopics(categories []knowledge.TopicCategory, doc *textnorm.Doc) []domain.Topic {
	var topics []domain.Topic
	for _, cat := range categories {
		hits := 0
		for _, kw := range cat.Keywords {
			hits += keywordHits(doc, kw)
		}
		if hits == 0 {
			continue
		}
		t := domain.Topic{
			Name:      cat.Name,
			Relevance: hits,
			Density:   clamp01(float64(hits) / float64(len(cat.Keywords))),
		}
		for _, sub := range cat.Subtopics {
			for _, kw := range sub.Keywords {
				if keywordHits(doc, kw) > 0 {
					t.Subtopics = append(t.Subtopics, sub.Name)
					break
				}
			}
		}
		topics = append(topics, t)
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Relevance != topics[j].Relevance {
			return topics[i].Relevance > topics[j].Relevance
		}
		return topics[i].Density > topics[j].Density
	})
	return topics
}

func (a *Analyzer) concepts(doc *textnorm.Doc) []domain.Concept {
	var out []domain.Concept
	index := make(map[string]int)

	add := func(term, context string, src domain.ConceptSource) {
		if i, ok := index[term]; ok {
			if len(context) > len(out[i].Context) {
				out[i].Context = context
			}
			return
		}
		index[term] = len(out)
		out = append(out, domain.Concept{Term: term, Context: context, Source: src})
	}

	for _, s := range doc.Sentences {
		tokens := textnorm.Tokenize(s.Text)
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) >= MinConceptRunes && a.hasAbstractSuffix(tok) {
				add(tok, s.Text, domain.ConceptSourceSuffix)
			}
		}
		for _, ind := range a.lex.DefinitionIndicators {
			if term, ok := tokenAfter(tokens, strings.Fields(ind)); ok {
				add(term, s.Text, domain.ConceptSourceDefinition)
			}
		}
	}
	if len(out) > MaxConcepts {
		out = out[:MaxConcepts]
	}
	return out
}

func (a *Analyzer) hasAbstractSuffix(tok string) bool {
	for _, suf := range a.lex.AbstractSuffixes {
		if strings.HasSuffix(tok, suf) {
			return true
		}
	}
	return false
}

// tokenAfter returns the first content token following the phrase.
func tokenAfter(tokens, phrase []string) (string, bool) {
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		for _, tok := range tokens[i+len(phrase):] {
			if !textnorm.IsStopword(tok) {
				return tok, true
			}
		}
		return "", false
	}
	return "", false
}

// relations keeps at most one relation per sentence: the one whose marker
// appears first. Ties go to the earlier relation set in the lexicon.
func (a *Analyzer) relations(doc *textnorm.Doc) []domain.Relation {
	var out []domain.Relation
	for _, s := range doc.Sentences {
		padded := textnorm.Padded(s.Text)
		best, marker := -1, ""
		var typ domain.RelationType
		for _, set := range a.lex.Relations {
			for _, m := range set.Markers {
				i := strings.Index(padded, " "+m+" ")
				if i >= 0 && (best < 0 || i < best) {
					best, marker, typ = i, m, set.Type
				}
			}
		}
		if best < 0 {
			continue
		}
		out = append(out, domain.Relation{
			Type:   typ,
			Marker: marker,
			Left:   strings.TrimSpace(padded[:best]),
			Right:  strings.TrimSpace(padded[best+len(marker)+1:]),
		})
	}
	return out
}

func (a *Analyzer) ambiguity(doc *textnorm.Doc) float64 {
	v := ambiguityHedge*float64(doc.CountAll(a.lex.Hedges)) +
		ambiguityVague*float64(doc.CountAll(a.lex.VaguePronouns)) +
		ambiguityModal*float64(doc.CountAll(a.lex.ModalVerbs))
	return clamp01(v)
}

func (a *Analyzer) logical(doc *textnorm.Doc) domain.LogicalFeatures {
	var lf domain.LogicalFeatures
	lf.Connectives = a.connectives(doc)

	anyIndicator := doc.HasAny(a.lex.ConclusionIndicators)
	for _, s := range doc.Sentences {
		if phrase, ok := textnorm.FirstPhrase(s.Text, a.lex.ConclusionIndicators); ok {
			a.splitConclusion(&lf, s, phrase)
			continue
		}
		if s.Question {
			continue
		}
		if p, ok := a.premise(s.Text, s.Index); ok {
			lf.Premises = append(lf.Premises, p)
			continue
		}
		words := len(textnorm.Tokenize(s.Text))
		if a.hasUniversal(s.Text) || textnorm.HasAnyPhrase(s.Text, a.lex.Copulas) || (anyIndicator && words >= MinGeneralWords) {
			lf.Premises = append(lf.Premises, a.statement(s.Text, string(domain.PremiseGeneral), generalPremiseStrength, generalPremiseExplicitness, s.Index))
		}
	}

	if len(lf.Conclusions) == 0 && !anyIndicator {
		a.implicitConclusion(&lf, doc)
	}
	lf.StructureType = a.structureType(lf)
	return lf
}

func (a *Analyzer) splitConclusion(lf *domain.LogicalFeatures, s textnorm.Sentence, phrase string) {
	padded := textnorm.Padded(s.Text)
	i := strings.Index(padded, " "+phrase+" ")
	prefix := strings.TrimSpace(padded[:i])
	suffix := strings.TrimSpace(padded[i+len(phrase)+1:])

	if suffix == "" {
		if prefix != "" {
			lf.Conclusions = append(lf.Conclusions, a.statement(prefix, string(domain.ConclusionExplicit), explicitConclusionStrength, explicitConclusionExplicitness, s.Index))
		}
		return
	}
	if n := len(strings.Fields(prefix)); n >= MinPremisePrefixWords || (n == 1 && commaClause(s.Text, prefix)) {
		if p, ok := a.premise(prefix, s.Index); ok {
			lf.Premises = append(lf.Premises, p)
		} else {
			lf.Premises = append(lf.Premises, a.statement(prefix, string(domain.PremiseGeneral), generalPremiseStrength, generalPremiseExplicitness, s.Index))
		}
	}
	lf.Conclusions = append(lf.Conclusions, a.statement(suffix, string(domain.ConclusionExplicit), explicitConclusionStrength, explicitConclusionExplicitness, s.Index))
}

// commaClause reports whether text opens with word followed by a comma, as in
// "llueve, luego ...".
func commaClause(text, word string) bool {
	rest := strings.TrimLeftFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if !strings.HasPrefix(rest, word) {
		return false
	}
	return strings.HasPrefix(strings.TrimLeftFunc(rest[len(word):], unicode.IsSpace), ",")
}

// implicitConclusion takes the sentence before a trailing question as the
// conclusion when no indicator phrase appears anywhere.
func (a *Analyzer) implicitConclusion(lf *domain.LogicalFeatures, doc *textnorm.Doc) {
	n := len(doc.Sentences)
	if n < 2 || !doc.Sentences[n-1].Question || doc.Sentences[n-2].Question {
		return
	}
	prev := doc.Sentences[n-2]
	kept := lf.Premises[:0]
	for _, p := range lf.Premises {
		if p.Position != prev.Index {
			kept = append(kept, p)
		}
	}
	lf.Premises = kept
	lf.Conclusions = append(lf.Conclusions, a.statement(prev.Text, string(domain.ConclusionImplicit), implicitConclusionStrength, implicitConclusionExplicitness, prev.Index))
}

func (a *Analyzer) premise(text string, pos int) (domain.Statement, bool) {
	for _, ind := range a.lex.PremiseIndicators {
		if textnorm.HasAnyPhrase(text, ind.Phrases) {
			return a.statement(text, string(ind.Kind), ind.Strength, ind.Explicitness, pos), true
		}
	}
	return domain.Statement{}, false
}

func (a *Analyzer) statement(text, kind string, strength, explicitness float64, pos int) domain.Statement {
	return domain.Statement{
		Content:      text,
		Kind:         kind,
		Strength:     strength,
		Position:     pos,
		Explicitness: explicitness,
		Conditional:  textnorm.HasPhrase(text, "si") || textnorm.HasPhrase(text, "entonces"),
		Universal:    a.hasUniversal(text),
	}
}

func (a *Analyzer) hasUniversal(text string) bool {
	return textnorm.HasAnyPhrase(text, a.lex.UniversalQuantifiers)
}

func (a *Analyzer) connectives(doc *textnorm.Doc) []domain.Connective {
	var out []domain.Connective
	for _, set := range a.lex.Connectives {
		for _, w := range set.Words {
			if doc.Has(w) {
				out = append(out, domain.Connective{Word: w, Category: set.Category})
			}
		}
	}
	return out
}

func (a *Analyzer) structureType(lf domain.LogicalFeatures) domain.StructureType {
	hasP, hasC := len(lf.Premises) > 0, len(lf.Conclusions) > 0
	causal := lf.HasConnective(domain.ConnectiveCausal)

	universal := 0
	for _, p := range lf.Premises {
		if p.Universal {
			universal++
		}
	}
	categories := make(map[domain.ConnectiveCategory]struct{})
	for _, c := range lf.Connectives {
		categories[c.Category] = struct{}{}
	}

	switch {
	case hasP && hasC:
		switch {
		case len(categories) >= 4:
			return domain.StructureMixed
		case lf.HasConnective(domain.ConnectiveConditional):
			return domain.StructureDeductiveConditional
		case universal >= 2:
			return domain.StructureInductiveGeneralization
		}
		return domain.StructureArgumentative
	case hasP:
		switch {
		case causal:
			return domain.StructureExplanatory
		case universal >= 2:
			return domain.StructureInductiveGeneralization
		}
		return domain.StructureAssertive
	case hasC:
		return domain.StructureAssertive
	case causal:
		return domain.StructureExplanatory
	}
	return domain.StructureDeclarativeSimple
}

func (a *Analyzer) contextual(doc *textnorm.Doc, sem domain.SemanticFeatures, qctx domain.QueryContext) domain.ContextualFeatures {
	return domain.ContextualFeatures{
		Domain:           a.domain(sem, qctx),
		Abstraction:      a.abstraction(doc, sem),
		Urgency:          a.urgency(doc),
		ExpectedResponse: a.expectedResponse(doc, qctx),
	}
}

func (a *Analyzer) domain(sem domain.SemanticFeatures, qctx domain.QueryContext) string {
	if len(sem.Topics) > 0 {
		return sem.Topics[0].Name
	}
	if hint := strings.TrimSpace(textnorm.FoldString(qctx.DomainHint)); hint != "" {
		return hint
	}
	if len(qctx.RecentHistory) > 0 {
		hist := textnorm.NewDoc(strings.Join(qctx.RecentHistory, "\n"))
		if topics := rankTopics(a.kb.Topics(), hist); len(topics) > 0 {
			return topics[0].Name
		}
	}
	return domain.DomainGeneral
}

func (a *Analyzer) abstraction(doc *textnorm.Doc, sem domain.SemanticFeatures) float64 {
	v := abstractionVocabulary*float64(doc.CountAll(a.lex.AbstractVocabulary)) +
		abstractionPhrasing*float64(doc.CountAll(a.lex.AbstractPhrasing)) +
		abstractionConcept*float64(len(sem.Concepts))
	return clamp01(v)
}

func (a *Analyzer) urgency(doc *textnorm.Doc) domain.Urgency {
	switch {
	case doc.HasAny(a.lex.UrgencyLow):
		return domain.UrgencyLow
	case doc.HasAny(a.lex.UrgencyHigh):
		return domain.UrgencyHigh
	case doc.HasAny(a.lex.UrgencyMedium):
		return domain.UrgencyMedium
	}
	return domain.UrgencyNormal
}

func (a *Analyzer) expectedResponse(doc *textnorm.Doc, qctx domain.QueryContext) string {
	for _, rule := range a.lex.ResponseCategories {
		if doc.HasAny(rule.Phrases) {
			return rule.Label
		}
	}
	if n := len(qctx.RecentHistory); n > 0 && strings.HasSuffix(strings.TrimSpace(qctx.RecentHistory[n-1]), "?") {
		return domain.ResponseFollowUp
	}
	return domain.ResponseGeneral
}

func (a *Analyzer) complexity(res domain.AnalysisResult) float64 {
	ling, sem, lg := res.Linguistic, res.Semantic, res.Logical
	v := complexityLength * minFloat(1, float64(ling.WordCount)/WordsForFullLength)
	if ling.Density > DenseSentenceWords {
		v += complexityDense
	}
	v += complexityTopic * float64(len(sem.Topics))
	v += complexityConcept * float64(len(sem.Concepts))
	v += complexityAmbiguity * sem.Ambiguity
	v += complexityPremise * float64(len(lg.Premises))
	v += complexityConclusion * float64(len(lg.Conclusions))
	v += complexityConnective * float64(len(lg.Connectives))
	return clamp01(v)
}

func (a *Analyzer) depth(res domain.AnalysisResult) float64 {
	relevance := 0
	for _, t := range res.Semantic.Topics {
		relevance += t.Relevance
	}
	if relevance > depthRelevanceCap {
		relevance = depthRelevanceCap
	}
	v := depthRelevance*float64(relevance) + structureDepthBonus[res.Logical.StructureType] + depthAbstraction*res.Contextual.Abstraction
	switch d := res.Contextual.Domain; {
	case coreDomains[d]:
		v += depthCoreDomainBonus
	case d != domain.DomainGeneral:
		v += depthOtherDomainBonus
	}
	return clamp01(v)
}
