package reasoning

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
	"go.uber.org/zap"
)

var (
	ErrRulePanic   = errors.New("detection rule panicked")
	ErrInvalidSpan = errors.New("detection rule returned an invalid span")
)

// Detector runs the fallacy and bias rule table over a query.
type Detector struct {
	kb     *knowledge.KnowledgeBase
	tuning Tuning
	logger *zap.Logger
}

func NewDetector(kb *knowledge.KnowledgeBase, tuning Tuning, logger *zap.Logger) *Detector {
	return &Detector{kb: kb, tuning: tuning, logger: logger}
}

// Detect returns detections sorted by severity, highest first, with rule
// order kept among equal severities. Rules that fail are skipped and their
// ids returned.
func (d *Detector) Detect(doc *textnorm.Doc) ([]domain.FallacyDetection, []string) {
	detections := []domain.FallacyDetection{}
	var skipped []string

	for _, def := range d.kb.Fallacies() {
		info, err := runRule(def, doc)
		if err != nil {
			d.logger.Warn("detection rule skipped",
				zap.String("rule_id", def.ID),
				zap.Error(err))
			skipped = append(skipped, def.ID)
			continue
		}
		if info == nil {
			continue
		}
		detections = append(detections, d.detection(def, doc, info))
	}

	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Severity > detections[j].Severity
	})
	return detections, skipped
}

func runRule(def knowledge.FallacyDefinition, doc *textnorm.Doc) (info *domain.MatchInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			info, err = nil, fmt.Errorf("%w: %v", ErrRulePanic, r)
		}
	}()
	info, err = def.Match(doc)
	if err != nil || info == nil {
		return nil, err
	}
	if info.Start < 0 || info.End > len(doc.Text()) || info.Start > info.End {
		return nil, fmt.Errorf("%w: [%d,%d)", ErrInvalidSpan, info.Start, info.End)
	}
	return info, nil
}

func (d *Detector) detection(def knowledge.FallacyDefinition, doc *textnorm.Doc, info *domain.MatchInfo) domain.FallacyDetection {
	excerpt := doc.Folded.Window(info.Start, info.End, d.tuning.ExcerptRadius)
	det := domain.FallacyDetection{
		ID:         def.ID,
		Name:       def.Name,
		Severity:   clamp01(def.BaseSeverity),
		Confidence: clamp01(def.BaseConfidence),
		Excerpt:    excerpt,
		Correction: def.Correction,
	}

	switch def.Category {
	case domain.CategoryFormal:
		det.Category = domain.DetectionFormal
	case domain.CategoryCognitive:
		det.Category = domain.DetectionBias
	default:
		det.Category = domain.DetectionInformal
		det.Severity, det.Confidence = d.adjust(def, excerpt, info.Count)
	}
	return det
}

func (d *Detector) adjust(def knowledge.FallacyDefinition, excerpt string, count int) (severity, confidence float64) {
	lex := d.kb.Lexicon()
	folded := textnorm.FoldString(excerpt)

	severity = def.BaseSeverity +
		boolWeight(textnorm.HasAnyPhrase(folded, lex.Negations), d.tuning.NegationBonus) +
		boolWeight(textnorm.HasAnyPhrase(folded, lex.UniversalQuantifiers), d.tuning.AbsoluteBonus) -
		boolWeight(utf8.RuneCountInString(excerpt) > d.tuning.LongExcerptRunes, d.tuning.LongExcerptPenalty)
	confidence = def.BaseConfidence + boolWeight(count > 1, d.tuning.RepeatMatchBonus)

	severity = clamp01(clamp(severity, d.tuning.MinSeverity, 1))
	confidence = clamp01(clamp(confidence, d.tuning.MinDetectionConf, d.tuning.MaxDetectionConf))
	return severity, confidence
}
