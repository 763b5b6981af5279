// Package reasoning implements the argument-analysis pipeline: feature
// extraction, fallacy and bias detection, structure scoring, inference
// generation, quality scoring, approach selection, report composition and
// the observational learning tracker.
package reasoning

import (
	"strings"
	"time"
	"unicode"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/textnorm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MinLetters        = 3
	CaseExcerptRunes  = 120
	DefaultSimilarMax = 5
)

type Engine struct {
	kb     *knowledge.KnowledgeBase
	tuning Tuning
	logger *zap.Logger
	now    func() time.Time

	analyzer  *Analyzer
	detector  *Detector
	structure *StructureEvaluator
	inference *InferenceGenerator
	quality   *QualityEvaluator
	approach  *ApproachSelector
	composer  *Composer
	tracker   *Tracker
}

type Option func(*Engine)

func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithClock overrides the clock used for case timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wires the pipeline over kb. A nil rnd uses a randomly seeded
// source.
func NewEngine(kb *knowledge.KnowledgeBase, rnd domain.RandomSource, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rnd == nil {
		rnd = NewRandomSource()
	}
	e := &Engine{kb: kb, tuning: DefaultTuning(), logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	e.analyzer = NewAnalyzer(kb, e.tuning)
	e.detector = NewDetector(kb, e.tuning, logger)
	e.structure = NewStructureEvaluator(kb, e.tuning)
	e.inference = NewInferenceGenerator(kb, e.tuning)
	e.quality = NewQualityEvaluator(e.tuning)
	e.approach = NewApproachSelector(kb, e.tuning)
	e.composer = NewComposer(kb, rnd)
	e.tracker = NewTracker(e.tuning.HistoryCap, e.tuning.MaxProfiles)
	e.tracker.now = e.now
	return e
}

func (e *Engine) KnowledgeBase() *knowledge.KnowledgeBase {
	return e.kb
}

// ProcessQuery analyzes text and records the case. It never fails: invalid
// input yields a report with InputError set.
func (e *Engine) ProcessQuery(text string, qctx *domain.QueryContext) *domain.AnalysisReport {
	report, _ := e.Process(text, qctx)
	return report
}

// Process is ProcessQuery that also returns the recorded case, or nil when
// nothing was recorded.
func (e *Engine) Process(text string, qctx *domain.QueryContext) (*domain.AnalysisReport, *domain.CaseRecord) {
	var qc domain.QueryContext
	if qctx != nil {
		qc = *qctx
	}

	if kind := classifyInput(text); kind != "" {
		report := e.invalidReport(text, kind)
		e.composer.Compose(report)
		return report, nil
	}

	doc := textnorm.NewDoc(text)
	report := e.analyze(doc, text, qc)

	rec := e.caseRecord(report, qc.UserID)
	if err := e.tracker.Record(rec); err != nil {
		e.logger.Warn("tracker write skipped",
			zap.String("user_id", qc.UserID),
			zap.Error(err))
		return report, nil
	}
	return report, &rec
}

func (e *Engine) analyze(doc *textnorm.Doc, text string, qc domain.QueryContext) *domain.AnalysisReport {
	analysis := e.analyzer.Analyze(doc, qc)
	detections, skipped := e.detector.Detect(doc)
	structure := e.structure.Evaluate(doc, analysis)
	inferences := e.inference.Generate(analysis)

	report := &domain.AnalysisReport{
		Query:        text,
		IsComplex:    analysis.NeedsBreakdown,
		Analysis:     analysis,
		Detections:   detections,
		Structure:    structure,
		Inferences:   inferences,
		Quality:      e.quality.Evaluate(detections, structure, inferences),
		Approach:     e.approach.Select(analysis),
		SkippedRules: skipped,
	}
	e.composer.Compose(report)
	return report
}

// Diagnose returns a lightweight subset of the report without recording
// anything.
func (e *Engine) Diagnose(text string) domain.Diagnosis {
	if kind := classifyInput(text); kind != "" {
		return domain.Diagnosis{
			InputError:    kind,
			SentenceType:  domain.SentenceDeclarative,
			StructureType: domain.StructureDeclarativeSimple,
			Domain:        domain.DomainGeneral,
			FallacyIDs:    []string{},
		}
	}

	doc := textnorm.NewDoc(text)
	analysis := e.analyzer.Analyze(doc, domain.QueryContext{})
	detections, _ := e.detector.Detect(doc)

	ids := make([]string, 0, len(detections))
	for _, d := range detections {
		ids = append(ids, d.ID)
	}
	return domain.Diagnosis{
		IsComplex:       analysis.NeedsBreakdown,
		WordCount:       analysis.Linguistic.WordCount,
		SentenceType:    analysis.Linguistic.SentenceType,
		StructureType:   analysis.Logical.StructureType,
		Complexity:      analysis.Complexity,
		Domain:          analysis.Contextual.Domain,
		FallacyIDs:      ids,
		PremiseCount:    len(analysis.Logical.Premises),
		ConclusionCount: len(analysis.Logical.Conclusions),
	}
}

func classifyInput(text string) domain.InputErrorKind {
	if text == "" {
		return domain.InputEmpty
	}
	if strings.TrimSpace(text) == "" {
		return domain.InputWhitespace
	}
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if letters >= MinLetters {
				return ""
			}
		}
	}
	return domain.InputTooShort
}

func (e *Engine) invalidReport(text string, kind domain.InputErrorKind) *domain.AnalysisReport {
	return &domain.AnalysisReport{
		Query:      text,
		InputError: kind,
		Analysis: domain.AnalysisResult{
			Linguistic: domain.LinguisticFeatures{
				SentenceType:   domain.SentenceDeclarative,
				Modality:       domain.ModalityAssertive,
				ImpliedEmotion: domain.EmotionNeutral,
			},
			Logical: domain.LogicalFeatures{StructureType: domain.StructureDeclarativeSimple},
			Contextual: domain.ContextualFeatures{
				Domain:           domain.DomainGeneral,
				Urgency:          domain.UrgencyNormal,
				ExpectedResponse: domain.ResponseGeneral,
			},
		},
		Detections: []domain.FallacyDetection{},
		Structure:  domain.StructureEvaluation{Type: domain.ArgumentNone},
		Inferences: []domain.Inference{},
		Quality: domain.QualityAssessment{
			Tier:            domain.ComputeQualityTier(0),
			Strengths:       []string{},
			Weaknesses:      []string{},
			Recommendations: []string{"Escribe una consulta con al menos una oración completa."},
		},
		Approach: domain.ApproachRecommendation{Style: domain.StyleAnalytical, Rationale: []string{}},
	}
}

// TopicVector returns topic densities in knowledge base order.
func (e *Engine) TopicVector(topics []domain.Topic) []float32 {
	cats := e.kb.Topics()
	vec := make([]float32, len(cats))
	for i, cat := range cats {
		for _, t := range topics {
			if t.Name == cat.Name {
				vec[i] = float32(t.Density)
				break
			}
		}
	}
	return vec
}

func (e *Engine) caseRecord(r *domain.AnalysisReport, userID string) domain.CaseRecord {
	ids := make([]string, 0, len(r.Detections))
	for _, d := range r.Detections {
		ids = append(ids, d.ID)
	}
	topics := make([]string, 0, len(r.Analysis.Semantic.Topics))
	for _, t := range r.Analysis.Semantic.Topics {
		topics = append(topics, t.Name)
	}
	return domain.CaseRecord{
		ID:             uuid.New(),
		UserID:         userID,
		QueryExcerpt:   textnorm.Truncate(strings.TrimSpace(r.Query), CaseExcerptRunes),
		Summary:        r.Summary,
		FallacyIDs:     ids,
		QualityScore:   r.Quality.Score,
		Complexity:     r.Analysis.Complexity,
		StructureType:  r.Analysis.Logical.StructureType,
		ComplexityTier: domain.ComputeComplexityTier(r.Analysis.Complexity),
		Topics:         topics,
		TopicVector:    e.TopicVector(r.Analysis.Semantic.Topics),
		Timestamp:      e.now().UTC(),
	}
}

func (e *Engine) Statistics() domain.Statistics {
	return e.tracker.Statistics()
}

func (e *Engine) ExportLearningData() domain.LearningSnapshot {
	return e.tracker.Export()
}

// ResetLearning clears the tracker. The knowledge base is untouched.
func (e *Engine) ResetLearning() {
	e.tracker.Reset()
}

func (e *Engine) RestoreLearning(snap domain.LearningSnapshot) error {
	return e.tracker.Restore(snap)
}

func (e *Engine) History() []domain.CaseRecord {
	return e.tracker.History()
}

func (e *Engine) Profile(userID string) (*domain.UserProfile, bool) {
	return e.tracker.Profile(userID)
}

// SimilarCases returns recorded cases whose topic mix is closest to text.
// Looking cases up only bumps their Referenced counter.
func (e *Engine) SimilarCases(text string, limit int) []domain.CaseWithScore {
	vec := e.QueryVector(text)
	if vec == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSimilarMax
	}
	return e.tracker.SimilarCases(vec, limit)
}

// QueryVector is the topic vector text would be recorded with, or nil for
// input that fails validation.
func (e *Engine) QueryVector(text string) []float32 {
	if classifyInput(text) != "" {
		return nil
	}
	doc := textnorm.NewDoc(text)
	return e.TopicVector(rankTopics(e.kb.Topics(), doc))
}

// Close stops the tracker from accepting writes. Analysis keeps working.
func (e *Engine) Close() {
	e.tracker.Close()
}
