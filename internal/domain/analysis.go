package domain

// QueryContext is the optional caller-supplied context of a query.
type QueryContext struct {
	UserID        string   `json:"user_id,omitempty"`
	DomainHint    string   `json:"domain_hint,omitempty"`
	RecentHistory []string `json:"recent_history,omitempty"`
}

type SentenceType string

const (
	SentenceExplanatoryQuestion   SentenceType = "explanatory_question"
	SentenceNormativeQuestion     SentenceType = "normative_question"
	SentenceInformativeQuestion   SentenceType = "informative_question"
	SentenceConditional           SentenceType = "conditional"
	SentenceExplanatory           SentenceType = "explanatory"
	SentenceSubjectiveDeclarative SentenceType = "subjective_declarative"
	SentenceDeclarative           SentenceType = "declarative"
)

// IsQuestion reports whether the sentence type is one of the question forms.
func (t SentenceType) IsQuestion() bool {
	switch t {
	case SentenceExplanatoryQuestion, SentenceNormativeQuestion, SentenceInformativeQuestion:
		return true
	}
	return false
}

type Modality string

const (
	ModalityDeontic   Modality = "deontic"
	ModalityAlethic   Modality = "alethic"
	ModalityEpistemic Modality = "epistemic"
	ModalityVolitive  Modality = "volitive"
	ModalityAssertive Modality = "assertive"
)

const EmotionNeutral = "neutral"

type LinguisticFeatures struct {
	WordCount      int          `json:"word_count"`
	SentenceCount  int          `json:"sentence_count"`
	Density        float64      `json:"density"`
	SentenceType   SentenceType `json:"sentence_type"`
	Modality       Modality     `json:"modality"`
	ImpliedEmotion string       `json:"implied_emotion"`
}

// Topic is a ranked category match. Relevance is the raw hit count.
type Topic struct {
	Name      string   `json:"name"`
	Relevance int      `json:"relevance"`
	Density   float64  `json:"density"`
	Subtopics []string `json:"subtopics,omitempty"`
}

type ConceptSource string

const (
	ConceptSourceSuffix     ConceptSource = "suffix"
	ConceptSourceDefinition ConceptSource = "definition"
)

type Concept struct {
	Term    string        `json:"term"`
	Context string        `json:"context"`
	Source  ConceptSource `json:"source"`
}

type RelationType string

const (
	RelationCausal       RelationType = "causal"
	RelationConsequence  RelationType = "consequence"
	RelationContrast     RelationType = "contrast"
	RelationSimilarity   RelationType = "similarity"
	RelationDefinitional RelationType = "definitional"
)

// Relation links the text on either side of a connective phrase within one sentence.
type Relation struct {
	Type   RelationType `json:"type"`
	Marker string       `json:"marker"`
	Left   string       `json:"left"`
	Right  string       `json:"right"`
}

type SemanticFeatures struct {
	Topics    []Topic    `json:"topics"`
	Concepts  []Concept  `json:"concepts"`
	Relations []Relation `json:"relations"`
	Ambiguity float64    `json:"ambiguity"`
}

// HasRelation reports whether a relation of the given type was detected.
func (s SemanticFeatures) HasRelation(t RelationType) bool {
	for _, r := range s.Relations {
		if r.Type == t {
			return true
		}
	}
	return false
}

type PremiseKind string

const (
	PremiseReason     PremiseKind = "reason"
	PremiseEvidence   PremiseKind = "evidence"
	PremiseAssumption PremiseKind = "assumption"
	PremiseGeneral    PremiseKind = "general"
)

type ConclusionKind string

const (
	ConclusionExplicit ConclusionKind = "explicit"
	ConclusionImplicit ConclusionKind = "implicit"
)

// Statement is a premise or conclusion extracted from one sentence.
// Position is the zero-based sentence index.
type Statement struct {
	Content      string  `json:"content"`
	Kind         string  `json:"kind"`
	Strength     float64 `json:"strength"`
	Position     int     `json:"position"`
	Explicitness float64 `json:"explicitness"`
	Conditional  bool    `json:"conditional,omitempty"`
	Universal    bool    `json:"universal,omitempty"`
}

type ConnectiveCategory string

const (
	ConnectiveConditional ConnectiveCategory = "conditional"
	ConnectiveCausal      ConnectiveCategory = "causal"
	ConnectiveConclusive  ConnectiveCategory = "conclusive"
	ConnectiveAdversative ConnectiveCategory = "adversative"
	ConnectiveAdditive    ConnectiveCategory = "additive"
	ConnectiveComparative ConnectiveCategory = "comparative"
	ConnectiveDisjunctive ConnectiveCategory = "disjunctive"
	ConnectiveTemporal    ConnectiveCategory = "temporal"
)

type Connective struct {
	Word     string             `json:"word"`
	Category ConnectiveCategory `json:"category"`
}

type StructureType string

const (
	StructureDeclarativeSimple       StructureType = "declarative_simple"
	StructureExplanatory             StructureType = "explanatory"
	StructureAssertive               StructureType = "assertive"
	StructureDeductiveConditional    StructureType = "deductive_conditional"
	StructureInductiveGeneralization StructureType = "inductive_generalization"
	StructureArgumentative           StructureType = "argumentative"
	StructureMixed                   StructureType = "mixed"
)

type LogicalFeatures struct {
	Premises      []Statement   `json:"premises"`
	Conclusions   []Statement   `json:"conclusions"`
	Connectives   []Connective  `json:"connectives"`
	StructureType StructureType `json:"structure_type"`
}

// HasConnective reports whether any connective of the category was found.
func (l LogicalFeatures) HasConnective(c ConnectiveCategory) bool {
	for _, conn := range l.Connectives {
		if conn.Category == c {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
)

const (
	DomainGeneral    = "general"
	ResponseGeneral  = "general"
	ResponseFollowUp = "follow_up"
)

type ContextualFeatures struct {
	Domain           string  `json:"domain"`
	Abstraction      float64 `json:"abstraction"`
	Urgency          Urgency `json:"urgency"`
	ExpectedResponse string  `json:"expected_response"`
}

// AnalysisResult is the Analyzer's decomposition of one query.
type AnalysisResult struct {
	Linguistic     LinguisticFeatures `json:"linguistic"`
	Semantic       SemanticFeatures   `json:"semantic"`
	Logical        LogicalFeatures    `json:"logical"`
	Contextual     ContextualFeatures `json:"contextual"`
	Complexity     float64            `json:"complexity"`
	Depth          float64            `json:"depth"`
	NeedsBreakdown bool               `json:"needs_breakdown"`
}
