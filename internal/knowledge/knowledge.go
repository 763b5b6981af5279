// Package knowledge holds the static registry the reasoning engine reads:
// topic taxonomy, lexicons, fallacy and bias rules, logic types and
// thinking systems. A KnowledgeBase is immutable once built.
package knowledge

import (
	"errors"
	"fmt"

	"github.com/Harshitk-cp/logos/internal/domain"
)

var (
	ErrDuplicateID     = errors.New("duplicate definition id")
	ErrInvalidCategory = errors.New("invalid fallacy category")
	ErrMissingMatcher  = errors.New("definition has no matcher")
)

// LogicType describes one inference strategy.
type LogicType struct {
	Strategy    domain.Strategy `json:"strategy"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Reliability string          `json:"reliability"`
}

// ThinkingSystem describes one thinking style and the predicates that
// favour it.
type ThinkingSystem struct {
	Style          domain.ThinkingStyle `json:"style"`
	Name           string               `json:"name"`
	Predicates     []PredicateID        `json:"predicates"`
	Strengths      []string             `json:"strengths"`
	Weaknesses     []string             `json:"weaknesses"`
	Recommendation string               `json:"recommendation"`
}

type KnowledgeBase struct {
	topics    []TopicCategory
	lexicon   Lexicon
	fallacies []FallacyDefinition
	logic     []LogicType
	systems   []ThinkingSystem
	questions []string
	byID      map[string]int
}

type Option func(*KnowledgeBase)

// WithFallacies replaces the built-in rule table.
func WithFallacies(defs ...FallacyDefinition) Option {
	return func(kb *KnowledgeBase) {
		kb.fallacies = append([]FallacyDefinition(nil), defs...)
	}
}

// WithExtraFallacies appends rules after the built-in table.
func WithExtraFallacies(defs ...FallacyDefinition) Option {
	return func(kb *KnowledgeBase) {
		kb.fallacies = append(kb.fallacies, defs...)
	}
}

// WithTopics replaces the topic taxonomy.
func WithTopics(topics ...TopicCategory) Option {
	return func(kb *KnowledgeBase) {
		kb.topics = append([]TopicCategory(nil), topics...)
	}
}

// New builds a knowledge base from the built-in tables and options.
func New(opts ...Option) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		topics:    defaultTopics(),
		lexicon:   defaultLexicon(),
		fallacies: defaultFallacies(),
		logic:     defaultLogicTypes(),
		systems:   defaultThinkingSystems(),
		questions: defaultReflectiveQuestions(),
	}
	for _, opt := range opts {
		opt(kb)
	}

	kb.byID = make(map[string]int, len(kb.fallacies))
	for i, def := range kb.fallacies {
		if _, ok := kb.byID[def.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, def.ID)
		}
		if !domain.ValidFallacyCategory(string(def.Category)) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrInvalidCategory, def.Category, def.ID)
		}
		if def.Match == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingMatcher, def.ID)
		}
		kb.byID[def.ID] = i
	}
	return kb, nil
}

// Default returns the built-in knowledge base.
func Default() *KnowledgeBase {
	kb, err := New()
	if err != nil {
		panic(fmt.Sprintf("knowledge: built-in tables invalid: %v", err))
	}
	return kb
}

// Fallacies returns the rule table in declaration order. Callers must not
// modify the returned slice.
func (kb *KnowledgeBase) Fallacies() []FallacyDefinition {
	return kb.fallacies
}

func (kb *KnowledgeBase) Fallacy(id string) (FallacyDefinition, bool) {
	i, ok := kb.byID[id]
	if !ok {
		return FallacyDefinition{}, false
	}
	return kb.fallacies[i], true
}

func (kb *KnowledgeBase) Topics() []TopicCategory {
	return kb.topics
}

func (kb *KnowledgeBase) Lexicon() *Lexicon {
	return &kb.lexicon
}

func (kb *KnowledgeBase) LogicTypes() []LogicType {
	return kb.logic
}

func (kb *KnowledgeBase) LogicType(s domain.Strategy) (LogicType, bool) {
	for _, lt := range kb.logic {
		if lt.Strategy == s {
			return lt, true
		}
	}
	return LogicType{}, false
}

func (kb *KnowledgeBase) ThinkingSystems() []ThinkingSystem {
	return kb.systems
}

func (kb *KnowledgeBase) ThinkingSystem(style domain.ThinkingStyle) (ThinkingSystem, bool) {
	for _, ts := range kb.systems {
		if ts.Style == style {
			return ts, true
		}
	}
	return ThinkingSystem{}, false
}

func (kb *KnowledgeBase) ReflectiveQuestions() []string {
	return kb.questions
}

func defaultLogicTypes() []LogicType {
	return []LogicType{
		{
			Strategy:    domain.StrategyDeductive,
			Name:        "Razonamiento deductivo",
			Description: "Si las premisas son verdaderas, la conclusión se sigue necesariamente.",
			Reliability: "alta si la forma es válida",
		},
		{
			Strategy:    domain.StrategyInductive,
			Name:        "Razonamiento inductivo",
			Description: "Generaliza a partir de casos particulares.",
			Reliability: "probable, depende de la muestra",
		},
		{
			Strategy:    domain.StrategyAbductive,
			Name:        "Razonamiento abductivo",
			Description: "Busca la mejor explicación disponible para lo observado.",
			Reliability: "tentativa",
		},
		{
			Strategy:    domain.StrategyAnalogical,
			Name:        "Razonamiento analógico",
			Description: "Transfiere propiedades entre casos semejantes.",
			Reliability: "depende de la semejanza relevante",
		},
		{
			Strategy:    domain.StrategyContextual,
			Name:        "Razonamiento contextual",
			Description: "Interpreta la consulta según su dominio, urgencia y nivel de abstracción.",
			Reliability: "orientativa",
		},
	}
}

func defaultReflectiveQuestions() []string {
	return []string{
		"¿Qué evidencia te haría cambiar de opinión?",
		"¿Qué supuesto no declarado sostiene el argumento?",
		"¿Cómo lo explicaría alguien que piensa lo contrario?",
		"¿La conclusión se sigue de las premisas o solo es compatible con ellas?",
		"¿Qué ejemplo concreto pondría a prueba esta idea?",
	}
}
