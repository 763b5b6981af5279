package domain

type ArgumentType string

const (
	ArgumentNone                ArgumentType = "no_argumentative"
	ArgumentSimple              ArgumentType = "simple"
	ArgumentDeductive           ArgumentType = "deductive"
	ArgumentInductive           ArgumentType = "inductive"
	ArgumentMultiplePremises    ArgumentType = "multiple_premises"
	ArgumentMultipleConclusions ArgumentType = "multiple_conclusions"
	ArgumentDialectic           ArgumentType = "dialectic"
	ArgumentComplex             ArgumentType = "complex"
)

// StructureEvaluation scores the argument extracted by the Analyzer.
type StructureEvaluation struct {
	Type           ArgumentType `json:"type"`
	Strength       float64      `json:"strength"`
	Coherence      float64      `json:"coherence"`
	Completeness   float64      `json:"completeness"`
	Clarity        float64      `json:"clarity"`
	Contradictions []string     `json:"contradictions,omitempty"`
}
