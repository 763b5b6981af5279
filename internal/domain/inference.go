package domain

type Strategy string

const (
	StrategyDeductive  Strategy = "deductive"
	StrategyInductive  Strategy = "inductive"
	StrategyAbductive  Strategy = "abductive"
	StrategyAnalogical Strategy = "analogical"
	StrategyContextual Strategy = "contextual"
)

func AllStrategies() []Strategy {
	return []Strategy{StrategyDeductive, StrategyInductive, StrategyAbductive, StrategyAnalogical, StrategyContextual}
}

const FlagWeakGeneralization = "weak generalization"

type Inference struct {
	Strategy     Strategy `json:"strategy"`
	Statement    string   `json:"statement"`
	Confidence   float64  `json:"confidence"`
	Detail       string   `json:"detail,omitempty"`
	Flags        []string `json:"flags,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// HasFlag reports whether the inference carries the given flag.
func (i Inference) HasFlag(flag string) bool {
	for _, f := range i.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
