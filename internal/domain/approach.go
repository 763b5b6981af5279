package domain

type ThinkingStyle string

const (
	StyleAnalytical ThinkingStyle = "analytical"
	StyleSystemic   ThinkingStyle = "systemic"
	StyleCritical   ThinkingStyle = "critical"
	StyleCreative   ThinkingStyle = "creative"
)

// AllThinkingStyles returns the styles in tie-break order.
func AllThinkingStyles() []ThinkingStyle {
	return []ThinkingStyle{StyleAnalytical, StyleSystemic, StyleCritical, StyleCreative}
}

type StyleScore struct {
	Style ThinkingStyle `json:"style"`
	Score float64       `json:"score"`
}

type ApproachRecommendation struct {
	Style     ThinkingStyle `json:"style"`
	Score     float64       `json:"score"`
	Rationale []string      `json:"rationale"`
	Ranking   []StyleScore  `json:"ranking"`
}
