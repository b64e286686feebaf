package model

// Action is the trading action of a recommendation.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Strength qualifies how decisive a recommendation is.
type Strength string

const (
	StrengthStrong   Strength = "STRONG"
	StrengthModerate Strength = "MODERATE"
	StrengthWeak     Strength = "WEAK"
	StrengthNeutral  Strength = "NEUTRAL"
)

// Recommendation is derived from an AnalysisResult and carries no identity
// of its own; it is recomputed whenever needed.
type Recommendation struct {
	Action     Action   `json:"action"`
	Strength   Strength `json:"strength"`
	Confidence float64  `json:"confidence"` // 0..100
	Reason     string   `json:"reason"`
}

// ScoreBreakdown exposes the sub-scores behind a composite recommendation.
// Each sub-score is clamped to [-100, 100].
type ScoreBreakdown struct {
	Technical   float64 `json:"technical"`
	Sentiment   float64 `json:"sentiment"`
	Fundamental float64 `json:"fundamental"`
	Composite   float64 `json:"overall"`
}
