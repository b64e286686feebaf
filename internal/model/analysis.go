package model

import "time"

// TechnicalMetrics holds computed technical indicators for one symbol.
type TechnicalMetrics struct {
	DayChangePct   float64 `json:"day_change_pct"`
	WeekChangePct  float64 `json:"week_change_pct"`
	MonthChangePct float64 `json:"month_change_pct"`
	VolumeRatio    float64 `json:"volume_ratio"`
	RSI            float64 `json:"rsi"`
	PriceVsMA20    float64 `json:"price_vs_ma20"` // percent above/below MA20
	PriceVsMA50    float64 `json:"price_vs_ma50"`
	Volatility     float64 `json:"volatility"`
	MA20           float64 `json:"ma_20"`
	MA50           float64 `json:"ma_50"`
	Err            string  `json:"error,omitempty"`
}

// SentimentLabel classifies aggregate news tone.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentSummary aggregates per-article sentiment for one symbol.
type SentimentSummary struct {
	Overall          SentimentLabel `json:"overall_sentiment"`
	Score            float64        `json:"overall_score"`
	Confidence       float64        `json:"confidence"` // 0..100
	ArticlesAnalyzed int            `json:"articles_analyzed"`
	Positive         int            `json:"positive"`
	Negative         int            `json:"negative"`
	Neutral          int            `json:"neutral"`
	Err              string         `json:"error,omitempty"`
}

// FundamentalMetrics holds the slow-moving company figures used by the scorer.
type FundamentalMetrics struct {
	PERatio   float64 `json:"pe_ratio"`
	MarketCap float64 `json:"market_cap"`
	Sector    string  `json:"sector"`
}

// AnalysisResult is one symbol's full analysis snapshot. Constructed fresh
// per scoring pass and never mutated after the three sub-analyses are set.
type AnalysisResult struct {
	Symbol       string             `json:"symbol"`
	CompanyName  string             `json:"company_name,omitempty"`
	CurrentPrice float64            `json:"current_price"`
	Technical    TechnicalMetrics   `json:"technical_analysis"`
	Sentiment    SentimentSummary   `json:"sentiment_analysis"`
	Fundamental  FundamentalMetrics `json:"market_data"`
	AnalyzedAt   time.Time          `json:"analysis_timestamp"`
}
