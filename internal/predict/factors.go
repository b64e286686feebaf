package predict

import (
	"math"
	"strings"

	"MarketFlash/internal/model"
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// technicalScore folds the technical indicators into -100..100. Momentum
// carries 40% of the weight, RSI 25%, moving-average position 20%, volume
// 15%. A failed technical analysis contributes zero.
func technicalScore(t *model.TechnicalMetrics) float64 {
	if t.Err != "" {
		return 0
	}

	score := 0.0

	momentum := t.DayChangePct*0.5 + t.WeekChangePct*0.3 + t.MonthChangePct*0.2
	score += momentum * 0.4

	rsiScore := 0.0
	if t.RSI < 30 {
		rsiScore = 20
	} else if t.RSI > 70 {
		rsiScore = -20
	}
	score += rsiScore * 0.25

	maScore := 0.0
	switch {
	case t.PriceVsMA20 > 2 && t.PriceVsMA50 > 2:
		maScore = 15
	case t.PriceVsMA20 > 0 && t.PriceVsMA50 > 0:
		maScore = 10
	case t.PriceVsMA20 < -2 && t.PriceVsMA50 < -2:
		maScore = -15
	case t.PriceVsMA20 < 0 && t.PriceVsMA50 < 0:
		maScore = -10
	}
	score += maScore * 0.2

	volumeScore := 0.0
	switch {
	case t.VolumeRatio > 2:
		volumeScore = 10
	case t.VolumeRatio > 1.5:
		volumeScore = 5
	case t.VolumeRatio < 0.5:
		volumeScore = -5
	}
	score += volumeScore * 0.15

	return clamp(score, -100, 100)
}

// sentimentScore converts an aggregate sentiment summary into -100..100.
// The +-30 base is scaled by sentiment strength and confidence, then by an
// article-count reliability multiplier.
func sentimentScore(s *model.SentimentSummary) float64 {
	if s.Err != "" {
		return 0
	}

	base := 0.0
	switch s.Overall {
	case model.SentimentPositive:
		base = 30
	case model.SentimentNegative:
		base = -30
	}

	strength := math.Min(math.Abs(s.Score)/2, 2)
	score := base * strength * (s.Confidence / 100)

	switch {
	case s.ArticlesAnalyzed >= 5:
		score *= 1.2
	case s.ArticlesAnalyzed >= 3:
		score *= 1.1
	case s.ArticlesAnalyzed < 2:
		score *= 0.7
	}

	return clamp(score, -100, 100)
}

var growthSectors = []string{"technology", "healthcare", "consumer discretionary"}
var defensiveSectors = []string{"utilities", "consumer staples", "real estate"}

// fundamentalScore rates valuation, size and sector into -100..100. A fully
// absent fundamental block contributes zero rather than a small-cap penalty.
func fundamentalScore(f *model.FundamentalMetrics) float64 {
	if f.PERatio == 0 && f.MarketCap == 0 && f.Sector == "" {
		return 0
	}
	score := 0.0

	if f.PERatio > 0 {
		if f.PERatio < 15 {
			score += 20
		} else if f.PERatio > 30 {
			score -= 20
		}
	}

	if f.MarketCap > 100e9 {
		score += 5
	} else if f.MarketCap < 2e9 {
		score -= 5
	}

	sector := strings.ToLower(f.Sector)
	if containsAny(sector, growthSectors) {
		score += 5
	} else if containsAny(sector, defensiveSectors) {
		score += 2
	}

	return clamp(score, -100, 100)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// confidence averages the available confidence factors: technical alignment,
// sentiment consistency, and composite score strength. With no factors the
// result is a neutral 50.
func confidence(t *model.TechnicalMetrics, s *model.SentimentSummary, composite float64) float64 {
	var factors []float64

	if t.Err == "" {
		tech := 70.0

		positive := 0
		negative := 0
		if t.DayChangePct > 2 {
			positive++
		} else if t.DayChangePct < -2 {
			negative++
		}
		if t.RSI < 30 {
			positive++
		} else if t.RSI > 70 {
			negative++
		}
		if t.VolumeRatio > 1.5 {
			tech += 10
		}
		if (positive >= 2 && negative == 0) || (negative >= 2 && positive == 0) {
			tech += 15
		}
		factors = append(factors, tech)
	}

	// A summary with no label was never computed and contributes no factor.
	if s.Err == "" && s.Overall != "" {
		sent := s.Confidence
		if s.ArticlesAnalyzed >= 5 {
			sent *= 1.2
		} else if s.ArticlesAnalyzed < 2 {
			sent *= 0.6
		}
		factors = append(factors, math.Min(sent, 100))
	}

	factors = append(factors, math.Min(math.Abs(composite)*1.5, 100))

	var sum float64
	for _, f := range factors {
		sum += f
	}
	return clamp(sum/float64(len(factors)), 0, 100)
}
