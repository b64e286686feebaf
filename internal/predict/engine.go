package predict

import (
	"math"

	"MarketFlash/internal/model"
)

// Weights of the three sub-scores in the composite.
const (
	weightTechnical   = 0.6
	weightSentiment   = 0.3
	weightFundamental = 0.1
)

// Action thresholds on the composite score. The boundaries themselves are
// HOLD: a composite of exactly 30 or -30 does not trade.
const (
	buyThreshold    = 30.0
	sellThreshold   = -30.0
	strongThreshold = 50.0
)

// Evaluate scores a full analysis snapshot and derives the trading
// recommendation with confidence and reasoning attached.
func Evaluate(a *model.AnalysisResult) (model.Recommendation, model.ScoreBreakdown) {
	scores := model.ScoreBreakdown{
		Technical:   technicalScore(&a.Technical),
		Sentiment:   sentimentScore(&a.Sentiment),
		Fundamental: fundamentalScore(&a.Fundamental),
	}
	scores.Composite = scores.Technical*weightTechnical +
		scores.Sentiment*weightSentiment +
		scores.Fundamental*weightFundamental

	rec := model.Recommendation{
		Action:     actionFor(scores.Composite),
		Confidence: confidence(&a.Technical, &a.Sentiment, scores.Composite),
		Reason:     buildReason(a, scores),
	}
	rec.Strength = strengthFor(rec.Action, scores.Composite)
	return rec, scores
}

func actionFor(composite float64) model.Action {
	switch {
	case composite > buyThreshold:
		return model.ActionBuy
	case composite < sellThreshold:
		return model.ActionSell
	default:
		return model.ActionHold
	}
}

func strengthFor(action model.Action, composite float64) model.Strength {
	if action == model.ActionHold {
		return model.StrengthNeutral
	}
	if math.Abs(composite) > strongThreshold {
		return model.StrengthStrong
	}
	return model.StrengthModerate
}
