package sentiment

import (
	"fmt"

	"MarketFlash/internal/model"
)

// Recommend maps an aggregate sentiment summary to a trading stance using
// sentiment alone. Strong and moderate calls need high agreement across
// articles; weak calls need moderate agreement and a larger score swing.
func Recommend(s model.SentimentSummary) model.Recommendation {
	reason := func(msg string) string {
		return fmt.Sprintf("%s (score: %.2f, confidence: %.1f%%)", msg, s.Score, s.Confidence)
	}

	if s.Confidence >= 70 {
		switch {
		case s.Overall == model.SentimentPositive && s.Score > 1.5:
			return model.Recommendation{
				Action: model.ActionBuy, Strength: model.StrengthStrong,
				Confidence: s.Confidence, Reason: reason("Strong positive sentiment"),
			}
		case s.Overall == model.SentimentPositive && s.Score > 0.5:
			return model.Recommendation{
				Action: model.ActionBuy, Strength: model.StrengthModerate,
				Confidence: s.Confidence, Reason: reason("Positive sentiment"),
			}
		case s.Overall == model.SentimentNegative && s.Score < -1.5:
			return model.Recommendation{
				Action: model.ActionSell, Strength: model.StrengthStrong,
				Confidence: s.Confidence, Reason: reason("Strong negative sentiment"),
			}
		case s.Overall == model.SentimentNegative && s.Score < -0.5:
			return model.Recommendation{
				Action: model.ActionSell, Strength: model.StrengthModerate,
				Confidence: s.Confidence, Reason: reason("Negative sentiment"),
			}
		}
	} else if s.Confidence >= 50 {
		switch {
		case s.Overall == model.SentimentPositive && s.Score > 1.0:
			return model.Recommendation{
				Action: model.ActionBuy, Strength: model.StrengthWeak,
				Confidence: s.Confidence, Reason: reason("Cautious positive outlook"),
			}
		case s.Overall == model.SentimentNegative && s.Score < -1.0:
			return model.Recommendation{
				Action: model.ActionSell, Strength: model.StrengthWeak,
				Confidence: s.Confidence, Reason: reason("Cautious negative outlook"),
			}
		}
	}

	return model.Recommendation{
		Action: model.ActionHold, Strength: model.StrengthNeutral,
		Confidence: s.Confidence, Reason: reason("Mixed or uncertain sentiment"),
	}
}
