package sentiment

import (
	"strings"
	"unicode"

	"MarketFlash/internal/model"
)

// positiveWords and negativeWords form the lexicon. Word matching is exact
// after tokenization, so "gains" does not match "gain".
var positiveWords = map[string]bool{
	"excellent": true, "amazing": true, "outstanding": true, "superb": true,
	"fantastic": true, "great": true, "good": true, "positive": true,
	"growth": true, "profit": true, "gain": true, "increase": true,
	"up": true, "rise": true, "surge": true, "bull": true, "bullish": true,
	"strong": true, "robust": true, "solid": true, "beat": true,
	"exceed": true, "outperform": true, "buy": true, "upgrade": true,
	"recommend": true, "boost": true, "rally": true, "momentum": true,
	"optimistic": true,
}

var negativeWords = map[string]bool{
	"terrible": true, "awful": true, "horrible": true, "bad": true,
	"poor": true, "negative": true, "loss": true, "decline": true,
	"decrease": true, "down": true, "fall": true, "drop": true,
	"bear": true, "bearish": true, "weak": true, "fragile": true,
	"miss": true, "underperform": true, "sell": true, "downgrade": true,
	"concern": true, "worry": true, "crash": true, "plunge": true,
	"pessimistic": true, "risk": true, "threat": true, "problem": true,
	"issue": true, "struggle": true,
}

// TextSentiment is the lexicon verdict for a single piece of text.
type TextSentiment struct {
	Label         model.SentimentLabel
	Score         float64
	Confidence    float64
	PositiveWords int
	NegativeWords int
	TotalWords    int
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// AnalyzeText scores one text against the lexicon. Score is the net word
// count normalized by text length and scaled to percent; confidence is the
// share of sentiment-bearing words, capped at 100. Labels flip at +-0.5.
func AnalyzeText(text string) TextSentiment {
	words := tokenize(text)
	if len(words) == 0 {
		return TextSentiment{Label: model.SentimentNeutral}
	}

	var pos, neg int
	for _, w := range words {
		switch {
		case positiveWords[w]:
			pos++
		case negativeWords[w]:
			neg++
		}
	}

	if pos+neg == 0 {
		return TextSentiment{Label: model.SentimentNeutral, TotalWords: len(words)}
	}

	score := float64(pos-neg) / float64(len(words)) * 100
	confidence := float64(pos+neg) / float64(len(words)) * 100
	if confidence > 100 {
		confidence = 100
	}

	label := model.SentimentNeutral
	if score > 0.5 {
		label = model.SentimentPositive
	} else if score < -0.5 {
		label = model.SentimentNegative
	}

	return TextSentiment{
		Label:         label,
		Score:         score,
		Confidence:    confidence,
		PositiveWords: pos,
		NegativeWords: neg,
		TotalWords:    len(words),
	}
}

// AnalyzeArticles folds per-article sentiment into one summary. Each article
// is analyzed as title and description joined; the aggregate score is the
// plain average, the aggregate label flips at +-1, and confidence is the
// share of articles agreeing with the dominant label.
func AnalyzeArticles(articles []model.NewsItem) model.SentimentSummary {
	if len(articles) == 0 {
		return model.SentimentSummary{Overall: model.SentimentNeutral}
	}

	var sum float64
	var pos, neg, neu int
	for _, a := range articles {
		ts := AnalyzeText(a.Title + " " + a.Description)
		sum += ts.Score
		switch ts.Label {
		case model.SentimentPositive:
			pos++
		case model.SentimentNegative:
			neg++
		default:
			neu++
		}
	}

	avg := sum / float64(len(articles))
	overall := model.SentimentNeutral
	if avg > 1 {
		overall = model.SentimentPositive
	} else if avg < -1 {
		overall = model.SentimentNegative
	}

	dominant := pos
	if neg > dominant {
		dominant = neg
	}
	if neu > dominant {
		dominant = neu
	}
	confidence := float64(dominant) / float64(len(articles)) * 100

	return model.SentimentSummary{
		Overall:          overall,
		Score:            avg,
		Confidence:       confidence,
		ArticlesAnalyzed: len(articles),
		Positive:         pos,
		Negative:         neg,
		Neutral:          neu,
	}
}
