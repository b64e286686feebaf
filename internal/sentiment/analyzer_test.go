package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"MarketFlash/internal/model"
)

func TestAnalyzeText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		label    model.SentimentLabel
		score    float64
		conf     float64
		posWords int
		negWords int
	}{
		{
			name:  "all positive words",
			text:  "strong rally",
			label: model.SentimentPositive,
			score: 100, conf: 100, posWords: 2,
		},
		{
			name:  "all negative words",
			text:  "weak sell risk",
			label: model.SentimentNegative,
			score: -100, conf: 100, negWords: 3,
		},
		{
			name:  "no sentiment words",
			text:  "the market opened today",
			label: model.SentimentNeutral,
		},
		{
			name:  "balanced words cancel out",
			text:  "strong decline",
			label: model.SentimentNeutral,
			score: 0, conf: 100, posWords: 1, negWords: 1,
		},
		{
			name:  "diluted by neutral words",
			text:  "Strong growth and record profit boost shares",
			label: model.SentimentPositive,
			score: 400.0 / 7, conf: 400.0 / 7, posWords: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeText(tt.text)
			assert.Equal(t, tt.label, got.Label)
			assert.InDelta(t, tt.score, got.Score, 1e-9)
			assert.InDelta(t, tt.conf, got.Confidence, 1e-9)
			assert.Equal(t, tt.posWords, got.PositiveWords)
			assert.Equal(t, tt.negWords, got.NegativeWords)
		})
	}
}

func TestAnalyzeTextEmpty(t *testing.T) {
	got := AnalyzeText("")
	assert.Equal(t, model.SentimentNeutral, got.Label)
	assert.Zero(t, got.Score)
	assert.Zero(t, got.Confidence)
}

func TestAnalyzeTextNoStemming(t *testing.T) {
	// "gains" is not in the lexicon even though "gain" is.
	got := AnalyzeText("gains across the board")
	assert.Equal(t, model.SentimentNeutral, got.Label)
	assert.Zero(t, got.PositiveWords)
}

func TestAnalyzeArticles(t *testing.T) {
	articles := []model.NewsItem{
		{Title: "strong rally"},
		{Title: "bullish surge"},
		{Title: "markets open flat today"},
	}
	got := AnalyzeArticles(articles)

	assert.Equal(t, model.SentimentPositive, got.Overall)
	assert.InDelta(t, 200.0/3, got.Score, 1e-9)
	assert.InDelta(t, 200.0/3, got.Confidence, 1e-9)
	assert.Equal(t, 3, got.ArticlesAnalyzed)
	assert.Equal(t, 2, got.Positive)
	assert.Equal(t, 0, got.Negative)
	assert.Equal(t, 1, got.Neutral)
}

func TestAnalyzeArticlesEmpty(t *testing.T) {
	got := AnalyzeArticles(nil)
	assert.Equal(t, model.SentimentNeutral, got.Overall)
	assert.Zero(t, got.ArticlesAnalyzed)
	assert.Zero(t, got.Confidence)
}

func TestAnalyzeArticlesNearZeroAverageIsNeutral(t *testing.T) {
	articles := []model.NewsItem{
		{Title: "strong rally"}, // +100
		{Title: "weak plunge"},  // -100
	}
	got := AnalyzeArticles(articles)
	assert.Equal(t, model.SentimentNeutral, got.Overall)
	assert.InDelta(t, 0, got.Score, 1e-9)
}
