package notifier

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"MarketFlash/internal/earnings"
	"MarketFlash/internal/model"
)

func TestUrgencyTag(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{10, "[URGENT]"},
		{8, "[URGENT]"},
		{7, "[HIGH]"},
		{6, "[HIGH]"},
		{5, "[MEDIUM]"},
		{4, "[MEDIUM]"},
		{3, "[LOW]"},
		{1, "[LOW]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UrgencyTag(tt.score), "score=%d", tt.score)
	}
}

func TestFormatAlert(t *testing.T) {
	alert := &model.NewsAlert{
		Title:           "Apple beats earnings expectations",
		Description:     strings.Repeat("x", 350),
		URL:             "https://example.com/article",
		Source:          "CNBC",
		PublishedAt:     "Sat, 22 Aug 2026 14:30:00 GMT",
		Symbols:         []string{"AAPL"},
		UrgencyScore:    8,
		KeywordsMatched: []string{"earnings beat", "guidance raised", "merger", "acquisition", "ceo", "layoffs"},
	}
	msg := FormatAlert(alert)

	assert.Contains(t, msg, "[URGENT] <b>MARKET NEWS ALERT</b>")
	assert.Contains(t, msg, "<b>Symbols:</b> AAPL")
	assert.Contains(t, msg, "<b>Urgency:</b> 8/10")
	assert.Contains(t, msg, strings.Repeat("x", 300)+"...")
	assert.NotContains(t, msg, strings.Repeat("x", 301))
	// Only the first five keywords are shown.
	assert.Contains(t, msg, "earnings beat, guidance raised, merger, acquisition, ceo")
	assert.NotContains(t, msg, "layoffs")
	assert.Contains(t, msg, "<a href='https://example.com/article'>Read Full Article</a>")
}

func TestFormatAlertSearchFallback(t *testing.T) {
	alert := &model.NewsAlert{
		Title:        "Tesla announces major battery breakthrough today again",
		Symbols:      []string{"TSLA"},
		UrgencyScore: 5,
	}
	msg := FormatAlert(alert)
	assert.Contains(t, msg, "https://www.google.com/search?q=Tesla+announces+major+battery+breakthrough+stock+news")
	assert.Contains(t, msg, "Search for More Info")
}

func TestFormatEarnings(t *testing.T) {
	entries := []earnings.Entry{
		{Symbol: "AAPL", CompanyName: "Apple Inc.", Sector: "Technology",
			Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), DaysUntil: 2},
	}
	msg := FormatEarnings(entries)
	assert.Contains(t, msg, "[URGENT] <b>AAPL</b>")
	assert.Contains(t, msg, "Date: 2026-08-25")
	assert.Contains(t, msg, "In 2 days")

	assert.Equal(t, "No upcoming earnings found", FormatEarnings(nil))
}

func TestFormatAnalysis(t *testing.T) {
	a := &model.AnalysisResult{
		Symbol:       "NVDA",
		CompanyName:  "NVIDIA Corporation",
		CurrentPrice: 181.5,
		Technical:    model.TechnicalMetrics{DayChangePct: 2.5, RSI: 55, VolumeRatio: 1.3},
	}
	rec := model.Recommendation{
		Action: model.ActionBuy, Strength: model.StrengthModerate,
		Confidence: 62.5, Reason: "Several positive factors outweigh negatives.",
	}
	scores := model.ScoreBreakdown{Technical: 35, Sentiment: 20, Fundamental: 10, Composite: 31}

	msg := FormatAnalysis(a, rec, scores)
	assert.Contains(t, msg, "ANALYSIS: NVDA")
	assert.Contains(t, msg, "MODERATE BUY")
	assert.Contains(t, msg, "Confidence:</b> 62.5%")
	assert.Contains(t, msg, "Overall: +31.0")
}

func TestSplitMessageShort(t *testing.T) {
	chunks := SplitMessage("hello", 4096)
	assert.Equal(t, []string{"hello"}, chunks)
}

func TestSplitMessageOnLineBoundaries(t *testing.T) {
	text := strings.Repeat("aaaaaaaaa\n", 20) // 10 bytes per line with newline
	chunks := SplitMessage(strings.TrimSuffix(text, "\n"), 25)

	joined := strings.Join(chunks, "\n")
	assert.Equal(t, strings.TrimSuffix(text, "\n"), joined)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 25)
		assert.False(t, strings.HasPrefix(c, "\n"))
	}
}

func TestSplitMessageLongLine(t *testing.T) {
	chunks := SplitMessage(strings.Repeat("z", 100), 40)
	assert.Len(t, chunks, 3)
	assert.Equal(t, 40, len(chunks[0]))
	assert.Equal(t, 20, len(chunks[2]))
}

func TestSplitMessageKeepsRunesIntact(t *testing.T) {
	// Two-byte runes with an odd byte limit: cuts must land on rune
	// boundaries, never inside one.
	text := strings.Repeat("é", 30)
	chunks := SplitMessage(text, 7)

	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %q is not valid UTF-8", c)
		assert.LessOrEqual(t, len(c), 7)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}
