package news

import "strings"

// UrgentKeywords are high-impact phrases that trigger urgent alerts.
var UrgentKeywords = []string{
	"earnings beat", "earnings miss", "guidance raised", "guidance lowered",
	"dividend increase", "dividend cut", "stock split", "merger", "acquisition",
	"partnership", "breakthrough", "fda approval", "recall", "lawsuit",
	"ceo", "layoffs", "hiring", "bankruptcy", "bailout", "federal reserve",
	"interest rates", "inflation", "recession", "market crash", "correction",
	"all-time high", "record low", "halted trading", "circuit breaker",
}

// MarketKeywords indicate market-wide rather than single-name impact.
var MarketKeywords = []string{
	"fed", "federal reserve", "jerome powell", "interest rate", "inflation",
	"unemployment", "gdp", "retail sales", "consumer confidence",
	"oil prices", "gold", "bitcoin", "cryptocurrency", "nasdaq", "dow jones",
	"s&p 500", "futures", "premarket", "after hours", "volatility",
}

// negativeWords bump urgency for hard-negative events.
var negativeWords = []string{"crash", "plunge", "collapse", "emergency", "crisis", "halt"}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// UrgencyScore rates how market-moving a news item appears, from 1 to 10.
// Keyword matching is lower-cased substring matching, not word-boundary
// matching ("fed" matches inside "confederate").
func UrgencyScore(title, description string, symbols []string) int {
	score := 1
	text := strings.ToLower(title + " " + description)

	urgentHits := countMatches(text, UrgentKeywords)
	if pts := urgentHits * 2; pts > 6 {
		score += 6
	} else {
		score += pts
	}

	marketHits := countMatches(text, MarketKeywords)
	if marketHits > 2 {
		marketHits = 2
	}
	score += marketHits

	if len(symbols) > 1 {
		score++
	}

	for _, w := range negativeWords {
		if strings.Contains(text, w) {
			score += 2
			break
		}
	}

	if score > 10 {
		score = 10
	}
	if score < 1 {
		score = 1
	}
	return score
}

// MatchedKeywords lists every urgent or market keyword present in the text,
// urgent set first, each keyword reported once.
func MatchedKeywords(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	seen := make(map[string]bool)
	for _, kw := range UrgentKeywords {
		if !seen[kw] && strings.Contains(lower, kw) {
			matched = append(matched, kw)
			seen[kw] = true
		}
	}
	for _, kw := range MarketKeywords {
		if !seen[kw] && strings.Contains(lower, kw) {
			matched = append(matched, kw)
			seen[kw] = true
		}
	}
	return matched
}
