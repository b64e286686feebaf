package model

// NewsAlert is a market-moving news item extracted from a feed.
// Immutable once built; alerts without at least one mentioned symbol
// are never constructed.
type NewsAlert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	// PublishedAt is kept as the raw feed string; formats vary per source
	// and are only parsed for display.
	PublishedAt     string   `json:"published_at"`
	Symbols         []string `json:"symbols_mentioned"`
	UrgencyScore    int      `json:"urgency_score"` // 1..10
	KeywordsMatched []string `json:"keywords_matched"`
}

// NewsItem is a raw article before symbol extraction and scoring.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}
