package news

import (
	"sort"

	"github.com/rs/zerolog/log"

	"MarketFlash/internal/model"
)

// DefaultFeeds are the RSS sources scanned every cycle.
var DefaultFeeds = []string{
	"https://feeds.finance.yahoo.com/rss/2.0/headline?s=^GSPC&region=US&lang=en-US",
	"https://feeds.marketwatch.com/marketwatch/realtimeheadlines/",
	"https://www.cnbc.com/id/100003114/device/rss/rss.html",
}

// Monitor turns raw feed items into scored, deduplicated news alerts.
type Monitor struct {
	feeds    []string
	universe []string
	client   *FeedClient
	newsAPI  *NewsAPIClient
	filter   *AdmissionFilter
}

// NewMonitor wires a monitor over the given feeds and symbol universe.
// newsAPI may be nil or disabled; it is consulted only when enabled.
func NewMonitor(feeds, universe []string, newsAPI *NewsAPIClient, filter *AdmissionFilter) *Monitor {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	return &Monitor{
		feeds:    feeds,
		universe: universe,
		client:   NewFeedClient(),
		newsAPI:  newsAPI,
		filter:   filter,
	}
}

// buildAlert scores one item, or returns nil when no tracked symbol appears.
func (m *Monitor) buildAlert(item model.NewsItem) *model.NewsAlert {
	text := item.Title + " " + item.Description
	symbols := ExtractSymbols(text, m.universe)
	if len(symbols) == 0 {
		return nil
	}
	return &model.NewsAlert{
		Title:           item.Title,
		Description:     item.Description,
		URL:             item.URL,
		Source:          item.Source,
		PublishedAt:     item.PublishedAt,
		Symbols:         symbols,
		UrgencyScore:    UrgencyScore(item.Title, item.Description, symbols),
		KeywordsMatched: MatchedKeywords(text),
	}
}

// FetchItems gathers the current batch of news items from every configured
// source.
func (m *Monitor) FetchItems() []model.NewsItem {
	items := m.client.FetchAll(m.feeds)

	if m.newsAPI != nil && m.newsAPI.Enabled() {
		extra, err := m.newsAPI.RecentMarketNews()
		if err != nil {
			log.Warn().Err(err).Msg("newsapi fetch failed, continuing with feeds only")
		} else {
			items = append(items, extra...)
		}
	}
	return items
}

// ItemsMentioning filters a batch down to items that mention the symbol.
func ItemsMentioning(items []model.NewsItem, symbol string) []model.NewsItem {
	var matched []model.NewsItem
	for _, item := range items {
		if len(ExtractSymbols(item.Title+" "+item.Description, []string{symbol})) > 0 {
			matched = append(matched, item)
		}
	}
	return matched
}

// Scan fetches every source, scores each item against the universe, and
// returns the alerts that pass the admission filter, most urgent first.
func (m *Monitor) Scan() []model.NewsAlert {
	items := m.FetchItems()

	var alerts []model.NewsAlert
	for _, item := range items {
		alert := m.buildAlert(item)
		if alert == nil {
			continue
		}
		if !m.filter.ShouldAdmit(alert) {
			continue
		}
		alerts = append(alerts, *alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].UrgencyScore > alerts[j].UrgencyScore
	})

	log.Info().
		Int("items", len(items)).
		Int("alerts", len(alerts)).
		Msg("news scan complete")
	return alerts
}
