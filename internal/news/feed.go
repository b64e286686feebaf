package news

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"MarketFlash/internal/model"
)

const (
	feedTimeout      = 15 * time.Second
	maxItemsPerFeed  = 10
	feedUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxFeedBodyBytes = 4 << 20
)

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
}

// FeedClient fetches and parses RSS feeds over HTTP.
type FeedClient struct {
	client *http.Client
}

// NewFeedClient builds a client with the standard feed timeout.
func NewFeedClient() *FeedClient {
	return &FeedClient{
		client: &http.Client{Timeout: feedTimeout},
	}
}

// SourceName maps a feed URL to a human-readable source label.
func SourceName(feedURL string) string {
	switch {
	case strings.Contains(feedURL, "marketwatch"):
		return "MarketWatch"
	case strings.Contains(feedURL, "cnbc"):
		return "CNBC"
	default:
		return "Yahoo Finance"
	}
}

// Fetch downloads one feed and returns up to 10 items. Items missing a title
// are skipped; a transport or parse failure fails the whole feed.
func (c *FeedClient) Fetch(feedURL string) ([]model.NewsItem, error) {
	req, err := http.NewRequest(http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", feedUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", feedURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	items, err := ParseFeed(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	source := SourceName(feedURL)
	for i := range items {
		items[i].Source = source
	}
	return items, nil
}

// ParseFeed decodes RSS XML into news items, capped at 10 per feed. CDATA
// sections in titles and descriptions are handled by the XML decoder.
func ParseFeed(data []byte) ([]model.NewsItem, error) {
	var feed rssFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, maxItemsPerFeed)
	for _, it := range feed.Channel.Items {
		if len(items) >= maxItemsPerFeed {
			break
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		items = append(items, model.NewsItem{
			Title:       title,
			Description: strings.TrimSpace(it.Description),
			URL:         strings.TrimSpace(it.Link),
			PublishedAt: strings.TrimSpace(it.PubDate),
		})
	}
	return items, nil
}

// FetchAll gathers items from every feed, skipping feeds that fail with a
// warning instead of aborting the scan.
func (c *FeedClient) FetchAll(feedURLs []string) []model.NewsItem {
	var all []model.NewsItem
	for _, u := range feedURLs {
		items, err := c.Fetch(u)
		if err != nil {
			log.Warn().Str("feed", u).Err(err).Msg("feed fetch failed, skipping")
			continue
		}
		all = append(all, items...)
	}
	return all
}
