package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"MarketFlash/internal/model"
)

const newsAPIBase = "https://newsapi.org/v2"

// NewsAPIClient pulls recent market headlines from newsapi.org. It is an
// optional supplement to the RSS feeds and is skipped when no API key is
// configured.
type NewsAPIClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewNewsAPIClient creates a client with optional proxy support.
func NewNewsAPIClient(apiKey, proxyURL string) *NewsAPIClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NewsAPIClient{
		BaseURL: newsAPIBase,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Enabled reports whether the client has an API key to work with.
func (c *NewsAPIClient) Enabled() bool { return c.APIKey != "" }

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// RecentMarketNews fetches English stock-market articles published within the
// last hour, newest first, up to 20 items.
func (c *NewsAPIClient) RecentMarketNews() ([]model.NewsItem, error) {
	if !c.Enabled() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", "stock market")
	q.Set("sortBy", "publishedAt")
	q.Set("language", "en")
	q.Set("pageSize", "20")
	q.Set("from", time.Now().Add(-time.Hour).UTC().Format(time.RFC3339))
	q.Set("apiKey", c.APIKey)

	endpoint := fmt.Sprintf("%s/everything?%s", c.BaseURL, q.Encode())
	resp, err := c.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch newsapi articles: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch newsapi articles: status %d", resp.StatusCode)
	}

	var result newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}
	if result.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q", result.Status)
	}

	items := make([]model.NewsItem, 0, len(result.Articles))
	for _, a := range result.Articles {
		if a.Title == "" {
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = "NewsAPI"
		}
		items = append(items, model.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      source,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}
