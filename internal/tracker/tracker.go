package tracker

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"MarketFlash/internal/collector"
	"MarketFlash/internal/model"
)

// Ranking metrics.
const (
	MetricReturn      = "return_pct"
	MetricVolumeRatio = "volume_ratio"
	MetricVolatility  = "volatility"
)

// Tracker ranks a symbol universe by performance metrics.
type Tracker struct {
	collector *collector.Collector
}

// NewTracker builds a tracker over the given collector.
func NewTracker(c *collector.Collector) *Tracker {
	return &Tracker{collector: c}
}

func metricValue(p *model.Performance, metric string) float64 {
	switch metric {
	case MetricVolumeRatio:
		return p.VolumeRatio
	case MetricVolatility:
		return p.Volatility
	default:
		return p.ReturnPct
	}
}

// ValidMetric reports whether metric names a supported ranking.
func ValidMetric(metric string) bool {
	switch metric {
	case MetricReturn, MetricVolumeRatio, MetricVolatility:
		return true
	}
	return false
}

// TopPerformers fetches performance for every symbol, filters by market cap,
// and returns the top N ranked by the metric. Higher is better for every
// metric except volatility, which ranks ascending. Symbols that fail to
// fetch are skipped rather than failing the batch.
func (t *Tracker) TopPerformers(symbols []string, metric string, topN int, minMarketCap float64) ([]model.Performance, error) {
	if !ValidMetric(metric) {
		return nil, fmt.Errorf("unknown ranking metric %q", metric)
	}
	if topN <= 0 {
		topN = 10
	}

	var results []model.Performance
	for _, symbol := range symbols {
		perf, err := t.collector.Performance(symbol)
		if err != nil {
			log.Warn().Str("symbol", symbol).Err(err).Msg("performance unavailable, skipping")
			continue
		}
		if minMarketCap > 0 && perf.MarketCap < minMarketCap {
			continue
		}
		results = append(results, *perf)
	}

	Rank(results, metric)

	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// Rank sorts performances in place by the given metric.
func Rank(results []model.Performance, metric string) {
	ascending := metric == MetricVolatility
	sort.SliceStable(results, func(i, j int) bool {
		a := metricValue(&results[i], metric)
		b := metricValue(&results[j], metric)
		if ascending {
			return a < b
		}
		return a > b
	})
}
