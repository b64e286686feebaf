package collector

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"MarketFlash/internal/calculator"
	"MarketFlash/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
	Info      *model.CompanyInfo
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	return m.Price, nil
}

func (m *MockFetcher) FetchCompanyInfo(symbol string) (*model.CompanyInfo, error) {
	if m.Info != nil {
		return m.Info, nil
	}
	return &model.CompanyInfo{Symbol: symbol, Name: symbol, Currency: "USD"}, nil
}

// GenerateMockBars produces a gently trending series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Lookbacks in trading days for the percent-change metrics.
const (
	dayLookback   = 1
	weekLookback  = 5
	monthLookback = 21
	volumeWindow  = 21
	rsiPeriod     = 14
	historyDays   = 90
)

// Technical fetches history for a symbol and computes all technical metrics.
// Individual indicator failures degrade to neutral defaults rather than
// failing the snapshot.
func (c *Collector) Technical(symbol string) (*model.TechnicalMetrics, float64, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, historyDays)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, 0, fmt.Errorf("no history for %s", symbol)
	}
	currentPrice := bars[len(bars)-1].Close

	tm := &model.TechnicalMetrics{VolumeRatio: 1.0, RSI: 50}

	if chg, err := calculator.PercentChange(bars, dayLookback); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("day change unavailable")
	} else {
		tm.DayChangePct = chg
	}
	if chg, err := calculator.PercentChange(bars, weekLookback); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("week change unavailable")
	} else {
		tm.WeekChangePct = chg
	}
	if chg, err := calculator.PercentChange(bars, monthLookback); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("month change unavailable")
	} else {
		tm.MonthChangePct = chg
	}

	tm.VolumeRatio = calculator.VolumeRatio(bars, volumeWindow)
	tm.Volatility = calculator.Volatility(bars)

	if rsi, err := calculator.CalculateRSI(bars, rsiPeriod); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("RSI unavailable, defaulting to 50")
	} else {
		tm.RSI = rsi
	}

	if ma, err := calculator.CalculateMA20(bars); err == nil && ma > 0 {
		tm.MA20 = ma
		tm.PriceVsMA20 = (currentPrice - ma) / ma * 100
	} else {
		tm.MA20 = currentPrice
	}
	if ma, err := calculator.CalculateMA50(bars); err == nil && ma > 0 {
		tm.MA50 = ma
		tm.PriceVsMA50 = (currentPrice - ma) / ma * 100
	} else {
		tm.MA50 = currentPrice
	}

	return tm, currentPrice, nil
}

// Performance computes ranking metrics over the full history window.
func (c *Collector) Performance(symbol string) (*model.Performance, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, monthLookback+1)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) < 2 {
		return nil, fmt.Errorf("no history for %s", symbol)
	}

	start := bars[0].Close
	end := bars[len(bars)-1].Close
	perf := &model.Performance{
		Symbol:      symbol,
		StartPrice:  start,
		EndPrice:    end,
		VolumeRatio: calculator.VolumeRatio(bars, len(bars)),
		Volatility:  calculator.Volatility(bars),
	}
	if start > 0 {
		perf.ReturnPct = (end - start) / start * 100
	}
	var volSum float64
	for _, b := range bars {
		volSum += b.Volume
	}
	perf.AvgVolume = volSum / float64(len(bars))

	if info, err := c.Fetcher.FetchCompanyInfo(symbol); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("company info unavailable")
	} else {
		perf.MarketCap = info.MarketCap
		perf.Sector = info.Sector
		perf.Industry = info.Industry
	}
	return perf, nil
}
