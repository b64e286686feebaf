package collector

import "MarketFlash/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	FetchCurrentPrice(symbol string) (float64, error)
	FetchCompanyInfo(symbol string) (*model.CompanyInfo, error)
	Name() string
}
