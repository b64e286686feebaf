package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// CompanyInfo holds basic company metadata from the data provider.
type CompanyInfo struct {
	Symbol           string    `json:"symbol"`
	Name             string    `json:"name"`
	Sector           string    `json:"sector"`
	Industry         string    `json:"industry"`
	MarketCap        float64   `json:"market_cap"`
	PERatio          float64   `json:"pe_ratio"`
	Currency         string    `json:"currency"`
	NextEarningsDate time.Time `json:"next_earnings_date,omitempty"`
}

// Performance holds ranking metrics for one symbol over a lookback period.
type Performance struct {
	Symbol      string  `json:"symbol"`
	ReturnPct   float64 `json:"return_pct"`
	StartPrice  float64 `json:"start_price"`
	EndPrice    float64 `json:"end_price"`
	AvgVolume   float64 `json:"avg_volume"`
	VolumeRatio float64 `json:"volume_ratio"`
	Volatility  float64 `json:"volatility"`
	MarketCap   float64 `json:"market_cap"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
}
