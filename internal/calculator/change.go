package calculator

import (
	"errors"
	"math"

	"MarketFlash/internal/model"
)

// PercentChange returns the percent change from the close `lookback` bars ago
// to the most recent close. Falls back to the earliest bar when the series is
// shorter than the lookback.
func PercentChange(bars []model.OHLCV, lookback int) (float64, error) {
	if len(bars) < 2 {
		return 0, errors.New("not enough bars for percent change")
	}
	idx := len(bars) - 1 - lookback
	if idx < 0 {
		idx = 0
	}
	ref := bars[idx].Close
	if ref == 0 {
		return 0, errors.New("zero reference price")
	}
	last := bars[len(bars)-1].Close
	return (last - ref) / ref * 100, nil
}

// VolumeRatio compares the most recent bar's volume to the average volume of
// the trailing window. Returns 1.0 when the average is unavailable.
func VolumeRatio(bars []model.OHLCV, window int) float64 {
	if len(bars) == 0 {
		return 1.0
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	var sum float64
	n := 0
	for i := start; i < len(bars); i++ {
		sum += bars[i].Volume
		n++
	}
	if n == 0 || sum == 0 {
		return 1.0
	}
	avg := sum / float64(n)
	return bars[len(bars)-1].Volume / avg
}

// Volatility returns the standard deviation of daily close-to-close returns,
// expressed in percent.
func Volatility(bars []model.OHLCV) float64 {
	if len(bars) < 3 {
		return 0
	}
	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (bars[i].Close-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)
	return math.Sqrt(variance) * 100
}
