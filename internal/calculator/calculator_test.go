package calculator

import (
	"math"
	"testing"
	"time"

	"MarketFlash/internal/model"
)

func barsFromCloses(closes ...float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, i-len(closes)),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestCalculateSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}

	got, err := CalculateSMA(prices, 5)
	if err != nil || got != 3 {
		t.Errorf("SMA(5) = %v, %v; want 3, nil", got, err)
	}

	got, err = CalculateSMA(prices, 2)
	if err != nil || got != 4.5 {
		t.Errorf("SMA(2) = %v, %v; want 4.5, nil", got, err)
	}

	if _, err := CalculateSMA(prices, 10); err == nil {
		t.Error("SMA with insufficient data should error")
	}
	if _, err := CalculateSMA(prices, 0); err == nil {
		t.Error("SMA with zero period should error")
	}
}

func TestCalculateRSI(t *testing.T) {
	// Strictly rising closes: no losses, RSI pegs at 100.
	rising := make([]float64, 20)
	for i := range rising {
		rising[i] = 100 + float64(i)
	}
	got, err := CalculateRSI(barsFromCloses(rising...), 14)
	if err != nil || got != 100 {
		t.Errorf("RSI rising = %v, %v; want 100, nil", got, err)
	}

	// Insufficient data defaults to neutral.
	got, err = CalculateRSI(barsFromCloses(100, 101, 102), 14)
	if err != nil || got != 50 {
		t.Errorf("RSI short = %v, %v; want 50, nil", got, err)
	}

	if _, err := CalculateRSI(nil, 0); err == nil {
		t.Error("RSI with zero period should error")
	}
}

func TestPercentChange(t *testing.T) {
	bars := barsFromCloses(100, 105, 110)

	got, err := PercentChange(bars, 1)
	if err != nil || math.Abs(got-(110-105)/105.0*100) > 1e-9 {
		t.Errorf("PercentChange(1) = %v, %v", got, err)
	}

	// Lookback beyond history falls back to the earliest bar.
	got, err = PercentChange(bars, 10)
	if err != nil || math.Abs(got-10) > 1e-9 {
		t.Errorf("PercentChange(10) = %v, %v; want 10, nil", got, err)
	}

	if _, err := PercentChange(barsFromCloses(100), 1); err == nil {
		t.Error("PercentChange with one bar should error")
	}
}

func TestVolumeRatio(t *testing.T) {
	bars := barsFromCloses(100, 100, 100, 100)
	for i := range bars {
		bars[i].Volume = 100
	}
	bars[len(bars)-1].Volume = 200

	got := VolumeRatio(bars, 4)
	if math.Abs(got-1.6) > 1e-9 {
		t.Errorf("VolumeRatio = %v, want 1.6", got)
	}

	if got := VolumeRatio(nil, 4); got != 1.0 {
		t.Errorf("VolumeRatio(nil) = %v, want 1.0", got)
	}
}

func TestVolatility(t *testing.T) {
	if got := Volatility(barsFromCloses(100, 100, 100, 100)); got != 0 {
		t.Errorf("Volatility of flat series = %v, want 0", got)
	}
	if got := Volatility(barsFromCloses(100, 100)); got != 0 {
		t.Errorf("Volatility with too few bars = %v, want 0", got)
	}
	if got := Volatility(barsFromCloses(100, 110, 99, 120)); got <= 0 {
		t.Errorf("Volatility of moving series = %v, want > 0", got)
	}
}
