package collector

import (
	"encoding/json"
	"testing"
)

func decodeChart(t *testing.T, payload string) *yahooChart {
	t.Helper()
	var chart yahooChart
	if err := json.Unmarshal([]byte(payload), &chart); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &chart
}

func TestChartBars(t *testing.T) {
	chart := decodeChart(t, `{"chart":{"result":[{
		"timestamp":[1000,2000,3000],
		"indicators":{"quote":[{
			"open":[10,11,12],
			"high":[10,11,12],
			"low":[10,11,12],
			"close":[10,11,12],
			"volume":[100,200,300]
		}]}
	}]}}`)

	bars, err := chartBars(chart)
	if err != nil {
		t.Fatalf("chartBars returned error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}
	if bars[0].Close != 10 || bars[2].Volume != 300 {
		t.Errorf("unexpected bar values: %+v", bars)
	}
}

func TestChartBarsRaggedSeries(t *testing.T) {
	// Three timestamps but only two entries in the price arrays: the extra
	// timestamp must be dropped instead of panicking.
	chart := decodeChart(t, `{"chart":{"result":[{
		"timestamp":[1000,2000,3000],
		"indicators":{"quote":[{
			"open":[10,11],
			"high":[10,11],
			"low":[10,11],
			"close":[10,11],
			"volume":[100,200]
		}]}
	}]}}`)

	bars, err := chartBars(chart)
	if err != nil {
		t.Fatalf("chartBars returned error: %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("got %d bars, want 2", len(bars))
	}
}

func TestChartBarsSkipsNullBars(t *testing.T) {
	chart := decodeChart(t, `{"chart":{"result":[{
		"timestamp":[1000,2000],
		"indicators":{"quote":[{
			"open":[10,null],
			"high":[10,null],
			"low":[10,null],
			"close":[10,null],
			"volume":[100,null]
		}]}
	}]}}`)

	bars, err := chartBars(chart)
	if err != nil {
		t.Fatalf("chartBars returned error: %v", err)
	}
	if len(bars) != 1 {
		t.Errorf("got %d bars, want 1", len(bars))
	}
}

func TestChartBarsNoQuoteData(t *testing.T) {
	chart := decodeChart(t, `{"chart":{"result":[{
		"timestamp":[1000],
		"indicators":{"quote":[]}
	}]}}`)
	if _, err := chartBars(chart); err == nil {
		t.Error("chartBars with no quote data should error")
	}
}

func TestChartBarsAPIError(t *testing.T) {
	chart := decodeChart(t, `{"chart":{"result":[],"error":{"code":"Not Found","description":"no such symbol"}}}`)
	if _, err := chartBars(chart); err == nil {
		t.Error("chartBars with api error should error")
	}
}
