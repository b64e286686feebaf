package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketFlash/internal/model"
	"MarketFlash/internal/recorder"
)

func TestSaveTopPerformers(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	results := []model.Performance{
		{Symbol: "AAPL", ReturnPct: 12.5, VolumeRatio: 1.4},
		{Symbol: "MSFT", ReturnPct: 8.1, VolumeRatio: 0.9},
	}
	path, err := w.SaveTopPerformers(results, "return_pct")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "top_performers_return_pct_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Metric     string              `json:"metric"`
		Count      int                 `json:"count"`
		Performers []model.Performance `json:"performers"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "return_pct", decoded.Metric)
	assert.Equal(t, 2, decoded.Count)
	assert.Equal(t, "AAPL", decoded.Performers[0].Symbol)
}

func TestSaveAnalysisRoundTrip(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	rec := &recorder.AnalysisRecord{
		Result: &model.AnalysisResult{
			Symbol:       "NVDA",
			CurrentPrice: 181.5,
			Technical:    model.TechnicalMetrics{RSI: 55, VolumeRatio: 1.2},
		},
		Recommendation: model.Recommendation{
			Action: model.ActionBuy, Strength: model.StrengthModerate, Confidence: 60,
		},
		Scores: model.ScoreBreakdown{Technical: 35, Composite: 31},
	}
	path, err := w.SaveAnalysis(rec)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "analysis_NVDA_")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Analysis       *model.AnalysisResult `json:"analysis"`
		Recommendation model.Recommendation  `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "NVDA", decoded.Analysis.Symbol)
	assert.Equal(t, model.ActionBuy, decoded.Recommendation.Action)
}

func TestWriterCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewWriter(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
