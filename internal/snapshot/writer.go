package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"MarketFlash/internal/earnings"
	"MarketFlash/internal/model"
	"MarketFlash/internal/recorder"
)

// Writer persists timestamped JSON artifacts of computed results to a data
// directory. Files are write-once; there is no schema versioning.
type Writer struct {
	dir string
}

// NewWriter ensures the data directory exists.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) write(name string, payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

func stamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// SaveTopPerformers writes a ranked performance snapshot.
func (w *Writer) SaveTopPerformers(results []model.Performance, metric string) (string, error) {
	now := time.Now()
	payload := struct {
		Timestamp  time.Time           `json:"timestamp"`
		Metric     string              `json:"metric"`
		Count      int                 `json:"count"`
		Performers []model.Performance `json:"performers"`
	}{now, metric, len(results), results}
	return w.write(fmt.Sprintf("top_performers_%s_%s.json", metric, stamp(now)), payload)
}

// SaveEarningsCalendar writes the upcoming earnings snapshot.
func (w *Writer) SaveEarningsCalendar(entries []earnings.Entry) (string, error) {
	now := time.Now()
	payload := struct {
		Timestamp time.Time        `json:"timestamp"`
		Count     int              `json:"count"`
		Earnings  []earnings.Entry `json:"earnings"`
	}{now, len(entries), entries}
	return w.write(fmt.Sprintf("earnings_calendar_%s.json", stamp(now)), payload)
}

// SaveSentimentBatch writes the per-symbol sentiment snapshot.
func (w *Writer) SaveSentimentBatch(results map[string]model.SentimentSummary) (string, error) {
	now := time.Now()
	payload := struct {
		Timestamp time.Time                         `json:"timestamp"`
		Count     int                               `json:"count"`
		Sentiment map[string]model.SentimentSummary `json:"sentiment"`
	}{now, len(results), results}
	return w.write(fmt.Sprintf("sentiment_analysis_%s.json", stamp(now)), payload)
}

// SaveAnalysis writes one symbol's scored analysis snapshot.
func (w *Writer) SaveAnalysis(rec *recorder.AnalysisRecord) (string, error) {
	now := time.Now()
	payload := struct {
		Timestamp      time.Time             `json:"timestamp"`
		Analysis       *model.AnalysisResult `json:"analysis"`
		Recommendation model.Recommendation  `json:"recommendation"`
		Scores         model.ScoreBreakdown  `json:"scores"`
	}{now, rec.Result, rec.Recommendation, rec.Scores}
	name := fmt.Sprintf("analysis_%s_%s.json", rec.Result.Symbol, stamp(now))
	return w.write(name, payload)
}
