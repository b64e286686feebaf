package recorder

import "MarketFlash/internal/model"

// AnalysisRecord holds one symbol's scored analysis for persistence.
type AnalysisRecord struct {
	Result         *model.AnalysisResult
	Recommendation model.Recommendation
	Scores         model.ScoreBreakdown
}

// Recorder persists alerts and analysis results for later inspection.
type Recorder interface {
	RecordAlert(alert *model.NewsAlert) error
	RecordAnalysis(rec *AnalysisRecord) error
	Close() error
}
