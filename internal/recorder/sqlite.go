package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"MarketFlash/internal/model"
)

// SQLiteRecorder persists alerts and analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so readers don't block the writing loops.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS alerts (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			title         TEXT,
			description   TEXT,
			url           TEXT,
			source        TEXT,
			published_at  TEXT,
			symbols       TEXT,
			urgency_score INTEGER,
			keywords      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alerts(timestamp)`,

		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			current_price     REAL,
			day_change_pct    REAL,
			week_change_pct   REAL,
			month_change_pct  REAL,
			rsi               REAL,
			volume_ratio      REAL,
			price_vs_ma20     REAL,
			price_vs_ma50     REAL,
			sentiment_label   TEXT,
			sentiment_score   REAL,
			articles_analyzed INTEGER,
			pe_ratio          REAL,
			market_cap        REAL,
			sector            TEXT,
			technical_score   REAL,
			sentiment_subscore REAL,
			fundamental_score REAL,
			overall_score     REAL,
			action            TEXT,
			strength          TEXT,
			confidence        REAL,
			reason            TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol ON analysis_snapshots(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAlert(alert *model.NewsAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alerts
		(timestamp, title, description, url, source, published_at, symbols, urgency_score, keywords)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), alert.Title, alert.Description, alert.URL,
		alert.Source, alert.PublishedAt,
		strings.Join(alert.Symbols, ","), alert.UrgencyScore,
		strings.Join(alert.KeywordsMatched, ","),
	)
	return err
}

func (r *SQLiteRecorder) RecordAnalysis(rec *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := rec.Result
	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, current_price,
		 day_change_pct, week_change_pct, month_change_pct, rsi, volume_ratio,
		 price_vs_ma20, price_vs_ma50,
		 sentiment_label, sentiment_score, articles_analyzed,
		 pe_ratio, market_cap, sector,
		 technical_score, sentiment_subscore, fundamental_score, overall_score,
		 action, strength, confidence, reason)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.Symbol, a.CurrentPrice,
		a.Technical.DayChangePct, a.Technical.WeekChangePct, a.Technical.MonthChangePct,
		a.Technical.RSI, a.Technical.VolumeRatio,
		a.Technical.PriceVsMA20, a.Technical.PriceVsMA50,
		string(a.Sentiment.Overall), a.Sentiment.Score, a.Sentiment.ArticlesAnalyzed,
		a.Fundamental.PERatio, a.Fundamental.MarketCap, a.Fundamental.Sector,
		rec.Scores.Technical, rec.Scores.Sentiment, rec.Scores.Fundamental, rec.Scores.Composite,
		string(rec.Recommendation.Action), string(rec.Recommendation.Strength),
		rec.Recommendation.Confidence, rec.Recommendation.Reason,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
