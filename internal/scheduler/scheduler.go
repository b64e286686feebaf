package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"MarketFlash/internal/collector"
	"MarketFlash/internal/earnings"
	"MarketFlash/internal/model"
	"MarketFlash/internal/news"
	"MarketFlash/internal/notifier"
	"MarketFlash/internal/predict"
	"MarketFlash/internal/recorder"
	"MarketFlash/internal/sentiment"
	"MarketFlash/internal/snapshot"
	"MarketFlash/internal/tracker"
)

// Options carries the tunables for the two loops.
type Options struct {
	NewsInterval     time.Duration
	AnalysisInterval time.Duration
	Symbols          []string
	Metric           string
	TopN             int
	MinMarketCap     float64
}

// Scheduler owns the news and analysis cron jobs and serves user commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Monitor   *news.Monitor
	Tracker   *tracker.Tracker
	Calendar  *earnings.Calendar
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Snapshots *snapshot.Writer
	Ctx       context.Context

	opts    Options
	limiter *rate.Limiter
	started time.Time
}

// NewScheduler wires the scheduler. Outbound alerts are paced at one message
// every two seconds to stay under Telegram rate limits.
func NewScheduler(ctx context.Context, opts Options, col *collector.Collector, mon *news.Monitor,
	tr *tracker.Tracker, cal *earnings.Calendar, tn *notifier.TelegramNotifier,
	rec recorder.Recorder, snaps *snapshot.Writer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Monitor:   mon,
		Tracker:   tr,
		Calendar:  cal,
		Notifier:  tn,
		Recorder:  rec,
		Snapshots: snaps,
		Ctx:       ctx,
		opts:      opts,
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		started:   time.Now(),
	}
}

// RegisterAll registers the news and analysis jobs.
func (s *Scheduler) RegisterAll() error {
	newsSpec := fmt.Sprintf("@every %s", s.opts.NewsInterval)
	if _, err := s.Cron.AddFunc(newsSpec, s.newsCycle); err != nil {
		return fmt.Errorf("register news job: %w", err)
	}
	analysisSpec := fmt.Sprintf("@every %s", s.opts.AnalysisInterval)
	if _, err := s.Cron.AddFunc(analysisSpec, s.analysisCycle); err != nil {
		return fmt.Errorf("register analysis job: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().
		Dur("news_interval", s.opts.NewsInterval).
		Dur("analysis_interval", s.opts.AnalysisInterval).
		Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNewsNow executes the news cycle immediately.
func (s *Scheduler) RunNewsNow() { s.newsCycle() }

// RunAnalysisNow executes the analysis cycle immediately.
func (s *Scheduler) RunAnalysisNow() { s.analysisCycle() }

func (s *Scheduler) newsCycle() {
	log.Info().Msg("running news cycle")
	alerts := s.Monitor.Scan()

	for i := range alerts {
		alert := &alerts[i]
		if err := s.limiter.Wait(s.Ctx); err != nil {
			return
		}
		s.trySend(notifier.FormatAlert(alert))
		if err := s.Recorder.RecordAlert(alert); err != nil {
			log.Error().Err(err).Msg("record alert failed")
		}
	}
}

func (s *Scheduler) analysisCycle() {
	log.Info().Msg("running analysis cycle")

	top, err := s.Tracker.TopPerformers(s.opts.Symbols, s.opts.Metric, s.opts.TopN, s.opts.MinMarketCap)
	if err != nil {
		log.Error().Err(err).Msg("top performers failed")
		return
	}
	s.trySend(notifier.FormatTopPerformers(top, s.opts.Metric))
	if _, err := s.Snapshots.SaveTopPerformers(top, s.opts.Metric); err != nil {
		log.Error().Err(err).Msg("save top performers snapshot failed")
	}

	upcoming := s.Calendar.Upcoming(s.opts.Symbols, 30)
	s.trySend(notifier.FormatEarnings(upcoming))
	if _, err := s.Snapshots.SaveEarningsCalendar(upcoming); err != nil {
		log.Error().Err(err).Msg("save earnings snapshot failed")
	}

	items := s.Monitor.FetchItems()
	batch := make(map[string]model.SentimentSummary, len(top))
	for _, p := range top {
		rec := s.analyzeSymbol(p.Symbol, items)
		if rec == nil {
			continue
		}
		batch[p.Symbol] = rec.Result.Sentiment
		s.trySend(notifier.FormatAnalysis(rec.Result, rec.Recommendation, rec.Scores))
		if err := s.Recorder.RecordAnalysis(rec); err != nil {
			log.Error().Err(err).Msg("record analysis failed")
		}
		if _, err := s.Snapshots.SaveAnalysis(rec); err != nil {
			log.Error().Err(err).Msg("save analysis snapshot failed")
		}
	}

	if len(batch) > 0 {
		s.trySend(notifier.FormatSentimentBatch(batch))
		if _, err := s.Snapshots.SaveSentimentBatch(batch); err != nil {
			log.Error().Err(err).Msg("save sentiment snapshot failed")
		}
	}
}

// Analyze builds and scores a fresh analysis for one symbol, fetching its
// own news batch. Used by the /analyze command.
func (s *Scheduler) Analyze(symbol string) *recorder.AnalysisRecord {
	return s.analyzeSymbol(symbol, s.Monitor.FetchItems())
}

// analyzeSymbol assembles the full analysis snapshot for one symbol. A
// failed sub-analysis is carried as an error marker rather than aborting,
// so scoring degrades instead of failing the batch.
func (s *Scheduler) analyzeSymbol(symbol string, items []model.NewsItem) *recorder.AnalysisRecord {
	result := &model.AnalysisResult{
		Symbol:     symbol,
		AnalyzedAt: time.Now(),
	}

	tech, price, err := s.Collector.Technical(symbol)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("technical analysis failed")
		result.Technical = model.TechnicalMetrics{Err: err.Error()}
	} else {
		result.Technical = *tech
		result.CurrentPrice = price
	}

	result.Sentiment = sentiment.AnalyzeArticles(news.ItemsMentioning(items, symbol))

	if info, err := s.Collector.Fetcher.FetchCompanyInfo(symbol); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("company info unavailable")
	} else {
		result.CompanyName = info.Name
		result.Fundamental = model.FundamentalMetrics{
			PERatio:   info.PERatio,
			MarketCap: info.MarketCap,
			Sector:    info.Sector,
		}
	}

	rec, scores := predict.Evaluate(result)
	return &recorder.AnalysisRecord{Result: result, Recommendation: rec, Scores: scores}
}

// HandleCommand processes a user command and returns a reply. An empty
// reply means the command produced its own output.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/status":
		return fmt.Sprintf("<b>MarketFlash status</b>\n\nUptime: %s\nSymbols: %d\nNews scan: every %s\nAnalysis: every %s",
			time.Since(s.started).Round(time.Second), len(s.opts.Symbols),
			s.opts.NewsInterval, s.opts.AnalysisInterval)
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		rec := s.Analyze(symbol)
		if rec == nil {
			return fmt.Sprintf("No data available for %s", symbol)
		}
		return notifier.FormatAnalysis(rec.Result, rec.Recommendation, rec.Scores)
	case "/top":
		top, err := s.Tracker.TopPerformers(s.opts.Symbols, s.opts.Metric, s.opts.TopN, s.opts.MinMarketCap)
		if err != nil {
			return fmt.Sprintf("Top performers unavailable: %v", err)
		}
		return notifier.FormatTopPerformers(top, s.opts.Metric)
	case "/earnings":
		return notifier.FormatEarnings(s.Calendar.Upcoming(s.opts.Symbols, 30))
	case "/help":
		return "Available commands:\n/status - bot status\n/analyze SYMBOL - full analysis\n/top - top performers\n/earnings - earnings calendar\n/help - this message"
	default:
		return "Unknown command. Send /help for the command list."
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text); err != nil {
		log.Error().Err(err).Msg("send notification failed")
	}
}
