package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"MarketFlash/internal/collector"
	"MarketFlash/internal/config"
	"MarketFlash/internal/earnings"
	"MarketFlash/internal/news"
	"MarketFlash/internal/notifier"
	"MarketFlash/internal/recorder"
	"MarketFlash/internal/scheduler"
	"MarketFlash/internal/snapshot"
	"MarketFlash/internal/tracker"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("MarketFlash starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	col := collector.NewCollector(fetcher)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	var newsAPI *news.NewsAPIClient
	if cfg.News.NewsAPIKey != "" {
		newsAPI = news.NewNewsAPIClient(cfg.News.NewsAPIKey, cfg.Proxy)
		log.Info().Msg("newsapi supplement enabled")
	}
	filter := news.NewAdmissionFilter(cfg.News.MinUrgency)
	mon := news.NewMonitor(cfg.News.Feeds, cfg.Analysis.Symbols, newsAPI, filter)

	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if err != nil {
		log.Fatal().Err(err).Msg("init telegram notifier")
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	snaps, err := snapshot.NewWriter(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("init snapshot writer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := scheduler.Options{
		NewsInterval:     time.Duration(cfg.News.CheckIntervalMinutes) * time.Minute,
		AnalysisInterval: time.Duration(cfg.Analysis.IntervalHours) * time.Hour,
		Symbols:          cfg.Analysis.Symbols,
		Metric:           cfg.Analysis.Metric,
		TopN:             cfg.Analysis.TopN,
		MinMarketCap:     cfg.Analysis.MinMarketCap,
	}
	sched := scheduler.NewScheduler(ctx, opts, col, mon,
		tracker.NewTracker(col), earnings.NewCalendar(fetcher), tn, rec, snaps)
	if err := sched.RegisterAll(); err != nil {
		log.Fatal().Err(err).Msg("register cron jobs")
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)

	if err := tn.Send(notifier.FormatStartup(len(opts.Symbols), opts.NewsInterval, opts.AnalysisInterval)); err != nil {
		log.Warn().Err(err).Msg("startup notice failed")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing both cycles now")
		go func() {
			sched.RunNewsNow()
			sched.RunAnalysisNow()
		}()
	}

	log.Info().Msg("MarketFlash is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	if err := tn.Send(notifier.FormatShutdown()); err != nil {
		log.Warn().Err(err).Msg("shutdown notice failed")
	}
	log.Info().Msg("MarketFlash stopped")
}
