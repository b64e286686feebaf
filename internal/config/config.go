package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultSymbols is the universe scanned for news mentions and ranked in
// the analysis cycle when the config does not override it.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA",
	"JPM", "JNJ", "V", "PG", "UNH", "HD", "MA", "DIS",
	"NFLX", "CRM", "ADBE", "PYPL", "INTC", "CSCO", "PFE",
	"KO", "PEP", "WMT", "BAC", "XOM", "CVX", "T",
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	News struct {
		Feeds                []string `yaml:"feeds"`
		NewsAPIKey           string   `yaml:"newsapi_key"`
		CheckIntervalMinutes int      `yaml:"check_interval_minutes"`
		MinUrgency           int      `yaml:"min_urgency"`
	} `yaml:"news"`
	Analysis struct {
		IntervalHours int      `yaml:"interval_hours"`
		Symbols       []string `yaml:"symbols"`
		TopN          int      `yaml:"top_n"`
		MinMarketCap  float64  `yaml:"min_market_cap"`
		Metric        string   `yaml:"metric"`
	} `yaml:"analysis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	DataDir  string `yaml:"data_dir"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A .env file in the working directory is loaded
// first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("NEWSAPI_KEY"); v != "" {
		cfg.News.NewsAPIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("NEWS_CHECK_INTERVAL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.News.CheckIntervalMinutes = n
		}
	}
	if v := os.Getenv("ANALYSIS_INTERVAL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.IntervalHours = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.News.CheckIntervalMinutes <= 0 {
		c.News.CheckIntervalMinutes = 5
	}
	if c.News.MinUrgency <= 0 {
		c.News.MinUrgency = 3
	}
	if c.Analysis.IntervalHours <= 0 {
		c.Analysis.IntervalHours = 4
	}
	if len(c.Analysis.Symbols) == 0 {
		c.Analysis.Symbols = DefaultSymbols
	}
	if c.Analysis.TopN <= 0 {
		c.Analysis.TopN = 10
	}
	if c.Analysis.MinMarketCap <= 0 {
		c.Analysis.MinMarketCap = 1e9
	}
	if c.Analysis.Metric == "" {
		c.Analysis.Metric = "return_pct"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/marketflash.db"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Analysis.Symbols) == 0 {
		return fmt.Errorf("analysis.symbols must not be empty")
	}
	return nil
}
