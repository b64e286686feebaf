package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.News.CheckIntervalMinutes)
	assert.Equal(t, 3, cfg.News.MinUrgency)
	assert.Equal(t, 4, cfg.Analysis.IntervalHours)
	assert.Equal(t, DefaultSymbols, cfg.Analysis.Symbols)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, "return_pct", cfg.Analysis.Metric)
	assert.Equal(t, "data/marketflash.db", cfg.Database.SQLitePath)
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
telegram:
  bot_token: from-yaml
  chat_id: "12345"
news:
  check_interval_minutes: 10
analysis:
  symbols: [AAPL, MSFT]
  top_n: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("ANALYSIS_INTERVAL_HOURS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Telegram.BotToken)
	assert.Equal(t, "12345", cfg.Telegram.ChatID)
	assert.Equal(t, 10, cfg.News.CheckIntervalMinutes)
	assert.Equal(t, 8, cfg.Analysis.IntervalHours)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Analysis.Symbols)
	assert.Equal(t, 3, cfg.Analysis.TopN)

	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingToken(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	assert.Error(t, cfg.Validate())

	cfg.Telegram.BotToken = "token"
	assert.Error(t, cfg.Validate())

	cfg.Telegram.ChatID = "42"
	assert.NoError(t, cfg.Validate())
}
