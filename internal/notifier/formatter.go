package notifier

import (
	"fmt"
	"strings"
	"time"

	"MarketFlash/internal/earnings"
	"MarketFlash/internal/model"
)

const descriptionLimit = 300

// UrgencyTag maps an urgency score to the alert prefix.
func UrgencyTag(score int) string {
	switch {
	case score >= 8:
		return "[URGENT]"
	case score >= 6:
		return "[HIGH]"
	case score >= 4:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}

// FormatAlert renders a news alert as a Telegram HTML message.
func FormatAlert(alert *model.NewsAlert) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>MARKET NEWS ALERT</b>\n\n", UrgencyTag(alert.UrgencyScore)))
	b.WriteString(fmt.Sprintf("<b>Symbols:</b> %s\n", strings.Join(alert.Symbols, ", ")))
	b.WriteString(fmt.Sprintf("<b>Urgency:</b> %d/10\n\n", alert.UrgencyScore))
	b.WriteString(fmt.Sprintf("<b>%s</b>\n\n", alert.Title))

	if alert.Description != "" && alert.Description != alert.Title {
		desc := alert.Description
		if len(desc) > descriptionLimit {
			desc = desc[:descriptionLimit] + "..."
		}
		b.WriteString(desc + "\n\n")
	}

	published := alert.PublishedAt
	if published == "" {
		published = "Unknown"
	}
	b.WriteString(fmt.Sprintf("<b>Source:</b> %s\n", alert.Source))
	b.WriteString(fmt.Sprintf("<b>Published:</b> %s\n", published))
	b.WriteString(fmt.Sprintf("<b>Alert Time:</b> %s\n", time.Now().Format("2006-01-02 15:04:05")))

	if len(alert.KeywordsMatched) > 0 {
		keywords := alert.KeywordsMatched
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
		b.WriteString(fmt.Sprintf("<b>Keywords:</b> %s\n", strings.Join(keywords, ", ")))
	}

	if url := strings.TrimSpace(alert.URL); url != "" {
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		b.WriteString(fmt.Sprintf("\n<a href='%s'>Read Full Article</a>", url))
	} else {
		words := strings.Fields(alert.Title)
		if len(words) > 5 {
			words = words[:5]
		}
		searchURL := fmt.Sprintf("https://www.google.com/search?q=%s+stock+news", strings.Join(words, "+"))
		b.WriteString(fmt.Sprintf("\n<a href='%s'>Search for More Info</a>", searchURL))
	}

	return b.String()
}

// FormatTopPerformers renders a ranked performance table.
func FormatTopPerformers(results []model.Performance, metric string) string {
	if len(results) == 0 {
		return "No performance data available"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>TOP %d PERFORMERS BY %s</b>\n", len(results), strings.ToUpper(metric)))
	b.WriteString(fmt.Sprintf("<i>Updated: %s</i>\n\n", time.Now().Format("2006-01-02 15:04:05")))

	for i, p := range results {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b>", i+1, p.Symbol))
		if p.Sector != "" {
			b.WriteString(fmt.Sprintf(" (%s)", p.Sector))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("   Return: %+.2f%% | Volume: %.2fx | Volatility: %.2f%%\n",
			p.ReturnPct, p.VolumeRatio, p.Volatility))
	}
	return b.String()
}

// FormatEarnings renders the upcoming earnings calendar.
func FormatEarnings(entries []earnings.Entry) string {
	if len(entries) == 0 {
		return "No upcoming earnings found"
	}

	var b strings.Builder
	b.WriteString("<b>UPCOMING EARNINGS CALENDAR</b>\n")
	b.WriteString(fmt.Sprintf("<i>Updated: %s</i>\n\n", time.Now().Format("2006-01-02 15:04:05")))

	for _, e := range entries {
		name := e.CompanyName
		if len(name) > 20 {
			name = name[:20]
		}
		if tag := e.Priority(); tag != "" {
			b.WriteString(tag + " ")
		}
		b.WriteString(fmt.Sprintf("<b>%s</b> - %s\n", e.Symbol, name))
		b.WriteString(fmt.Sprintf("Date: %s\n", e.Date.Format("2006-01-02")))
		b.WriteString(fmt.Sprintf("In %d days\n", e.DaysUntil))
		if e.Sector != "" {
			b.WriteString(fmt.Sprintf("Sector: %s\n", e.Sector))
		}
		b.WriteString(fmt.Sprintf("<a href='https://finance.yahoo.com/quote/%s'>Stock Chart</a> | ", e.Symbol))
		b.WriteString(fmt.Sprintf("<a href='https://finance.yahoo.com/calendar/earnings?symbol=%s'>Earnings Info</a>\n\n", e.Symbol))
	}
	return b.String()
}

// FormatAnalysis renders one symbol's full analysis and recommendation.
func FormatAnalysis(a *model.AnalysisResult, rec model.Recommendation, scores model.ScoreBreakdown) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<b>ANALYSIS: %s</b>", a.Symbol))
	if a.CompanyName != "" {
		b.WriteString(fmt.Sprintf(" - %s", a.CompanyName))
	}
	b.WriteString("\n\n")

	if a.CurrentPrice > 0 {
		b.WriteString(fmt.Sprintf("Price: $%.2f\n", a.CurrentPrice))
	}
	b.WriteString(fmt.Sprintf("<b>Recommendation:</b> %s %s\n", rec.Strength, rec.Action))
	b.WriteString(fmt.Sprintf("<b>Confidence:</b> %.1f%%\n\n", rec.Confidence))

	b.WriteString("<b>Scores</b>\n")
	b.WriteString(fmt.Sprintf("Technical: %+.1f\n", scores.Technical))
	b.WriteString(fmt.Sprintf("Sentiment: %+.1f\n", scores.Sentiment))
	b.WriteString(fmt.Sprintf("Fundamental: %+.1f\n", scores.Fundamental))
	b.WriteString(fmt.Sprintf("Overall: %+.1f\n\n", scores.Composite))

	t := a.Technical
	if t.Err == "" {
		b.WriteString(fmt.Sprintf("Day %+.2f%% | Week %+.2f%% | Month %+.2f%%\n",
			t.DayChangePct, t.WeekChangePct, t.MonthChangePct))
		b.WriteString(fmt.Sprintf("RSI %.1f | Volume %.2fx\n\n", t.RSI, t.VolumeRatio))
	}

	b.WriteString(fmt.Sprintf("<i>%s</i>", rec.Reason))
	return b.String()
}

// FormatSentimentBatch renders aggregate sentiment for a set of symbols.
func FormatSentimentBatch(results map[string]model.SentimentSummary) string {
	if len(results) == 0 {
		return "No sentiment data available"
	}

	var b strings.Builder
	b.WriteString("<b>NEWS SENTIMENT SUMMARY</b>\n")
	b.WriteString(fmt.Sprintf("<i>Updated: %s</i>\n\n", time.Now().Format("2006-01-02 15:04:05")))

	for symbol, s := range results {
		b.WriteString(fmt.Sprintf("<b>%s</b>: %s (score %+.2f, confidence %.0f%%, %d articles)\n",
			symbol, s.Overall, s.Score, s.Confidence, s.ArticlesAnalyzed))
	}
	return b.String()
}

// FormatStartup announces the bot coming online.
func FormatStartup(symbols int, newsInterval, analysisInterval time.Duration) string {
	var b strings.Builder
	b.WriteString("<b>MarketFlash started</b>\n\n")
	b.WriteString(fmt.Sprintf("Monitoring %d symbols\n", symbols))
	b.WriteString(fmt.Sprintf("News scan every %s\n", newsInterval))
	b.WriteString(fmt.Sprintf("Full analysis every %s\n", analysisInterval))
	b.WriteString("\nSend /help for available commands")
	return b.String()
}

// FormatShutdown announces a clean stop.
func FormatShutdown() string {
	return "<b>MarketFlash stopped</b>"
}
