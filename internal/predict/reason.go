package predict

import (
	"fmt"
	"strings"
	"unicode"

	"MarketFlash/internal/model"
)

const maxReasonClauses = 4

// buildReason produces the human-readable explanation behind a
// recommendation: an opening keyed off the composite score, followed by up
// to four supporting clauses drawn from the three sub-analyses.
func buildReason(a *model.AnalysisResult, scores model.ScoreBreakdown) string {
	var reasons []string

	t := a.Technical
	if t.Err == "" {
		switch {
		case scores.Technical > 20:
			reasons = append(reasons, "Strong technical indicators")
			if t.DayChangePct > 3 {
				reasons = append(reasons, fmt.Sprintf("strong daily momentum (+%.1f%%)", t.DayChangePct))
			}
			if t.RSI < 30 {
				reasons = append(reasons, "RSI indicates oversold condition")
			}
			if t.VolumeRatio > 2 {
				reasons = append(reasons, "unusually high trading volume")
			}
		case scores.Technical < -20:
			reasons = append(reasons, "Weak technical indicators")
			if t.DayChangePct < -3 {
				reasons = append(reasons, fmt.Sprintf("negative daily momentum (%.1f%%)", t.DayChangePct))
			}
			if t.RSI > 70 {
				reasons = append(reasons, "RSI indicates overbought condition")
			}
		default:
			reasons = append(reasons, "Mixed technical signals")
		}
	}

	s := a.Sentiment
	if s.Err == "" {
		switch {
		case scores.Sentiment > 15:
			reasons = append(reasons, fmt.Sprintf("positive news sentiment from %d articles", s.ArticlesAnalyzed))
		case scores.Sentiment < -15:
			reasons = append(reasons, fmt.Sprintf("negative news sentiment from %d articles", s.ArticlesAnalyzed))
		case s.ArticlesAnalyzed > 0:
			reasons = append(reasons, fmt.Sprintf("neutral news sentiment from %d articles", s.ArticlesAnalyzed))
		}
	}

	f := a.Fundamental
	if scores.Fundamental != 0 {
		if scores.Fundamental > 10 {
			reasons = append(reasons, "favorable fundamental metrics")
			if f.PERatio > 0 && f.PERatio < 15 {
				reasons = append(reasons, fmt.Sprintf("attractive P/E ratio (%.1f)", f.PERatio))
			}
		} else if scores.Fundamental < -10 {
			reasons = append(reasons, "concerning fundamental metrics")
			if f.PERatio > 30 {
				reasons = append(reasons, fmt.Sprintf("high P/E ratio (%.1f)", f.PERatio))
			}
		}
		if f.Sector != "" {
			reasons = append(reasons, fmt.Sprintf("operates in %s sector", strings.ToLower(f.Sector)))
		}
	}

	opening := openingFor(scores.Composite)
	text := opening
	if len(reasons) > 0 {
		if len(reasons) > maxReasonClauses {
			reasons = reasons[:maxReasonClauses]
		}
		text = opening + ": " + strings.Join(reasons, ", ")
	}
	return capitalize(text) + "."
}

func openingFor(composite float64) string {
	switch {
	case composite > 50:
		return "Multiple strong positive factors align"
	case composite > 30:
		return "Several positive factors outweigh negatives"
	case composite < -50:
		return "Multiple concerning factors align"
	case composite < -30:
		return "Several negative factors outweigh positives"
	default:
		return "Mixed signals from various indicators"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
