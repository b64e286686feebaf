package earnings

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"MarketFlash/internal/collector"
)

// Entry is one company's upcoming earnings event.
type Entry struct {
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"company_name"`
	Sector      string    `json:"sector"`
	Date        time.Time `json:"next_earnings_date"`
	DaysUntil   int       `json:"days_until_earnings"`
}

// Priority tags for the earnings report.
const (
	PriorityUrgent = "[URGENT]"
	PrioritySoon   = "[SOON]"
)

// Priority returns the tag for an entry this close to its earnings date, or
// an empty string when it is more than a week out.
func (e Entry) Priority() string {
	switch {
	case e.DaysUntil <= 3:
		return PriorityUrgent
	case e.DaysUntil <= 7:
		return PrioritySoon
	default:
		return ""
	}
}

// Calendar collects upcoming earnings dates for a symbol universe.
type Calendar struct {
	fetcher collector.Fetcher
}

// NewCalendar builds a calendar over the given fetcher.
func NewCalendar(f collector.Fetcher) *Calendar {
	return &Calendar{fetcher: f}
}

// Upcoming returns companies reporting within the next daysAhead days,
// soonest first. Symbols without a known earnings date, or whose fetch
// fails, are skipped.
func (c *Calendar) Upcoming(symbols []string, daysAhead int) []Entry {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	now := time.Now()
	cutoff := now.AddDate(0, 0, daysAhead)

	var entries []Entry
	for _, symbol := range symbols {
		info, err := c.fetcher.FetchCompanyInfo(symbol)
		if err != nil {
			log.Warn().Str("symbol", symbol).Err(err).Msg("company info unavailable, skipping")
			continue
		}
		date := info.NextEarningsDate
		if date.IsZero() || date.Before(now) || date.After(cutoff) {
			continue
		}
		entries = append(entries, Entry{
			Symbol:      symbol,
			CompanyName: info.Name,
			Sector:      info.Sector,
			Date:        date,
			DaysUntil:   int(date.Sub(now).Hours() / 24),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysUntil < entries[j].DaysUntil
	})
	return entries
}
