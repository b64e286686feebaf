package news

import (
	"sort"
	"strings"
	"sync"

	"MarketFlash/internal/model"
)

// HighValueSymbols always pass the admission filter regardless of urgency.
var HighValueSymbols = map[string]bool{
	"AAPL": true, "MSFT": true, "GOOGL": true, "AMZN": true,
	"TSLA": true, "META": true, "NVDA": true,
}

const (
	admissionMaxSize  = 1000
	admissionKeepSize = 800
	minUrgency        = 3
	fingerprintPrefix = 50
)

// AdmissionFilter decides which alerts get sent, deduplicating by
// fingerprint and dropping low-urgency items. Fingerprints are kept in
// insertion order so eviction deterministically retains the most recently
// admitted entries. State lives for the process lifetime only.
type AdmissionFilter struct {
	mu    sync.Mutex
	seen  map[string]bool
	order []string
	min   int
}

// NewAdmissionFilter creates an empty filter. minUrgencyScore values outside
// [1,10] fall back to the default threshold of 3.
func NewAdmissionFilter(minUrgencyScore int) *AdmissionFilter {
	if minUrgencyScore < 1 || minUrgencyScore > 10 {
		minUrgencyScore = minUrgency
	}
	return &AdmissionFilter{
		seen: make(map[string]bool),
		min:  minUrgencyScore,
	}
}

// Fingerprint derives the dedup key: the first 50 characters of the title
// plus the sorted, comma-joined symbol list.
func Fingerprint(alert *model.NewsAlert) string {
	title := alert.Title
	if len(title) > fingerprintPrefix {
		title = title[:fingerprintPrefix]
	}
	symbols := make([]string, len(alert.Symbols))
	copy(symbols, alert.Symbols)
	sort.Strings(symbols)
	return title + "_" + strings.Join(symbols, ",")
}

// ShouldAdmit reports whether the alert should be sent, registering its
// fingerprint on admission. Duplicates are rejected, as are alerts below the
// urgency threshold unless they mention a high-value symbol.
func (f *AdmissionFilter) ShouldAdmit(alert *model.NewsAlert) bool {
	fp := Fingerprint(alert)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen[fp] {
		return false
	}

	if alert.UrgencyScore < f.min {
		highValue := false
		for _, s := range alert.Symbols {
			if HighValueSymbols[s] {
				highValue = true
				break
			}
		}
		if !highValue {
			return false
		}
	}

	f.seen[fp] = true
	f.order = append(f.order, fp)

	if len(f.order) > admissionMaxSize {
		drop := f.order[:len(f.order)-admissionKeepSize]
		for _, old := range drop {
			delete(f.seen, old)
		}
		kept := make([]string, admissionKeepSize)
		copy(kept, f.order[len(f.order)-admissionKeepSize:])
		f.order = kept
	}
	return true
}

// Size returns the number of fingerprints currently tracked.
func (f *AdmissionFilter) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.order)
}
