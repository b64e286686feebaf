package news

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketFlash/internal/model"
)

func alertFixture(title string, urgency int, symbols ...string) *model.NewsAlert {
	return &model.NewsAlert{
		Title:        title,
		Symbols:      symbols,
		UrgencyScore: urgency,
	}
}

func TestFingerprint(t *testing.T) {
	a := alertFixture("Short title", 5, "TSLA", "AAPL")
	assert.Equal(t, "Short title_AAPL,TSLA", Fingerprint(a))

	long := alertFixture("This headline runs well past the fifty character truncation point", 5, "MSFT")
	fp := Fingerprint(long)
	assert.Equal(t, "This headline runs well past the fifty character t_MSFT", fp)
}

func TestShouldAdmitRejectsDuplicates(t *testing.T) {
	f := NewAdmissionFilter(3)
	a := alertFixture("Apple beats earnings", 6, "AAPL")

	assert.True(t, f.ShouldAdmit(a))
	assert.False(t, f.ShouldAdmit(a))
}

func TestShouldAdmitUrgencyThreshold(t *testing.T) {
	f := NewAdmissionFilter(3)

	low := alertFixture("Minor update from regional bank", 2, "KEY")
	assert.False(t, f.ShouldAdmit(low))

	// Rejection must not register the fingerprint; a later higher-urgency
	// duplicate still gets through.
	retry := alertFixture("Minor update from regional bank", 4, "KEY")
	assert.True(t, f.ShouldAdmit(retry))
}

func TestShouldAdmitHighValueBypass(t *testing.T) {
	f := NewAdmissionFilter(3)
	a := alertFixture("Routine filing mentions giant", 1, "NVDA")
	assert.True(t, f.ShouldAdmit(a))
}

func TestAdmissionFilterEviction(t *testing.T) {
	f := NewAdmissionFilter(3)
	for i := 0; i < 1001; i++ {
		a := alertFixture(fmt.Sprintf("headline %d", i), 5, "XOM")
		require.True(t, f.ShouldAdmit(a))
	}
	assert.Equal(t, 800, f.Size())

	// Evicted entries are admissible again, retained ones are not.
	oldest := alertFixture("headline 0", 5, "XOM")
	assert.True(t, f.ShouldAdmit(oldest))
	newest := alertFixture("headline 1000", 5, "XOM")
	assert.False(t, f.ShouldAdmit(newest))
}

func TestNewAdmissionFilterDefaultsBadThreshold(t *testing.T) {
	f := NewAdmissionFilter(0)
	low := alertFixture("quiet note", 2, "XOM")
	assert.False(t, f.ShouldAdmit(low))
	ok := alertFixture("louder note", 3, "XOM")
	assert.True(t, f.ShouldAdmit(ok))
}
