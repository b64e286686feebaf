package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testUniverse = []string{"AAPL", "MSFT", "GOOGL", "TSLA", "NVDA", "SPY"}

func TestExtractSymbols(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dollar prefix",
			text: "$TSLA surges after delivery numbers",
			want: []string{"TSLA"},
		},
		{
			name: "parentheses",
			text: "Apple Inc. (AAPL) reports record revenue",
			want: []string{"AAPL"},
		},
		{
			name: "colon suffix",
			text: "MSFT: cloud growth accelerates",
			want: []string{"MSFT"},
		},
		{
			name: "space separated",
			text: "Analysts upgrade NVDA ahead of earnings",
			want: []string{"NVDA"},
		},
		{
			name: "multiple symbols in universe order",
			text: "Chips rally lifts NVDA and $AAPL while (MSFT) lags",
			want: []string{"AAPL", "MSFT", "NVDA"},
		},
		{
			name: "case insensitive",
			text: "traders pile into $tsla calls",
			want: []string{"TSLA"},
		},
		{
			name: "no symbols",
			text: "Broad market drifts sideways in quiet session",
			want: nil,
		},
		{
			name: "symbol embedded in word does not match",
			text: "The SPYGLASS report was released today",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSymbols(tt.text, testUniverse)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSymbolsDeduplicates(t *testing.T) {
	got := ExtractSymbols("$AAPL jumps as AAPL buyback expands (AAPL)", testUniverse)
	assert.Equal(t, []string{"AAPL"}, got)
}
