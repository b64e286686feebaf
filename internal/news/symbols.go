package news

import "strings"

// ExtractSymbols returns the subset of universe tickers mentioned in text.
// Matching is surface-level: a symbol counts when it appears space-separated,
// in parentheses, with a leading $, or followed by : or a period. A common
// English word that happens to equal a ticker will false-positive, which is
// accepted.
// Extraction order follows universe order; duplicates are removed.
func ExtractSymbols(text string, universe []string) []string {
	textUpper := strings.ToUpper(text)

	var found []string
	seen := make(map[string]bool)
	for _, symbol := range universe {
		if seen[symbol] {
			continue
		}
		patterns := []string{
			" " + symbol + " ",
			"(" + symbol + ")",
			"$" + symbol,
			symbol + ":",
			symbol + ".",
		}
		for _, p := range patterns {
			if strings.Contains(textUpper, p) {
				found = append(found, symbol)
				seen[symbol] = true
				break
			}
		}
	}
	return found
}
