package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var scorePrinter = message.NewPrinter(language.English)

// FormatScore renders a score with digit grouping, e.g. 12,345.
func FormatScore(n int) string {
	return scorePrinter.Sprintf("%d", n)
}
