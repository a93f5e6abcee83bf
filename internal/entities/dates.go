package entities

import (
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// ExtractDates returns every date and duration mention. Results are grouped
// by pattern: all matches of the first pattern in document order, then the
// second, and so on. Context is the match plus the library's context window
// on each side, clipped to the text.
func ExtractDates(lib *patterns.Library, text string) []models.DateMention {
	dates := []models.DateMention{}
	if strings.TrimSpace(text) == "" {
		return dates
	}
	window := lib.Limits.DateContextWindow
	runes := utils.NewRuneIndex(text)
	for _, re := range lib.DateRegexps() {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			dates = append(dates, models.DateMention{
				Date:     text[loc[0]:loc[1]],
				Context:  utils.ContextWindow(text, loc[0], loc[1], window),
				Position: runes.Offset(loc[0]),
			})
		}
	}
	return dates
}
