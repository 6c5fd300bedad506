package aggregate

import (
	"strings"

	"github.com/jayala/vex-stats-service/internal/domain"
)

// TitleCount is one award-count bucket on the dashboard.
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// CleanTitle strips the parenthetical qualifier suffix from an award
// title: everything from the first " (" onward goes, then surrounding
// whitespace. A title that cleans down to nothing keeps its original
// form. Cleaning is idempotent.
func CleanTitle(title string) string {
	cleaned := title
	if idx := strings.Index(cleaned, " ("); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return title
	}
	return cleaned
}

// AwardsByTitle groups awards by cleaned title and counts occurrences.
// Bucket order preserves the first occurrence of each cleaned title in
// the input, not alphabetical order and not count order. Awards from
// different events sharing a cleaned title land in one bucket; that is
// how the dashboard has always counted them.
func AwardsByTitle(awards []domain.AwardRecord) []TitleCount {
	order := make([]string, 0, len(awards))
	counts := make(map[string]int, len(awards))
	for _, aw := range awards {
		title := CleanTitle(aw.Title)
		if _, seen := counts[title]; !seen {
			order = append(order, title)
		}
		counts[title]++
	}

	out := make([]TitleCount, 0, len(order))
	for _, title := range order {
		out = append(out, TitleCount{Title: title, Count: counts[title]})
	}
	return out
}
