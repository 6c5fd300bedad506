package view

import "github.com/jayala/vex-stats-service/internal/normalize"

// SkillItems season-groups skills history rows for rendering. Rows
// arrive already ordered (the history screen reverses fetch order, so
// the newest season leads); grouping is purely positional.
func SkillItems(rows []normalize.SkillRow) []Item[normalize.SkillRow] {
	return GroupBySeason(rows, func(r normalize.SkillRow) string { return r.SeasonLabel })
}

// ReverseRows flips row order in place. The upstream skills page lists
// oldest first; the history screen shows newest first.
func ReverseRows[R any](rows []R) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
