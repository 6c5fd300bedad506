package view

import "sort"

// SortByDateDesc stable-sorts rows newest first by their raw ISO-8601
// date string. Lexicographic comparison of ISO-8601 text orders
// chronologically, so no parsing happens here. Rows with an empty date
// always land after every dated row.
func SortByDateDesc[R any](rows []R, date func(R) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := date(rows[i]), date(rows[j])
		if di == "" {
			return false
		}
		if dj == "" {
			return true
		}
		return di > dj
	})
}
