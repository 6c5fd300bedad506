package view

// GroupBySeason partitions an already-ordered row sequence into
// contiguous runs sharing a season label, emitting a header before each
// run. Contiguity is positional: a label that reappears later in the
// sequence starts a fresh block rather than rejoining the earlier one,
// so the rendered list always follows input order.
func GroupBySeason[R any](rows []R, label func(R) string) []Item[R] {
	items := make([]Item[R], 0, len(rows))
	current := ""
	started := false
	for _, row := range rows {
		l := label(row)
		if !started || l != current {
			items = append(items, HeaderItem[R](l))
			current = l
			started = true
		}
		items = append(items, RowItem(row))
	}
	return items
}
