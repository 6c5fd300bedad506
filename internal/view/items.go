// Package view turns aggregated records into ordered, season-grouped,
// display-ready models for rendering clients.
package view

// ItemKind tags a list item as a season header or a data row.
type ItemKind string

const (
	KindHeader ItemKind = "header"
	KindRow    ItemKind = "row"
)

// Item is one entry in a rendered list: either a season header or a
// row. A tagged union beats dynamic dispatch at render time; clients
// switch on Kind.
type Item[R any] struct {
	Kind   ItemKind `json:"kind"`
	Header string   `json:"header,omitempty"`
	Row    *R       `json:"row,omitempty"`
}

// HeaderItem builds a season header entry.
func HeaderItem[R any](label string) Item[R] {
	return Item[R]{Kind: KindHeader, Header: label}
}

// RowItem builds a data row entry.
func RowItem[R any](row R) Item[R] {
	return Item[R]{Kind: KindRow, Row: &row}
}
