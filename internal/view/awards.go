package view

import (
	"github.com/jayala/vex-stats-service/internal/aggregate"
	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/normalize"
	"github.com/jayala/vex-stats-service/internal/timeutil"
)

// AwardRow is one display-ready award entry.
type AwardRow struct {
	Title       string `json:"title"`
	EventName   string `json:"event_name"`
	DisplayDate string `json:"display_date"`
	SeasonLabel string `json:"season_label"`

	// SortableDate keeps the raw ISO string the row was ordered by;
	// clients re-sorting locally use it instead of re-parsing the
	// display form.
	SortableDate string `json:"sortable_date"`
}

// AwardRows builds display rows from resolved awards: cleaned titles,
// MM/DD/YY dates, normalized season labels, newest first with undated
// rows trailing.
func AwardRows(awards []domain.AwardRecord) []AwardRow {
	rows := make([]AwardRow, 0, len(awards))
	for _, aw := range awards {
		rows = append(rows, AwardRow{
			Title:        aggregate.CleanTitle(aw.Title),
			EventName:    aw.EventName,
			DisplayDate:  timeutil.FormatDisplayDate(aw.EventStart),
			SeasonLabel:  normalize.SeasonLabel(aw.SeasonName),
			SortableDate: aw.EventStart,
		})
	}
	SortByDateDesc(rows, func(r AwardRow) string { return r.SortableDate })
	return rows
}

// AwardItems season-groups sorted award rows for rendering.
func AwardItems(rows []AwardRow) []Item[AwardRow] {
	return GroupBySeason(rows, func(r AwardRow) string { return r.SeasonLabel })
}
