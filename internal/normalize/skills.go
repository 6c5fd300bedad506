package normalize

import "github.com/jayala/vex-stats-service/internal/domain"

// SkillRow is one merged row of the skills history view: the best driver
// and programming scores a team posted at one event within one season.
type SkillRow struct {
	EventName   string `json:"event_name"`
	SeasonName  string `json:"season_name"`
	SeasonLabel string `json:"season_label"`
	Driver      int    `json:"driver"`
	Programming int    `json:"programming"`
	Total       int    `json:"total"`
	Rank        int    `json:"rank"`
}

type rowKey struct {
	event  string
	season string
}

// SkillRows merges skill runs into history rows. The merge key is the
// (event name, season name) string pair from the embedded payloads, not
// the event id. Event ids have been observed to repeat or disagree
// across season boundaries in the upstream data, so the history view
// keys on names even though every other join in the app keys on ids.
// Two runs land in the same row iff both strings match exactly.
//
// Row order follows first appearance in the input; per row, duplicate
// runs per type resolve to the max score (first seen wins ties) and the
// rank comes from the highest-scoring run in the row.
func SkillRows(skills []domain.SkillRun) []SkillRow {
	order := make([]rowKey, 0, len(skills))
	grouped := make(map[rowKey][]domain.SkillRun, len(skills))

	for _, run := range skills {
		key := rowKey{event: run.EventName, season: run.SeasonName}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], run)
	}

	rows := make([]SkillRow, 0, len(order))
	for _, key := range order {
		best := bestByType(grouped[key])
		rows = append(rows, SkillRow{
			EventName:   key.event,
			SeasonName:  key.season,
			SeasonLabel: SeasonLabel(key.season),
			Driver:      best.Driver,
			Programming: best.Programming,
			Total:       best.Total,
			Rank:        best.Rank,
		})
	}
	return rows
}
