// Package domain holds the value records shared across the pipeline.
// Everything here is immutable data; derived records are recomputed on
// every fetch and never persisted.
package domain

// Team identifies a competition team as returned by the upstream API.
type Team struct {
	ID           int      `json:"id"`
	Number       string   `json:"number"`
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Location     Location `json:"location"`
	Program      Program  `json:"program"`
}

// Location is the team's registered home location.
type Location struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Program is the competition program a team competes in (V5RC, VURC, ...).
type Program struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Season is a yearly competition cycle.
type Season struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EventRef is a (possibly partial) reference to a competition event.
// Name may be empty and Start may be missing entirely; the events page
// is the canonical source for start dates.
type EventRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Start string `json:"start,omitempty"`
}

// SkillType distinguishes the two skills disciplines.
type SkillType string

const (
	SkillDriver      SkillType = "driver"
	SkillProgramming SkillType = "programming"
	SkillUnknown     SkillType = "unknown"
)

// SkillRun is a single scored skills attempt at an event.
// Rank 0 means unranked.
type SkillRun struct {
	EventID    int       `json:"event_id"`
	EventName  string    `json:"event_name"`
	EventStart string    `json:"event_start,omitempty"`
	SeasonID   int       `json:"season_id"`
	SeasonName string    `json:"season_name"`
	Type       SkillType `json:"type"`
	Score      int       `json:"score"`
	Rank       int       `json:"rank"`
	Attempts   int       `json:"attempts"`
}

// RankingRecord is a team's qualification ranking at one event.
type RankingRecord struct {
	EventID int `json:"event_id"`
	Rank    int `json:"rank"`
	Wins    int `json:"wins"`
	Losses  int `json:"losses"`
	Ties    int `json:"ties"`
}

// AwardRecord is an award won by the team. The event reference may be
// absent; awards tolerate a missing event, skills and rankings do not.
type AwardRecord struct {
	Title      string `json:"title"`
	EventID    int    `json:"event_id"`
	EventName  string `json:"event_name,omitempty"`
	EventStart string `json:"event_start,omitempty"`
	SeasonName string `json:"season_name,omitempty"`
	HasEvent   bool   `json:"has_event"`
}

// BestRun is the best combined skills result within a scope.
type BestRun struct {
	Driver      int `json:"driver"`
	Programming int `json:"programming"`
	Total       int `json:"total"`
	Rank        int `json:"rank"`
}

// EventSummary is the event-scoped record produced by joining the
// independent result sets on event identity.
type EventSummary struct {
	EventID   int            `json:"event_id"`
	EventName string         `json:"event_name"`
	Start     string         `json:"start,omitempty"`
	Skills    BestRun        `json:"skills"`
	Ranking   *RankingRecord `json:"ranking,omitempty"`
	Awards    []AwardRecord  `json:"awards,omitempty"`
}

// UnknownEventName labels award rows whose event reference was missing.
const UnknownEventName = "Unknown Event"
