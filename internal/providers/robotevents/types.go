package robotevents

// Upstream response DTOs. Every list endpoint wraps its data in the
// same paginated envelope.

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

type pagedResponse[T any] struct {
	Data []T      `json:"data"`
	Meta pageMeta `json:"meta"`
}

type teamData struct {
	ID           int          `json:"id"`
	Number       string       `json:"number"`
	TeamName     string       `json:"team_name"`
	Organization string       `json:"organization"`
	Location     locationData `json:"location"`
	Program      programData  `json:"program"`
}

type locationData struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type programData struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type seasonData struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type eventData struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
}

// eventRef is the embedded event payload on skills, rankings and award
// records. It is nullable and its date is sometimes stale; the events
// page stays canonical for dates.
type eventRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
}

type seasonRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type skillData struct {
	Rank     int        `json:"rank"`
	Score    int        `json:"score"`
	Attempts int        `json:"attempts"`
	Type     string     `json:"type"`
	Event    *eventRef  `json:"event"`
	Season   *seasonRef `json:"season"`
}

type rankingData struct {
	Rank   int       `json:"rank"`
	Wins   int       `json:"wins"`
	Losses int       `json:"losses"`
	Ties   int       `json:"ties"`
	Event  *eventRef `json:"event"`
}

type awardData struct {
	Title  string     `json:"title"`
	Event  *eventRef  `json:"event"`
	Season *seasonRef `json:"season"`
}
