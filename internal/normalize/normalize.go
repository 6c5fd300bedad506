// Package normalize joins the independent upstream result sets (events,
// skills, rankings, awards) into event-scoped summaries. It is a pure
// transformation: no I/O, no retained state, the same pages always
// produce the same output.
package normalize

import "github.com/jayala/vex-stats-service/internal/domain"

// DateIndex maps event id to the start date from the events page. The
// events page is the canonical source of truth for dates; embedded
// event payloads on skills, rankings and awards are sometimes stale or
// missing.
type DateIndex map[int]string

// NewDateIndex builds the event id -> start date lookup.
func NewDateIndex(events []domain.EventRef) DateIndex {
	idx := make(DateIndex, len(events))
	for _, ev := range events {
		idx[ev.ID] = ev.Start
	}
	return idx
}

// Summaries joins all four pages on event id. Skills and rankings whose
// event id is missing are dropped: they are intrinsically event-scoped.
// Awards with a missing event are excluded here too; ResolveAwards keeps
// them alive for display under the Unknown Event label.
func Summaries(
	events []domain.EventRef,
	skills []domain.SkillRun,
	rankings []domain.RankingRecord,
	awards []domain.AwardRecord,
) map[int]domain.EventSummary {
	dates := NewDateIndex(events)
	out := make(map[int]domain.EventSummary, len(events))

	ensure := func(eventID int, name string) domain.EventSummary {
		s, ok := out[eventID]
		if !ok {
			s = domain.EventSummary{EventID: eventID}
		}
		if s.EventName == "" && name != "" {
			s.EventName = name
		}
		if s.Start == "" {
			s.Start = dates[eventID]
		}
		return s
	}

	for _, ev := range events {
		out[ev.ID] = ensure(ev.ID, ev.Name)
	}

	for eventID, runs := range groupRunsByEvent(skills) {
		s := ensure(eventID, runs[0].EventName)
		s.Skills = bestByType(runs)
		out[eventID] = s
	}

	for _, rec := range rankings {
		if rec.EventID == 0 {
			continue
		}
		s := ensure(rec.EventID, "")
		if s.Ranking == nil {
			r := rec
			s.Ranking = &r
		}
		out[rec.EventID] = s
	}

	for _, aw := range awards {
		if !aw.HasEvent || aw.EventID == 0 {
			continue
		}
		s := ensure(aw.EventID, aw.EventName)
		s.Awards = append(s.Awards, aw)
		out[aw.EventID] = s
	}

	return out
}

// ResolveAwards fills each award's event name and date from the events
// page, falling back to the Unknown Event label when the reference is
// missing. Input order is preserved.
func ResolveAwards(events []domain.EventRef, awards []domain.AwardRecord) []domain.AwardRecord {
	dates := NewDateIndex(events)
	out := make([]domain.AwardRecord, 0, len(awards))
	for _, aw := range awards {
		if !aw.HasEvent {
			aw.EventName = domain.UnknownEventName
			aw.EventStart = ""
			out = append(out, aw)
			continue
		}
		if start, ok := dates[aw.EventID]; ok {
			aw.EventStart = start
		}
		if aw.EventName == "" {
			aw.EventName = domain.UnknownEventName
		}
		out = append(out, aw)
	}
	return out
}

func groupRunsByEvent(skills []domain.SkillRun) map[int][]domain.SkillRun {
	grouped := make(map[int][]domain.SkillRun)
	for _, run := range skills {
		if run.EventID == 0 {
			continue
		}
		grouped[run.EventID] = append(grouped[run.EventID], run)
	}
	return grouped
}

// bestByType reduces a group of runs to the best driver score, the best
// programming score, and the rank of the highest-scoring run overall.
// Duplicate runs per type resolve to the max score, first seen on ties.
func bestByType(runs []domain.SkillRun) domain.BestRun {
	var best domain.BestRun
	topScore := -1
	for _, run := range runs {
		switch run.Type {
		case domain.SkillDriver:
			if run.Score > best.Driver {
				best.Driver = run.Score
			}
		case domain.SkillProgramming:
			if run.Score > best.Programming {
				best.Programming = run.Score
			}
		}
		if run.Score > topScore {
			topScore = run.Score
			best.Rank = run.Rank
		}
	}
	best.Total = best.Driver + best.Programming
	return best
}
