// Package aggregate computes the derived per-event and per-season
// figures the screens show: best skills run, award counts by title, and
// the next upcoming event countdown.
package aggregate

import "github.com/jayala/vex-stats-service/internal/domain"

// BestRun picks the candidate with the highest total score. Ties go to
// the earliest candidate in input order. Returns false when no
// candidate has a total above zero, which renders as "no skills runs".
func BestRun(candidates []domain.BestRun) (domain.BestRun, bool) {
	var best domain.BestRun
	found := false
	for _, c := range candidates {
		if c.Total > best.Total {
			best = c
			found = true
		}
	}
	return best, found
}

// EventBestRuns reduces skill runs to one best-run candidate per event
// id, ordered by each event's first appearance in the input. The
// dashboard scopes its season best this way (by id, unlike the history
// view's name-keyed rows).
func EventBestRuns(skills []domain.SkillRun) []domain.BestRun {
	order := make([]int, 0, len(skills))
	grouped := make(map[int][]domain.SkillRun, len(skills))
	for _, run := range skills {
		if run.EventID == 0 {
			continue
		}
		if _, seen := grouped[run.EventID]; !seen {
			order = append(order, run.EventID)
		}
		grouped[run.EventID] = append(grouped[run.EventID], run)
	}

	out := make([]domain.BestRun, 0, len(order))
	for _, id := range order {
		out = append(out, reduceRuns(grouped[id]))
	}
	return out
}

func reduceRuns(runs []domain.SkillRun) domain.BestRun {
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
