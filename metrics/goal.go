package metrics

import (
	"time"

	"taskly/model"
)

// EvaluateGoal recomputes a goal's current value from the owner's task
// list. The second return reports whether the value changed and a
// persistence write is warranted. Unchanged values must not be written
// back: every goal write fires a realtime change notification, and the
// changed-value guard is what keeps that cycle from looping forever.
//
// Only active weekly goals are evaluated; everything else is returned
// untouched with no write.
func EvaluateGoal(goal model.Goal, tasks []model.Task, now time.Time) (int, bool) {
	today := now.Format(model.DateLayout)
	if goal.Period != model.PeriodWeekly || goal.EndDate < today {
		return goal.CurrentValue, false
	}

	var inWindow []model.Task
	for _, t := range tasks {
		if t.DateCompleted == "" {
			continue
		}
		if t.DateCompleted >= goal.StartDate && t.DateCompleted <= goal.EndDate {
			inWindow = append(inWindow, t)
		}
	}

	var value int
	switch goal.Category {
	case model.CategoryTasks:
		value = len(inWindow)
	case model.CategoryHours:
		minutes := 0
		for _, t := range inWindow {
			minutes += t.DurationMinutes
		}
		value = minutes / 60 // whole hours, truncated
	case model.CategorySkills:
		distinct := make(map[string]struct{})
		for _, t := range inWindow {
			for _, skill := range splitSkills(t.SkillsAcquired) {
				distinct[skill] = struct{}{}
			}
		}
		value = len(distinct)
	default:
		// Unknown categories never progress.
		return goal.CurrentValue, false
	}

	return value, value != goal.CurrentValue
}

// ProgressPercent clamps at 100 even when the current value overshoots
// the target.
func ProgressPercent(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	pct := float64(current) / float64(target) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
