package metrics

import (
	"math"
	"sort"
	"time"

	"taskly/model"
)

// A duration trend smaller than this (in minutes) is noise and is not
// surfaced.
const trendThresholdMinutes = 5.0

// MonthlyInsights summarizes the tasks completed in the month before
// now. Insights whose underlying data is empty are omitted.
func MonthlyInsights(tasks []model.Task, now time.Time) Insights {
	cutoff := now.AddDate(0, -1, 0).Format(model.DateLayout)

	var monthly []model.Task
	for _, t := range tasks {
		if t.DateCompleted != "" && t.DateCompleted >= cutoff {
			monthly = append(monthly, t)
		}
	}

	var out Insights
	if len(monthly) == 0 {
		return out
	}

	out.TopSkill = topSkill(monthly)
	out.GrowingSkill = growingSkill(monthly)
	out.MostProductiveDay = mostProductiveDay(monthly)
	out.DurationTrend = durationTrend(monthly)
	return out
}

func topSkill(tasks []model.Task) *SkillCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range tasks {
		for _, skill := range splitSkills(t.SkillsAcquired) {
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, name := range order[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return &SkillCount{Name: best, Count: counts[best]}
}

// growingSkill is the skill whose most recent occurrence is latest.
// Ties keep the first-encountered skill in task-list order.
func growingSkill(tasks []model.Task) *string {
	latest := make(map[string]string)
	var order []string
	for _, t := range tasks {
		for _, skill := range splitSkills(t.SkillsAcquired) {
			if _, seen := latest[skill]; !seen {
				order = append(order, skill)
			}
			if t.DateCompleted > latest[skill] {
				latest[skill] = t.DateCompleted
			}
		}
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, name := range order[1:] {
		if latest[name] > latest[best] {
			best = name
		}
	}
	return &best
}

// mostProductiveDay picks the weekday with the greatest total duration,
// not the greatest task count. Tasks with unparseable completion dates
// are skipped.
func mostProductiveDay(tasks []model.Task) *ProductiveDay {
	type bucket struct {
		count   int
		minutes int
	}
	buckets := make(map[string]*bucket)
	var order []string
	for _, t := range tasks {
		day, err := time.Parse(model.DateLayout, t.DateCompleted)
		if err != nil {
			continue
		}
		name := day.Weekday().String()
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
			order = append(order, name)
		}
		b.count++
		b.minutes += t.DurationMinutes
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, name := range order[1:] {
		if buckets[name].minutes > buckets[best].minutes {
			best = name
		}
	}
	return &ProductiveDay{Weekday: best, TaskCount: buckets[best].count}
}

// durationTrend compares the five most recently completed tasks against
// everything before them. Positive means tasks are taking longer. The
// monthly subset is stable-sorted by completion date so the "recent
// five" is deterministic regardless of input order.
func durationTrend(tasks []model.Task) *float64 {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateCompleted < sorted[j].DateCompleted
	})

	split := len(sorted) - 5
	if split < 0 {
		split = 0
	}
	recent := sorted[split:]
	older := sorted[:split]

	recentSum := 0
	for _, t := range recent {
		recentSum += t.DurationMinutes
	}
	olderSum := 0
	for _, t := range older {
		olderSum += t.DurationMinutes
	}

	recentAvg := float64(recentSum) / float64(len(recent))
	olderDenom := len(sorted) - 5
	if olderDenom < 1 {
		olderDenom = 1
	}
	olderAvg := float64(olderSum) / float64(olderDenom)

	trend := recentAvg - olderAvg
	if math.Abs(trend) <= trendThresholdMinutes {
		return nil
	}
	return &trend
}
