package metrics

import (
	"sort"

	"taskly/model"
)

// SkillFrequency counts skill occurrences across all tasks and returns
// the topN most frequent, descending. Ties keep first-encountered order
// in task-list order (the sort is stable over insertion order).
func SkillFrequency(tasks []model.Task, topN int) []ChartPoint {
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

	points := make([]ChartPoint, 0, len(order))
	for _, name := range order {
		points = append(points, ChartPoint{Name: name, Value: counts[name]})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})

	if topN > 0 && len(points) > topN {
		points = points[:topN]
	}
	return points
}
