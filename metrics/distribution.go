package metrics

import "taskly/model"

// DifficultyDistribution counts tasks per difficulty level, always in
// the fixed order Low, Medium, High. An empty task list yields zeros.
func DifficultyDistribution(tasks []model.Task) []ChartPoint {
	levels := []model.Difficulty{model.DifficultyLow, model.DifficultyMedium, model.DifficultyHigh}

	points := make([]ChartPoint, len(levels))
	for i, level := range levels {
		points[i] = ChartPoint{Name: string(level)}
	}
	for _, t := range tasks {
		for i, level := range levels {
			if t.Difficulty == level {
				points[i].Value++
			}
		}
	}
	return points
}
