package metrics

import (
	"math"
	"time"

	"taskly/model"
)

// TimeSeries sums completed-task duration per calendar day over the
// last windowDays days (today included), oldest first. Matching is
// exact date-string equality on date_completed. Hours carry one
// decimal place; days without tasks are 0.
func TimeSeries(tasks []model.Task, windowDays int, now time.Time) []SeriesPoint {
	if windowDays < 0 {
		windowDays = 0
	}

	points := make([]SeriesPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(model.DateLayout)
		minutes := 0
		for _, t := range tasks {
			if t.DateCompleted == day {
				minutes += t.DurationMinutes
			}
		}
		points = append(points, SeriesPoint{
			Date:  day,
			Hours: math.Round(float64(minutes)/60*10) / 10,
		})
	}
	return points
}
