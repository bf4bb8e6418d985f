package dto

import "taskly/metrics"

// Chart payloads are served exactly as the aggregator shapes them; the
// client binds them to pie/bar/line series directly.
type ChartsResponse struct {
	DifficultyDistribution []metrics.ChartPoint  `json:"difficulty_distribution"`
	TopSkills              []metrics.ChartPoint  `json:"top_skills"`
	HoursTimeSeries        []metrics.SeriesPoint `json:"hours_time_series"`
}

type OverviewResponse struct {
	TaskCount int                    `json:"task_count"`
	Goals     []GoalProgressResponse `json:"goals"`
}
