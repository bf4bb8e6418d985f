package dto

import (
	"taskly/metrics"
	"taskly/model"
)

// NewGoalProgressResponse maps a goal into its UI-bindable shape. The
// progress percent is clamped at 100 by the engine.
func NewGoalProgressResponse(g model.Goal) GoalProgressResponse {
	return GoalProgressResponse{
		GoalID:          g.GoalID,
		Title:           g.Title,
		Category:        string(g.Category),
		Period:          string(g.Period),
		TargetValue:     g.TargetValue,
		CurrentValue:    g.CurrentValue,
		ProgressPercent: metrics.ProgressPercent(g.CurrentValue, g.TargetValue),
		StartDate:       g.StartDate,
		EndDate:         g.EndDate,
	}
}
