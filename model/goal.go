package model

import "time"

type GoalCategory string

const (
	CategoryTasks  GoalCategory = "tasks"
	CategoryHours  GoalCategory = "hours"
	CategorySkills GoalCategory = "skills"
)

type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "Daily"
	PeriodWeekly  GoalPeriod = "Weekly"
	PeriodMonthly GoalPeriod = "Monthly"
)

type Goal struct {
	GoalID      string       `firestore:"goalid,omitempty"`
	Title       string       `firestore:"title,omitempty"`
	Category    GoalCategory `firestore:"category,omitempty"`
	Period      GoalPeriod   `firestore:"period,omitempty"`
	TargetValue int          `firestore:"targetvalue,omitempty"`
	// CurrentValue is a cache of the last evaluation, never the source
	// of truth. It is recomputed from the task set on every stats fetch.
	CurrentValue int       `firestore:"currentvalue"`
	StartDate    string    `firestore:"startdate,omitempty"`
	EndDate      string    `firestore:"enddate,omitempty"`
	LastUpdated  time.Time `firestore:"lastupdated,omitempty"`
	CreatedBy    string    `firestore:"createdby,omitempty"`
}
