package model

import (
	"time"
)

// DateLayout is the storage format for all day-granularity date fields.
// ISO dates compare correctly as plain strings, which the aggregation
// code relies on.
const DateLayout = "2006-01-02"

type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not Started"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

type Task struct {
	TaskID          string     `firestore:"taskid,omitempty"`
	DashboardID     string     `firestore:"dashboardid,omitempty"`
	Title           string     `firestore:"title,omitempty"`
	Description     string     `firestore:"description,omitempty"`
	StartDate       string     `firestore:"startdate,omitempty"`
	EndDate         string     `firestore:"enddate,omitempty"`
	DateCompleted   string     `firestore:"datecompleted,omitempty"`
	DurationMinutes int        `firestore:"durationminutes"`
	Difficulty      Difficulty `firestore:"difficulty,omitempty"`
	Status          TaskStatus `firestore:"status,omitempty"`
	SkillsAcquired  string     `firestore:"skillsacquired,omitempty"` // comma-separated skill names
	KeyChallenges   string     `firestore:"keychallenges,omitempty"`
	KeyTakeaways    string     `firestore:"keytakeaways,omitempty"`
	CreatedBy       string     `firestore:"createdby,omitempty"`
	UpdatedAt       time.Time  `firestore:"updatedat,omitempty"`
}
