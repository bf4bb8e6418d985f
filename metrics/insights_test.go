package metrics

import (
	"testing"
	"time"

	"taskly/model"
)

// 2025-07-16 is a Wednesday.
var insightsNow = time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)

func TestMonthlyInsights_EmptyInputOmitsEverything(t *testing.T) {
	out := MonthlyInsights(nil, insightsNow)

	if out.TopSkill != nil || out.GrowingSkill != nil || out.MostProductiveDay != nil || out.DurationTrend != nil {
		t.Errorf("expected all insights omitted, got %+v", out)
	}
}

func TestMonthlyInsights_FiltersToLastMonth(t *testing.T) {
	tasks := []model.Task{
		{DateCompleted: "2025-05-01", SkillsAcquired: "Old", DurationMinutes: 60},
		{DateCompleted: "2025-07-10", SkillsAcquired: "Fresh", DurationMinutes: 60},
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.TopSkill == nil || out.TopSkill.Name != "Fresh" {
		t.Fatalf("expected top skill Fresh from the monthly subset, got %+v", out.TopSkill)
	}
	if out.TopSkill.Count != 1 {
		t.Errorf("expected count 1, got %d", out.TopSkill.Count)
	}
}

func TestMonthlyInsights_TopSkillByCount(t *testing.T) {
	tasks := []model.Task{
		{DateCompleted: "2025-07-10", SkillsAcquired: "Go, SQL"},
		{DateCompleted: "2025-07-11", SkillsAcquired: "Go"},
		{DateCompleted: "2025-07-12", SkillsAcquired: "SQL, Go"},
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.TopSkill == nil || out.TopSkill.Name != "Go" || out.TopSkill.Count != 3 {
		t.Errorf("expected Go x3, got %+v", out.TopSkill)
	}
}

func TestMonthlyInsights_GrowingSkillByLatestOccurrence(t *testing.T) {
	tasks := []model.Task{
		{DateCompleted: "2025-07-01", SkillsAcquired: "Go"},
		{DateCompleted: "2025-07-02", SkillsAcquired: "Go"},
		{DateCompleted: "2025-07-15", SkillsAcquired: "Rust"},
	}

	out := MonthlyInsights(tasks, insightsNow)

	// Go is more frequent but Rust occurred most recently.
	if out.GrowingSkill == nil || *out.GrowingSkill != "Rust" {
		t.Errorf("expected growing skill Rust, got %+v", out.GrowingSkill)
	}
}

func TestMonthlyInsights_NoSkillsOmitsSkillInsights(t *testing.T) {
	tasks := []model.Task{
		{DateCompleted: "2025-07-10", SkillsAcquired: " , ", DurationMinutes: 30},
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.TopSkill != nil || out.GrowingSkill != nil {
		t.Errorf("expected skill insights omitted, got top=%+v growing=%+v", out.TopSkill, out.GrowingSkill)
	}
	if out.MostProductiveDay == nil {
		t.Error("expected most productive day to still be computed")
	}
}

func TestMonthlyInsights_MostProductiveDayByDurationNotCount(t *testing.T) {
	tasks := []model.Task{
		// Monday: two tasks, 60 minutes total
		{DateCompleted: "2025-07-14", DurationMinutes: 30},
		{DateCompleted: "2025-07-14", DurationMinutes: 30},
		// Tuesday: one task, 120 minutes
		{DateCompleted: "2025-07-15", DurationMinutes: 120},
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.MostProductiveDay == nil {
		t.Fatal("expected a most productive day")
	}
	if out.MostProductiveDay.Weekday != "Tuesday" {
		t.Errorf("expected Tuesday (most minutes), got %s", out.MostProductiveDay.Weekday)
	}
	if out.MostProductiveDay.TaskCount != 1 {
		t.Errorf("expected task count 1 for Tuesday, got %d", out.MostProductiveDay.TaskCount)
	}
}

func TestMonthlyInsights_DurationTrendSurfacedWhenAboveThreshold(t *testing.T) {
	tasks := []model.Task{
		{DateCompleted: "2025-06-20", DurationMinutes: 10},
		{DateCompleted: "2025-06-21", DurationMinutes: 10},
		{DateCompleted: "2025-07-01", DurationMinutes: 30},
		{DateCompleted: "2025-07-02", DurationMinutes: 30},
		{DateCompleted: "2025-07-03", DurationMinutes: 30},
		{DateCompleted: "2025-07-04", DurationMinutes: 30},
		{DateCompleted: "2025-07-05", DurationMinutes: 30},
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.DurationTrend == nil {
		t.Fatal("expected duration trend to be surfaced")
	}
	// recent 5 average 30, older 2 average 10
	if *out.DurationTrend != 20 {
		t.Errorf("expected trend +20, got %v", *out.DurationTrend)
	}
}

func TestMonthlyInsights_DurationTrendSuppressedWithinThreshold(t *testing.T) {
	var tasks []model.Task
	for day := 1; day <= 8; day++ {
		tasks = append(tasks, model.Task{
			DateCompleted:   time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout),
			DurationMinutes: 30,
		})
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.DurationTrend != nil {
		t.Errorf("expected trend omitted when |trend| <= 5, got %v", *out.DurationTrend)
	}
}

func TestMonthlyInsights_DurationTrendIgnoresInputOrder(t *testing.T) {
	tasks := []model.Task{
		// Most recent first, as the task query returns them.
		{DateCompleted: "2025-07-05", DurationMinutes: 30},
		{DateCompleted: "2025-07-04", DurationMinutes: 30},
		{DateCompleted: "2025-07-03", DurationMinutes: 30},
		{DateCompleted: "2025-07-02", DurationMinutes: 30},
		{DateCompleted: "2025-07-01", DurationMinutes: 30},
		{DateCompleted: "2025-06-21", DurationMinutes: 10},
		{DateCompleted: "2025-06-20", DurationMinutes: 10},
	}

	out := MonthlyInsights(tasks, insightsNow)

	if out.DurationTrend == nil || *out.DurationTrend != 20 {
		t.Errorf("expected trend +20 regardless of input order, got %+v", out.DurationTrend)
	}
}
