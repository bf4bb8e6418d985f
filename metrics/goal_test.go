package metrics

import (
	"testing"
	"time"

	"taskly/model"
)

// 2025-07-16 is a Wednesday; the surrounding week is 07-14..07-20.
var goalNow = time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)

func weeklyGoal(category model.GoalCategory, target, current int) model.Goal {
	return model.Goal{
		GoalID:       "g1",
		Category:     category,
		Period:       model.PeriodWeekly,
		TargetValue:  target,
		CurrentValue: current,
		StartDate:    "2025-07-14",
		EndDate:      "2025-07-20",
	}
}

func TestEvaluateGoal_TasksCategoryCountsInWindow(t *testing.T) {
	goal := weeklyGoal(model.CategoryTasks, 5, 0)
	tasks := []model.Task{
		{DateCompleted: "2025-07-14"},
		{DateCompleted: "2025-07-15"},
		{DateCompleted: "2025-07-16"},
		{DateCompleted: "2025-07-17"},
		{DateCompleted: "2025-07-18"},
		{DateCompleted: "2025-07-20"}, // inclusive boundary
		{DateCompleted: "2025-07-07"}, // last week
		{DateCompleted: "2025-07-08"}, // last week
	}

	value, write := EvaluateGoal(goal, tasks, goalNow)

	if value != 6 {
		t.Errorf("expected 6 in-window tasks, got %d", value)
	}
	if !write {
		t.Error("expected a persistence write for the changed value")
	}
	if pct := ProgressPercent(value, goal.TargetValue); pct != 100 {
		t.Errorf("expected progress clamped to 100, got %v", pct)
	}
}

func TestEvaluateGoal_HoursCategoryTruncates(t *testing.T) {
	goal := weeklyGoal(model.CategoryHours, 10, 0)
	tasks := []model.Task{
		{DateCompleted: "2025-07-15", DurationMinutes: 65},
		{DateCompleted: "2025-07-16", DurationMinutes: 60},
	}

	value, write := EvaluateGoal(goal, tasks, goalNow)

	// 125 minutes floors to 2 hours.
	if value != 2 {
		t.Errorf("expected 2 hours, got %d", value)
	}
	if !write {
		t.Error("expected a persistence write")
	}
}

func TestEvaluateGoal_SkillsCategoryCountsDistinctTokens(t *testing.T) {
	goal := weeklyGoal(model.CategorySkills, 5, 0)
	tasks := []model.Task{
		{DateCompleted: "2025-07-15", SkillsAcquired: "A,B"},
		{DateCompleted: "2025-07-16", SkillsAcquired: "B,C"},
	}

	value, _ := EvaluateGoal(goal, tasks, goalNow)

	if value != 3 {
		t.Errorf("expected 3 distinct skills (A, B, C), got %d", value)
	}
}

func TestEvaluateGoal_NoWriteWhenValueUnchanged(t *testing.T) {
	goal := weeklyGoal(model.CategoryTasks, 5, 0)
	tasks := []model.Task{
		{DateCompleted: "2025-07-15"},
		{DateCompleted: "2025-07-16"},
	}

	value, write := EvaluateGoal(goal, tasks, goalNow)
	if value != 2 || !write {
		t.Fatalf("first evaluation: expected (2, true), got (%d, %v)", value, write)
	}

	// Evaluating again with the persisted value and the same task list
	// must be a no-op, otherwise the realtime cycle never settles.
	goal.CurrentValue = value
	value, write = EvaluateGoal(goal, tasks, goalNow)
	if value != 2 || write {
		t.Errorf("second evaluation: expected (2, false), got (%d, %v)", value, write)
	}
}

func TestEvaluateGoal_SkipsNonWeeklyAndExpiredGoals(t *testing.T) {
	tasks := []model.Task{{DateCompleted: "2025-07-15"}}

	daily := weeklyGoal(model.CategoryTasks, 5, 1)
	daily.Period = model.PeriodDaily
	if value, write := EvaluateGoal(daily, tasks, goalNow); value != 1 || write {
		t.Errorf("daily goal: expected untouched (1, false), got (%d, %v)", value, write)
	}

	expired := weeklyGoal(model.CategoryTasks, 5, 1)
	expired.StartDate = "2025-07-07"
	expired.EndDate = "2025-07-13"
	if value, write := EvaluateGoal(expired, tasks, goalNow); value != 1 || write {
		t.Errorf("expired goal: expected untouched (1, false), got (%d, %v)", value, write)
	}
}

func TestEvaluateGoal_UnknownCategoryIsNoOp(t *testing.T) {
	goal := weeklyGoal(model.GoalCategory("streak"), 5, 3)
	tasks := []model.Task{{DateCompleted: "2025-07-15"}}

	value, write := EvaluateGoal(goal, tasks, goalNow)

	if value != 3 || write {
		t.Errorf("unknown category: expected untouched (3, false), got (%d, %v)", value, write)
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		name            string
		current, target int
		want            float64
	}{
		{"partial", 3, 10, 30},
		{"exact", 10, 10, 100},
		{"overshoot clamps", 15, 10, 100},
		{"zero target", 5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProgressPercent(tc.current, tc.target); got != tc.want {
				t.Errorf("ProgressPercent(%d, %d) = %v, expected %v", tc.current, tc.target, got, tc.want)
			}
		})
	}
}
