package services

import (
	"testing"

	"taskly/model"
)

func TestFilterTasks_SearchMatchesTitleOrSkills(t *testing.T) {
	tasks := []model.Task{
		{Title: "Build REST API", SkillsAcquired: "Go, Gin"},
		{Title: "Read SQL book", SkillsAcquired: "SQL"},
		{Title: "Practice interviews", SkillsAcquired: "go, communication"},
	}

	got := FilterTasks(tasks, "go", "")

	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "go", len(got))
	}
	if got[0].Title != "Build REST API" || got[1].Title != "Practice interviews" {
		t.Errorf("unexpected matches: %v, %v", got[0].Title, got[1].Title)
	}
}

func TestFilterTasks_DifficultyIsExact(t *testing.T) {
	tasks := []model.Task{
		{Title: "a", Difficulty: model.DifficultyLow},
		{Title: "b", Difficulty: model.DifficultyHigh},
		{Title: "c", Difficulty: model.DifficultyHigh},
	}

	got := FilterTasks(tasks, "", model.DifficultyHigh)

	if len(got) != 2 {
		t.Fatalf("expected 2 High tasks, got %d", len(got))
	}
}

func TestFilterTasks_EmptyFiltersPassThrough(t *testing.T) {
	tasks := []model.Task{{Title: "a"}, {Title: "b"}}

	got := FilterTasks(tasks, "", "")

	if len(got) != len(tasks) {
		t.Errorf("expected passthrough, got %d of %d", len(got), len(tasks))
	}
}

func TestFilterTasks_CombinedFilters(t *testing.T) {
	tasks := []model.Task{
		{Title: "Go basics", Difficulty: model.DifficultyLow},
		{Title: "Go concurrency", Difficulty: model.DifficultyHigh},
		{Title: "SQL joins", Difficulty: model.DifficultyHigh},
	}

	got := FilterTasks(tasks, "go", model.DifficultyHigh)

	if len(got) != 1 || got[0].Title != "Go concurrency" {
		t.Errorf("expected only 'Go concurrency', got %v", got)
	}
}
