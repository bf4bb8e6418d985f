package metrics

import (
	"testing"

	"taskly/model"
)

func TestSkillFrequency_TrimsAndCountsDuplicates(t *testing.T) {
	tasks := []model.Task{
		{SkillsAcquired: "Python, SQL ,  Python"},
	}

	points := SkillFrequency(tasks, 5)

	if len(points) != 2 {
		t.Fatalf("expected 2 skills, got %d: %v", len(points), points)
	}
	if points[0].Name != "Python" || points[0].Value != 2 {
		t.Errorf("expected Python x2 first, got %s x%d", points[0].Name, points[0].Value)
	}
	if points[1].Name != "SQL" || points[1].Value != 1 {
		t.Errorf("expected SQL x1 second, got %s x%d", points[1].Name, points[1].Value)
	}
}

func TestSkillFrequency_DropsEmptyTokensAndKeepsCase(t *testing.T) {
	tasks := []model.Task{
		{SkillsAcquired: " , ,Go"},
		{SkillsAcquired: "go"},
	}

	points := SkillFrequency(tasks, 5)

	if len(points) != 2 {
		t.Fatalf("expected case-sensitive Go and go, got %v", points)
	}
}

func TestSkillFrequency_TruncatesToTopNWithStableTies(t *testing.T) {
	tasks := []model.Task{
		{SkillsAcquired: "A,B,C"},
		{SkillsAcquired: "B,C,D"},
	}

	points := SkillFrequency(tasks, 2)

	if len(points) != 2 {
		t.Fatalf("expected topN=2 entries, got %d", len(points))
	}
	// B and C both appear twice; B was encountered first.
	if points[0].Name != "B" || points[1].Name != "C" {
		t.Errorf("expected [B C] by first-encountered tie order, got [%s %s]", points[0].Name, points[1].Name)
	}
}

func TestSkillFrequency_EmptyInput(t *testing.T) {
	if points := SkillFrequency(nil, 5); len(points) != 0 {
		t.Errorf("expected no points for empty input, got %v", points)
	}
}
