package metrics

import (
	"testing"

	"taskly/model"
)

func TestDifficultyDistribution_FixedOrderAndCounts(t *testing.T) {
	tasks := []model.Task{
		{Difficulty: model.DifficultyHigh},
		{Difficulty: model.DifficultyLow},
		{Difficulty: model.DifficultyHigh},
		{Difficulty: model.DifficultyMedium},
		{Difficulty: model.DifficultyHigh},
	}

	points := DifficultyDistribution(tasks)

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	wantNames := []string{"Low", "Medium", "High"}
	wantValues := []int{1, 1, 3}
	total := 0
	for i, p := range points {
		if p.Name != wantNames[i] {
			t.Errorf("point %d: expected name %q, got %q", i, wantNames[i], p.Name)
		}
		if p.Value != wantValues[i] {
			t.Errorf("point %d: expected value %d, got %d", i, wantValues[i], p.Value)
		}
		total += p.Value
	}
	if total != len(tasks) {
		t.Errorf("counts sum to %d, expected %d", total, len(tasks))
	}
}

func TestDifficultyDistribution_EmptyInputYieldsZeros(t *testing.T) {
	points := DifficultyDistribution(nil)

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Value != 0 {
			t.Errorf("expected zero count for %s, got %d", p.Name, p.Value)
		}
	}
}
