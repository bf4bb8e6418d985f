package metrics

import (
	"testing"
	"time"

	"taskly/model"
)

func TestTimeSeries_WindowLengthAndOrder(t *testing.T) {
	now := time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)

	points := TimeSeries(nil, 7, now)

	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Date != "2025-07-10" {
		t.Errorf("expected oldest day first (2025-07-10), got %s", points[0].Date)
	}
	if points[6].Date != "2025-07-16" {
		t.Errorf("expected today last (2025-07-16), got %s", points[6].Date)
	}
	for _, p := range points {
		if p.Hours != 0 {
			t.Errorf("expected 0 hours on %s, got %v", p.Date, p.Hours)
		}
	}
}

func TestTimeSeries_SumsAndRoundsToOneDecimal(t *testing.T) {
	now := time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{DateCompleted: "2025-07-16", DurationMinutes: 50},
		{DateCompleted: "2025-07-16", DurationMinutes: 25},
		{DateCompleted: "2025-07-15", DurationMinutes: 90},
		{DateCompleted: "2024-07-16", DurationMinutes: 600}, // outside window
	}

	points := TimeSeries(tasks, 2, now)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Hours != 1.5 {
		t.Errorf("expected 1.5h on %s, got %v", points[0].Date, points[0].Hours)
	}
	// 75 minutes = 1.25h, rounds to 1.3
	if points[1].Hours != 1.3 {
		t.Errorf("expected 1.3h on %s, got %v", points[1].Date, points[1].Hours)
	}
}

func TestTimeSeries_ZeroWindow(t *testing.T) {
	now := time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)
	if points := TimeSeries(nil, 0, now); len(points) != 0 {
		t.Errorf("expected no points for zero window, got %v", points)
	}
}
