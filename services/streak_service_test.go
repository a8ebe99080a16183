package services

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreakFirstTest(t *testing.T) {
	got := NextStreak(nil, 0, day(2024, 3, 10))
	if got != 1 {
		t.Errorf("Expected first test to start streak at 1, got %d", got)
	}
}

func TestNextStreakSameDay(t *testing.T) {
	last := day(2024, 3, 10)
	got := NextStreak(&last, 4, day(2024, 3, 10))
	if got != 4 {
		t.Errorf("Expected same-day test to keep streak at 4, got %d", got)
	}
}

func TestNextStreakSameDayIgnoresTimeOfDay(t *testing.T) {
	// A morning test followed by an evening test is still one calendar day
	last := time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 22, 45, 0, 0, time.UTC)
	got := NextStreak(&last, 4, now)
	if got != 4 {
		t.Errorf("Expected streak unchanged within the same day, got %d", got)
	}
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	last := day(2024, 3, 10)
	got := NextStreak(&last, 4, day(2024, 3, 11))
	if got != 5 {
		t.Errorf("Expected next-day test to extend streak to 5, got %d", got)
	}
}

func TestNextStreakGapResets(t *testing.T) {
	last := day(2024, 3, 10)
	got := NextStreak(&last, 9, day(2024, 3, 13))
	if got != 1 {
		t.Errorf("Expected streak to reset to 1 after a gap, got %d", got)
	}
}

func TestNextStreakFutureLastDateResets(t *testing.T) {
	// lastTestDate after today (clock skew or bad data) resets rather than
	// extending or panicking
	last := day(2024, 3, 15)
	got := NextStreak(&last, 7, day(2024, 3, 10))
	if got != 1 {
		t.Errorf("Expected future lastTestDate to reset streak to 1, got %d", got)
	}
}

func TestDaysBetweenCrossesMonthBoundary(t *testing.T) {
	if d := daysBetween(day(2024, 2, 29), day(2024, 3, 1)); d != 1 {
		t.Errorf("Expected 1 day from Feb 29 to Mar 1, got %d", d)
	}
}
