package services

import (
	"testing"

	"typingmaster/models"
)

func TestStreakMilestoneTitle(t *testing.T) {
	title, ok := StreakMilestoneTitle(5)
	if !ok || title != "5 Day Streak" {
		t.Errorf("Expected \"5 Day Streak\" for streak 5, got %q (ok=%v)", title, ok)
	}

	if _, ok := StreakMilestoneTitle(11); ok {
		t.Errorf("Expected no milestone for streak 11")
	}

	// Exact-match only: passing a milestone without landing on it earns nothing
	if _, ok := StreakMilestoneTitle(31); ok {
		t.Errorf("Expected no milestone for streak 31")
	}
}

func TestSpeedMilestoneTitle(t *testing.T) {
	cases := []struct {
		wpm   float64
		title string
		ok    bool
	}{
		{105, "Lightning Fingers", true},
		{100, "Lightning Fingers", true},
		{85, "Speed Demon", true},
		{60, "Fast Typer", true},
		{45, "Speed Boost", true},
		{39.9, "", false},
	}
	for _, c := range cases {
		title, ok := SpeedMilestoneTitle(c.wpm)
		if ok != c.ok || title != c.title {
			t.Errorf("SpeedMilestoneTitle(%g) = %q, %v; expected %q, %v", c.wpm, title, ok, c.title, c.ok)
		}
	}
}

func TestEvaluateStreakAndSpeedTogether(t *testing.T) {
	stats := &models.UserStats{CurrentStreak: 5, BestWPM: 105}
	awards := Evaluate(105, stats)
	if len(awards) != 2 {
		t.Fatalf("Expected 2 awards, got %d", len(awards))
	}
	if awards[0].Type != "streak" || awards[0].Title != "5 Day Streak" {
		t.Errorf("Expected streak award first, got %+v", awards[0])
	}
	if awards[1].Type != "wpm" || awards[1].Title != "Lightning Fingers" {
		t.Errorf("Expected Lightning Fingers award, got %+v", awards[1])
	}
}

func TestEvaluateNoSpeedBadgeWhenNotPersonalBest(t *testing.T) {
	// 90 WPM clears a threshold but a prior 95 means this is not the record
	stats := &models.UserStats{CurrentStreak: 2, BestWPM: 95}
	awards := Evaluate(90, stats)
	if len(awards) != 0 {
		t.Errorf("Expected no awards when submission is below personal best, got %+v", awards)
	}
}

func TestEvaluateTiedBestAwardsAgain(t *testing.T) {
	// Matching the stored best counts as a record; duplicates are not filtered
	stats := &models.UserStats{CurrentStreak: 0, BestWPM: 60}
	awards := Evaluate(60, stats)
	if len(awards) != 1 || awards[0].Title != "Fast Typer" {
		t.Errorf("Expected Fast Typer for a tied best, got %+v", awards)
	}
}

func TestEvaluateBestBelowFortyEarnsNothing(t *testing.T) {
	stats := &models.UserStats{CurrentStreak: 1, BestWPM: 35}
	awards := Evaluate(35, stats)
	if len(awards) != 0 {
		t.Errorf("Expected no awards below 40 WPM, got %+v", awards)
	}
}
