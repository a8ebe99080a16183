package services

import (
	"testing"

	"typingmaster/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRoundTo1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{72.349, 72.3},
		{72.35, 72.4},
		{0, 0},
		{99.999, 100},
	}
	for _, c := range cases {
		if got := roundTo1(c.in); got != c.want {
			t.Errorf("roundTo1(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestOrderLeaderboardSortsByBestWPM(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{UserID: "a", BestWPM: 60},
		{UserID: "b", BestWPM: 90},
		{UserID: "c", BestWPM: 75},
	}
	out := orderLeaderboard(entries)
	if out[0].UserID != "b" || out[1].UserID != "c" || out[2].UserID != "a" {
		t.Errorf("Unexpected order: %v, %v, %v", out[0].UserID, out[1].UserID, out[2].UserID)
	}
	for i, e := range out {
		if e.Rank != i+1 {
			t.Errorf("Expected rank %d at position %d, got %d", i+1, i, e.Rank)
		}
	}
}

func TestOrderLeaderboardAccuracyBreaksTies(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{UserID: "a", BestWPM: 80, AvgAccuracy: 91.5},
		{UserID: "b", BestWPM: 80, AvgAccuracy: 97.2},
	}
	out := orderLeaderboard(entries)
	if out[0].UserID != "b" {
		t.Errorf("Expected higher accuracy to rank first on tied WPM, got %v", out[0].UserID)
	}
}

func TestOrderLeaderboardTruncates(t *testing.T) {
	entries := make([]models.LeaderboardEntry, 0, 14)
	for i := 0; i < 14; i++ {
		entries = append(entries, models.LeaderboardEntry{BestWPM: float64(100 - i)})
	}
	out := orderLeaderboard(entries)
	if len(out) != leaderboardSize {
		t.Errorf("Expected %d entries, got %d", leaderboardSize, len(out))
	}
	if out[0].BestWPM != 100 || out[len(out)-1].BestWPM != 91 {
		t.Errorf("Expected entries 100..91, got %v..%v", out[0].BestWPM, out[len(out)-1].BestWPM)
	}
}

func TestRankLeaderboardSortsRawValuesBeforeRounding(t *testing.T) {
	// 79.96 and 80.04 both display as 80.0 but are not a true tie; the
	// accuracy tiebreaker must not decide between them
	entries := []models.LeaderboardEntry{
		{UserID: "a", BestWPM: 79.96, AvgAccuracy: 99},
		{UserID: "b", BestWPM: 80.04, AvgAccuracy: 50},
	}
	out := rankLeaderboard(entries)
	if out[0].UserID != "b" {
		t.Errorf("Expected the truly faster typist to rank first, got %v", out[0].UserID)
	}
	if out[0].BestWPM != 80 || out[1].BestWPM != 80 {
		t.Errorf("Expected both to display as 80, got %v and %v", out[0].BestWPM, out[1].BestWPM)
	}
}

func TestLeaderboardEntriesSkipUncountedUsers(t *testing.T) {
	rows := []leaderboardRow{
		{UserID: primitive.NewObjectID(), BestWPM: 50, TotalTests: 1, User: models.User{Name: "Ann", TotalTests: 1}},
		{UserID: primitive.NewObjectID(), BestWPM: 70, TotalTests: 1, User: models.User{Name: "Bob", TotalTests: 0}},
	}
	entries := leaderboardEntries(rows)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 eligible entry, got %d", len(entries))
	}
	if entries[0].Name != "Ann" {
		t.Errorf("Expected only the counted user to remain, got %q", entries[0].Name)
	}
}

func TestOrderLeaderboardEmpty(t *testing.T) {
	out := orderLeaderboard([]models.LeaderboardEntry{})
	if len(out) != 0 {
		t.Errorf("Expected empty leaderboard to stay empty, got %d entries", len(out))
	}
}
