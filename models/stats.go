package models

import "time"

// RecentResult is one point of the dashboard history chart
type RecentResult struct {
	WPM       float64   `bson:"wpm" json:"wpm"`
	Accuracy  float64   `bson:"accuracy" json:"accuracy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// UserStats is a derived snapshot of a user's performance. It is recomputed
// from typing_results, badges and the user document on every read and never
// persisted on its own.
type UserStats struct {
	UserID        string         `json:"userId"`
	Name          string         `json:"name"`
	TotalTests    int            `json:"totalTests"`
	AvgWPM        float64        `json:"avgWpm"`
	BestWPM       float64        `json:"bestWpm"`
	AvgAccuracy   float64        `json:"avgAccuracy"`
	BestAccuracy  float64        `json:"bestAccuracy"`
	CurrentStreak int            `json:"currentStreak"`
	LongestStreak int            `json:"longestStreak"`
	RecentResults []RecentResult `json:"recentResults"`
	Badges        []Badge        `json:"badges"`
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	UserID        string  `json:"userId"`
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
	TotalTests    int     `json:"totalTests"`
	BestWPM       float64 `json:"bestWpm"`
	AvgWPM        float64 `json:"avgWpm"`
	AvgAccuracy   float64 `json:"avgAccuracy"`
}

// DirectoryEntry is the condensed per-user row shown on the dashboard
type DirectoryEntry struct {
	UserID        string  `json:"userId"`
	Name          string  `json:"name"`
	CurrentStreak int     `json:"currentStreak"`
	TotalTests    int     `json:"totalTests"`
	BestWPM       float64 `json:"bestWpm"`
}
