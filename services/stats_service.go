package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"typingmaster/db"
	"typingmaster/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const leaderboardSize = 10
const directoryPreviewSize = 5
const recentResultsLimit = 10

// roundTo1 rounds to one decimal place for display
func roundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}

// resultAggregate is the grouped shape produced by the typing_results pipeline
type resultAggregate struct {
	TotalTests   int     `bson:"totalTests"`
	AvgWPM       float64 `bson:"avgWpm"`
	BestWPM      float64 `bson:"bestWpm"`
	AvgAccuracy  float64 `bson:"avgAccuracy"`
	BestAccuracy float64 `bson:"bestAccuracy"`
}

// GetUserStats recomputes a user's snapshot from the result log, badges and
// the user document. A user with no results gets zeroed numbers and empty
// slices, never an error.
func GetUserStats(ctx context.Context, userID primitive.ObjectID) (*models.UserStats, error) {
	user, err := db.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	stats := &models.UserStats{
		UserID:        user.ID.Hex(),
		Name:          user.Name,
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
		RecentResults: []models.RecentResult{},
		Badges:        []models.Badge{},
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalTests":   bson.M{"$sum": 1},
			"avgWpm":       bson.M{"$avg": "$wpm"},
			"bestWpm":      bson.M{"$max": "$wpm"},
			"avgAccuracy":  bson.M{"$avg": "$accuracy"},
			"bestAccuracy": bson.M{"$max": "$accuracy"},
		}}},
	}
	cursor, err := db.GetCollection("typing_results").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate results: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var agg resultAggregate
		if err := cursor.Decode(&agg); err != nil {
			return nil, fmt.Errorf("failed to decode aggregate: %w", err)
		}
		stats.TotalTests = agg.TotalTests
		stats.AvgWPM = roundTo1(agg.AvgWPM)
		stats.BestWPM = roundTo1(agg.BestWPM)
		stats.AvgAccuracy = roundTo1(agg.AvgAccuracy)
		stats.BestAccuracy = roundTo1(agg.BestAccuracy)
	}

	recentCursor, err := db.GetCollection("typing_results").Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(recentResultsLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent results: %w", err)
	}
	defer recentCursor.Close(ctx)
	if err := recentCursor.All(ctx, &stats.RecentResults); err != nil {
		return nil, fmt.Errorf("failed to decode recent results: %w", err)
	}

	badgeCursor, err := db.GetCollection("badges").Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"earnedAt": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badges: %w", err)
	}
	defer badgeCursor.Close(ctx)
	if err := badgeCursor.All(ctx, &stats.Badges); err != nil {
		return nil, fmt.Errorf("failed to decode badges: %w", err)
	}

	return stats, nil
}

// leaderboardRow is the joined shape produced by the leaderboard pipeline
type leaderboardRow struct {
	UserID      primitive.ObjectID `bson:"_id"`
	BestWPM     float64            `bson:"bestWpm"`
	AvgWPM      float64            `bson:"avgWpm"`
	AvgAccuracy float64            `bson:"avgAccuracy"`
	TotalTests  int                `bson:"totalTests"`
	User        models.User        `bson:"user"`
}

// leaderboardEntries converts joined rows into raw entries. Eligibility
// follows the user document's test counter, not the mere presence of result
// rows: a user whose counter never got incremented stays off the board.
func leaderboardEntries(rows []leaderboardRow) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		if row.User.TotalTests <= 0 {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:        row.UserID.Hex(),
			Name:          row.User.Name,
			CurrentStreak: row.User.CurrentStreak,
			LongestStreak: row.User.LongestStreak,
			TotalTests:    row.TotalTests,
			BestWPM:       row.BestWPM,
			AvgWPM:        row.AvgWPM,
			AvgAccuracy:   row.AvgAccuracy,
		})
	}
	return entries
}

// rankLeaderboard orders entries on their raw values, then rounds for
// display. Rounding only after sorting keeps near-ties ranked by true best
// WPM instead of falling through to the accuracy tiebreaker.
func rankLeaderboard(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	entries = orderLeaderboard(entries)
	for i := range entries {
		entries[i].BestWPM = roundTo1(entries[i].BestWPM)
		entries[i].AvgWPM = roundTo1(entries[i].AvgWPM)
		entries[i].AvgAccuracy = roundTo1(entries[i].AvgAccuracy)
	}
	return entries
}

// orderLeaderboard sorts entries by best WPM descending with average accuracy
// as the tiebreaker, truncates to the leaderboard size and assigns ranks.
func orderLeaderboard(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].BestWPM != entries[j].BestWPM {
			return entries[i].BestWPM > entries[j].BestWPM
		}
		return entries[i].AvgAccuracy > entries[j].AvgAccuracy
	})
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// GetLeaderboard returns the top users ranked by best WPM. Only users whose
// totalTests counter is positive appear.
func GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$userId",
			"bestWpm":     bson.M{"$max": "$wpm"},
			"avgWpm":      bson.M{"$avg": "$wpm"},
			"avgAccuracy": bson.M{"$avg": "$accuracy"},
			"totalTests":  bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
	}

	cursor, err := db.GetCollection("typing_results").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []leaderboardRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}

	return rankLeaderboard(leaderboardEntries(rows)), nil
}

// GetDirectoryPreview returns the top users by best WPM for the dashboard.
// Unlike the leaderboard it includes users who have never taken a test, and
// it is capped at five rows.
func GetDirectoryPreview(ctx context.Context) ([]models.DirectoryEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "typing_results",
			"localField":   "_id",
			"foreignField": "userId",
			"as":           "results",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"bestWpm": bson.M{"$ifNull": []interface{}{bson.M{"$max": "$results.wpm"}, 0}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"bestWpm": -1}}},
		bson.D{{Key: "$limit", Value: directoryPreviewSize}},
	}

	cursor, err := db.GetCollection("users").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate directory preview: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID            primitive.ObjectID `bson:"_id"`
		Name          string             `bson:"name"`
		CurrentStreak int                `bson:"currentStreak"`
		TotalTests    int                `bson:"totalTests"`
		BestWPM       float64            `bson:"bestWpm"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode directory preview: %w", err)
	}

	entries := make([]models.DirectoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.DirectoryEntry{
			UserID:        row.ID.Hex(),
			Name:          row.Name,
			CurrentStreak: row.CurrentStreak,
			TotalTests:    row.TotalTests,
			BestWPM:       roundTo1(row.BestWPM),
		})
	}
	return entries, nil
}
