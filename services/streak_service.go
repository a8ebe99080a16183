package services

import (
	"context"
	"fmt"
	"time"

	"typingmaster/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// truncateToDay drops the time-of-day component, keeping the UTC calendar date
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from a to b
func daysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}

// NextStreak computes the streak value after a test submitted on `today`.
// First test ever starts a streak of 1. A second test on the same calendar
// day leaves it unchanged, a test on the next day extends it, and anything
// else resets to 1. A lastTestDate in the future (backdated data or clock
// skew) also resets to 1.
func NextStreak(lastTestDate *time.Time, currentStreak int, today time.Time) int {
	if lastTestDate == nil {
		return 1
	}

	switch daysBetween(*lastTestDate, today) {
	case 0:
		return currentStreak
	case 1:
		return currentStreak + 1
	default:
		return 1
	}
}

// UpdateStreak applies the streak transition for userID and persists the new
// state. Returns the new streak value. Calling it twice on the same day
// yields the same streak; lastTestDate is rewritten either way.
func UpdateStreak(ctx context.Context, userID primitive.ObjectID) (int, error) {
	user, err := db.FindUserByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load user for streak update: %w", err)
	}

	today := truncateToDay(time.Now())
	newStreak := NextStreak(user.LastTestDate, user.CurrentStreak, today)

	longest := user.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}

	_, err = db.GetCollection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"currentStreak": newStreak,
			"longestStreak": longest,
			"lastTestDate":  today,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update streak: %w", err)
	}

	return newStreak, nil
}
