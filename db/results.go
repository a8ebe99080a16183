package db

import (
	"context"
	"fmt"
	"time"

	"typingmaster/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaveTypingResult appends an immutable result row and bumps the owner's
// test counter. There is deliberately no update or delete counterpart.
// The insert and the counter increment are two single-document operations;
// a crash between them can leave the counter one behind (accepted, no
// multi-document transaction here).
func SaveTypingResult(ctx context.Context, userID primitive.ObjectID, wpm, accuracy float64, duration int) (*models.TypingResult, error) {
	result := models.TypingResult{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		WPM:       wpm,
		Accuracy:  accuracy,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	if _, err := GetCollection("typing_results").InsertOne(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save typing result: %w", err)
	}

	_, err := GetCollection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"totalTests": 1}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to increment test count: %w", err)
	}

	return &result, nil
}

// FindUserByEmail returns the user with the given email, or mongo.ErrNoDocuments
func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := GetCollection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID returns the user with the given id, or mongo.ErrNoDocuments
func FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := GetCollection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
