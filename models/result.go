package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TypingResult is one completed test. Results are append-only: created once
// per submission, never mutated or deleted.
type TypingResult struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	WPM       float64            `bson:"wpm" json:"wpm"`
	Accuracy  float64            `bson:"accuracy" json:"accuracy"`
	Duration  int                `bson:"duration" json:"duration"` // seconds
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
