package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Badge represents a milestone badge earned by a user
type Badge struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	BadgeType   string             `bson:"badgeType" json:"badgeType"` // "streak" or "wpm"
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImagePath   string             `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	EarnedAt    time.Time          `bson:"earnedAt" json:"earnedAt"`
}
