package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user entity. Password and GoogleID are mutually exclusive:
// locally registered accounts carry a bcrypt hash, federated accounts carry
// the Google subject id.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password,omitempty" json:"-"`
	GoogleID      string             `bson:"googleId,omitempty" json:"-"`
	CurrentStreak int                `bson:"currentStreak" json:"currentStreak"`
	LongestStreak int                `bson:"longestStreak" json:"longestStreak"`
	LastTestDate  *time.Time         `bson:"lastTestDate,omitempty" json:"lastTestDate,omitempty"`
	TotalTests    int                `bson:"totalTests" json:"totalTests"`
	Verified      bool               `bson:"verified" json:"verified"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
