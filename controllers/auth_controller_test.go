package controllers

import (
	"testing"

	"typingmaster/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGoogleAccountLeavesLocalAccountUntouched(t *testing.T) {
	existing := &models.User{
		ID:            primitive.NewObjectID(),
		Name:          "Jane",
		Email:         "jane@example.com",
		Password:      "$2a$10$somestoredbcrypthash",
		CurrentStreak: 3,
	}

	user, created := googleAccount(existing, "Jane Doe", "jane@example.com", "google-sub-123")
	if created {
		t.Errorf("Expected no new account for an existing email")
	}
	if user != existing {
		t.Errorf("Expected the stored account to be returned as-is")
	}
	if user.GoogleID != "" {
		t.Errorf("Expected no Google id on a password account, got %q", user.GoogleID)
	}
	if user.Password == "" {
		t.Errorf("Expected the password hash to survive a Google sign-in")
	}
}

func TestGoogleAccountCreatesFederatedUser(t *testing.T) {
	user, created := googleAccount(nil, "Jane", "jane@example.com", "google-sub-123")
	if !created {
		t.Fatalf("Expected a new account when no user matches the email")
	}
	if user.GoogleID != "google-sub-123" {
		t.Errorf("Expected the Google subject id to be stored, got %q", user.GoogleID)
	}
	if user.Password != "" {
		t.Errorf("Expected a federated account to carry no password, got %q", user.Password)
	}
	if !user.Verified {
		t.Errorf("Expected a Google-backed account to be verified")
	}
}
