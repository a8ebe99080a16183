package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Errorf("Hash should not equal the plaintext password")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Errorf("Expected correct password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Errorf("Expected wrong password to fail verification")
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"jane.doe@example.com", "jane.doe"},
		{"bob_smith99@test.org", "bob_smith99"},
		{"plainuser@mail.com", "plainuser"},
	}
	for _, c := range cases {
		if got := ExtractNameFromEmail(c.email); got != c.want {
			t.Errorf("ExtractNameFromEmail(%q) = %q, expected %q", c.email, got, c.want)
		}
	}
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	SetJWTExpiry(1)

	token, err := GenerateJWTToken("64f1c2d3e4a5b6c7d8e9f0a1", "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.UserID != "64f1c2d3e4a5b6c7d8e9f0a1" {
		t.Errorf("Expected user id to round-trip, got %q", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Expected email to round-trip, got %q", claims.Email)
	}
}

func TestParseJWTTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	if _, err := ParseJWTToken("not.a.token"); err == nil {
		t.Errorf("Expected garbage token to be rejected")
	}
}
