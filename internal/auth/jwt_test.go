package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "vendor@example.com"

	token, err := GenerateToken(userID, email, RoleVendor)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != RoleVendor {
		t.Fatalf("Expected role %s, got %s", RoleVendor, extractedRole)
	}
}

func TestGenerateTokenEmptyUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "x@example.com", RoleVendor); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestValidateTokenForeignIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":    "some-other-app",
		"exp":    time.Now().Add(time.Hour).Unix(),
		"userID": uuid.New().String(),
		"role":   RoleVendor,
	})
	signed, err := foreign.SignedString([]byte("test-secret-key-12345"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, _, _, err := ValidateToken(signed); err == nil {
		t.Fatal("expected rejection of a token from another issuer")
	}
}
