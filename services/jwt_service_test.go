package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user id user-1, got %q", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com, got %q", claims.Email)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokensSignedWithSeparateSecrets(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	refresh, err := svc.GenerateRefreshToken("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	// A refresh token must not pass as an access token, and vice versa.
	if _, err := svc.ValidateAccessToken(refresh); err == nil {
		t.Fatalf("expected refresh token to fail access validation")
	}

	access, err := svc.GenerateAccessToken("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	if _, err := svc.ValidateRefreshToken(access); err == nil {
		t.Fatalf("expected access token to fail refresh validation")
	}

	if _, err := svc.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
}

func TestTokenWithoutExpiryRejected(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	// Correctly signed, but never expires.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-1",
		Email:  "a@x.com",
	}).SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected token without expiry to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateAccessToken(token); err == nil {
			t.Fatalf("expected token %q to be rejected", token)
		}
	}
}
