package services

import (
	"testing"
	"time"

	"jobboard-http-service/config"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken("user-1", "jdoe@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if claims.ID != "user-1" || claims.Email != "jdoe@example.com" {
		t.Fatalf("claims = %+v", claims)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > time.Hour {
		t.Fatalf("token ttl = %v, want about one hour", ttl)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := NewJWTService(newTestConfig())
	token, err := issuer.GenerateToken("user-1", "jdoe@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	verifier := NewJWTService(&config.Config{JWTSecretKey: "other-secret"})
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected an error for a token signed with a different key")
	}
}
