package jwt

import (
	"testing"
	"time"

	"clinic-dispatch/config"

	"github.com/google/uuid"
)

func newService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: expiry})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newService("test-secret", time.Hour)
	staffID := uuid.New()

	token, err := svc.GenerateToken(staffID, "Dr. Garcia")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.StaffID != staffID {
		t.Errorf("StaffID = %s, want %s", claims.StaffID, staffID)
	}
	if claims.Name != "Dr. Garcia" {
		t.Errorf("Name = %q, want %q", claims.Name, "Dr. Garcia")
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newService("secret-a", time.Hour)
	validator := newService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(uuid.New(), "Dr. Garcia")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := validator.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "Dr. Garcia")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newService("test-secret", time.Hour)

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted a malformed token")
	}
}
