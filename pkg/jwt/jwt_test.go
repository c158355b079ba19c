package jwt

import (
	"testing"
	"time"

	"github.com/Devendra616/collectEmpData-sub000/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("emp-1", "41000001", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.EmployeeID != "emp-1" {
		t.Errorf("expected EmployeeID=emp-1, got %s", claims.EmployeeID)
	}
	if claims.SapID != "41000001" {
		t.Errorf("expected SapID=41000001, got %s", claims.SapID)
	}
	if claims.IsAdmin {
		t.Error("expected IsAdmin=false")
	}
	if claims.TokenType != "access" {
		t.Errorf("expected TokenType=access, got %s", claims.TokenType)
	}
	if claims.Issuer != "collect-emp-data" {
		t.Errorf("expected Issuer=collect-emp-data, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI should not be empty")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("emp-1", "41000001", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("expected TokenType=refresh, got %s", claims.TokenType)
	}
	if !claims.IsAdmin {
		t.Error("expected IsAdmin=true")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("refresh token TTL expected about 7 days, got %v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("invalid.token.string"); err == nil {
		t.Error("parsing an invalid token should fail")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "a-different-secret-key",
		AccessTokenTTL: time.Hour,
	})

	token, _ := m1.GenerateAccessToken("emp-1", "41000001", false)
	if _, err := m2.ParseToken(token); err == nil {
		t.Error("a token signed with another secret should not verify")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-expiry",
		AccessTokenTTL: time.Millisecond,
	})

	token, _ := m.GenerateAccessToken("emp-1", "41000001", false)
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("an expired token should not verify")
	}
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}
