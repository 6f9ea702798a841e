package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/nutriapp/nutriapp-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "secret",
		Issuer:          "nutriapp",
		ExpirationHours: 24,
	}
}

func TestMintAndParseToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintToken(cfg, now, TokenPayload{
		UserID:   42,
		Email:    "ana@example.com",
		Nickname: "ana",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Nickname != "ana" {
		t.Fatalf("unexpected nickname %q", claims.Nickname)
	}

	wantExpiry := now.Add(24 * time.Hour)
	if got := claims.ExpiresAt.Time; got.Sub(wantExpiry).Abs() > time.Second {
		t.Fatalf("expected expiry %v, got %v", wantExpiry, got)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().UTC().Add(-25 * time.Hour)

	token, err := MintToken(cfg, issued, TokenPayload{UserID: 1, Email: "a@b.c", Nickname: "a"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseToken(cfg, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintToken(cfg, time.Now().UTC(), TokenPayload{UserID: 1, Email: "a@b.c", Nickname: "a"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	// Flip one character of the signature.
	flipped := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		flipped += "B"
	} else {
		flipped += "A"
	}

	if _, err := ParseToken(cfg, flipped); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintToken(cfg, time.Now().UTC(), TokenPayload{UserID: 1, Email: "a@b.c", Nickname: "a"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseToken(other, token); err == nil {
		t.Fatal("expected error for wrong signing secret")
	}
}

func TestMintTokenRequiresSecretAndUser(t *testing.T) {
	if _, err := MintToken(config.JWTConfig{}, time.Now(), TokenPayload{UserID: 1}); err == nil {
		t.Fatal("expected error without secret")
	}
	if _, err := MintToken(testJWTConfig(), time.Now(), TokenPayload{}); err == nil {
		t.Fatal("expected error without user id")
	}
}
