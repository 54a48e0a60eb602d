package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/arifsetiawan/magangdik/internal/app/models"
)

func testAdmin() *models.Admin {
	return &models.Admin{
		ID:       7,
		Username: "admin",
		Jabatan:  "Kepala Dinas",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  time.Hour,
		TokenIssuer: "test",
	})

	token, expiresIn, err := svc.GenerateSessionToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.AdminID != 7 || claims.Username != "admin" || claims.Jabatan != "Kepala Dinas" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  -time.Minute,
		TokenIssuer: "test",
	})

	token, _, err := svc.GenerateSessionToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret-a", SessionExp: time.Hour})
	other := NewJWTService(JWTConfig{SecretKey: "secret-b", SessionExp: time.Hour})

	token, _, err := svc.GenerateSessionToken(testAdmin())
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted a token signed with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", SessionExp: time.Hour})

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("ValidateToken accepted garbage input")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("ExtractBearerToken = %q, %v", token, err)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("ExtractBearerToken(\"\") error = %v, want ErrInvalidFormat", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("HashPassword returned the plaintext password")
	}

	if !CheckPassword(hash, "rahasia123") {
		t.Fatal("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "salah") {
		t.Fatal("CheckPassword accepted a wrong password")
	}
}
