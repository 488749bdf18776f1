package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestJWT_SignVerifyRoundTrip(t *testing.T) {
	signer := JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}
	userID := uuid.New()

	token, expiresAt, err := signer.Sign(Claims{UserID: userID, Email: "trader@example.com"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if time.Until(expiresAt) < 55*time.Minute {
		t.Fatalf("expiresAt too early: %v", expiresAt)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID=%v want %v", claims.UserID, userID)
	}
	if claims.Email != "trader@example.com" {
		t.Fatalf("email=%q", claims.Email)
	}
	if claims.Issuer != "mentaltradingjournal" {
		t.Fatalf("issuer=%q", claims.Issuer)
	}
}

func TestJWT_VerifyRejectsWrongSecret(t *testing.T) {
	signer := JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}
	token, _, err := signer.Sign(Claims{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	other := JWT{Secret: []byte("other-secret"), TokenTTL: time.Hour}
	if _, err := other.Verify(token); err == nil {
		t.Fatalf("token signed with a different secret accepted")
	}
}

func TestJWT_VerifyRejectsExpired(t *testing.T) {
	signer := JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}
	token, _, err := signer.Sign(Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signer.Verify(token); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestJWT_VerifyRejectsGarbage(t *testing.T) {
	signer := JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}
	if _, err := signer.Verify("not.a.token"); err == nil {
		t.Fatalf("garbage token accepted")
	}
}
