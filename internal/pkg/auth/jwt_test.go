package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yigit/schoolhub/internal/app/models"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 24 * time.Hour,
		TokenIssuer:    "schoolhub-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateToken("admin@example.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != int64((24 * time.Hour).Seconds()) {
		t.Fatalf("expected expiresIn 86400, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "admin@example.com" {
		t.Fatalf("expected subject to be the email, got %q", claims.Subject)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %q", claims.Role)
	}
	if claims.ID == "" {
		t.Fatalf("expected a token id")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 24*time.Hour {
		t.Fatalf("expected 24h lifetime, got %s", got)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, _, err := svc.GenerateToken("teacher@example.com", models.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	token, _, err := other.GenerateToken("admin@example.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := newTestService().ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsNonHMAC(t *testing.T) {
	claims := &Claims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@example.com"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := newTestService().ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: true},
		{name: "missing scheme", header: "abc.def.ghi", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "bearer without token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
