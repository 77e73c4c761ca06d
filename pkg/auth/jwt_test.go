package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Minute)

	token, err := issuer.GenerateToken(42, "jane@example.com", "customer")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := issuer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "jane@example.com" || claims.Role != "customer" {
		t.Errorf("ValidateToken() claims = %+v", claims)
	}
}

func TestIssuer_ValidateToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Minute)
	valid, _ := issuer.GenerateToken(1, "a@example.com", "customer")

	expiredIssuer := NewIssuer("test-secret", time.Minute)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _ := expiredIssuer.GenerateToken(1, "a@example.com", "customer")

	otherKey, _ := NewIssuer("other-secret", time.Minute).GenerateToken(1, "a@example.com", "customer")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "Valid token", token: valid},
		{name: "Expired token", token: expired, wantErr: ErrTokenExpired},
		{name: "Wrong signing key", token: otherKey, wantErr: ErrTokenInvalid},
		{name: "Garbage", token: "not-a-jwt", wantErr: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.ValidateToken(tt.token)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateToken() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
