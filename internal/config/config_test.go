package config

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	t.Run("defaults and env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://backend:8000/api/")
		t.Setenv("VENDEDOR_ID", "7")
		t.Setenv("BUSCA_DEBOUNCE", "50ms")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.API.BaseURL != "http://backend:8000/api" {
			t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
		}
		if cfg.API.VendedorID != 7 {
			t.Fatalf("expected vendedor 7, got %d", cfg.API.VendedorID)
		}
		if cfg.API.Timeout != 15*time.Second {
			t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
		}
		if cfg.Busca.Debounce != 300*time.Millisecond {
			t.Fatalf("expected debounce clamped to 300ms, got %v", cfg.Busca.Debounce)
		}
		if cfg.Server.Port != 8080 {
			t.Fatalf("unexpected port %d", cfg.Server.Port)
		}
	})
}

func TestNewSession(t *testing.T) {
	t.Run("configured seller wins", func(t *testing.T) {
		s := NewSession(APIConfig{BaseURL: "http://x", VendedorID: 3, Token: signedToken(t, jwt.MapClaims{"vendedor_id": 9})})
		if s.VendedorID != 3 {
			t.Fatalf("expected 3, got %d", s.VendedorID)
		}
	})

	t.Run("seller from numeric claim", func(t *testing.T) {
		s := NewSession(APIConfig{Token: "Bearer " + signedToken(t, jwt.MapClaims{"vendedor_id": 9})})
		if s.VendedorID != 9 {
			t.Fatalf("expected 9, got %d", s.VendedorID)
		}
	})

	t.Run("seller from sub", func(t *testing.T) {
		s := NewSession(APIConfig{Token: signedToken(t, jwt.MapClaims{"sub": "12"})})
		if s.VendedorID != 12 {
			t.Fatalf("expected 12, got %d", s.VendedorID)
		}
	})

	t.Run("opaque token", func(t *testing.T) {
		s := NewSession(APIConfig{Token: "not-a-jwt"})
		if s.VendedorID != 0 || s.Token != "not-a-jwt" {
			t.Fatalf("unexpected session %+v", s)
		}
	})
}
