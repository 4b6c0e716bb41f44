package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the explicit client context injected into the remote adapters
// and the workflow controller.
type Session struct {
	BaseURL    string
	Token      string
	VendedorID int64
}

// NewSession builds the session from config. When no seller id is configured
// it is read from the bearer token claims (vendedor_id, user_id or sub).
// The token signature is not verified here; the backend does that.
func NewSession(cfg APIConfig) Session {
	s := Session{
		BaseURL:    cfg.BaseURL,
		Token:      strings.TrimSpace(strings.TrimPrefix(cfg.Token, "Bearer ")),
		VendedorID: cfg.VendedorID,
	}
	if s.VendedorID == 0 && s.Token != "" {
		if id, err := VendedorIDFromToken(s.Token); err == nil {
			s.VendedorID = id
		}
	}
	return s
}

func VendedorIDFromToken(token string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, err
	}
	for _, key := range []string{"vendedor_id", "user_id", "sub"} {
		v, ok := claims[key]
		if !ok {
			continue
		}
		switch id := v.(type) {
		case float64:
			return int64(id), nil
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err == nil {
				return n, nil
			}
		}
	}
	return 0, fmt.Errorf("token carries no numeric seller id")
}
