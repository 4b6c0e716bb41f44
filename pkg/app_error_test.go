package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_CEP", "CEP inválido", http.StatusBadRequest)
		if e.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body.Code != "INVALID_CEP" || body.Message != "CEP inválido" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.ToHTTPError().Details != "" {
			t.Fatalf("cause must not leak into the response body")
		}
	})
}
