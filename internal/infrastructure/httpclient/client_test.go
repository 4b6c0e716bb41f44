package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"auth":       r.Header.Get("Authorization"),
			"request_id": r.Header.Get("X-Request-ID"),
			"termo":      r.URL.Query().Get("termo"),
		})
	})
	r.Post("/echo", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
	r.Get("/detail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Orçamento já concluído"}`))
	})
	r.Get("/erro", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"sucesso":false,"erro":"CEP não atendido"}`))
	})
	r.Get("/validation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","cep"],"msg":"field required"}]}`))
	})
	r.Delete("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newBackend(t)
	c := New(srv.URL+"/", WithToken("tok"), WithHTTPClient(srv.Client()))
	ctx := context.Background()

	t.Run("get sends auth, request id and query", func(t *testing.T) {
		var out map[string]string
		if err := c.Get(ctx, "/echo", url.Values{"termo": {"filtro de óleo"}}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out["auth"] != "Bearer tok" {
			t.Fatalf("unexpected auth header %q", out["auth"])
		}
		if out["request_id"] == "" {
			t.Fatalf("expected request id")
		}
		if out["termo"] != "filtro de óleo" {
			t.Fatalf("unexpected termo %q", out["termo"])
		}
	})

	t.Run("post round trips json", func(t *testing.T) {
		var out map[string]any
		if err := c.Post(ctx, "/echo", map[string]any{"cep_destino": "01234567"}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out["cep_destino"] != "01234567" {
			t.Fatalf("unexpected body %+v", out)
		}
	})

	t.Run("backend messages are surfaced verbatim", func(t *testing.T) {
		tests := []struct {
			path   string
			status int
			msg    string
		}{
			{"/detail", http.StatusBadRequest, "Orçamento já concluído"},
			{"/erro", http.StatusUnprocessableEntity, "CEP não atendido"},
			{"/validation", http.StatusUnprocessableEntity, "field required"},
		}
		for _, tt := range tests {
			err := c.Get(ctx, tt.path, nil, nil)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("%s: expected APIError, got %v", tt.path, err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Error() != tt.msg {
				t.Fatalf("%s: unexpected error %d %q", tt.path, apiErr.StatusCode, apiErr.Error())
			}
			if msg, ok := BackendMessage(err); !ok || msg != tt.msg {
				t.Fatalf("%s: unexpected backend message %q", tt.path, msg)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		err := c.Get(ctx, "/missing", nil, nil)
		if !IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		if err := c.Delete(ctx, "/empty"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		dead := New("http://127.0.0.1:1")
		err := dead.Get(ctx, "/echo", nil, nil)
		if !errors.Is(err, ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
		if _, ok := BackendMessage(err); ok {
			t.Fatalf("transport errors carry no backend message")
		}
	})
}
