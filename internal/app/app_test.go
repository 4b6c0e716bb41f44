package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dl_orcamentos/internal/config"

	"github.com/go-chi/chi/v5"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/orcamentos/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("vendedor_id") != "7" {
			t.Errorf("expected vendedor_id=7, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sucesso":true,"orcamentos":[{"id":1,"numero_orcamento":"ORC-001","status":"pendente","valor_total":100}]}`))
	})
	r.Get("/orcamentos/estatisticas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sucesso":true,"metricas":{"totalOrcamentos":1}}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API:         config.APIConfig{BaseURL: baseURL, Timeout: 2 * time.Second, VendedorID: 7},
		Server:      config.ServerConfig{Mode: "test"},
		Busca:       config.BuscaConfig{Debounce: 300 * time.Millisecond},
		MercadoPago: config.MercadoPagoConfig{Mock: true},
	}
}

func TestNew_OptionalComponentsOff(t *testing.T) {
	a, err := New(context.Background(), testConfig("http://localhost:1"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if a.redis != nil {
		t.Fatalf("redis should stay off without REDIS_ADDR")
	}
	if a.Session.VendedorID != 7 {
		t.Fatalf("unexpected session: %+v", a.Session)
	}
	if a.Workflow == nil || a.Frete == nil || a.Busca == nil || a.Cobranca == nil || a.Inbox == nil {
		t.Fatalf("container not fully wired: %+v", a)
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	backend := fakeBackend(t)
	a, err := New(context.Background(), testConfig(backend.URL), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()
	router := a.Router()

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refresh then board", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orcamentos/atualizar", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orcamentos/quadro", nil))
		var body struct {
			Total   int `json:"total"`
			Colunas []struct {
				Status     string `json:"status"`
				Quantidade int    `json:"quantidade"`
			} `json:"colunas"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Total != 1 || body.Colunas[0].Status != "pendente" || body.Colunas[0].Quantidade != 1 {
			t.Fatalf("unexpected board: %s", w.Body.String())
		}
	})

	t.Run("swagger doc", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
