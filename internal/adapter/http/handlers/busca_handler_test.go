package handlers

import (
	"net/http"
	"testing"

	"dl_orcamentos/internal/adapter/http/handlers/mocks"
	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBuscaRouter(t *testing.T) (*gin.Engine, *mocks.MockIBuscaUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBuscaUseCase(ctrl)
	h := NewBuscaHandler(uc)

	r := gin.New()
	r.GET("/v1/clientes/buscar", h.Clientes)
	r.GET("/v1/produtos/buscar", h.Produtos)
	return r, uc
}

func TestBuscaHandler(t *testing.T) {
	t.Run("clientes", func(t *testing.T) {
		r, uc := newBuscaRouter(t)
		uc.EXPECT().BuscarClientes(gomock.Any(), "oficina").Return([]entities.ClienteResumo{{ID: 1, Nome: "Oficina do Zé"}}, nil)
		w := doRequest(r, http.MethodGet, "/v1/clientes/buscar?termo=oficina", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); len(body["clientes"].([]any)) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("clientes superseded", func(t *testing.T) {
		r, uc := newBuscaRouter(t)
		uc.EXPECT().BuscarClientes(gomock.Any(), "ofi").Return(nil, usecase.ErrSuperseded)
		w := doRequest(r, http.MethodGet, "/v1/clientes/buscar?termo=ofi", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("produtos with limit", func(t *testing.T) {
		r, uc := newBuscaRouter(t)
		uc.EXPECT().BuscarProdutos(gomock.Any(), "filtro", 10).Return([]entities.ProdutoResumo{{ID: 1}, {ID: 2}}, nil)
		w := doRequest(r, http.MethodGet, "/v1/produtos/buscar?termo=filtro&limit=10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["total"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("produtos bad limit", func(t *testing.T) {
		r, _ := newBuscaRouter(t)
		w := doRequest(r, http.MethodGet, "/v1/produtos/buscar?termo=filtro&limit=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
