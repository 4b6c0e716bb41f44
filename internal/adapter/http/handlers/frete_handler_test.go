package handlers

import (
	"errors"
	"net/http"
	"testing"

	"dl_orcamentos/internal/adapter/http/handlers/mocks"
	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/infrastructure/httpclient"
	"dl_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFreteRouter(t *testing.T) (*gin.Engine, *mocks.MockIFreteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFreteUseCase(ctrl)
	h := NewFreteHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/orcamentos/:id/frete/calcular", h.Calculate)
	r.GET("/v1/orcamentos/:id/frete/opcoes", h.Options)
	r.PUT("/v1/orcamentos/:id/frete", h.Apply)
	r.GET("/v1/cep/:cep/validar", h.ValidateCEP)
	return r, uc
}

func TestFreteHandler_Calculate(t *testing.T) {
	t.Run("missing cep", func(t *testing.T) {
		r, _ := newFreteRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/frete/calcular", `{"valor_total":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid cep", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().CalculateFreight(gomock.Any(), int64(1), "123", 10.0).Return(nil, usecase.ErrInvalidCEP)
		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/frete/calcular", `{"cep_destino":"123","valor_total":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_CEP" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("backend message", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().CalculateFreight(gomock.Any(), int64(1), "01310-100", 10.0).
			Return(nil, &httpclient.APIError{StatusCode: 200, Message: "CEP não atendido"})
		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/frete/calcular", `{"cep_destino":"01310-100","valor_total":10}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "CEP não atendido" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().CalculateFreight(gomock.Any(), int64(1), "01310100", 150.0).Return([]entities.OpcaoFrete{
			{Transportadora: "Correios", Servico: "PAC", Prazo: 8, Valor: 20},
			{Transportadora: "Correios", Servico: "SEDEX", Prazo: 3, Valor: 35},
		}, nil)
		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/frete/calcular", `{"cep_destino":"01310100","valor_total":150}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		opcoes := body["opcoes_frete"].([]any)
		if len(opcoes) != 2 || opcoes[0].(map[string]any)["servico"] != "PAC" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestFreteHandler_OptionsAndApply(t *testing.T) {
	t.Run("options", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().Options(int64(4)).Return(nil)
		w := doRequest(r, http.MethodGet, "/v1/orcamentos/4/frete/opcoes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); len(body["opcoes_frete"].([]any)) != 0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("apply", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		valor := 20.0
		uc.EXPECT().ApplyFreight(gomock.Any(), int64(1), entities.OpcaoFrete{Transportadora: "Correios", Servico: "PAC", Prazo: 8, Valor: 20}).
			Return(entities.Orcamento{ID: 1, FreteValor: &valor}, nil)
		w := doRequest(r, http.MethodPut, "/v1/orcamentos/1/frete", `{"transportadora":"Correios","servico":"PAC","prazo":8,"valor":20}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["frete_valor"] != float64(20) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("apply rejected", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().ApplyFreight(gomock.Any(), int64(1), gomock.Any()).Return(entities.Orcamento{}, usecase.ErrInvalidFreteOption)
		w := doRequest(r, http.MethodPut, "/v1/orcamentos/1/frete", `{"transportadora":"Correios","valor":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestFreteHandler_ValidateCEP(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().ValidatePostalCode(gomock.Any(), "01310-100").Return(true, nil)
		w := doRequest(r, http.MethodGet, "/v1/cep/01310-100/validar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["cep"] != "01310100" || body["valido"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed is invalid", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().ValidatePostalCode(gomock.Any(), "12").Return(false, nil)
		w := doRequest(r, http.MethodGet, "/v1/cep/12/validar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["valido"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("backend down", func(t *testing.T) {
		r, uc := newFreteRouter(t)
		uc.EXPECT().ValidatePostalCode(gomock.Any(), "01310100").Return(false, errors.New("boom"))
		w := doRequest(r, http.MethodGet, "/v1/cep/01310100/validar", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
