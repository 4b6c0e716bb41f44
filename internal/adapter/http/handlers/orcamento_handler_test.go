package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dl_orcamentos/internal/adapter/http/handlers/mocks"
	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/infrastructure/httpclient"
	"dl_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrcamentoRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrcamentoWorkflowUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrcamentoWorkflowUseCase(ctrl)
	h := NewOrcamentoHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/orcamentos/atualizar", h.Refresh)
	r.GET("/v1/orcamentos", h.List)
	r.GET("/v1/orcamentos/quadro", h.Board)
	r.GET("/v1/orcamentos/metricas", h.Metricas)
	r.GET("/v1/orcamentos/exportar", h.Export)
	r.GET("/v1/orcamentos/:id", h.Detail)
	r.GET("/v1/orcamentos/:id/historico", h.History)
	r.POST("/v1/orcamentos/:id/enviar", h.Enviar)
	r.POST("/v1/orcamentos/:id/concluir", h.Concluir)
	r.GET("/v1/orcamentos/:id/pdf", h.GeneratePDF)
	return r, uc
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestOrcamentoHandler_Refresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.Snapshot{
			Orcamentos:   []entities.Orcamento{{ID: 1, Numero: "ORC-001", Status: entities.OrcamentoStatusPendente}},
			Metricas:     &entities.Metricas{TotalOrcamentos: 1},
			AtualizadoEm: time.Now(),
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/atualizar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["total"] != float64(1) || body["metricas"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list failure is inline", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.Snapshot{
			Orcamentos: []entities.Orcamento{{ID: 1}},
			Erro:       "Não foi possível carregar os orçamentos",
		}, errors.New("boom"))

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/atualizar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["erro"] != "Não foi possível carregar os orçamentos" || body["total"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("superseded", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.Snapshot{}, usecase.ErrSuperseded)

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/atualizar", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrcamentoHandler_ListAndBoard(t *testing.T) {
	t.Run("list binds filters", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		want := usecase.FiltroVisao{Busca: "zé", Status: entities.OrcamentoStatusExpirado, Ordenacao: usecase.OrdenarPorValor}
		uc.EXPECT().List(want).Return([]entities.Orcamento{{ID: 2, Status: entities.OrcamentoStatusEnviado, DiasRestantes: -1}})
		uc.EXPECT().Snapshot().Return(usecase.Snapshot{})

		w := doRequest(r, http.MethodGet, "/v1/orcamentos?busca=z%C3%A9&status=expirado&ordenacao=valor", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		list := body["orcamentos"].([]any)
		if len(list) != 1 || list[0].(map[string]any)["status_exibicao"] != "expirado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("board", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Board(usecase.FiltroVisao{Prioridade: entities.PrioridadeAlta}).Return(usecase.Quadro{
			Colunas: []usecase.ColunaQuadro{{Status: entities.OrcamentoStatusPendente, Orcamentos: []entities.Orcamento{{ID: 1}}}},
			Total:   1,
		})

		w := doRequest(r, http.MethodGet, "/v1/orcamentos/quadro?prioridade=alta", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["total"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("metrics not loaded", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Snapshot().Return(usecase.Snapshot{})

		w := doRequest(r, http.MethodGet, "/v1/orcamentos/metricas", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().List(usecase.FiltroVisao{}).Return([]entities.Orcamento{{ID: 1, Numero: "ORC-001"}})

		w := doRequest(r, http.MethodGet, "/v1/orcamentos/exportar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != xlsxContentType || w.Body.Len() == 0 {
			t.Fatalf("unexpected export response: %v", w.Header())
		}
	})
}

func TestOrcamentoHandler_Detail(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := newOrcamentoRouter(t)
		w := doRequest(r, http.MethodGet, "/v1/orcamentos/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Detail(gomock.Any(), int64(9)).Return(entities.Orcamento{}, usecase.ErrOrcamentoNotFound)
		w := doRequest(r, http.MethodGet, "/v1/orcamentos/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Detail(gomock.Any(), int64(1)).Return(entities.Orcamento{ID: 1, Numero: "ORC-001", Status: entities.OrcamentoStatusConvertido}, nil)
		w := doRequest(r, http.MethodGet, "/v1/orcamentos/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["numero_orcamento"] != "ORC-001" || body["terminal"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("history", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().History(gomock.Any(), int64(1)).Return([]entities.WorkflowEvent{{ID: "ev-1", Acao: entities.AcaoEnviar}}, nil)
		w := doRequest(r, http.MethodGet, "/v1/orcamentos/1/historico", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["acao"] != "enviar" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrcamentoHandler_Transitions(t *testing.T) {
	t.Run("enviar without body", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(1), entities.AcaoEnviar, usecase.TransitionOptions{}).
			Return(entities.Orcamento{ID: 1, Status: entities.OrcamentoStatusEnviado}, nil)

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/enviar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "enviado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("enviar with phone", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(1), entities.AcaoEnviar, usecase.TransitionOptions{Telefone: "11999999999"}).
			Return(entities.Orcamento{ID: 1, Status: entities.OrcamentoStatusEnviado}, nil)

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/enviar", `{"numero_whatsapp":"11999999999"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("concluir passes observacao", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(2), entities.AcaoConcluir, usecase.TransitionOptions{Observacao: "entregue"}).
			Return(entities.Orcamento{ID: 2, Status: entities.OrcamentoStatusConcluido}, nil)

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/2/concluir", `{"observacao":" entregue "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newOrcamentoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/orcamentos/2/concluir", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid transition", usecase.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{"terminal", usecase.ErrTerminalStatus, http.StatusConflict, "ORCAMENTO_TERMINAL"},
		{"in progress", usecase.ErrActionInProgress, http.StatusConflict, "ACTION_IN_PROGRESS"},
		{"not found", usecase.ErrOrcamentoNotFound, http.StatusNotFound, "ORCAMENTO_NOT_FOUND"},
		{"backend rejection", &httpclient.APIError{StatusCode: 400, Message: "Orçamento já enviado"}, http.StatusBadGateway, "BACKEND_REJECTED"},
		{"transport", fmt.Errorf("%w: POST /x: dial", httpclient.ErrTransport), http.StatusBadGateway, "BACKEND_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newOrcamentoRouter(t)
			uc.EXPECT().Transition(gomock.Any(), int64(1), entities.AcaoConcluir, gomock.Any()).Return(entities.Orcamento{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/concluir", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, w.Body.String())
			}
		})
	}

	t.Run("backend message verbatim", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(1), entities.AcaoEnviar, gomock.Any()).
			Return(entities.Orcamento{}, &httpclient.APIError{StatusCode: 422, Message: "Cliente sem WhatsApp"})

		w := doRequest(r, http.MethodPost, "/v1/orcamentos/1/enviar", "")
		if body := decodeBody(t, w); body["message"] != "Cliente sem WhatsApp" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrcamentoHandler_GeneratePDF(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().GeneratePDF(gomock.Any(), int64(1)).Return(usecase.PDFDocument{
			NomeArquivo: "orcamento_ORC-001_2024-05-10.pdf",
			Conteudo:    []byte("%PDF-1.3"),
			ArquivoURL:  "s3://bucket/orcamentos/orcamento_ORC-001_2024-05-10.pdf",
			Registrado:  false,
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orcamentos/1/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" || w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected pdf response")
		}
		if w.Header().Get("X-PDF-Registrado") != "false" || w.Header().Get("X-PDF-Arquivo") == "" {
			t.Fatalf("unexpected headers: %v", w.Header())
		}
	})

	t.Run("renderer missing", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t)
		uc.EXPECT().GeneratePDF(gomock.Any(), int64(1)).Return(usecase.PDFDocument{}, usecase.ErrPDFRendererMissing)

		w := doRequest(r, http.MethodGet, "/v1/orcamentos/1/pdf", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
