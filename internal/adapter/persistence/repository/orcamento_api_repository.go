package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/infrastructure/httpclient"
	"dl_orcamentos/internal/usecase/interfaces"
)

const orcamentosPath = "/orcamentos"

// envelope is the {sucesso, erro, mensagem} wrapper most backend answers use.
type envelope struct {
	Sucesso  *bool  `json:"sucesso"`
	Erro     string `json:"erro"`
	Mensagem string `json:"mensagem"`
	Detail   string `json:"detail"`
}

// failure turns sucesso=false into an APIError carrying the backend text.
func (e envelope) failure() error {
	if e.Sucesso == nil || *e.Sucesso {
		return nil
	}
	msg := e.Erro
	if msg == "" {
		msg = e.Detail
	}
	if msg == "" {
		msg = e.Mensagem
	}
	return &httpclient.APIError{StatusCode: http.StatusOK, Message: msg}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// OrcamentoAPIRepository reads and mutates quotes through the REST backend.
type OrcamentoAPIRepository struct {
	client *httpclient.Client
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoAPIRepository)(nil)

func NewOrcamentoAPIRepository(client *httpclient.Client) *OrcamentoAPIRepository {
	return &OrcamentoAPIRepository{client: client}
}

func orcamentoPath(id int64, suffix string) string {
	return orcamentosPath + "/" + strconv.FormatInt(id, 10) + suffix
}

func (r *OrcamentoAPIRepository) List(ctx context.Context, filtro entities.FiltroOrcamentos) ([]entities.Orcamento, error) {
	q := url.Values{}
	if filtro.VendedorID > 0 {
		q.Set("vendedor_id", strconv.FormatInt(filtro.VendedorID, 10))
	}
	if filtro.Status != "" {
		q.Set("status", string(filtro.Status))
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, orcamentosPath+"/", q, &raw); err != nil {
		return nil, err
	}
	if isJSONArray(raw) {
		var out []entities.Orcamento
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode orcamentos: %w", err)
		}
		return out, nil
	}

	var resp struct {
		envelope
		Orcamentos []entities.Orcamento `json:"orcamentos"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode orcamentos: %w", err)
	}
	if err := resp.failure(); err != nil {
		return nil, err
	}
	if resp.Orcamentos == nil {
		return []entities.Orcamento{}, nil
	}
	return resp.Orcamentos, nil
}

// GetByID returns a zero Orcamento when the backend answers 404.
func (r *OrcamentoAPIRepository) GetByID(ctx context.Context, id int64) (entities.Orcamento, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, orcamentoPath(id, ""), nil, &raw); err != nil {
		if httpclient.IsNotFound(err) {
			return entities.Orcamento{}, nil
		}
		return entities.Orcamento{}, err
	}
	return decodeOrcamento(raw)
}

// decodeOrcamento accepts a bare quote or a {sucesso, orcamento} wrapper.
// An answer without a quote decodes to the zero value.
func decodeOrcamento(raw json.RawMessage) (entities.Orcamento, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return entities.Orcamento{}, nil
	}
	var wrapped struct {
		envelope
		Orcamento *entities.Orcamento `json:"orcamento"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return entities.Orcamento{}, fmt.Errorf("decode orcamento: %w", err)
	}
	if err := wrapped.failure(); err != nil {
		return entities.Orcamento{}, err
	}
	if wrapped.Orcamento != nil {
		return *wrapped.Orcamento, nil
	}

	var o entities.Orcamento
	if err := json.Unmarshal(raw, &o); err != nil {
		return entities.Orcamento{}, fmt.Errorf("decode orcamento: %w", err)
	}
	return o, nil
}

func (r *OrcamentoAPIRepository) GetMetricas(ctx context.Context) (entities.Metricas, error) {
	var resp struct {
		envelope
		Metricas *entities.Metricas `json:"metricas"`
	}
	var raw json.RawMessage
	if err := r.client.Get(ctx, orcamentosPath+"/estatisticas", nil, &raw); err != nil {
		return entities.Metricas{}, err
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entities.Metricas{}, fmt.Errorf("decode metricas: %w", err)
	}
	if err := resp.failure(); err != nil {
		return entities.Metricas{}, err
	}
	if resp.Metricas != nil {
		return *resp.Metricas, nil
	}
	var m entities.Metricas
	if err := json.Unmarshal(raw, &m); err != nil {
		return entities.Metricas{}, fmt.Errorf("decode metricas: %w", err)
	}
	return m, nil
}

func (r *OrcamentoAPIRepository) Enviar(ctx context.Context, id int64, envio entities.EnvioOrcamento) error {
	var resp envelope
	if err := r.client.Post(ctx, orcamentoPath(id, "/enviar"), envio, &resp); err != nil {
		return err
	}
	return resp.failure()
}

func (r *OrcamentoAPIRepository) Concluir(ctx context.Context, id int64, observacao string) (entities.Orcamento, error) {
	body := map[string]string{"observacao": observacao}
	var raw json.RawMessage
	if err := r.client.Post(ctx, orcamentoPath(id, "/concluir"), body, &raw); err != nil {
		return entities.Orcamento{}, err
	}
	return decodeOrcamento(raw)
}

func (r *OrcamentoAPIRepository) MarcarPDFGerado(ctx context.Context, id int64) error {
	var resp envelope
	if err := r.client.Put(ctx, orcamentoPath(id, ""), map[string]bool{"pdf_gerado": true}, &resp); err != nil {
		return err
	}
	return resp.failure()
}

func (r *OrcamentoAPIRepository) CalcularFrete(ctx context.Context, id int64, req entities.CalculoFreteRequest) ([]entities.OpcaoFrete, error) {
	var resp struct {
		envelope
		OpcoesFrete []entities.OpcaoFrete `json:"opcoes_frete"`
	}
	if err := r.client.Post(ctx, orcamentoPath(id, "/frete"), req, &resp); err != nil {
		return nil, err
	}
	if err := resp.failure(); err != nil {
		return nil, err
	}
	return resp.OpcoesFrete, nil
}

func (r *OrcamentoAPIRepository) AplicarFrete(ctx context.Context, id int64, req entities.AplicarFreteRequest) (entities.Orcamento, error) {
	var raw json.RawMessage
	if err := r.client.Put(ctx, orcamentoPath(id, "/frete"), req, &raw); err != nil {
		return entities.Orcamento{}, err
	}
	return decodeOrcamento(raw)
}

// ValidarCEP reports the backend's verdict. A 4xx answer means invalid.
func (r *OrcamentoAPIRepository) ValidarCEP(ctx context.Context, cep string) (bool, error) {
	var resp envelope
	err := r.client.Get(ctx, orcamentosPath+"/validar-cep/"+url.PathEscape(cep), nil, &resp)
	if err != nil {
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return false, nil
		}
		return false, err
	}
	return resp.Sucesso != nil && *resp.Sucesso, nil
}
