package response

import (
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase"
)

type ItemResponse struct {
	ProdutoID     string  `json:"id_produto_tiny"`
	NomeProduto   string  `json:"nome_produto"`
	Quantidade    float64 `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Subtotal      float64 `json:"subtotal"`
}

// OrcamentoResponse is a quote as shown by the list and the board.
// StatusExibicao folds the display-only expiry into the status.
type OrcamentoResponse struct {
	ID             int64          `json:"id"`
	Numero         string         `json:"numero_orcamento"`
	ClienteID      int64          `json:"cliente_id"`
	ClienteNome    string         `json:"cliente_nome"`
	VendedorID     int64          `json:"vendedor_id"`
	VendedorNome   string         `json:"vendedor_nome"`
	Status         string         `json:"status"`
	StatusExibicao string         `json:"status_exibicao"`
	StatusLabel    string         `json:"status_label"`
	Expirado       bool           `json:"expirado"`
	Terminal       bool           `json:"terminal"`
	Prioridade     string         `json:"prioridade"`
	Itens          []ItemResponse `json:"itens"`
	TotalItens     int            `json:"total_itens"`
	ValorTotal     float64        `json:"valor_total"`
	DataCriacao    *time.Time     `json:"data_criacao,omitempty"`
	Validade       *time.Time     `json:"validade_orcamento,omitempty"`
	DiasRestantes  int            `json:"dias_restantes"`

	FreteValor          *float64 `json:"frete_valor,omitempty"`
	FreteTransportadora *string  `json:"frete_transportadora,omitempty"`
	FretePrazoEntrega   *int     `json:"frete_prazo_entrega,omitempty"`
	FreteTipo           *string  `json:"frete_tipo,omitempty"`
	FreteCEPDestino     *string  `json:"frete_cep_destino,omitempty"`

	PDFGerado   bool   `json:"pdf_gerado"`
	Observacoes string `json:"observacoes,omitempty"`
}

func timePtr(ts entities.Timestamp) *time.Time {
	if ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	itens := make([]ItemResponse, 0, len(o.Itens))
	for _, it := range o.Itens {
		itens = append(itens, ItemResponse{
			ProdutoID:     it.ProdutoID,
			NomeProduto:   it.NomeProduto,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal(),
		})
	}
	display := o.DisplayStatus()
	return OrcamentoResponse{
		ID:                  o.ID,
		Numero:              o.Numero,
		ClienteID:           o.ClienteID,
		ClienteNome:         o.ClienteNome,
		VendedorID:          o.VendedorID,
		VendedorNome:        o.VendedorNome,
		Status:              string(o.Status),
		StatusExibicao:      string(display),
		StatusLabel:         display.Label(),
		Expirado:            o.IsExpired(),
		Terminal:            o.IsTerminal(),
		Prioridade:          string(o.Prioridade),
		Itens:               itens,
		TotalItens:          o.TotalItens,
		ValorTotal:          o.ValorTotal,
		DataCriacao:         timePtr(o.DataCriacao),
		Validade:            timePtr(o.Validade),
		DiasRestantes:       o.DiasRestantes,
		FreteValor:          o.FreteValor,
		FreteTransportadora: o.FreteTransportadora,
		FretePrazoEntrega:   o.FretePrazoEntrega,
		FreteTipo:           o.FreteTipo,
		FreteCEPDestino:     o.FreteCEPDestino,
		PDFGerado:           o.PDFGerado,
		Observacoes:         o.Observacoes,
	}
}

func FromOrcamentos(list []entities.Orcamento) []OrcamentoResponse {
	out := make([]OrcamentoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrcamento(o))
	}
	return out
}

type ListaResponse struct {
	Orcamentos   []OrcamentoResponse `json:"orcamentos"`
	Total        int                 `json:"total"`
	Erro         string              `json:"erro,omitempty"`
	AtualizadoEm *time.Time          `json:"atualizado_em,omitempty"`
}

// SnapshotResponse is the outcome of a refresh.
type SnapshotResponse struct {
	ListaResponse
	Metricas *entities.Metricas `json:"metricas,omitempty"`
}

func FromSnapshot(s usecase.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ListaResponse: FromLista(s.Orcamentos, s),
		Metricas:      s.Metricas,
	}
}

// FromLista pairs a (possibly filtered) list with the snapshot status.
func FromLista(list []entities.Orcamento, s usecase.Snapshot) ListaResponse {
	r := ListaResponse{
		Orcamentos: FromOrcamentos(list),
		Total:      len(list),
		Erro:       s.Erro,
	}
	if !s.AtualizadoEm.IsZero() {
		t := s.AtualizadoEm
		r.AtualizadoEm = &t
	}
	return r
}

type ColunaResponse struct {
	Status     string              `json:"status"`
	Label      string              `json:"label"`
	Quantidade int                 `json:"quantidade"`
	Orcamentos []OrcamentoResponse `json:"orcamentos"`
}

type QuadroResponse struct {
	Colunas []ColunaResponse `json:"colunas"`
	Total   int              `json:"total"`
}

func FromQuadro(q usecase.Quadro) QuadroResponse {
	out := QuadroResponse{Colunas: make([]ColunaResponse, 0, len(q.Colunas)), Total: q.Total}
	for _, c := range q.Colunas {
		out.Colunas = append(out.Colunas, ColunaResponse{
			Status:     string(c.Status),
			Label:      c.Status.Label(),
			Quantidade: len(c.Orcamentos),
			Orcamentos: FromOrcamentos(c.Orcamentos),
		})
	}
	return out
}

type WorkflowEventResponse struct {
	ID             string                 `json:"id"`
	OrcamentoID    int64                  `json:"orcamento_id"`
	Numero         string                 `json:"numero_orcamento"`
	Acao           string                 `json:"acao"`
	StatusAnterior string                 `json:"status_anterior,omitempty"`
	StatusNovo     string                 `json:"status_novo,omitempty"`
	Detalhe        string                 `json:"detalhe,omitempty"`
	Date           time.Time              `json:"date"`
	Payload        map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromWorkflowEvents(events []entities.WorkflowEvent) []WorkflowEventResponse {
	out := make([]WorkflowEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, WorkflowEventResponse{
			ID:             e.ID,
			OrcamentoID:    e.OrcamentoID,
			Numero:         e.Numero,
			Acao:           string(e.Acao),
			StatusAnterior: string(e.StatusAnterior),
			StatusNovo:     string(e.StatusNovo),
			Detalhe:        e.Detalhe,
			Date:           e.Date,
			Payload:        e.ProviderPayload,
		})
	}
	return out
}
