package entities

import (
	"math"
	"time"
)

// OrcamentoStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - The backend is the source of truth for the persisted status.
//   - The client only originates "enviar" (pendente -> enviado) and "concluir".
//   - convertido and concluido are terminal.

type OrcamentoStatus string

const (
	OrcamentoStatusPendente   OrcamentoStatus = "pendente"
	OrcamentoStatusEnviado    OrcamentoStatus = "enviado"
	OrcamentoStatusAprovado   OrcamentoStatus = "aprovado"
	OrcamentoStatusRejeitado  OrcamentoStatus = "rejeitado"
	OrcamentoStatusExpirado   OrcamentoStatus = "expirado"
	OrcamentoStatusConvertido OrcamentoStatus = "convertido"
	OrcamentoStatusConcluido  OrcamentoStatus = "concluido"
)

// BoardStatuses are the board columns, in display order.
var BoardStatuses = []OrcamentoStatus{
	OrcamentoStatusPendente,
	OrcamentoStatusEnviado,
	OrcamentoStatusAprovado,
	OrcamentoStatusRejeitado,
	OrcamentoStatusConvertido,
}

func (s OrcamentoStatus) Valid() bool {
	switch s {
	case OrcamentoStatusPendente, OrcamentoStatusEnviado, OrcamentoStatusAprovado,
		OrcamentoStatusRejeitado, OrcamentoStatusExpirado, OrcamentoStatusConvertido,
		OrcamentoStatusConcluido:
		return true
	}
	return false
}

// Label is the pt-BR label used by the board and the PDF.
func (s OrcamentoStatus) Label() string {
	switch s {
	case OrcamentoStatusPendente:
		return "Pendente"
	case OrcamentoStatusEnviado:
		return "Enviado"
	case OrcamentoStatusAprovado:
		return "Aprovado"
	case OrcamentoStatusRejeitado:
		return "Rejeitado"
	case OrcamentoStatusExpirado:
		return "Expirado"
	case OrcamentoStatusConvertido:
		return "Convertido"
	case OrcamentoStatusConcluido:
		return "Concluído"
	}
	return string(s)
}

type Prioridade string

const (
	PrioridadeBaixa Prioridade = "baixa"
	PrioridadeMedia Prioridade = "media"
	PrioridadeAlta  Prioridade = "alta"
)

// Weight orders priorities as alta > media > baixa. Unknown values sort last.
func (p Prioridade) Weight() int {
	switch p {
	case PrioridadeAlta:
		return 3
	case PrioridadeMedia:
		return 2
	case PrioridadeBaixa:
		return 1
	}
	return 0
}

type ItemOrcamento struct {
	ProdutoID     string  `json:"id_produto_tiny"`
	NomeProduto   string  `json:"nome_produto"`
	Quantidade    float64 `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

func (i ItemOrcamento) Subtotal() float64 {
	return i.Quantidade * i.PrecoUnitario
}

// Orcamento mirrors the quote resource served by the backend.
//
// Freight fields are optional; when any of them is present FreteValor must be
// present too (see NormalizeFrete).
type Orcamento struct {
	ID           int64  `json:"id"`
	Numero       string `json:"numero_orcamento"`
	ClienteID    int64  `json:"cliente_id"`
	ClienteNome  string `json:"cliente_nome"`
	VendedorID   int64  `json:"vendedor_id"`
	VendedorNome string `json:"vendedor_nome"`

	Status     OrcamentoStatus `json:"status"`
	Prioridade Prioridade      `json:"prioridade"`

	Itens          []ItemOrcamento `json:"itens,omitempty"`
	TotalItens     int             `json:"total_itens"`
	ValorTotal     float64         `json:"valor_total"`
	ValorPotencial float64         `json:"valor_potencial"`
	TaxaConversao  float64         `json:"taxa_conversao"`

	DataCriacao   Timestamp `json:"data_criacao"`
	Validade      Timestamp `json:"validade_orcamento"`
	DiasRestantes int       `json:"dias_restantes"`

	FreteValor          *float64 `json:"frete_valor,omitempty"`
	FreteTransportadora *string  `json:"frete_transportadora,omitempty"`
	FretePrazoEntrega   *int     `json:"frete_prazo_entrega,omitempty"`
	FreteTipo           *string  `json:"frete_tipo,omitempty"`
	FreteCEPDestino     *string  `json:"frete_cep_destino,omitempty"`

	PDFGerado       bool   `json:"pdf_gerado"`
	EnviadoWhatsApp bool   `json:"enviado_whatsapp"`
	Observacoes     string `json:"observacoes,omitempty"`
}

// IsTerminal reports whether no further client action may change the status.
func (o Orcamento) IsTerminal() bool {
	switch o.Status {
	case OrcamentoStatusConvertido, OrcamentoStatusConcluido:
		return true
	}
	return false
}

// IsExpired is the display-only expiry check.
func (o Orcamento) IsExpired() bool {
	return o.Status == OrcamentoStatusExpirado || o.DiasRestantes < 0
}

// DisplayStatus is the status shown to the user.
func (o Orcamento) DisplayStatus() OrcamentoStatus {
	if o.IsExpired() {
		return OrcamentoStatusExpirado
	}
	return o.Status
}

func (o Orcamento) HasFrete() bool {
	return o.FreteValor != nil
}

func (o Orcamento) hasFreteMetadata() bool {
	return o.FreteTransportadora != nil || o.FretePrazoEntrega != nil || o.FreteTipo != nil || o.FreteCEPDestino != nil
}

// NormalizeFrete drops freight metadata that arrived without a freight value.
// It returns true when something was dropped.
func (o *Orcamento) NormalizeFrete() bool {
	if o.FreteValor != nil || !o.hasFreteMetadata() {
		return false
	}
	o.FreteTransportadora = nil
	o.FretePrazoEntrega = nil
	o.FreteTipo = nil
	o.FreteCEPDestino = nil
	return true
}

// ApplyFrete commits a freight option to the quote.
func (o *Orcamento) ApplyFrete(op OpcaoFrete, cep string) {
	valor := op.Valor
	transportadora := op.Transportadora
	prazo := op.Prazo
	tipo := op.Servico
	o.FreteValor = &valor
	o.FreteTransportadora = &transportadora
	o.FretePrazoEntrega = &prazo
	o.FreteTipo = &tipo
	if cep != "" {
		c := cep
		o.FreteCEPDestino = &c
	}
}

// RefreshDiasRestantes recomputes DiasRestantes from the validity date.
// A negative value reported by the backend is kept when the recomputation
// would not be negative.
func (o *Orcamento) RefreshDiasRestantes(now time.Time) {
	if o.Validade.IsZero() {
		return
	}
	dias := DiasRestantesAt(o.Validade.Time, now)
	if o.DiasRestantes < 0 && dias >= 0 {
		return
	}
	o.DiasRestantes = dias
}

// DiasRestantesAt counts whole days until validade: rounded up while the
// quote is valid, rounded down (so at most -1) once validade has passed.
func DiasRestantesAt(validade, now time.Time) int {
	d := validade.Sub(now)
	if d < 0 {
		return int(math.Floor(d.Hours() / 24))
	}
	return int(math.Ceil(d.Hours() / 24))
}
