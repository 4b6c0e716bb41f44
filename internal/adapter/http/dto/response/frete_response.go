package response

import (
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"
)

type OpcaoFreteResponse struct {
	Transportadora string  `json:"transportadora"`
	Servico        string  `json:"servico"`
	Prazo          int     `json:"prazo"`
	Valor          float64 `json:"valor"`
	ValorFormatado string  `json:"valor_formatado"`
	CodigoServico  string  `json:"codigo_servico,omitempty"`
}

type OpcoesFreteResponse struct {
	OrcamentoID int64                `json:"orcamento_id"`
	Opcoes      []OpcaoFreteResponse `json:"opcoes_frete"`
}

func FromOpcoesFrete(orcamentoID int64, opcoes []entities.OpcaoFrete) OpcoesFreteResponse {
	out := OpcoesFreteResponse{OrcamentoID: orcamentoID, Opcoes: make([]OpcaoFreteResponse, 0, len(opcoes))}
	for _, op := range opcoes {
		out.Opcoes = append(out.Opcoes, OpcaoFreteResponse{
			Transportadora: op.Transportadora,
			Servico:        op.Servico,
			Prazo:          op.Prazo,
			Valor:          op.Valor,
			ValorFormatado: pkg.FormatBRLFloat(op.Valor),
			CodigoServico:  op.CodigoServico,
		})
	}
	return out
}

type CEPResponse struct {
	CEP    string `json:"cep"`
	Valido bool   `json:"valido"`
}

// CobrancaResponse mirrors a charge created through the payment gateway.
type CobrancaResponse struct {
	PaymentID      string                 `json:"payment_id"`
	ProviderStatus string                 `json:"status"`
	OrcamentoID    int64                  `json:"orcamento_id"`
	Numero         string                 `json:"numero_orcamento"`
	Valor          string                 `json:"valor"`
	Date           time.Time              `json:"date"`
	Provider       map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCobranca(c usecase.Cobranca) CobrancaResponse {
	return CobrancaResponse{
		PaymentID:      c.PaymentID,
		ProviderStatus: c.ProviderStatus,
		OrcamentoID:    c.OrcamentoID,
		Numero:         c.Numero,
		Valor:          c.Valor.StringFixed(2),
		Date:           c.Date,
		Provider:       c.Provider,
	}
}

type ClientesResponse struct {
	Clientes []entities.ClienteResumo `json:"clientes"`
}

type ProdutosResponse struct {
	Total    int                      `json:"total"`
	Produtos []entities.ProdutoResumo `json:"produtos"`
}

type NotificacoesResponse struct {
	Notificacoes []entities.Notification `json:"notificacoes"`
}
