package entities

import "time"

// AcaoWorkflow names a client-originated action on a quote.
type AcaoWorkflow string

const (
	AcaoEnviar        AcaoWorkflow = "enviar"
	AcaoConcluir      AcaoWorkflow = "concluir"
	AcaoCalcularFrete AcaoWorkflow = "calcular_frete"
	AcaoAplicarFrete  AcaoWorkflow = "aplicar_frete"
	AcaoGerarPDF      AcaoWorkflow = "gerar_pdf"
	AcaoCobrar        AcaoWorkflow = "cobrar"
)

// WorkflowEvent is one journal entry of an action confirmed by the backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (orcamento_id-index): orcamento_id

type WorkflowEvent struct {
	ID             string          `json:"id"`
	OrcamentoID    int64           `json:"orcamento_id"`
	Numero         string          `json:"numero_orcamento"`
	Acao           AcaoWorkflow    `json:"acao"`
	StatusAnterior OrcamentoStatus `json:"status_anterior"`
	StatusNovo     OrcamentoStatus `json:"status_novo"`
	Detalhe        string          `json:"detalhe,omitempty"`
	VendedorID     int64           `json:"vendedor_id,omitempty"`
	Date           time.Time       `json:"date"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}
