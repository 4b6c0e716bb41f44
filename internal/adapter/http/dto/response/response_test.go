package response

import (
	"testing"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrcamento(t *testing.T) {
	criado := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	frete := 20.0
	o := entities.Orcamento{
		ID:            1,
		Numero:        "ORC-001",
		Status:        entities.OrcamentoStatusEnviado,
		DiasRestantes: -2,
		DataCriacao:   entities.NewTimestamp(criado),
		Itens:         []entities.ItemOrcamento{{NomeProduto: "Filtro", Quantidade: 2, PrecoUnitario: 10}},
		FreteValor:    &frete,
	}

	res := FromOrcamento(o)
	if res.Status != "enviado" || res.StatusExibicao != "expirado" || !res.Expirado || res.StatusLabel != "Expirado" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.Terminal {
		t.Fatalf("enviado is not terminal")
	}
	if res.DataCriacao == nil || !res.DataCriacao.Equal(criado) || res.Validade != nil {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if len(res.Itens) != 1 || res.Itens[0].Subtotal != 20 {
		t.Fatalf("unexpected items: %+v", res.Itens)
	}
	if res.FreteValor == nil || *res.FreteValor != 20 {
		t.Fatalf("unexpected freight: %+v", res)
	}
}

func TestFromQuadro(t *testing.T) {
	q := usecase.Quadro{
		Colunas: []usecase.ColunaQuadro{
			{Status: entities.OrcamentoStatusPendente, Orcamentos: []entities.Orcamento{{ID: 1}}},
			{Status: entities.OrcamentoStatusConvertido, Orcamentos: []entities.Orcamento{}},
		},
		Total: 1,
	}
	res := FromQuadro(q)
	if res.Total != 1 || len(res.Colunas) != 2 {
		t.Fatalf("unexpected board: %+v", res)
	}
	if res.Colunas[0].Label != "Pendente" || res.Colunas[0].Quantidade != 1 || res.Colunas[1].Orcamentos == nil {
		t.Fatalf("unexpected columns: %+v", res.Colunas)
	}
}

func TestFromSnapshot(t *testing.T) {
	now := time.Now().UTC()
	s := usecase.Snapshot{
		Orcamentos:   []entities.Orcamento{{ID: 1}, {ID: 2}},
		Metricas:     &entities.Metricas{TotalOrcamentos: 2},
		Erro:         "falha",
		AtualizadoEm: now,
	}
	res := FromSnapshot(s)
	if res.Total != 2 || res.Erro != "falha" || res.Metricas.TotalOrcamentos != 2 {
		t.Fatalf("unexpected snapshot: %+v", res)
	}
	if res.AtualizadoEm == nil || !res.AtualizadoEm.Equal(now) {
		t.Fatalf("unexpected refresh time: %+v", res.AtualizadoEm)
	}
	if FromSnapshot(usecase.Snapshot{}).AtualizadoEm != nil {
		t.Fatalf("expected no refresh time")
	}
}

func TestFromCobranca(t *testing.T) {
	res := FromCobranca(usecase.Cobranca{PaymentID: "pay-1", ProviderStatus: "approved", Valor: decimal.RequireFromString("125.6")})
	if res.PaymentID != "pay-1" || res.Valor != "125.60" || res.ProviderStatus != "approved" {
		t.Fatalf("unexpected charge: %+v", res)
	}
}

func TestFromOpcoesFrete(t *testing.T) {
	res := FromOpcoesFrete(3, []entities.OpcaoFrete{{Transportadora: "Correios", Servico: "PAC", Valor: 20}})
	if res.OrcamentoID != 3 || len(res.Opcoes) != 1 || res.Opcoes[0].ValorFormatado == "" {
		t.Fatalf("unexpected options: %+v", res)
	}
}

func TestFromWorkflowEvents(t *testing.T) {
	res := FromWorkflowEvents([]entities.WorkflowEvent{{ID: "ev-1", Acao: entities.AcaoEnviar, StatusNovo: entities.OrcamentoStatusEnviado}})
	if len(res) != 1 || res[0].Acao != "enviar" || res[0].StatusNovo != "enviado" {
		t.Fatalf("unexpected events: %+v", res)
	}
}
