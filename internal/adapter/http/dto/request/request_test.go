package request

import (
	"errors"
	"testing"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase"
)

func TestFiltroQuery_ToFiltro(t *testing.T) {
	f := FiltroQuery{Busca: "  zé ", Status: " Aprovado", Prioridade: "ALTA", Ordenacao: "Valor "}.ToFiltro()
	if f.Busca != "zé" || f.Status != entities.OrcamentoStatusAprovado || f.Prioridade != entities.PrioridadeAlta || f.Ordenacao != usecase.OrdenarPorValor {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestTransitionRequests_ToOptions(t *testing.T) {
	opts := EnviarRequest{NumeroWhatsApp: " 11999999999 ", MensagemPersonalizada: " Olá "}.ToOptions()
	if opts.Telefone != "11999999999" || opts.Mensagem != "Olá" || opts.Observacao != "" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	opts = ConcluirRequest{Observacao: " entregue "}.ToOptions()
	if opts.Observacao != "entregue" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestAplicarFreteRequest_ToOpcao(t *testing.T) {
	op := AplicarFreteRequest{Transportadora: " Correios ", Servico: "PAC", Prazo: 5, Valor: 20.5}.ToOpcao()
	if op.Transportadora != "Correios" || op.Servico != "PAC" || op.Prazo != 5 || op.Valor != 20.5 {
		t.Fatalf("unexpected option: %+v", op)
	}
}

func TestParseCobrancaPayload(t *testing.T) {
	t.Run("blank body", func(t *testing.T) {
		p, err := ParseCobrancaPayload([]byte("   "))
		if err != nil || string(p) != "{}" {
			t.Fatalf("expected {}, got %s err=%v", p, err)
		}
	})
	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseCobrancaPayload([]byte("{invalid")); err == nil {
			t.Fatalf("expected error")
		}
	})
	t.Run("null wrapper", func(t *testing.T) {
		if _, err := ParseCobrancaPayload([]byte(`{"mp_payload":null}`)); !errors.Is(err, ErrEmptyMPPayload) {
			t.Fatalf("expected ErrEmptyMPPayload, got %v", err)
		}
	})
	t.Run("wrapped", func(t *testing.T) {
		p, err := ParseCobrancaPayload([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil || string(p) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload %s err=%v", p, err)
		}
	})
	t.Run("bare", func(t *testing.T) {
		raw := `{"payment_method_id":"pix"}`
		p, err := ParseCobrancaPayload([]byte(raw))
		if err != nil || string(p) != raw {
			t.Fatalf("unexpected payload %s err=%v", p, err)
		}
	})
}
