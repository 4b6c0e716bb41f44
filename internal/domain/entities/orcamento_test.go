package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestOrcamento_StatusHelpers(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		for _, s := range []OrcamentoStatus{OrcamentoStatusConvertido, OrcamentoStatusConcluido} {
			if !(Orcamento{Status: s}).IsTerminal() {
				t.Fatalf("expected %s to be terminal", s)
			}
		}
		for _, s := range []OrcamentoStatus{OrcamentoStatusPendente, OrcamentoStatusEnviado, OrcamentoStatusAprovado, OrcamentoStatusRejeitado, OrcamentoStatusExpirado} {
			if (Orcamento{Status: s}).IsTerminal() {
				t.Fatalf("expected %s not to be terminal", s)
			}
		}
	})

	t.Run("negative days are displayed as expired", func(t *testing.T) {
		o := Orcamento{Status: OrcamentoStatusAprovado, DiasRestantes: -1}
		if !o.IsExpired() || o.DisplayStatus() != OrcamentoStatusExpirado {
			t.Fatalf("expected expired display, got %s", o.DisplayStatus())
		}
		if o.Status != OrcamentoStatusAprovado {
			t.Fatalf("persisted status must not change")
		}
	})

	t.Run("zero days is not expired", func(t *testing.T) {
		o := Orcamento{Status: OrcamentoStatusPendente, DiasRestantes: 0}
		if o.DisplayStatus() != OrcamentoStatusPendente {
			t.Fatalf("expected pendente, got %s", o.DisplayStatus())
		}
	})

	t.Run("priority weight", func(t *testing.T) {
		if !(PrioridadeAlta.Weight() > PrioridadeMedia.Weight() && PrioridadeMedia.Weight() > PrioridadeBaixa.Weight()) {
			t.Fatalf("unexpected priority order")
		}
		if Prioridade("x").Weight() != 0 {
			t.Fatalf("unknown priority must sort last")
		}
	})
}

func TestDiasRestantesAt(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		validade time.Time
		want     int
	}{
		{"half day ahead rounds up", now.Add(12 * time.Hour), 1},
		{"exactly two days", now.Add(48 * time.Hour), 2},
		{"same instant", now, 0},
		{"two hours behind", now.Add(-2 * time.Hour), -1},
		{"half day behind", now.Add(-12 * time.Hour), -1},
		{"exactly one day behind", now.Add(-24 * time.Hour), -1},
		{"a day and a half behind", now.Add(-36 * time.Hour), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiasRestantesAt(tt.validade, now); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestOrcamento_RefreshDiasRestantes(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("expired a few hours ago is presented as expired", func(t *testing.T) {
		o := Orcamento{Status: OrcamentoStatusPendente, Validade: NewTimestamp(now.Add(-2 * time.Hour)), DiasRestantes: 3}
		o.RefreshDiasRestantes(now)
		if o.DiasRestantes != -1 || !o.IsExpired() || o.DisplayStatus() != OrcamentoStatusExpirado {
			t.Fatalf("expected expired quote, got dias=%d status=%s", o.DiasRestantes, o.DisplayStatus())
		}
	})

	t.Run("negative backend value is kept", func(t *testing.T) {
		o := Orcamento{Status: OrcamentoStatusPendente, Validade: NewTimestamp(now.Add(6 * time.Hour)), DiasRestantes: -1}
		o.RefreshDiasRestantes(now)
		if o.DiasRestantes != -1 {
			t.Fatalf("expected backend value -1 to be kept, got %d", o.DiasRestantes)
		}
	})

	t.Run("no validity date leaves the backend value", func(t *testing.T) {
		o := Orcamento{DiasRestantes: 4}
		o.RefreshDiasRestantes(now)
		if o.DiasRestantes != 4 {
			t.Fatalf("expected 4, got %d", o.DiasRestantes)
		}
	})
}

func TestOrcamento_Frete(t *testing.T) {
	t.Run("orphan metadata is dropped", func(t *testing.T) {
		transportadora := "Correios"
		o := Orcamento{FreteTransportadora: &transportadora}
		if !o.NormalizeFrete() {
			t.Fatalf("expected metadata to be dropped")
		}
		if o.FreteTransportadora != nil {
			t.Fatalf("expected transportadora cleared")
		}
	})

	t.Run("metadata with value is kept", func(t *testing.T) {
		v := 10.0
		transportadora := "Correios"
		o := Orcamento{FreteValor: &v, FreteTransportadora: &transportadora}
		if o.NormalizeFrete() {
			t.Fatalf("expected nothing dropped")
		}
	})

	t.Run("apply option", func(t *testing.T) {
		var o Orcamento
		o.ApplyFrete(OpcaoFrete{Transportadora: "Jadlog", Servico: "Package", Prazo: 5, Valor: 32.9}, "01234567")
		if !o.HasFrete() || *o.FreteValor != 32.9 || *o.FreteTransportadora != "Jadlog" || *o.FretePrazoEntrega != 5 || *o.FreteTipo != "Package" || *o.FreteCEPDestino != "01234567" {
			t.Fatalf("unexpected freight fields: %+v", o)
		}
	})
}

func TestOrcamento_UnmarshalBackendPayload(t *testing.T) {
	raw := `{
		"id": 42,
		"numero_orcamento": "ORC-2024-0042",
		"cliente_nome": "Auto Peças Silva",
		"status": "pendente",
		"prioridade": "alta",
		"valor_total": 1500.5,
		"data_criacao": "2024-05-01T10:30:00.123456",
		"validade_orcamento": "2024-05-31",
		"dias_restantes": 3,
		"frete_valor": null,
		"itens": [{"id_produto_tiny": "P1", "nome_produto": "Filtro", "quantidade": 2, "preco_unitario": 25}]
	}`
	var o Orcamento
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != 42 || o.Numero != "ORC-2024-0042" || o.Status != OrcamentoStatusPendente || o.Prioridade != PrioridadeAlta {
		t.Fatalf("unexpected quote: %+v", o)
	}
	if o.DataCriacao.Year() != 2024 || o.DataCriacao.Month() != time.May || o.DataCriacao.Hour() != 10 {
		t.Fatalf("unexpected data_criacao: %v", o.DataCriacao)
	}
	if o.Validade.Day() != 31 {
		t.Fatalf("unexpected validade: %v", o.Validade)
	}
	if o.HasFrete() {
		t.Fatalf("expected no freight")
	}
	if len(o.Itens) != 1 || o.Itens[0].Subtotal() != 50 {
		t.Fatalf("unexpected items: %+v", o.Itens)
	}
}

func TestTimestamp(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-05-01T10:30:00-03:00")
		if err != nil || ts.UTC().Hour() != 13 {
			t.Fatalf("unexpected: %v %v", ts, err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := ParseTimestamp("ontem"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("zero marshals as null", func(t *testing.T) {
		b, err := json.Marshal(Timestamp{})
		if err != nil || string(b) != "null" {
			t.Fatalf("unexpected: %s %v", b, err)
		}
	})
}
