package usecase

import (
	"sort"
	"strings"

	"dl_orcamentos/internal/domain/entities"
)

type Ordenacao string

const (
	OrdenarPorData       Ordenacao = "data"
	OrdenarPorValor      Ordenacao = "valor"
	OrdenarPorPrioridade Ordenacao = "prioridade"
	OrdenarPorVencimento Ordenacao = "vencimento"
)

// FiltroVisao is the board/list view state. Empty fields (or "todos") match everything.
type FiltroVisao struct {
	Busca      string
	Status     entities.OrcamentoStatus
	Prioridade entities.Prioridade
	Ordenacao  Ordenacao
}

// FilterAndSort returns a filtered, sorted copy of quotes. It never mutates its
// input and ties keep their input order.
func FilterAndSort(quotes []entities.Orcamento, f FiltroVisao) []entities.Orcamento {
	busca := strings.ToLower(strings.TrimSpace(f.Busca))
	status := entities.OrcamentoStatus(strings.ToLower(strings.TrimSpace(string(f.Status))))
	prioridade := entities.Prioridade(strings.ToLower(strings.TrimSpace(string(f.Prioridade))))

	out := make([]entities.Orcamento, 0, len(quotes))
	for _, o := range quotes {
		if !matchesBusca(o, busca) {
			continue
		}
		if status != "" && status != "todos" && !matchesStatus(o, status) {
			continue
		}
		if prioridade != "" && prioridade != "todos" && o.Prioridade != prioridade {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, lessFor(f.Ordenacao, out))
	return out
}

func matchesBusca(o entities.Orcamento, busca string) bool {
	if busca == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Numero), busca) ||
		strings.Contains(strings.ToLower(o.ClienteNome), busca) ||
		strings.Contains(strings.ToLower(o.Observacoes), busca)
}

func matchesStatus(o entities.Orcamento, status entities.OrcamentoStatus) bool {
	if status == entities.OrcamentoStatusExpirado {
		return o.IsExpired()
	}
	return o.Status == status
}

func lessFor(ordenacao Ordenacao, out []entities.Orcamento) func(i, j int) bool {
	switch ordenacao {
	case OrdenarPorValor:
		return func(i, j int) bool { return out[i].ValorTotal > out[j].ValorTotal }
	case OrdenarPorPrioridade:
		return func(i, j int) bool { return out[i].Prioridade.Weight() > out[j].Prioridade.Weight() }
	case OrdenarPorVencimento:
		return func(i, j int) bool { return out[i].DiasRestantes < out[j].DiasRestantes }
	default:
		return func(i, j int) bool { return out[i].DataCriacao.After(out[j].DataCriacao.Time) }
	}
}

// GroupByStatus buckets quotes into the board columns by persisted status.
// Every column is present; expirado and concluido quotes are left out.
func GroupByStatus(quotes []entities.Orcamento) map[entities.OrcamentoStatus][]entities.Orcamento {
	buckets := make(map[entities.OrcamentoStatus][]entities.Orcamento, len(entities.BoardStatuses))
	for _, s := range entities.BoardStatuses {
		buckets[s] = []entities.Orcamento{}
	}
	for _, o := range quotes {
		if _, ok := buckets[o.Status]; ok {
			buckets[o.Status] = append(buckets[o.Status], o)
		}
	}
	return buckets
}

type ColunaQuadro struct {
	Status     entities.OrcamentoStatus
	Orcamentos []entities.Orcamento
}

// Quadro is the board: filtered quotes grouped into ordered columns.
type Quadro struct {
	Colunas []ColunaQuadro
	Total   int
}

func BuildQuadro(quotes []entities.Orcamento, f FiltroVisao) Quadro {
	filtered := FilterAndSort(quotes, f)
	buckets := GroupByStatus(filtered)

	q := Quadro{Colunas: make([]ColunaQuadro, 0, len(entities.BoardStatuses))}
	for _, s := range entities.BoardStatuses {
		q.Colunas = append(q.Colunas, ColunaQuadro{Status: s, Orcamentos: buckets[s]})
		q.Total += len(buckets[s])
	}
	return q
}
