package request

import (
	"strings"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase"
)

// FiltroQuery is the board/list query string.
type FiltroQuery struct {
	Busca      string `form:"busca"`
	Status     string `form:"status"`
	Prioridade string `form:"prioridade"`
	Ordenacao  string `form:"ordenacao"`
}

func (q FiltroQuery) ToFiltro() usecase.FiltroVisao {
	return usecase.FiltroVisao{
		Busca:      strings.TrimSpace(q.Busca),
		Status:     entities.OrcamentoStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		Prioridade: entities.Prioridade(strings.ToLower(strings.TrimSpace(q.Prioridade))),
		Ordenacao:  usecase.Ordenacao(strings.ToLower(strings.TrimSpace(q.Ordenacao))),
	}
}

// EnviarRequest is the optional body of the send action.
type EnviarRequest struct {
	NumeroWhatsApp        string `json:"numero_whatsapp"`
	MensagemPersonalizada string `json:"mensagem_personalizada"`
}

// ConcluirRequest is the optional body of the conclude action.
type ConcluirRequest struct {
	Observacao string `json:"observacao"`
}

func (r EnviarRequest) ToOptions() usecase.TransitionOptions {
	return usecase.TransitionOptions{
		Telefone: strings.TrimSpace(r.NumeroWhatsApp),
		Mensagem: strings.TrimSpace(r.MensagemPersonalizada),
	}
}

func (r ConcluirRequest) ToOptions() usecase.TransitionOptions {
	return usecase.TransitionOptions{Observacao: strings.TrimSpace(r.Observacao)}
}
