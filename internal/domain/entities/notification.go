package entities

import "time"

type NivelNotificacao string

const (
	NivelSucesso NivelNotificacao = "sucesso"
	NivelErro    NivelNotificacao = "erro"
	NivelAviso   NivelNotificacao = "aviso"
)

// Notification is a user-visible toast.
type Notification struct {
	ID          string           `json:"id"`
	Nivel       NivelNotificacao `json:"nivel"`
	Mensagem    string           `json:"mensagem"`
	OrcamentoID int64            `json:"orcamento_id,omitempty"`
	CriadaEm    time.Time        `json:"criada_em"`
}
