package request

import (
	"strings"

	"dl_orcamentos/internal/domain/entities"
)

type CalcularFreteRequest struct {
	CEPDestino string  `json:"cep_destino" binding:"required"`
	ValorTotal float64 `json:"valor_total"`
}

// AplicarFreteRequest carries the option picked from the last calculation.
type AplicarFreteRequest struct {
	Transportadora string  `json:"transportadora" binding:"required"`
	Servico        string  `json:"servico"`
	Prazo          int     `json:"prazo"`
	Valor          float64 `json:"valor"`
	CodigoServico  string  `json:"codigo_servico"`
}

func (r AplicarFreteRequest) ToOpcao() entities.OpcaoFrete {
	return entities.OpcaoFrete{
		Transportadora: strings.TrimSpace(r.Transportadora),
		Servico:        strings.TrimSpace(r.Servico),
		Prazo:          r.Prazo,
		Valor:          r.Valor,
		CodigoServico:  strings.TrimSpace(r.CodigoServico),
	}
}

// BuscaQuery is the catalogue search query string.
type BuscaQuery struct {
	Termo string `form:"termo"`
	Limit int    `form:"limit"`
}
